package extract

import (
	"regexp"
	"strings"

	"github.com/dromeroa/expedientes/internal/textutil"
)

// debtorSection bounds the "a.1 informacion sobre el deudor" region,
// stopping at the next top-level "c." section marker. Matching runs on
// normalized text, so the markers are accent-free and lower-case.
var debtorSection = regexp.MustCompile(`(?s)a\.1\.?\s*informacion\s+sobre\s+el\s+deudor\s*(.*?)c\.`)

type debtorField struct {
	key string
	re  *regexp.Regexp
	set func(*DebtorRecord, *string)
}

// Label patterns apply inside the debtor section only. The email pattern
// stops at commas because the source lines append a confirmation copy of
// the address after one.
var debtorFields = []debtorField{
	{"numero_identificacion", regexp.MustCompile(`numero de identificacion[:\s]*([^\n]+)`),
		func(r *DebtorRecord, v *string) { r.IdentificationNumber = v }},
	{"primer_apellido", regexp.MustCompile(`primer apellido[:\s]*([^\n]+)`),
		func(r *DebtorRecord, v *string) { r.FirstSurname = v }},
	{"segundo_apellido", regexp.MustCompile(`segundo apellido[:\s]*([^\n]+)`),
		func(r *DebtorRecord, v *string) { r.SecondSurname = v }},
	{"primer_nombre", regexp.MustCompile(`primer nombre[:\s]*([^\n]+)`),
		func(r *DebtorRecord, v *string) { r.FirstName = v }},
	{"segundo_nombre", regexp.MustCompile(`segundo nombre[:\s]*([^\n]+)`),
		func(r *DebtorRecord, v *string) { r.SecondName = v }},
	{"pais", regexp.MustCompile(`pais[:\s]*([^\n]+)`),
		func(r *DebtorRecord, v *string) { r.Country = v }},
	{"departamento", regexp.MustCompile(`departamento[:\s]*([^\n]+)`),
		func(r *DebtorRecord, v *string) { r.Department = v }},
	{"municipio", regexp.MustCompile(`municipio[:\s]*([^\n]+)`),
		func(r *DebtorRecord, v *string) { r.Municipality = v }},
	{"direccion", regexp.MustCompile(`direccion[:\s]*([^\n]+)`),
		func(r *DebtorRecord, v *string) { r.Address = v }},
	{"telefono_celular", regexp.MustCompile(`telefono\(s\)\s*celular[:\s]*([^\n]+)`),
		func(r *DebtorRecord, v *string) { r.MobilePhone = v }},
	{"email", regexp.MustCompile(`direccion electronica\s*\(?email\)?[:\s]*([^\n,]+)`),
		func(r *DebtorRecord, v *string) { r.Email = v }},
}

// nonNameToken guards given-name fields against sex/gender labels that
// leak from misaligned form lines.
var nonNameToken = regexp.MustCompile(`(?i)^(sexo|femenino|masculino)$`)

// Debtor extracts the debtor identity fields from full document text.
// Fields are Title Case except email, which is lower case.
func Debtor(text string) DebtorRecord {
	var section string
	if m := debtorSection.FindStringSubmatch(textutil.NormalizeText(text)); m != nil {
		section = m[1]
	}

	var rec DebtorRecord
	for _, f := range debtorFields {
		m := f.re.FindStringSubmatch(section)
		if m == nil {
			continue
		}
		val := strings.TrimSpace(m[1])
		switch f.key {
		case "direccion":
			val = strings.TrimSpace(strings.NewReplacer("[", "", "]", "").Replace(val))
		case "primer_nombre", "segundo_nombre":
			if nonNameToken.MatchString(val) {
				continue
			}
		}
		if val == "" {
			continue
		}
		if f.key == "email" {
			val = strings.ToLower(val)
		} else {
			val = textutil.TitleCase(val)
		}
		f.set(&rec, &val)
	}

	var parts []string
	for _, p := range []*string{rec.FirstSurname, rec.SecondSurname, rec.FirstName, rec.SecondName} {
		if p != nil {
			parts = append(parts, *p)
		}
	}
	rec.FullName = strings.Join(parts, " ")
	return rec
}
