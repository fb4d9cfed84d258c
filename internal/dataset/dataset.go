package dataset

import (
	"strconv"

	"github.com/dromeroa/expedientes/internal/resolve"
)

// Columns is the export column order. Names match the legal team's
// existing workbook, so downstream tooling keeps working unchanged.
var Columns = []string{
	"carpeta",
	"formulario",
	"runt_pdf",
	"acuse_pdf",
	"fuzzy_score_formulario",
	"monto_ejecucion",
	"fecha_ejecucion",
	"fecha_notificacion_juridica",
	"rgm",
	"poder",
	"carta_unica",
	"runt_exist",
	"prenda",
	"numero_identificacion",
	"primer_apellido",
	"segundo_apellido",
	"primer_nombre",
	"segundo_nombre",
	"pais",
	"departamento",
	"municipio",
	"direccion",
	"telefono_celular",
	"email",
	"nombres_completos",
	"placa",
	"servicio",
	"marca",
	"linea",
	"modelo",
	"color",
}

// rowValues produces one typed cell per column for the XLSX writer.
// Absent fields become nil cells, never empty-string placeholders.
func rowValues(rec resolve.CaseRecord) []any {
	return []any{
		rec.Folder,
		rec.FormFile,
		deref(rec.RegistryFile),
		deref(rec.ReceiptFile),
		rec.FormScore,
		deref(rec.Amount),
		deref(rec.ExecutionDate),
		deref(rec.NotificationDate),
		rec.HasInitialRegistration,
		rec.HasPowerOfAttorney,
		rec.HasUniqueLetter,
		rec.HasVehicleRegistry,
		rec.HasPledge,
		deref(rec.Debtor.IdentificationNumber),
		deref(rec.Debtor.FirstSurname),
		deref(rec.Debtor.SecondSurname),
		deref(rec.Debtor.FirstName),
		deref(rec.Debtor.SecondName),
		deref(rec.Debtor.Country),
		deref(rec.Debtor.Department),
		deref(rec.Debtor.Municipality),
		deref(rec.Debtor.Address),
		deref(rec.Debtor.MobilePhone),
		deref(rec.Debtor.Email),
		rec.Debtor.FullName,
		deref(rec.Vehicle.Plate),
		deref(rec.Vehicle.ServiceType),
		deref(rec.Vehicle.Brand),
		deref(rec.Vehicle.Line),
		deref(rec.Vehicle.Model),
		deref(rec.Vehicle.Color),
	}
}

// RowStrings renders one record as flat strings, for the CSV fallback
// and for placeholder contexts.
func RowStrings(rec resolve.CaseRecord) []string {
	values := rowValues(rec)
	row := make([]string, len(values))
	for i, v := range values {
		switch t := v.(type) {
		case nil:
			row[i] = ""
		case string:
			row[i] = t
		case bool:
			row[i] = strconv.FormatBool(t)
		case int:
			row[i] = strconv.Itoa(t)
		}
	}
	return row
}

// AsMap renders one record as a column-keyed map.
func AsMap(rec resolve.CaseRecord) map[string]string {
	row := RowStrings(rec)
	m := make(map[string]string, len(Columns))
	for i, col := range Columns {
		m[col] = row[i]
	}
	return m
}

func deref(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
