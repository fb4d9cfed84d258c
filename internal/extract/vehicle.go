package extract

import (
	"regexp"
	"strings"
)

type vehicleLabel struct {
	re  *regexp.Regexp
	set func(*VehicleRecord, *string)
}

var vehicleLabels = []vehicleLabel{
	{regexp.MustCompile(`(?i)placa\b`), func(r *VehicleRecord, v *string) { r.Plate = v }},
	{regexp.MustCompile(`(?i)tipo de servicio\b`), func(r *VehicleRecord, v *string) { r.ServiceType = v }},
	{regexp.MustCompile(`(?i)marca\b`), func(r *VehicleRecord, v *string) { r.Brand = v }},
	{regexp.MustCompile(`(?i)l[ií]nea\b`), func(r *VehicleRecord, v *string) { r.Line = v }},
	{regexp.MustCompile(`(?i)modelo\b`), func(r *VehicleRecord, v *string) { r.Model = v }},
	{regexp.MustCompile(`(?i)color\b`), func(r *VehicleRecord, v *string) { r.Color = v }},
}

// Vehicle extracts vehicle attributes from a registry report. The
// report places each value on a line somewhere after its label, with
// blank, boilerplate or pagination lines interleaved; for each label the
// first subsequent non-noise line is taken as the value, verbatim.
func Vehicle(text string) VehicleRecord {
	lines := strings.Split(strings.ReplaceAll(text, "\u00a0", " "), "\n")

	var rec VehicleRecord
	for _, label := range vehicleLabels {
		for i, line := range lines {
			if !label.re.MatchString(line) {
				continue
			}
			for _, next := range lines[i+1:] {
				next = strings.TrimSpace(next)
				if next == "" || isNoise(next) {
					continue
				}
				v := next
				label.set(&rec, &v)
				break
			}
			break
		}
	}
	return rec
}
