package render

import (
	"strings"

	"github.com/dromeroa/expedientes/internal/textutil"
)

// Context builds the placeholder map for one dataset row. Values are
// upper-cased for the legal document body; email stays lower case.
// Folder and full name appear under both historical placeholder
// spellings because templates in circulation use either.
func Context(row map[string]string) map[string]string {
	upper := func(col string) string { return textutil.UpperCase(row[col]) }

	return map[string]string{
		"carpeta":               upper("carpeta"),
		"CARPETA":               upper("carpeta"),
		"nombres_completos":     upper("nombres_completos"),
		"NOMBRE":                upper("nombres_completos"),
		"numero_identificacion": upper("numero_identificacion"),
		"placa":                 upper("placa"),
		"marca":                 upper("marca"),
		"linea":                 upper("linea"),
		"modelo":                upper("modelo"),
		"color":                 upper("color"),
		"servicio":              upper("servicio"),
		"monto_ejecucion":       upper("monto_ejecucion"),
		"direccion":             upper("direccion"),
		"municipio":             upper("municipio"),
		"fecha_ejecucion":       upper("fecha_ejecucion"),
		"fecha_notificacion":    upper("fecha_notificacion_juridica"),
		"email":                 strings.ToLower(row["email"]),
	}
}

// OutputName names the rendered document for one row:
// {folder}_{full name with spaces replaced by underscores}.docx
func OutputName(row map[string]string) string {
	safe := strings.ReplaceAll(row["nombres_completos"], " ", "_")
	return row["carpeta"] + "_" + safe + ".docx"
}
