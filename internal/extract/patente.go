package extract

import (
	"regexp"
	"strings"
)

// Field rules for the commerce license (patente de comercio). The registry
// issues two layouts: one for individual enterprises ("EMPRESA MERCANTIL")
// and one for corporate entities ("SOCIEDAD"); the distinguishing phrase
// picks the subtype.
var (
	reRegistro   = regexp.MustCompile(`(?i)(?:No\.?\s+de\s+)?Registro\s*(?:No\.?|N[uú]mero)?\s*[:\-]?\s*(\d[\d\s]*\d|\d)`)
	reFolio      = regexp.MustCompile(`(?i)Folio\s*(?:No\.?)?\s*[:\-]?\s*(\d[\d\s]*\d|\d)`)
	reLibro      = regexp.MustCompile(`(?i)Libro\s*(?:No\.?)?\s*[:\-]?\s*(\d[\d\s]*\d|\d)`)
	reExpediente = regexp.MustCompile(`(?i)Expediente\s*(?:No\.?)?\s*[:\-]?\s*(\d[\d\s\-]*\d|\d)`)

	reEmpresa   = regexp.MustCompile(`(?im)^(?:Empresa|Denominaci[oó]n|Raz[oó]n\s+Social)\s*[:\-]\s*(.+)`)
	reDireccion = regexp.MustCompile(`(?i)Direcci[oó]n(?:\s+Comercial)?\s*[:\-]?\s*(.+)`)
	reObjeto    = regexp.MustCompile(`(?i)Objeto\s*[:\-]?\s*(.+)`)
	rePropiet   = regexp.MustCompile(`(?i)Propietario\s*[:\-]?\s*(.+)`)
)

const (
	PatenteEmpresa  = "EMPRESA_MERCANTIL"
	PatenteSociedad = "SOCIEDAD"
)

func parsePatente(text string) Fields {
	f := Fields{}

	upper := strings.ToUpper(text)
	switch {
	case strings.Contains(upper, "EMPRESA MERCANTIL"):
		f.set("tipo_patente", PatenteEmpresa)
		f.set("propietario", cleanLine(captureAfter(rePropiet, text)))
	case strings.Contains(upper, "SOCIEDAD"):
		f.set("tipo_patente", PatenteSociedad)
	}

	if m := reRegistro.FindStringSubmatch(text); len(m) > 1 {
		f.set("registro", joinDigits(m[1]))
	}
	if m := reFolio.FindStringSubmatch(text); len(m) > 1 {
		f.set("folio", joinDigits(m[1]))
	}
	if m := reLibro.FindStringSubmatch(text); len(m) > 1 {
		f.set("libro", joinDigits(m[1]))
	}
	if m := reExpediente.FindStringSubmatch(text); len(m) > 1 {
		f.set("expediente", joinDigits(m[1]))
	}

	f.set("nombre_legal", cleanLine(captureAfter(reEmpresa, text)))
	f.set("direccion", cleanLine(captureAfter(reDireccion, text)))
	f.set("objeto", cleanLine(captureAfter(reObjeto, text)))
	return f
}
