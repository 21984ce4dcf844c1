package extract

import "regexp"

// Field rules for the national ID card (DPI). The CUI is 13 digits printed in
// groups; name components sit between fixed labels on the card.
var (
	reCUI = regexp.MustCompile(`\b(\d{4}\s?\d{5}\s?\d{4})\b`)

	reApellidos  = regexp.MustCompile(`(?is)Apellidos?\s*[:\-]?\s*(.*?)\s*Nombres?\b`)
	reNombres    = regexp.MustCompile(`(?is)Nombres?\s*[:\-]?\s*(.*?)\s*(?:Nacionalidad|Fecha\s+de\s+Nacimiento|Sexo|Vecindad|$)`)
	reNacimiento = regexp.MustCompile(`(?i)Fecha\s+de\s+Nacimiento\s*[:\-]?\s*(\d{1,2}[\s/][A-ZÁÉÍÓÚa-záéíóú]{3,9}[\s/]\d{4}|\d{1,2}/\d{1,2}/\d{4})`)
	reNacional   = regexp.MustCompile(`(?i)Nacionalidad\s*[:\-]?\s*([A-ZÁÉÍÓÚÑa-záéíóúñ]+)`)
	reSexo       = regexp.MustCompile(`(?i)Sexo\s*[:\-]?\s*([MF])\b`)
)

func parseDPI(text string) Fields {
	f := Fields{}
	if m := reCUI.FindStringSubmatch(text); len(m) > 1 {
		f.set("cui", joinDigits(m[1]))
	}
	f.set("apellidos", cleanLine(captureAfter(reApellidos, text)))
	f.set("nombres", cleanLine(captureAfter(reNombres, text)))
	f.set("fecha_nacimiento", cleanLine(captureAfter(reNacimiento, text)))
	f.set("nacionalidad", cleanLine(captureAfter(reNacional, text)))
	f.set("sexo", captureAfter(reSexo, text))
	return f
}
