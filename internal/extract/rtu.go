package extract

import (
	"regexp"
	"strings"
)

// Field rules for the unified tax registry certificate (RTU). A person-type
// document that declares a company repeats one establishment block per
// registered location; every block is captured as a branch candidate.
var (
	reNIT       = regexp.MustCompile(`(?i)\bNIT\s*[:\-]?\s*(\d{4,8}\s?-?\s?[\dK])`)
	reRazon     = regexp.MustCompile(`(?i)(?:Nombre\s+o\s+Raz[oó]n\s+Social|Raz[oó]n\s+Social|Contribuyente)\s*[:\-]?\s*(.+)`)
	reComercial = regexp.MustCompile(`(?i)Nombre\s+Comercial\s*[:\-]?\s*(.+)`)

	reDepartamento = regexp.MustCompile(`(?i)Departamento\s*[:\-]?\s*(.+)`)
	reMunicipio    = regexp.MustCompile(`(?i)Municipio\s*[:\-]?\s*(.+)`)
	reZona         = regexp.MustCompile(`(?i)Zona\s*[:\-]?\s*(\d+)`)
	reCalle        = regexp.MustCompile(`(?i)(?:Calle|Avenida|Direcci[oó]n)\s*[:\-]?\s*(.+)`)
	reCasa         = regexp.MustCompile(`(?i)(?:Casa|N[uú]mero)\s*[:\-]?\s*(.+)`)
	reEstado       = regexp.MustCompile(`(?i)Estado\s*[:\-]?\s*(.+)`)
	reInicio       = regexp.MustCompile(`(?i)Fecha\s+de\s+Inicio(?:\s+de\s+Operaciones)?\s*[:\-]?\s*(\d{1,2}/\d{1,2}/\d{4})`)
)

func parseRTU(text string) (Fields, []BranchCandidate) {
	f := Fields{}
	if m := reNIT.FindStringSubmatch(text); len(m) > 1 {
		f.set("nit", joinDigits(m[1]))
	}
	f.set("nombre_legal", cleanLine(captureAfter(reRazon, text)))

	branches := parseEstablishments(text)
	if len(branches) > 0 {
		f.set("nombre_comercial", branches[0].Name)
		f.set("direccion", branches[0].Address)
	}
	return f, branches
}

// parseEstablishments iterates the repeated "Nombre Comercial" blocks,
// deduplicating by (name, address).
func parseEstablishments(text string) []BranchCandidate {
	marks := reComercial.FindAllStringIndex(text, -1)
	if len(marks) == 0 {
		return nil
	}

	seen := map[string]struct{}{}
	out := make([]BranchCandidate, 0, len(marks))
	for i, mark := range marks {
		end := len(text)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		block := text[mark[0]:end]

		b := BranchCandidate{
			Name:         cleanLine(captureAfter(reComercial, block)),
			Department:   cleanLine(captureAfter(reDepartamento, block)),
			Municipality: cleanLine(captureAfter(reMunicipio, block)),
			Zone:         captureAfter(reZona, block),
			Street:       cleanLine(captureAfter(reCalle, block)),
			HouseNumber:  cleanLine(captureAfter(reCasa, block)),
			Status:       cleanLine(captureAfter(reEstado, block)),
			StartDate:    captureAfter(reInicio, block),
		}
		if b.Name == "" {
			continue
		}
		b.Address = assembleAddress(b)

		key := strings.ToUpper(b.Name) + "|" + strings.ToUpper(b.Address)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, b)
	}
	return out
}

// assembleAddress concatenates the present components in a fixed order,
// skipping absent ones.
func assembleAddress(b BranchCandidate) string {
	parts := make([]string, 0, 5)
	if b.Street != "" {
		parts = append(parts, b.Street)
	}
	if b.HouseNumber != "" {
		parts = append(parts, b.HouseNumber)
	}
	if b.Zone != "" {
		parts = append(parts, "Zona "+b.Zone)
	}
	if b.Municipality != "" {
		parts = append(parts, b.Municipality)
	}
	if b.Department != "" {
		parts = append(parts, b.Department)
	}
	return strings.Join(parts, ", ")
}
