package extract

import (
	"regexp"
	"strings"

	"github.com/jmonzon-gt/distribuidores/constants"
	"github.com/jmonzon-gt/distribuidores/internal/common"
)

// ParseFields applies the document-type-specific rules to raw text.
// Missing fields are simply absent from the result, never an error.
func ParseFields(docType constants.DocumentType, text string) (ParseResult, error) {
	switch docType {
	case constants.DocIDFront, constants.DocIDBack:
		return ParseResult{Fields: parseDPI(text)}, nil
	case constants.DocTaxRegistry:
		fields, branches := parseRTU(text)
		return ParseResult{Fields: fields, Branches: branches}, nil
	case constants.DocCommerceLicense:
		return ParseResult{Fields: parsePatente(text)}, nil
	case constants.DocOther:
		return ParseResult{Fields: Fields{}}, nil
	default:
		return ParseResult{}, common.NewValidationError("document_type", "unknown type "+string(docType))
	}
}

var reWhitespace = regexp.MustCompile(`\s+`)

// joinDigits strips interior whitespace from a grouped numeric identifier.
func joinDigits(s string) string {
	return reWhitespace.ReplaceAllString(strings.TrimSpace(s), "")
}

// captureAfter returns the first submatch of a label rule, trimmed, or "".
func captureAfter(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// set stores v under key only when v is non-empty, so an absent field never
// shadows a previously known value downstream.
func (f Fields) set(key, v string) {
	if strings.TrimSpace(v) != "" {
		f[key] = strings.TrimSpace(v)
	}
}

// cleanLine collapses a captured fragment to a single line of text.
func cleanLine(s string) string {
	s = strings.SplitN(s, "\n", 2)[0]
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}
