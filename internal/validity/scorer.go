// Package validity scores raw document text against the vocabulary expected
// in a genuine instance of each document type. The score is advisory input to
// the task coordinator, not a hard gate: low-confidence documents still reach
// a human reviewer.
package validity

import (
	"math"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/jmonzon-gt/distribuidores/constants"
)

const (
	// SimilarityThreshold is the minimum normalized edit-distance ratio for a
	// fuzzy keyword hit, tolerating OCR misreads.
	SimilarityThreshold = 0.85

	// ValidScore is the minimum score at which the document is considered a
	// plausible instance of its declared type.
	ValidScore = 60
)

// keywords per document type; lowercase, accent-free (OCR output is folded
// the same way before matching).
var keywords = map[constants.DocumentType][]string{
	constants.DocIDFront: {
		"republica", "guatemala", "documento", "personal", "identificacion",
		"cui", "apellidos", "nombres", "nacionalidad", "nacimiento",
	},
	constants.DocIDBack: {
		"renap", "registro", "nacional", "personas", "vecindad",
		"residencia", "firma", "cui",
	},
	constants.DocTaxRegistry: {
		"superintendencia", "administracion", "tributaria", "registro",
		"tributario", "unificado", "nit", "contribuyente", "afiliaciones",
		"establecimientos",
	},
	constants.DocCommerceLicense: {
		"registro", "mercantil", "patente", "comercio", "empresa",
		"folio", "libro", "expediente", "inscripcion",
	},
}

// Result is the scorer's verdict for one document.
type Result struct {
	Score   int // 0..100
	Matched int
	Total   int
	Valid   bool
}

// Score checks the raw text for the declared type's keyword set. A keyword
// counts when it appears verbatim (case-insensitive) or when any single token
// reaches the similarity threshold. Score = round(matches/total*100).
func Score(docType constants.DocumentType, text string) Result {
	words := keywords[docType]
	if len(words) == 0 {
		// OTHER and unknown types have no vocabulary; nothing to judge.
		return Result{Score: 0, Total: 0, Valid: true}
	}

	folded := foldText(text)
	tokens := strings.Fields(folded)

	matched := 0
	for _, kw := range words {
		if strings.Contains(folded, kw) || fuzzyHit(tokens, kw) {
			matched++
		}
	}

	score := int(math.Round(float64(matched) / float64(len(words)) * 100))
	return Result{
		Score:   score,
		Matched: matched,
		Total:   len(words),
		Valid:   score >= ValidScore,
	}
}

func fuzzyHit(tokens []string, kw string) bool {
	for _, tok := range tokens {
		if levenshtein.Match(kw, tok, nil) >= SimilarityThreshold {
			return true
		}
	}
	return false
}

var accentFolder = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ü", "u", "Ñ", "n",
)

func foldText(s string) string {
	return accentFolder.Replace(strings.ToLower(s))
}

// Similarity exposes the shared fuzzy ratio for other packages (registry
// cross-validation compares names with the same threshold).
func Similarity(a, b string) float64 {
	return levenshtein.Match(foldText(a), foldText(b), nil)
}
