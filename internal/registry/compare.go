package registry

import (
	"fmt"
	"strings"

	"github.com/jmonzon-gt/distribuidores/internal/extract"
	"github.com/jmonzon-gt/distribuidores/internal/validity"
)

// NameSimilarityThreshold mirrors the scorer's fuzzy ratio.
const NameSimilarityThreshold = 0.85

// numericKeys are compared exactly after canonicalization.
var numericKeys = []string{"registro", "folio", "libro", "expediente"}

// Comparison is the outcome of checking extracted fields against the
// official registry record.
type Comparison struct {
	Compared  int // numeric fields present on both sides
	Agreed    int
	NameMatch bool
	NameSeen  bool
	Match     bool
	Detail    string
}

// Compare checks extracted fields against the scraped official record.
// Numeric identifiers must match exactly after stripping leading zeros and
// whitespace; the legal name is matched fuzzily. The overall verdict needs
// all-but-one numeric agreement (full agreement when only one numeric field
// is comparable) and a passing name check.
func Compare(official map[string]string, fields extract.Fields) Comparison {
	var c Comparison
	var mismatches []string

	for _, key := range numericKeys {
		ours, okOurs := fields[key]
		theirs, okTheirs := official[key]
		if !okOurs || !okTheirs {
			continue
		}
		c.Compared++
		if canonNumber(ours) == canonNumber(theirs) {
			c.Agreed++
		} else {
			mismatches = append(mismatches, fmt.Sprintf("%s: %q vs %q", key, ours, theirs))
		}
	}

	ourName := fields["nombre_legal"]
	theirName := official["nombre"]
	if ourName != "" && theirName != "" {
		c.NameSeen = true
		c.NameMatch = validity.Similarity(ourName, theirName) >= NameSimilarityThreshold
		if !c.NameMatch {
			mismatches = append(mismatches, fmt.Sprintf("nombre: %q vs %q", ourName, theirName))
		}
	}

	c.Match = c.numericPass() && (!c.NameSeen || c.NameMatch)
	c.Detail = strings.Join(mismatches, "; ")
	return c
}

func (c Comparison) numericPass() bool {
	switch c.Compared {
	case 0:
		// nothing comparable; the name check alone decides
		return true
	case 1:
		return c.Agreed == 1
	default:
		return c.Agreed >= c.Compared-1
	}
}

// canonNumber strips whitespace and leading zeros for exact identifier
// comparison.
func canonNumber(s string) string {
	s = strings.Join(strings.Fields(s), "")
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}
	return s
}
