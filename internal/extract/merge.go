package extract

import "strings"

// Merge folds newly extracted fields into an existing set. A key is only
// overwritten when the new value is non-empty: extraction never downgrades a
// known field back to blank.
func Merge(old, latest Fields) Fields {
	out := make(Fields, len(old)+len(latest))
	for k, v := range old {
		out[k] = v
	}
	for k, v := range latest {
		if strings.TrimSpace(v) == "" {
			continue
		}
		out[k] = v
	}
	return out
}
