// Package utils holds small field validators shared by the schemas.
package utils

import "fmt"

// EnumValidator restricts a string column to a fixed set of values. The
// state and status columns use it instead of database-level enums.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("value %q is not in the allowed set", s)
	}
}
