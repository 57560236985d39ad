package paroot

import "strings"

// TrimString returns s without leading and trailing whitespace.
//
// The prompts never trim input themselves; use TrimString on the result of
// GetString when surrounding spaces should not matter.
func TrimString(s string) string {
	return strings.TrimSpace(s)
}
