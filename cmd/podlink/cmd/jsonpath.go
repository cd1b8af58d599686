package cmd

import "strings"

// jsonPath escapes a settings key for use as a gjson/sjson path element.
// Conditional keys contain characters the path syntax treats specially
// ('.', '*', '?'), e.g. FOO[sdk=iphoneos*].
func jsonPath(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '\\', '.', '*', '?', '|', '#', '@':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
