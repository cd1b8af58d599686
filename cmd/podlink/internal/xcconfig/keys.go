package xcconfig

import "strings"

// BaseKey strips a trailing bracketed condition from a settings key:
// everything from the first '[' onward. A key without a condition is
// returned unchanged.
//
//	BaseKey("FOO[sdk=iphoneos*]") == "FOO"
//	BaseKey("FOO")                == "FOO"
//
// The condition is part of the key's identity in a Config; only derived
// names (namespaced variable references) use the base form.
func BaseKey(key string) string {
	if i := strings.IndexByte(key, '['); i != -1 {
		return key[:i]
	}
	return key
}

// QuotePathList renders paths as a single space-joined string with each
// element double-quoted, the form list-valued path settings such as
// HEADER_SEARCH_PATHS expect. Settings holding a single directory or
// variable reference must not go through this helper: quoting a fully
// qualified reference as a path breaks variable substitution.
func QuotePathList(paths []string) string {
	quoted := make([]string, len(paths))
	for i, p := range paths {
		quoted[i] = `"` + p + `"`
	}
	return strings.Join(quoted, " ")
}
