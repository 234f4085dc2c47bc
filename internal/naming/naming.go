package naming

import "strings"

// Name maps a prefix and source base name to the installed name. With an
// empty prefix the base is used verbatim, which makes installed content
// indistinguishable from user-authored content — scan and clean degrade to
// no-ops in that mode.
func Name(prefix, base string) string {
	if prefix == "" {
		return base
	}
	return prefix + "-" + base
}

// HasPrefix reports whether name was produced by Name with the given
// non-empty prefix. It always reports false for an empty prefix.
func HasPrefix(name, prefix string) bool {
	if prefix == "" {
		return false
	}
	return strings.HasPrefix(name, prefix+"-")
}
