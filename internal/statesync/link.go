package statesync

import "strings"

// BuildLink appends marker and token to base after dropping any fragment from base.
func BuildLink(base, marker, token string) string {
	base, _, _ = strings.Cut(base, "#")
	return base + marker + token
}

// TokenFromLocation extracts the token that follows marker in the fragment of location.
// The leading '#' of marker is optional in the match.
func TokenFromLocation(location, marker string) (string, bool) {
	_, fragment, ok := strings.Cut(location, "#")
	if !ok {
		return "", false
	}
	needle := strings.TrimPrefix(marker, "#")
	idx := strings.Index(fragment, needle)
	if needle == "" || idx < 0 {
		return "", false
	}
	return fragment[idx+len(needle):], true
}

// WithFragment swaps the fragment of location for fragment.
func WithFragment(location, fragment string) string {
	base, _, _ := strings.Cut(location, "#")
	if fragment != "" && !strings.HasPrefix(fragment, "#") {
		fragment = "#" + fragment
	}
	return base + fragment
}
