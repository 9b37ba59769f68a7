package listing

import "strings"

// matchesText reports whether every whitespace-separated term of q occurs in
// at least one of the fields, case-insensitively. An empty q matches.
func matchesText(q string, fields ...string) bool {
	terms := strings.Fields(strings.ToLower(q))
	if len(terms) == 0 {
		return true
	}
	haystack := strings.ToLower(strings.Join(fields, "\n"))
	for _, term := range terms {
		if !strings.Contains(haystack, term) {
			return false
		}
	}
	return true
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func boolMatches(want *bool, got bool) bool {
	return want == nil || *want == got
}
