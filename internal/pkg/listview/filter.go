package listview

import "strings"

// Record is a row the view can key and search.
type Record interface {
	// RowKey is the display key, "" when the record has none.
	RowKey() string
	// SearchValues returns every field stringified. Empty strings are
	// treated as absent.
	SearchValues() []string
}

// Matches reports whether rec contains term in any field, ignoring case.
// A blank term matches everything.
func Matches[R Record](rec R, term string) bool {
	if strings.TrimSpace(term) == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, v := range rec.SearchValues() {
		if v == "" {
			continue
		}
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}
