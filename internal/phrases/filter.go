package phrases

import (
	"strings"

	"github.com/verte-zerg/typesprint/internal/session"
)

// FilterFunc returns true when a phrase should be kept.
type FilterFunc func(string) bool

// FilterForLang returns a language-specific filter for phrase lists.
func FilterForLang(lang string) FilterFunc {
	switch strings.ToLower(lang) {
	case "en":
		return filterEnglishASCII
	case "ru":
		return session.IsRussian
	default:
		return func(string) bool { return true }
	}
}

// Filter returns the phrases kept by keep.
func Filter(phrases []string, keep FilterFunc) []string {
	out := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func filterEnglishASCII(phrase string) bool {
	if phrase == "" {
		return false
	}
	for i := 0; i < len(phrase); i++ {
		ch := phrase[i]
		if ch < ' ' || ch > '~' {
			return false
		}
	}
	return true
}
