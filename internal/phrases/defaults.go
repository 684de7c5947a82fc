package phrases

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed defaults/*.txt
var defaultFS embed.FS

// Default returns the built-in phrases for lang.
func Default(lang string) ([]string, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	f, err := defaultFS.Open("defaults/" + lang + ".txt")
	if err != nil {
		return nil, fmt.Errorf("no built-in phrases for %q (available: %s)", lang, strings.Join(DefaultLangs(), ", "))
	}
	defer f.Close()
	return ReadPhrases(f)
}

// DefaultLangs lists languages with built-in phrases.
func DefaultLangs() []string {
	entries, err := defaultFS.ReadDir("defaults")
	if err != nil {
		return nil
	}
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(langs)
	return langs
}
