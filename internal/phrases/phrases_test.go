package phrases

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadPhrases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrases.txt")
	data := "# comment\n\n  hello   world  \nsecond line\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write phrases: %v", err)
	}
	got, err := LoadPhrases(path)
	if err != nil {
		t.Fatalf("load phrases: %v", err)
	}
	if len(got) != 2 || got[0] != "hello world" || got[1] != "second line" {
		t.Fatalf("unexpected phrases: %q", got)
	}
}

func TestLoadPhrasesEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrases.txt")
	if err := os.WriteFile(path, []byte("# only a comment\n\n"), 0o644); err != nil {
		t.Fatalf("write phrases: %v", err)
	}
	if _, err := LoadPhrases(path); err == nil {
		t.Fatalf("expected error for empty phrase list")
	}
}

func TestNormalizeComposesYo(t *testing.T) {
	decomposed := "\u0435\u0308ж"
	got := Normalize(decomposed)
	if got != "\u0451ж" {
		t.Fatalf("expected composed ё, got %q", got)
	}
}

func TestReadPhrasesNormalizes(t *testing.T) {
	got, err := ReadPhrases(strings.NewReader("\u0415\u0308лка\n"))
	if err != nil {
		t.Fatalf("read phrases: %v", err)
	}
	if got[0] != "\u0401лка" {
		t.Fatalf("expected NFC phrase, got %q", got[0])
	}
}

func TestDefaultPhrases(t *testing.T) {
	langs := DefaultLangs()
	if len(langs) != 2 || langs[0] != "en" || langs[1] != "ru" {
		t.Fatalf("unexpected default langs: %v", langs)
	}
	for _, lang := range langs {
		list, err := Default(lang)
		if err != nil {
			t.Fatalf("default %s: %v", lang, err)
		}
		if kept := Filter(list, FilterForLang(lang)); len(kept) != len(list) {
			t.Fatalf("built-in %s phrases fail their own filter", lang)
		}
	}
	if _, err := Default("xx"); err == nil {
		t.Fatalf("expected error for unknown language")
	}
}
