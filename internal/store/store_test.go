package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "phrases.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestImportPhrasesDeduplicates(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	n, err := st.ImportPhrases(ctx, "en", []string{"one", "two", "one"})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 inserted, got %d", n)
	}
	n, err = st.ImportPhrases(ctx, "EN", []string{"two", "three"})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 inserted, got %d", n)
	}

	phrases, err := st.ListPhrases(ctx, "en")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	texts := Texts(phrases)
	if len(texts) != 3 || texts[0] != "one" || texts[1] != "two" || texts[2] != "three" {
		t.Fatalf("unexpected phrases: %v", texts)
	}
}

func TestListLangsAndCount(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if _, err := st.ImportPhrases(ctx, "en", []string{"a", "b"}); err != nil {
		t.Fatalf("import en: %v", err)
	}
	if _, err := st.ImportPhrases(ctx, "ru", []string{"привет"}); err != nil {
		t.Fatalf("import ru: %v", err)
	}

	langs, err := st.ListLangs(ctx)
	if err != nil {
		t.Fatalf("list langs: %v", err)
	}
	if len(langs) != 2 || langs["en"] != 2 || langs["ru"] != 1 {
		t.Fatalf("unexpected langs: %v", langs)
	}

	count, err := st.CountPhrases(ctx, "de")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 phrases for de, got %d", count)
	}
}

func TestReopenKeepsPhrases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrases.db")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := st.ImportPhrases(context.Background(), "en", []string{"kept"}); err != nil {
		t.Fatalf("import: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	st, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() {
		_ = st.Close()
	}()
	count, err := st.CountPhrases(context.Background(), "en")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 phrase after reopen, got %d", count)
	}
}
