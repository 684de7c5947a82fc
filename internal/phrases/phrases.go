// Package phrases loads and picks target phrases.
package phrases

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// LoadPhrases reads one phrase per line from the provided file path.
// Blank lines and lines starting with '#' are skipped.
func LoadPhrases(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only phrase list.
			_ = cerr
		}
	}()
	return ReadPhrases(file)
}

// ReadPhrases reads phrases from r, NFC-normalized and trimmed.
func ReadPhrases(r io.Reader) ([]string, error) {
	var phrases []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := Normalize(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		phrases = append(phrases, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(phrases) == 0 {
		return nil, fmt.Errorf("phrase list is empty")
	}
	return phrases, nil
}

// Normalize trims s, collapses inner whitespace and converts it to NFC, so
// that a decomposed "ё" compares equal to the key the user types.
func Normalize(s string) string {
	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}
