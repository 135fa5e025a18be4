// Package word turns text into the tokens fed to an automaton.
package word

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// Default returns the word used when no source is given.
func Default() []string {
	return []string{"c", "d", "p", "b", "e"}
}

// Split breaks text on whitespace or commas. Empty tokens are dropped.
func Split(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
}

// Read consumes r and splits its contents.
func Read(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read word: %w", err)
	}
	return Split(string(data)), nil
}

// ReadFile splits the contents of the file at path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word file: %w", err)
	}
	defer f.Close()
	return Read(f)
}
