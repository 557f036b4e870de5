package loader

import (
	"fmt"
	"io"
	"os"
)

// Stdin is the path sentinel that selects standard input.
const Stdin = "-"

// Load returns the complete source text for the given path. The "-"
// sentinel and the empty string both select standard input. The lexer
// wants one in-memory buffer, so the input is read to completion
// before anything is scanned.
func Load(path string) (string, error) {
	if path == "" || path == Stdin {
		return ReadAll(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("could not open %q for reading: %w", path, err)
	}
	defer f.Close()

	return ReadAll(f)
}

// ReadAll drains r into a string.
func ReadAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read source: %w", err)
	}

	return string(data), nil
}
