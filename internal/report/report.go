// Package report renders the scanned token stream as a fixed-width
// console table: two confirmation lines, a header, a dash separator,
// and one row per token with columns Token, Type and Line.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/ctok/ctok/internal/lexer"
)

const (
	tokenWidth = 30
	typeWidth  = 15
	lineWidth  = 6
)

func Write(w io.Writer, tokens []lexer.Token) error {
	if _, err := fmt.Fprintf(w, "✔ Tokens found\n✔ Type of token\n\n"); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%-*s | %-*s | %-*s\n",
		tokenWidth, "Token", typeWidth, "Type", lineWidth, "Line"); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%s-|%s-|%s\n",
		strings.Repeat("-", tokenWidth),
		strings.Repeat("-", typeWidth),
		strings.Repeat("-", lineWidth)); err != nil {
		return err
	}

	for _, t := range tokens {
		if _, err := fmt.Fprintf(w, "%-*s | %-*s | %-*d\n",
			tokenWidth, t.Lexeme, typeWidth, string(t.Kind), lineWidth, t.Line); err != nil {
			return err
		}
	}

	return nil
}
