package lexer

import "fmt"

type Kind string

const (
	KindKeyword    Kind = "Keyword"
	KindIdentifier Kind = "Identifier"
	KindNumber     Kind = "Number"
	KindOperator   Kind = "Operator"
	KindDelimiter  Kind = "Delimiter"
	KindString     Kind = "String"  // Double-quoted, delimiters included
	KindChar       Kind = "Char"    // Single-quoted, delimiters included
	KindUnknown    Kind = "Unknown" // Any byte no other rule claims
)

// Token is one classified unit of source text. Lexeme is the exact
// substring of the input, including quotes for literals. Line is the
// 1-based line of the token's first character.
type Token struct {
	Lexeme string
	Kind   Kind
	Line   int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) @ line %d", t.Kind, t.Lexeme, t.Line)
}
