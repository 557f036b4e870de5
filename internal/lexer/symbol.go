package lexer

import "strings"

// operators holds every recognized operator, keyed by lexeme. Matching
// is longest-first: window lengths 3, 2, 1 from the cursor.
var operators = map[string]bool{
	"<<=": true, ">>=": true,
	"==": true, "!=": true, "<=": true, ">=": true,
	"++": true, "--": true,
	"+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"<<": true, ">>": true,
	"&&": true, "||": true,
	"+": true, "-": true, "*": true, "/": true, "%": true,
	"=": true, "<": true, ">": true, "!": true,
	"&": true, "|": true, "^": true, "~": true,
}

const delimiters = ";,(){}[]"

// matchOperator returns the longest operator starting at src[pos]. A
// window that would run past the end of input is skipped, not padded.
func matchOperator(src string, pos int) (string, bool) {
	for size := 3; size >= 1; size-- {
		if pos+size > len(src) {
			continue
		}

		if s := src[pos : pos+size]; operators[s] {
			return s, true
		}
	}

	return "", false
}

func isDelimiter(c byte) bool { return strings.IndexByte(delimiters, c) >= 0 }

func isAlphanumeric(a byte) bool { return isAlpha(a) || isNumeric(a) }
func isAlpha(a byte) bool        { return (a >= 'a' && a <= 'z') || (a >= 'A' && a <= 'Z') || a == '_' }
func isNumeric(d byte) bool      { return d >= '0' && d <= '9' }

// isWhitespace matches the C isspace set over 8-bit code units.
func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
