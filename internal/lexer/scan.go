package lexer

// cursor is the scan position: a byte index into the source plus the
// 1-based line that index is on. Sub-parsers receive a cursor by value
// and return the advanced one; nothing holds a reference into the
// caller's state.
type cursor struct {
	pos  int
	line int
}

// scanCharLiteral consumes a character literal starting at an opening
// single quote. An escape keeps its backslash and payload verbatim. A
// missing closing quote is tolerated: the lexeme is whatever was
// available before end of input.
func scanCharLiteral(src string, cur cursor) (string, cursor) {
	start := cur.pos
	cur.pos++ // opening quote

	if cur.pos >= len(src) {
		return src[start:cur.pos], cur
	}

	switch src[cur.pos] {
	case '\\':
		cur.pos++
		if cur.pos < len(src) {
			cur.pos++
		}
	case '\n':
		// Malformed in the source grammar, but the newline is kept in
		// the lexeme and counted.
		cur.line++
		cur.pos++
	default:
		cur.pos++
	}

	if cur.pos < len(src) && src[cur.pos] == '\'' {
		cur.pos++
	}

	return src[start:cur.pos], cur
}

// scanStringLiteral consumes a string literal starting at an opening
// double quote, through the closing quote or end of input. A backslash
// always consumes the following byte as an uninterpreted escape pair,
// so an escaped quote does not end the literal. Embedded newlines are
// legal here and bump the line counter.
func scanStringLiteral(src string, cur cursor) (string, cursor) {
	start := cur.pos
	cur.pos++ // opening quote

	for cur.pos < len(src) {
		c := src[cur.pos]
		cur.pos++

		if c == '\\' {
			if cur.pos < len(src) {
				cur.pos++
			}

			continue
		}

		if c == '"' {
			break
		}

		if c == '\n' {
			cur.line++
		}
	}

	return src[start:cur.pos], cur
}

// scanNumber consumes an optional integer part, an optional fraction,
// and an optional exponent. The exponent is speculative: unless at
// least one digit follows the marker (and optional sign), the cursor
// rolls back to the marker and the lexeme ends before it. The caller
// must reject a digit-less result such as a lone ".".
func scanNumber(src string, cur cursor) (string, cursor) {
	start := cur.pos

	for cur.pos < len(src) && isNumeric(src[cur.pos]) {
		cur.pos++
	}

	if cur.pos < len(src) && src[cur.pos] == '.' {
		cur.pos++

		for cur.pos < len(src) && isNumeric(src[cur.pos]) {
			cur.pos++
		}
	}

	if cur.pos < len(src) && (src[cur.pos] == 'e' || src[cur.pos] == 'E') {
		marker := cur.pos
		cur.pos++

		if cur.pos < len(src) && (src[cur.pos] == '+' || src[cur.pos] == '-') {
			cur.pos++
		}

		digits := false
		for cur.pos < len(src) && isNumeric(src[cur.pos]) {
			digits = true
			cur.pos++
		}

		if !digits {
			cur.pos = marker
		}
	}

	return src[start:cur.pos], cur
}

// hasDigit reports whether the lexeme contains a decimal digit.
func hasDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if isNumeric(s[i]) {
			return true
		}
	}

	return false
}
