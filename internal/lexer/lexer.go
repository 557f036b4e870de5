package lexer

// Lexer performs a single left-to-right pass over a complete source
// buffer. It owns the cursor; the sub-parsers in scan.go receive the
// cursor by value and hand back the advanced one. Scanning is total:
// every input byte is claimed by exactly one dispatch rule, with
// Unknown as the catch-all, so no input can fail or stall the pass.
type Lexer struct {
	src string
	cur cursor
}

func New(src string) *Lexer {
	return &Lexer{
		src: src,
		cur: cursor{pos: 0, line: 1},
	}
}

// Tokenize scans src in one pass and returns every token in order.
func Tokenize(src string) []Token {
	return New(src).Tokens()
}

// Tokens runs the dispatch loop to end of input. Rule order is fixed:
// whitespace, comments, char literal, string literal, identifier or
// keyword, number, operator, delimiter, unknown.
func (l *Lexer) Tokens() []Token {
	var tokens []Token

	for l.cur.pos < len(l.src) {
		c := l.src[l.cur.pos]

		switch {
		case isWhitespace(c):
			if c == '\n' {
				l.cur.line++
			}

			l.cur.pos++
		case c == '/' && l.peek(1) == '/':
			l.skipLineComment()
		case c == '/' && l.peek(1) == '*':
			l.skipBlockComment()
		case c == '\'':
			line := l.cur.line

			var lexeme string
			lexeme, l.cur = scanCharLiteral(l.src, l.cur)

			tokens = append(tokens, Token{Lexeme: lexeme, Kind: KindChar, Line: line})
		case c == '"':
			line := l.cur.line

			var lexeme string
			lexeme, l.cur = scanStringLiteral(l.src, l.cur)

			tokens = append(tokens, Token{Lexeme: lexeme, Kind: KindString, Line: line})
		case isAlpha(c):
			line := l.cur.line
			id := l.scanIdentifier()

			kind := KindIdentifier
			if _, ok := checkKeyword(id); ok {
				kind = KindKeyword
			}

			tokens = append(tokens, Token{Lexeme: id, Kind: kind, Line: line})
		case isNumeric(c) || (c == '.' && isNumeric(l.peek(1))):
			line := l.cur.line
			lexeme, next := scanNumber(l.src, l.cur)

			if hasDigit(lexeme) {
				l.cur = next
				tokens = append(tokens, Token{Lexeme: lexeme, Kind: KindNumber, Line: line})
			} else {
				// Not a number after all: the cursor stays put and the
				// symbol rules decide instead.
				tokens = append(tokens, l.scanSymbol())
			}
		default:
			tokens = append(tokens, l.scanSymbol())
		}
	}

	return tokens
}

// scanSymbol applies the trailing rules at the cursor: operator
// longest-match, then delimiter, then a one-byte Unknown token.
func (l *Lexer) scanSymbol() Token {
	line := l.cur.line

	if op, ok := matchOperator(l.src, l.cur.pos); ok {
		l.cur.pos += len(op)

		return Token{Lexeme: op, Kind: KindOperator, Line: line}
	}

	c := l.src[l.cur.pos]
	l.cur.pos++

	if isDelimiter(c) {
		return Token{Lexeme: string(c), Kind: KindDelimiter, Line: line}
	}

	return Token{Lexeme: string(c), Kind: KindUnknown, Line: line}
}

func (l *Lexer) scanIdentifier() string {
	start := l.cur.pos

	for l.cur.pos < len(l.src) && isAlphanumeric(l.src[l.cur.pos]) {
		l.cur.pos++
	}

	return l.src[start:l.cur.pos]
}

// skipLineComment consumes "//" through the end of the line, leaving
// the newline itself for the whitespace rule to count.
func (l *Lexer) skipLineComment() {
	l.cur.pos += 2

	for l.cur.pos < len(l.src) && l.src[l.cur.pos] != '\n' {
		l.cur.pos++
	}
}

// skipBlockComment consumes "/*" through the closing "*/". Newlines
// inside the comment bump the line counter. An unterminated comment
// consumes everything to end of input.
func (l *Lexer) skipBlockComment() {
	l.cur.pos += 2

	for l.cur.pos < len(l.src) {
		if l.src[l.cur.pos] == '*' && l.peek(1) == '/' {
			l.cur.pos += 2

			return
		}

		if l.src[l.cur.pos] == '\n' {
			l.cur.line++
		}

		l.cur.pos++
	}
}

// peek returns the byte offset bytes past the cursor, or 0 at end of
// input.
func (l *Lexer) peek(offset int) byte {
	if i := l.cur.pos + offset; i < len(l.src) {
		return l.src[i]
	}

	return 0
}
