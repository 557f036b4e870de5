package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanCharLiteral(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name     string
		input    string
		wantLex  string
		wantPos  int
		wantLine int
	}{
		{name: "simple", input: "'a'b", wantLex: "'a'", wantPos: 3, wantLine: 1},
		{name: "escape", input: `'\n'x`, wantLex: `'\n'`, wantPos: 4, wantLine: 1},
		{name: "escaped quote", input: `'\''`, wantLex: `'\''`, wantPos: 4, wantLine: 1},
		{name: "quote only", input: "'", wantLex: "'", wantPos: 1, wantLine: 1},
		{name: "backslash at end", input: `'\`, wantLex: `'\`, wantPos: 2, wantLine: 1},
		{name: "missing close", input: "'ab", wantLex: "'a", wantPos: 2, wantLine: 1},
		{name: "empty literal", input: "''", wantLex: "''", wantPos: 2, wantLine: 1},
		{name: "newline payload", input: "'\n'", wantLex: "'\n'", wantPos: 3, wantLine: 2},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lex, cur := scanCharLiteral(tc.input, cursor{pos: 0, line: 1})

			require.Equal(t, tc.wantLex, lex)
			require.Equal(t, tc.wantPos, cur.pos)
			require.Equal(t, tc.wantLine, cur.line)
		})
	}
}

func TestScanStringLiteral(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name     string
		input    string
		wantLex  string
		wantPos  int
		wantLine int
	}{
		{name: "simple", input: `"ab"c`, wantLex: `"ab"`, wantPos: 4, wantLine: 1},
		{name: "empty", input: `""`, wantLex: `""`, wantPos: 2, wantLine: 1},
		{name: "escaped quote", input: `"a\"b"`, wantLex: `"a\"b"`, wantPos: 6, wantLine: 1},
		{name: "unterminated", input: `"ab`, wantLex: `"ab`, wantPos: 3, wantLine: 1},
		{name: "backslash at end", input: `"a\`, wantLex: `"a\`, wantPos: 3, wantLine: 1},
		{name: "embedded newline", input: "\"a\nb\"", wantLex: "\"a\nb\"", wantPos: 5, wantLine: 2},
		{name: "two newlines", input: "\"a\n\nb\"c", wantLex: "\"a\n\nb\"", wantPos: 6, wantLine: 3},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lex, cur := scanStringLiteral(tc.input, cursor{pos: 0, line: 1})

			require.Equal(t, tc.wantLex, lex)
			require.Equal(t, tc.wantPos, cur.pos)
			require.Equal(t, tc.wantLine, cur.line)
		})
	}
}

func TestScanNumber(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name    string
		input   string
		wantLex string
		wantPos int
	}{
		{name: "integer", input: "123;", wantLex: "123", wantPos: 3},
		{name: "fraction", input: "12.34", wantLex: "12.34", wantPos: 5},
		{name: "leading dot", input: ".45", wantLex: ".45", wantPos: 3},
		{name: "trailing dot", input: "7.", wantLex: "7.", wantPos: 2},
		{name: "exponent", input: "1e10", wantLex: "1e10", wantPos: 4},
		{name: "signed exponent", input: "1.2e-3", wantLex: "1.2e-3", wantPos: 6},
		{name: "upper exponent", input: "3E+4", wantLex: "3E+4", wantPos: 4},
		{name: "rollback no digits", input: "1e+z", wantLex: "1", wantPos: 1},
		{name: "rollback at end", input: "2e", wantLex: "2", wantPos: 1},
		{name: "rollback sign at end", input: "3E+", wantLex: "3", wantPos: 1},
		{name: "lone dot", input: ".", wantLex: ".", wantPos: 1},
		{name: "stops at second dot", input: "1.2.3", wantLex: "1.2", wantPos: 3},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lex, cur := scanNumber(tc.input, cursor{pos: 0, line: 1})

			require.Equal(t, tc.wantLex, lex)
			require.Equal(t, tc.wantPos, cur.pos)
			require.Equal(t, 1, cur.line, "scanNumber never crosses lines")
		})
	}
}

func TestHasDigit(t *testing.T) {
	t.Parallel()

	require.True(t, hasDigit("1"))
	require.True(t, hasDigit(".5"))
	require.True(t, hasDigit("7."))
	require.False(t, hasDigit("."))
	require.False(t, hasDigit(""))
	require.False(t, hasDigit("e+"))
}

func TestMatchOperator(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name   string
		input  string
		pos    int
		want   string
		wantOK bool
	}{
		{name: "three chars", input: "<<=x", pos: 0, want: "<<=", wantOK: true},
		{name: "two chars", input: "<<a", pos: 0, want: "<<", wantOK: true},
		{name: "one char", input: "<a", pos: 0, want: "<", wantOK: true},
		{name: "at offset", input: "a>>=b", pos: 1, want: ">>=", wantOK: true},
		{name: "single at end of input", input: "ab+", pos: 2, want: "+", wantOK: true},
		{name: "two at end of input", input: "&&", pos: 0, want: "&&", wantOK: true},
		{name: "not an operator", input: ".x", pos: 0, wantOK: false},
		{name: "delimiter is not an operator", input: ";", pos: 0, wantOK: false},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := matchOperator(tc.input, tc.pos)

			require.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				require.Equal(t, tc.want, got)
			}
		})
	}
}
