package lexer

import "slices"

type Keyword string

const (
	KeywordInt       Keyword = "int"
	KeywordFloat     Keyword = "float"
	KeywordDouble    Keyword = "double"
	KeywordChar      Keyword = "char"
	KeywordLong      Keyword = "long"
	KeywordShort     Keyword = "short"
	KeywordBool      Keyword = "bool"
	KeywordVoid      Keyword = "void"
	KeywordIf        Keyword = "if"
	KeywordElse      Keyword = "else"
	KeywordFor       Keyword = "for"
	KeywordWhile     Keyword = "while"
	KeywordDo        Keyword = "do"
	KeywordReturn    Keyword = "return"
	KeywordSwitch    Keyword = "switch"
	KeywordCase      Keyword = "case"
	KeywordBreak     Keyword = "break"
	KeywordContinue  Keyword = "continue"
	KeywordClass     Keyword = "class"
	KeywordStruct    Keyword = "struct"
	KeywordPublic    Keyword = "public"
	KeywordPrivate   Keyword = "private"
	KeywordProtected Keyword = "protected"
	KeywordInclude   Keyword = "include"
	KeywordNamespace Keyword = "namespace"
	KeywordUsing     Keyword = "using"
)

var keywords = []Keyword{
	KeywordInt,
	KeywordFloat,
	KeywordDouble,
	KeywordChar,
	KeywordLong,
	KeywordShort,
	KeywordBool,
	KeywordVoid,
	KeywordIf,
	KeywordElse,
	KeywordFor,
	KeywordWhile,
	KeywordDo,
	KeywordReturn,
	KeywordSwitch,
	KeywordCase,
	KeywordBreak,
	KeywordContinue,
	KeywordClass,
	KeywordStruct,
	KeywordPublic,
	KeywordPrivate,
	KeywordProtected,
	KeywordInclude,
	KeywordNamespace,
	KeywordUsing,
}

func checkKeyword(ident string) (Keyword, bool) {
	if slices.Contains(keywords, Keyword(ident)) {
		return Keyword(ident), true
	}

	return "", false
}
