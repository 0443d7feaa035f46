package internal

import "fmt"

// TokenType identifies one kind of lexical unit
type TokenType int

const (
	EOF TokenType = iota - 1

	// Valued tokens.
	// 42, variable, =, "text"
	NUMBER
	IDENT
	CHAR
	STRING

	// Keywords.
	// class, return, if, else, def, print
	CLASS
	RETURN
	IF
	ELSE
	DEF
	PRINT

	// Block structure.
	NEWLINE
	INDENT
	DEDENT

	// Logic and comparison.
	// and, or, not, ==, !=, <=, >=
	AND
	OR
	NOT
	EQ
	NOT_EQ
	LESS_EQ
	GREATER_EQ

	// Literal keywords.
	// None, True, False
	NONE
	TRUE
	FALSE
)

var tokenNames = map[TokenType]string{
	EOF:        "Eof",
	NUMBER:     "Number",
	IDENT:      "Id",
	CHAR:       "Char",
	STRING:     "String",
	CLASS:      "Class",
	RETURN:     "Return",
	IF:         "If",
	ELSE:       "Else",
	DEF:        "Def",
	PRINT:      "Print",
	NEWLINE:    "Newline",
	INDENT:     "Indent",
	DEDENT:     "Dedent",
	AND:        "And",
	OR:         "Or",
	NOT:        "Not",
	EQ:         "Eq",
	NOT_EQ:     "NotEq",
	LESS_EQ:    "LessOrEq",
	GREATER_EQ: "GreaterOrEq",
	NONE:       "None",
	TRUE:       "True",
	FALSE:      "False",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a single lexical unit. Only the value field matching the
// type is ever set, so plain == compares type plus carried value.
type Token struct {
	Type TokenType
	Num  int    // NUMBER
	Text string // IDENT, STRING
	Ch   byte   // CHAR
}

func NumberToken(n int) Token    { return Token{Type: NUMBER, Num: n} }
func IdToken(name string) Token  { return Token{Type: IDENT, Text: name} }
func CharToken(c byte) Token     { return Token{Type: CHAR, Ch: c} }
func StringToken(s string) Token { return Token{Type: STRING, Text: s} }

func (t Token) String() string {
	switch t.Type {
	case NUMBER:
		return fmt.Sprintf("Number{%d}", t.Num)
	case IDENT:
		return fmt.Sprintf("Id{%s}", t.Text)
	case CHAR:
		return fmt.Sprintf("Char{%c}", t.Ch)
	case STRING:
		return fmt.Sprintf("String{%s}", t.Text)
	}
	return t.Type.String()
}
