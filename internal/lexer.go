package internal

import (
	"fmt"
	"io"
	"io/ioutil"
	"strconv"
	"strings"
)

// dentSpaces is the indentation quantum: one Indent/Dedent per two spaces.
const dentSpaces = 2

var keywords = map[string]TokenType{
	"class":  CLASS,
	"return": RETURN,
	"if":     IF,
	"else":   ELSE,
	"def":    DEF,
	"print":  PRINT,
	"and":    AND,
	"or":     OR,
	"not":    NOT,
	"None":   NONE,
	"True":   TRUE,
	"False":  FALSE,
}

// Lexer tokenizes the whole input eagerly on construction and then
// exposes a single forward cursor over the token sequence.
type Lexer struct {
	source  string
	start   int
	current int
	line    int
	dent    int

	tokens []Token
	cursor int
}

// NewLexer reads all of r and scans it. Any lexical fault aborts
// construction, there is no resynchronization.
func NewLexer(r io.Reader) (*Lexer, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	l := &Lexer{source: string(b), line: 1}
	if err := l.scan(); err != nil {
		return nil, err
	}
	return l, nil
}

// CurrentToken returns the token under the cursor without advancing.
func (l *Lexer) CurrentToken() Token {
	return l.tokens[l.cursor]
}

// NextToken advances the cursor and returns the new current token.
// At the end of the stream it keeps returning the trailing Eof.
func (l *Lexer) NextToken() Token {
	if l.cursor+1 >= len(l.tokens) {
		return l.tokens[l.cursor]
	}
	l.cursor++
	return l.tokens[l.cursor]
}

// Tokens returns the full scanned sequence.
func (l *Lexer) Tokens() []Token {
	return l.tokens
}

// Expect returns the current token if it has the given type and a
// lexical fault otherwise.
func (l *Lexer) Expect(tt TokenType) (Token, error) {
	tk := l.CurrentToken()
	if tk.Type != tt {
		return Token{}, &LexerError{
			Err:  fmt.Errorf("%w: expected %v, got %v", errUnexpectedToken, tt, tk),
			Line: l.line,
		}
	}
	return tk, nil
}

// ExpectToken checks type and carried value of the current token.
func (l *Lexer) ExpectToken(want Token) error {
	if tk := l.CurrentToken(); tk != want {
		return &LexerError{
			Err:  fmt.Errorf("%w: expected %v, got %v", errUnexpectedToken, want, tk),
			Line: l.line,
		}
	}
	return nil
}

// ExpectNext advances and then behaves like Expect.
func (l *Lexer) ExpectNext(tt TokenType) (Token, error) {
	l.NextToken()
	return l.Expect(tt)
}

// ExpectNextToken advances and then behaves like ExpectToken.
func (l *Lexer) ExpectNextToken(want Token) error {
	l.NextToken()
	return l.ExpectToken(want)
}

func (l *Lexer) scan() error {
	// Indentation of the very first line is not significant.
	l.skipSpaces()
	for !l.isAtEnd() {
		l.start = l.current
		if err := l.scanToken(); err != nil {
			return err
		}
	}

	if len(l.tokens) > 0 && l.tokens[len(l.tokens)-1].Type != NEWLINE {
		l.emit(Token{Type: NEWLINE})
	}
	for l.dent > 0 {
		l.emit(Token{Type: DEDENT})
		l.dent--
	}
	l.emit(Token{Type: EOF})

	log.WithField("tokens", len(l.tokens)).Debug("lexing complete")
	return nil
}

func (l *Lexer) scanToken() error {
	c := l.peek()
	switch {
	case c == ' ':
		l.advance()
	case c == '\n':
		l.scanNewline()
	case c == '\'' || c == '"':
		return l.scanString()
	case isAlpha(c):
		l.scanIdentifier()
	case isDigit(c):
		return l.scanNumber()
	case isPunct(c):
		l.scanChar()
	default:
		return &LexerError{
			Err:  fmt.Errorf("%w %q", errIllegalChar, c),
			Line: l.line,
		}
	}
	return nil
}

func (l *Lexer) scanNewline() {
	l.advance()
	l.line++
	// Runs of blank lines collapse into a single Newline, and leading
	// blank lines produce none at all.
	if len(l.tokens) > 0 && l.tokens[len(l.tokens)-1].Type != NEWLINE {
		l.emit(Token{Type: NEWLINE})
	}
	l.scanDent()
}

// scanDent measures the indentation of the line that just started and
// emits one Indent/Dedent per dentSpaces of difference against the
// tracked level. A partial unit still counts as a whole step.
func (l *Lexer) scanDent() {
	spaces := 0
	for !l.isAtEnd() && l.peek() == ' ' {
		l.advance()
		spaces++
	}
	if l.isAtEnd() || l.peek() == '\n' {
		// Blank line: the tracked level is untouched.
		return
	}
	if spaces > l.dent*dentSpaces {
		diff := spaces - l.dent*dentSpaces
		for diff > 0 {
			diff -= dentSpaces
			l.emit(Token{Type: INDENT})
			l.dent++
		}
	} else if spaces < l.dent*dentSpaces {
		diff := l.dent*dentSpaces - spaces
		for diff > 0 {
			diff -= dentSpaces
			l.emit(Token{Type: DEDENT})
			l.dent--
		}
	}
}

func (l *Lexer) scanString() error {
	quote := l.advance()
	var sb strings.Builder
	for {
		if l.isAtEnd() {
			return &LexerError{Err: errUnclosedString, Line: l.line}
		}
		c := l.advance()
		if c == quote {
			break
		}
		switch c {
		case '\\':
			if l.isAtEnd() {
				return &LexerError{Err: errUnclosedString, Line: l.line}
			}
			switch esc := l.advance(); esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '"':
				sb.WriteByte('"')
			case '\'':
				sb.WriteByte('\'')
			case '\\':
				sb.WriteByte('\\')
			default:
				return &LexerError{
					Err:  fmt.Errorf("%w: \\%c", errBadEscape, esc),
					Line: l.line,
				}
			}
		case '\n', '\r':
			return &LexerError{Err: errStringNewline, Line: l.line}
		default:
			sb.WriteByte(c)
		}
	}
	l.emit(StringToken(sb.String()))
	return nil
}

func (l *Lexer) scanIdentifier() {
	for !l.isAtEnd() && isAlphaNumeric(l.peek()) {
		l.advance()
	}
	word := l.source[l.start:l.current]
	if tt, ok := keywords[word]; ok {
		l.emit(Token{Type: tt})
		return
	}
	l.emit(IdToken(word))
}

func (l *Lexer) scanNumber() error {
	for !l.isAtEnd() && isDigit(l.peek()) {
		l.advance()
	}
	n, err := strconv.Atoi(l.source[l.start:l.current])
	if err != nil {
		return &LexerError{Err: err, Line: l.line}
	}
	l.emit(NumberToken(n))
	return nil
}

func (l *Lexer) scanChar() {
	c := l.advance()
	switch {
	case c == '#':
		// Comment runs to the end of the line and emits nothing.
		for !l.isAtEnd() && l.peek() != '\n' {
			l.advance()
		}
	case c == '=' && l.match('='):
		l.emit(Token{Type: EQ})
	case c == '!' && l.match('='):
		l.emit(Token{Type: NOT_EQ})
	case c == '>' && l.match('='):
		l.emit(Token{Type: GREATER_EQ})
	case c == '<' && l.match('='):
		l.emit(Token{Type: LESS_EQ})
	default:
		l.emit(CharToken(c))
	}
}

func (l *Lexer) skipSpaces() {
	for !l.isAtEnd() && l.peek() == ' ' {
		l.advance()
	}
}

func (l *Lexer) emit(tk Token) {
	l.tokens = append(l.tokens, tk)
}

func (l *Lexer) advance() byte {
	c := l.source[l.current]
	l.current++
	return c
}

func (l *Lexer) peek() byte {
	return l.source[l.current]
}

func (l *Lexer) match(c byte) bool {
	if l.isAtEnd() || l.source[l.current] != c {
		return false
	}
	l.current++
	return true
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func isPunct(c byte) bool {
	return c > ' ' && c <= '~' && !isAlpha(c) && !isDigit(c)
}
