package internal

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetLevel(logrus.WarnLevel)
}

// SetDebug raises the package log level to debug. Used by drivers.
func SetDebug(enabled bool) {
	if enabled {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
}

// SetLogOutput redirects package logging, mainly for tests.
func SetLogOutput(w io.Writer) {
	log.Out = w
}

// Lexer errors
var errUnclosedString = errors.New("closing quote was expected")
var errBadEscape = errors.New("unknown escape sequence in string")
var errStringNewline = errors.New("line break inside string")
var errIllegalChar = errors.New("illegal character")
var errUnexpectedToken = errors.New("unexpected token")

// Runtime errors
var errUndefinedMethod = errors.New("call for an undefined method")
var errCannotCompare = errors.New("cannot compare objects")

// LexerError is any fault raised while scanning the input or by the
// Expect helpers. It aborts lexing entirely, there is no recovery.
type LexerError struct {
	Err  error
	Line int
}

func (e *LexerError) Error() string {
	return fmt.Sprintf("lexer error on line %d: %v", e.Line, e.Err)
}

func (e *LexerError) Unwrap() error { return e.Err }

// RuntimeError is an interpreter-level fault surfaced to the script
// author: an undefined method call or an impossible comparison.
type RuntimeError struct {
	Err error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error: %v", e.Err)
}

func (e *RuntimeError) Unwrap() error { return e.Err }
