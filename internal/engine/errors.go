package engine

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/reoring/tinyjson/i18n"
)

// Lexical error codes.
const (
	CodeUnsupportedToken   = "unsupported_token"
	CodeUnterminatedString = "unterminated_string"
	CodeMalformedNumber    = "malformed_number"
)

// maxFragment bounds the word text carried by a LexError.
const maxFragment = 32

// LexError reports input that cannot be split into tokens. Offset is the
// byte position where the offending word or quoted region starts.
type LexError struct {
	Code   string
	Offset int
	Text   string
}

func (e *LexError) Error() string {
	msg := i18n.T(e.Code, nil)
	if e.Text != "" {
		return fmt.Sprintf("%s %q at offset %d", msg, e.Text, e.Offset)
	}
	return fmt.Sprintf("%s at offset %d", msg, e.Offset)
}

// Is matches another *LexError with the same code.
func (e *LexError) Is(target error) bool {
	var t *LexError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

func lexError(code string, offset int, text string) *LexError {
	return &LexError{Code: code, Offset: offset, Text: Clip(text, maxFragment)}
}

// Clip shortens s to at most n bytes plus "...", cutting on a rune boundary.
func Clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
