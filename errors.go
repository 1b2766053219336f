package tinyjson

import (
	"errors"
	"fmt"

	"github.com/reoring/tinyjson/i18n"
	eng "github.com/reoring/tinyjson/internal/engine"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	// Lexical
	CodeUnsupportedToken   = eng.CodeUnsupportedToken
	CodeUnterminatedString = eng.CodeUnterminatedString
	CodeMalformedNumber    = eng.CodeMalformedNumber
	// Syntax
	CodeUnexpectedToken    = "unexpected_token"
	CodeColonExpected      = "colon_expected"
	CodeUnterminatedObject = "unterminated_object"
	CodeUnterminatedArray  = "unterminated_array"
	CodeInvalidString      = "invalid_string"
	CodeInvalidNumber      = "invalid_number"
	CodeTrailingData       = "trailing_data"
	CodeEmptyInput         = "empty_input"
	// Limits
	CodeMaxDepth = "max_depth"
	CodeTooLarge = "too_large"
)

// LexError reports input that could not be tokenized.
type LexError = eng.LexError

// SyntaxError reports a token sequence that does not match the grammar.
// Offset is the byte offset of the offending token, or the input length when
// the input ended early. Path is the JSON Pointer of the value being parsed,
// "" at the root.
type SyntaxError struct {
	Code   string
	Offset int
	Path   string
	// Found describes the offending token ("EOF" when input ended).
	Found string
}

func (e *SyntaxError) Error() string {
	msg := i18n.T(e.Code, nil)
	if e.Found != "" {
		msg += " (found " + e.Found + ")"
	}
	return fmt.Sprintf("%s at offset %d, path %q", msg, e.Offset, e.Path)
}

// Is matches another *SyntaxError with the same code, so the sentinel values
// below work with errors.Is.
func (e *SyntaxError) Is(target error) bool {
	var t *SyntaxError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// LimitError reports input rejected by a ParseOpt limit.
type LimitError struct {
	Code   string
	Offset int
	Path   string
	Limit  int64
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%s (limit %d) at offset %d, path %q", i18n.T(e.Code, nil), e.Limit, e.Offset, e.Path)
}

func (e *LimitError) Is(target error) bool {
	var t *LimitError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Sentinels for errors.Is. Only the Code is compared.
var (
	ErrUnsupportedToken   error = &LexError{Code: CodeUnsupportedToken}
	ErrUnterminatedString error = &LexError{Code: CodeUnterminatedString}
	ErrMalformedNumber    error = &LexError{Code: CodeMalformedNumber}
	ErrUnexpectedToken    error = &SyntaxError{Code: CodeUnexpectedToken}
	ErrColonExpected      error = &SyntaxError{Code: CodeColonExpected}
	ErrUnterminatedObject error = &SyntaxError{Code: CodeUnterminatedObject}
	ErrUnterminatedArray  error = &SyntaxError{Code: CodeUnterminatedArray}
	ErrInvalidString      error = &SyntaxError{Code: CodeInvalidString}
	ErrInvalidNumber      error = &SyntaxError{Code: CodeInvalidNumber}
	ErrTrailingData       error = &SyntaxError{Code: CodeTrailingData}
	ErrEmptyInput         error = &SyntaxError{Code: CodeEmptyInput}
	ErrMaxDepth           error = &LimitError{Code: CodeMaxDepth}
	ErrTooLarge           error = &LimitError{Code: CodeTooLarge}
)

// Issue is a uniform, presentation-oriented view of any decode error.
type Issue struct {
	Code    string
	Path    string // JSON Pointer; "" at the root and for lexical errors.
	Offset  int    // Byte offset in the input (-1 when unknown).
	Message string
	// InputFragment is the offending input text when known.
	InputFragment string
}

// AsIssue extracts an Issue from errors returned by this package.
func AsIssue(err error) (Issue, bool) {
	if err == nil {
		return Issue{}, false
	}
	var le *LexError
	if errors.As(err, &le) {
		return Issue{Code: le.Code, Offset: le.Offset, Message: i18n.T(le.Code, nil), InputFragment: le.Text}, true
	}
	var se *SyntaxError
	if errors.As(err, &se) {
		return Issue{Code: se.Code, Path: se.Path, Offset: se.Offset, Message: i18n.T(se.Code, nil), InputFragment: se.Found}, true
	}
	var lim *LimitError
	if errors.As(err, &lim) {
		return Issue{Code: lim.Code, Path: lim.Path, Offset: lim.Offset, Message: i18n.T(lim.Code, nil)}, true
	}
	return Issue{}, false
}

// CodeOf returns the error code carried by err, or "" when err did not come
// from this package.
func CodeOf(err error) string {
	iss, _ := AsIssue(err)
	return iss.Code
}
