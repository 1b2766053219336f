package tinyjson

import (
	eng "github.com/reoring/tinyjson/internal/engine"
)

// TokenKind classifies a lexical token. The alias and constants mirror the
// internal engine kinds so callers can inspect Tokenize output.
type TokenKind = eng.Kind

const (
	TokenNull               TokenKind = eng.KindNull
	TokenNumber             TokenKind = eng.KindNumber
	TokenString             TokenKind = eng.KindString
	TokenQuote              TokenKind = eng.KindQuote
	TokenBoolean            TokenKind = eng.KindBool
	TokenLeftBrace          TokenKind = eng.KindLeftBrace
	TokenRightBrace         TokenKind = eng.KindRightBrace
	TokenLeftSquareBracket  TokenKind = eng.KindLeftSquareBracket
	TokenRightSquareBracket TokenKind = eng.KindRightSquareBracket
	TokenColon              TokenKind = eng.KindColon
	TokenComma              TokenKind = eng.KindComma
)

// Token is a (kind, offset, length) span into the tokenized input. Use
// Token.Text(input) to resolve the covered text.
type Token = eng.Token

// Tokenize splits input into tokens. It is the first stage of Parse and is
// exposed for diagnostics and tooling.
func Tokenize(input string) ([]Token, error) { return eng.Tokenize(input) }
