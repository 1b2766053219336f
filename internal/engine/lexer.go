package engine

import "strings"

// Tokenize splits src into tokens in a single left-to-right pass.
// Whitespace is skipped and never covered by a token. A quoted region always
// yields exactly three tokens: Quote, String (possibly empty), Quote.
func Tokenize(src string) ([]Token, error) {
	if src == "" {
		return nil, nil
	}
	toks := make([]Token, 0, len(src)/4+1)
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == '"':
			next, err := scanQuoted(src, i, &toks)
			if err != nil {
				return nil, err
			}
			i = next
		case isWhitespace(c):
			i++
		default:
			if k, ok := delimiterKind(c); ok {
				toks = append(toks, Token{Kind: k, Offset: i, Len: 1})
				i++
				continue
			}
			next, err := scanWord(src, i, &toks)
			if err != nil {
				return nil, err
			}
			i = next
		}
	}
	return toks, nil
}

// scanQuoted consumes a quoted region starting at the opening quote and
// returns the offset just past the closing quote.
func scanQuoted(src string, start int, toks *[]Token) (int, error) {
	body := start + 1
	n := strings.IndexByte(src[body:], '"')
	if n < 0 {
		return 0, lexError(CodeUnterminatedString, start, "")
	}
	*toks = append(*toks,
		Token{Kind: KindQuote, Offset: start, Len: 1},
		Token{Kind: KindString, Offset: body, Len: n},
		Token{Kind: KindQuote, Offset: body + n, Len: 1},
	)
	return body + n + 1, nil
}

// scanWord consumes the maximal run of bytes up to the next whitespace,
// delimiter or quote, and classifies it.
func scanWord(src string, start int, toks *[]Token) (int, error) {
	end := start
	for end < len(src) && !isWordBoundary(src[end]) {
		end++
	}
	word := src[start:end]
	tok := Token{Offset: start, Len: end - start}
	switch {
	case isDigit(word[0]) || word[0] == '-':
		if !ValidNumber(word) {
			return 0, lexError(CodeMalformedNumber, start, word)
		}
		tok.Kind = KindNumber
	case word == "null":
		tok.Kind = KindNull
	case word == "true" || word == "false":
		tok.Kind = KindBool
	default:
		return 0, lexError(CodeUnsupportedToken, start, word)
	}
	*toks = append(*toks, tok)
	return end, nil
}

func isWordBoundary(c byte) bool {
	if c == '"' || isWhitespace(c) {
		return true
	}
	_, ok := delimiterKind(c)
	return ok
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// ValidNumber reports whether s is a complete numeric literal:
//
//	-? (0 | [1-9][0-9]*) (.[0-9]+)? ([eE][+-]?[0-9]+)?
func ValidNumber(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	switch {
	case i < len(s) && s[i] == '0':
		i++
	case i < len(s) && s[i] >= '1' && s[i] <= '9':
		i = skipDigits(s, i)
	default:
		return false
	}
	if i < len(s) && s[i] == '.' {
		j := skipDigits(s, i+1)
		if j == i+1 {
			return false
		}
		i = j
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		j := skipDigits(s, i)
		if j == i {
			return false
		}
		i = j
	}
	return i == len(s)
}

func skipDigits(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}
