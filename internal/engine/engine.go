package engine

// Kind represents lexical token kinds.
type Kind int

const (
	KindNull Kind = iota
	KindNumber
	KindString
	KindQuote
	KindBool
	KindLeftBrace
	KindRightBrace
	KindLeftSquareBracket
	KindRightSquareBracket
	KindColon
	KindComma
)

var kindNames = [...]string{
	KindNull:               "null",
	KindNumber:             "number",
	KindString:             "string",
	KindQuote:              "quote",
	KindBool:               "boolean",
	KindLeftBrace:          "'{'",
	KindRightBrace:         "'}'",
	KindLeftSquareBracket:  "'['",
	KindRightSquareBracket: "']'",
	KindColon:              "':'",
	KindComma:              "','",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Token is a classified span of the input. Offset and Len are byte positions
// into the buffer that was tokenized; the text is resolved on demand with Text
// so tokens never hold references into the buffer themselves.
type Token struct {
	Kind   Kind
	Offset int
	Len    int
}

// Text returns the slice of src covered by the token.
func (t Token) Text(src string) string { return src[t.Offset : t.Offset+t.Len] }

// End returns the offset just past the token.
func (t Token) End() int { return t.Offset + t.Len }

// delimiterKind maps single-byte delimiters to their kind.
func delimiterKind(c byte) (Kind, bool) {
	switch c {
	case '{':
		return KindLeftBrace, true
	case '}':
		return KindRightBrace, true
	case '[':
		return KindLeftSquareBracket, true
	case ']':
		return KindRightSquareBracket, true
	case ':':
		return KindColon, true
	case ',':
		return KindComma, true
	}
	return 0, false
}

func isWhitespace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
