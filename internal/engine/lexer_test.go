package engine

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize_Delimiters(t *testing.T) {
	cases := map[string]Kind{
		"{": KindLeftBrace,
		"}": KindRightBrace,
		"[": KindLeftSquareBracket,
		"]": KindRightSquareBracket,
		":": KindColon,
		",": KindComma,
	}
	for in, want := range cases {
		toks, err := Tokenize(in)
		if err != nil {
			t.Fatalf("%q: err: %v", in, err)
		}
		if diff := cmp.Diff([]Token{{Kind: want, Offset: 0, Len: 1}}, toks); diff != "" {
			t.Fatalf("%q: tokens mismatch (-want +got):\n%s", in, diff)
		}
	}
}

func TestTokenize_Object(t *testing.T) {
	src := `{"key": [12.5, true, null, false]}`
	toks, err := Tokenize(src)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := []Token{
		{KindLeftBrace, 0, 1},
		{KindQuote, 1, 1},
		{KindString, 2, 3},
		{KindQuote, 5, 1},
		{KindColon, 6, 1},
		{KindLeftSquareBracket, 8, 1},
		{KindNumber, 9, 4},
		{KindComma, 13, 1},
		{KindBool, 15, 4},
		{KindComma, 19, 1},
		{KindNull, 21, 4},
		{KindComma, 25, 1},
		{KindBool, 27, 5},
		{KindRightSquareBracket, 32, 1},
		{KindRightBrace, 33, 1},
	}
	if diff := cmp.Diff(want, toks); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
	if got := toks[2].Text(src); got != "key" {
		t.Fatalf("expected key text, got %q", got)
	}
	if got := toks[6].Text(src); got != "12.5" {
		t.Fatalf("expected number text, got %q", got)
	}
}

func TestTokenize_EmptyQuotedString(t *testing.T) {
	toks, err := Tokenize(`""`)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := []Token{{KindQuote, 0, 1}, {KindString, 1, 0}, {KindQuote, 1, 1}}
	if diff := cmp.Diff(want, toks); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize_StringIsRawBytes(t *testing.T) {
	src := `"a{b}:[c], d"`
	toks, err := Tokenize(src)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(toks))
	}
	if got := toks[1].Text(src); got != "a{b}:[c], d" {
		t.Fatalf("unexpected string body %q", got)
	}
}

func TestTokenize_WordStopsAtQuote(t *testing.T) {
	toks, err := Tokenize(`true"x"`)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	kinds := []Kind{}
	for _, tk := range toks {
		kinds = append(kinds, tk.Kind)
	}
	want := []Kind{KindBool, KindQuote, KindString, KindQuote}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize_Empty(t *testing.T) {
	for _, in := range []string{"", " \t\r\n "} {
		toks, err := Tokenize(in)
		if err != nil {
			t.Fatalf("%q: err: %v", in, err)
		}
		if len(toks) != 0 {
			t.Fatalf("%q: expected no tokens, got %v", in, toks)
		}
	}
}

func TestTokenize_Errors(t *testing.T) {
	cases := []struct {
		in     string
		code   string
		offset int
		text   string
	}{
		{`{"k": "unterminated`, CodeUnterminatedString, 6, ""},
		{`"`, CodeUnterminatedString, 0, ""},
		{`[nul]`, CodeUnsupportedToken, 1, "nul"},
		{`{"a": True}`, CodeUnsupportedToken, 6, "True"},
		{`[+1]`, CodeUnsupportedToken, 1, "+1"},
		{`01`, CodeMalformedNumber, 0, "01"},
		{`[1.2.3]`, CodeMalformedNumber, 1, "1.2.3"},
		{`1e5e5`, CodeMalformedNumber, 0, "1e5e5"},
		{`1.`, CodeMalformedNumber, 0, "1."},
		{`-`, CodeMalformedNumber, 0, "-"},
		{`2e`, CodeMalformedNumber, 0, "2e"},
		{`12abc`, CodeMalformedNumber, 0, "12abc"},
	}
	for _, tc := range cases {
		_, err := Tokenize(tc.in)
		var le *LexError
		if !errors.As(err, &le) {
			t.Fatalf("%q: expected LexError, got %v", tc.in, err)
		}
		if le.Code != tc.code || le.Offset != tc.offset || le.Text != tc.text {
			t.Fatalf("%q: got %+v", tc.in, *le)
		}
		if le.Error() == "" {
			t.Fatalf("%q: empty message", tc.in)
		}
	}
}

func TestLexError_TruncatesLongWords(t *testing.T) {
	word := strings.Repeat("x", 100)
	_, err := Tokenize(word)
	var le *LexError
	if !errors.As(err, &le) {
		t.Fatalf("expected LexError, got %v", err)
	}
	if len(le.Text) != maxFragment+3 || !strings.HasSuffix(le.Text, "...") {
		t.Fatalf("expected truncated fragment, got %q", le.Text)
	}
}

func TestLexError_TruncatesOnRuneBoundary(t *testing.T) {
	word := "x" + strings.Repeat("é", 40)
	_, err := Tokenize(word)
	var le *LexError
	if !errors.As(err, &le) {
		t.Fatalf("expected LexError, got %v", err)
	}
	if !utf8.ValidString(le.Text) {
		t.Fatalf("fragment split a rune: %q", le.Text)
	}
	if want := "x" + strings.Repeat("é", 15) + "..."; le.Text != want {
		t.Fatalf("expected %q, got %q", want, le.Text)
	}
}

func TestClip(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 8, "short"},
		{"abcdef", 3, "abc..."},
		{"日本語", 4, "日..."},
		{"日本語", 3, "日..."},
		{"日本語", 2, "..."},
	}
	for _, tc := range cases {
		if got := Clip(tc.in, tc.n); got != tc.want {
			t.Fatalf("Clip(%q, %d) = %q, want %q", tc.in, tc.n, got, tc.want)
		}
	}
}

func TestValidNumber(t *testing.T) {
	good := []string{"0", "-0", "7", "123", "-123", "0.5", "12.25", "1e10", "1E+2", "2.5e-3", "-0.0e0"}
	bad := []string{"", "-", "00", "01", "-01", ".5", "1.", "1e", "1e+", "1.2.3", "1e2e3", "0x10", "1_000", "--1"}
	for _, s := range good {
		if !ValidNumber(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	for _, s := range bad {
		if ValidNumber(s) {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}

// Concatenating token spans with the skipped whitespace gaps reproduces the
// input exactly, and no span covers whitespace outside a string body.
func TestTokenize_SpanReconstruction(t *testing.T) {
	inputs := []string{
		`{}`,
		" [ 1 ,\t2 ,\r\n3 ] ",
		`{"a b": {"c":[true,false,null]}, "d" : -1.5e3}`,
		"\n\n\"\"\n",
	}
	for _, src := range inputs {
		toks, err := Tokenize(src)
		if err != nil {
			t.Fatalf("%q: err: %v", src, err)
		}
		var b strings.Builder
		prev := 0
		for i, tk := range toks {
			if tk.Offset < prev {
				t.Fatalf("%q: token %d overlaps previous span", src, i)
			}
			gap := src[prev:tk.Offset]
			if strings.Trim(gap, " \t\r\n") != "" {
				t.Fatalf("%q: non-whitespace gap %q before token %d", src, gap, i)
			}
			text := tk.Text(src)
			if tk.Kind != KindString && strings.ContainsAny(text, " \t\r\n") {
				t.Fatalf("%q: token %d covers whitespace", src, i)
			}
			b.WriteString(gap)
			b.WriteString(text)
			prev = tk.End()
		}
		rest := src[prev:]
		if strings.Trim(rest, " \t\r\n") != "" {
			t.Fatalf("%q: non-whitespace tail %q", src, rest)
		}
		b.WriteString(rest)
		if b.String() != src {
			t.Fatalf("reconstruction mismatch: %q vs %q", b.String(), src)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindLeftBrace.String() != "'{'" || KindNumber.String() != "number" {
		t.Fatalf("unexpected kind names")
	}
	if Kind(99).String() != "unknown" {
		t.Fatalf("expected unknown for out-of-range kind")
	}
}
