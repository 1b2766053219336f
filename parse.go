package tinyjson

import (
	"fmt"
	"strconv"
	"strings"

	eng "github.com/reoring/tinyjson/internal/engine"
)

// Parse decodes exactly one value from input. It tokenizes the whole input
// first, then runs a recursive-descent parser over the tokens. Any token left
// after the value is an error (CodeTrailingData), as is input holding no
// tokens at all (CodeEmptyInput).
//
// Without options DefaultParseOpt applies; otherwise the last ParseOpt wins.
// Strings in the result are copied, so the tree does not retain input.
func Parse(input string, opts ...ParseOpt) (Value, error) {
	opt := resolveOpt(opts)
	if err := checkSize(len(input), opt); err != nil {
		return Value{}, err
	}
	toks, err := eng.Tokenize(input)
	if err != nil {
		return Value{}, err
	}
	p := &parser{src: input, toks: toks, opt: opt}
	if len(toks) == 0 {
		return Value{}, p.syntaxError(CodeEmptyInput)
	}
	v, err := p.parseValue()
	if err != nil {
		return Value{}, err
	}
	if p.pos < len(p.toks) {
		return Value{}, p.syntaxError(CodeTrailingData)
	}
	return v, nil
}

// ParseBytes is Parse over a byte slice.
func ParseBytes(data []byte, opts ...ParseOpt) (Value, error) {
	return Parse(string(data), opts...)
}

// parser consumes a token slice front to back. Recursion depth follows the
// nesting depth of the input and is bounded by opt.MaxDepth.
type parser struct {
	src   string
	toks  []eng.Token
	pos   int
	depth int
	opt   ParseOpt
	// path points at the value being parsed; it is only rendered when an
	// error is built.
	path PathRef
}

func (p *parser) at(k eng.Kind) bool {
	return p.pos < len(p.toks) && p.toks[p.pos].Kind == k
}

func (p *parser) parseValue() (Value, error) {
	if p.pos >= len(p.toks) {
		return Value{}, p.syntaxError(CodeUnexpectedToken)
	}
	tok := p.toks[p.pos]
	switch tok.Kind {
	case eng.KindLeftBrace:
		return p.parseObject()
	case eng.KindLeftSquareBracket:
		return p.parseArray()
	case eng.KindQuote:
		s, err := p.parseString()
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	case eng.KindNumber:
		f, err := strconv.ParseFloat(tok.Text(p.src), 64)
		if err != nil {
			return Value{}, p.syntaxError(CodeInvalidNumber)
		}
		p.pos++
		return Number(f), nil
	case eng.KindBool:
		switch tok.Text(p.src) {
		case "true":
			p.pos++
			return Bool(true), nil
		case "false":
			p.pos++
			return Bool(false), nil
		}
	case eng.KindNull:
		if tok.Text(p.src) == "null" {
			p.pos++
			return Null(), nil
		}
	}
	return Value{}, p.syntaxError(CodeUnexpectedToken)
}

func (p *parser) parseObject() (Value, error) {
	if err := p.enter(); err != nil {
		return Value{}, err
	}
	defer p.leave()

	m := make(map[string]Value)
	if p.at(eng.KindRightBrace) {
		p.pos++
		return Object(m), nil
	}
	for {
		key, err := p.parseString()
		if err != nil {
			return Value{}, err
		}
		if !p.at(eng.KindColon) {
			return Value{}, p.syntaxError(CodeColonExpected)
		}
		p.pos++

		p.path.push(key)
		v, err := p.parseValue()
		p.path.pop()
		if err != nil {
			return Value{}, err
		}
		// last write wins
		m[key] = v

		if !p.at(eng.KindComma) {
			break
		}
		p.pos++
	}
	if !p.at(eng.KindRightBrace) {
		return Value{}, p.syntaxError(CodeUnterminatedObject)
	}
	p.pos++
	return Object(m), nil
}

func (p *parser) parseArray() (Value, error) {
	if err := p.enter(); err != nil {
		return Value{}, err
	}
	defer p.leave()

	arr := []Value{}
	if p.at(eng.KindRightSquareBracket) {
		p.pos++
		return Array(arr...), nil
	}
	for {
		p.path.push(strconv.Itoa(len(arr)))
		v, err := p.parseValue()
		p.path.pop()
		if err != nil {
			return Value{}, err
		}
		arr = append(arr, v)

		if !p.at(eng.KindComma) {
			break
		}
		p.pos++
	}
	if !p.at(eng.KindRightSquareBracket) {
		return Value{}, p.syntaxError(CodeUnterminatedArray)
	}
	p.pos++
	return Array(arr...), nil
}

// parseString consumes a Quote, String, Quote triple.
func (p *parser) parseString() (string, error) {
	if p.pos+2 >= len(p.toks) ||
		p.toks[p.pos].Kind != eng.KindQuote ||
		p.toks[p.pos+1].Kind != eng.KindString ||
		p.toks[p.pos+2].Kind != eng.KindQuote {
		return "", p.syntaxError(CodeInvalidString)
	}
	s := strings.Clone(p.toks[p.pos+1].Text(p.src))
	p.pos += 3
	return s, nil
}

// enter consumes the opening delimiter of a container and checks the depth
// limit before any recursion happens.
func (p *parser) enter() error {
	p.depth++
	if p.opt.MaxDepth > 0 && p.depth > p.opt.MaxDepth {
		return &LimitError{
			Code:   CodeMaxDepth,
			Offset: p.toks[p.pos].Offset,
			Path:   p.path.Pointer(),
			Limit:  int64(p.opt.MaxDepth),
		}
	}
	p.pos++
	return nil
}

func (p *parser) leave() { p.depth-- }

// syntaxError builds an error positioned at the current token, or at the end
// of input when all tokens have been consumed.
func (p *parser) syntaxError(code string) *SyntaxError {
	e := &SyntaxError{Code: code, Path: p.path.Pointer()}
	if p.pos >= len(p.toks) {
		e.Offset = len(p.src)
		e.Found = "EOF"
		return e
	}
	tok := p.toks[p.pos]
	e.Offset = tok.Offset
	e.Found = describeToken(tok, p.src)
	return e
}

// maxFound bounds the token text quoted in SyntaxError.Found.
const maxFound = 32

func describeToken(tok eng.Token, src string) string {
	switch tok.Kind {
	case eng.KindNumber, eng.KindBool, eng.KindNull, eng.KindString:
		return fmt.Sprintf("%s %q", tok.Kind, eng.Clip(tok.Text(src), maxFound))
	}
	return tok.Kind.String()
}
