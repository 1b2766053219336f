package jsonparser

import (
	"bytes"
	"fmt"

	jp "github.com/buger/jsonparser"

	"github.com/reoring/tinyjson"
	eng "github.com/reoring/tinyjson/internal/engine"
)

// Driver returns a tinyjson.JSONDriver backed by buger/jsonparser. The walk
// checks MaxDepth while descending, so deep input is rejected before it is
// materialized.
//
// jsonparser skips over value bodies without validating them, so the walk
// also checks number literals and container separators itself.
func Driver() tinyjson.JSONDriver { return driver{} }

type driver struct{}

func (driver) Name() string { return "jsonparser" }

func (driver) Decode(data []byte, opt tinyjson.ParseOpt) (tinyjson.Value, error) {
	if err := tinyjson.CheckSize(data, opt); err != nil {
		return tinyjson.Value{}, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return tinyjson.Value{}, tinyjson.EmptyInputError(len(data))
	}
	raw, typ, end, err := jp.Get(data)
	if err != nil {
		return tinyjson.Value{}, fmt.Errorf("jsonparser: %w", err)
	}
	if len(bytes.TrimSpace(data[end:])) > 0 {
		return tinyjson.Value{}, tinyjson.TrailingDataError(end)
	}
	w := walker{opt: opt}
	return w.build(raw, typ, tinyjson.PathRef{})
}

type walker struct {
	opt   tinyjson.ParseOpt
	depth int
}

func (w *walker) build(raw []byte, typ jp.ValueType, at tinyjson.PathRef) (tinyjson.Value, error) {
	switch typ {
	case jp.Null:
		return tinyjson.Null(), nil
	case jp.Boolean:
		b, err := jp.ParseBoolean(raw)
		if err != nil {
			return tinyjson.Value{}, fmt.Errorf("jsonparser: %w", err)
		}
		return tinyjson.Bool(b), nil
	case jp.Number:
		if !eng.ValidNumber(string(raw)) {
			return tinyjson.Value{}, &tinyjson.LexError{Code: tinyjson.CodeMalformedNumber, Offset: -1, Text: string(raw)}
		}
		f, err := jp.ParseFloat(raw)
		if err != nil {
			return tinyjson.Value{}, &tinyjson.SyntaxError{
				Code:   tinyjson.CodeInvalidNumber,
				Offset: -1,
				Path:   at.Pointer(),
				Found:  fmt.Sprintf("number %q", raw),
			}
		}
		return tinyjson.Number(f), nil
	case jp.String:
		s, err := jp.ParseString(raw)
		if err != nil {
			return tinyjson.Value{}, fmt.Errorf("jsonparser: %w", err)
		}
		return tinyjson.String(s), nil
	case jp.Array:
		return w.array(raw, at)
	case jp.Object:
		return w.object(raw, at)
	}
	return tinyjson.Value{}, fmt.Errorf("jsonparser: unsupported value type %v", typ)
}

func (w *walker) enter(at tinyjson.PathRef) error {
	w.depth++
	if w.opt.MaxDepth > 0 && w.depth > w.opt.MaxDepth {
		return &tinyjson.LimitError{Code: tinyjson.CodeMaxDepth, Offset: -1, Path: at.Pointer(), Limit: int64(w.opt.MaxDepth)}
	}
	return nil
}

// danglingComma reports whether the last separator before the closing
// delimiter of raw is a comma, as in [1,] or {"a":1,}.
func danglingComma(raw []byte) bool {
	body := bytes.TrimRight(raw[:len(raw)-1], " \t\r\n")
	return len(body) > 1 && body[len(body)-1] == ','
}

func (w *walker) array(raw []byte, at tinyjson.PathRef) (tinyjson.Value, error) {
	if err := w.enter(at); err != nil {
		return tinyjson.Value{}, err
	}
	defer func() { w.depth-- }()

	if danglingComma(raw) {
		return tinyjson.Value{}, &tinyjson.SyntaxError{Code: tinyjson.CodeUnexpectedToken, Offset: -1, Path: at.Pointer(), Found: "']'"}
	}
	elems := []tinyjson.Value{}
	var inner error
	_, err := jp.ArrayEach(raw, func(v []byte, vt jp.ValueType, _ int, err error) {
		if inner != nil {
			return
		}
		if err != nil {
			inner = fmt.Errorf("jsonparser: %w", err)
			return
		}
		ev, err := w.build(v, vt, at.Index(len(elems)))
		if err != nil {
			inner = err
			return
		}
		elems = append(elems, ev)
	})
	if inner != nil {
		return tinyjson.Value{}, inner
	}
	if err != nil {
		return tinyjson.Value{}, fmt.Errorf("jsonparser: %w", err)
	}
	return tinyjson.Array(elems...), nil
}

func (w *walker) object(raw []byte, at tinyjson.PathRef) (tinyjson.Value, error) {
	if err := w.enter(at); err != nil {
		return tinyjson.Value{}, err
	}
	defer func() { w.depth-- }()

	if danglingComma(raw) {
		return tinyjson.Value{}, &tinyjson.SyntaxError{Code: tinyjson.CodeInvalidString, Offset: -1, Path: at.Pointer(), Found: "'}'"}
	}
	m := map[string]tinyjson.Value{}
	var inner error
	// ObjectEach hands over keys already unescaped.
	err := jp.ObjectEach(raw, func(key, v []byte, vt jp.ValueType, _ int) error {
		k := string(key)
		ev, err := w.build(v, vt, at.Field(k))
		if err != nil {
			inner = err
			return err
		}
		m[k] = ev
		return nil
	})
	if inner != nil {
		return tinyjson.Value{}, inner
	}
	if err != nil {
		return tinyjson.Value{}, fmt.Errorf("jsonparser: %w", err)
	}
	return tinyjson.Object(m), nil
}
