package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/reoring/tinyjson"
)

// Driver returns a tinyjson.JSONDriver backed by encoding/json. Unlike the
// native parser it decodes escape sequences and validates UTF-8.
func Driver() tinyjson.JSONDriver { return driver{} }

type driver struct{}

func (driver) Name() string { return "encoding/json" }

func (driver) Decode(data []byte, opt tinyjson.ParseOpt) (tinyjson.Value, error) {
	if err := tinyjson.CheckSize(data, opt); err != nil {
		return tinyjson.Value{}, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return tinyjson.Value{}, tinyjson.EmptyInputError(len(data))
		}
		return tinyjson.Value{}, fmt.Errorf("encoding/json: %w", err)
	}
	end := int(dec.InputOffset())
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return tinyjson.Value{}, tinyjson.TrailingDataError(end)
	}
	out, err := tinyjson.FromAny(v)
	if err != nil {
		return tinyjson.Value{}, err
	}
	if err := tinyjson.CheckDepth(out, opt); err != nil {
		return tinyjson.Value{}, err
	}
	return out, nil
}
