package gojson

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	j "github.com/goccy/go-json"

	"github.com/reoring/tinyjson"
)

// Driver returns a tinyjson.JSONDriver backed by goccy/go-json.
func Driver() tinyjson.JSONDriver { return driverGoJSON{} }

type driverGoJSON struct{}

func (driverGoJSON) Name() string { return "go-json" }

func (driverGoJSON) Decode(data []byte, opt tinyjson.ParseOpt) (tinyjson.Value, error) {
	if err := tinyjson.CheckSize(data, opt); err != nil {
		return tinyjson.Value{}, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return tinyjson.Value{}, tinyjson.EmptyInputError(len(data))
	}
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return tinyjson.Value{}, fmt.Errorf("go-json: %w", err)
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
