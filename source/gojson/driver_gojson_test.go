package gojson

import (
	"errors"
	"testing"

	"github.com/reoring/tinyjson"
)

func TestDriver_NumbersUseFloat64(t *testing.T) {
	v, err := Driver().Decode([]byte(`[1, 2.5, -3e2]`), tinyjson.DefaultParseOpt())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := tinyjson.Array(tinyjson.Number(1), tinyjson.Number(2.5), tinyjson.Number(-300))
	if !v.Equal(want) {
		t.Fatalf("unexpected value %v", v.Interface())
	}
}

func TestDriver_TrailingOffset(t *testing.T) {
	_, err := Driver().Decode([]byte(`{"a":1}{"b":2}`), tinyjson.DefaultParseOpt())
	var se *tinyjson.SyntaxError
	if !errors.As(err, &se) || se.Code != tinyjson.CodeTrailingData || se.Offset != 7 {
		t.Fatalf("expected trailing data at offset 7, got %v", err)
	}
}

func TestDriver_RejectsLeadingZero(t *testing.T) {
	_, err := Driver().Decode([]byte(`{"a":[01]}`), tinyjson.DefaultParseOpt())
	if !errors.Is(err, tinyjson.ErrMalformedNumber) {
		t.Fatalf("expected malformed_number, got %v", err)
	}
}
