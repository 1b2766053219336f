package source_test

import (
	"testing"

	"github.com/reoring/tinyjson"
	_ "github.com/reoring/tinyjson/source"
)

func TestImportInstallsGoJSON(t *testing.T) {
	if got := tinyjson.CurrentJSONDriver().Name(); got != "go-json" {
		t.Fatalf("expected go-json default after import, got %s", got)
	}
	v, err := tinyjson.Decode([]byte(`{"a":"é"}`))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	a, _ := v.Get("a")
	if s, _ := a.AsString(); s != "é" {
		t.Fatalf("expected decoded escape, got %q", s)
	}
}
