package source

import (
	"github.com/reoring/tinyjson"
	drvgojson "github.com/reoring/tinyjson/source/gojson"
)

// init in a separate package to avoid import cycle in root. This sets go-json as default driver.
func init() { tinyjson.SetJSONDriver(drvgojson.Driver()) }
