package tinyjson

import "sync"

// JSONDriver decodes a complete document into a Value via a pluggable SPI.
// The default implementation is the native tokenizer and parser; the
// source/... packages provide drivers backed by other JSON libraries that
// decode full RFC 8259 input, including escape sequences.
type JSONDriver interface {
	Decode(data []byte, opt ParseOpt) (Value, error)
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = nativeDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the native driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = nativeDriver{}
	jsonDriverMu.Unlock()
}

// CurrentJSONDriver returns the driver used by Decode.
func CurrentJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

// NativeDriver returns the driver backed by Parse.
func NativeDriver() JSONDriver { return nativeDriver{} }

// Decode decodes data with the current driver. Options resolve as in Parse.
func Decode(data []byte, opts ...ParseOpt) (Value, error) {
	return CurrentJSONDriver().Decode(data, resolveOpt(opts))
}

type nativeDriver struct{}

func (nativeDriver) Decode(data []byte, opt ParseOpt) (Value, error) { return ParseBytes(data, opt) }
func (nativeDriver) Name() string                                      { return "tinyjson" }

// CheckSize applies opt.MaxBytes to data. Drivers call it before decoding.
func CheckSize(data []byte, opt ParseOpt) error { return checkSize(len(data), opt) }

func checkSize(n int, opt ParseOpt) error {
	if opt.MaxBytes > 0 && int64(n) > opt.MaxBytes {
		return &LimitError{Code: CodeTooLarge, Offset: int(opt.MaxBytes), Limit: opt.MaxBytes}
	}
	return nil
}

// CheckDepth applies opt.MaxDepth to an already decoded tree. Drivers whose
// underlying library cannot stop early call it after decoding.
func CheckDepth(v Value, opt ParseOpt) error {
	if opt.MaxDepth > 0 && v.Depth() > opt.MaxDepth {
		return &LimitError{Code: CodeMaxDepth, Offset: -1, Limit: int64(opt.MaxDepth)}
	}
	return nil
}

// EmptyInputError and TrailingDataError let drivers report the same codes as
// Parse. An offset of -1 means unknown.
func EmptyInputError(n int) error {
	return &SyntaxError{Code: CodeEmptyInput, Offset: n, Found: "EOF"}
}

func TrailingDataError(offset int) error {
	return &SyntaxError{Code: CodeTrailingData, Offset: offset}
}
