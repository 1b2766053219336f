package tinyjson

// Package tinyjson provides:
//
// - A tagged Value model (null, bool, number, string, array, object)
// - A single-pass tokenizer that reports (kind, offset, length) spans
// - A recursive-descent parser with depth and size limits
// - Typed, fail-fast errors with byte offsets and JSON Pointer paths
// - A pluggable JSONDriver SPI for decoding with other JSON libraries
//
// Design policy:
// - Keep only public APIs in the root package; put the tokenizer under internal/.
// - Place alternative decoders under source/.
// - No I/O, logging or global mutable state on the parse path; Parse is safe
//   for concurrent use on different inputs.
//
// String contents are copied byte for byte; escape sequences are not decoded
// by the native parser. Use a source/... driver when full RFC 8259 decoding
// is required.
//
// Typical usage:
//
//  v, err := tinyjson.Parse(`{"key": [123, true, null]}`)
//  if iss, ok := tinyjson.AsIssue(err); ok {
//      log.Printf("%s at %d (%s)", iss.Code, iss.Offset, iss.Path)
//  }
//  n, _ := v.At("/key/0")
//
//  opt, err := tinyjson.ParseOptFromYAML(cfg)
//  v, err = tinyjson.Parse(input, opt)
//
