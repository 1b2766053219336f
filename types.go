package tinyjson

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DefaultMaxDepth is the nesting limit applied when Parse is called without
// options.
const DefaultMaxDepth = 1000

// ParseOpt bundles parsing options. A zero field disables the corresponding
// limit.
type ParseOpt struct {
	// MaxDepth bounds container nesting; the root container has depth 1.
	MaxDepth int `yaml:"max_depth"`
	// MaxBytes bounds the input length in bytes.
	MaxBytes int64 `yaml:"max_bytes"`
}

// DefaultParseOpt returns the options used when none are passed.
func DefaultParseOpt() ParseOpt { return ParseOpt{MaxDepth: DefaultMaxDepth} }

// resolveOpt picks the last option, or the defaults when none are given.
func resolveOpt(opts []ParseOpt) ParseOpt {
	if len(opts) == 0 {
		return DefaultParseOpt()
	}
	return opts[len(opts)-1]
}

// ParseOptFromYAML loads limits from a YAML document such as
//
//	max_depth: 64
//	max_bytes: 1048576
//
// An empty document or omitted fields keep their DefaultParseOpt values.
// Unknown fields and negative limits are rejected.
func ParseOptFromYAML(data []byte) (ParseOpt, error) {
	opt := DefaultParseOpt()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opt); err != nil && !errors.Is(err, io.EOF) {
		return ParseOpt{}, fmt.Errorf("tinyjson: parse options: %w", err)
	}
	if opt.MaxDepth < 0 || opt.MaxBytes < 0 {
		return ParseOpt{}, fmt.Errorf("tinyjson: parse options: negative limit (max_depth=%d, max_bytes=%d)", opt.MaxDepth, opt.MaxBytes)
	}
	return opt, nil
}
