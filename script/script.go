// Package script replays recorded editing sessions without a window.
//
// A script is a TOML document with a surface size and an ordered list of
// steps. Pointer steps carry screen coordinates and go through the same
// input bus and binder an interactive host uses, so a replay exercises
// exactly the production event path.
//
//	width = 800
//	height = 600
//
//	[[step]]
//	kind = "click"
//	x = 400.0
//	y = 300.0
//
//	[[step]]
//	kind = "frame"
//	output = "frame-001.png"
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Step kinds.
const (
	KindClick    = "click"
	KindMove     = "move"
	KindResize   = "resize"
	KindComplete = "complete"
	KindCopy     = "copy"
	KindReset    = "reset"
	KindFrame    = "frame"
)

// Validation errors.
var (
	ErrUnknownKind   = errors.New("script: unknown step kind")
	ErrInvalidSize   = errors.New("script: invalid size")
	ErrMissingOutput = errors.New("script: frame step without output")
)

// Step is one scripted action. X and Y are screen pixels for click and
// move, and the new width and height for resize.
type Step struct {
	Kind   string  `toml:"kind"`
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Output string  `toml:"output"`
}

// Script is a decoded session.
type Script struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Steps  []Step `toml:"step"`
}

// Parse decodes and validates a script. Unknown keys are rejected.
func Parse(r io.Reader) (*Script, error) {
	var s Script
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("script: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	s, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks the surface size and every step.
func (s *Script) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, s.Width, s.Height)
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (st Step) validate() error {
	switch st.Kind {
	case KindClick, KindMove, KindComplete, KindCopy, KindReset:
		return nil
	case KindResize:
		if st.X <= 0 || st.Y <= 0 {
			return fmt.Errorf("%w: resize to %vx%v", ErrInvalidSize, st.X, st.Y)
		}
		return nil
	case KindFrame:
		if st.Output == "" {
			return ErrMissingOutput
		}
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownKind, st.Kind)
	}
}
