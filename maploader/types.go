package maploader

import (
	"errors"
)

// Sentinel errors returned by the loaders.
var (
	// ErrNotFound indicates that a map file could not be opened.
	ErrNotFound = errors.New("maploader: file not found")

	// ErrDecode indicates that a raster could not be decoded into an image.
	ErrDecode = errors.New("maploader: cannot decode image")

	// ErrMalformed indicates invalid text-grid or YAML descriptor content.
	ErrMalformed = errors.New("maploader: malformed map")

	// ErrNotTwoD indicates that a grid cannot be written as a 2D text map.
	ErrNotTwoD = errors.New("maploader: grid must be a non-empty 2D grid")
)

// DefaultHeader is the first line written by WriteMapText. Readers discard it.
const DefaultHeader = "# ndgridmap text map"

// Options configures the text loader and writer.
//
// FlipY  – apply FlipIndex to text cells, matching raster orientation.
// Header – first line written by WriteMapText.
type Options struct {
	FlipY  bool
	Header string
}

// Option represents a functional option for the loaders.
type Option func(*Options)

// WithFlipY makes the text loader and writer use the bottom-left-origin
// index of FlipIndex instead of the raw reading position.
func WithFlipY(flip bool) Option {
	return func(o *Options) {
		o.FlipY = flip
	}
}

// WithHeader sets the header line written by WriteMapText. Newlines are
// replaced by spaces so the header stays a single line.
func WithHeader(h string) Option {
	return func(o *Options) {
		o.Header = h
	}
}

// DefaultOptions returns the defaults: raw text orientation and DefaultHeader.
func DefaultOptions() Options {
	return Options{
		FlipY:  false,
		Header: DefaultHeader,
	}
}

func applyOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
