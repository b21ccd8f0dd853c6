package id3tag

import (
	"log/slog"

	"github.com/simonhull/id3tag/internal/types"
)

// Option configures behavior when opening files for viewing.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	tag, err := id3tag.Open("song.mp3",
//	    id3tag.WithStrictParsing(),
//	    id3tag.WithLogger(logger),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	strictParsing  bool // Fail on any warning
	ignoreWarnings bool // Suppress all warnings
	maxFrameSize   int  // Largest declared frame size accepted
	logger         *slog.Logger
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		strictParsing:  false,
		ignoreWarnings: false,
		maxFrameSize:   types.DefaultMaxFrameSize,
		logger:         slog.New(slog.DiscardHandler),
	}
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default, frames the catalog does not know and payloads without a
// terminator are reported as warnings alongside the decoded fields. With
// strict parsing enabled, the first warning becomes an error.
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// Tag.Warnings will always be empty.
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}

// WithMaxFrameSize sets the largest declared frame size, in bytes, that will
// be read. Frames declaring more are rejected with a CorruptedFileError
// before any buffer is allocated for them.
//
// Default is 16 MiB. Values <= 0 keep the default.
func WithMaxFrameSize(bytes int) Option {
	return func(o *openOptions) {
		if bytes > 0 {
			o.maxFrameSize = bytes
		}
	}
}

// WithLogger sets the structured logger used while decoding.
//
// Frames are logged at debug level and warnings at warn level. By default
// nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *openOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
