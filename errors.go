package id3tag

import (
	"github.com/simonhull/id3tag/internal/types"
)

// OutOfBoundsError is an alias to types.OutOfBoundsError.
// Returned when a file ends inside a header or frame payload.
type OutOfBoundsError = types.OutOfBoundsError

// NotID3Error is an alias to types.NotID3Error.
// Returned when a file does not start with the "ID3" magic.
type NotID3Error = types.NotID3Error

// CorruptedFileError is an alias to types.CorruptedFileError.
// Returned when a frame declares an impossible size.
type CorruptedFileError = types.CorruptedFileError

// FileNotFoundError is an alias to types.FileNotFoundError.
type FileNotFoundError = types.FileNotFoundError

// TagNotFoundError is an alias to types.TagNotFoundError.
// Returned by Edit when the requested frame is not in the file.
type TagNotFoundError = types.TagNotFoundError

// UnknownFrameError is an alias to types.UnknownFrameError.
type UnknownFrameError = types.UnknownFrameError

// ValueTooLargeError is an alias to types.ValueTooLargeError.
type ValueTooLargeError = types.ValueTooLargeError

// Warning is an alias to types.Warning.
type Warning = types.Warning
