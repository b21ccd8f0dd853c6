package types

import (
	"fmt"
	"io/fs"
	"strings"
)

// OutOfBoundsError is returned when the stream ends inside a header or payload.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Err    error
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s: read of %d bytes at offset %d ran past end of file while reading %s",
		e.Path, e.Length, e.Offset, e.What)
}

func (e *OutOfBoundsError) Unwrap() error {
	return e.Err
}

// NotID3Error is returned when a file does not start with the "ID3" magic.
type NotID3Error struct {
	Path  string
	Magic []byte
}

func (e *NotID3Error) Error() string {
	return fmt.Sprintf("%s: not an MP3 file with an ID3v2 tag (magic %q)", e.Path, e.Magic)
}

// CorruptedFileError is returned when file structure is invalid.
type CorruptedFileError struct {
	Path   string
	Reason string
	Offset int64
}

func (e *CorruptedFileError) Error() string {
	return fmt.Sprintf("%s: corrupted file at offset %d: %s", e.Path, e.Offset, e.Reason)
}

// FileNotFoundError is returned when the source file cannot be opened.
type FileNotFoundError struct {
	Path string
	Err  error
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("%s: file is not available: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error, so errors.Is(err, fs.ErrNotExist)
// works for missing files.
func (e *FileNotFoundError) Unwrap() error {
	if e.Err == nil {
		return fs.ErrNotExist
	}
	return e.Err
}

// TagNotFoundError is returned when an edit scans the whole tag without
// meeting the requested frame.
type TagNotFoundError struct {
	Path string
	ID   FrameID
}

func (e *TagNotFoundError) Error() string {
	return fmt.Sprintf("%s: tag %s not found", e.Path, e.ID)
}

// UnknownFrameError is returned when a caller names a frame identifier or
// option that the catalog does not know.
type UnknownFrameError struct {
	ID    FrameID
	Known []FrameID
}

func (e *UnknownFrameError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown frame %q", string(e.ID))
	}
	known := make([]string, len(e.Known))
	for i, id := range e.Known {
		known[i] = string(id)
	}
	return fmt.Sprintf("unknown frame %q (known: %s)", string(e.ID), strings.Join(known, ", "))
}

// ValueTooLargeError is returned when replacement content would exceed the
// maximum frame size.
type ValueTooLargeError struct {
	ID     FrameID
	Length int
	Max    int
}

func (e *ValueTooLargeError) Error() string {
	return fmt.Sprintf("value for %s is %d bytes, maximum is %d", e.ID, e.Length, e.Max)
}

// Warning represents a non-fatal issue encountered during decoding.
//
// Examples include frames whose identifier is not in the catalog or content
// that carries bytes past its terminator.
type Warning struct {
	// Stage where the warning occurred
	Stage string // "header", "frame"

	// Warning message
	Message string

	// File offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
