// Package binary provides the byte-level primitives of the ID3 frame codec:
// byte-order conversion and offset-tracking stream readers and writers.
package binary

import (
	"errors"
	"fmt"
	"io"
)

// ErrShortRead reports that the stream ended in the middle of a field.
var ErrShortRead = errors.New("short read")

// Reader wraps an io.Reader with offset tracking and helpful error messages.
//
// Unlike io.ReaderAt based readers it consumes the stream strictly forward,
// so it works on pipes and stdin as well as files.
type Reader struct {
	r      io.Reader
	path   string
	offset int64
}

// NewReader creates a new Reader positioned at offset 0.
func NewReader(r io.Reader, path string) *Reader {
	return &Reader{
		r:    r,
		path: path,
	}
}

// Path returns the file path associated with this reader.
func (r *Reader) Path() string {
	return r.path
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 {
	return r.offset
}

// ReadFull fills b from the stream.
//
// If the stream is already exhausted, io.EOF is returned unwrapped so callers
// can tell a clean end from a truncated field. A partial read is reported as
// a *ShortReadError.
func (r *Reader) ReadFull(b []byte, what string) error {
	n, err := io.ReadFull(r.r, b)
	r.offset += int64(n)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		return io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		return &ShortReadError{
			Path:   r.path,
			What:   what,
			Offset: r.offset - int64(n),
			Want:   len(b),
			Got:    n,
		}
	default:
		return fmt.Errorf("%s: failed to read %s at offset %d: %w", r.path, what, r.offset, err)
	}
}

// ReadExact is ReadFull without the clean-EOF distinction: any missing byte
// is a *ShortReadError.
func (r *Reader) ReadExact(b []byte, what string) error {
	start := r.offset
	err := r.ReadFull(b, what)
	if errors.Is(err, io.EOF) {
		return &ShortReadError{Path: r.path, What: what, Offset: start, Want: len(b)}
	}
	return err
}

// Skip discards n bytes.
func (r *Reader) Skip(n int64, what string) error {
	got, err := io.CopyN(io.Discard, r.r, n)
	r.offset += got
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &ShortReadError{Path: r.path, What: what, Offset: r.offset - got, Want: int(n), Got: int(got)}
		}
		return fmt.Errorf("%s: failed to skip %s at offset %d: %w", r.path, what, r.offset, err)
	}
	return nil
}

// CopyTo copies n bytes to w.
func (r *Reader) CopyTo(w *Writer, n int64, what string) error {
	got, err := io.CopyN(w, r.r, n)
	r.offset += got
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &ShortReadError{Path: r.path, What: what, Offset: r.offset - got, Want: int(n), Got: int(got)}
		}
		return fmt.Errorf("%s: failed to copy %s at offset %d: %w", r.path, what, r.offset, err)
	}
	return nil
}

// CopyRest copies everything left in the stream to w.
func (r *Reader) CopyRest(w *Writer) (int64, error) {
	n, err := io.Copy(w, r.r)
	r.offset += n
	if err != nil {
		return n, fmt.Errorf("%s: failed to copy trailing data at offset %d: %w", r.path, r.offset, err)
	}
	return n, nil
}

// ShortReadError is returned when the stream ends inside a field.
type ShortReadError struct {
	Path   string
	What   string
	Offset int64
	Want   int
	Got    int
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("%s: short read for %s at offset %d: got %d bytes, expected %d",
		e.Path, e.What, e.Offset, e.Got, e.Want)
}

// Unwrap lets callers match with errors.Is(err, ErrShortRead).
func (e *ShortReadError) Unwrap() error {
	return ErrShortRead
}
