// Package id3 implements the ID3v2 frame-stream codec: header and frame
// header decoding, the tag reader and the streaming tag editor.
package id3

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	binutil "github.com/simonhull/id3tag/internal/binary"
	"github.com/simonhull/id3tag/internal/catalog"
	"github.com/simonhull/id3tag/internal/types"
)

// Config carries the settings shared by the reader and the editor.
type Config struct {
	Path         string           // used in error messages only
	MaxFrameSize int              // upper bound for a declared frame size
	Catalog      *catalog.Catalog // known frames; also bounds the scan
	Logger       *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.MaxFrameSize <= 0 {
		c.MaxFrameSize = types.DefaultMaxFrameSize
	}
	if c.Catalog == nil {
		c.Catalog = catalog.Default
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// ReadHeader reads the 10-byte tag header and checks the "ID3" magic.
func ReadHeader(r *binutil.Reader) (types.Header, error) {
	var h types.Header

	if err := r.ReadExact(h.Magic[:], "ID3 magic"); err != nil {
		var sre *binutil.ShortReadError
		if errors.As(err, &sre) {
			// Too short to even hold the magic: not an ID3 file either.
			return h, &types.NotID3Error{Path: r.Path(), Magic: h.Magic[:sre.Got]}
		}
		return h, err
	}
	if h.Magic != types.Magic {
		return h, &types.NotID3Error{Path: r.Path(), Magic: h.Magic[:]}
	}

	if err := r.ReadExact(h.Rest[:], "ID3 header"); err != nil {
		return h, outOfBounds(err)
	}
	return h, nil
}

// WriteHeader writes h unchanged.
func WriteHeader(w *binutil.Writer, h types.Header) error {
	if err := w.WriteBytes(h.Magic[:]); err != nil {
		return err
	}
	return w.WriteBytes(h.Rest[:])
}

// ReadFrameHeader reads an identifier, a big-endian declared size and 3 bytes
// of flags.
//
// io.EOF is returned unwrapped when the stream ends exactly at a frame
// boundary. When the identifier marks the end of the tag (see
// FrameHeader.EndOfTag) only those 4 bytes are consumed and the header is
// returned without a size.
func ReadFrameHeader(r *binutil.Reader, maxSize int) (types.FrameHeader, error) {
	var h types.FrameHeader
	start := r.Offset()

	var id [4]byte
	if err := r.ReadFull(id[:], "frame identifier"); err != nil {
		if errors.Is(err, io.EOF) {
			return h, io.EOF
		}
		return h, outOfBounds(err)
	}
	h.ID = types.FrameID(id[:])
	if h.EndOfTag() {
		return h, nil
	}

	var size [4]byte
	if err := r.ReadExact(size[:], fmt.Sprintf("frame %s size", h.ID)); err != nil {
		return h, outOfBounds(err)
	}
	h.Size = binutil.FromDisk(size)

	if err := r.ReadExact(h.Flags[:], fmt.Sprintf("frame %s flags", h.ID)); err != nil {
		return h, outOfBounds(err)
	}

	if err := validateSize(h, maxSize, r.Path(), start); err != nil {
		return h, err
	}
	return h, nil
}

// WriteFrameHeader writes h with its size converted back to disk order.
func WriteFrameHeader(w *binutil.Writer, h types.FrameHeader) error {
	if err := w.WriteString(string(h.ID)); err != nil {
		return err
	}
	size := binutil.ToDisk(h.Size)
	if err := w.WriteBytes(size[:]); err != nil {
		return err
	}
	return w.WriteBytes(h.Flags[:])
}

// ReadPayload reads the declared payload of a frame and splits off the
// terminator. terminated is false when the last byte is not a zero byte.
func ReadPayload(r *binutil.Reader, h types.FrameHeader) (content []byte, terminated bool, err error) {
	buf := make([]byte, h.Size)
	if err := r.ReadExact(buf, fmt.Sprintf("frame %s payload", h.ID)); err != nil {
		return nil, false, outOfBounds(err)
	}
	n := h.ContentLen()
	return buf[:n], buf[n] == types.Terminator, nil
}

// WritePayload writes content followed by the terminator.
func WritePayload(w *binutil.Writer, content string) error {
	if err := w.WriteString(content); err != nil {
		return err
	}
	return w.WriteBytes([]byte{types.Terminator})
}

func validateSize(h types.FrameHeader, maxSize int, path string, offset int64) error {
	if h.Size == 0 {
		return &types.CorruptedFileError{
			Path:   path,
			Offset: offset,
			Reason: fmt.Sprintf("frame %s declares size 0, no room for terminator", h.ID),
		}
	}
	if int64(h.Size) > int64(maxSize) {
		return &types.CorruptedFileError{
			Path:   path,
			Offset: offset,
			Reason: fmt.Sprintf("frame %s declares size %d, maximum is %d", h.ID, h.Size, maxSize),
		}
	}
	return nil
}

// outOfBounds converts a short read from the binary layer into the public
// error type.
func outOfBounds(err error) error {
	var sre *binutil.ShortReadError
	if errors.As(err, &sre) {
		return &types.OutOfBoundsError{
			Path:   sre.Path,
			What:   sre.What,
			Offset: sre.Offset,
			Length: sre.Want,
			Err:    err,
		}
	}
	return err
}
