package binary

import (
	"encoding/binary"
	"io"
)

// Writer wraps io.Writer with position tracking.
type Writer struct {
	w      io.Writer
	offset int64
}

// NewWriter creates a new Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:      w,
		offset: 0,
	}
}

// Offset returns the current position (number of bytes written).
func (sw *Writer) Offset() int64 {
	return sw.offset
}

// Write implements io.Writer so a Writer can be an io.Copy destination.
func (sw *Writer) Write(b []byte) (int, error) {
	n, err := sw.w.Write(b)
	sw.offset += int64(n)
	return n, err
}

// WriteBytes writes raw bytes to the underlying writer.
func (sw *Writer) WriteBytes(b []byte) error {
	_, err := sw.Write(b)
	return err
}

// WriteString writes a string as bytes to the underlying writer.
func (sw *Writer) WriteString(s string) error {
	return sw.WriteBytes([]byte(s))
}

// WriteBE writes a value of type T in big-endian byte order.
// T must be uint8, uint16, or uint32.
func WriteBE[T uint8 | uint16 | uint32](sw *Writer, val T) error {
	var buf []byte

	var zero T
	switch any(zero).(type) {
	case uint8:
		buf = []byte{byte(val)}
	case uint16:
		buf = make([]byte, 2)
		binary.BigEndian.PutUint16(buf, uint16(val))
	case uint32:
		buf = make([]byte, 4)
		binary.BigEndian.PutUint32(buf, uint32(val))
	}

	return sw.WriteBytes(buf)
}
