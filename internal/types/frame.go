// Package types provides the core data structures of the ID3 frame codec.
//
// This package defines the tag header, frame header and decoded Field types
// shared by the codec, the public API and the command line tool.
package types

import "fmt"

const (
	// HeaderSize is the size of the ID3 tag header: 3 magic bytes plus 7
	// bytes of version, flags and size that are carried but not interpreted.
	HeaderSize = 10

	// FrameHeaderSize is the size of a frame header: identifier, size and
	// 3 bytes of flags/padding.
	FrameHeaderSize = 11

	// DefaultMaxFrameSize bounds a declared frame size before a payload
	// buffer is allocated for it.
	DefaultMaxFrameSize = 16 << 20

	// Terminator is the byte that ends every text payload.
	Terminator byte = 0x00

	// LabelWidth is the column width labels are padded to when printed.
	LabelWidth = 20
)

// Magic is the identifier every ID3v2 tag starts with.
var Magic = [3]byte{'I', 'D', '3'}

// FrameID is a 4-character frame identifier such as "TIT2".
type FrameID string

// Valid reports whether id is four characters from [A-Z0-9].
func (id FrameID) Valid() bool {
	if len(id) != 4 {
		return false
	}
	for i := range len(id) {
		c := id[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// Header is the 10-byte tag header.
type Header struct {
	Magic [3]byte
	Rest  [7]byte // version, flags and tag size, carried verbatim
}

// FrameHeader is the fixed-size prefix of every frame.
type FrameHeader struct {
	ID    FrameID
	Size  uint32  // declared size in host order, terminator included
	Flags [3]byte // carried verbatim, never interpreted
}

// ContentLen returns the number of displayable content bytes, which is the
// declared size minus the terminator.
func (h FrameHeader) ContentLen() int {
	if h.Size == 0 {
		return 0
	}
	return int(h.Size) - 1
}

// Padding reports whether the header marks the start of tag padding.
func (h FrameHeader) Padding() bool {
	return len(h.ID) > 0 && h.ID[0] == 0
}

// EndOfTag reports whether the identifier cannot start a frame, which is
// where the tag region ends: padding, or the audio data that follows a tag
// with fewer frames than the catalog holds.
func (h FrameHeader) EndOfTag() bool {
	return !h.ID.Valid()
}

// Field is one decoded frame: its identifier, display label and content.
type Field struct {
	ID      FrameID
	Label   string
	Content string
	Offset  int64 // file offset of the frame header
}

// String renders the field as a padded "label : content" line.
func (f Field) String() string {
	return fmt.Sprintf("%-*s  :    %s", LabelWidth, f.Label, f.Content)
}
