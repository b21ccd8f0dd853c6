package id3tag

import (
	"github.com/simonhull/id3tag/internal/catalog"
	"github.com/simonhull/id3tag/internal/types"
)

// FrameID is an alias to types.FrameID.
type FrameID = types.FrameID

// Field is an alias to types.Field.
type Field = types.Field

// Known frame identifiers.
const (
	FrameTitle   FrameID = "TIT2"
	FrameArtist  FrameID = "TPE1"
	FrameAlbum   FrameID = "TALB"
	FrameYear    FrameID = "TYER"
	FrameGenre   FrameID = "TCON"
	FrameComment FrameID = "COMM"
)

// KnownFrames returns the identifiers this package views and edits, in the
// order they are expected in a file.
func KnownFrames() []FrameID {
	return catalog.Default.IDs()
}

// Label returns the display label for a frame identifier. Unknown
// identifiers are returned unchanged.
func Label(id FrameID) string {
	return catalog.Default.Label(id)
}

// FrameForOption maps a command line switch (-t, -a, -A, -y, -C, -c) to its
// frame identifier.
func FrameForOption(opt string) (FrameID, bool) {
	e, ok := catalog.Default.ByOption(opt)
	return e.ID, ok
}

// FormatField renders a field as a padded "label : content" line.
func FormatField(f Field) string {
	return f.String()
}

// checkFrameID rejects identifiers that cannot name a frame at all. Any
// well-formed identifier is accepted, whether or not the catalog knows it.
func checkFrameID(id FrameID) error {
	if !id.Valid() {
		return &UnknownFrameError{ID: id, Known: catalog.Default.IDs()}
	}
	return nil
}
