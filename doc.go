// Package id3tag views and edits the text frames of the ID3v2 tag at the
// head of an MP3 file.
//
// Six frames are known by name: Title (TIT2), Artist (TPE1), Album (TALB),
// Year (TYER), Music/Genre (TCON) and Comment (COMM).
//
// # Quick Start
//
// Viewing a file:
//
//	tag, err := id3tag.Open("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, field := range tag.Fields {
//		fmt.Println(field)
//	}
//
// Editing one frame:
//
//	res, err := id3tag.Edit("song.mp3", id3tag.FrameTitle, "New Title")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%s changed from %q to %q\n", res.Label, res.OldValue, res.NewValue)
//
// # File Layout
//
// A tag is the 3-byte magic "ID3" followed by 7 header bytes that are
// carried through unchanged, then a run of frames. Each frame is a 4-byte
// identifier, a 4-byte big-endian size, 3 bytes of flags and a payload of
// exactly size bytes whose last byte is a zero terminator:
//
//	"ID3" vvvvvvv | TIT2 00000006 000000 "Hello\x00" | TPE1 ...
//
// The displayed content of a frame is its payload minus the terminator.
// Frames are scanned until as many frames as there are known tags have been
// read, the stream ends at a frame boundary, or an identifier that is not
// four characters from [A-Z0-9] marks the end of the tag (padding, or the
// audio that follows a short tag).
//
// # Editing
//
// Edit never modifies the file in place. It streams the file into a
// temporary file next to it, replacing the payload and size of the target
// frame and copying every other byte verbatim, then renames the temporary
// file over the original. If anything fails, including the frame not being
// found, the temporary file is removed and the original is left untouched.
//
// # Error Handling
//
// All errors are typed and can be matched with errors.As:
//
//   - *FileNotFoundError: the file could not be opened
//   - *NotID3Error: the file does not start with "ID3"
//   - *TagNotFoundError: Edit did not meet the requested frame
//   - *OutOfBoundsError: the file ends inside a header or payload
//   - *CorruptedFileError: a frame declares a size of 0 or above the limit
//
// Non-fatal issues, such as a frame the catalog does not know, are collected
// in Tag.Warnings.
//
// # Concurrency
//
// OpenMany views many files in parallel with a bounded worker pool. A single
// Open or Edit is sequential.
package id3tag
