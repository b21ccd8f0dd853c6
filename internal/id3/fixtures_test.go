package id3

import (
	"bytes"
	"testing"

	binutil "github.com/simonhull/id3tag/internal/binary"
)

// fixtureFrame describes one frame for buildTag.
type fixtureFrame struct {
	id      string
	content string
	flags   [3]byte
}

// audioTail stands in for the MPEG audio that follows the tag.
var audioTail = []byte{0xFF, 0xFB, 0x90, 0x00, 0x01, 0x02, 0x03, 0x04}

// sixFrames returns the catalog frames in catalog order.
func sixFrames() []fixtureFrame {
	return []fixtureFrame{
		{id: "TIT2", content: "Hello"},
		{id: "TPE1", content: "The Artist"},
		{id: "TALB", content: "An Album"},
		{id: "TYER", content: "1999"},
		{id: "TCON", content: "Rock"},
		{id: "COMM", content: "eng, some comment", flags: [3]byte{0x00, 0x40, 0x00}},
	}
}

// buildTag assembles "ID3" + 7 header bytes + frames + tail, writing sizes
// with a plain big-endian encoder so the codec is checked against an
// independent path.
func buildTag(t testing.TB, frames []fixtureFrame, tail []byte) []byte {
	t.Helper()

	buf := &bytes.Buffer{}
	w := binutil.NewWriter(buf)

	must := func(err error) {
		if err != nil {
			t.Fatal(err)
		}
	}

	must(w.WriteString("ID3"))
	must(w.WriteString("VVVVVVV"))
	for _, f := range frames {
		must(w.WriteString(f.id))
		must(binutil.WriteBE[uint32](w, uint32(len(f.content)+1)))
		must(w.WriteBytes(f.flags[:]))
		must(w.WriteString(f.content))
		must(binutil.WriteBE[uint8](w, 0))
	}
	must(w.WriteBytes(tail))

	return buf.Bytes()
}

// replaced returns a copy of frames with id's content swapped for value.
func replaced(frames []fixtureFrame, id, value string) []fixtureFrame {
	out := make([]fixtureFrame, len(frames))
	copy(out, frames)
	for i := range out {
		if out[i].id == id {
			out[i].content = value
			break
		}
	}
	return out
}
