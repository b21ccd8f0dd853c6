package id3tag_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

type frame struct {
	id      string
	content string
}

var audioTail = []byte{0xFF, 0xFB, 0x90, 0x00, 0xDE, 0xAD, 0xBE, 0xEF}

func sixFrames() []frame {
	return []frame{
		{"TIT2", "Hello"},
		{"TPE1", "The Artist"},
		{"TALB", "An Album"},
		{"TYER", "1999"},
		{"TCON", "Rock"},
		{"COMM", "Nice track"},
	}
}

// tagBytes builds "ID3" + "VVVVVVV" + frames + tail.
func tagBytes(frames []frame, tail []byte) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString("ID3")
	buf.WriteString("VVVVVVV")
	for _, f := range frames {
		buf.WriteString(f.id)
		binary.Write(buf, binary.BigEndian, uint32(len(f.content)+1))
		buf.Write([]byte{0, 0, 0})
		buf.WriteString(f.content)
		buf.WriteByte(0)
	}
	buf.Write(tail)
	return buf.Bytes()
}

// writeMP3 writes data to name inside a fresh temp dir and returns the path.
func writeMP3(t testing.TB, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// dirEntries lists the names in dir.
func dirEntries(t testing.TB, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names
}
