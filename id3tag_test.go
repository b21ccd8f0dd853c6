package id3tag_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simonhull/id3tag"
)

func TestOpen_SingleTitle(t *testing.T) {
	path := writeMP3(t, "a.mp3", tagBytes([]frame{{"TIT2", "Hello"}}, nil))

	tag, err := id3tag.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if len(tag.Fields) != 1 {
		t.Fatalf("got %d fields, want 1", len(tag.Fields))
	}

	line := id3tag.FormatField(tag.Fields[0])
	if want := "Title" + strings.Repeat(" ", 15) + "  :    Hello"; line != want {
		t.Errorf("line = %q, want %q", line, want)
	}
	if tag.Path != path {
		t.Errorf("Path = %q, want %q", tag.Path, path)
	}
}

func TestOpen_AllKnownFrames(t *testing.T) {
	frames := sixFrames()
	path := writeMP3(t, "six.mp3", tagBytes(frames, audioTail))

	tag, err := id3tag.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	labels := []string{"Title", "Artist", "Album", "Year", "Music/Genre", "Comment"}
	for i, f := range tag.Fields {
		if string(f.ID) != frames[i].id || f.Content != frames[i].content || f.Label != labels[i] {
			t.Errorf("field %d = %+v, want %s %q %s", i, f, frames[i].id, frames[i].content, labels[i])
		}
	}
}

func TestOpen_ShortTagBeforeAudio(t *testing.T) {
	path := writeMP3(t, "short.mp3", tagBytes([]frame{{"TIT2", "Hello"}}, audioTail))

	tag, err := id3tag.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if got, ok := tag.Get(id3tag.FrameTitle); !ok || got != "Hello" || len(tag.Fields) != 1 {
		t.Errorf("fields = %+v, want only Title Hello", tag.Fields)
	}
}

func TestOpen_IsReadOnly(t *testing.T) {
	data := tagBytes(sixFrames(), audioTail)
	path := writeMP3(t, "ro.mp3", data)

	before, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	for range 3 {
		if _, err := id3tag.Open(path); err != nil {
			t.Fatal(err)
		}
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(after, data) {
		t.Error("viewing changed the file contents")
	}
	stat, _ := os.Stat(path)
	if stat.Size() != before.Size() || !stat.ModTime().Equal(before.ModTime()) {
		t.Error("viewing changed file size or modification time")
	}
}

func TestOpen_NotID3(t *testing.T) {
	data := []byte("RIFF\x24\x00\x00\x00WAVEfmt ")
	path := writeMP3(t, "fake.mp3", data)

	_, err := id3tag.Open(path)
	var notID3 *id3tag.NotID3Error
	if !errors.As(err, &notID3) {
		t.Fatalf("expected *NotID3Error, got %T: %v", err, err)
	}

	after, _ := os.ReadFile(path)
	if !bytes.Equal(after, data) {
		t.Error("file changed after failed view")
	}
	if names := dirEntries(t, filepath.Dir(path)); len(names) != 1 {
		t.Errorf("unexpected files left behind: %v", names)
	}
}

func TestOpen_FileNotFound(t *testing.T) {
	_, err := id3tag.Open(filepath.Join(t.TempDir(), "missing.mp3"))

	var nf *id3tag.FileNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *FileNotFoundError, got %T: %v", err, err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("expected errors.Is(err, fs.ErrNotExist)")
	}
}

func TestOpen_Truncated(t *testing.T) {
	data := tagBytes(sixFrames(), nil)
	path := writeMP3(t, "cut.mp3", data[:len(data)-4])

	_, err := id3tag.Open(path)
	var oob *id3tag.OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Fatalf("expected *OutOfBoundsError, got %T: %v", err, err)
	}
}

func TestOpen_Warnings(t *testing.T) {
	frames := []frame{{"TIT2", "Hello"}, {"TXXX", "custom"}}
	path := writeMP3(t, "warn.mp3", tagBytes(frames, nil))

	tag, err := id3tag.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if len(tag.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", tag.Warnings)
	}

	tag, err = id3tag.Open(path, id3tag.WithIgnoreWarnings())
	if err != nil {
		t.Fatal(err)
	}
	if len(tag.Warnings) != 0 {
		t.Errorf("expected warnings to be dropped, got %v", tag.Warnings)
	}

	if _, err := id3tag.Open(path, id3tag.WithStrictParsing()); err == nil {
		t.Error("expected strict parsing to fail on warning")
	}
}

func TestOpen_MaxFrameSize(t *testing.T) {
	frames := []frame{{"COMM", strings.Repeat("a", 100)}}
	path := writeMP3(t, "big.mp3", tagBytes(frames, nil))

	_, err := id3tag.Open(path, id3tag.WithMaxFrameSize(50))
	var ce *id3tag.CorruptedFileError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CorruptedFileError, got %T: %v", err, err)
	}
}

func TestOpenReader(t *testing.T) {
	data := tagBytes(sixFrames(), audioTail)

	tag, err := id3tag.OpenReader(t.Context(), bytes.NewReader(data), "<stdin>")
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}
	if got, _ := tag.Get(id3tag.FrameYear); got != "1999" {
		t.Errorf("Year = %q, want 1999", got)
	}
}

func TestFrameForOption(t *testing.T) {
	tests := []struct {
		opt  string
		want id3tag.FrameID
	}{
		{"-t", id3tag.FrameTitle},
		{"-a", id3tag.FrameArtist},
		{"-A", id3tag.FrameAlbum},
		{"-y", id3tag.FrameYear},
		{"-C", id3tag.FrameGenre},
		{"-c", id3tag.FrameComment},
	}
	for _, tt := range tests {
		got, ok := id3tag.FrameForOption(tt.opt)
		if !ok || got != tt.want {
			t.Errorf("FrameForOption(%q) = %s, %v; want %s", tt.opt, got, ok, tt.want)
		}
	}

	if _, ok := id3tag.FrameForOption("-z"); ok {
		t.Error("FrameForOption(-z) should fail")
	}
}

func TestKnownFramesAndLabel(t *testing.T) {
	ids := id3tag.KnownFrames()
	if len(ids) != 6 || ids[0] != id3tag.FrameTitle || ids[5] != id3tag.FrameComment {
		t.Errorf("KnownFrames() = %v", ids)
	}
	if got := id3tag.Label(id3tag.FrameArtist); got != "Artist" {
		t.Errorf("Label(TPE1) = %q", got)
	}
	if got := id3tag.Label("WXXX"); got != "WXXX" {
		t.Errorf("Label(WXXX) = %q", got)
	}
}
