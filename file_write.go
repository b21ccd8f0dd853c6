package id3tag

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/simonhull/id3tag/internal/id3"
)

// rename replaces the original with the finished temp file.
var rename = os.Rename

// EditResult describes a successful edit.
type EditResult struct {
	Path     string
	ID       FrameID
	Label    string
	OldValue string
	NewValue string
}

// Edit replaces the content of one frame of the file at path.
//
// The file is streamed into a temporary file in the same directory: frames
// before the target are copied byte for byte, the target gets the new value
// and a recomputed size, and everything after it is copied unchanged. Only
// once the temporary file is completely written and synced is it renamed
// over the original. If any step fails, the temporary file is removed and
// the original file remains unchanged.
//
// Returns *TagNotFoundError when the frame is not among the frames scanned,
// *NotID3Error for files without an ID3 tag and *FileNotFoundError when the
// file cannot be opened.
//
// Example:
//
//	res, err := id3tag.Edit("song.mp3", id3tag.FrameTitle, "World")
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%s : %s\n", res.Label, res.NewValue)
func Edit(path string, id FrameID, value string, opts ...EditOption) (*EditResult, error) {
	return EditContext(context.Background(), path, id, value, opts...)
}

// EditContext is Edit with cancellation checked between frames.
func EditContext(ctx context.Context, path string, id FrameID, value string, opts ...EditOption) (*EditResult, error) { //nolint:gocyclo // Atomic file operations require sequential steps
	options := defaultEditOptions()
	for _, opt := range opts {
		opt(options)
	}

	// Validate everything that does not need the disk first
	if err := checkFrameID(id); err != nil {
		return nil, err
	}
	if len(value)+1 > options.maxFrameSize {
		return nil, &ValueTooLargeError{ID: id, Length: len(value), Max: options.maxFrameSize - 1}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := os.Open(path)
	if err != nil {
		return nil, &FileNotFoundError{Path: path, Err: err}
	}
	defer src.Close() //nolint:errcheck // Read-only handle, closed again below

	info, err := src.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	var before *Tag
	if options.validate {
		if before, err = OpenContext(ctx, path, WithMaxFrameSize(options.maxFrameSize)); err != nil {
			return nil, err
		}
	}

	// Create temp file in same directory as the original (for atomic rename)
	tempFile, err := os.CreateTemp(filepath.Dir(path), ".id3tag-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	// Ensure cleanup on any error
	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()    //nolint:errcheck // Best effort cleanup
			_ = os.Remove(tempPath) //nolint:errcheck // Best effort cleanup
		}
	}()

	logger := options.logger.With("path", path, "temp", tempPath)
	logger.Debug("edit started", "frame", string(id))

	bw := bufio.NewWriter(tempFile)
	res, err := id3.Rewrite(ctx, bufio.NewReader(src), bw, id, value, id3.Config{
		Path:         path,
		MaxFrameSize: options.maxFrameSize,
		Logger:       logger,
	})
	if err != nil {
		logger.Debug("edit aborted", "error", err)
		return nil, err
	}
	if err := bw.Flush(); err != nil {
		return nil, fmt.Errorf("write temp file: %w", err)
	}

	// Sync temp file (fsync) to ensure data is on disk
	if err := tempFile.Sync(); err != nil {
		return nil, fmt.Errorf("sync temp file: %w", err)
	}
	if err := tempFile.Chmod(info.Mode().Perm()); err != nil {
		return nil, fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}
	if err := src.Close(); err != nil {
		return nil, fmt.Errorf("close source file: %w", err)
	}

	// Handle backup option (rename original to backup before replace)
	if options.backupSuffix != "" {
		if err := os.Rename(path, path+options.backupSuffix); err != nil {
			return nil, fmt.Errorf("create backup: %w", err)
		}
	}

	// Atomic rename temp -> original
	if err := rename(tempPath, path); err != nil {
		if options.backupSuffix != "" {
			// Put the original back where it was
			if rerr := os.Rename(path+options.backupSuffix, path); rerr != nil {
				return nil, fmt.Errorf("rename temp to output: %w (restore backup: %v)", err, rerr)
			}
		}
		return nil, fmt.Errorf("rename temp to output: %w", err)
	}
	success = true
	logger.Debug("edit finished", "frame", string(res.ID), "size", len(value)+1, "written", res.Written)

	if options.preserveModTime {
		_ = os.Chtimes(path, info.ModTime(), info.ModTime()) //nolint:errcheck // Non-fatal: file was written successfully
	}

	result := &EditResult{
		Path:     path,
		ID:       res.ID,
		Label:    res.Label,
		OldValue: res.OldValue,
		NewValue: res.NewValue,
	}

	if options.validate {
		if err := validateEdit(ctx, before, result, options.maxFrameSize); err != nil {
			return result, fmt.Errorf("validation failed: %w", err)
		}
	}

	return result, nil
}

// validateEdit re-opens the file and checks that it holds exactly the
// fields read before the edit, with only the edited frame changed.
func validateEdit(ctx context.Context, before *Tag, res *EditResult, maxFrameSize int) error {
	after, err := OpenContext(ctx, res.Path, WithMaxFrameSize(maxFrameSize))
	if err != nil {
		return fmt.Errorf("re-open: %w", err)
	}

	got, ok := after.Get(res.ID)
	if !ok {
		return fmt.Errorf("%s missing after edit", res.ID)
	}
	if got != res.NewValue {
		return fmt.Errorf("%s mismatch: got %q, want %q", res.ID, got, res.NewValue)
	}

	if want := expectedTag(before, res.ID, res.NewValue); !after.Equal(want) {
		return fmt.Errorf("frames other than %s changed", res.ID)
	}
	return nil
}

// expectedTag returns a copy of t with the first id field set to value.
func expectedTag(t *Tag, id FrameID, value string) *Tag {
	want := &Tag{Path: t.Path, Fields: slices.Clone(t.Fields)}
	if i := slices.IndexFunc(want.Fields, func(f Field) bool { return f.ID == id }); i >= 0 {
		want.Fields[i].Content = value
	}
	return want
}
