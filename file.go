package id3tag

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/id3tag/internal/id3"
	"github.com/simonhull/id3tag/internal/types"
)

// Tag is an alias to types.Tag: the decoded fields of one file.
type Tag = types.Tag

// Open reads the tag at the head of an MP3 file.
//
// The file is opened read-only and closed before Open returns; viewing never
// changes the file. Frames are decoded until as many frames as there are
// known tags have been read, the file ends at a frame boundary, or the tag
// region ends (padding or audio data where a frame identifier should be).
//
// Errors are typed: *FileNotFoundError when the file cannot be opened,
// *NotID3Error when it does not start with "ID3", *OutOfBoundsError when it
// ends inside a frame and *CorruptedFileError for impossible frame sizes.
//
// Example:
//
//	tag, err := id3tag.Open("song.mp3")
//	if err != nil {
//		return err
//	}
//	for _, field := range tag.Fields {
//		fmt.Println(field)
//	}
func Open(path string, opts ...Option) (*Tag, error) {
	return OpenContext(context.Background(), path, opts...)
}

// OpenContext is Open with cancellation checked between frames.
func OpenContext(ctx context.Context, path string, opts ...Option) (*Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &FileNotFoundError{Path: path, Err: err}
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	return OpenReader(ctx, f, path, opts...)
}

// OpenReader decodes a tag from any stream, such as stdin. path is only used
// in error messages.
func OpenReader(ctx context.Context, r io.Reader, path string, opts ...Option) (*Tag, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	tag, err := id3.Decode(ctx, r, id3.Config{
		Path:         path,
		MaxFrameSize: options.maxFrameSize,
		Logger:       options.logger,
	})
	if err != nil {
		return nil, err
	}

	if options.strictParsing && len(tag.Warnings) > 0 {
		return nil, fmt.Errorf("strict parsing failed: %s", tag.Warnings[0])
	}
	if options.ignoreWarnings {
		tag.Warnings = nil
	}

	return tag, nil
}

// OpenMany reads the tags of several files concurrently.
//
// Files are decoded in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any file
// fails, the first error is returned and no tags are.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	tags, err := id3tag.OpenMany(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
func OpenMany(ctx context.Context, paths []string, opts ...Option) ([]*Tag, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Tag, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			tag, err := OpenContext(ctx, path, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = tag
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
