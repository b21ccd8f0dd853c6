package id3

import (
	"context"
	"errors"
	"fmt"
	"io"

	binutil "github.com/simonhull/id3tag/internal/binary"
	"github.com/simonhull/id3tag/internal/types"
)

// Result describes a completed rewrite.
type Result struct {
	ID       types.FrameID
	Label    string
	OldValue string
	NewValue string
	Offset   int64 // offset of the rewritten frame header
	Written  int64 // total bytes written to the destination
}

// Rewrite copies the tag in src to dst, replacing the content of the first
// frame whose identifier is target with value.
//
// Frames before the target are copied byte for byte. The target frame keeps
// its identifier and flags, gets a size of len(value)+1 and a payload of
// value plus a terminator. Everything after the old payload is copied
// verbatim. If the scan ends without meeting target, a *types.TagNotFoundError
// is returned and dst holds a partial copy the caller must discard.
func Rewrite(ctx context.Context, src io.Reader, dst io.Writer, target types.FrameID, value string, cfg Config) (*Result, error) {
	cfg = cfg.withDefaults()
	if len(value)+1 > cfg.MaxFrameSize {
		return nil, &types.ValueTooLargeError{ID: target, Length: len(value), Max: cfg.MaxFrameSize - 1}
	}

	r := binutil.NewReader(src, cfg.Path)
	w := binutil.NewWriter(dst)

	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	if err := WriteHeader(w, h); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for range cfg.Catalog.Len() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		offset := r.Offset()
		fh, err := ReadFrameHeader(r, cfg.MaxFrameSize)
		if errors.Is(err, io.EOF) || (err == nil && fh.EndOfTag()) {
			break
		}
		if err != nil {
			return nil, err
		}

		if fh.ID != target {
			if err := WriteFrameHeader(w, fh); err != nil {
				return nil, fmt.Errorf("write frame %s header: %w", fh.ID, err)
			}
			if err := r.CopyTo(w, int64(fh.Size), fmt.Sprintf("frame %s payload", fh.ID)); err != nil {
				return nil, outOfBounds(err)
			}
			cfg.Logger.Debug("frame copied",
				"path", cfg.Path, "frame", string(fh.ID), "size", fh.Size, "offset", offset)
			continue
		}

		old, _, err := ReadPayload(r, fh)
		if err != nil {
			return nil, err
		}

		replaced := fh
		replaced.Size = uint32(len(value) + 1)
		if err := WriteFrameHeader(w, replaced); err != nil {
			return nil, fmt.Errorf("write frame %s header: %w", fh.ID, err)
		}
		if err := WritePayload(w, value); err != nil {
			return nil, fmt.Errorf("write frame %s payload: %w", fh.ID, err)
		}
		cfg.Logger.Debug("frame rewritten",
			"path", cfg.Path, "frame", string(fh.ID), "old_size", fh.Size, "size", replaced.Size, "offset", offset)

		if _, err := r.CopyRest(w); err != nil {
			return nil, err
		}

		return &Result{
			ID:       fh.ID,
			Label:    cfg.Catalog.Label(fh.ID),
			OldValue: string(old),
			NewValue: value,
			Offset:   offset,
			Written:  w.Offset(),
		}, nil
	}

	return nil, &types.TagNotFoundError{Path: cfg.Path, ID: target}
}
