package id3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"

	binutil "github.com/simonhull/id3tag/internal/binary"
	"github.com/simonhull/id3tag/internal/types"
)

// Decoder walks the frames of a tag and yields them as labeled fields.
//
// A Decoder consumes its stream once; Fields cannot be restarted.
type Decoder struct {
	r        *binutil.Reader
	cfg      Config
	header   types.Header
	warnings []types.Warning
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader, cfg Config) *Decoder {
	cfg = cfg.withDefaults()
	return &Decoder{
		r:   binutil.NewReader(r, cfg.Path),
		cfg: cfg,
	}
}

// Header returns the tag header once Fields has started.
func (d *Decoder) Header() types.Header {
	return d.header
}

// Warnings returns the non-fatal issues met so far.
func (d *Decoder) Warnings() []types.Warning {
	return d.warnings
}

// Fields validates the tag header and then yields one Field per frame.
//
// The scan stops after as many frames as the catalog holds, at a clean end of
// stream, or at the first identifier that cannot start a frame (padding or
// audio data). An error is yielded at most once and
// ends the sequence.
func (d *Decoder) Fields(ctx context.Context) iter.Seq2[types.Field, error] {
	return func(yield func(types.Field, error) bool) {
		h, err := ReadHeader(d.r)
		if err != nil {
			yield(types.Field{}, err)
			return
		}
		d.header = h

		for range d.cfg.Catalog.Len() {
			if err := ctx.Err(); err != nil {
				yield(types.Field{}, err)
				return
			}

			offset := d.r.Offset()
			fh, err := ReadFrameHeader(d.r, d.cfg.MaxFrameSize)
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(types.Field{}, err)
				return
			}
			if fh.EndOfTag() {
				d.cfg.Logger.Debug("end of tag", "path", d.cfg.Path, "offset", offset, "padding", fh.Padding())
				return
			}

			content, terminated, err := ReadPayload(d.r, fh)
			if err != nil {
				yield(types.Field{}, err)
				return
			}
			d.cfg.Logger.Debug("frame decoded",
				"path", d.cfg.Path, "frame", string(fh.ID), "size", fh.Size, "offset", offset)

			if _, known := d.cfg.Catalog.Lookup(fh.ID); !known {
				d.warn(offset, fmt.Sprintf("frame %s is not a known tag", fh.ID))
			}
			if !terminated {
				d.warn(offset, fmt.Sprintf("frame %s payload does not end with a terminator", fh.ID))
			}

			field := types.Field{
				ID:      fh.ID,
				Label:   d.cfg.Catalog.Label(fh.ID),
				Content: string(content),
				Offset:  offset,
			}
			if !yield(field, nil) {
				return
			}
		}
	}
}

func (d *Decoder) warn(offset int64, msg string) {
	d.warnings = append(d.warnings, types.Warning{Stage: "frame", Message: msg, Offset: offset})
	d.cfg.Logger.Warn(msg, "path", d.cfg.Path, "offset", offset)
}

// Decode reads every field of the tag in r.
func Decode(ctx context.Context, r io.Reader, cfg Config) (*types.Tag, error) {
	d := NewDecoder(r, cfg)
	tag := &types.Tag{Path: cfg.Path}

	for field, err := range d.Fields(ctx) {
		if err != nil {
			return nil, err
		}
		tag.Fields = append(tag.Fields, field)
	}
	tag.Warnings = d.Warnings()
	return tag, nil
}
