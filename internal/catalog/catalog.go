// Package catalog maps the known frame identifiers to display labels and to
// the command line options that select them.
package catalog

import (
	"iter"
	"slices"

	"github.com/simonhull/id3tag/internal/types"
)

// Entry describes one known frame.
type Entry struct {
	ID     types.FrameID
	Label  string
	Option string // command line switch, e.g. "-t"
}

// Catalog is an ordered set of known frames.
type Catalog struct {
	entries []Entry
}

// New builds a catalog from entries in the order given.
func New(entries ...Entry) *Catalog {
	c := &Catalog{}
	for _, e := range entries {
		c.Register(e)
	}
	return c
}

// Register adds an entry, replacing any entry with the same identifier.
func (c *Catalog) Register(e Entry) {
	if i := c.index(e.ID); i >= 0 {
		c.entries[i] = e
		return
	}
	c.entries = append(c.entries, e)
}

// Lookup returns the entry for an identifier.
func (c *Catalog) Lookup(id types.FrameID) (Entry, bool) {
	i := c.index(id)
	if i < 0 {
		return Entry{}, false
	}
	return c.entries[i], true
}

// ByOption returns the entry selected by a command line switch.
func (c *Catalog) ByOption(opt string) (Entry, bool) {
	i := slices.IndexFunc(c.entries, func(e Entry) bool { return e.Option == opt })
	if i < 0 {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Label returns the display label for id, or the identifier itself when the
// frame is not in the catalog.
func (c *Catalog) Label(id types.FrameID) string {
	if e, ok := c.Lookup(id); ok {
		return e.Label
	}
	return string(id)
}

// Len returns the number of known frames.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// IDs returns the known identifiers in catalog order.
func (c *Catalog) IDs() []types.FrameID {
	ids := make([]types.FrameID, len(c.entries))
	for i, e := range c.entries {
		ids[i] = e.ID
	}
	return ids
}

// All returns an iterator over entries in catalog order.
func (c *Catalog) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range c.entries {
			if !yield(e) {
				return
			}
		}
	}
}

func (c *Catalog) index(id types.FrameID) int {
	return slices.IndexFunc(c.entries, func(e Entry) bool { return e.ID == id })
}

// Default is the catalog of the six text frames the tool views and edits.
var Default = New(
	Entry{ID: "TIT2", Label: "Title", Option: "-t"},
	Entry{ID: "TPE1", Label: "Artist", Option: "-a"},
	Entry{ID: "TALB", Label: "Album", Option: "-A"},
	Entry{ID: "TYER", Label: "Year", Option: "-y"},
	Entry{ID: "TCON", Label: "Music/Genre", Option: "-C"},
	Entry{ID: "COMM", Label: "Comment", Option: "-c"},
)
