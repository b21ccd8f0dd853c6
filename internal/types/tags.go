package types

import (
	"iter"
	"slices"
)

// Tag holds the decoded fields of one file in the order they appear.
type Tag struct {
	Path     string
	Fields   []Field
	Warnings []Warning
}

// All returns an iterator over the fields in file order.
//
// Example:
//
//	for id, field := range tag.All() {
//		fmt.Printf("%s: %s\n", id, field.Content)
//	}
func (t *Tag) All() iter.Seq2[FrameID, Field] {
	return func(yield func(FrameID, Field) bool) {
		for _, f := range t.Fields {
			if !yield(f.ID, f) {
				return
			}
		}
	}
}

// Get returns the content of the first frame with the given identifier.
func (t *Tag) Get(id FrameID) (string, bool) {
	i := slices.IndexFunc(t.Fields, func(f Field) bool { return f.ID == id })
	if i < 0 {
		return "", false
	}
	return t.Fields[i].Content, true
}

// Has reports whether a frame with the given identifier was decoded.
func (t *Tag) Has(id FrameID) bool {
	_, ok := t.Get(id)
	return ok
}

// Equal compares two tags field by field, ignoring path and warnings.
func (t *Tag) Equal(other *Tag) bool {
	if t == nil || other == nil {
		return t == other
	}
	return slices.EqualFunc(t.Fields, other.Fields, func(a, b Field) bool {
		return a.ID == b.ID && a.Content == b.Content
	})
}
