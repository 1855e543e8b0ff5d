// Package field reflects over structured record layouts: trees of named
// leaf fields (primitive scalars) and composite groups. It enumerates leaf
// fields with dotted paths and byte offsets, and rewrites packed record
// buffers with one field's column replaced or appended.
//
// Layouts are value types: construction validates and deep-copies the field
// tree, enumeration returns copies, and Replace produces a fresh buffer and
// a fresh layout, never touching its inputs.
package field

import (
	"fmt"
	"strings"

	"github.com/arloliu/maskrun/errs"
	"github.com/arloliu/maskrun/format"
	"github.com/arloliu/maskrun/internal/collision"
	"github.com/arloliu/maskrun/internal/hash"
)

// PathSeparator joins field names into leaf paths. Field names must not
// contain it.
const PathSeparator = "."

// Field is one node of a record layout tree: a leaf with a primitive type
// when Fields is empty, a composite group of named sub-fields otherwise.
type Field struct {
	Name   string
	Type   format.FieldType
	Fields []Field
}

// Leaf creates a leaf field of the given primitive type.
func Leaf(name string, t format.FieldType) Field {
	return Field{Name: name, Type: t}
}

// Group creates a composite field grouping the given sub-fields.
func Group(name string, fields ...Field) Field {
	return Field{Name: name, Fields: fields}
}

// IsLeaf reports whether the field is a leaf (has no sub-fields).
func (f Field) IsLeaf() bool {
	return len(f.Fields) == 0
}

// Descriptor describes one leaf field of a layout: its full dotted path,
// the xxHash64 of that path, its primitive type, and its byte offset and
// width within a packed record. Descriptors are produced for description
// only and are never mutated.
type Descriptor struct {
	Path   string
	ID     uint64
	Type   format.FieldType
	Offset int
	Size   int
}

// Layout is a validated record layout: an ordered tree of fields with
// precomputed leaf descriptors. Leaf offsets are packed in depth-first
// declaration order with no padding.
type Layout struct {
	fields []Field
	descs  []Descriptor
	size   int
}

// NewLayout validates the field tree and builds a Layout.
//
// Validation rejects: an empty top-level field list (errs.ErrEmptyGroup),
// empty names or names containing "." (errs.ErrInvalidFieldName), duplicate
// sibling names (errs.ErrDuplicateField), and unrecognized leaf types
// (errs.ErrInvalidFieldType). A Group built with no sub-fields validates
// as a leaf with an invalid type. Leaf paths whose xxHash64 IDs collide
// are rejected with errs.ErrPathCollision so ID lookups stay unambiguous.
//
// The field tree is deep-copied; the caller keeps ownership of its slices.
func NewLayout(fields ...Field) (Layout, error) {
	if len(fields) == 0 {
		return Layout{}, fmt.Errorf("%w: layout has no fields", errs.ErrEmptyGroup)
	}

	owned := cloneFields(fields)

	l := Layout{fields: owned}
	if err := l.build(owned, "", collision.NewTracker()); err != nil {
		return Layout{}, err
	}

	return l, nil
}

// build walks one level of the tree depth-first, validating names and
// appending leaf descriptors in declaration order. The tracker rejects
// leaf paths whose xxHash64 IDs collide.
func (l *Layout) build(fields []Field, prefix string, tracker *collision.Tracker) error {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Name == "" || strings.Contains(f.Name, PathSeparator) {
			return fmt.Errorf("%w: %q", errs.ErrInvalidFieldName, f.Name)
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("%w: %q under %q", errs.ErrDuplicateField, f.Name, prefix)
		}
		seen[f.Name] = struct{}{}

		path := f.Name
		if prefix != "" {
			path = prefix + PathSeparator + f.Name
		}

		if f.IsLeaf() {
			if !f.Type.Valid() {
				return fmt.Errorf("%w: %d at %q", errs.ErrInvalidFieldType, uint8(f.Type), path)
			}
			id := hash.ID(path)
			if err := tracker.Track(path, id); err != nil {
				return err
			}
			l.descs = append(l.descs, Descriptor{
				Path:   path,
				ID:     id,
				Type:   f.Type,
				Offset: l.size,
				Size:   f.Type.Size(),
			})
			l.size += f.Type.Size()

			continue
		}

		if err := l.build(f.Fields, path, tracker); err != nil {
			return err
		}
	}

	return nil
}

// Fields returns the leaf descriptors in depth-first declaration order.
// The returned slice is a copy.
func (l Layout) Fields() []Descriptor {
	out := make([]Descriptor, len(l.descs))
	copy(out, l.descs)

	return out
}

// RecordSize returns the packed byte width of one record.
func (l Layout) RecordSize() int {
	return l.size
}

// Descriptor returns the leaf descriptor at the given dotted path.
func (l Layout) Descriptor(path string) (Descriptor, bool) {
	for _, d := range l.descs {
		if d.Path == path {
			return d, true
		}
	}

	return Descriptor{}, false
}

// DescriptorByID returns the leaf descriptor whose path hashes to id.
// Callers on hot paths can pre-hash paths once and look up by ID.
func (l Layout) DescriptorByID(id uint64) (Descriptor, bool) {
	for _, d := range l.descs {
		if d.ID == id {
			return d, true
		}
	}

	return Descriptor{}, false
}

// Records returns the number of records a packed buffer holds under this
// layout. The buffer length must be an exact multiple of RecordSize.
func (l Layout) Records(buf []byte) (int, error) {
	if l.size == 0 {
		return 0, fmt.Errorf("%w: layout has no fields", errs.ErrInvalidInput)
	}
	if len(buf)%l.size != 0 {
		return 0, fmt.Errorf("%w: buffer of %d bytes is not a multiple of record size %d",
			errs.ErrLengthMismatch, len(buf), l.size)
	}

	return len(buf) / l.size, nil
}

func cloneFields(fields []Field) []Field {
	if fields == nil {
		return nil
	}

	out := make([]Field, len(fields))
	for i, f := range fields {
		out[i] = f
		out[i].Fields = cloneFields(f.Fields)
	}

	return out
}
