// Package field describes packed record layouts and rewrites single
// columns within them.
//
// A Layout is an ordered tree of named fields. Leaves carry a primitive
// format.FieldType; groups nest further fields. Leaf byte offsets are
// packed depth-first in declaration order with no padding, and every leaf
// is addressable by its dotted path (e.g. "Att.Roll").
//
// Replace rewrites one column of a packed buffer, appending the field when
// the path is new, and returns a fresh buffer and layout without touching
// the inputs. Values extracts one column. Both are generic over the Go
// types a leaf can hold and honor the caller's byte order through
// endian.EndianEngine.
package field
