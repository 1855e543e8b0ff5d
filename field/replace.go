package field

import (
	"fmt"
	"math"
	"strings"

	"github.com/arloliu/maskrun/endian"
	"github.com/arloliu/maskrun/errs"
	"github.com/arloliu/maskrun/format"
)

// Value is the set of Go types a leaf field column can be read from or
// written as, mapped one-to-one onto format.FieldType.
type Value interface {
	float64 | float32 | int64 | int32 | int16 | int8 |
		uint64 | uint32 | uint16 | uint8 | bool
}

// Replace produces a new packed buffer with the leaf at path replaced by
// the values column, together with the layout describing the new buffer.
//
// len(values) must equal the record count of buf under layout, otherwise
// Replace fails with errs.ErrLengthMismatch. Every other field's bytes are
// copied unchanged, record by record.
//
// Add-or-replace: when the final path component does not exist, the field
// is appended as a new leaf at the end of its parent group instead of
// failing. An existing composite at path is replaced whole by the new leaf.
// Intermediate path components must name existing groups; a missing or
// non-group intermediate fails with errs.ErrUnknownField.
//
// The input buffer and layout are untouched; the returned buffer and layout
// are freshly allocated.
func Replace[T Value](buf []byte, layout Layout, path string, values []T, engine endian.EndianEngine) ([]byte, Layout, error) {
	records, err := layout.Records(buf)
	if err != nil {
		return nil, Layout{}, err
	}
	if len(values) != records {
		return nil, Layout{}, fmt.Errorf("%w: %d values for %d records",
			errs.ErrLengthMismatch, len(values), records)
	}

	newFields, err := graft(layout.fields, strings.Split(path, PathSeparator), fieldTypeOf[T]())
	if err != nil {
		return nil, Layout{}, err
	}

	newLayout, err := NewLayout(newFields...)
	if err != nil {
		return nil, Layout{}, err
	}

	out := make([]byte, records*newLayout.RecordSize())
	oldSize, newSize := layout.RecordSize(), newLayout.RecordSize()

	for _, d := range newLayout.descs {
		if d.Path == path {
			for r, v := range values {
				putValue(engine, out[r*newSize+d.Offset:r*newSize+d.Offset+d.Size], v)
			}

			continue
		}

		src, ok := layout.Descriptor(d.Path)
		if !ok {
			// Unreachable: graft only adds or retypes the target path
			return nil, Layout{}, fmt.Errorf("%w: %q", errs.ErrUnknownField, d.Path)
		}
		for r := 0; r < records; r++ {
			copy(out[r*newSize+d.Offset:r*newSize+d.Offset+d.Size],
				buf[r*oldSize+src.Offset:r*oldSize+src.Offset+src.Size])
		}
	}

	return out, newLayout, nil
}

// graft returns a copy of fields with the leaf named by the path components
// replaced by a leaf of type t, appending it when the final component is
// new.
func graft(fields []Field, comps []string, t format.FieldType) ([]Field, error) {
	name := comps[0]
	if name == "" || strings.Contains(name, PathSeparator) {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidFieldName, name)
	}

	out := cloneFields(fields)

	pos := -1
	for i, f := range out {
		if f.Name == name {
			pos = i
			break
		}
	}

	if len(comps) == 1 {
		leaf := Leaf(name, t)
		if pos < 0 {
			return append(out, leaf), nil
		}
		out[pos] = leaf

		return out, nil
	}

	if pos < 0 || out[pos].IsLeaf() {
		return nil, fmt.Errorf("%w: %q is not a group", errs.ErrUnknownField, name)
	}

	sub, err := graft(out[pos].Fields, comps[1:], t)
	if err != nil {
		return nil, err
	}
	out[pos].Fields = sub

	return out, nil
}

// Values extracts the column of the leaf at path from a packed buffer.
// The requested type T must match the leaf's field type exactly.
func Values[T Value](buf []byte, layout Layout, path string, engine endian.EndianEngine) ([]T, error) {
	records, err := layout.Records(buf)
	if err != nil {
		return nil, err
	}

	d, ok := layout.Descriptor(path)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownField, path)
	}
	if d.Type != fieldTypeOf[T]() {
		return nil, fmt.Errorf("%w: field %q is %s", errs.ErrInvalidFieldType, path, d.Type)
	}

	size := layout.RecordSize()
	out := make([]T, records)
	for r := range out {
		out[r] = getValue[T](engine, buf[r*size+d.Offset:r*size+d.Offset+d.Size])
	}

	return out, nil
}

func fieldTypeOf[T Value]() format.FieldType {
	var v T
	switch any(v).(type) {
	case float64:
		return format.FieldFloat64
	case float32:
		return format.FieldFloat32
	case int64:
		return format.FieldInt64
	case int32:
		return format.FieldInt32
	case int16:
		return format.FieldInt16
	case int8:
		return format.FieldInt8
	case uint64:
		return format.FieldUint64
	case uint32:
		return format.FieldUint32
	case uint16:
		return format.FieldUint16
	case uint8:
		return format.FieldUint8
	case bool:
		return format.FieldBool
	default:
		return 0
	}
}

func putValue[T Value](engine endian.EndianEngine, dst []byte, v T) {
	switch x := any(v).(type) {
	case float64:
		engine.PutUint64(dst, math.Float64bits(x))
	case float32:
		engine.PutUint32(dst, math.Float32bits(x))
	case int64:
		engine.PutUint64(dst, uint64(x)) //nolint:gosec
	case int32:
		engine.PutUint32(dst, uint32(x)) //nolint:gosec
	case int16:
		engine.PutUint16(dst, uint16(x)) //nolint:gosec
	case int8:
		dst[0] = byte(x)
	case uint64:
		engine.PutUint64(dst, x)
	case uint32:
		engine.PutUint32(dst, x)
	case uint16:
		engine.PutUint16(dst, x)
	case uint8:
		dst[0] = x
	case bool:
		if x {
			dst[0] = 1
		} else {
			dst[0] = 0
		}
	}
}

func getValue[T Value](engine endian.EndianEngine, src []byte) T {
	var v T
	switch p := any(&v).(type) {
	case *float64:
		*p = math.Float64frombits(engine.Uint64(src))
	case *float32:
		*p = math.Float32frombits(engine.Uint32(src))
	case *int64:
		*p = int64(engine.Uint64(src)) //nolint:gosec
	case *int32:
		*p = int32(engine.Uint32(src)) //nolint:gosec
	case *int16:
		*p = int16(engine.Uint16(src)) //nolint:gosec
	case *int8:
		*p = int8(src[0]) //nolint:gosec
	case *uint64:
		*p = engine.Uint64(src)
	case *uint32:
		*p = engine.Uint32(src)
	case *uint16:
		*p = engine.Uint16(src)
	case *uint8:
		*p = src[0]
	case *bool:
		*p = src[0] != 0
	}

	return v
}
