package format

type (
	BoundaryPolicy  uint8
	CompressionType uint8
	FieldType       uint8
)

const (
	// BoundaryStrict prunes boundary runs exactly like interior runs.
	BoundaryStrict BoundaryPolicy = 0x1
	// BoundaryKeep never prunes a run touching the sequence start or end.
	BoundaryKeep BoundaryPolicy = 0x2
	// BoundaryHalfLength keeps a boundary run when its length is at least
	// ceil(minLength/2). A run truncated by the sequence edge may be a
	// genuine long run observed only partially, so it is held to a relaxed
	// threshold.
	BoundaryHalfLength BoundaryPolicy = 0x3

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	FieldFloat64 FieldType = 0x1
	FieldFloat32 FieldType = 0x2
	FieldInt64   FieldType = 0x3
	FieldInt32   FieldType = 0x4
	FieldInt16   FieldType = 0x5
	FieldInt8    FieldType = 0x6
	FieldUint64  FieldType = 0x7
	FieldUint32  FieldType = 0x8
	FieldUint16  FieldType = 0x9
	FieldUint8   FieldType = 0xA
	FieldBool    FieldType = 0xB
)

func (p BoundaryPolicy) String() string {
	switch p {
	case BoundaryStrict:
		return "Strict"
	case BoundaryKeep:
		return "Keep"
	case BoundaryHalfLength:
		return "HalfLength"
	default:
		return "Unknown"
	}
}

// Valid reports whether p is one of the defined boundary policies.
func (p BoundaryPolicy) Valid() bool {
	switch p {
	case BoundaryStrict, BoundaryKeep, BoundaryHalfLength:
		return true
	default:
		return false
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (t FieldType) String() string {
	switch t {
	case FieldFloat64:
		return "Float64"
	case FieldFloat32:
		return "Float32"
	case FieldInt64:
		return "Int64"
	case FieldInt32:
		return "Int32"
	case FieldInt16:
		return "Int16"
	case FieldInt8:
		return "Int8"
	case FieldUint64:
		return "Uint64"
	case FieldUint32:
		return "Uint32"
	case FieldUint16:
		return "Uint16"
	case FieldUint8:
		return "Uint8"
	case FieldBool:
		return "Bool"
	default:
		return "Unknown"
	}
}

// Size returns the byte width of a single value of this field type,
// or 0 for an unknown type.
func (t FieldType) Size() int {
	switch t {
	case FieldFloat64, FieldInt64, FieldUint64:
		return 8
	case FieldFloat32, FieldInt32, FieldUint32:
		return 4
	case FieldInt16, FieldUint16:
		return 2
	case FieldInt8, FieldUint8, FieldBool:
		return 1
	default:
		return 0
	}
}

// Valid reports whether t is one of the defined field types.
func (t FieldType) Valid() bool {
	return t.Size() != 0
}
