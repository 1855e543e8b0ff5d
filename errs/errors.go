// Package errs defines the sentinel errors returned by maskrun.
//
// Two broad kinds anchor errors.Is checks:
//
//   - ErrInvalidInput: malformed runs, mismatched lengths, negative
//     parameters, duplicate or unknown field names.
//   - ErrOutOfRange: index translation queries outside the valid domain.
//
// The more specific sentinels wrap one of the two kinds, so callers can
// match either the precise condition or the broad category:
//
//	_, err := translator.ToCompact(99)
//	if errors.Is(err, errs.ErrOutOfRange) {
//	    // index outside [0, length) or masked out
//	}
package errs

import "fmt"

var (
	// ErrInvalidInput is the broad kind for malformed caller input.
	ErrInvalidInput = fmt.Errorf("invalid input")
	// ErrOutOfRange is the broad kind for index queries outside the valid domain.
	ErrOutOfRange = fmt.Errorf("index out of range")

	// ErrInvalidRun indicates a run with a negative start, an end beyond the
	// sequence length, or a start >= end.
	ErrInvalidRun = fmt.Errorf("%w: invalid run", ErrInvalidInput)
	// ErrRunOverlap indicates two runs in a list cover a common index.
	// Overlap is rejected rather than silently unioned.
	ErrRunOverlap = fmt.Errorf("%w: overlapping runs", ErrInvalidInput)
	// ErrRunOrder indicates runs are not strictly increasing in start.
	ErrRunOrder = fmt.Errorf("%w: runs out of order", ErrInvalidInput)

	// ErrLengthMismatch indicates paired inputs with different lengths,
	// e.g. replacement values that do not match the record count.
	ErrLengthMismatch = fmt.Errorf("%w: length mismatch", ErrInvalidInput)
	// ErrNegativeParam indicates a negative minimum length or separation.
	ErrNegativeParam = fmt.Errorf("%w: negative parameter", ErrInvalidInput)
	// ErrInvalidPolicy indicates an unrecognized boundary policy or
	// threshold direction.
	ErrInvalidPolicy = fmt.Errorf("%w: invalid boundary policy", ErrInvalidInput)

	// ErrDuplicateField indicates two sibling fields share a name.
	ErrDuplicateField = fmt.Errorf("%w: duplicate field name", ErrInvalidInput)
	// ErrUnknownField indicates a field path traverses a missing or
	// non-group intermediate component.
	ErrUnknownField = fmt.Errorf("%w: unknown field", ErrInvalidInput)
	// ErrInvalidFieldName indicates an empty field name or one containing
	// the '.' path separator.
	ErrInvalidFieldName = fmt.Errorf("%w: invalid field name", ErrInvalidInput)
	// ErrInvalidFieldType indicates an unrecognized leaf field type.
	ErrInvalidFieldType = fmt.Errorf("%w: invalid field type", ErrInvalidInput)
	// ErrEmptyGroup indicates a layout built with no fields.
	ErrEmptyGroup = fmt.Errorf("%w: empty field group", ErrInvalidInput)
	// ErrPathCollision indicates two distinct field paths hash to the same
	// 64-bit ID, which would make ID lookups ambiguous.
	ErrPathCollision = fmt.Errorf("%w: field path hash collision", ErrInvalidInput)

	// ErrEmptySequence indicates an operation that requires at least one
	// element received an empty sequence.
	ErrEmptySequence = fmt.Errorf("%w: empty sequence", ErrInvalidInput)
	// ErrInvalidPayload indicates a malformed or truncated encoded payload.
	ErrInvalidPayload = fmt.Errorf("%w: invalid payload", ErrInvalidInput)
)
