// Package collision detects xxHash64 ID collisions between field paths
// while a record layout is built.
package collision

import (
	"fmt"

	"github.com/arloliu/maskrun/errs"
)

// Tracker records field paths by their 64-bit IDs. A collision (two
// distinct paths hashing to the same ID) would make ID-based descriptor
// lookups ambiguous, so tracking rejects it outright.
type Tracker struct {
	paths map[uint64]string
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{paths: make(map[uint64]string)}
}

// Track records a path under its ID. It fails with errs.ErrPathCollision
// when a different path already occupies the ID, and with
// errs.ErrDuplicateField when the same path is tracked twice.
func (t *Tracker) Track(path string, id uint64) error {
	existing, ok := t.paths[id]
	if ok {
		if existing == path {
			return fmt.Errorf("%w: %q tracked twice", errs.ErrDuplicateField, path)
		}

		return fmt.Errorf("%w: %q and %q both hash to %#x", errs.ErrPathCollision, existing, path, id)
	}

	t.paths[id] = path

	return nil
}

// Len returns the number of tracked paths.
func (t *Tracker) Len() int {
	return len(t.paths)
}
