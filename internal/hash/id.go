package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given field path string.
func ID(path string) uint64 {
	return xxhash.Sum64String(path)
}
