// Package hash provides the xxHash64 checksums used to verify dataset
// payload integrity.
package hash

import "github.com/cespare/xxhash/v2"

// Sum computes the xxHash64 of the given payload.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// ID computes the xxHash64 of the given string, for stable column and
// dataset identifiers.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}
