package internal

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// ComputeHash returns a 64-bit, non-cryptographic hash for an arbitrary
// comparable cache key. Fixed-width kinds are encoded to their canonical
// byte representation and hashed with xxhash; anything else falls back to
// its default string representation.
func ComputeHash[K comparable](key K) uint64 {
	switch v := any(key).(type) {
	case string:
		return xxhash.Sum64String(v)
	case int:
		return hashUint64(uint64(v))
	case int8:
		return hashUint64(uint64(v))
	case int16:
		return hashUint64(uint64(v))
	case int32:
		return hashUint64(uint64(v))
	case int64:
		return hashUint64(uint64(v))
	case uint:
		return hashUint64(uint64(v))
	case uint8:
		return hashUint64(uint64(v))
	case uint16:
		return hashUint64(uint64(v))
	case uint32:
		return hashUint64(uint64(v))
	case uint64:
		return hashUint64(v)
	case uintptr:
		return hashUint64(uint64(v))
	case float32:
		return hashUint64(uint64(math.Float32bits(v)))
	case float64:
		return hashUint64(math.Float64bits(v))
	case bool:
		if v {
			return hashUint64(1)
		}

		return hashUint64(0)
	default:
		return xxhash.Sum64String(fmt.Sprintf("%v", v))
	}
}

// hashUint64 hashes the little-endian byte representation of v.
func hashUint64(v uint64) uint64 {
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], v)

	return xxhash.Sum64(buf[:])
}
