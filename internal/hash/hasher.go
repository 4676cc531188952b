package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Func maps content to a 64-bit digest.
type Func func(data []byte) uint64

// Sum computes the xxHash of data.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// XXHashFunc is a custom hash function adapter for go-merkletree
// It converts []byte input to xxHash []byte output
func XXHashFunc(data []byte) ([]byte, error) {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, Sum(data))
	return buf, nil
}
