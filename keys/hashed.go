package keys

import (
	"github.com/npillmayer/bintrie/heuristic"
	"github.com/spaolacci/murmur3"
)

// blockBits is the number of key bits produced per murmur3 invocation.
const blockBits = 128

// Hash is a lazily expanded bit stream derived from a byte string.
// Bits 0…127 are the murmur3-128 hash of the data with seed 0, bits
// 128…255 the hash with seed 1, and so on. Blocks are computed on demand
// and cached.
//
// A Hash is not safe for concurrent use.
type Hash struct {
	data   []byte
	blocks [][2]uint64
}

// NewHash creates a bit stream for data. data must not be modified
// afterwards.
func NewHash(data []byte) *Hash {
	return &Hash{data: data}
}

// Bit returns the key bit at depth.
func (h *Hash) Bit(depth uint32) bool {
	b := h.block(depth / blockBits)
	off := depth % blockBits
	word := b[off/64]
	return word&(1<<(63-off%64)) != 0
}

// Group returns the 4-bit group at depth, i.e. bits 4*depth … 4*depth+3.
func (h *Hash) Group(depth uint32) heuristic.Group {
	var g heuristic.Group
	for i := uint32(0); i < 4; i++ {
		g <<= 1
		if h.Bit(4*depth + i) {
			g |= 1
		}
	}
	return g
}

func (h *Hash) block(n uint32) [2]uint64 {
	for uint32(len(h.blocks)) <= n {
		seed := uint32(len(h.blocks))
		h1, h2 := murmur3.Sum128WithSeed(h.data, seed)
		h.blocks = append(h.blocks, [2]uint64{h1, h2})
	}
	return h.blocks[n]
}

// HashBits returns a key function over the hashed bits of data.
func HashBits(data []byte) func(depth uint32) bool {
	return NewHash(data).Bit
}

// HashGroups returns a key function over the hashed groups of data.
func HashGroups(data []byte) func(depth uint32) heuristic.Group {
	return NewHash(data).Group
}

// LookupHashBits makes a lookup function from a resolver which maps stored
// items to the byte strings they were inserted with. Hashes are recomputed
// on every call.
func LookupHashBits(resolve func(item uint32) []byte) func(item, depth uint32) bool {
	return func(item, depth uint32) bool {
		return NewHash(resolve(item)).Bit(depth)
	}
}

// LookupHashGroups is the group-wise counterpart of LookupHashBits.
func LookupHashGroups(resolve func(item uint32) []byte) func(item, depth uint32) heuristic.Group {
	return func(item, depth uint32) heuristic.Group {
		return NewHash(resolve(item)).Group(depth)
	}
}
