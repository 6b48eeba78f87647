package keys

import "github.com/npillmayer/bintrie/heuristic"

// Bits64 returns the bits of v, most significant bit first. Depths beyond 63
// yield false.
func Bits64(v uint64) func(depth uint32) bool {
	return func(depth uint32) bool {
		return bit64(v, depth)
	}
}

// Groups64 returns the 4-bit groups of v, most significant group first.
// Depths beyond 15 yield 0.
func Groups64(v uint64) func(depth uint32) heuristic.Group {
	return func(depth uint32) heuristic.Group {
		return group64(v, depth)
	}
}

// LookupBits64 makes a lookup function from a resolver which maps stored
// items to their uint64 keys.
func LookupBits64(resolve func(item uint32) uint64) func(item, depth uint32) bool {
	return func(item, depth uint32) bool {
		return bit64(resolve(item), depth)
	}
}

// LookupGroups64 is the group-wise counterpart of LookupBits64.
func LookupGroups64(resolve func(item uint32) uint64) func(item, depth uint32) heuristic.Group {
	return func(item, depth uint32) heuristic.Group {
		return group64(resolve(item), depth)
	}
}

func bit64(v uint64, depth uint32) bool {
	if depth >= 64 {
		return false
	}
	return v&(1<<(63-depth)) != 0
}

func group64(v uint64, depth uint32) heuristic.Group {
	if depth >= 16 {
		return 0
	}
	return heuristic.Group((v >> (60 - 4*depth)) & 0xf)
}
