package bintrie

// leafTag marks a slot as a leaf. Items must never set it themselves.
const leafTag uint32 = 0x8000_0000

// maxNodeIndex is the largest node index which does not collide with leafTag.
const maxNodeIndex = leafTag - 1

// slot is a child reference within a node.
//
//	0            empty (the root at index 0 is never a child)
//	high bit set leaf, low 31 bits are the item
//	otherwise    index of a node in the store
type slot uint32

func leafSlot(item uint32) slot {
	return slot(item | leafTag)
}

func nodeSlot(index uint32) slot {
	assert(index != 0 && index&leafTag == 0, "node slot must reference a non-root node")
	return slot(index)
}

func (s slot) isEmpty() bool { return s == 0 }
func (s slot) isLeaf() bool  { return uint32(s)&leafTag != 0 }
func (s slot) isNode() bool  { return s != 0 && uint32(s)&leafTag == 0 }

// item returns the payload of a leaf slot.
func (s slot) item() uint32 {
	return uint32(s) &^ leafTag
}

// node returns the node index of an internal slot.
func (s slot) node() uint32 {
	return uint32(s)
}
