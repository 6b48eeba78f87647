/*
Package bintrie offers a compact, in-memory trie for small integer payloads,
indexed by keys which are never stored.

# Bintrie

A bintrie stores uint32 items (with the most significant bit clear) in a
tree of fixed-size nodes. Clients never hand a key value to the trie. Instead
they provide a function which yields the key's position (a bit or a 4-bit
group) at a given depth, and a second function which is able to recover the
same information for an item that has already been stored. Keys may thus be
computed lazily from hashes, coordinates, feature vectors and the like.

	trie := bintrie.New()
	trie.Insert(5, func(uint32) bool { return false }, func(uint32, uint32) bool { return false })
	item, ok := trie.Get(func(uint32) bool { return false }) // => 5, true

Two configurations are offered: BinTrie branches on single bits (2 slots per
node), GroupTrie branches on 4-bit groups (16 slots per node, i.e. 64 bytes,
the size of a cache line on many processors).

Nodes live in an append-only arena and refer to each other by index.
A node slot is a tagged 32-bit word: 0 is empty (the root can never be a
child), a set high bit marks a leaf holding an item, anything else is the
index of another node. Nodes are split lazily, only when two leaves compete
for the same slot. Descent is bounded by a maximum depth; at that depth a
collision is resolved by a configurable CeilingPolicy.

Enumeration and heuristic-guided exploration (see package heuristic) are
lazy, restartable and use an explicit stack of frames instead of recursion.

Tries are not safe for concurrent mutation. Readers may share a trie as long
as no insert is in flight.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package bintrie

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bintrie'
func tracer() tracing.Trace {
	return tracing.Select("bintrie")
}

// TrieError is an error type for the bintrie module.
type TrieError string

func (e TrieError) Error() string {
	return string(e)
}

// ErrReservedBit is flagged whenever an item to insert has its most
// significant bit set. This bit is reserved for tagging leaves.
const ErrReservedBit = TrieError("bintrie: item uses reserved high bit")

// ErrPositionOutOfRange is flagged whenever a key, lookup or heuristic
// produces a child position not addressable within a node.
const ErrPositionOutOfRange = TrieError("bintrie: position out of range")

// ErrStoreOverflow is flagged if the node store would need more nodes than
// can be addressed with 31 bits.
const ErrStoreOverflow = TrieError("bintrie: too many nodes")

// ErrZeroDepth is flagged if a trie is requested with a maximum depth of 0.
const ErrZeroDepth = TrieError("bintrie: maximum depth must be > 0")

// ErrInvalidConfig signals an invalid trie configuration.
const ErrInvalidConfig = TrieError("bintrie: invalid configuration")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
