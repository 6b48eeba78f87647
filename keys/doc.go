/*
Package keys provides ready-made key and lookup functions for bintries.

A bintrie never stores keys; it asks a key function for the bit or 4-bit
group of a key at a given depth, and a lookup function for the same
information about an item stored earlier. This package derives such functions
from integer values and from byte strings. Byte strings are hashed with
murmur3, producing an unbounded, evenly distributed bit stream.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package keys
