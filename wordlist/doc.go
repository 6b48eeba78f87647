/*
Package wordlist builds a dictionary of words on top of a group trie.

Words are numbered in the order they are added. The trie stores only these
numbers, keyed by the murmur3 bit stream of each word (see package keys), and
the Index keeps the words themselves. Looking up a word therefore costs one
descent plus a single comparison.

Word lists may be loaded from text files holding one word per line.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package wordlist

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bintrie'
func tracer() tracing.Trace {
	return tracing.Select("bintrie")
}

// ErrNotRegular is returned when loading from something other than a
// regular file.
var ErrNotRegular = errors.New("wordlist: not a regular file")
