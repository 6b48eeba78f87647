package wordlist

import (
	"bytes"
	"iter"

	"github.com/npillmayer/bintrie"
	"github.com/npillmayer/bintrie/keys"
)

// Index maps words to dense ids. The zero value is not usable; create one
// with New.
type Index struct {
	words [][]byte
	trie  *bintrie.GroupTrie
}

// New creates an empty index.
func New() *Index {
	return &Index{trie: bintrie.NewGroupTrie()}
}

// Add files word and returns its id. If word is already known, its existing
// id is returned and isNew is false.
func (ix *Index) Add(word string) (id uint32, isNew bool) {
	if id, ok := ix.Lookup(word); ok {
		return id, false
	}
	id = uint32(len(ix.words))
	ix.words = append(ix.words, []byte(word))
	ix.trie.Insert(id, keys.HashGroups(ix.words[id]), keys.LookupHashGroups(ix.resolve))
	return id, true
}

// Lookup returns the id of word, if present.
func (ix *Index) Lookup(word string) (uint32, bool) {
	b := []byte(word)
	id, ok := ix.trie.Get(keys.HashGroups(b))
	if !ok || !bytes.Equal(ix.words[id], b) {
		return 0, false
	}
	return id, true
}

// Word returns the word with a given id. It panics if id is unknown.
func (ix *Index) Word(id uint32) string {
	return string(ix.words[id])
}

// Len returns the number of distinct words.
func (ix *Index) Len() int {
	return len(ix.words)
}

// Words iterates over all words in trie order, which is effectively random
// but stable for a given set of words.
func (ix *Index) Words() iter.Seq[string] {
	return func(yield func(string) bool) {
		for id := range ix.trie.Items() {
			if !yield(ix.Word(id)) {
				return
			}
		}
	}
}

// Trie exposes the underlying trie, e.g. for printing.
func (ix *Index) Trie() *bintrie.GroupTrie {
	return ix.trie
}

func (ix *Index) resolve(id uint32) []byte {
	return ix.words[id]
}
