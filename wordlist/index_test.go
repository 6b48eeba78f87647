package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestAddAndLookup(t *testing.T) {
	ix := New()
	for i, w := range []string{"apple", "banana", "cherry"} {
		id, isNew := ix.Add(w)
		if !isNew || id != uint32(i) {
			t.Fatalf("expected %q to get new id %d, got %d/%v", w, i, id, isNew)
		}
	}
	if id, isNew := ix.Add("banana"); isNew || id != 1 {
		t.Errorf("expected duplicate to keep id 1, got %d/%v", id, isNew)
	}
	if ix.Len() != 3 || ix.Trie().Len() != 3 {
		t.Errorf("expected 3 words, have %d in index and %d in trie", ix.Len(), ix.Trie().Len())
	}
	if id, ok := ix.Lookup("cherry"); !ok || ix.Word(id) != "cherry" {
		t.Errorf("expected to find cherry, got %d/%v", id, ok)
	}
	if _, ok := ix.Lookup("durian"); ok {
		t.Errorf("expected unknown word to be missing")
	}
}

func TestWords(t *testing.T) {
	ix := New()
	input := []string{"one", "two", "three", "four", "five"}
	for _, w := range input {
		ix.Add(w)
	}
	words := slices.Collect(ix.Words())
	slices.Sort(words)
	expected := slices.Clone(input)
	slices.Sort(expected)
	if !slices.Equal(words, expected) {
		t.Errorf("expected %v, got %v", expected, words)
	}
	if err := ix.Trie().Check(); err != nil {
		t.Errorf("invariant violated: %v", err)
	}
}

func TestRead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintrie")
	defer teardown()
	//
	ix, err := Read(strings.NewReader("# fruit\n apple \n\nbanana\napple\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ix.Len() != 2 {
		t.Errorf("expected 2 words, have %d", ix.Len())
	}
	if _, ok := ix.Lookup("apple"); !ok {
		t.Errorf("expected trimmed word to be found")
	}
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintrie")
	defer teardown()
	//
	dir := t.TempDir()
	name := filepath.Join(dir, "words.txt")
	var sb strings.Builder
	for i := range 1000 {
		sb.WriteString(strings.Repeat("x", i%7+1))
		sb.WriteString(string(rune('a' + i%26)))
		sb.WriteString(strings.Repeat("y", i/26))
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(name, []byte(sb.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	ix, err := Load(name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for w := range ix.Words() {
		if id, ok := ix.Lookup(w); !ok || ix.Word(id) != w {
			t.Fatalf("word %q does not round-trip", w)
		}
	}
	if _, err := Load(dir); !errors.Is(err, ErrNotRegular) {
		t.Errorf("expected ErrNotRegular for a directory, got %v", err)
	}
	if _, err := Load(filepath.Join(dir, "missing")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestAddFromExtendsIndex(t *testing.T) {
	ix := New()
	ix.Add("apple")
	if err := ix.AddFrom(strings.NewReader("banana\napple\ncherry\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ix.Len() != 3 {
		t.Errorf("expected 3 words, have %d", ix.Len())
	}
	if id, ok := ix.Lookup("cherry"); !ok || id != 2 {
		t.Errorf("expected cherry to get id 2, got %d/%v", id, ok)
	}
}
