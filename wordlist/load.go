package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads a text file holding one word per line and adds its words to a
// new index. Surrounding white space is trimmed; empty lines and lines
// starting with '#' are skipped.
func Load(name string) (*Index, error) {
	f, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ix, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("wordlist: reading %s: %w", name, err)
	}
	tracer().Infof("wordlist: loaded %d words from %s", ix.Len(), name)
	return ix, nil
}

// Read is like Load, but reads from r.
func Read(r io.Reader) (*Index, error) {
	ix := New()
	if err := ix.AddFrom(r); err != nil {
		return nil, err
	}
	return ix, nil
}

// AddFrom adds the words from r to ix. Words read before an error
// occurred remain in the index.
func (ix *Index) AddFrom(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line, dupl := 0, 0
	for scanner.Scan() {
		line++
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if _, isNew := ix.Add(word); !isNew {
			dupl++
		}
	}
	if dupl > 0 {
		tracer().Debugf("wordlist: %d duplicate words in %d lines", dupl, line)
	}
	return scanner.Err()
}

// openFile opens an OS file for reading, checking that it is a regular file.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	return os.Open(name)
}
