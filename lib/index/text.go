// Package index implements a compressed full text index over rank
// encoded sequences, with cursors supporting character extension,
// counting and locating of matches
package index

import (
	"sort"

	logs "github.com/osallou/fmindex-go-playground/lib/log"
)

var logger = logs.GetLogger("fmi.index")

// Position identifies a match start inside a text collection
type Position struct {
	Ref    int
	Offset int
}

// TextCollection is an ordered set of rank encoded reference
// sequences, immutable once handed to Build
type TextCollection struct {
	names  []string
	refs   [][]uint8
	starts []int
	length int
}

// NewTextCollection returns an empty collection
func NewTextCollection() *TextCollection {
	return &TextCollection{}
}

// Add appends a reference sequence to the collection
func (tc *TextCollection) Add(name string, ranks []uint8) {
	start := 0
	if len(tc.refs) > 0 {
		// one separator symbol between consecutive references
		start = tc.length + 1
		tc.length++
	}
	tc.names = append(tc.names, name)
	tc.refs = append(tc.refs, ranks)
	tc.starts = append(tc.starts, start)
	tc.length += len(ranks)
}

// Size returns the number of references
func (tc *TextCollection) Size() int {
	return len(tc.refs)
}

// Name returns the name of reference i
func (tc *TextCollection) Name(i int) string {
	return tc.names[i]
}

// Ref returns the rank content of reference i
func (tc *TextCollection) Ref(i int) []uint8 {
	return tc.refs[i]
}

// Length returns the length of the separated concatenation
func (tc *TextCollection) Length() int {
	return tc.length
}

// resolve maps a global concatenation offset to a reference local
// position, separators resolve to ok=false
func (tc *TextCollection) resolve(p int) (pos Position, ok bool) {
	if p < 0 || p >= tc.length {
		return Position{}, false
	}
	ref := sort.Search(len(tc.starts), func(i int) bool { return tc.starts[i] > p }) - 1
	offset := p - tc.starts[ref]
	if offset >= len(tc.refs[ref]) {
		// p falls on the separator after this reference
		return Position{}, false
	}
	return Position{Ref: ref, Offset: offset}, true
}

// concat builds the symbol text the index is constructed from:
// ranks shifted by one, separator 0 between references, optionally
// reversed, and a terminal 0 appended last
func (tc *TextCollection) concat(reverse bool) []uint8 {
	text := make([]uint8, 0, tc.length+1)
	for i, ref := range tc.refs {
		if i > 0 {
			text = append(text, 0)
		}
		for _, r := range ref {
			text = append(text, r+1)
		}
	}
	if reverse {
		for i, j := 0, len(text)-1; i < j; i, j = i+1, j-1 {
			text[i], text[j] = text[j], text[i]
		}
	}
	return append(text, 0)
}
