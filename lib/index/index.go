package index

// MaxTextLength is the maximum supported total text length,
// suffix array entries are stored as int32
const MaxTextLength = 1<<31 - 2

// maxAlphabetSize leaves room for the rank shift and the separator
const maxAlphabetSize = 254

// occSampleRate is the occurrence checkpoint interval
const occSampleRate = 128

// ConstructionError reports an invalid input to Build
type ConstructionError struct {
	Reason string
}

func (e ConstructionError) Error() string {
	return "index construction failed: " + e.Reason
}

// Index is a compressed full text index over a text collection,
// read only once built. The text it indexes is the reversed
// concatenation of the references so that cursors extend matches to
// the right; the backward variant used by BiIndex keeps the natural
// order and extends to the left.
type Index struct {
	tc       *TextCollection
	sa       []int32
	bwt      []uint8
	counts   []int32
	occ      [][]int32
	sigma    int
	n        int
	reversed bool
}

// Build constructs the index from a text collection, symbols must be
// ranks below alphabetSize
func Build(tc *TextCollection, alphabetSize int) (*Index, error) {
	return build(tc, alphabetSize, true)
}

func build(tc *TextCollection, alphabetSize int, reversed bool) (*Index, error) {
	if tc == nil || tc.Size() == 0 {
		return nil, ConstructionError{Reason: "empty text collection"}
	}
	if tc.Length() == 0 {
		return nil, ConstructionError{Reason: "text collection has no content"}
	}
	if tc.Length() > MaxTextLength {
		return nil, ConstructionError{Reason: "text too long"}
	}
	if alphabetSize < 1 || alphabetSize > maxAlphabetSize {
		return nil, ConstructionError{Reason: "unsupported alphabet size"}
	}
	for i := 0; i < tc.Size(); i++ {
		for _, r := range tc.Ref(i) {
			if int(r) >= alphabetSize {
				return nil, ConstructionError{Reason: "symbol rank out of alphabet range"}
			}
		}
	}
	idx := Index{tc: tc, sigma: alphabetSize, reversed: reversed}
	text := tc.concat(reversed)
	logger.Debugf("build index over %d symbols, reversed: %t", len(text), reversed)
	idx.n = len(text)
	idx.sa = suffixArray(text)
	idx.bwt = make([]uint8, idx.n)
	for i := 0; i < idx.n; i++ {
		p := int(idx.sa[i]) - 1
		if p < 0 {
			p = idx.n - 1
		}
		idx.bwt[i] = text[p]
	}
	idx.buildTables()
	return &idx, nil
}

// buildTables fills the symbol counts and the sampled occurrence
// checkpoints from the BWT
func (idx *Index) buildTables() {
	nsym := idx.sigma + 1
	freq := make([]int32, nsym)
	blocks := idx.n/occSampleRate + 1
	idx.occ = make([][]int32, nsym)
	for s := 0; s < nsym; s++ {
		idx.occ[s] = make([]int32, blocks)
	}
	for i, c := range idx.bwt {
		if i%occSampleRate == 0 {
			b := i / occSampleRate
			for s := 0; s < nsym; s++ {
				idx.occ[s][b] = freq[s]
			}
		}
		freq[c]++
	}
	idx.counts = make([]int32, nsym+1)
	for s := 0; s < nsym; s++ {
		idx.counts[s+1] = idx.counts[s] + freq[s]
	}
}

// Rank counts occurrences of symbol in bwt[0:pos]
func (idx *Index) Rank(symbol uint8, pos int) int {
	b := pos / occSampleRate
	count := int(idx.occ[symbol][b])
	for i := b * occSampleRate; i < pos; i++ {
		if idx.bwt[i] == symbol {
			count++
		}
	}
	return count
}

// step performs one backward search step for an internal symbol
func (idx *Index) step(lower, upper int, symbol uint8) (int, int) {
	c := int(idx.counts[symbol])
	return c + idx.Rank(symbol, lower), c + idx.Rank(symbol, upper)
}

// smaller counts, inside [lower, upper), the occurrences of internal
// symbols strictly below symbol. Used for bidirectional range
// synchronisation.
func (idx *Index) smaller(lower, upper int, symbol uint8) int {
	count := 0
	for s := uint8(0); s < symbol; s++ {
		count += idx.Rank(s, upper) - idx.Rank(s, lower)
	}
	return count
}

// Text returns the indexed collection
func (idx *Index) Text() *TextCollection {
	return idx.tc
}

// AlphabetSize returns the rank alphabet size the index was built with
func (idx *Index) AlphabetSize() int {
	return idx.sigma
}

// Len returns the number of suffix array entries
func (idx *Index) Len() int {
	return idx.n
}

// Root returns the cursor of the empty query, spanning all suffixes
func (idx *Index) Root() Cursor {
	return Cursor{idx: idx, lower: 0, upper: idx.n}
}
