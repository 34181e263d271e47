package index

// BiIndex pairs an index over the reversed text with one over the
// natural text, enabling query extension from either end
type BiIndex struct {
	fwd *Index
	bwd *Index
}

// BuildBi constructs both directions of a bidirectional index
func BuildBi(tc *TextCollection, alphabetSize int) (*BiIndex, error) {
	fwd, err := build(tc, alphabetSize, true)
	if err != nil {
		return nil, err
	}
	bwd, err := build(tc, alphabetSize, false)
	if err != nil {
		return nil, err
	}
	return &BiIndex{fwd: fwd, bwd: bwd}, nil
}

// Text returns the indexed collection
func (b *BiIndex) Text() *TextCollection {
	return b.fwd.tc
}

// AlphabetSize returns the rank alphabet size of the index
func (b *BiIndex) AlphabetSize() int {
	return b.fwd.sigma
}

// Root returns the bidirectional cursor of the empty query
func (b *BiIndex) Root() BiCursor {
	return BiCursor{
		bi:       b,
		fwdLower: 0, fwdUpper: b.fwd.n,
		bwdLower: 0, bwdUpper: b.bwd.n,
	}
}

// BiCursor tracks one suffix array range per direction. Both ranges
// cover the same matches, so their sizes stay equal after every
// extension; an incorrect cross update would desynchronise them
// silently, which is why Counts exposes both sides.
type BiCursor struct {
	bi       *BiIndex
	fwdLower int
	fwdUpper int
	bwdLower int
	bwdUpper int
	depth    int
}

// Count returns the number of matches of the current query
func (c BiCursor) Count() int {
	return c.fwdUpper - c.fwdLower
}

// Counts returns the match count seen by each direction, equal for a
// consistent cursor
func (c BiCursor) Counts() (fwd int, bwd int) {
	return c.fwdUpper - c.fwdLower, c.bwdUpper - c.bwdLower
}

// Depth returns the number of symbols consumed so far
func (c BiCursor) Depth() int {
	return c.depth
}

// Empty tells whether the cursor represents "no match"
func (c BiCursor) Empty() bool {
	return c.fwdLower >= c.fwdUpper
}

// Range returns the suffix array range of the forward direction
func (c BiCursor) Range() (lower int, upper int) {
	return c.fwdLower, c.fwdUpper
}

// Equal compares two cursors over the same bidirectional index
func (c BiCursor) Equal(o BiCursor) bool {
	return c.fwdLower == o.fwdLower && c.fwdUpper == o.fwdUpper &&
		c.bwdLower == o.bwdLower && c.bwdUpper == o.bwdUpper &&
		c.depth == o.depth
}

// ExtendRight appends one symbol on the right. The forward range is
// recomputed by a backward search step, the backward range is shifted
// by the number of in-range extensions with a smaller symbol.
func (c BiCursor) ExtendRight(r uint8) BiCursor {
	if c.Empty() {
		return c
	}
	sym := r + 1
	shift := c.bi.fwd.smaller(c.fwdLower, c.fwdUpper, sym)
	lower, upper := c.bi.fwd.step(c.fwdLower, c.fwdUpper, sym)
	size := upper - lower
	return BiCursor{
		bi:       c.bi,
		fwdLower: lower, fwdUpper: upper,
		bwdLower: c.bwdLower + shift, bwdUpper: c.bwdLower + shift + size,
		depth: c.depth + 1,
	}
}

// ExtendLeft prepends one symbol on the left, the mirrored operation
// of ExtendRight
func (c BiCursor) ExtendLeft(r uint8) BiCursor {
	if c.Empty() {
		return c
	}
	sym := r + 1
	shift := c.bi.bwd.smaller(c.bwdLower, c.bwdUpper, sym)
	lower, upper := c.bi.bwd.step(c.bwdLower, c.bwdUpper, sym)
	size := upper - lower
	return BiCursor{
		bi:       c.bi,
		fwdLower: c.fwdLower + shift, fwdUpper: c.fwdLower + shift + size,
		bwdLower: lower, bwdUpper: upper,
		depth: c.depth + 1,
	}
}

// ExtendRightSeq appends symbols in order, stopping at truncation
// like Cursor.ExtendRightSeq
func (c BiCursor) ExtendRightSeq(ranks []uint8) BiCursor {
	for _, r := range ranks {
		next := c.ExtendRight(r)
		if next.Empty() {
			next.depth = c.depth
			return next
		}
		c = next
	}
	return c
}

// Locate resolves the matches through the forward direction
func (c BiCursor) Locate() []Position {
	fc := Cursor{idx: c.bi.fwd, lower: c.fwdLower, upper: c.fwdUpper, depth: c.depth}
	return fc.Locate()
}
