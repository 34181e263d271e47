package index

import (
	"sort"
)

// Cursor is a cheap value view over the suffix array range matching
// the current query. Copying a cursor copies only the range and
// depth, never the index. Cursors from different indexes must not be
// compared or mixed.
type Cursor struct {
	idx   *Index
	lower int
	upper int
	depth int
}

// Count returns the number of matches of the current query
func (c Cursor) Count() int {
	return c.upper - c.lower
}

// Depth returns the number of symbols consumed so far
func (c Cursor) Depth() int {
	return c.depth
}

// Empty tells whether the cursor represents "no match"
func (c Cursor) Empty() bool {
	return c.lower >= c.upper
}

// Range returns the half open suffix array range of the cursor
func (c Cursor) Range() (lower int, upper int) {
	return c.lower, c.upper
}

// Equal compares two cursors over the same index by value
func (c Cursor) Equal(o Cursor) bool {
	return c.lower == o.lower && c.upper == o.upper && c.depth == o.depth
}

// ExtendRight appends one symbol to the query. Extending an empty
// cursor is a no-op, extending into an empty range keeps the cursor
// valid and absorbing.
func (c Cursor) ExtendRight(r uint8) Cursor {
	if c.Empty() {
		return c
	}
	lower, upper := c.idx.step(c.lower, c.upper, r+1)
	return Cursor{idx: c.idx, lower: lower, upper: upper, depth: c.depth + 1}
}

// ExtendRightSeq appends symbols in order, stopping at the first
// symbol whose extension empties the range. The depth of the returned
// cursor counts only the symbols consumed before truncation.
func (c Cursor) ExtendRightSeq(ranks []uint8) Cursor {
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

// Locate resolves every suffix array slot of the range to a
// reference and begin position, sorted by reference then offset.
// Cost is linear in Count, callers should not locate speculatively.
func (c Cursor) Locate() []Position {
	length := c.idx.tc.Length()
	positions := make([]Position, 0, c.Count())
	for i := c.lower; i < c.upper; i++ {
		j := int(c.idx.sa[i])
		p := j
		if c.idx.reversed {
			// suffix position in the reversed text, map back to the
			// match start in the original concatenation
			p = length - j - c.depth
		}
		pos, ok := c.idx.tc.resolve(p)
		if !ok {
			continue
		}
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(a, b int) bool {
		if positions[a].Ref != positions[b].Ref {
			return positions[a].Ref < positions[b].Ref
		}
		return positions[a].Offset < positions[b].Offset
	})
	return positions
}
