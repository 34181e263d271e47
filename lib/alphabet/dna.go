package alphabet

// charToRank maps bytes to dna4 ranks (a=0, c=1, g=2, t=3).
// Unknown characters collapse to rank 0, u/U is treated as t/T.
var charToRank [256]uint8

var rankToChar = [4]byte{'a', 'c', 'g', 't'}

var complement = [4]uint8{3, 2, 1, 0}

func init() {
	set := func(c byte, r uint8) { charToRank[c] = r }
	set('c', 1)
	set('C', 1)
	set('g', 2)
	set('G', 2)
	set('t', 3)
	set('T', 3)
	set('u', 3)
	set('U', 3)
}

// Dna4 is the 4 letter DNA alphabet
type Dna4 struct{}

// Size returns the number of ranks
func (d Dna4) Size() int {
	return 4
}

// CharToRank gives the rank of a character
func (d Dna4) CharToRank(c byte) uint8 {
	return charToRank[c]
}

// RankToChar gives the character for a rank
func (d Dna4) RankToChar(r uint8) byte {
	return rankToChar[r]
}

// Complement gives the rank of the complement base
func (d Dna4) Complement(r uint8) uint8 {
	return complement[r]
}
