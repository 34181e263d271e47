// Package alphabet maps sequence characters to small integer ranks
// used by the index and back
package alphabet

// Alphabet converts between characters and ranks in 0..Size()-1
type Alphabet interface {
	Size() int
	CharToRank(c byte) uint8
	RankToChar(r uint8) byte
}

// Nucleotide is an alphabet with a complement defined over ranks
type Nucleotide interface {
	Alphabet
	Complement(r uint8) uint8
}

// Encode converts a character sequence to its rank representation
func Encode(a Alphabet, s string) []uint8 {
	ranks := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		ranks[i] = a.CharToRank(s[i])
	}
	return ranks
}

// Decode converts ranks back to a character sequence
func Decode(a Alphabet, ranks []uint8) string {
	chars := make([]byte, len(ranks))
	for i, r := range ranks {
		chars[i] = a.RankToChar(r)
	}
	return string(chars)
}

// Reverse returns a new reversed rank sequence
func Reverse(ranks []uint8) []uint8 {
	n := len(ranks)
	reverse := make([]uint8, n)
	for i := 0; i < n; i++ {
		reverse[i] = ranks[n-i-1]
	}
	return reverse
}

// ReverseComplement returns the reverse complement of a rank sequence
func ReverseComplement(a Nucleotide, ranks []uint8) []uint8 {
	n := len(ranks)
	revcomp := make([]uint8, n)
	for i := 0; i < n; i++ {
		revcomp[i] = a.Complement(ranks[n-i-1])
	}
	return revcomp
}
