package alphabet

import (
	"testing"
)

func TestEncodeDecode(t *testing.T) {
	a := Dna4{}
	ranks := Encode(a, "acgt")
	expected := []uint8{0, 1, 2, 3}
	for i, r := range ranks {
		if r != expected[i] {
			t.Errorf("Invalid rank at %d: %d", i, r)
		}
	}
	if Decode(a, ranks) != "acgt" {
		t.Errorf("Invalid decoded sequence: %s", Decode(a, ranks))
	}
}

func TestEncodeCase(t *testing.T) {
	a := Dna4{}
	upper := Encode(a, "ACGT")
	lower := Encode(a, "acgt")
	for i := range upper {
		if upper[i] != lower[i] {
			t.Errorf("Invalid rank for upper case at %d", i)
		}
	}
}

func TestEncodeUnknown(t *testing.T) {
	a := Dna4{}
	ranks := Encode(a, "nxz")
	for i, r := range ranks {
		if r != 0 {
			t.Errorf("Unknown character should collapse to rank 0, got %d at %d", r, i)
		}
	}
	ranks = Encode(a, "uU")
	if ranks[0] != 3 || ranks[1] != 3 {
		t.Errorf("u should map to the t rank, got %d %d", ranks[0], ranks[1])
	}
}

func TestReverse(t *testing.T) {
	a := Dna4{}
	rev := Reverse(Encode(a, "aacgt"))
	if Decode(a, rev) != "tgcaa" {
		t.Errorf("Invalid reverse: %s", Decode(a, rev))
	}
}

func TestReverseComplement(t *testing.T) {
	a := Dna4{}
	revcomp := ReverseComplement(a, Encode(a, "aacgt"))
	if Decode(a, revcomp) != "acgtt" {
		t.Errorf("Invalid reverse complement: %s", Decode(a, revcomp))
	}
}
