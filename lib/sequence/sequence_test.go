package sequence

import (
	"path/filepath"
	"testing"

	"github.com/osallou/fmindex-go-playground/lib/alphabet"
)

func TestSequenceAccess(t *testing.T) {
	path := filepath.Join("testdata", "sequence.txt")
	seq, err := NewSequence(path)
	if err != nil {
		t.Fatalf("Failed to open sequence: %s", err)
	}
	if seq.Size != 18 {
		t.Errorf("Invalid size: %d", seq.Size)
	}
	seqLru := NewSequenceLru(seq)
	content := seqLru.GetContent(1, 3)
	if content != "cc" {
		t.Errorf("Invalid result: %s", content)
	}
	content = seqLru.GetContent(0, 3)
	if content != "ccc" {
		t.Errorf("Invalid result: %s", content)
	}
	content = seqLru.GetContent(10, 30)
	if content != "cgtttttt" {
		t.Errorf("Invalid result: cgtttttt vs %s", content)
	}
	content = seqLru.GetContent(-2, 2)
	if content != "cc" {
		t.Errorf("Invalid result: %s", content)
	}
	content = seqLru.GetContent(5, 5)
	if content != "" {
		t.Errorf("Invalid result: %s", content)
	}
}

func TestLoadCollection(t *testing.T) {
	path := filepath.Join("testdata", "sequence.txt")
	tc, err := LoadCollection(path, alphabet.Dna4{})
	if err != nil {
		t.Fatalf("Failed to load collection: %s", err)
	}
	if tc.Size() != 1 {
		t.Fatalf("Invalid number of references: %d", tc.Size())
	}
	if tc.Name(0) != "sequence.txt" {
		t.Errorf("Invalid reference name: %s", tc.Name(0))
	}
	if tc.Length() != 18 {
		t.Errorf("Invalid length: %d", tc.Length())
	}
	ranks := tc.Ref(0)
	if ranks[0] != 1 || ranks[11] != 2 || ranks[17] != 3 {
		t.Errorf("Invalid ranks: %d %d %d", ranks[0], ranks[11], ranks[17])
	}
}

func TestMissingSequence(t *testing.T) {
	if _, err := NewSequence(filepath.Join("testdata", "nosuch.txt")); err == nil {
		t.Errorf("Missing sequence should be an error")
	}
	if _, err := LoadCollection(filepath.Join("testdata", "nosuch.txt"), alphabet.Dna4{}); err == nil {
		t.Errorf("Missing sequence should be an error")
	}
}
