package search

import (
	"sort"
	"testing"

	"github.com/osallou/fmindex-go-playground/lib/alphabet"
	"github.com/osallou/fmindex-go-playground/lib/index"
)

const chrom = "cgctgtctgaaggatgagtgtcagccagtgtaacccgatgagctacccagtagtcgaactgggccagacaacccggcgctaatgcactca"

var dna = alphabet.Dna4{}

func buildIndex(t *testing.T, text string) *index.Index {
	tc := index.NewTextCollection()
	tc.Add("chrom", alphabet.Encode(dna, text))
	idx, err := index.Build(tc, dna.Size())
	if err != nil {
		t.Fatalf("Failed to build index: %s", err)
	}
	return idx
}

// collectPositions gathers the begin positions of every hit for one
// query, sorted
func collectPositions(t *testing.T, rch <-chan Result) []int {
	positions := make([]int, 0)
	for res := range rch {
		if res.RefID() != 0 {
			t.Errorf("Invalid reference id: %d", res.RefID())
		}
		positions = append(positions, res.RefBegin())
	}
	sort.Ints(positions)
	return positions
}

func samePositions(got []int, expected []int) bool {
	if len(got) != len(expected) {
		return false
	}
	for i := range got {
		if got[i] != expected[i] {
			return false
		}
	}
	return true
}

func TestExactSearch(t *testing.T) {
	idx := buildIndex(t, chrom)
	queries := [][]uint8{alphabet.Encode(dna, "gct")}
	rch, err := Search(queries, idx, Config{Mode: ModeExact})
	if err != nil {
		t.Fatalf("Search failed: %s", err)
	}
	positions := collectPositions(t, rch)
	if !samePositions(positions, []int{1, 41, 77}) {
		t.Errorf("Invalid positions: %v", positions)
	}
}

func TestSubstitutionSearch(t *testing.T) {
	idx := buildIndex(t, chrom)
	queries := [][]uint8{alphabet.Encode(dna, "gct")}
	rch, err := Search(queries, idx, Config{MaxSubstitution: 1})
	if err != nil {
		t.Fatalf("Search failed: %s", err)
	}
	positions := collectPositions(t, rch)
	expected := []int{1, 5, 12, 23, 36, 41, 57, 62, 75, 77, 83, 85}
	if !samePositions(positions, expected) {
		t.Errorf("Invalid positions: %v vs %v", positions, expected)
	}
}

func TestDeletionSearch(t *testing.T) {
	idx := buildIndex(t, "acgtacgt")
	queries := [][]uint8{alphabet.Encode(dna, "acggt")}
	rch, err := Search(queries, idx, Config{MaxDeletion: 1, Fields: FieldRefBegin | FieldCursor})
	if err != nil {
		t.Fatalf("Search failed: %s", err)
	}
	positions := make([]int, 0)
	for res := range rch {
		if res.Cursor().Depth() != 4 {
			t.Errorf("Invalid match length: %d", res.Cursor().Depth())
		}
		positions = append(positions, res.RefBegin())
	}
	sort.Ints(positions)
	if !samePositions(positions, []int{0, 4}) {
		t.Errorf("Invalid positions: %v", positions)
	}
}

func TestInsertionSearch(t *testing.T) {
	idx := buildIndex(t, "acgtacgt")
	queries := [][]uint8{alphabet.Encode(dna, "act")}
	rch, err := Search(queries, idx, Config{MaxInsertion: 1, Fields: FieldRefBegin | FieldCursor})
	if err != nil {
		t.Fatalf("Search failed: %s", err)
	}
	positions := make([]int, 0)
	for res := range rch {
		if res.Cursor().Depth() != 4 {
			t.Errorf("Invalid match length: %d", res.Cursor().Depth())
		}
		positions = append(positions, res.RefBegin())
	}
	sort.Ints(positions)
	if !samePositions(positions, []int{0, 4}) {
		t.Errorf("Invalid positions: %v", positions)
	}
}

func TestBudgetWidening(t *testing.T) {
	idx := buildIndex(t, chrom)
	queries := [][]uint8{alphabet.Encode(dna, "gct")}
	exact, err := Search(queries, idx, Config{})
	if err != nil {
		t.Fatalf("Search failed: %s", err)
	}
	approx, err := Search(queries, idx, Config{MaxSubstitution: 1})
	if err != nil {
		t.Fatalf("Search failed: %s", err)
	}
	narrow := collectPositions(t, exact)
	wide := make(map[int]bool)
	for _, p := range collectPositions(t, approx) {
		wide[p] = true
	}
	for _, p := range narrow {
		if !wide[p] {
			t.Errorf("Position %d lost when widening the budget", p)
		}
	}
}

func TestMultipleQueries(t *testing.T) {
	idx := buildIndex(t, chrom)
	queries := [][]uint8{
		alphabet.Encode(dna, "gct"),
		alphabet.Encode(dna, "ccc"),
	}
	results, err := SearchAll(queries, idx, Config{Mode: ModeExact})
	if err != nil {
		t.Fatalf("Search failed: %s", err)
	}
	perQuery := make(map[int]int)
	for _, res := range results {
		perQuery[res.QueryID()]++
	}
	if perQuery[0] != 3 {
		t.Errorf("Invalid number of hits for query 0: %d", perQuery[0])
	}
	if perQuery[1] != len(bruteOffsets(chrom, "ccc")) {
		t.Errorf("Invalid number of hits for query 1: %d", perQuery[1])
	}
}

func bruteOffsets(text string, pattern string) []int {
	offsets := make([]int, 0)
	for i := 0; i+len(pattern) <= len(text); i++ {
		if text[i:i+len(pattern)] == pattern {
			offsets = append(offsets, i)
		}
	}
	return offsets
}

func TestTotalBudgetSpread(t *testing.T) {
	idx := buildIndex(t, chrom)
	queries := [][]uint8{alphabet.Encode(dna, "gct")}
	perKind, err := Search(queries, idx, Config{MaxSubstitution: 1})
	if err != nil {
		t.Fatalf("Search failed: %s", err)
	}
	total, err := Search(queries, idx, Config{MaxTotal: 1})
	if err != nil {
		t.Fatalf("Search failed: %s", err)
	}
	sub := collectPositions(t, perKind)
	all := make(map[int]bool)
	for _, p := range collectPositions(t, total) {
		all[p] = true
	}
	// a lone total budget allows every error kind, so it covers at
	// least the substitution only hits
	for _, p := range sub {
		if !all[p] {
			t.Errorf("Position %d missing under the total budget", p)
		}
	}
}

// bruteApprox walks every edit path over the text directly, the
// reference answer for approximate searches
func bruteApprox(text string, query string, sub int, ins int, del int, total int) []int {
	hits := make(map[int]bool)
	for start := 0; start < len(text); start++ {
		var walk func(p int, q int, s int, i int, d int, t int)
		walk = func(p int, q int, s int, i int, d int, t int) {
			if q == len(query) {
				hits[start] = true
				return
			}
			if p < len(text) && text[p] == query[q] {
				walk(p+1, q+1, s, i, d, t)
			}
			if t == 0 {
				return
			}
			if s > 0 && p < len(text) && text[p] != query[q] {
				walk(p+1, q+1, s-1, i, d, t-1)
			}
			if i > 0 && p < len(text) {
				walk(p+1, q, s, i-1, d, t-1)
			}
			if d > 0 {
				walk(p, q+1, s, i, d-1, t-1)
			}
		}
		walk(start, 0, sub, ins, del, total)
	}
	positions := make([]int, 0)
	for p := range hits {
		positions = append(positions, p)
	}
	sort.Ints(positions)
	return positions
}

func TestMixedBudgetSearch(t *testing.T) {
	// a deletion heavy path and a substitution heavy path can reach
	// the same query position and range with different budgets left,
	// and two spelled strings of different length can share a range;
	// neither coincidence may prune live states
	text := "ggctgg"
	idx := buildIndex(t, text)
	queries := [][]uint8{alphabet.Encode(dna, "acg")}
	rch, err := Search(queries, idx, Config{MaxSubstitution: 1, MaxDeletion: 1, MaxTotal: 2})
	if err != nil {
		t.Fatalf("Search failed: %s", err)
	}
	positions := collectPositions(t, rch)
	if !samePositions(positions, []int{0, 1, 2, 3, 4}) {
		t.Errorf("Invalid positions: %v", positions)
	}
	if !samePositions(positions, bruteApprox(text, "acg", 1, 0, 1, 2)) {
		t.Errorf("Positions diverge from the text walk: %v", positions)
	}
}

func TestMixedBudgetBruteForce(t *testing.T) {
	idx := buildIndex(t, chrom)
	queries := [][]uint8{alphabet.Encode(dna, "gct")}
	budgets := []Config{
		{MaxSubstitution: 1, MaxInsertion: 1, MaxDeletion: 1, MaxTotal: 2},
		{MaxInsertion: 2, MaxDeletion: 1, MaxTotal: 2},
	}
	for _, cfg := range budgets {
		rch, err := Search(queries, idx, cfg)
		if err != nil {
			t.Fatalf("Search failed: %s", err)
		}
		positions := collectPositions(t, rch)
		expected := bruteApprox(chrom, "gct",
			cfg.MaxSubstitution, cfg.MaxInsertion, cfg.MaxDeletion, cfg.MaxTotal)
		if !samePositions(positions, expected) {
			t.Errorf("Invalid positions for %+v: %v vs %v", cfg, positions, expected)
		}
	}
}

func TestConfigCheck(t *testing.T) {
	bad := []Config{
		{MaxSubstitution: -1},
		{MaxSubstitution: 2, MaxTotal: 1},
		{Mode: ModeExact, MaxTotal: 1},
		{Mode: Mode(5)},
		{Fields: Field(1 << 10)},
	}
	for i, cfg := range bad {
		if err := cfg.Check(); err == nil {
			t.Errorf("Configuration %d should be rejected", i)
		}
	}
	good := Config{MaxSubstitution: 1, MaxInsertion: 1, MaxDeletion: 1, MaxTotal: 2}
	if err := good.Check(); err != nil {
		t.Errorf("Configuration should be accepted: %s", err)
	}
	idx := buildIndex(t, "acgt")
	if _, err := Search([][]uint8{{0}}, idx, Config{MaxTotal: -1}); err == nil {
		t.Errorf("Search should reject an invalid configuration")
	}
}

func TestFieldAccess(t *testing.T) {
	idx := buildIndex(t, chrom)
	queries := [][]uint8{alphabet.Encode(dna, "gct")}
	results, err := SearchAll(queries, idx, Config{Mode: ModeExact, Fields: FieldQueryID | FieldCursor})
	if err != nil {
		t.Fatalf("Search failed: %s", err)
	}
	// without position fields a final cursor state is one result
	if len(results) != 1 {
		t.Fatalf("Invalid number of results: %d", len(results))
	}
	res := results[0]
	if res.QueryID() != 0 {
		t.Errorf("Invalid query id: %d", res.QueryID())
	}
	if res.Cursor().Count() != 3 || res.Cursor().Depth() != 3 {
		t.Errorf("Invalid cursor state: %d %d", res.Cursor().Count(), res.Cursor().Depth())
	}
	if res.Has(FieldRefBegin) {
		t.Errorf("Field should not be selected")
	}
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("Access to an unselected field should panic")
			return
		}
		if _, ok := r.(AccessError); !ok {
			t.Errorf("Invalid panic value: %v", r)
		}
	}()
	res.RefBegin()
}

func TestSearchBiParity(t *testing.T) {
	tc := index.NewTextCollection()
	tc.Add("chrom", alphabet.Encode(dna, chrom))
	bidx, err := index.BuildBi(tc, dna.Size())
	if err != nil {
		t.Fatalf("Failed to build bidirectional index: %s", err)
	}
	queries := [][]uint8{alphabet.Encode(dna, "gct")}
	rch, err := SearchBi(queries, bidx, Config{MaxSubstitution: 1})
	if err != nil {
		t.Fatalf("Search failed: %s", err)
	}
	positions := collectPositions(t, rch)
	expected := []int{1, 5, 12, 23, 36, 41, 57, 62, 75, 77, 83, 85}
	if !samePositions(positions, expected) {
		t.Errorf("Invalid positions: %v vs %v", positions, expected)
	}
}

func TestResultEqual(t *testing.T) {
	idx := buildIndex(t, chrom)
	queries := [][]uint8{alphabet.Encode(dna, "gct")}
	first, err := SearchAll(queries, idx, Config{Mode: ModeExact})
	if err != nil {
		t.Fatalf("Search failed: %s", err)
	}
	second, err := SearchAll(queries, idx, Config{Mode: ModeExact})
	if err != nil {
		t.Fatalf("Search failed: %s", err)
	}
	if len(first) != len(second) {
		t.Fatalf("Invalid number of results: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Errorf("Results %d differ", i)
		}
	}
	if len(first) > 1 && first[0].Equal(first[1]) {
		t.Errorf("Distinct hits should not compare equal")
	}
}
