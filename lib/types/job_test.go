package types

import (
	"strings"
	"testing"
)

func TestSearchJobDumps(t *testing.T) {
	job := NewSearchJob()
	job.Uid = "run1"
	job.SequenceFile = "chrom.txt"
	job.Queries = append(job.Queries, "gct", "acgt")
	job.MaxSubstitution = 1
	job.MaxTotal = 2
	out, err := job.Dumps()
	if err != nil {
		t.Fatalf("Failed to serialise job: %s", err)
	}
	loaded, err := LoadSearchJob(out)
	if err != nil {
		t.Fatalf("Failed to parse job: %s", err)
	}
	if loaded.Uid != "run1" || loaded.SequenceFile != "chrom.txt" {
		t.Errorf("Invalid job: %v", loaded)
	}
	if len(loaded.Queries) != 2 || loaded.Queries[1] != "acgt" {
		t.Errorf("Invalid queries: %v", loaded.Queries)
	}
	if loaded.MaxSubstitution != 1 || loaded.MaxTotal != 2 || loaded.Exact {
		t.Errorf("Invalid budgets: %v", loaded)
	}
}

func TestHitRecordDumps(t *testing.T) {
	hit := HitRecord{Uid: "run1", QueryID: 0, Query: "gct", Ref: "chrom.txt", Position: 41, Length: 3, Content: "gct"}
	out, err := hit.Dumps()
	if err != nil {
		t.Fatalf("Failed to serialise hit: %s", err)
	}
	doc := string(out)
	if !strings.Contains(doc, "chrom.txt") || !strings.Contains(doc, "41") {
		t.Errorf("Invalid document: %s", doc)
	}
}
