// Package types holds the job and result records exchanged between
// clients, workers and collectors
package types

import (
	"gopkg.in/yaml.v2"
)

// SearchJob describes one search run: the sequence file to index,
// the queries and the error budget
type SearchJob struct {
	Uid             string
	SequenceFile    string
	Queries         []string
	MaxSubstitution int
	MaxInsertion    int
	MaxDeletion     int
	MaxTotal        int
	Exact           bool
	Outfile         string
}

// NewSearchJob returns an empty job
func NewSearchJob() SearchJob {
	job := SearchJob{}
	job.Queries = make([]string, 0)
	return job
}

// Dumps serialises the job
func (j SearchJob) Dumps() (out []byte, err error) {
	return yaml.Marshal(&j)
}

// LoadSearchJob parses a job dumped with Dumps
func LoadSearchJob(data []byte) (job SearchJob, err error) {
	err = yaml.Unmarshal(data, &job)
	return job, err
}
