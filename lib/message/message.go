// Package message implements the worker side message managers: job
// consumption, index caching and hit collection
package message

import (
	"os"
	"strconv"

	cache "github.com/patrickmn/go-cache"

	"github.com/osallou/fmindex-go-playground/lib/alphabet"
	"github.com/osallou/fmindex-go-playground/lib/index"
	logs "github.com/osallou/fmindex-go-playground/lib/log"
	"github.com/osallou/fmindex-go-playground/lib/search"
	seq "github.com/osallou/fmindex-go-playground/lib/sequence"
	"github.com/osallou/fmindex-go-playground/lib/transport"
	"github.com/osallou/fmindex-go-playground/lib/types"
)

var logger = logs.GetLogger("fmi.message")

// MessageManager handles one queue of the pipeline
type MessageManager interface {
	Init(uid string, rch chan types.HitRecord)
	Run()
	Close()
}

// indexEntry is a built index with its content accessor, cached per
// sequence file
type indexEntry struct {
	idx *index.Index
	lru seq.SequenceLru
}

// MessageSearch consumes search jobs, runs the engine and publishes
// hits to the result queue
type MessageSearch struct {
	uid       string
	transport transport.Transport
	indexes   *cache.Cache
	alpha     alphabet.Dna4
}

func (m *MessageSearch) Init(uid string, rch chan types.HitRecord) {
	logger.Infof("init search worker %s", uid)
	m.uid = uid
	m.indexes = cache.New(cache.NoExpiration, 0)
	m.transport = transport.GetTransport(transport.QUEUE_SEARCH)
	m.transport.Init(uid)
}

func (m *MessageSearch) Run() {
	m.transport.Listen(transport.QUEUE_SEARCH, m.HandleJob)
}

func (m *MessageSearch) Close() {
	logger.Infof("Closing search worker")
	m.transport.Close()
}

// getIndex builds the index for a sequence file, or reuses a
// previously built one
func (m *MessageSearch) getIndex(path string) (entry indexEntry, err error) {
	if cached, found := m.indexes.Get(path); found {
		return cached.(indexEntry), nil
	}
	tc, err := seq.LoadCollection(path, m.alpha)
	if err != nil {
		return entry, err
	}
	idx, err := index.Build(tc, m.alpha.Size())
	if err != nil {
		return entry, err
	}
	sequence, err := seq.NewSequence(path)
	if err != nil {
		return entry, err
	}
	entry = indexEntry{idx: idx, lru: seq.NewSequenceLru(sequence)}
	m.indexes.Set(path, entry, cache.NoExpiration)
	return entry, nil
}

// HandleJob searches every query of the job and publishes the hits
func (m *MessageSearch) HandleJob(job types.SearchJob) bool {
	logger.Infof("Handle job %s, %d queries", job.Uid, len(job.Queries))
	entry, err := m.getIndex(job.SequenceFile)
	if err != nil {
		logger.Errorf("Failed to index %s: %s", job.SequenceFile, err)
		m.transport.AddBan(job.Uid, int64(len(job.Queries)))
		return false
	}
	cfg := search.Config{
		MaxSubstitution: job.MaxSubstitution,
		MaxInsertion:    job.MaxInsertion,
		MaxDeletion:     job.MaxDeletion,
		MaxTotal:        job.MaxTotal,
		Fields:          search.FieldQueryID | search.FieldCursor | search.FieldRefID | search.FieldRefBegin,
	}
	if job.Exact {
		cfg.Mode = search.ModeExact
	}
	queries := make([][]uint8, len(job.Queries))
	for i, q := range job.Queries {
		queries[i] = alphabet.Encode(m.alpha, q)
	}
	rch, err := search.Search(queries, entry.idx, cfg)
	if err != nil {
		logger.Errorf("Rejected job %s: %s", job.Uid, err)
		m.transport.AddBan(job.Uid, int64(len(job.Queries)))
		return false
	}
	hits := make([]int, len(queries))
	for res := range rch {
		queryID := res.QueryID()
		position := res.RefBegin()
		length := res.Cursor().Depth()
		hit := types.HitRecord{
			Uid:      job.Uid,
			QueryID:  queryID,
			Query:    job.Queries[queryID],
			Ref:      entry.idx.Text().Name(res.RefID()),
			RefID:    res.RefID(),
			Position: position,
			Length:   length,
			Content:  entry.lru.GetContent(position, position+length),
		}
		m.transport.SendHit(hit)
		hits[queryID]++
	}
	for queryID, nb := range hits {
		if nb > 0 {
			m.transport.AddMatch(job.Uid, 1)
		} else {
			logger.Debugf("No hit for query %d of %s", queryID, job.Uid)
			m.transport.AddBan(job.Uid, 1)
		}
	}
	return true
}

// MessageResult collects hit records, writes them to the output file
// and forwards them to an optional channel
type MessageResult struct {
	nbMatches   int
	maxMatches  int
	outfile     *os.File
	outfileOpen bool
	uid         string
	rch         chan types.HitRecord
	transport   transport.Transport
}

func (m *MessageResult) Init(uid string, rch chan types.HitRecord) {
	logger.Infof("init result collector %s", uid)
	m.nbMatches = 0
	m.maxMatches = 100
	osMaxMatches := os.Getenv("FMI_MAX_MATCH")
	if osMaxMatches != "" {
		maxMatches, err := strconv.Atoi(osMaxMatches)
		if err != nil {
			logger.Errorf("Invalid env variable FMI_MAX_MATCH, using default [100]")
		} else {
			m.maxMatches = maxMatches
		}
	}
	m.outfileOpen = false
	m.uid = uid
	m.rch = rch
	m.transport = transport.GetTransport(transport.QUEUE_RESULT)
	m.transport.Init(uid)
}

func (m *MessageResult) Run() {
	m.transport.ListenHit(m.HandleHit)
}

func (m *MessageResult) Close() {
	logger.Infof("Closing result collector, %d hits", m.nbMatches)
	if m.outfileOpen {
		m.outfile.Close()
	}
	if m.rch != nil {
		close(m.rch)
	}
	m.transport.Close()
}

// HandleHit appends one hit to the output file
func (m *MessageResult) HandleHit(hit types.HitRecord) bool {
	logger.Debugf("handle hit for job %s", hit.Uid)
	if m.maxMatches > 0 && m.nbMatches >= m.maxMatches {
		logger.Debugf("Hit limit reached, skipping")
		return false
	}
	if !m.outfileOpen {
		outFilePath := "fmi." + m.uid + ".out"
		osOutfile := os.Getenv("FMI_OUTFILE")
		if osOutfile != "" {
			outFilePath = osOutfile
		}
		logger.Infof("Create output file %s", outFilePath)
		outfile, err := os.Create(outFilePath)
		if err != nil {
			logger.Errorf("Failed to open output file")
			return false
		}
		m.outfile = outfile
		m.outfileOpen = true
	}
	out, err := hit.Dumps()
	if err != nil {
		logger.Errorf("Failed to serialize hit")
		return false
	}
	m.outfile.Write(out)
	m.outfile.WriteString("---\n")
	m.nbMatches++
	if m.rch != nil {
		m.rch <- hit
	}
	return true
}
