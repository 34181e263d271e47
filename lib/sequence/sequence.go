// Package sequence loads sequence files and gives windowed access to
// their content
package sequence

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru"
	"github.com/osallou/fmindex-go-playground/lib/alphabet"
	"github.com/osallou/fmindex-go-playground/lib/index"
	logs "github.com/osallou/fmindex-go-playground/lib/log"
)

var logger = logs.GetLogger("fmi.sequence")

// windowSize is the minimum amount read from disk per cache miss
const windowSize = 10000

// lruEntries bounds the number of cached windows
const lruEntries = 10

// Sequence is a raw sequence file, one reference per file
type Sequence struct {
	Path string
	Size int
}

// NewSequence opens a sequence file and records its size
func NewSequence(path string) (seq Sequence, err error) {
	seq = Sequence{Path: path}
	file, err := os.Open(path)
	if err != nil {
		logger.Errorf("failed to open sequence: %s", err)
		return seq, err
	}
	defer file.Close()
	stat, err := file.Stat()
	if err != nil {
		return seq, err
	}
	seq.Size = int(stat.Size())
	return seq, nil
}

// LoadCollection reads the whole sequence file and rank encodes it
// into a single reference text collection named after the file
func LoadCollection(path string, a alphabet.Alphabet) (*index.TextCollection, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		logger.Errorf("failed to read sequence: %s", err)
		return nil, err
	}
	raw := strings.TrimSpace(string(content))
	tc := index.NewTextCollection()
	tc.Add(filepath.Base(path), alphabet.Encode(a, raw))
	logger.Infof("Loaded sequence %s, %d symbols", path, len(raw))
	return tc, nil
}

// SequenceLru caches windows of a sequence file
type SequenceLru struct {
	Lru      *lru.Cache
	Sequence Sequence
}

// NewSequenceLru initializes the window cache for a sequence
func NewSequenceLru(sequence Sequence) (seq SequenceLru) {
	logger.Debugf("Initialize sequence LRU")
	seq = SequenceLru{}
	seq.Sequence = sequence
	seq.Lru, _ = lru.New(lruEntries)
	return seq
}

// GetContent returns sequence content between start and end, reading
// a larger window on cache miss
func (s SequenceLru) GetContent(start int, end int) (content string) {
	logger.Debugf("Search in sequence %d:%d", start, end)
	if start < 0 {
		start = 0
	}
	if end > s.Sequence.Size {
		end = s.Sequence.Size
	}
	if start >= end {
		return ""
	}
	for _, key := range s.Lru.Keys() {
		r := strings.Split(key.(string), ".")
		sStart, _ := strconv.Atoi(r[0])
		sEnd, _ := strconv.Atoi(r[1])
		if start >= sStart && end <= sEnd {
			cached, ok := s.Lru.Get(key)
			if !ok {
				break
			}
			window := cached.(string)
			return window[start-sStart : end-sStart]
		}
	}
	bufferSize := windowSize
	if end-start > bufferSize {
		bufferSize = end - start
	}
	if start+bufferSize > s.Sequence.Size {
		bufferSize = s.Sequence.Size - start
	}
	buffer := make([]byte, bufferSize)
	logger.Debugf("Load window from sequence %d:%d", start, start+bufferSize)
	file, err := os.Open(s.Sequence.Path)
	if err != nil {
		logger.Errorf("failed to open sequence: %s", err)
		return ""
	}
	defer file.Close()
	if _, err := file.ReadAt(buffer, int64(start)); err != nil {
		logger.Errorf("failed to read sequence window: %s", err)
		return ""
	}
	window := string(buffer)
	key := fmt.Sprintf("%d.%d", start, start+len(window))
	s.Lru.Add(key, window)
	return window[:end-start]
}
