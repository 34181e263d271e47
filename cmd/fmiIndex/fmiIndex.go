// Build an index from a sequence file, sanity check it and
// optionally persist it

package main

import (
	"os"

	"github.com/namsral/flag"

	"github.com/osallou/fmindex-go-playground/lib/alphabet"
	"github.com/osallou/fmindex-go-playground/lib/index"
	logs "github.com/osallou/fmindex-go-playground/lib/log"
	"github.com/osallou/fmindex-go-playground/lib/sequence"
)

var logger = logs.GetLogger("fmi.index.cli")

// check extends the root cursor with every full reference, each one
// must be found at least once in its own index
func check(idx *index.Index) bool {
	tc := idx.Text()
	for i := 0; i < tc.Size(); i++ {
		cursor := idx.Root().ExtendRightSeq(tc.Ref(i))
		if cursor.Count() < 1 {
			logger.Errorf("check failed for reference %s", tc.Name(i))
			return false
		}
	}
	return true
}

func main() {
	var sequenceFile string
	var out string
	flag.StringVar(&sequenceFile, "sequence", "", "sequence file to index")
	flag.StringVar(&out, "out", "", "index output file, skip saving if empty")
	flag.Parse()

	if sequenceFile == "" {
		logger.Errorf("missing -sequence")
		os.Exit(1)
	}

	dna := alphabet.Dna4{}
	tc, err := sequence.LoadCollection(sequenceFile, dna)
	if err != nil {
		logger.Errorf("%s", err)
		os.Exit(1)
	}
	idx, err := index.Build(tc, dna.Size())
	if err != nil {
		logger.Errorf("%s", err)
		os.Exit(1)
	}
	logger.Infof("Indexed %d references, %d symbols", tc.Size(), tc.Length())
	if !check(idx) {
		os.Exit(1)
	}
	if out != "" {
		if err := idx.Save(out); err != nil {
			logger.Errorf("failed to save index: %s", err)
			os.Exit(1)
		}
	}
}
