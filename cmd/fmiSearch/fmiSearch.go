// One shot local search: index a sequence file and search queries
// against it, printing every hit

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/namsral/flag"

	"github.com/osallou/fmindex-go-playground/lib/alphabet"
	"github.com/osallou/fmindex-go-playground/lib/index"
	logs "github.com/osallou/fmindex-go-playground/lib/log"
	"github.com/osallou/fmindex-go-playground/lib/search"
	"github.com/osallou/fmindex-go-playground/lib/sequence"
)

var logger = logs.GetLogger("fmi.search.cli")

func main() {
	var sequenceFile string
	var queries string
	var sub int
	var ins int
	var del int
	var total int
	var exact bool
	flag.StringVar(&sequenceFile, "sequence", "", "sequence file to search in")
	flag.StringVar(&queries, "query", "", "comma separated queries")
	flag.IntVar(&sub, "sub", 0, "max substitutions")
	flag.IntVar(&ins, "ins", 0, "max insertions")
	flag.IntVar(&del, "del", 0, "max deletions")
	flag.IntVar(&total, "total", 0, "max total errors")
	flag.BoolVar(&exact, "exact", false, "exact search only")
	flag.Parse()

	if sequenceFile == "" || queries == "" {
		logger.Errorf("missing -sequence or -query")
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

	queryList := strings.Split(queries, ",")
	encoded := make([][]uint8, len(queryList))
	for i, q := range queryList {
		encoded[i] = alphabet.Encode(dna, q)
	}

	cfg := search.Config{
		MaxSubstitution: sub,
		MaxInsertion:    ins,
		MaxDeletion:     del,
		MaxTotal:        total,
		Fields:          search.FieldQueryID | search.FieldCursor | search.FieldRefID | search.FieldRefBegin,
	}
	if exact {
		cfg.Mode = search.ModeExact
	}

	rch, err := search.Search(encoded, idx, cfg)
	if err != nil {
		logger.Errorf("%s", err)
		os.Exit(1)
	}
	nb := 0
	for res := range rch {
		fmt.Printf("%s\t%s\t%d\t%d\n",
			queryList[res.QueryID()],
			tc.Name(res.RefID()),
			res.RefBegin(),
			res.Cursor().Depth())
		nb++
	}
	logger.Infof("got %d hits", nb)
}
