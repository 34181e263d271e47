// Client: submit a search job and wait for its completion

package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/namsral/flag"
	uuid "github.com/satori/go.uuid"

	logs "github.com/osallou/fmindex-go-playground/lib/log"
	transport "github.com/osallou/fmindex-go-playground/lib/transport"
	"github.com/osallou/fmindex-go-playground/lib/types"
	"github.com/osallou/fmindex-go-playground/lib/utils"
)

var logger = logs.GetLogger("fmi.client")

func main() {
	var uid string
	var sequenceFile string
	var queries string
	var jobFile string
	var sub int
	var ins int
	var del int
	var total int
	var exact bool
	flag.StringVar(&uid, "uid", "run", "run identifier, same as fmiWorker")
	flag.StringVar(&sequenceFile, "sequence", "", "sequence file to search in")
	flag.StringVar(&queries, "query", "", "comma separated queries")
	flag.StringVar(&jobFile, "job", "", "job description file, overrides other options")
	flag.IntVar(&sub, "sub", 0, "max substitutions")
	flag.IntVar(&ins, "ins", 0, "max insertions")
	flag.IntVar(&del, "del", 0, "max deletions")
	flag.IntVar(&total, "total", 0, "max total errors")
	flag.BoolVar(&exact, "exact", false, "exact search only")
	flag.Parse()

	logger.Infof("Version: %s, build: %s, hash: %s", utils.Version, utils.Buildstamp, utils.Githash)

	job := types.NewSearchJob()
	if jobFile != "" {
		content, err := os.ReadFile(jobFile)
		if err != nil {
			logger.Errorf("failed to read job file: %s", err)
			os.Exit(1)
		}
		job, err = types.LoadSearchJob(content)
		if err != nil {
			logger.Errorf("failed to parse job file: %s", err)
			os.Exit(1)
		}
	} else {
		if sequenceFile == "" || queries == "" {
			logger.Errorf("missing -sequence or -query")
			os.Exit(1)
		}
		job.SequenceFile = sequenceFile
		job.Queries = strings.Split(queries, ",")
		job.MaxSubstitution = sub
		job.MaxInsertion = ins
		job.MaxDeletion = del
		job.MaxTotal = total
		job.Exact = exact
	}

	jobuid := uuid.NewV4()
	job.Uid = jobuid.String()
	logger.Infof("Launch job %s", job.Uid)

	var t transport.Transport
	t = transport.GetTransport(transport.QUEUE_SEARCH)
	t.Init(uid)

	t.SetCount(job.Uid, int64(len(job.Queries)))
	t.SetBan(job.Uid, 0)
	t.SetMatch(job.Uid, 0)
	t.SendJob(transport.QUEUE_SEARCH, job)

	notOver := true

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		logger.Infof("Interrupt signal, exiting")
		event := transport.MsgEvent{}
		event.Step = transport.STEP_END
		t.SendEvent(event)
		notOver = false
	}()

	for notOver {
		count, ban, matches := t.GetProgress(job.Uid)
		logger.Infof("Queries: %d, Banned: %d, Matched: %d", count, ban, matches)
		if matches+ban == count {
			logger.Infof("Search is over, exiting...")
			event := transport.MsgEvent{}
			event.Step = transport.STEP_END
			t.SendEvent(event)
			notOver = false
		}
		time.Sleep(2000 * time.Millisecond)
	}

	t.Close()
	t.Clear(job.Uid)
}
