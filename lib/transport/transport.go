// Package transport moves search jobs and hit records between the
// client, the workers and the result collector
package transport

import (
	"os"
	"strconv"
	"sync"

	logs "github.com/osallou/fmindex-go-playground/lib/log"
	"github.com/osallou/fmindex-go-playground/lib/types"
)

var logger = logs.GetLogger("fmi.transport")

// QueueType selects one of the transport queues
type QueueType int

const QUEUE_SEARCH = 0
const QUEUE_RESULT = 1
const QUEUE_EVENT = 2
const EXCHANGE_EVENT = 3

const STEP_NONE int = -1
const STEP_END int = 2

// MsgEvent is a control event broadcast to every listener
type MsgEvent struct {
	Step int
}

const TRANSPORT_AMQP = 0
const TRANSPORT_LOCAL = 1

// CallbackJob handles one search job, false on rejection
type CallbackJob func(job types.SearchJob) bool

// CallbackHit handles one hit record, false on rejection
type CallbackHit func(hit types.HitRecord) bool

// Transport is the interface that wraps messaging between search
// processes
//
// Init initializes the transport for a run identifier
// GetId returns the identifier of current transport
// GetProgress returns the number of submitted, banned and matched queries
// Clear cleans temporary data of a run
// Close closes the transport
// SendJob sends a search job to the queue consumers
// SendHit sends a hit record to the result collectors
// SendEvent broadcasts an event to all consumers
// Listen starts the job event loop with a callback per received job
// ListenHit starts the hit event loop with a callback per received hit
type Transport interface {
	Init(uid string)
	GetId() string
	GetProgress(uid string) (count int, ban int, match int)
	AddBan(uid string, nb int64)
	AddCount(uid string, nb int64)
	AddMatch(uid string, nb int64)
	SetBan(uid string, nb int64)
	SetCount(uid string, nb int64)
	SetMatch(uid string, nb int64)
	Clear(uid string)
	Close()
	SendJob(queue QueueType, job types.SearchJob) bool
	SendHit(hit types.HitRecord) bool
	SendEvent(event MsgEvent) bool
	Listen(queue QueueType, fn CallbackJob)
	ListenHit(fn CallbackHit)
}

var onceSearch sync.Once
var onceResult sync.Once
var tSearch Transport
var tResult Transport

func getTransportKind() int {
	transportKind := TRANSPORT_AMQP
	osTransportKind := os.Getenv("FMI_TRANSPORT")
	if osTransportKind != "" {
		tk, err := strconv.Atoi(osTransportKind)
		if err == nil {
			transportKind = tk
		}
	}
	return transportKind
}

func newTransport() Transport {
	if getTransportKind() == TRANSPORT_LOCAL {
		return NewTransportLocal()
	}
	return NewTransportRabbit()
}

// GetTransport returns the shared transport for the queue kind
func GetTransport(kind QueueType) Transport {
	switch kind {
	case QUEUE_SEARCH:
		onceSearch.Do(func() {
			tSearch = newTransport()
		})
		return tSearch
	case QUEUE_RESULT:
		onceResult.Do(func() {
			tResult = newTransport()
		})
		return tResult
	}
	return nil
}
