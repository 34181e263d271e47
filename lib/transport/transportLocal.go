package transport

import (
	"encoding/json"
	"sync"

	uuid "github.com/satori/go.uuid"

	"github.com/osallou/fmindex-go-playground/lib/db"
	"github.com/osallou/fmindex-go-playground/lib/types"
)

// localBus is the in process replacement for the broker, shared by
// every local transport of the process
type localBus struct {
	payload  db.MemDB
	queues   map[int]chan string
	stop     chan bool
	stopOnce sync.Once
}

var busOnce sync.Once
var bus *localBus

func getBus() *localBus {
	busOnce.Do(func() {
		bus = &localBus{
			payload: db.NewMemDB(),
			queues: map[int]chan string{
				QUEUE_SEARCH: make(chan string, 1024),
				QUEUE_RESULT: make(chan string, 1024),
			},
			stop: make(chan bool),
		}
	})
	return bus
}

// TransportLocal runs the whole pipeline in one process, queues are
// channels and payloads live in a MemDB. Selected with
// FMI_TRANSPORT=1, mostly for tests and small runs.
type TransportLocal struct {
	id  string
	bus *localBus
}

// NewTransportLocal returns a transport over the process local bus
func NewTransportLocal() *TransportLocal {
	return &TransportLocal{bus: getBus()}
}

func (t *TransportLocal) Init(uid string) {
	t.id = uid
}

func (t TransportLocal) GetId() string {
	return t.id
}

func (t *TransportLocal) GetProgress(uid string) (count int, ban int, match int) {
	count = int(t.bus.payload.GetInt64("fmi:" + uid + ":count"))
	ban = int(t.bus.payload.GetInt64("fmi:" + uid + ":ban"))
	match = int(t.bus.payload.GetInt64("fmi:" + uid + ":match"))
	return count, ban, match
}

func (t *TransportLocal) AddBan(uid string, nb int64) {
	t.bus.payload.IncrBy("fmi:"+uid+":ban", nb)
}
func (t *TransportLocal) AddCount(uid string, nb int64) {
	t.bus.payload.IncrBy("fmi:"+uid+":count", nb)
}
func (t *TransportLocal) AddMatch(uid string, nb int64) {
	t.bus.payload.IncrBy("fmi:"+uid+":match", nb)
}
func (t *TransportLocal) SetBan(uid string, nb int64) {
	t.bus.payload.Set("fmi:"+uid+":ban", nb)
}
func (t *TransportLocal) SetCount(uid string, nb int64) {
	t.bus.payload.Set("fmi:"+uid+":count", nb)
}
func (t *TransportLocal) SetMatch(uid string, nb int64) {
	t.bus.payload.Set("fmi:"+uid+":match", nb)
}

func (t *TransportLocal) Clear(uid string) {
	t.bus.payload.Delete("fmi:" + uid + ":count")
	t.bus.payload.Delete("fmi:" + uid + ":ban")
	t.bus.payload.Delete("fmi:" + uid + ":match")
}

func (t *TransportLocal) Close() {
	logger.Infof("Closing local transport %s", t.id)
}

func (t *TransportLocal) send(queue QueueType, payload []byte) bool {
	u1 := uuid.NewV4()
	t.bus.payload.Set("fmi:msg:"+u1.String(), payload)
	ch, ok := t.bus.queues[int(queue)]
	if !ok {
		logger.Errorf("Could not find queue %d", int(queue))
		return false
	}
	ch <- u1.String()
	return true
}

func (t *TransportLocal) receive(key string) (payload []byte, ok bool) {
	val, found := t.bus.payload.Get("fmi:msg:" + key)
	if !found {
		return nil, false
	}
	t.bus.payload.Delete("fmi:msg:" + key)
	return val.([]byte), true
}

func (t *TransportLocal) SendJob(queue QueueType, job types.SearchJob) bool {
	jsonMsg, err := json.Marshal(job)
	if err != nil {
		logger.Errorf("Failed to encode job %s", job.Uid)
		return false
	}
	return t.send(queue, jsonMsg)
}

func (t *TransportLocal) SendHit(hit types.HitRecord) bool {
	jsonMsg, err := json.Marshal(hit)
	if err != nil {
		logger.Errorf("Failed to encode hit for %s", hit.Uid)
		return false
	}
	return t.send(QUEUE_RESULT, jsonMsg)
}

// SendEvent broadcasts by closing the bus stop channel, every
// listener of the process exits
func (t *TransportLocal) SendEvent(event MsgEvent) bool {
	if event.Step == STEP_END {
		t.bus.stopOnce.Do(func() { close(t.bus.stop) })
	}
	return true
}

func (t *TransportLocal) listen(queue QueueType, fn func(payload []byte) bool) {
	ch, ok := t.bus.queues[int(queue)]
	if !ok {
		panic("Failed to find message queue name")
	}
	logger.Infof("Listen on local queue %d", int(queue))
	for {
		select {
		case key := <-ch:
			payload, found := t.receive(key)
			if found {
				fn(payload)
			}
		case <-t.bus.stop:
			logger.Infof("Received exit request on queue %d", int(queue))
			return
		}
	}
}

func (t *TransportLocal) Listen(queue QueueType, fn CallbackJob) {
	t.listen(queue, func(payload []byte) bool {
		job := types.SearchJob{}
		if err := json.Unmarshal(payload, &job); err != nil {
			logger.Errorf("Failed to decode job: %s", err)
			return false
		}
		return fn(job)
	})
}

func (t *TransportLocal) ListenHit(fn CallbackHit) {
	t.listen(QUEUE_RESULT, func(payload []byte) bool {
		hit := types.HitRecord{}
		if err := json.Unmarshal(payload, &hit); err != nil {
			logger.Errorf("Failed to decode hit: %s", err)
			return false
		}
		return fn(hit)
	})
}
