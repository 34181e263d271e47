package search

import (
	"github.com/osallou/fmindex-go-playground/lib/index"
)

// Walker is the capability a cursor must offer to be searchable.
// Both the unidirectional and the bidirectional cursor satisfy it
// through small value adapters.
type Walker interface {
	ExtendRight(r uint8) Walker
	Count() int
	Depth() int
	Range() (lower int, upper int)
	Locate() []index.Position
}

type uniWalker struct {
	c index.Cursor
}

func (w uniWalker) ExtendRight(r uint8) Walker { return uniWalker{c: w.c.ExtendRight(r)} }
func (w uniWalker) Count() int                 { return w.c.Count() }
func (w uniWalker) Depth() int                 { return w.c.Depth() }
func (w uniWalker) Range() (int, int)          { return w.c.Range() }
func (w uniWalker) Locate() []index.Position   { return w.c.Locate() }

type biWalker struct {
	c index.BiCursor
}

func (w biWalker) ExtendRight(r uint8) Walker { return biWalker{c: w.c.ExtendRight(r)} }
func (w biWalker) Count() int                 { return w.c.Count() }
func (w biWalker) Depth() int                 { return w.c.Depth() }
func (w biWalker) Range() (int, int)          { return w.c.Range() }
func (w biWalker) Locate() []index.Position   { return w.c.Locate() }

// NewWalker wraps a unidirectional cursor
func NewWalker(c index.Cursor) Walker {
	return uniWalker{c: c}
}

// NewBiWalker wraps a bidirectional cursor
func NewBiWalker(c index.BiCursor) Walker {
	return biWalker{c: c}
}

// stateKey identifies a node of the edit operation tree. The range
// alone does not identify a state: two spelled strings of different
// length can share an interval, and the same interval reached with
// more budget left can still produce hits a poorer path cannot. Only
// a node equal in position, depth, range and remaining budgets is a
// true revisit.
type stateKey struct {
	qpos  int
	depth int
	lower int
	upper int
	sub   int
	ins   int
	del   int
	total int
}

// finalKey identifies a final cursor state for emission, one emission
// per spelled match no matter how many edit paths reach it
type finalKey struct {
	depth int
	lower int
	upper int
}

type engine struct {
	cfg     Config
	sigma   int
	out     chan Result
	queryID int
	query   []uint8
	visited map[stateKey]bool
	emitted map[finalKey]bool
	seen    map[index.Position]bool
}

// Search runs every query against the index and streams hits on the
// returned channel, closed once the traversal is over. The
// configuration is checked before anything runs.
func Search(queries [][]uint8, idx *index.Index, cfg Config) (<-chan Result, error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return run(queries, NewWalker(idx.Root()), idx.AlphabetSize(), cfg), nil
}

// SearchBi is Search over a bidirectional index
func SearchBi(queries [][]uint8, bidx *index.BiIndex, cfg Config) (<-chan Result, error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return run(queries, NewBiWalker(bidx.Root()), bidx.AlphabetSize(), cfg), nil
}

// SearchAll collects every hit of Search in a slice
func SearchAll(queries [][]uint8, idx *index.Index, cfg Config) ([]Result, error) {
	rch, err := Search(queries, idx, cfg)
	if err != nil {
		return nil, err
	}
	results := make([]Result, 0)
	for res := range rch {
		results = append(results, res)
	}
	return results, nil
}

func run(queries [][]uint8, root Walker, sigma int, cfg Config) <-chan Result {
	cfg = cfg.normalized()
	out := make(chan Result)
	go func() {
		defer close(out)
		for queryID, query := range queries {
			e := engine{
				cfg:     cfg,
				sigma:   sigma,
				out:     out,
				queryID: queryID,
				query:   query,
				visited: make(map[stateKey]bool),
				emitted: make(map[finalKey]bool),
				seen:    make(map[index.Position]bool),
			}
			logger.Debugf("search query %d, %d symbols", queryID, len(query))
			e.explore(root, 0, cfg.MaxSubstitution, cfg.MaxInsertion, cfg.MaxDeletion, cfg.MaxTotal)
		}
	}()
	return out
}

// explore walks one node of the edit operation tree. Pruning on an
// empty range or on an already visited state is normal control flow.
func (e *engine) explore(w Walker, qpos int, sub, ins, del, total int) {
	if w.Count() == 0 {
		return
	}
	lower, upper := w.Range()
	key := stateKey{qpos: qpos, depth: w.Depth(), lower: lower, upper: upper,
		sub: sub, ins: ins, del: del, total: total}
	if e.visited[key] {
		return
	}
	e.visited[key] = true

	if qpos == len(e.query) {
		e.emit(w)
		return
	}

	if total == 0 {
		// no budget left, the rest of the query must match exactly
		e.exactTail(w, qpos)
		return
	}

	// match
	e.explore(w.ExtendRight(e.query[qpos]), qpos+1, sub, ins, del, total)

	// substitution: any other symbol in place of the query symbol
	if sub > 0 {
		for r := 0; r < e.sigma; r++ {
			if uint8(r) == e.query[qpos] {
				continue
			}
			e.explore(w.ExtendRight(uint8(r)), qpos+1, sub-1, ins, del, total-1)
		}
	}

	// insertion: an extra symbol in the text, query stays put
	if ins > 0 {
		for r := 0; r < e.sigma; r++ {
			e.explore(w.ExtendRight(uint8(r)), qpos, sub, ins-1, del, total-1)
		}
	}

	// deletion: skip the query symbol without extending
	if del > 0 {
		e.explore(w, qpos+1, sub, ins, del-1, total-1)
	}
}

// exactTail extends the remaining query symbols without branching
func (e *engine) exactTail(w Walker, qpos int) {
	for _, r := range e.query[qpos:] {
		w = w.ExtendRight(r)
		if w.Count() == 0 {
			return
		}
	}
	e.emit(w)
}

// emit builds results for one final cursor state, once per state.
// Locate runs here only, never on pruned branches.
func (e *engine) emit(w Walker) {
	lower, upper := w.Range()
	key := finalKey{depth: w.Depth(), lower: lower, upper: upper}
	if e.emitted[key] {
		return
	}
	e.emitted[key] = true
	if e.cfg.Fields&(FieldRefID|FieldRefBegin) == 0 {
		e.out <- newResult(e.cfg.Fields, e.queryID, w, 0, 0)
		return
	}
	for _, pos := range w.Locate() {
		if e.seen[pos] {
			continue
		}
		e.seen[pos] = true
		e.out <- newResult(e.cfg.Fields, e.queryID, w, pos.Ref, pos.Offset)
	}
}
