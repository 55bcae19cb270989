package search

import (
	"github.com/katalvlaran/starverify/bitmask"
	"github.com/katalvlaran/starverify/instance"
)

// Result is the outcome of a completed Run.
type Result struct {
	NumPrecolorings int64 // count of full extensions found
	NumFailures     int   // count of precolored prefixes with no extension
	Success         bool  // true iff NumFailures == 0 when the search terminated
}

// Engine holds all backtracking-search state for one instance, one
// shard. Modeled on the teacher's dedicated branch-and-bound engine
// struct: a single value threaded through advance/backtrack/validity
// steps, no recursion, no closures capturing loop variables.
type Engine struct {
	inst *instance.Instance

	jobNumber int
	numJobs   int
	depth     int // parallel_depth

	c         []int          // c[v]: candidate/committed color of vertex v
	colorMask []bitmask.Mask // colorMask[kappa]: bitset of vertices currently colored kappa

	cur     int
	curMask bitmask.Mask

	parallelCount int64

	rep *Reporter
}

// EngineOption configures an Engine at construction time.
type EngineOption func(*Engine)

// WithReporter attaches a Reporter that receives progress, failure, and
// summary output. Without this option, the engine runs silently.
func WithReporter(r *Reporter) EngineOption {
	return func(e *Engine) { e.rep = r }
}

// New builds an Engine for one shard of the search over inst.
// jobNumber/numJobs/depth implement the parallel sharding contract of
// spec §5: a single-process run is numJobs=1, jobNumber=0, any depth.
func New(inst *instance.Instance, jobNumber, numJobs, depth int, opts ...EngineOption) (*Engine, error) {
	if inst.P < 1 || inst.P > inst.N {
		return nil, ErrInvalidPrecoloredCount
	}
	if numJobs < 1 {
		return nil, ErrInvalidNumJobs
	}
	if jobNumber < 0 || jobNumber >= numJobs {
		return nil, ErrInvalidJobNumber
	}
	if depth < 0 || depth >= inst.N {
		return nil, ErrInvalidDepth
	}

	e := &Engine{
		inst:      inst,
		jobNumber: jobNumber,
		numJobs:   numJobs,
		depth:     depth,
		c:         make([]int, inst.N),
		colorMask: make([]bitmask.Mask, inst.K+1),
		rep:       NewReporter(nil),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Run performs the full backtracking search and returns its result.
// The instance is not mutated; Run may be called at most once per
// Engine (search state is consumed as it runs).
func (e *Engine) Run() Result {
	n := e.inst.N

	if n <= 1 {
		// Only the forced vertex 0 exists; the whole instance is the
		// precolored prefix (p must equal 1 here, per New's bounds).
		res := Result{NumPrecolorings: 1, Success: true}
		e.rep.final(res)
		return res
	}

	e.c[0] = 1
	e.colorMask[1] = e.colorMask[1].Set(0)
	e.cur = 1
	e.curMask = bitmask.BitMask(1)
	e.c[1] = 2 // spec's initial condition fixes this directly, bypassing the general table

	var numPrecolorings int64
	var numFailures int

	for {
		if e.c[e.cur] <= 0 {
			if e.backtrack(&numFailures) {
				res := Result{NumPrecolorings: numPrecolorings, NumFailures: numFailures, Success: numFailures == 0}
				e.rep.final(res)
				return res
			}
			continue
		}

		kappa := e.c[e.cur]
		if !e.valid(kappa) {
			e.c[e.cur]--
			continue
		}

		if e.cur == e.depth {
			e.parallelCount++
			if int(e.parallelCount%int64(e.numJobs)) != e.jobNumber {
				e.c[e.cur]--
				continue
			}
		}

		// Commit kappa at cur and advance.
		e.colorMask[kappa] = e.colorMask[kappa].Or(e.curMask)
		e.cur++
		e.curMask = e.curMask.Shl1()

		if e.cur >= n {
			numPrecolorings++
			e.rep.progress(numPrecolorings, e.c, n)

			if e.inst.P == 1 {
				// Vertex 0's color is fixed, never a search variable:
				// there is exactly one prefix, it just extended, and
				// there is no "next candidate" to fall back to.
				res := Result{NumPrecolorings: numPrecolorings, NumFailures: numFailures, Success: true}
				e.rep.final(res)
				return res
			}

			// Post-extension reset: fall back to the last precolored
			// vertex and try its next candidate, clearing every color
			// bit for vertices beyond the precolored prefix.
			e.cur = e.inst.P - 1
			e.curMask = bitmask.BitMask(uint(e.cur))
			e.c[e.cur]--

			ext := e.inst.MaskExtendedVertices()
			for kappa := 1; kappa <= e.inst.K; kappa++ {
				e.colorMask[kappa] = e.colorMask[kappa].And(ext)
			}
			continue
		}

		e.c[e.cur] = e.initialCandidate(e.cur)
	}
}

// backtrack undoes the most recent commitment at cur and prepares the
// next candidate. Returns terminated=true when the search is over
// (exhausted the tree, or hit the failure cap).
func (e *Engine) backtrack(numFailures *int) (terminated bool) {
	e.cur--
	e.curMask = e.curMask.Shr1()

	if e.cur == e.inst.P-1 {
		*numFailures++
		e.rep.failure(*numFailures, e.c[:e.inst.P])
		if *numFailures >= 100 {
			return true
		}
	}

	if e.cur == 0 {
		return true
	}

	e.colorMask[e.c[e.cur]] = e.colorMask[e.c[e.cur]].Xor(e.curMask)
	e.c[e.cur]--
	return false
}

// valid reports whether kappa is an admissible color for vertex cur
// given the colors currently committed to lower-indexed vertices.
func (e *Engine) valid(kappa int) bool {
	inst := e.inst
	cur := e.cur

	if !e.colorMask[kappa].And(inst.AdjPredMask[cur]).IsZero() {
		return false
	}

	fours := inst.FourSets[cur]
	for i := len(fours) - 1; i >= 0; i-- {
		fs := fours[i]
		if kappa == e.c[fs.Same] && e.c[fs.Other1] == e.c[fs.Other2] {
			return false
		}
	}

	threes := inst.ThreeSets[cur]
	for i := len(threes) - 1; i >= 0; i-- {
		ts := threes[i]
		if (e.c[ts.Leaf]&int(ts.Type)) != 0 && e.c[ts.Other1] == e.c[ts.Other2] {
			return false
		}
	}

	return true
}

// initialCandidate computes the starting candidate color for vertex v
// the first time the cursor reaches it, applying the tendril, symmetry,
// and palette-relabeling symmetry-break rules in that priority order.
func (e *Engine) initialCandidate(v int) int {
	inst := e.inst

	if inst.TendrilLeaves.Test(uint(v)) {
		return 2
	}

	if inst.SymmetryVertices.Test(uint(v)) {
		u := inst.SymmetryPair[v]
		if u < inst.K && e.c[u] == u+1 {
			return inst.K
		}
		return e.c[u] - 1
	}

	if v < inst.K {
		return v + 1
	}
	return inst.K
}
