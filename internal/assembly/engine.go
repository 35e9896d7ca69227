// Engine is the AssemblyEngine main loop: seed, iterate (parallel
// map-reduce expansion, barrier, merge), stop on an empty frontier or a
// budget. Grounded on original_source/src/assembly/run.rs's Run::assemble
// and Run::explore_state.
// coding=utf-8
// @Project : moasm
// @File    : engine.go
package assembly

import (
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/cx-luo/moasm/internal/attach"
	"github.com/cx-luo/moasm/internal/logging"
	"github.com/cx-luo/moasm/internal/molgraph"
	"github.com/cx-luo/moasm/internal/subgraph"
)

// RunStatistics is the explicit statistics sink returned alongside a
// result set — an accumulator local to one Assemble call, never a
// process-wide singleton (spec's "global statistics" redesign flag).
type RunStatistics struct {
	IterationsNeeded  int
	TotalActiveGraphs int
	MaxActiveGraphs   int
}

// Engine holds the budgets and the target descriptor an assemble run
// explores toward.
type Engine struct {
	Target      *subgraph.Descriptor
	MaxFrontier int // <= 0 means unlimited
	Deadline    *time.Time
	Logger      logging.Logger
}

// NewEngine builds an Engine with a no-op logger; set Logger to override.
func NewEngine(target *subgraph.Descriptor) *Engine {
	return &Engine{Target: target, Logger: logging.NoOp{}}
}

// Assemble runs the breadth-first exploration starting from seed (or, if
// seed is nil, from the target descriptor's own SelectStartingGraph). It
// returns the set of visited states whose descriptor equals the target,
// run statistics, and a bool that is false when a budget fired ("gave
// up") rather than when the frontier genuinely emptied.
func (e *Engine) Assemble(seed *molgraph.Graph) ([]*molgraph.Graph, RunStatistics, bool) {
	logger := e.Logger
	if logger == nil {
		logger = logging.NoOp{}
	}

	if seed == nil {
		g, ok := e.Target.SelectStartingGraph()
		if !ok {
			return nil, RunStatistics{}, true
		}
		seed = g
	}
	seed = seed.Clone()
	seed.FreezeNonexistingEdges()

	active := newStateSet()
	active.Add(NewState(seed))
	visited := newStateSet()

	var stats RunStatistics

	for {
		if e.Deadline != nil && time.Now().After(*e.Deadline) {
			logger.Warn("assembly aborted: deadline exceeded")
			return nil, RunStatistics{}, false
		}

		successors := e.expandAll(active, logger)
		if e.Deadline != nil && time.Now().After(*e.Deadline) {
			logger.Warn("assembly aborted: deadline exceeded during expansion")
			return nil, RunStatistics{}, false
		}

		if e.MaxFrontier > 0 && len(successors) >= e.MaxFrontier {
			logger.Warn("assembly aborted: frontier budget exceeded", logging.Int("frontier_size", len(successors)))
			return nil, RunStatistics{}, false
		}

		for _, s := range active.List() {
			visited.Add(s)
		}

		newActive := newStateSet()
		for _, s := range successors {
			if !visited.Contains(s) {
				newActive.Add(s)
			}
		}

		stats.IterationsNeeded++
		stats.TotalActiveGraphs += active.Len()
		if active.Len() > stats.MaxActiveGraphs {
			stats.MaxActiveGraphs = active.Len()
		}

		logger.Debug("iteration complete",
			logging.Int("iteration", stats.IterationsNeeded),
			logging.Int("active", active.Len()),
			logging.Int("successors", len(successors)),
		)

		if newActive.Len() == 0 {
			break
		}
		active = newActive
	}

	var out []*molgraph.Graph
	for _, s := range visited.List() {
		if s.IsSuccessful(e.Target) {
			out = append(out, s.G)
		}
	}
	return out, stats, true
}

// expandAll computes the union of expand(s) for every active state, each
// task producing its own local successor slice, merged only at this
// barrier — the single parallel map-reduce step per iteration.
func (e *Engine) expandAll(active *stateSet, logger logging.Logger) []*State {
	states := active.List()
	p := pool.NewWithResults[[]*State]()
	for _, s := range states {
		s := s
		p.Go(func() []*State {
			if e.Deadline != nil && time.Now().After(*e.Deadline) {
				return nil
			}
			return e.expand(s)
		})
	}
	results := p.Wait()

	merged := newStateSet()
	for _, local := range results {
		for _, s := range local {
			merged.Add(s)
		}
	}
	return merged.List()
}

// expand yields every successor state reachable from s by attaching one
// under-quota fragment in every admissible way.
func (e *Engine) expand(s *State) []*State {
	anchor, ok := s.G.FirstUnsaturatedVertex()
	if !ok {
		return nil
	}

	var out []*State
	for _, frag := range e.Target.AttachableSubgraphs() {
		if s.D.AmountOf(frag) >= e.Target.AmountOf(frag) {
			continue
		}
		for _, a := range attach.Enumerate(s.G, frag, anchor) {
			g2, ok := attach.Apply(s.G, frag, a)
			if !ok {
				continue
			}
			d2 := subgraph.Build(g2)
			if !d2.IsSubsetOf(e.Target) {
				continue
			}
			out = append(out, &State{G: g2, D: d2, H: g2.Hash() ^ d2.Hash()})
		}
	}
	return out
}
