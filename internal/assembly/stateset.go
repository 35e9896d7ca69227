// stateSet is an isomorphism-aware set of States, bucketed by precomputed
// hash then confirmed by Equal — the same bucket-then-verify shape package
// subgraph's ClassSet uses, applied here to the active/visited frontiers
// instead of fragment classes. Using the isomorphism-aware hash here is
// what prevents duplicate states caused by non-canonical node orderings,
// per spec's concurrency-model note.
// coding=utf-8
// @Project : moasm
// @File    : stateset.go
package assembly

type stateSet struct {
	buckets map[uint64][]*State
	size    int
}

func newStateSet() *stateSet {
	return &stateSet{buckets: make(map[uint64][]*State)}
}

// Add inserts s if no equal state is already present. It reports whether s
// was newly inserted.
func (ss *stateSet) Add(s *State) bool {
	if ss.Contains(s) {
		return false
	}
	ss.buckets[s.H] = append(ss.buckets[s.H], s)
	ss.size++
	return true
}

func (ss *stateSet) Contains(s *State) bool {
	for _, existing := range ss.buckets[s.H] {
		if existing.Equal(s) {
			return true
		}
	}
	return false
}

func (ss *stateSet) Len() int {
	return ss.size
}

func (ss *stateSet) List() []*State {
	out := make([]*State, 0, ss.size)
	for _, bucket := range ss.buckets {
		out = append(out, bucket...)
	}
	return out
}
