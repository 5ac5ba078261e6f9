package swlz

import (
	"math"
	"runtime"
	"sort"
	"sync"
)

// AutomatonMatcher is the default exact matcher. It builds a suffix automaton
// over the full sequence once, tracking for every state the minimal end
// position of its substring class, then answers each position with a greedy
// walk from the root: a transition is taken only while the walked substring
// has an occurrence ending before the queried position.
//
// Construction is O(n) states and transitions; the total query cost is
// O(sum L_i). The built index is immutable, so AutomatonMatcher also
// implements ParallelMatcher.
//
// The zero value is ready to use.
type AutomatonMatcher struct{}

var (
	_ Matcher         = AutomatonMatcher{}
	_ ParallelMatcher = AutomatonMatcher{}
)

// NewAutomatonMatcher creates a suffix-automaton matcher.
func NewAutomatonMatcher() AutomatonMatcher {
	return AutomatonMatcher{}
}

// MatchLengths returns the exact longest-previous-match length for every
// position of seq.
func (m AutomatonMatcher) MatchLengths(seq []int) []int {
	return m.MatchLengthsParallel(seq, 1)
}

// MatchLengthsParallel splits the position range across up to workers
// goroutines against the shared immutable index. workers <= 1 or a short
// sequence falls back to a sequential scan.
func (m AutomatonMatcher) MatchLengthsParallel(seq []int, workers int) []int {
	lengths := make([]int, len(seq))
	if len(seq) == 0 {
		return lengths
	}

	idx := buildMatchIndex(seq)

	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(seq) {
		workers = len(seq)
	}
	if workers <= 1 {
		for i := range seq {
			lengths[i] = idx.matchLength(seq, i)
		}

		return lengths
	}

	// Disjoint ranges write to disjoint slice segments; the index is
	// read-only from here on, so no locking is needed.
	var wg sync.WaitGroup
	chunk := (len(seq) + workers - 1) / workers
	for start := 0; start < len(seq); start += chunk {
		end := start + chunk
		if end > len(seq) {
			end = len(seq)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				lengths[i] = idx.matchLength(seq, i)
			}
		}(start, end)
	}
	wg.Wait()

	return lengths
}

// samState is one suffix-automaton state. next maps a symbol index to the
// successor state; link is the suffix link; length is the longest substring
// of the state's class; minEnd is the minimal 0-based end position at which
// any substring of the class occurs.
type samState struct {
	next   map[int32]int32
	link   int32
	length int32
	minEnd int32
}

type matchIndex struct {
	states []samState
}

const noEnd = int32(math.MaxInt32)

func (x *matchIndex) newState(length, minEnd int32) int32 {
	x.states = append(x.states, samState{
		next:   make(map[int32]int32),
		link:   -1,
		length: length,
		minEnd: minEnd,
	})

	return int32(len(x.states) - 1)
}

// buildMatchIndex constructs the suffix automaton of seq and resolves minEnd
// for every state with a single pass in decreasing length order.
func buildMatchIndex(seq []int) *matchIndex {
	x := &matchIndex{states: make([]samState, 0, 2*len(seq)+2)}
	x.newState(0, noEnd) // root

	last := int32(0)
	for pos, sym := range seq {
		c := int32(sym)
		cur := x.newState(x.states[last].length+1, int32(pos))

		p := last
		for p != -1 {
			if _, ok := x.states[p].next[c]; ok {
				break
			}
			x.states[p].next[c] = cur
			p = x.states[p].link
		}

		switch {
		case p == -1:
			x.states[cur].link = 0
		default:
			q := x.states[p].next[c]
			if x.states[p].length+1 == x.states[q].length {
				x.states[cur].link = q
			} else {
				clone := x.newState(x.states[p].length+1, noEnd)
				for sym, to := range x.states[q].next {
					x.states[clone].next[sym] = to
				}
				x.states[clone].link = x.states[q].link

				for p != -1 {
					to, ok := x.states[p].next[c]
					if !ok || to != q {
						break
					}
					x.states[p].next[c] = clone
					p = x.states[p].link
				}
				x.states[q].link = clone
				x.states[cur].link = clone
			}
		}
		last = cur
	}

	// minEnd of a state is the minimum over its suffix-link subtree;
	// propagate child to parent in decreasing length order.
	order := make([]int32, len(x.states)-1)
	for i := range order {
		order[i] = int32(i + 1)
	}
	sort.Slice(order, func(a, b int) bool {
		return x.states[order[a]].length > x.states[order[b]].length
	})
	for _, v := range order {
		link := x.states[v].link
		if link >= 0 && x.states[v].minEnd < x.states[link].minEnd {
			x.states[link].minEnd = x.states[v].minEnd
		}
	}

	return x
}

// matchLength walks seq[i:] through the automaton, extending while the walked
// run still has an occurrence ending at or before i-1. Both the transition
// set and the minimal end position are monotone along the walk, so the first
// failing extension is final.
func (x *matchIndex) matchLength(seq []int, i int) int {
	st := int32(0)
	length := 0
	for j := i; j < len(seq); j++ {
		nxt, ok := x.states[st].next[int32(seq[j])]
		if !ok || int(x.states[nxt].minEnd) >= i {
			break
		}
		st = nxt
		length++
	}

	return length
}
