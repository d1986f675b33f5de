package solver

import (
	"container/heap"

	"github.com/corbinmurray/Asterius/maze"
)

// entry is one push onto the frontier. Entries live in an arena and are never
// moved; the heap orders handles into it.
type entry struct {
	cell maze.Cell
	g    int // cost from start when pushed
	f    int // g + heuristic
	seq  int // insertion order
}

// frontier is the open set: an arena of entries plus a binary heap of
// arena handles, ordered by f, then larger g, then insertion order.
type frontier struct {
	arena   []entry
	handles []int
}

func (fr *frontier) Len() int { return len(fr.handles) }

func (fr *frontier) Less(i, j int) bool {
	a, b := fr.arena[fr.handles[i]], fr.arena[fr.handles[j]]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g > b.g
	}
	return a.seq < b.seq
}

func (fr *frontier) Swap(i, j int) { fr.handles[i], fr.handles[j] = fr.handles[j], fr.handles[i] }

func (fr *frontier) Push(x any) { fr.handles = append(fr.handles, x.(int)) }

func (fr *frontier) Pop() any {
	old := fr.handles
	n := len(old)
	h := old[n-1]
	fr.handles = old[:n-1]
	return h
}

// push adds a new entry for c and returns its handle.
func (fr *frontier) push(c maze.Cell, g, f int) int {
	h := len(fr.arena)
	fr.arena = append(fr.arena, entry{cell: c, g: g, f: f, seq: h})
	heap.Push(fr, h)
	return h
}

// pop removes and returns the best entry.
func (fr *frontier) pop() entry {
	return fr.arena[heap.Pop(fr).(int)]
}
