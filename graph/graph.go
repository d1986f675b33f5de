// Package graph turns a maze into an adjacency structure for traversal.
package graph

import (
	"slices"

	"github.com/corbinmurray/Asterius/maze"
	"github.com/zyedidia/generic/mapset"
)

// Graph holds the cells of a maze mapped to the cells directly reachable
// from them. It is read-only after Build.
type Graph struct {
	// adj maps cell -> neighbors, in North, South, East, West order
	adj map[maze.Cell][]maze.Cell
}

// Build derives the graph of m. Each cell's neighbors are exactly the cells
// behind its open passages.
func Build(m *maze.Maze) *Graph {
	g := &Graph{adj: make(map[maze.Cell][]maze.Cell, m.Len())}
	for _, c := range m.Cells() {
		open := m.Open(c)
		neighbors := make([]maze.Cell, 0, open.Len())
		for _, d := range open.List() {
			neighbors = append(neighbors, c.Neighbor(d))
		}
		g.adj[c] = neighbors
	}
	return g
}

// Has reports whether c is a node of the graph.
func (g *Graph) Has(c maze.Cell) bool {
	_, ok := g.adj[c]
	return ok
}

// Neighbors returns a copy of the cells adjacent to c.
// The second result is false if c is not in the graph.
func (g *Graph) Neighbors(c maze.Cell) ([]maze.Cell, bool) {
	n, ok := g.adj[c]
	if !ok {
		return nil, false
	}
	return slices.Clone(n), true
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.adj)
}

// Edges returns the number of undirected edges.
func (g *Graph) Edges() int {
	n := 0
	for _, neighbors := range g.adj {
		n += len(neighbors)
	}
	return n / 2
}

// neighbors returns c's adjacency without copying, for use by traversals in
// this package.
func (g *Graph) neighbors(c maze.Cell) []maze.Cell {
	return g.adj[c]
}

// Distances returns the edge count from origin to every reachable node,
// found by breadth-first search. Returns nil if origin is not in the graph.
func (g *Graph) Distances(origin maze.Cell) map[maze.Cell]int {
	if !g.Has(origin) {
		return nil
	}
	result := map[maze.Cell]int{origin: 0}
	visited := mapset.Of(origin)

	queue := []maze.Cell{origin}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		dist := result[current]
		for _, neighbor := range g.neighbors(current) {
			if !visited.Has(neighbor) {
				visited.Put(neighbor)
				result[neighbor] = dist + 1
				queue = append(queue, neighbor)
			}
		}
	}
	return result
}
