package graph

import (
	"math/rand"
	"testing"

	"github.com/corbinmurray/Asterius/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	m, err := maze.Carve(2, 3, []maze.Passage{
		{From: maze.Cell{X: 0, Y: 0}, Direction: maze.East},
		{From: maze.Cell{X: 1, Y: 0}, Direction: maze.East},
		{From: maze.Cell{X: 1, Y: 0}, Direction: maze.South},
	})
	require.NoError(t, err)

	g := Build(m)
	assert.Equal(t, 6, g.Len())
	assert.Equal(t, 3, g.Edges())

	n, ok := g.Neighbors(maze.Cell{X: 1, Y: 0})
	require.True(t, ok)
	// South before East before West.
	assert.Equal(t, []maze.Cell{{X: 1, Y: 1}, {X: 2, Y: 0}, {X: 0, Y: 0}}, n)

	n, ok = g.Neighbors(maze.Cell{X: 2, Y: 1})
	require.True(t, ok)
	assert.Empty(t, n)

	_, ok = g.Neighbors(maze.Cell{X: 3, Y: 0})
	assert.False(t, ok)
}

func TestBuildMatchesMaze(t *testing.T) {
	m, err := maze.Generate(8, 11, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	g := Build(m)

	assert.Equal(t, m.Len(), g.Len())
	assert.Equal(t, m.Passages(), g.Edges())
	for _, c := range m.Cells() {
		n, ok := g.Neighbors(c)
		require.True(t, ok)
		assert.Len(t, n, m.Open(c).Len())
		for _, other := range n {
			back, _ := g.Neighbors(other)
			assert.Contains(t, back, c, "adjacency is undirected")
		}
	}
}

func TestBuildIdempotent(t *testing.T) {
	m, err := maze.Generate(10, 10, rand.New(rand.NewSource(9)))
	require.NoError(t, err)

	a, b := Build(m), Build(m)
	assert.Equal(t, a, b)
}

func TestNeighborsReturnsCopy(t *testing.T) {
	m, err := maze.Generate(3, 3, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	g := Build(m)

	n, _ := g.Neighbors(maze.Cell{})
	require.NotEmpty(t, n)
	n[0] = maze.Cell{X: 99, Y: 99}

	again, _ := g.Neighbors(maze.Cell{})
	assert.NotContains(t, again, maze.Cell{X: 99, Y: 99})
}

func TestDistances(t *testing.T) {
	m, err := maze.Carve(1, 4, []maze.Passage{
		{From: maze.Cell{X: 0, Y: 0}, Direction: maze.East},
		{From: maze.Cell{X: 1, Y: 0}, Direction: maze.East},
	})
	require.NoError(t, err)
	g := Build(m)

	assert.Equal(t, map[maze.Cell]int{{X: 0}: 0, {X: 1}: 1, {X: 2}: 2}, g.Distances(maze.Cell{}))
	assert.Nil(t, g.Distances(maze.Cell{X: -1}))
}
