package sugiyama_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	sugiyama "github.com/layered-graph/sugiyama"
)

func TestGraphAddVertexIdempotent(t *testing.T) {
	t.Parallel()
	g := sugiyama.NewGraph()
	v1 := g.AddVertex(1)
	v2 := g.AddVertex(1)
	assert.Same(t, v1, v2)
	assert.Equal(t, 1, g.VertexCount())
}

func TestGraphAddEdgeRejectsSelfLoop(t *testing.T) {
	t.Parallel()
	g := sugiyama.NewGraph()
	g.AddVertex(1)
	_, ok := g.AddEdge(1, 1)
	assert.False(t, ok)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestGraphRemoveVertexRemovesIncidentEdges(t *testing.T) {
	t.Parallel()
	g := sugiyama.NewGraph()
	g.AddVertex(1)
	g.AddVertex(2)
	g.AddVertex(3)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	g.RemoveVertex(2)

	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.HasVertex(2))
}

func TestGraphMultiEdgesAreKept(t *testing.T) {
	t.Parallel()
	g := sugiyama.NewGraph()
	g.AddVertex(1)
	g.AddVertex(2)
	g.AddEdge(1, 2)
	g.AddEdge(1, 2)

	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 2, g.OutDegree(1))
}

func TestDummyVertexIDsNeverCollideWithRealOnes(t *testing.T) {
	t.Parallel()
	g := sugiyama.NewGraph()
	g.AddVertex(10)
	d1 := g.NewDummyVertex()
	d2 := g.NewDummyVertex()
	assert.NotEqual(t, d1.ID, d2.ID)
	assert.Greater(t, int64(d1.ID), int64(10))
	assert.True(t, d1.IsDummy)
}
