package sugiyama_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	sugiyama "github.com/layered-graph/sugiyama"
)

func buildCycle(t *testing.T) *sugiyama.Graph {
	t.Helper()
	g := sugiyama.NewGraph()
	for i := int64(1); i <= 3; i++ {
		g.AddVertex(sugiyama.VertexID(i))
	}
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 1)
	return g
}

func TestMakeAcyclicBreaksSimpleCycle(t *testing.T) {
	t.Parallel()
	g := buildCycle(t)

	cfg := sugiyama.DefaultConfig()
	_, err := sugiyama.Layout(g, cfg, nil)
	assert.NoError(t, err)
}

func TestLayoutOnAcyclicGraphNeedsNoReversal(t *testing.T) {
	t.Parallel()
	g := sugiyama.NewGraph()
	g.AddVertex(1)
	g.AddVertex(2)
	g.AddVertex(3)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	result, err := sugiyama.Layout(g, sugiyama.DefaultConfig(), nil)
	assert.NoError(t, err)
	assert.Len(t, result.Components, 1)
	assert.Len(t, result.Components[0].Positions, 3)
}
