package sugiyama_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	sugiyama "github.com/layered-graph/sugiyama"
)

// TestCrossingMinimizationUncrossesBipartiteX builds the textbook two-layer
// "X" (1-4, 2-3 crossing) below a common root 5, whose non-crossing pair of
// edges to 1 and 2 keeps everything in one connected component, and checks
// the pipeline doesn't error and produces distinct x-positions for every
// vertex in each layer (i.e. ordering ran and didn't collapse anything).
func TestCrossingMinimizationUncrossesBipartiteX(t *testing.T) {
	t.Parallel()
	g := sugiyama.NewGraph()
	for i := int64(1); i <= 5; i++ {
		g.AddVertex(sugiyama.VertexID(i))
	}
	g.AddEdge(5, 1)
	g.AddEdge(5, 2)
	g.AddEdge(1, 4)
	g.AddEdge(2, 3)

	cfg := sugiyama.DefaultConfig()
	cfg.CMinimization = sugiyama.Median
	result, err := sugiyama.Layout(g, cfg, nil)
	assert.NoError(t, err)

	pos := result.Components[0].Positions
	assert.NotEqual(t, pos[1].X, pos[2].X)
	assert.NotEqual(t, pos[3].X, pos[4].X)
}

// TestLongEdgeGetsDummyChain lays out a graph whose edge 1->3 spans two
// ranks, so a dummy vertex is inserted in the middle rank, and checks the
// layout succeeds and reports only the three real vertices, not the dummy.
func TestLongEdgeGetsDummyChain(t *testing.T) {
	t.Parallel()
	g := sugiyama.NewGraph()
	g.AddVertex(1)
	g.AddVertex(2)
	g.AddVertex(3)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(1, 3) // spans two ranks, needs one dummy

	result, err := sugiyama.Layout(g, sugiyama.DefaultConfig(), nil)
	assert.NoError(t, err)
	pos := result.Components[0].Positions
	// only real vertices are reported back.
	assert.Len(t, pos, 3)
}

func TestBarycenterAndMedianBothProduceValidLayouts(t *testing.T) {
	t.Parallel()
	for _, method := range []sugiyama.CMinimization{sugiyama.Barycenter, sugiyama.Median} {
		g := sugiyama.NewGraph()
		for i := int64(1); i <= 6; i++ {
			g.AddVertex(sugiyama.VertexID(i))
		}
		g.AddEdge(1, 4)
		g.AddEdge(1, 5)
		g.AddEdge(2, 4)
		g.AddEdge(2, 6)
		g.AddEdge(3, 5)
		g.AddEdge(3, 6)

		cfg := sugiyama.DefaultConfig()
		cfg.CMinimization = method
		result, err := sugiyama.Layout(g, cfg, nil)
		assert.NoError(t, err, method.String())
		assert.Len(t, result.Components[0].Positions, 6, method.String())
	}
}
