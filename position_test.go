package sugiyama_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	sugiyama "github.com/layered-graph/sugiyama"
)

func TestSingleVertexComponentIsCenteredOnItsOwnSize(t *testing.T) {
	t.Parallel()
	g := sugiyama.NewGraph()
	g.AddVertex(1)

	result, err := sugiyama.Layout(g, sugiyama.DefaultConfig(), nil)
	assert.NoError(t, err)
	assert.Len(t, result.Components, 1)
	assert.Len(t, result.Components[0].Positions, 1)
	// a new vertex is 1x1, so its centre sits at half its size.
	assert.Equal(t, sugiyama.Point{X: 0.5, Y: 0.5}, result.Components[0].Positions[1])
}

func TestTwoDisjointComponentsArePackedSideBySide(t *testing.T) {
	t.Parallel()
	g := sugiyama.NewGraph()
	g.AddVertex(1)
	g.AddVertex(2)
	g.AddEdge(1, 2)
	g.AddVertex(3)
	g.AddVertex(4)
	g.AddEdge(3, 4)

	result, err := sugiyama.Layout(g, sugiyama.DefaultConfig(), nil)
	assert.NoError(t, err)
	assert.Len(t, result.Components, 2)

	firstWidth := result.Components[0].Width
	// Every vertex in the second component should sit at or beyond the
	// right edge of the first component's bounding box, confirming packing ran.
	for _, p := range result.Components[1].Positions {
		assert.GreaterOrEqual(t, p.X, firstWidth)
	}
}

func TestWideLayerCoordinatesAreOrderedLeftToRight(t *testing.T) {
	t.Parallel()
	g := sugiyama.NewGraph()
	g.AddVertex(1) // root
	for i := int64(2); i <= 5; i++ {
		g.AddVertex(sugiyama.VertexID(i))
		g.AddEdge(1, sugiyama.VertexID(i))
	}

	result, err := sugiyama.Layout(g, sugiyama.DefaultConfig(), nil)
	assert.NoError(t, err)
	pos := result.Components[0].Positions

	seen := make(map[float64]bool)
	for i := int64(2); i <= 5; i++ {
		seen[pos[sugiyama.VertexID(i)].X] = true
	}
	assert.Len(t, seen, 4, "siblings should not collapse onto the same x")
}
