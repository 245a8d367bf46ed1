package sugiyama_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"

	sugiyama "github.com/layered-graph/sugiyama"
)

func chainGraph(n int) *sugiyama.Graph {
	g := sugiyama.NewGraph()
	for i := int64(1); i <= int64(n); i++ {
		g.AddVertex(sugiyama.VertexID(i))
	}
	for i := int64(1); i < int64(n); i++ {
		g.AddEdge(sugiyama.VertexID(i), sugiyama.VertexID(i+1))
	}
	return g
}

func TestLayoutRespectsMinimumLength(t *testing.T) {
	t.Parallel()
	for _, lt := range []sugiyama.LayeringType{sugiyama.MinimumHeight, sugiyama.Up, sugiyama.Down, sugiyama.MinimumHeightPromote} {
		g := chainGraph(4)
		cfg := sugiyama.DefaultConfig()
		cfg.MinimumLength = 2
		cfg.LayeringType = lt

		result, err := sugiyama.Layout(g, cfg, nil)
		assert.NoError(t, err, lt.String())
		assert.Len(t, result.Components, 1, lt.String())

		pos := result.Components[0].Positions
		assert.Len(t, pos, 4, lt.String())
		// every vertex's y should strictly increase along the chain, since
		// each hop must span at least MinimumLength ranks.
		assert.Less(t, pos[1].Y, pos[2].Y, lt.String())
		assert.Less(t, pos[2].Y, pos[3].Y, lt.String())
		assert.Less(t, pos[3].Y, pos[4].Y, lt.String())
	}
}

func TestDiamondRanksBalance(t *testing.T) {
	t.Parallel()
	g := sugiyama.NewGraph()
	g.AddVertex(1)
	g.AddVertex(2)
	g.AddVertex(3)
	g.AddVertex(4)
	g.AddEdge(1, 2)
	g.AddEdge(1, 3)
	g.AddEdge(2, 4)
	g.AddEdge(3, 4)

	result, err := sugiyama.Layout(g, sugiyama.DefaultConfig(), nil)
	assert.NoError(t, err)

	pos := result.Components[0].Positions
	assert.Equal(t, pos[2].Y, pos[3].Y)
	assert.Less(t, pos[1].Y, pos[2].Y)
	assert.Less(t, pos[2].Y, pos[4].Y)
}

func TestConfigValidateAggregatesAllErrors(t *testing.T) {
	t.Parallel()
	cfg := sugiyama.Config{
		MinimumLength: 0,
		VertexSpacing: -1,
		DummySize:     5,
		LayeringType:  sugiyama.LayeringType(99),
		CMinimization: sugiyama.CMinimization(99),
	}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Len(t, multierr.Errors(err), 4)

	for _, e := range multierr.Errors(err) {
		_, ok := e.(*sugiyama.ConfigError)
		assert.True(t, ok)
	}
}
