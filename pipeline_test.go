package sugiyama_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/graph"

	sugiyama "github.com/layered-graph/sugiyama"
)

// fakeDirected is a minimal hand-written graph.Directed used only to
// exercise FromDirected without depending on any particular concrete
// gonum implementation.
type fakeDirected struct {
	adj map[int64][]int64
}

type fakeNode int64

func (n fakeNode) ID() int64 { return int64(n) }

type fakeNodes struct {
	ids []int64
	i   int
}

func (it *fakeNodes) Next() bool {
	if it.i+1 >= len(it.ids) {
		it.i = len(it.ids)
		return false
	}
	it.i++
	return true
}
func (it *fakeNodes) Node() graph.Node {
	if it.i < 0 || it.i >= len(it.ids) {
		return nil
	}
	return fakeNode(it.ids[it.i])
}
func (it *fakeNodes) Len() int { return len(it.ids) - it.i - 1 }
func (it *fakeNodes) Reset()   { it.i = -1 }

func (f *fakeDirected) ids() []int64 {
	ids := make([]int64, 0, len(f.adj))
	for id := range f.adj {
		ids = append(ids, id)
	}
	return ids
}

func (f *fakeDirected) Node(id int64) graph.Node {
	if _, ok := f.adj[id]; !ok {
		return nil
	}
	return fakeNode(id)
}
func (f *fakeDirected) Nodes() graph.Nodes { return &fakeNodes{ids: f.ids(), i: -1} }
func (f *fakeDirected) From(id int64) graph.Nodes {
	return &fakeNodes{ids: f.adj[id], i: -1}
}
func (f *fakeDirected) HasEdgeBetween(xid, yid int64) bool {
	return f.HasEdgeFromTo(xid, yid) || f.HasEdgeFromTo(yid, xid)
}
func (f *fakeDirected) HasEdgeFromTo(uid, vid int64) bool {
	for _, w := range f.adj[uid] {
		if w == vid {
			return true
		}
	}
	return false
}
func (f *fakeDirected) Edge(uid, vid int64) graph.Edge { return nil }
func (f *fakeDirected) To(id int64) graph.Nodes {
	var ids []int64
	for u, ws := range f.adj {
		for _, w := range ws {
			if w == id {
				ids = append(ids, u)
			}
		}
	}
	return &fakeNodes{ids: ids, i: -1}
}

func TestLayoutRejectsInvalidConfig(t *testing.T) {
	t.Parallel()
	g := sugiyama.NewGraph()
	g.AddVertex(1)

	cfg := sugiyama.DefaultConfig()
	cfg.MinimumLength = 0

	_, err := sugiyama.Layout(g, cfg, nil)
	assert.Error(t, err)

	var cfgErr *sugiyama.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLayoutOnEmptyGraph(t *testing.T) {
	t.Parallel()
	g := sugiyama.NewGraph()
	result, err := sugiyama.Layout(g, sugiyama.DefaultConfig(), nil)
	assert.NoError(t, err)
	assert.Empty(t, result.Components)
}

func TestFromDirectedDropsSelfLoopsAndPreservesIDs(t *testing.T) {
	t.Parallel()
	src := &fakeDirected{adj: map[int64][]int64{
		1: {2},
		2: {3, 2}, // 2->2 is a self-loop, must be dropped
		3: {},
	}}

	g := sugiyama.FromDirected(src)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 3))
}

func TestLayoutIsDeterministicAcrossRuns(t *testing.T) {
	t.Parallel()
	build := func() *sugiyama.Graph {
		g := sugiyama.NewGraph()
		for i := int64(1); i <= 8; i++ {
			g.AddVertex(sugiyama.VertexID(i))
		}
		g.AddEdge(1, 2)
		g.AddEdge(1, 3)
		g.AddEdge(2, 4)
		g.AddEdge(3, 4)
		g.AddEdge(4, 5)
		g.AddEdge(4, 6)
		g.AddEdge(5, 7)
		g.AddEdge(6, 7)
		g.AddEdge(7, 8)
		return g
	}

	cfg := sugiyama.DefaultConfig()
	r1, err1 := sugiyama.Layout(build(), cfg, nil)
	r2, err2 := sugiyama.Layout(build(), cfg, nil)
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, r1.Components[0].Positions, r2.Components[0].Positions)
}
