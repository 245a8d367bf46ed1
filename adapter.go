package sugiyama

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// FromDirected builds a Graph from any gonum.org/v1/gonum/graph.Directed,
// an alternative to direct construction via NewGraph and manual
// AddVertex/AddEdge calls. Node ids are carried through unchanged as
// VertexID. Self-loops are dropped, since a vertex can never be laid out
// above or below itself.
func FromDirected(src graph.Directed) *Graph {
	g := NewGraph()
	nodes := src.Nodes()
	var ids []int64
	for nodes.Next() {
		id := nodes.Node().ID()
		ids = append(ids, id)
		g.AddVertex(VertexID(id))
	}
	// graph.Directed does not guarantee an Edges() method (only concrete
	// types such as simple.DirectedGraph expose one); walk From(id) per
	// node instead, which every graph.Directed implementation provides.
	for _, uid := range ids {
		to := src.From(uid)
		for to.Next() {
			vid := to.Node().ID()
			if uid == vid {
				continue
			}
			g.AddEdge(VertexID(uid), VertexID(vid))
		}
	}
	return g
}

// directedView presents a Graph as a gonum.org/v1/gonum/graph.Directed,
// following each edge's current V/W exactly as stored (cycle removal
// physically swaps V/W when it reverses an edge, so no further flip is
// needed here). It is used internally to run topo.Sort as an acyclicity
// check and topo.ConnectedComponents to split the graph before layout.
type directedView struct {
	g *Graph
}

func (d directedView) Node(id int64) graph.Node {
	if !d.g.HasVertex(VertexID(id)) {
		return nil
	}
	return simple.Node(id)
}

func (d directedView) Nodes() graph.Nodes {
	ids := d.g.Vertices()
	nodes := make([]graph.Node, len(ids))
	for i, id := range ids {
		nodes[i] = simple.Node(id)
	}
	return iterNodes(nodes)
}

func (d directedView) From(id int64) graph.Nodes {
	v := VertexID(id)
	var nodes []graph.Node
	for _, eid := range d.g.OutEdges(v) {
		nodes = append(nodes, simple.Node(d.g.Edge(eid).W))
	}
	return iterNodes(nodes)
}

func (d directedView) HasEdgeBetween(xid, yid int64) bool {
	return d.HasEdgeFromTo(xid, yid) || d.HasEdgeFromTo(yid, xid)
}

func (d directedView) HasEdgeFromTo(uid, vid int64) bool {
	u, v := VertexID(uid), VertexID(vid)
	for _, eid := range d.g.OutEdges(u) {
		if d.g.Edge(eid).W == v {
			return true
		}
	}
	return false
}

func (d directedView) Edge(uid, vid int64) graph.Edge {
	if !d.HasEdgeFromTo(uid, vid) {
		return nil
	}
	return simple.Edge{F: simple.Node(uid), T: simple.Node(vid)}
}

func (d directedView) To(id int64) graph.Nodes {
	v := VertexID(id)
	var nodes []graph.Node
	for _, eid := range d.g.InEdges(v) {
		nodes = append(nodes, simple.Node(d.g.Edge(eid).V))
	}
	return iterNodes(nodes)
}

// undirectedView presents a Graph as gonum.org/v1/gonum/graph.Undirected,
// used only for topo.ConnectedComponents (component splitting is defined
// over weak connectivity, i.e. the undirected skeleton).
type undirectedView struct {
	g *Graph
}

func (u undirectedView) Node(id int64) graph.Node { return directedView(u).Node(id) }
func (u undirectedView) Nodes() graph.Nodes       { return directedView(u).Nodes() }

func (u undirectedView) From(id int64) graph.Nodes {
	v := VertexID(id)
	seen := make(map[VertexID]bool)
	var nodes []graph.Node
	for _, eid := range u.g.OutEdges(v) {
		e := u.g.Edge(eid)
		other := e.W
		if !seen[other] {
			seen[other] = true
			nodes = append(nodes, simple.Node(other))
		}
	}
	for _, eid := range u.g.InEdges(v) {
		e := u.g.Edge(eid)
		other := e.V
		if !seen[other] {
			seen[other] = true
			nodes = append(nodes, simple.Node(other))
		}
	}
	return iterNodes(nodes)
}

func (u undirectedView) HasEdgeBetween(xid, yid int64) bool {
	dv := directedView(u)
	return dv.HasEdgeFromTo(xid, yid) || dv.HasEdgeFromTo(yid, xid)
}

func (u undirectedView) Edge(uid, vid int64) graph.Edge {
	return u.EdgeBetween(uid, vid)
}

func (u undirectedView) EdgeBetween(xid, yid int64) graph.Edge {
	if !u.HasEdgeBetween(xid, yid) {
		return nil
	}
	return simple.Edge{F: simple.Node(xid), T: simple.Node(yid)}
}

// nodeIterator adapts a plain slice to graph.Nodes.
type nodeIterator struct {
	nodes []graph.Node
	i     int
}

func iterNodes(nodes []graph.Node) graph.Nodes {
	return &nodeIterator{nodes: nodes, i: -1}
}

func (c *nodeIterator) Next() bool {
	if c.i+1 >= len(c.nodes) {
		c.i = len(c.nodes)
		return false
	}
	c.i++
	return true
}

func (c *nodeIterator) Node() graph.Node {
	if c.i < 0 || c.i >= len(c.nodes) {
		return nil
	}
	return c.nodes[c.i]
}

func (c *nodeIterator) Len() int { return len(c.nodes) - c.i - 1 }
func (c *nodeIterator) Reset()   { c.i = -1 }

// connectedComponents splits g into its weakly-connected components, each
// returned as a new Graph with vertices/edges copied and ranking/ordering
// decoration reset, so callers can run the full layout pipeline
// independently per component (two components never constrain each
// other's ranks, order, or coordinates).
func connectedComponents(g *Graph) []*Graph {
	groups := topo.ConnectedComponents(undirectedAdapter{g})
	out := make([]*Graph, 0, len(groups))
	for _, group := range groups {
		sub := NewGraph()
		members := make(map[VertexID]bool, len(group))
		for _, n := range group {
			id := VertexID(n.ID())
			members[id] = true
			v := sub.AddVertex(id)
			*v = *g.Vertex(id)
			v.Rank, v.Pos, v.Low, v.Lim, v.HasParent = 0, 0, 0, 0, false
		}
		for _, eid := range g.Edges() {
			e := g.Edge(eid)
			if members[e.V] && members[e.W] {
				sub.AddEdge(e.V, e.W)
			}
		}
		out = append(out, sub)
	}
	return out
}

// checkAcyclic verifies g (under current, possibly-reversed, edge
// orientation) is a DAG, returning a *LogicInvariant if not. Called once
// immediately after P0 cycle removal.
func checkAcyclic(g *Graph) error {
	if _, err := topo.Sort(directedAdapter{g}); err != nil {
		return newLogicInvariant("P0", "graph must be acyclic after cycle removal", err)
	}
	return nil
}

type directedAdapter = directedView
type undirectedAdapter = undirectedView
