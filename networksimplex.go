package sugiyama

import "sort"

// simplexTree is the spanning tree network simplex pivots over: a set of
// tree-edge ids plus a per-vertex incident-edge index, kept separate from
// the graph's own adjacency so pivoting doesn't disturb it.
type simplexTree struct {
	g        *Graph
	treeEdge map[EdgeID]bool
	incident map[VertexID][]EdgeID // tree edges only, both directions
}

func newSimplexTree(g *Graph) *simplexTree {
	return &simplexTree{
		g:        g,
		treeEdge: make(map[EdgeID]bool),
		incident: make(map[VertexID][]EdgeID),
	}
}

func (t *simplexTree) addTreeEdge(eid EdgeID) {
	if t.treeEdge[eid] {
		return
	}
	t.treeEdge[eid] = true
	e := t.g.Edge(eid)
	e.IsTreeEdge = true
	t.incident[e.V] = append(t.incident[e.V], eid)
	t.incident[e.W] = append(t.incident[e.W], eid)
}

func (t *simplexTree) removeTreeEdge(eid EdgeID) {
	if !t.treeEdge[eid] {
		return
	}
	delete(t.treeEdge, eid)
	e := t.g.Edge(eid)
	e.IsTreeEdge = false
	t.incident[e.V] = removeID(t.incident[e.V], eid)
	t.incident[e.W] = removeID(t.incident[e.W], eid)
}

func (t *simplexTree) other(eid EdgeID, v VertexID) VertexID {
	e := t.g.Edge(eid)
	if e.V == v {
		return e.W
	}
	return e.V
}

// slack is how much an edge's length exceeds its minlen, using current ranks.
func slack(g *Graph, e *Edge) int {
	return g.Vertex(e.W).Rank - g.Vertex(e.V).Rank - e.Minlen
}

// runNetworkSimplex assigns g.Vertex(*).Rank to minimize sum(weight*length)
// subject to length >= minlen on every edge, via the Gansner et al. 1993
// network simplex method. sourcesFirst selects which longest-path extreme
// the initial tight tree is grown from: true starts from the minimum rank
// (sources first), false from the maximum (sinks first) — the two produce
// different, equally feasible optimal rankings, differing in how extra
// slack is distributed above versus below densely-connected vertices.
func runNetworkSimplex(g *Graph, sourcesFirst bool, log Logger) {
	if g.VertexCount() == 0 {
		return
	}
	longestPathRanks(g)
	t := feasibleTree(g, sourcesFirst)
	initCutValues(t)

	const maxIter = 10000
	for i := 0; i < maxIter; i++ {
		leave, ok := leaveEdge(t)
		if !ok {
			break
		}
		enter, ok := enterEdge(t, leave)
		if !ok {
			// no replacement exists; leave as-is (degenerate/disconnected case).
			break
		}
		exchange(t, leave, enter, log)
	}
	normalizeRanks(g)
}

// longestPathRanks assigns an initial feasible (possibly non-tight)
// ranking: every vertex's rank is the longest weighted path from a source.
func longestPathRanks(g *Graph) {
	order, ok := topoOrder(g)
	if !ok {
		// cyclic input should never reach here (P0 already ran); fail soft
		// by ranking in id order.
		order = g.Vertices()
	}
	for _, id := range order {
		g.Vertex(id).Rank = 0
	}
	for _, id := range order {
		for _, eid := range g.OutEdges(id) {
			e := g.Edge(eid)
			want := g.Vertex(e.V).Rank + e.Minlen
			if want > g.Vertex(e.W).Rank {
				g.Vertex(e.W).Rank = want
			}
		}
	}
}

// topoOrder returns a topological order of g, or ok=false if g has a cycle
// (ties broken by ascending id, for determinism).
func topoOrder(g *Graph) ([]VertexID, bool) {
	inDeg := make(map[VertexID]int)
	for _, id := range g.Vertices() {
		inDeg[id] = g.InDegree(id)
	}
	var ready []VertexID
	for _, id := range g.Vertices() {
		if inDeg[id] == 0 {
			ready = append(ready, id)
		}
	}
	sortVertexIDs(ready)
	var order []VertexID
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)
		var freed []VertexID
		for _, eid := range g.OutEdges(id) {
			w := g.Edge(eid).W
			inDeg[w]--
			if inDeg[w] == 0 {
				freed = append(freed, w)
			}
		}
		sortVertexIDs(freed)
		ready = append(ready, freed...)
		sortVertexIDs(ready)
	}
	return order, len(order) == g.VertexCount()
}

// feasibleTree grows a maximal tight spanning tree from a starting vertex,
// relaxing ranks of the rest of the graph as needed (Gansner et al., Fig.
// 2-3), and returns it. sourcesFirst picks the starting vertex: the
// minimum-rank vertex if true, maximum-rank if false.
func feasibleTree(g *Graph, sourcesFirst bool) *simplexTree {
	t := newSimplexTree(g)
	if g.VertexCount() == 0 {
		return t
	}

	ids := g.Vertices()
	start := ids[0]
	for _, id := range ids {
		if sourcesFirst && g.Vertex(id).Rank < g.Vertex(start).Rank {
			start = id
		}
		if !sourcesFirst && g.Vertex(id).Rank > g.Vertex(start).Rank {
			start = id
		}
	}

	inTree := map[VertexID]bool{start: true}
	for len(inTree) < g.VertexCount() {
		// find the minimum-slack edge with exactly one endpoint in the tree.
		var minEdge EdgeID
		minSlack := -1
		found := false
		for _, id := range sortedKeys(inTree) {
			for _, eid := range append(g.OutEdges(id), g.InEdges(id)...) {
				e := g.Edge(eid)
				if inTree[e.V] == inTree[e.W] {
					continue // both or neither endpoint in the tree
				}
				s := slack(g, e)
				if !found || s < minSlack {
					found = true
					minSlack = s
					minEdge = eid
				}
			}
		}
		if !found {
			// graph is disconnected; start a new component arbitrarily.
			for _, id := range ids {
				if !inTree[id] {
					inTree[id] = true
					break
				}
			}
			continue
		}

		e := g.Edge(minEdge)
		// Make the edge tight by moving whichever endpoint is not yet in
		// the tree: if it's the head, its rank drops by the slack; if
		// it's the tail, its rank rises by the slack.
		if inTree[e.V] {
			g.Vertex(e.W).Rank -= minSlack
			inTree[e.W] = true
		} else {
			g.Vertex(e.V).Rank += minSlack
			inTree[e.V] = true
		}
		t.addTreeEdge(minEdge)
	}
	return t
}

func sortedKeys(m map[VertexID]bool) []VertexID {
	out := make([]VertexID, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sortVertexIDs(out)
	return out
}

// initCutValues computes the cut value of every tree edge from scratch via
// postorder DFS, also assigning Low/Lim intervals used later by enterEdge
// to identify which component a non-tree edge crosses into.
func initCutValues(t *simplexTree) {
	g := t.g
	for _, id := range g.Vertices() {
		g.Vertex(id).Low, g.Vertex(id).Lim, g.Vertex(id).HasParent = 0, 0, false
	}
	if g.VertexCount() == 0 {
		return
	}
	root := g.Vertices()[0]
	lim := 1
	var dfs func(v VertexID, parent VertexID, hasParent bool)
	dfs = func(v VertexID, parent VertexID, hasParent bool) {
		low := lim
		vert := g.Vertex(v)
		if hasParent {
			vert.Parent, vert.HasParent = parent, true
		}
		children := sortedCopy(t.incident[v])
		for _, eid := range children {
			w := t.other(eid, v)
			if hasParent && w == parent {
				continue
			}
			dfs(w, v, true)
		}
		vert.Low = low
		vert.Lim = lim
		lim++
	}
	dfs(root, 0, false)

	for eid := range t.treeEdge {
		calcCutValue(t, eid)
	}
}

// calcCutValue computes the cut value of tree edge eid: the net weight of
// all edges (tree or not) crossing from the tail-side component to the
// head-side component, minus those crossing the other way.
func calcCutValue(t *simplexTree, eid EdgeID) {
	g := t.g
	e := g.Edge(eid)
	tailInHead := isDescendant(g, e.V, e.W) // true if V is below W (W is the root-ward endpoint)

	var headSideDesc VertexID
	if tailInHead {
		headSideDesc = e.V
	} else {
		headSideDesc = e.W
	}

	cut := 0
	for _, oeid := range g.Edges() {
		oe := g.Edge(oeid)
		vIn := isWithin(g, oe.V, headSideDesc)
		wIn := isWithin(g, oe.W, headSideDesc)
		if vIn == wIn {
			continue
		}
		sameDir := vIn == tailInHead
		if sameDir {
			cut += oe.Weight
		} else {
			cut -= oe.Weight
		}
	}
	e.CutValue = cut
	e.HasCutValue = true
}

// isDescendant reports whether a is in the subtree rooted below the edge
// connecting a and b (i.e. a's Lim/Low interval is nested inside b's).
func isDescendant(g *Graph, a, b VertexID) bool {
	va, vb := g.Vertex(a), g.Vertex(b)
	return va.Low >= vb.Low && va.Lim <= vb.Lim
}

// isWithin reports whether v is within the subtree rooted at root (root
// itself counts).
func isWithin(g *Graph, v, root VertexID) bool {
	vv, vr := g.Vertex(v), g.Vertex(root)
	return vv.Low >= vr.Low && vv.Lim <= vr.Lim
}

// leaveEdge finds a tree edge with negative cut value, lowest id first for
// determinism.
func leaveEdge(t *simplexTree) (EdgeID, bool) {
	ids := make([]EdgeID, 0, len(t.treeEdge))
	for eid := range t.treeEdge {
		ids = append(ids, eid)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, eid := range ids {
		if t.g.Edge(eid).CutValue < 0 {
			return eid, true
		}
	}
	return 0, false
}

// enterEdge finds the minimum-slack non-tree edge that reconnects the two
// components leaveEdge's removal splits the tree into, directed opposite to
// the leaving edge. Ties broken by lowest EdgeID.
func enterEdge(t *simplexTree, leave EdgeID) (EdgeID, bool) {
	g := t.g
	le := g.Edge(leave)
	tailInHead := isDescendant(g, le.V, le.W)
	var headSideDesc VertexID
	if tailInHead {
		headSideDesc = le.V
	} else {
		headSideDesc = le.W
	}

	var best EdgeID
	bestSlack := -1
	found := false
	for _, eid := range g.Edges() {
		if t.treeEdge[eid] {
			continue
		}
		e := g.Edge(eid)
		vIn := isWithin(g, e.V, headSideDesc)
		wIn := isWithin(g, e.W, headSideDesc)
		if vIn == wIn {
			continue
		}
		// must run in the opposite direction across the cut from the leaving edge.
		sameDirAsLeave := vIn == tailInHead
		if sameDirAsLeave {
			continue
		}
		s := slack(g, e)
		if !found || s < bestSlack {
			found = true
			bestSlack = s
			best = eid
		}
	}
	return best, found
}

// exchange removes leave from the tree, adds enter, and shifts the ranks of
// the component that moved so enter becomes tight. Cut values and Low/Lim
// are then re-derived by a fresh postorder DFS over the whole tree rather
// than patched incrementally along just the path between leave and enter —
// simpler to get right, at the cost of O(V·E) work per pivot (each tree
// edge's cut value rescans every graph edge) and of revisiting vertices
// outside the changed path unnecessarily.
func exchange(t *simplexTree, leave, enter EdgeID, log Logger) {
	g := t.g
	delta := slack(g, g.Edge(enter))
	le := g.Edge(leave)
	tailInHead := isDescendant(g, le.V, le.W)
	var headSideDesc VertexID
	if tailInHead {
		headSideDesc = le.V
	} else {
		headSideDesc = le.W
	}
	if delta != 0 {
		for _, id := range g.Vertices() {
			if isWithin(g, id, headSideDesc) {
				g.Vertex(id).Rank -= signFor(tailInHead) * delta
			}
		}
	}

	t.removeTreeEdge(leave)
	t.addTreeEdge(enter)
	initCutValues(t) // re-derive Low/Lim and all cut values for the new tree
	log.Trace("network simplex pivot")
}

func signFor(tailInHead bool) int {
	if tailInHead {
		return 1
	}
	return -1
}

// normalizeRanks shifts every rank down so the minimum is 0.
func normalizeRanks(g *Graph) {
	if g.VertexCount() == 0 {
		return
	}
	min := g.Vertex(g.Vertices()[0]).Rank
	for _, id := range g.Vertices() {
		if r := g.Vertex(id).Rank; r < min {
			min = r
		}
	}
	if min == 0 {
		return
	}
	for _, id := range g.Vertices() {
		g.Vertex(id).Rank -= min
	}
}
