package sugiyama

// makeAcyclic removes cycles from g by reversing a small set of edges,
// using the greedy sink/source heuristic (Eades, Lin & Smyth 1993): repeatedly
// strip sinks to the right end of an ordering, then sources to the left end,
// then from what remains pick the vertex with maximum (out-degree -
// in-degree) and place it at the left; edges that end up pointing from a
// later to an earlier vertex in the resulting ordering are reversed. This
// keeps the feedback-arc set small without the cost of an exact minimum cut.
//
// Reversed edges have their Reversed flag set; OrigV/OrigW keep the edge's
// original direction for restoreDirections.
func makeAcyclic(g *Graph, log Logger) {
	order := greedyOrdering(g)

	pos := make(map[VertexID]int, len(order))
	for i, id := range order {
		pos[id] = i
	}

	for _, eid := range g.Edges() {
		e := g.Edge(eid)
		if pos[e.V] > pos[e.W] {
			e.V, e.W = e.W, e.V
			e.Reversed = !e.Reversed
			log.Trace("reversed edge to break cycle")
		}
	}

	fixAdjacency(g)
}

// fixAdjacency rebuilds g's out/in adjacency from the edges' current V/W,
// after makeAcyclic mutates them directly.
func fixAdjacency(g *Graph) {
	for id := range g.out {
		g.out[id] = g.out[id][:0]
	}
	for id := range g.in {
		g.in[id] = g.in[id][:0]
	}
	for _, eid := range g.Edges() {
		e := g.Edge(eid)
		g.out[e.V] = append(g.out[e.V], eid)
		g.in[e.W] = append(g.in[e.W], eid)
	}
}

// greedyOrdering computes the left-to-right vertex ordering used to decide
// which edges to reverse.
func greedyOrdering(g *Graph) []VertexID {
	outDeg := make(map[VertexID]int)
	inDeg := make(map[VertexID]int)
	remaining := make(map[VertexID]bool)
	for _, id := range g.Vertices() {
		remaining[id] = true
		outDeg[id] = g.OutDegree(id)
		inDeg[id] = g.InDegree(id)
	}
	// adjacency restricted to vertices still remaining, recomputed lazily.
	neighborsOut := func(v VertexID) []VertexID {
		var out []VertexID
		for _, eid := range g.OutEdges(v) {
			w := g.Edge(eid).W
			if remaining[w] {
				out = append(out, w)
			}
		}
		return out
	}
	neighborsIn := func(v VertexID) []VertexID {
		var in []VertexID
		for _, eid := range g.InEdges(v) {
			u := g.Edge(eid).V
			if remaining[u] {
				in = append(in, u)
			}
		}
		return in
	}

	var left, right []VertexID

	remove := func(v VertexID) {
		for _, w := range neighborsOut(v) {
			inDeg[w]--
		}
		for _, u := range neighborsIn(v) {
			outDeg[u]--
		}
		delete(remaining, v)
	}

	for len(remaining) > 0 {
		progressed := true
		for progressed {
			progressed = false
			for _, id := range sortedRemaining(remaining) {
				if outDeg[id] == 0 {
					right = append([]VertexID{id}, right...)
					remove(id)
					progressed = true
				}
			}
			for _, id := range sortedRemaining(remaining) {
				if inDeg[id] == 0 {
					left = append(left, id)
					remove(id)
					progressed = true
				}
			}
		}
		if len(remaining) == 0 {
			break
		}
		best := bestByDegreeDelta(remaining, outDeg, inDeg)
		left = append(left, best)
		remove(best)
	}

	return append(left, right...)
}

func sortedRemaining(remaining map[VertexID]bool) []VertexID {
	out := make([]VertexID, 0, len(remaining))
	for id := range remaining {
		out = append(out, id)
	}
	sortVertexIDs(out)
	return out
}

func sortVertexIDs(ids []VertexID) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}

// bestByDegreeDelta picks the remaining vertex maximizing out-degree minus
// in-degree, breaking ties by lowest id for determinism.
func bestByDegreeDelta(remaining map[VertexID]bool, outDeg, inDeg map[VertexID]int) VertexID {
	ids := sortedRemaining(remaining)
	best := ids[0]
	bestDelta := outDeg[best] - inDeg[best]
	for _, id := range ids[1:] {
		delta := outDeg[id] - inDeg[id]
		if delta > bestDelta {
			best, bestDelta = id, delta
		}
	}
	return best
}

// restoreDirections flips every Reversed edge back to its original
// orientation, leaving the decoration computed while reversed (weights,
// tree-edge flags etc.) untouched — it is a pure presentation fix-up run
// after P3. Each such edge gets OrigV/OrigW as its endpoints; for a piece of
// a dummy chain these are the original long edge's endpoints, not the
// piece's own endpoints swapped.
func restoreDirections(g *Graph) {
	for _, eid := range g.Edges() {
		e := g.Edge(eid)
		if e.Reversed {
			e.V, e.W = e.OrigV, e.OrigW
			e.Reversed = false
		}
	}
	fixAdjacency(g)
}
