package sugiyama

// assignRanks sets every vertex's Rank according to cfg.LayeringType, then
// verifies the minlen invariant holds on every edge.
func assignRanks(g *Graph, cfg Config, log Logger) error {
	switch cfg.LayeringType {
	case Up:
		runNetworkSimplex(g, true, log)
	case Down:
		runNetworkSimplex(g, false, log)
	case MinimumHeightPromote:
		longestPathRanks(g)
		promoteRanks(g)
	default: // MinimumHeight
		longestPathRanks(g)
	}

	for _, eid := range g.Edges() {
		e := g.Edge(eid)
		if slack(g, e) < 0 {
			return newLogicInvariant("P1", "edge length below minlen after ranking", e.ID)
		}
	}
	return nil
}

// promoteRanks runs a local tightening pass after longestPathRanks: visiting
// vertices in reverse topological order (sinks toward sources), each vertex
// is pushed as far down (to as high a rank) as its out-edges allow, shrinking
// unnecessary slack without the cost of full network simplex.
func promoteRanks(g *Graph) {
	order, ok := topoOrder(g)
	if !ok {
		return
	}
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		if g.OutDegree(v) == 0 {
			continue // sinks have nothing to tighten against
		}
		minAllowed := -1
		for _, eid := range g.OutEdges(v) {
			e := g.Edge(eid)
			allowed := g.Vertex(e.W).Rank - e.Minlen
			if minAllowed == -1 || allowed < minAllowed {
				minAllowed = allowed
			}
		}
		if minAllowed > g.Vertex(v).Rank {
			g.Vertex(v).Rank = minAllowed
		}
	}
}
