package sugiyama

import "sort"

// layering groups vertex ids by rank, index 0 is the lowest rank present.
type layering [][]VertexID

// buildLayering groups g's vertices by Rank, each layer sorted by id for a
// deterministic starting order.
func buildLayering(g *Graph) layering {
	maxRank := -1
	for _, id := range g.Vertices() {
		if r := g.Vertex(id).Rank; r > maxRank {
			maxRank = r
		}
	}
	if maxRank < 0 {
		return nil
	}
	lay := make(layering, maxRank+1)
	for _, id := range g.Vertices() {
		r := g.Vertex(id).Rank
		lay[r] = append(lay[r], id)
	}
	for _, layer := range lay {
		sortVertexIDs(layer)
	}
	return lay
}

// commitPositions writes each layer's current order into Vertex.Pos.
func (lay layering) commitPositions(g *Graph) {
	for _, layer := range lay {
		for pos, id := range layer {
			g.Vertex(id).Pos = pos
		}
	}
}

func (lay layering) clone() layering {
	out := make(layering, len(lay))
	for i, layer := range lay {
		out[i] = append([]VertexID(nil), layer...)
	}
	return out
}

// minimizeCrossings runs the barycenter/median sweep with optional
// transpose, alternating sweep direction each iteration and tracking the
// best ordering seen. It stops as soon as a sweep reaches zero crossings,
// or after two consecutive sweeps fail to improve on the best count found
// so far — further sweeps from a local optimum just churn the ordering
// without reducing crossings, so there's no point burning the full
// iteration budget on a graph that has already converged.
func minimizeCrossings(g *Graph, lay layering, cfg Config, log Logger) layering {
	if len(lay) < 2 {
		return lay
	}
	best := lay.clone()
	bestCrossings := countLayeringCrossings(g, best)

	const maxIterations = 24
	noImprovement := 0
	for iter := 0; iter < maxIterations && bestCrossings > 0 && noImprovement < 2; iter++ {
		down := iter%2 == 0
		lay = sweepOnce(g, lay, cfg, down)
		if cfg.Transpose {
			lay = transpose(g, lay)
		}
		if c := countLayeringCrossings(g, lay); c < bestCrossings {
			bestCrossings = c
			best = lay.clone()
			noImprovement = 0
		} else {
			noImprovement++
		}
		log.Trace("crossing minimization sweep")
	}
	return best
}

// sweepOnce reorders every layer (except the fixed first, in the sweep
// direction) by barycenter or median of its already-ordered neighbor layer.
func sweepOnce(g *Graph, lay layering, cfg Config, down bool) layering {
	lay = lay.clone()
	lay.commitPositions(g)

	order := make([]int, len(lay))
	for i := range order {
		order[i] = i
	}
	if !down {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}

	for _, li := range order {
		var neighborRank int
		var useOut bool
		if down {
			neighborRank = li - 1
			useOut = false // use in-edges, which point up to rank li-1
		} else {
			neighborRank = li + 1
			useOut = true // use out-edges, which point down to rank li+1
		}
		if neighborRank < 0 || neighborRank >= len(lay) {
			continue
		}
		lay[li] = reorderLayer(g, lay[li], useOut, cfg.CMinimization)
		lay.commitPositions(g)
	}
	return lay
}

func reorderLayer(g *Graph, layer []VertexID, useOut bool, method CMinimization) []VertexID {
	type keyed struct {
		id  VertexID
		key float64
		has bool
	}
	ks := make([]keyed, len(layer))
	for i, id := range layer {
		positions := neighborPositions(g, id, useOut)
		ks[i] = keyed{id: id, has: len(positions) > 0}
		if !ks[i].has {
			continue
		}
		if method == Median {
			ks[i].key = weightedMedian(positions)
		} else {
			ks[i].key = mean(positions)
		}
	}
	sort.SliceStable(ks, func(i, j int) bool {
		if !ks[i].has {
			return false
		}
		if !ks[j].has {
			return true
		}
		return ks[i].key < ks[j].key
	})
	out := make([]VertexID, len(ks))
	for i, k := range ks {
		out[i] = k.id
	}
	return out
}

func neighborPositions(g *Graph, id VertexID, useOut bool) []float64 {
	var eids []EdgeID
	if useOut {
		eids = g.OutEdges(id)
	} else {
		eids = g.InEdges(id)
	}
	positions := make([]float64, 0, len(eids))
	for _, eid := range eids {
		e := g.Edge(eid)
		other := e.W
		if !useOut {
			other = e.V
		}
		positions = append(positions, float64(g.Vertex(other).Pos))
	}
	sort.Float64s(positions)
	return positions
}

func mean(p []float64) float64 {
	sum := 0.0
	for _, v := range p {
		sum += v
	}
	return sum / float64(len(p))
}

// weightedMedian computes a median key for an even-length position list:
// the two middle values are blended by the gap to their outer neighbors
// rather than averaged plainly, so vertices with lopsided neighbor spacing
// don't collapse to the same key.
func weightedMedian(p []float64) float64 {
	n := len(p)
	m := n / 2
	if n%2 == 1 {
		return p[m]
	}
	if n == 0 {
		return 0
	}
	if n == 2 {
		return (p[0] + p[1]) / 2
	}
	left := p[m-1] - p[0]
	right := p[n-1] - p[m]
	if left+right == 0 {
		return (p[m-1] + p[m]) / 2
	}
	return (p[m-1]*right + p[m]*left) / (left + right)
}

// transpose repeatedly swaps adjacent vertex pairs within a layer when doing
// so strictly reduces the total crossing count, until a full pass makes no
// improving swap. This escapes local optima the barycenter/median sweep
// alone settles into, at the cost of an extra O(layer size) swaps per pass.
func transpose(g *Graph, lay layering) layering {
	lay = lay.clone()
	improved := true
	for improved {
		improved = false
		lay.commitPositions(g)
		for li, layer := range lay {
			for i := 0; i+1 < len(layer); i++ {
				before := localCrossings(g, lay, li, i)
				layer[i], layer[i+1] = layer[i+1], layer[i]
				lay.commitPositions(g)
				after := localCrossings(g, lay, li, i)
				if after < before {
					improved = true
				} else {
					layer[i], layer[i+1] = layer[i+1], layer[i]
					lay.commitPositions(g)
				}
			}
		}
	}
	return lay
}

// localCrossings counts crossings contributed by layer li against its
// upper and lower neighbor layers, the portion transpose's adjacent swap
// can change.
func localCrossings(g *Graph, lay layering, li, _ int) int {
	total := 0
	if li > 0 {
		total += bilayerCrossings(g, lay[li-1], lay[li])
	}
	if li+1 < len(lay) {
		total += bilayerCrossings(g, lay[li], lay[li+1])
	}
	return total
}

// countLayeringCrossings sums bilayerCrossings over every adjacent pair of
// layers.
func countLayeringCrossings(g *Graph, lay layering) int {
	lay.commitPositions(g)
	total := 0
	for i := 0; i+1 < len(lay); i++ {
		total += bilayerCrossings(g, lay[i], lay[i+1])
	}
	return total
}

// bilayerCrossings counts edge crossings between two adjacent, ordered
// layers in O((E + k) log k): edges are visited in upper-layer order, and
// a Fenwick tree over the lower layer's positions counts, for each edge,
// how many earlier edges land at a strictly greater lower position —
// avoiding the naive O(n^2) all-pairs comparison.
func bilayerCrossings(g *Graph, upper, lower []VertexID) int {
	lowerPos := make(map[VertexID]int, len(lower))
	for i, id := range lower {
		lowerPos[id] = i
	}

	type pair struct{ up, down int }
	var pairs []pair
	for _, u := range upper {
		for _, eid := range g.OutEdges(u) {
			w := g.Edge(eid).W
			if p, ok := lowerPos[w]; ok {
				pairs = append(pairs, pair{up: g.Vertex(u).Pos, down: p})
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].up != pairs[j].up {
			return pairs[i].up < pairs[j].up
		}
		return pairs[i].down < pairs[j].down
	})

	fw := newFenwick(len(lower))
	crossings := 0
	for _, p := range pairs {
		crossings += fw.queryGreater(p.down)
		fw.update(p.down)
	}
	return crossings
}

// fenwick is a binary indexed tree over [0,n) supporting point updates and
// prefix-sum queries, used to count, for each edge processed in upper-layer
// order, how many previously-seen edges landed at a strictly greater lower
// position (i.e. cross it).
type fenwick struct {
	tree []int
	n    int
}

func newFenwick(n int) *fenwick {
	return &fenwick{tree: make([]int, n+1), n: n}
}

func (f *fenwick) update(i int) {
	for i++; i <= f.n; i += i & (-i) {
		f.tree[i]++
	}
}

func (f *fenwick) query(i int) int {
	sum := 0
	for ; i > 0; i -= i & (-i) {
		sum += f.tree[i]
	}
	return sum
}

// queryGreater returns the count of updates at positions > i.
func (f *fenwick) queryGreater(i int) int {
	return f.query(f.n) - f.query(i+1)
}
