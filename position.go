package sugiyama

import "sort"

// Point is a final (x, y) coordinate, in the same units as Config.VertexSpacing
// and the graph's Vertex.Size.
type Point struct {
	X, Y float64
}

// hDir and vDir select one of the four Brandes-Köpf alignment passes.
type hDir int

const (
	left hDir = iota
	right
)

type vDir int

const (
	up vDir = iota
	down
)

// assignCoordinates runs the Brandes-Köpf (2002, with the 2020 erratum's
// median-of-four balancing) horizontal coordinate assignment and a simple
// rank-proportional vertical assignment, and returns the resulting
// coordinates.
func assignCoordinates(g *Graph, lay layering, cfg Config, log Logger) map[VertexID]Point {
	lay.commitPositions(g)
	conflicts := markType1Conflicts(g, lay)

	xs := make(map[vDir]map[hDir]map[VertexID]float64, 2)
	for _, vd := range []vDir{up, down} {
		xs[vd] = make(map[hDir]map[VertexID]float64, 2)
		for _, hd := range []hDir{left, right} {
			root, align := verticalAlignment(g, lay, vd, hd, conflicts)
			xs[vd][hd] = horizontalCompaction(g, lay, vd, hd, root, align, cfg)
		}
	}

	coords := balance(g, lay, xs)

	log.Trace("brandes-kopf coordinate assignment complete")
	return assignVerticalRanks(g, lay, coords, cfg)
}

// conflictKey identifies an edge between two adjacent layers by its
// endpoints, independent of direction.
type conflictKey struct{ upper, lower VertexID }

// markType1Conflicts implements Brandes & Köpf's Algorithm 1: for each pair
// of adjacent layers, an edge with at least one real (non-dummy) endpoint
// that crosses an "inner segment" (an edge between two dummy vertices, part of a dummy
// chain) is marked a type-1 conflict, and excluded from alignment so dummy
// chains stay straight even at the cost of misaligning the real vertices
// that cross them.
func markType1Conflicts(g *Graph, lay layering) map[conflictKey]bool {
	conflicts := make(map[conflictKey]bool)
	for i := 0; i+1 < len(lay); i++ {
		upper, lower := lay[i], lay[i+1]
		upperPos := posIndex(upper)
		k0 := 0
		scanFrom := 0
		for l1 := 0; l1 < len(lower); l1++ {
			innerUpper, isInner := innerSegmentUpper(g, lower[l1])
			if !isInner && l1 != len(lower)-1 {
				continue
			}
			k1 := len(upper) - 1
			if isInner {
				k1 = upperPos[innerUpper]
			}
			for ; scanFrom <= l1; scanFrom++ {
				v := lower[scanFrom]
				for _, uid := range upperNeighbors(g, v) {
					up, ok := upperPos[uid]
					if !ok {
						continue
					}
					if up < k0 || up > k1 {
						if !(isInner && g.Vertex(uid).IsDummy && g.Vertex(v).IsDummy) {
							conflicts[conflictKey{upper: uid, lower: v}] = true
						}
					}
				}
			}
			k0 = k1
		}
	}
	return conflicts
}

func posIndex(layer []VertexID) map[VertexID]int {
	m := make(map[VertexID]int, len(layer))
	for i, id := range layer {
		m[id] = i
	}
	return m
}

// upperNeighbors returns ids in the rank above v that v has an edge to or from.
func upperNeighbors(g *Graph, v VertexID) []VertexID {
	var out []VertexID
	rank := g.Vertex(v).Rank
	for _, eid := range g.InEdges(v) {
		u := g.Edge(eid).V
		if g.Vertex(u).Rank == rank-1 {
			out = append(out, u)
		}
	}
	for _, eid := range g.OutEdges(v) {
		w := g.Edge(eid).W
		if g.Vertex(w).Rank == rank-1 {
			out = append(out, w)
		}
	}
	return out
}

func lowerNeighbors(g *Graph, v VertexID) []VertexID {
	var out []VertexID
	rank := g.Vertex(v).Rank
	for _, eid := range g.OutEdges(v) {
		w := g.Edge(eid).W
		if g.Vertex(w).Rank == rank+1 {
			out = append(out, w)
		}
	}
	for _, eid := range g.InEdges(v) {
		u := g.Edge(eid).V
		if g.Vertex(u).Rank == rank+1 {
			out = append(out, u)
		}
	}
	return out
}

// innerSegmentUpper returns the single upper-layer dummy neighbor of v if v
// is a dummy vertex whose edge to that neighbor is part of a dummy-dummy
// chain segment.
func innerSegmentUpper(g *Graph, v VertexID) (VertexID, bool) {
	if !g.Vertex(v).IsDummy {
		return 0, false
	}
	for _, uid := range upperNeighbors(g, v) {
		if g.Vertex(uid).IsDummy {
			return uid, true
		}
	}
	return 0, false
}

// verticalAlignment implements Brandes & Köpf's Algorithm 2 for one of the
// four (vertical, horizontal) direction combinations: it walks layers in
// the given vertical direction and, within each layer, vertices in the
// given horizontal direction, aligning each vertex with its median
// upper/lower neighbor when the edge between them has no type-1 conflict
// and the alignment doesn't cross an already-made one.
func verticalAlignment(g *Graph, lay layering, vd vDir, hd hDir, conflicts map[conflictKey]bool) (root, align map[VertexID]VertexID) {
	root = make(map[VertexID]VertexID)
	align = make(map[VertexID]VertexID)
	for _, layer := range lay {
		for _, id := range layer {
			root[id] = id
			align[id] = id
		}
	}

	layerOrder := layerIndices(len(lay), vd)
	for _, li := range layerOrder {
		layer := orderedLayer(lay[li], hd)
		r := -1
		for _, v := range layer {
			neighbors := directionalNeighbors(g, v, vd)
			if len(neighbors) == 0 {
				continue
			}
			sort.SliceStable(neighbors, func(i, j int) bool {
				return g.Vertex(neighbors[i]).Pos < g.Vertex(neighbors[j]).Pos
			})
			neighbors = orderedLayer(neighbors, hd)
			mid := (len(neighbors) - 1) / 2
			hiEnd := mid
			if len(neighbors)%2 == 0 {
				hiEnd = len(neighbors) / 2
			}
			for m := mid; m <= hiEnd; m++ {
				u := neighbors[m]
				if align[v] != v {
					continue
				}
				key := conflictKey{upper: u, lower: v}
				if vd == up {
					key = conflictKey{upper: v, lower: u}
				}
				if conflicts[key] {
					continue
				}
				pos := positionIn(lay[li-dirDelta(vd)], u)
				if betterSide(pos, r, hd) {
					align[u] = v
					root[v] = root[u]
					align[v] = root[v]
					r = pos
				}
			}
		}
	}
	return root, align
}

func dirDelta(vd vDir) int {
	if vd == down {
		return 1
	}
	return -1
}

func layerIndices(n int, vd vDir) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	if vd == up {
		for i, j := 0, len(idx)-1; i < j; i, j = i+1, j-1 {
			idx[i], idx[j] = idx[j], idx[i]
		}
	}
	return idx
}

func orderedLayer(layer []VertexID, hd hDir) []VertexID {
	out := append([]VertexID(nil), layer...)
	if hd == right {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func directionalNeighbors(g *Graph, v VertexID, vd vDir) []VertexID {
	if vd == down {
		return upperNeighbors(g, v)
	}
	return lowerNeighbors(g, v)
}

func positionIn(layer []VertexID, id VertexID) int {
	for i, v := range layer {
		if v == id {
			return i
		}
	}
	return -1
}

func betterSide(pos, r int, hd hDir) bool {
	if hd == left {
		return pos > r
	}
	return r == -1 || pos < r
}

// horizontalCompaction implements Brandes & Köpf's Algorithm 3/4: blocks
// (vertices sharing a root) are placed left to right (or right to left),
// each as far as possible toward its neighbor while respecting a minimum
// separation derived from vertex size and Config.VertexSpacing, recursively
// pulling in predecessor blocks (placeBlock) and finally shifting classes
// that never got a placement (sink/shift) flush against their neighbor.
func horizontalCompaction(g *Graph, lay layering, vd vDir, hd hDir, root, align map[VertexID]VertexID, cfg Config) map[VertexID]float64 {
	sink := make(map[VertexID]VertexID)
	shift := make(map[VertexID]float64)
	x := make(map[VertexID]float64)
	done := make(map[VertexID]bool)

	for _, layer := range lay {
		for _, id := range layer {
			sink[id] = id
			shift[id] = posInf(hd)
		}
	}

	var placeBlock func(v VertexID)
	placeBlock = func(v VertexID) {
		if done[v] {
			return
		}
		done[v] = true
		x[v] = 0
		w := v
		for {
			layer := lay[g.Vertex(w).Rank]
			pos := positionIn(layer, w)
			pred, ok := predInDirection(layer, pos, hd)
			if ok {
				u := root[pred]
				placeBlock(u)
				if sink[v] == v {
					sink[v] = sink[u]
				}
				gap := minSep(g, pred, w, cfg, hd)
				if sink[v] != sink[u] {
					s := x[v] - x[u] - signFor2(hd)*gap
					shift[sink[u]] = minShift(shift[sink[u]], s, hd)
				} else {
					cand := x[u] + signFor2(hd)*gap
					if fartherInDirection(cand, x[v], hd) {
						x[v] = cand
					}
				}
			}
			w = align[w]
			if w == v {
				break
			}
		}
	}

	for _, layer := range lay {
		ordered := orderedLayer(layer, hd)
		for _, v := range ordered {
			if root[v] == v {
				placeBlock(v)
			}
		}
	}

	out := make(map[VertexID]float64)
	for _, layer := range lay {
		for _, v := range layer {
			out[v] = x[root[v]]
			if s := shift[sink[root[v]]]; !isInf(s) {
				out[v] += s
			}
		}
	}
	return out
}

func predInDirection(layer []VertexID, pos int, hd hDir) (VertexID, bool) {
	if hd == left {
		if pos <= 0 {
			return 0, false
		}
		return layer[pos-1], true
	}
	if pos >= len(layer)-1 {
		return 0, false
	}
	return layer[pos+1], true
}

func minSep(g *Graph, a, b VertexID, cfg Config, hd hDir) float64 {
	va, vb := g.Vertex(a), g.Vertex(b)
	sep := va.Size.W/2 + vb.Size.W/2 + float64(cfg.VertexSpacing)
	return sep
}

func signFor2(hd hDir) float64 {
	if hd == left {
		return 1
	}
	return -1
}

func fartherInDirection(cand, cur float64, hd hDir) bool {
	if hd == left {
		return cand > cur
	}
	return cand < cur
}

func minShift(cur, s float64, hd hDir) float64 {
	if isInf(cur) {
		return s
	}
	if hd == left {
		if s < cur {
			return s
		}
		return cur
	}
	if s > cur {
		return s
	}
	return cur
}

func posInf(hd hDir) float64 {
	if hd == left {
		return posInfinity
	}
	return negInfinity
}

const posInfinity = 1e18
const negInfinity = -1e18

func isInf(v float64) bool { return v >= posInfinity || v <= negInfinity }

// balance combines the four alignment passes' x coordinates per vertex by
// sorting the four candidates and averaging the middle two (the 2020
// erratum's median-of-four, which corrects the original paper's "align to
// the smallest-width alignment" rule).
func balance(g *Graph, lay layering, xs map[vDir]map[hDir]map[VertexID]float64) map[VertexID]float64 {
	out := make(map[VertexID]float64)
	for _, layer := range lay {
		for _, id := range layer {
			vals := []float64{
				xs[up][left][id], xs[up][right][id],
				xs[down][left][id], xs[down][right][id],
			}
			sort.Float64s(vals)
			out[id] = (vals[1] + vals[2]) / 2
		}
	}
	return out
}

// assignVerticalRanks lays out ranks top to bottom, each rank's y the
// running sum of the previous ranks' max vertex height plus spacing, and
// shifts every x coordinate so the component's bounding box starts at the
// origin.
func assignVerticalRanks(g *Graph, lay layering, xCoord map[VertexID]float64, cfg Config) map[VertexID]Point {
	out := make(map[VertexID]Point, len(xCoord))

	minX := 0.0
	first := true
	for id, x := range xCoord {
		if l := x - g.Vertex(id).Size.W/2; first || l < minX {
			minX = l
			first = false
		}
	}

	y := 0.0
	for _, layer := range lay {
		maxH := 0.0
		for _, id := range layer {
			if h := g.Vertex(id).Size.H; h > maxH {
				maxH = h
			}
		}
		for _, id := range layer {
			out[id] = Point{X: xCoord[id] - minX, Y: y + maxH/2}
		}
		y += maxH + float64(cfg.VertexSpacing)
	}
	return out
}

// boundingBox returns the width and height spanned by coords, accounting
// for each vertex's half-size.
func boundingBox(g *Graph, coords map[VertexID]Point) (width, height float64) {
	first := true
	var minX, maxX, minY, maxY float64
	for id, p := range coords {
		sz := g.Vertex(id).Size
		lo, hi := p.X-sz.W/2, p.X+sz.W/2
		top, bot := p.Y-sz.H/2, p.Y+sz.H/2
		if first {
			minX, maxX, minY, maxY = lo, hi, top, bot
			first = false
			continue
		}
		if lo < minX {
			minX = lo
		}
		if hi > maxX {
			maxX = hi
		}
		if top < minY {
			minY = top
		}
		if bot > maxY {
			maxY = bot
		}
	}
	if first {
		return 0, 0
	}
	return maxX - minX, maxY - minY
}
