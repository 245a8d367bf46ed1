package sugiyama

// ComponentLayout is the resolved layout of one weakly-connected component
// of the input graph: every original (non-dummy) vertex's final position,
// plus the component's bounding size, used by Layout to pack components
// left to right.
type ComponentLayout struct {
	Positions map[VertexID]Point
	Width     float64
	Height    float64
}

// Result is the output of Layout: one ComponentLayout per weakly-connected
// component of the input, in the order components were discovered.
type Result struct {
	Components []ComponentLayout
}

// Layout runs the full P0-P3 pipeline over g using cfg, reporting to log
// (which may be nil). Each weakly-connected component of g is resolved
// independently end to end, then packed left to right with
// cfg.VertexSpacing between components.
func Layout(g *Graph, cfg Config, log Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log = orNoop(log)

	components := connectedComponents(g)
	layouts := make([]ComponentLayout, len(components))
	xOffset := 0.0

	for i, comp := range components {
		cl, err := layoutComponent(comp, cfg, log)
		if err != nil {
			return nil, err
		}
		for id := range cl.Positions {
			cl.Positions[id] = Point{X: cl.Positions[id].X + xOffset, Y: cl.Positions[id].Y}
		}
		layouts[i] = cl
		xOffset += cl.Width + float64(cfg.VertexSpacing)
	}

	return &Result{Components: layouts}, nil
}

// layoutComponent runs P0 through P3 on a single weakly-connected component.
func layoutComponent(g *Graph, cfg Config, log Logger) (ComponentLayout, error) {
	if g.VertexCount() == 0 {
		return ComponentLayout{Positions: map[VertexID]Point{}}, nil
	}
	if g.VertexCount() == 1 {
		id := g.Vertices()[0]
		v := g.Vertex(id)
		return ComponentLayout{
			Positions: map[VertexID]Point{id: {X: v.Size.W / 2, Y: v.Size.H / 2}},
			Width:     v.Size.W,
			Height:    v.Size.H,
		}, nil
	}

	for _, eid := range g.Edges() {
		e := g.Edge(eid)
		e.Minlen = cfg.MinimumLength
	}

	makeAcyclic(g, log)
	if err := checkAcyclic(g); err != nil {
		return ComponentLayout{}, err
	}

	if err := assignRanks(g, cfg, log); err != nil {
		return ComponentLayout{}, err
	}

	insertDummies(g, cfg)

	lay := buildLayering(g)
	lay = minimizeCrossings(g, lay, cfg, log)

	coords := assignCoordinates(g, lay, cfg, log)

	restoreDirections(g)

	width, height := boundingBox(g, coords)

	realOnly := make(map[VertexID]Point)
	for id, p := range coords {
		if !g.Vertex(id).IsDummy {
			realOnly[id] = p
		}
	}

	return ComponentLayout{Positions: realOnly, Width: width, Height: height}, nil
}
