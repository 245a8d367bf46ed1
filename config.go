package sugiyama

import "go.uber.org/multierr"

// LayeringType selects the P1 ranking strategy.
type LayeringType int

const (
	// MinimumHeight ranks by longest path only.
	MinimumHeight LayeringType = iota
	// Up runs network simplex rooted toward sources.
	Up
	// Down runs network simplex rooted toward sinks.
	Down
	// MinimumHeightPromote runs longest path then a local rank-tightening
	// pass; cheaper than Up/Down, less optimal.
	MinimumHeightPromote
)

func (t LayeringType) String() string {
	switch t {
	case MinimumHeight:
		return "MinimumHeight"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case MinimumHeightPromote:
		return "MinimumHeightPromote"
	default:
		return "unknown"
	}
}

func (t LayeringType) valid() bool {
	return t >= MinimumHeight && t <= MinimumHeightPromote
}

// CMinimization selects the P2 crossing-minimization heuristic.
type CMinimization int

const (
	// Barycenter positions each vertex at the mean of its neighbor positions.
	Barycenter CMinimization = iota
	// Median positions each vertex at the (weighted) median of its neighbor positions.
	Median
)

func (c CMinimization) String() string {
	switch c {
	case Barycenter:
		return "Barycenter"
	case Median:
		return "Median"
	default:
		return "unknown"
	}
}

func (c CMinimization) valid() bool {
	return c == Barycenter || c == Median
}

// Config is a flat, pass-by-value configuration record for the layout
// pipeline. All fields are optional; DefaultConfig returns sane defaults
// for every field so a caller can start from it and override only what
// matters to them.
type Config struct {
	MinimumLength  int
	VertexSpacing  int
	DummyVertices  bool
	DummySize      float64
	LayeringType   LayeringType
	CMinimization  CMinimization
	Transpose      bool
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		MinimumLength: 1,
		VertexSpacing: 10,
		DummyVertices: true,
		DummySize:     1.0,
		LayeringType:  MinimumHeight,
		CMinimization: Barycenter,
		Transpose:     true,
	}
}

// Validate reports every out-of-range or unrecognized field at once,
// combined via multierr, rather than stopping at the first problem.
func (c Config) Validate() error {
	var err error
	if c.MinimumLength < 1 {
		err = multierr.Append(err, newConfigError("minimum_length", c.MinimumLength, "must be >= 1"))
	}
	if c.VertexSpacing < 0 {
		err = multierr.Append(err, newConfigError("vertex_spacing", c.VertexSpacing, "must be >= 0"))
	}
	if c.DummySize < 0 {
		err = multierr.Append(err, newConfigError("dummy_size", c.DummySize, "must be >= 0"))
	}
	if !c.LayeringType.valid() {
		err = multierr.Append(err, newConfigError("layering_type", c.LayeringType, "unknown layering type"))
	}
	if !c.CMinimization.valid() {
		err = multierr.Append(err, newConfigError("c_minimization", c.CMinimization, "unknown crossing minimization heuristic"))
	}
	return err
}
