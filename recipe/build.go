package recipe

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvnoise/graph"
	"github.com/katalvlaran/lvnoise/internal/logging"
	"github.com/katalvlaran/lvnoise/kernel"
	"github.com/katalvlaran/lvnoise/module"
)

// Graph is a built recipe: the output module plus every named node.
type Graph struct {
	Output module.Module
	nodes  map[string]module.Module
	order  []string
}

// Node returns the module built for name.
func (g *Graph) Node(name string) (module.Module, bool) {
	m, ok := g.nodes[name]
	return m, ok
}

// Names returns the node names with every node after its sources.
func (g *Graph) Names() []string {
	return append([]string(nil), g.order...)
}

// Value evaluates the output module.
func (g *Graph) Value(x, y, z float64) float64 { return g.Output.Value(x, y, z) }

// kind describes how to build one node type.
type kind struct {
	arity int
	build func(p *Params) (module.Module, error)
}

// kinds is keyed by the normalised type name (lower case, no '_' or '-').
var kinds = map[string]kind{
	"perlin":         {0, func(p *Params) (module.Module, error) { return fractal(module.NewPerlin(), p) }},
	"billow":         {0, func(p *Params) (module.Module, error) { return fractal(module.NewBillow(), p) }},
	"ridgedmulti":    {0, func(p *Params) (module.Module, error) { return fractal(module.NewRidgedMulti(), p) }},
	"voronoi":        {0, buildVoronoi},
	"const":          {0, buildConst},
	"checkerboard":   {0, func(*Params) (module.Module, error) { return module.NewCheckerboard(), nil }},
	"cylinders":      {0, buildCylinders},
	"spheres":        {0, buildSpheres},
	"classic":        {0, buildClassic},
	"simplex":        {0, buildSimplex},
	"curve":          {1, buildCurve},
	"terrace":        {1, buildTerrace},
	"abs":            {1, func(*Params) (module.Module, error) { return module.NewAbs(), nil }},
	"invert":         {1, func(*Params) (module.Module, error) { return module.NewInvert(), nil }},
	"clamp":          {1, buildClamp},
	"exponent":       {1, buildExponent},
	"scalebias":      {1, buildScaleBias},
	"scalepoint":     {1, buildScalePoint},
	"translatepoint": {1, buildTranslatePoint},
	"rotatepoint":    {1, buildRotatePoint},
	"turbulence":     {1, buildTurbulence},
	"cache":          {1, func(*Params) (module.Module, error) { return module.NewCache(), nil }},
	"max":            {2, func(*Params) (module.Module, error) { return module.NewMax(), nil }},
	"select":         {3, buildSelect},
	"blend":          {3, func(*Params) (module.Module, error) { return module.NewBlend(), nil }},
	"displace":       {4, func(*Params) (module.Module, error) { return module.NewDisplace(), nil }},
}

func normaliseType(t string) string {
	return strings.NewReplacer("_", "", "-", "").Replace(strings.ToLower(strings.TrimSpace(t)))
}

// Build validates the recipe and wires its modules.
//
// Steps:
//  1. names are present and unique, types known, source counts match;
//  2. every source and the output resolve to a node;
//  3. nodes are ordered so that sources come first (cycles rejected);
//  4. modules are built with their parameters and wired in that order;
//  5. the output graph is checked with graph.Validate.
func (r *Recipe) Build() (*Graph, error) {
	log := logging.WithRecipe(r.source)

	// 1) Index and check every node.
	byName := make(map[string]*Node, len(r.Nodes))
	for i := range r.Nodes {
		n := &r.Nodes[i]
		if n.Name == "" || n.Type == "" {
			return nil, fmt.Errorf("recipe: Build: node %d: %w", i, ErrUnnamedNode)
		}
		if _, dup := byName[n.Name]; dup {
			return nil, fmt.Errorf("recipe: Build: %q: %w", n.Name, ErrDuplicateName)
		}
		k, ok := kinds[normaliseType(n.Type)]
		if !ok {
			return nil, fmt.Errorf("recipe: Build: %q: type %q: %w", n.Name, n.Type, ErrUnknownType)
		}
		if len(n.Sources) != k.arity {
			return nil, fmt.Errorf("recipe: Build: %q: %s takes %d, got %d: %w",
				n.Name, n.Type, k.arity, len(n.Sources), ErrArity)
		}
		byName[n.Name] = n
	}

	// 2) Resolve references.
	for _, n := range r.Nodes {
		for _, s := range n.Sources {
			if _, ok := byName[s]; !ok {
				return nil, fmt.Errorf("recipe: Build: %q: source %q: %w", n.Name, s, ErrUnknownSource)
			}
		}
	}
	if _, ok := byName[r.Output]; !ok {
		return nil, fmt.Errorf("recipe: Build: output %q: %w", r.Output, ErrUnknownSource)
	}

	// 3) Dependency order.
	order, err := topoOrder(r.Nodes, byName)
	if err != nil {
		return nil, fmt.Errorf("recipe: Build: %w", err)
	}

	// 4) Construct and wire.
	built := make(map[string]module.Module, len(order))
	for _, name := range order {
		n := byName[name]
		m, err := kinds[normaliseType(n.Type)].build(&n.Params)
		if err != nil {
			return nil, fmt.Errorf("recipe: Build: %q: %w", name, err)
		}
		for i, s := range n.Sources {
			if err = m.SetSource(i, built[s]); err != nil {
				return nil, fmt.Errorf("recipe: Build: %q: %w", name, err)
			}
		}
		built[name] = m
		log.Debug("Node built", "node", name, "type", n.Type, "sources", n.Sources)
	}

	// 5) Final structural check.
	out := built[r.Output]
	if err = graph.Validate(out); err != nil {
		return nil, fmt.Errorf("recipe: Build: %w", err)
	}
	if st, err := graph.Inspect(out); err == nil {
		log.Info("Graph built", "output", r.Output, "nodes", st.Nodes, "depth", st.Depth, "shared", st.Shared)
	}

	return &Graph{Output: out, nodes: built, order: order}, nil
}

// topoOrder sorts node names so every node follows its sources, using a
// three-colour depth-first search over the source lists.
func topoOrder(nodes []Node, byName map[string]*Node) ([]string, error) {
	state := make(map[string]int, len(nodes))
	order := make([]string, 0, len(nodes))

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case graph.Gray:
			return fmt.Errorf("%q: %w", name, ErrCycleDetected)
		case graph.Black:
			return nil
		}
		state[name] = graph.Gray
		for _, s := range byName[name].Sources {
			if err := visit(s); err != nil {
				return err
			}
		}
		state[name] = graph.Black
		order = append(order, name)

		return nil
	}

	for _, n := range nodes {
		if state[n.Name] == graph.White {
			if err := visit(n.Name); err != nil {
				return nil, err
			}
		}
	}

	return order, nil
}

// fractalModule is implemented by Perlin, Billow and RidgedMulti.
type fractalModule interface {
	module.Module
	SetFrequency(float64)
	SetLacunarity(float64)
	SetPersistence(float64)
	SetOctaveCount(int) error
	SetSeed(int)
	SetQuality(kernel.Quality)
}

func fractal(m fractalModule, p *Params) (module.Module, error) {
	if p.Frequency != nil {
		m.SetFrequency(*p.Frequency)
	}
	if p.Lacunarity != nil {
		m.SetLacunarity(*p.Lacunarity)
	}
	if p.Persistence != nil {
		m.SetPersistence(*p.Persistence)
	}
	if p.Octaves != nil {
		if err := m.SetOctaveCount(*p.Octaves); err != nil {
			return nil, err
		}
	}
	if p.Seed != nil {
		m.SetSeed(*p.Seed)
	}
	if p.Quality != nil {
		q, err := kernel.ParseQuality(*p.Quality)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParam, err)
		}
		m.SetQuality(q)
	}

	return m, nil
}

func buildVoronoi(p *Params) (module.Module, error) {
	v := module.NewVoronoi()
	if p.Frequency != nil {
		v.SetFrequency(*p.Frequency)
	}
	if p.Displacement != nil {
		v.SetDisplacement(*p.Displacement)
	}
	if p.Seed != nil {
		v.SetSeed(*p.Seed)
	}
	if p.Distance != nil {
		v.EnableDistance(*p.Distance)
	}

	return v, nil
}

func buildConst(p *Params) (module.Module, error) {
	if p.Value == nil {
		return module.NewConst(0), nil
	}

	return module.NewConst(*p.Value), nil
}

func buildCylinders(p *Params) (module.Module, error) {
	c := module.NewCylinders()
	if p.Frequency != nil {
		c.SetFrequency(*p.Frequency)
	}

	return c, nil
}

func buildSpheres(p *Params) (module.Module, error) {
	s := module.NewSpheres()
	if p.Frequency != nil {
		s.SetFrequency(*p.Frequency)
	}

	return s, nil
}

func buildClassic(p *Params) (module.Module, error) {
	c := module.NewClassic()
	alpha, beta, n := c.Params()
	if p.Alpha != nil {
		alpha = *p.Alpha
	}
	if p.Beta != nil {
		beta = *p.Beta
	}
	if p.N != nil {
		n = *p.N
	}
	if err := c.SetParams(alpha, beta, n); err != nil {
		return nil, err
	}
	if p.Seed != nil {
		c.SetSeed(int64(*p.Seed))
	}
	if p.Frequency != nil {
		c.SetFrequency(*p.Frequency)
	}

	return c, nil
}

func buildSimplex(p *Params) (module.Module, error) {
	s := module.NewSimplex()
	if p.Seed != nil {
		s.SetSeed(int64(*p.Seed))
	}
	if p.Frequency != nil {
		s.SetFrequency(*p.Frequency)
	}

	return s, nil
}

func buildCurve(p *Params) (module.Module, error) {
	c := module.NewCurve()
	for _, pt := range p.Points {
		if err := c.AddControlPoint(pt.In, pt.Out); err != nil {
			return nil, err
		}
	}
	if len(p.Points) < 4 {
		return nil, fmt.Errorf("curve has %d points: %w", len(p.Points), module.ErrTooFewPoints)
	}

	return c, nil
}

func buildTerrace(p *Params) (module.Module, error) {
	t := module.NewTerrace()
	switch {
	case p.TerraceCount != nil:
		if err := t.MakeControlPoints(*p.TerraceCount); err != nil {
			return nil, err
		}
	default:
		for _, v := range p.Terraces {
			if err := t.AddControlPoint(v); err != nil {
				return nil, err
			}
		}
		if len(p.Terraces) < 2 {
			return nil, fmt.Errorf("terrace has %d points: %w", len(p.Terraces), module.ErrTooFewPoints)
		}
	}
	if p.Invert != nil {
		t.SetInvert(*p.Invert)
	}

	return t, nil
}

// bounds resolves optional lower/upper values against the current ones.
func bounds(p *Params, lower, upper float64) (float64, float64) {
	if p.Lower != nil {
		lower = *p.Lower
	}
	if p.Upper != nil {
		upper = *p.Upper
	}

	return lower, upper
}

func buildClamp(p *Params) (module.Module, error) {
	c := module.NewClamp()
	lo, hi := c.Bounds()
	if err := c.SetBounds(bounds(p, lo, hi)); err != nil {
		return nil, err
	}

	return c, nil
}

func buildSelect(p *Params) (module.Module, error) {
	s := module.NewSelect()
	lo, hi := s.Bounds()
	if err := s.SetBounds(bounds(p, lo, hi)); err != nil {
		return nil, err
	}
	if p.Falloff != nil {
		s.SetEdgeFalloff(*p.Falloff)
	}

	return s, nil
}

func buildExponent(p *Params) (module.Module, error) {
	e := module.NewExponent()
	if p.Exponent != nil {
		e.SetExponent(*p.Exponent)
	}

	return e, nil
}

func buildScaleBias(p *Params) (module.Module, error) {
	s := module.NewScaleBias()
	if p.Scale != nil {
		s.SetScale(*p.Scale)
	}
	if p.Bias != nil {
		s.SetBias(*p.Bias)
	}

	return s, nil
}

// xyz returns the three-component vector parameter, or ok=false if absent.
func xyz(p *Params) (x, y, z float64, ok bool, err error) {
	switch len(p.XYZ) {
	case 0:
		return 0, 0, 0, false, nil
	case 3:
		return p.XYZ[0], p.XYZ[1], p.XYZ[2], true, nil
	default:
		return 0, 0, 0, false, fmt.Errorf("xyz needs 3 values, got %d: %w", len(p.XYZ), ErrParam)
	}
}

func buildScalePoint(p *Params) (module.Module, error) {
	s := module.NewScalePoint()
	x, y, z, ok, err := xyz(p)
	if err != nil {
		return nil, err
	}
	if ok {
		s.SetScale(x, y, z)
	}

	return s, nil
}

func buildTranslatePoint(p *Params) (module.Module, error) {
	t := module.NewTranslatePoint()
	x, y, z, ok, err := xyz(p)
	if err != nil {
		return nil, err
	}
	if ok {
		t.SetTranslation(x, y, z)
	}

	return t, nil
}

func buildRotatePoint(p *Params) (module.Module, error) {
	r := module.NewRotatePoint()
	x, y, z, ok, err := xyz(p)
	if err != nil {
		return nil, err
	}
	if ok {
		r.SetAngles(x, y, z)
	}

	return r, nil
}

func buildTurbulence(p *Params) (module.Module, error) {
	t := module.NewTurbulence()
	if p.Frequency != nil {
		t.SetFrequency(*p.Frequency)
	}
	if p.Power != nil {
		t.SetPower(*p.Power)
	}
	if p.Roughness != nil {
		if err := t.SetRoughness(*p.Roughness); err != nil {
			return nil, err
		}
	}
	if p.Seed != nil {
		t.SetSeed(*p.Seed)
	}

	return t, nil
}
