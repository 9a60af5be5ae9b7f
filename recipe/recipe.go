package recipe

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvnoise/internal/logging"
)

// Recipe is a declarative description of a module graph.
type Recipe struct {
	// Output names the node whose value the built graph returns.
	Output string `yaml:"output"`

	// Nodes lists the modules. Order is free; sources may be declared later.
	Nodes []Node `yaml:"nodes"`

	source string
}

// Node describes one module: its unique name, its type, the names of its
// sources in slot order, and the parameters that apply to its type.
type Node struct {
	Name    string   `yaml:"name"`
	Type    string   `yaml:"type"`
	Sources []string `yaml:"sources,omitempty"`
	Params  `yaml:",inline"`
}

// Params are the optional module settings. A nil field keeps the module default.
// Fields that do not apply to a node's type are ignored.
type Params struct {
	// Fractal generators, Voronoi, Turbulence, Cylinders, Spheres, Classic, Simplex.
	Frequency   *float64 `yaml:"frequency,omitempty"`
	Lacunarity  *float64 `yaml:"lacunarity,omitempty"`
	Persistence *float64 `yaml:"persistence,omitempty"`
	Octaves     *int     `yaml:"octaves,omitempty"`
	Seed        *int     `yaml:"seed,omitempty"`
	Quality     *string  `yaml:"quality,omitempty"`

	// Voronoi.
	Displacement *float64 `yaml:"displacement,omitempty"`
	Distance     *bool    `yaml:"distance,omitempty"`

	// Turbulence.
	Power     *float64 `yaml:"power,omitempty"`
	Roughness *int     `yaml:"roughness,omitempty"`

	// Select and Clamp.
	Lower   *float64 `yaml:"lower,omitempty"`
	Upper   *float64 `yaml:"upper,omitempty"`
	Falloff *float64 `yaml:"falloff,omitempty"`

	// Curve.
	Points []Point `yaml:"points,omitempty"`

	// Terrace: explicit points, or a count of evenly spaced ones.
	Terraces     []float64 `yaml:"terraces,omitempty"`
	TerraceCount *int      `yaml:"terrace_count,omitempty"`
	Invert       *bool     `yaml:"invert,omitempty"`

	// Const, ScaleBias, Exponent.
	Value    *float64 `yaml:"value,omitempty"`
	Scale    *float64 `yaml:"scale,omitempty"`
	Bias     *float64 `yaml:"bias,omitempty"`
	Exponent *float64 `yaml:"exponent,omitempty"`

	// ScalePoint (factors), TranslatePoint (offsets), RotatePoint (degrees).
	XYZ []float64 `yaml:"xyz,omitempty"`

	// Classic.
	Alpha *float64 `yaml:"alpha,omitempty"`
	Beta  *float64 `yaml:"beta,omitempty"`
	N     *int     `yaml:"n,omitempty"`
}

// Point is one Curve control point.
type Point struct {
	In  float64 `yaml:"in"`
	Out float64 `yaml:"out"`
}

// Parse decodes a YAML recipe. Unknown keys are rejected.
func Parse(data []byte) (*Recipe, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var r Recipe
	if err := dec.Decode(&r); err != nil {
		return nil, fmt.Errorf("recipe: Parse: %w", err)
	}
	if len(r.Nodes) == 0 {
		return nil, ErrEmptyRecipe
	}
	r.source = "<bytes>"

	return &r, nil
}

// Load reads and decodes the YAML recipe at path.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("recipe: Load: %w", err)
	}

	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("recipe: Load(%s): %w", path, err)
	}
	r.source = path
	logging.WithRecipe(path).Debug("Recipe loaded", "nodes", len(r.Nodes), "output", r.Output)

	return r, nil
}

// Marshal encodes the recipe back to YAML.
func (r *Recipe) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("recipe: Marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("recipe: Marshal: %w", err)
	}

	return buf.Bytes(), nil
}
