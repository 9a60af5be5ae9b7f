// Command noisesample builds a module graph from a YAML recipe and prints its
// value at the points given on the command line.
//
//	noisesample -recipe terrain.yaml 0,0,0 1.5,0.25,-3
//	noisesample -recipe terrain.yaml -model plane 1,2
//	noisesample -recipe terrain.yaml -model sphere 45,90
//
// Points are "x,y,z" for the volume model, "x,z" for plane and "lat,lon"
// (degrees) for sphere. Put "--" before the first point if it starts with
// "-". Defaults come from NOISE_RECIPE, NOISE_MODEL, NOISE_PRECISION,
// NOISE_VALIDATE, LOG_LEVEL and LOG_FORMAT.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvnoise/graph"
	"github.com/katalvlaran/lvnoise/internal/config"
	"github.com/katalvlaran/lvnoise/internal/logging"
	"github.com/katalvlaran/lvnoise/model"
	"github.com/katalvlaran/lvnoise/module"
	"github.com/katalvlaran/lvnoise/recipe"
)

var (
	errNoRecipe = errors.New("no recipe given")
	errBadPoint = errors.New("malformed point")
	errBadModel = errors.New("unknown model")
	errNoPoints = errors.New("no points given")
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		logging.GetLogger().Error("Sampling failed", "error", err)
		os.Exit(1)
	}
}

// run parses args, builds the recipe and writes one value per point to stdout.
func run(args []string, stdout, stderr io.Writer) error {
	cfg := config.Load()
	logging.Init(logging.ParseLevel(cfg.Logging.Level), logging.ParseFormat(cfg.Logging.Format), stderr)

	fs := flag.NewFlagSet("noisesample", flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("recipe", cfg.Sampler.Recipe, "YAML recipe `file`")
	modelName := fs.String("model", cfg.Sampler.Model, "projection: volume, plane or sphere")
	precision := fs.Int("precision", cfg.Sampler.Precision, "digits after the decimal point")
	validate := fs.Bool("validate", cfg.Sampler.Validate, "check the graph before sampling")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *path == "" {
		return errNoRecipe
	}
	if fs.NArg() == 0 {
		return errNoPoints
	}

	sample, dims, err := sampler(*modelName)
	if err != nil {
		return err
	}

	r, err := recipe.Load(*path)
	if err != nil {
		return err
	}
	g, err := r.Build()
	if err != nil {
		return err
	}
	if *validate {
		if err = graph.Validate(g.Output); err != nil {
			return err
		}
	}

	for _, arg := range fs.Args() {
		p, err := parsePoint(arg, dims)
		if err != nil {
			return err
		}
		v, err := sample(g.Output, p)
		if err != nil {
			return err
		}
		x, y, z := point3(*modelName, p)
		logging.WithPoint(x, y, z).Debug("Sampled", "model", *modelName, "value", v)
		fmt.Fprintf(stdout, "%s\t%s\n", arg, strconv.FormatFloat(v, 'f', *precision, 64))
	}

	return nil
}

// sampler returns the evaluation function of a model and its coordinate count.
func sampler(name string) (func(m module.Module, p []float64) (float64, error), int, error) {
	switch strings.ToLower(name) {
	case "volume", "":
		return func(m module.Module, p []float64) (float64, error) {
			return m.Value(p[0], p[1], p[2]), nil
		}, 3, nil
	case "plane":
		return func(m module.Module, p []float64) (float64, error) {
			return model.NewPlane(m).Value(p[0], p[1])
		}, 2, nil
	case "sphere":
		return func(m module.Module, p []float64) (float64, error) {
			return model.NewSphere(m).Value(p[0], p[1])
		}, 2, nil
	default:
		return nil, 0, fmt.Errorf("%q: %w", name, errBadModel)
	}
}

// point3 returns the 3D point a model evaluates for the parsed coordinates.
func point3(name string, p []float64) (x, y, z float64) {
	switch strings.ToLower(name) {
	case "plane":
		return p[0], 0, p[1]
	case "sphere":
		return model.LatLonToXYZ(p[0], p[1])
	default:
		return p[0], p[1], p[2]
	}
}

// parsePoint splits a comma-separated coordinate list of exactly n numbers.
func parsePoint(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%q: want %d coordinates: %w", s, n, errBadPoint)
	}

	p := make([]float64, n)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, errBadPoint)
		}
		p[i] = v
	}

	return p, nil
}
