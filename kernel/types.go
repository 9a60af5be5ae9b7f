package kernel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvnoise/interp"
)

// ErrUnknownQuality indicates a quality name that ParseQuality does not recognise.
var ErrUnknownQuality = errors.New("kernel: unknown noise quality")

// Quality selects the easing curve applied to the fractional lattice offsets
// before trilinear interpolation.
type Quality int

const (
	// Fast interpolates linearly. Cheapest, shows creases along lattice planes.
	Fast Quality = iota

	// Standard eases with the cubic S-curve. Default for every generator.
	Standard

	// Best eases with the quintic S-curve, removing second-derivative seams.
	Best
)

// String returns the lower-case name of q ("fast", "standard", "best").
func (q Quality) String() string {
	switch q {
	case Fast:
		return "fast"
	case Standard:
		return "standard"
	case Best:
		return "best"
	default:
		return fmt.Sprintf("Quality(%d)", int(q))
	}
}

// ParseQuality converts a case-insensitive name into a Quality.
// "std" is accepted as an alias for "standard".
func ParseQuality(s string) (Quality, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fast":
		return Fast, nil
	case "standard", "std":
		return Standard, nil
	case "best":
		return Best, nil
	default:
		return Standard, fmt.Errorf("kernel: ParseQuality(%q): %w", s, ErrUnknownQuality)
	}
}

// ease maps a fractional offset a ∈ [0,1] through the curve selected by q.
// Unknown values fall back to Standard.
func (q Quality) ease(a float64) float64 {
	switch q {
	case Fast:
		return a
	case Best:
		return interp.SCurve5(a)
	default:
		return interp.SCurve3(a)
	}
}
