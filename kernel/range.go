package kernel

import "math"

// int32Half is 2^30, the folding threshold used by MakeInt32Range.
const int32Half = 1073741824.0

// MakeInt32Range folds n back into [−2^30, 2^30) when its magnitude reaches
// 2^30. Values inside the range are returned unchanged. The fold doubles the
// remainder modulo 2^30 and re-centres it, so lattice indices derived from the
// result fit in an int32.
func MakeInt32Range(n float64) float64 {
	switch {
	case n >= int32Half:
		return 2.0*math.Mod(n, int32Half) - int32Half
	case n <= -int32Half:
		return 2.0*math.Mod(n, int32Half) + int32Half
	default:
		return n
	}
}
