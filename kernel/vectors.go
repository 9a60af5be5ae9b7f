package kernel

import "math"

// gradientCount is the number of entries in the gradient table.
// The hash is masked to 8 bits, so it must stay 256.
const gradientCount = 256

// gradientTableSeed fixes the shuffle that decorrelates neighbouring table
// entries. Changing it changes every noise value produced by the package.
const gradientTableSeed uint64 = 0x6c76_6e6f_6973_65

// gradients is built once during package initialisation and never written again.
var gradients = buildGradientTable()

// Gradient returns the i-th unit gradient vector. i is taken modulo 256.
func Gradient(i int) [3]float64 {
	return gradients[i&(gradientCount-1)]
}

// buildGradientTable places 256 points evenly on the unit sphere (golden-angle
// spiral) and shuffles them with a fixed-seed SplitMix64 stream so that
// consecutive hash values do not map to neighbouring directions.
func buildGradientTable() [gradientCount][3]float64 {
	var table [gradientCount][3]float64

	// 1) Golden-angle spiral: y runs from near +1 to near −1 in equal steps,
	//    the azimuth advances by the golden angle each step.
	goldenAngle := math.Pi * (3.0 - math.Sqrt(5.0))
	for i := 0; i < gradientCount; i++ {
		y := 1.0 - (float64(i)+0.5)*2.0/gradientCount
		r := math.Sqrt(1.0 - y*y)
		theta := goldenAngle * float64(i)
		table[i] = [3]float64{math.Cos(theta) * r, y, math.Sin(theta) * r}
	}

	// 2) Deterministic Fisher-Yates shuffle.
	state := gradientTableSeed
	for i := gradientCount - 1; i > 0; i-- {
		state = splitMix64(state)
		j := int(state % uint64(i+1))
		table[i], table[j] = table[j], table[i]
	}

	return table
}

// splitMix64 advances and finalises a SplitMix64 state.
func splitMix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return x ^ (x >> 31)
}
