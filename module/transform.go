package module

import "math"

// ScalePoint multiplies the input coordinates before evaluating its source.
type ScalePoint struct {
	unary
	scale [3]float64
}

// NewScalePoint returns an unwired ScalePoint with scale (1, 1, 1).
func NewScalePoint() *ScalePoint {
	return &ScalePoint{unary: newUnary("ScalePoint"), scale: [3]float64{1, 1, 1}}
}

// Scale returns the per-axis multipliers.
func (s *ScalePoint) Scale() (x, y, z float64) { return s.scale[0], s.scale[1], s.scale[2] }

// SetScale sets the per-axis multipliers.
func (s *ScalePoint) SetScale(x, y, z float64) { s.scale = [3]float64{x, y, z} }

// Value implements Module. It panics if the source is unset.
func (s *ScalePoint) Value(x, y, z float64) float64 {
	return s.must(0).Value(x*s.scale[0], y*s.scale[1], z*s.scale[2])
}

// TranslatePoint offsets the input coordinates before evaluating its source.
type TranslatePoint struct {
	unary
	offset [3]float64
}

// NewTranslatePoint returns an unwired TranslatePoint with offset (0, 0, 0).
func NewTranslatePoint() *TranslatePoint {
	return &TranslatePoint{unary: newUnary("TranslatePoint")}
}

// Translation returns the per-axis offsets.
func (t *TranslatePoint) Translation() (x, y, z float64) {
	return t.offset[0], t.offset[1], t.offset[2]
}

// SetTranslation sets the per-axis offsets.
func (t *TranslatePoint) SetTranslation(x, y, z float64) { t.offset = [3]float64{x, y, z} }

// Value implements Module. It panics if the source is unset.
func (t *TranslatePoint) Value(x, y, z float64) float64 {
	return t.must(0).Value(x+t.offset[0], y+t.offset[1], z+t.offset[2])
}

// RotatePoint rotates the input point around the origin before evaluating
// its source. Angles are in degrees.
type RotatePoint struct {
	unary
	angles [3]float64
	m      [3][3]float64
}

// NewRotatePoint returns an unwired RotatePoint with all angles 0.
func NewRotatePoint() *RotatePoint {
	r := &RotatePoint{unary: newUnary("RotatePoint")}
	r.SetAngles(0, 0, 0)

	return r
}

// Angles returns the rotation around the x, y and z axes in degrees.
func (r *RotatePoint) Angles() (x, y, z float64) { return r.angles[0], r.angles[1], r.angles[2] }

// SetAngles sets the rotation around the x, y and z axes in degrees and
// rebuilds the rotation matrix.
func (r *RotatePoint) SetAngles(x, y, z float64) {
	xs, xc := math.Sincos(x * math.Pi / 180)
	ys, yc := math.Sincos(y * math.Pi / 180)
	zs, zc := math.Sincos(z * math.Pi / 180)

	// Rows produce the rotated x, y and z; columns weight the input x, y and z.
	r.m = [3][3]float64{
		{ys*xs*zs + yc*zc, xc * zs, ys*zc - yc*xs*zs},
		{ys*xs*zc - yc*zs, xc * zc, -yc*xs*zc - ys*zs},
		{-ys * xc, xs, yc * xc},
	}
	r.angles = [3]float64{x, y, z}
}

// Value implements Module. It panics if the source is unset.
func (r *RotatePoint) Value(x, y, z float64) float64 {
	m := &r.m
	nx := m[0][0]*x + m[0][1]*y + m[0][2]*z
	ny := m[1][0]*x + m[1][1]*y + m[1][2]*z
	nz := m[2][0]*x + m[2][1]*y + m[2][2]*z

	return r.must(0).Value(nx, ny, nz)
}
