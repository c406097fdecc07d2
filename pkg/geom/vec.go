// pkg/geom/vec.go
package geom

import "math"

// Vec3 is a point or direction in world space. Y is up; the playfield
// lies in the XZ plane.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// DistanceTo returns the Euclidean distance between v and o.
func (v Vec3) DistanceTo(o Vec3) float64 {
	return v.Sub(o).Length()
}

// Midpoint returns the arithmetic mean of a and b.
func Midpoint(a, b Vec3) Vec3 {
	return Vec3{(a.X + b.X) / 2, (a.Y + b.Y) / 2, (a.Z + b.Z) / 2}
}

// Lerp returns the point a fraction t of the way from a to b.
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

// Interpolate walks the straight line from `from` to `to` at steps of at
// most maxStep, excluding the start point and always including `to` itself
// as the final element. An empty slice is returned only when the two points
// coincide.
func Interpolate(from, to Vec3, maxStep float64) []Vec3 {
	dist := from.DistanceTo(to)
	if dist == 0 {
		return nil
	}
	steps := int(math.Ceil(dist / maxStep))
	points := make([]Vec3, 0, steps)
	for i := 1; i < steps; i++ {
		points = append(points, Lerp(from, to, float64(i)/float64(steps)))
	}
	points = append(points, to)
	return points
}
