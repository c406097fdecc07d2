// pkg/geom/polyline.go
package geom

// DistanceToPolyline returns the minimum distance from p to any segment of
// the polyline. Callers must pass at least one point.
func DistanceToPolyline(p Vec3, points []Vec3) float64 {
	if len(points) == 1 {
		return p.DistanceTo(points[0])
	}
	min := -1.0
	for i := 0; i+1 < len(points); i++ {
		d := DistanceToSegment(p, points[i], points[i+1])
		if min < 0 || d < min {
			min = d
		}
	}
	return min
}

// DistanceToSegment returns the distance from p to the segment ab.
func DistanceToSegment(p, a, b Vec3) float64 {
	ab := b.Sub(a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y + ab.Z*ab.Z
	if lenSq == 0 {
		return p.DistanceTo(a)
	}
	ap := p.Sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y + ap.Z*ab.Z) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.DistanceTo(a.Add(ab.Scale(t)))
}
