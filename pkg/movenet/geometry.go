package movenet

import "math"

// Point is a position in the normalized coordinate space of a frame.
type Point struct {
	X float64
	Y float64
}

// Angle returns the angle at vertex formed by p1 and p3, in degrees,
// always inside [0, 180]. The angle is undefined when either segment has
// zero length; Angle returns 0 there, so a minimum-angle pass criterion
// fails instead of guessing.
func Angle(p1, vertex, p3 Point) float64 {
	v1x, v1y := p1.X-vertex.X, p1.Y-vertex.Y
	v2x, v2y := p3.X-vertex.X, p3.Y-vertex.Y

	n1 := math.Hypot(v1x, v1y)
	n2 := math.Hypot(v2x, v2y)
	if n1 == 0 || n2 == 0 {
		return 0
	}

	cos := (v1x*v2x + v1y*v2y) / (n1 * n2)
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos) * 180 / math.Pi
}
