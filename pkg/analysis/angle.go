package analysis

import "math"

//Angle returns the interior angle at vertex b formed by rays b->a and b->c, in degrees within [0,180].
//Callers must not pass a zero length segment (a==b or c==b).
func Angle(a, b, c Point) float64 {
	radians := math.Atan2(c.Y-b.Y, c.X-b.X) - math.Atan2(a.Y-b.Y, a.X-b.X)
	angle := math.Abs(radians * 180.0 / math.Pi)

	if angle > 180.0 {
		angle = 360 - angle
	}

	return angle
}
