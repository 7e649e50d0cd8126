package geo

import "math/bits"

const (
	// piFixed approximates π scaled by Scale.
	piFixed = 3_141_592

	earthRadiusMeters = 6_371_000

	quarterTurn = 90 * Scale
)

// Distance parses both locations and returns the approximate distance
// between them in meters.
func Distance(a, b string) (uint64, error) {
	ca, err := ParseLocation(a)
	if err != nil {
		return 0, err
	}
	cb, err := ParseLocation(b)
	if err != nil {
		return 0, err
	}
	return DistanceBetween(ca, cb), nil
}

// DistanceBetween is a flat-earth estimate computed with integer arithmetic
// only: degrees become fixed-point radians, the cosine of the first latitude
// is approximated linearly, and the planar offsets are combined with Sqrt.
//
// Inputs must satisfy InRange. The pair is ordered canonically first, so the
// result does not depend on argument order.
func DistanceBetween(a, b Coordinate) uint64 {
	if less(b, a) {
		a, b = b, a
	}

	lat1, lon1 := toRadians(a.Latitude), toRadians(a.Longitude)
	lat2, lon2 := toRadians(b.Latitude), toRadians(b.Longitude)

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	cosLat1 := (quarterTurn - abs(a.Latitude)) * Scale / quarterTurn

	x := dLat * earthRadiusMeters / Scale
	y := eastWest(dLon, cosLat1)

	ux, uy := uint64(abs(x)), uint64(abs(y))
	return Sqrt(ux*ux + uy*uy)
}

// Sqrt returns floor(sqrt(z)) using integer Newton-Raphson iteration.
func Sqrt(z uint64) uint64 {
	if z == 0 {
		return 0
	}
	y := z
	// (z+1)/2 without overflowing at MaxUint64
	n := z/2 + z%2
	for n < y {
		y = n
		n = (z/n + n) / 2
	}
	return y
}

func toRadians(deg int64) int64 {
	return deg * piFixed / (180 * Scale)
}

// eastWest computes dLon * R * cosLat1 / Scale² truncated toward zero.
// The intermediate product can exceed 64 bits, so it is carried in 128.
func eastWest(dLon, cosLat1 int64) int64 {
	negative := (dLon < 0) != (cosLat1 < 0)

	a := uint64(abs(dLon)) * earthRadiusMeters
	hi, lo := bits.Mul64(a, uint64(abs(cosLat1)))
	q, _ := bits.Div64(hi, lo, Scale*Scale)

	if negative {
		return -int64(q)
	}
	return int64(q)
}

func less(a, b Coordinate) bool {
	if a.Latitude != b.Latitude {
		return a.Latitude < b.Latitude
	}
	return a.Longitude < b.Longitude
}
