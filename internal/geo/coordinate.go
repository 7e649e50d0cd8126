package geo

import (
	"fmt"
	"strings"

	"github.com/nradhesh/Outbreak-blockchain/pkg/e"
)

// Scale is the fixed-point factor applied to degrees.
const Scale = 1_000_000

const (
	MaxLatitude  = 90 * Scale
	MaxLongitude = 180 * Scale

	// maxWholeDegrees keeps the fixed-point value far inside int64.
	maxWholeDegrees = 1_000_000
)

// Coordinate is a latitude/longitude pair in degrees scaled by Scale.
type Coordinate struct {
	Latitude  int64 `json:"latitude"`
	Longitude int64 `json:"longitude"`
}

func (c Coordinate) String() string {
	return formatFixed(c.Latitude) + "," + formatFixed(c.Longitude)
}

// InRange reports whether the coordinate lies within ±90 / ±180 degrees.
func (c Coordinate) InRange() bool {
	return abs(c.Latitude) <= MaxLatitude && abs(c.Longitude) <= MaxLongitude
}

// ParseError reports coordinate text that is malformed or, when OutOfRange
// is set, well formed but outside ±90 / ±180 degrees. It matches e.ErrParse
// in both cases and e.ErrOutOfRange only in the latter.
type ParseError struct {
	Input      string
	Reason     string
	OutOfRange bool
}

func (pe *ParseError) Error() string {
	if pe == nil {
		return ""
	}
	return fmt.Sprintf("%s: %q: %s", e.ErrParse.Error(), pe.Input, pe.Reason)
}

func (pe *ParseError) Unwrap() []error {
	if pe.OutOfRange {
		return []error{e.ErrParse, e.ErrOutOfRange}
	}
	return []error{e.ErrParse}
}

// Parse converts "lat,lon" text into a fixed-point Coordinate.
//
// Only the first ',' separates the two values. Each value is an optionally
// negative decimal; digits past the sixth fractional place are truncated.
// Degree ranges are not checked here, see ParseLocation.
func Parse(s string) (Coordinate, error) {
	idx := strings.IndexByte(s, ',')
	if idx < 0 {
		return Coordinate{}, &ParseError{Input: s, Reason: "missing ',' separator"}
	}

	lat, err := parseFixed(s[:idx])
	if err != nil {
		return Coordinate{}, &ParseError{Input: s, Reason: "latitude: " + err.Error()}
	}
	lon, err := parseFixed(s[idx+1:])
	if err != nil {
		return Coordinate{}, &ParseError{Input: s, Reason: "longitude: " + err.Error()}
	}

	return Coordinate{Latitude: lat, Longitude: lon}, nil
}

// ParseLocation parses s and additionally requires a nominal degree range.
func ParseLocation(s string) (Coordinate, error) {
	c, err := Parse(s)
	if err != nil {
		return Coordinate{}, err
	}
	if !c.InRange() {
		return Coordinate{}, &ParseError{Input: s, Reason: "outside ±90/±180 degrees", OutOfRange: true}
	}
	return c, nil
}

func parseFixed(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}

	var (
		negative   bool
		fractional bool
		digits     int
		whole      int64
		frac       int64
		weight     int64 = Scale / 10
	)

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '-' && i == 0:
			negative = true
		case ch == '.':
			if fractional {
				return 0, fmt.Errorf("second '.' at offset %d", i)
			}
			fractional = true
		case ch >= '0' && ch <= '9':
			d := int64(ch - '0')
			digits++
			if fractional {
				frac += d * weight
				weight /= 10
				continue
			}
			whole = whole*10 + d
			if whole > maxWholeDegrees {
				return 0, fmt.Errorf("value too large")
			}
		default:
			return 0, fmt.Errorf("invalid character %q at offset %d", ch, i)
		}
	}

	if digits == 0 {
		return 0, fmt.Errorf("no digits")
	}

	v := whole*Scale + frac
	if negative {
		v = -v
	}
	return v, nil
}

func formatFixed(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
	}
	a := abs(v)
	return fmt.Sprintf("%s%d.%06d", sign, a/Scale, a%Scale)
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
