// Package hex provides axial hex-coordinate math: distance, neighbors,
// cube rounding, pixel conversion, and straight-line interpolation.
// All functions are pure; the package holds no state.
package hex

import "math"

// Axial is a hex position in axial coordinates (pointy-top layout).
// The implicit third cube coordinate is S() == -Q-R.
type Axial struct {
	Q int
	R int
}

// S returns the derived third cube coordinate.
//
// Postcondition: a.Q + a.R + a.S() == 0.
func (a Axial) S() int { return -a.Q - a.R }

// Add returns the component-wise sum of a and b.
func (a Axial) Add(b Axial) Axial {
	return Axial{Q: a.Q + b.Q, R: a.R + b.R}
}

// Directions is the fixed neighbor offset order. The order matters: tie-breaks
// in movement selection resolve to the first matching direction, so it must
// never be reordered.
var Directions = [6]Axial{
	{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {-1, 1}, {0, 1},
}

// Neighbors returns the six adjacent coordinates in Directions order,
// unfiltered by any board bounds.
//
// Postcondition: len(result) == 6; Distance(a, result[i]) == 1 for all i.
func (a Axial) Neighbors() [6]Axial {
	var out [6]Axial
	for i, d := range Directions {
		out[i] = a.Add(d)
	}
	return out
}

// Distance returns the exact hex distance between a and b.
//
// Postcondition: Distance(a, b) == Distance(b, a); Distance(a, a) == 0.
func Distance(a, b Axial) int {
	dq := a.Q - b.Q
	dr := a.R - b.R
	return (abs(dq) + abs(dq+dr) + abs(dr)) / 2
}

// Round converts fractional cube coordinates to the nearest hex.
// All three components are rounded independently, then the component with
// the largest rounding error is recomputed from the other two so the
// zero-sum cube invariant holds exactly. A naive independent round of all
// three breaks adjacency near cell boundaries.
//
// Postcondition: result.Q + result.R + result.S() == 0.
func Round(q, r, s float64) Axial {
	rq := math.Round(q)
	rr := math.Round(r)
	rs := math.Round(s)

	dq := math.Abs(rq - q)
	dr := math.Abs(rr - r)
	ds := math.Abs(rs - s)

	switch {
	case dq > dr && dq > ds:
		rq = -rr - rs
	case dr > ds:
		rr = -rq - rs
	default:
		// s has the largest error; it is derived, so the rounded q and r stand.
	}

	return Axial{Q: int(rq), R: int(rr)}
}

// ToPixel converts a to pixel space for a pointy-top layout with the given
// hex size and origin.
func ToPixel(a Axial, size, originX, originY float64) (x, y float64) {
	x = size*(math.Sqrt(3)*float64(a.Q)+math.Sqrt(3)/2*float64(a.R)) + originX
	y = size*(3.0/2.0*float64(a.R)) + originY
	return x, y
}

// FromPixel converts a pixel position to the nearest hex, inverting ToPixel.
//
// Postcondition: FromPixel(ToPixel(a, ...)) == a for any a.
func FromPixel(x, y, size, originX, originY float64) Axial {
	px := (x - originX) / size
	py := (y - originY) / size
	q := math.Sqrt(3)/3*px - 1.0/3.0*py
	r := 2.0 / 3.0 * py
	return Round(q, r, -q-r)
}

// LineSamples returns Distance(a,b)+1 evenly spaced hexes along the straight
// cube-coordinate line from a to b, including both endpoints. Each sample is
// the invariant-preserving Round of the interpolated cube position.
//
// Postcondition: result[0] == a and result[len-1] == b; len == Distance(a,b)+1.
func LineSamples(a, b Axial) []Axial {
	n := Distance(a, b)
	out := make([]Axial, 0, n+1)
	if n == 0 {
		return append(out, a)
	}
	aq, ar, as := float64(a.Q), float64(a.R), float64(a.S())
	bq, br, bs := float64(b.Q), float64(b.R), float64(b.S())
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		out = append(out, Round(lerp(aq, bq, t), lerp(ar, br, t), lerp(as, bs, t)))
	}
	return out
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
