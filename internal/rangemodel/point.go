package rangemodel

import (
	"cmp"
	"math"
)

// point is an integer extended with -∞ and +∞.
type point struct {
	v   int
	inf int // -1 for -∞, +1 for +∞, 0 when v is meaningful
}

var (
	negInf = point{inf: -1}
	posInf = point{inf: 1}
)

func finite(v int) point { return point{v: v} }

// lowerPoint reads l as a start, where unbounded means -∞.
func lowerPoint(l Limit) point {
	if l.unbounded {
		return negInf
	}
	return finite(l.value)
}

// upperPoint reads l as a stop, where unbounded means +∞.
func upperPoint(l Limit) point {
	if l.unbounded {
		return posInf
	}
	return finite(l.value)
}

// add moves p by d, saturating to ±∞ instead of wrapping past the int range.
func (p point) add(d int) point {
	switch {
	case p.inf != 0:
		return p
	case d > 0 && p.v > math.MaxInt-d:
		return posInf
	case d < 0 && p.v < math.MinInt-d:
		return negInf
	}
	return finite(p.v + d)
}

func comparePoints(a, b point) int {
	if a.inf != b.inf {
		return cmp.Compare(a.inf, b.inf)
	}
	if a.inf != 0 {
		return 0
	}
	return cmp.Compare(a.v, b.v)
}
