package rangemodel

// Bound is the legal domain [start, stop) that component ranges are checked
// against. It is a unit-step Range whose start does not exceed its stop.
type Bound struct {
	r Range
}

// NewBound returns the bound [start, stop). An unbounded start or stop
// leaves that side open.
func NewBound(start, stop Limit) (Bound, error) {
	if comparePoints(lowerPoint(start), upperPoint(stop)) > 0 {
		return Bound{}, typeErrorf("bound start %d is greater than stop %d", start.value, stop.value)
	}
	return Bound{r: Range{start: start, stop: stop, step: 1}}, nil
}

// BoundOf returns the finite bound [minValue, maxValue).
func BoundOf(minValue, maxValue int) (Bound, error) {
	return NewBound(At(minValue), At(maxValue))
}

// Range returns b as a plain unit-step range.
func (b Bound) Range() Range { return b.r }

// Start returns the lowest allowed value, unbounded for -∞.
func (b Bound) Start() Limit { return b.r.start }

// Stop returns the exclusive upper limit, unbounded for +∞.
func (b Bound) Stop() Limit { return b.r.stop }

// Contains reports whether start <= v < stop.
func (b Bound) Contains(v int) bool {
	return b.r.Contains(v)
}

// ContainsRange reports whether every value r spans lies inside b.
//
// The span of r runs from its lowest to its highest produced value; ranges
// that produce nothing are judged by their literal endpoints. An infinite
// side of the span fits only an unbounded side of b.
func (b Bound) ContainsRange(r Range) bool {
	lo, hi := r.span()
	if comparePoints(lo, lowerPoint(b.r.start)) < 0 {
		return false
	}
	if b.r.stop.unbounded {
		return true
	}
	return comparePoints(hi, upperPoint(b.r.stop)) < 0
}

// IsNotEmpty reports whether b allows at least one value.
func (b Bound) IsNotEmpty() bool { return b.r.IsNotEmpty() }

// IsLowerBounded reports whether b has a finite start.
func (b Bound) IsLowerBounded() bool { return b.r.IsLowerBounded() }

// IsUpperBounded reports whether b has a finite stop.
func (b Bound) IsUpperBounded() bool { return b.r.IsUpperBounded() }

// String returns interval notation, e.g. "[0,100)".
func (b Bound) String() string {
	return b.r.String()
}
