//go:generate go run github.com/dmarkham/enumer -type=EndKind -trimprefix=EndKind -transform=kebab
package rangemodel

import "strconv"

// Limit is one end of a Range: a finite integer or unbounded. An unbounded
// start stands for -∞ and an unbounded stop for +∞.
type Limit struct {
	value     int
	unbounded bool
}

// At returns the finite limit n.
func At(n int) Limit {
	return Limit{value: n}
}

// Unbounded returns an infinite limit.
func Unbounded() Limit {
	return Limit{unbounded: true}
}

// Value returns the finite value of l and true, or 0 and false when l is
// unbounded.
func (l Limit) Value() (int, bool) {
	if l.unbounded {
		return 0, false
	}
	return l.value, true
}

// IsUnbounded reports whether l is infinite.
func (l Limit) IsUnbounded() bool {
	return l.unbounded
}

// EndKind tells what iterating a Range ends on.
type EndKind int

const (
	EndKindEmpty EndKind = iota
	EndKindInfinite
	EndKindValue
)

// End is the result of Range.TrueEnd. Value is meaningful only when Kind is
// EndKindValue.
type End struct {
	Kind  EndKind
	Value int
}

// Int returns the last value and true when e is a finite end.
func (e End) Int() (int, bool) {
	if e.Kind != EndKindValue {
		return 0, false
	}
	return e.Value, true
}

// String returns the value, or "empty" / "infinite".
func (e End) String() string {
	if e.Kind == EndKindValue {
		return strconv.Itoa(e.Value)
	}
	return e.Kind.String()
}
