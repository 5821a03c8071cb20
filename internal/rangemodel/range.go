package rangemodel

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
	"strconv"
	"strings"
)

// DefaultDelimiter separates start and stop in the text form of a range.
const DefaultDelimiter = ":"

// Range is the progression start, start+step, start+2*step, ... that stops
// before reaching stop. Ranges are immutable.
type Range struct {
	start Limit
	stop  Limit
	step  int
}

// New returns the range [start, stop) advancing by step.
//
// Rules:
//   - step must not be zero.
//   - If either end is unbounded the step must be 1 or -1.
func New(start, stop Limit, step int) (Range, error) {
	if step == 0 {
		return Range{}, typeErrorf("range step must not be zero")
	}
	if (start.unbounded || stop.unbounded) && step != 1 && step != -1 {
		return Range{}, typeErrorf("range with an infinite end must have a step of 1 or -1, got %d", step)
	}
	return Range{start: start, stop: stop, step: step}, nil
}

// Span returns the finite unit-step range [start, stop).
func Span(start, stop int) Range {
	return Range{start: At(start), stop: At(stop), step: 1}
}

// FromString parses the text form of a range using DefaultDelimiter.
func FromString(text string) (Range, error) {
	return FromStringDelim(text, DefaultDelimiter)
}

// FromStringDelim parses value and returns a unit-step Range.
//
// Supported formats (shown with ":" as the delimiter):
//   - N    -> the single value N
//   - N:M  -> N through M, both inclusive
//   - N:   -> N and everything above
//   - :M   -> everything up to and including M
//   - :    -> everything
//
// The upper value in text is inclusive; the stored stop is exclusive.
func FromStringDelim(text, delimiter string) (Range, error) {
	if delimiter == "" {
		return Range{}, &FormatError{Input: text, Reason: "empty delimiter"}
	}
	if strings.Count(text, delimiter) > 1 {
		return Range{}, &FormatError{Input: text, Reason: fmt.Sprintf("more than one %q", delimiter)}
	}

	startText, stopText, found := strings.Cut(text, delimiter)
	if !found {
		stopText = startText
	}

	r := Range{start: Unbounded(), stop: Unbounded(), step: 1}
	if startText != "" {
		n, err := parseInt(text, startText, found, "start")
		if err != nil {
			return Range{}, err
		}
		r.start = At(n)
	}
	if stopText != "" {
		n, err := parseInt(text, stopText, found, "stop")
		if err != nil {
			return Range{}, err
		}
		if n == math.MaxInt {
			return Range{}, &FormatError{Input: text, Reason: fmt.Sprintf("stop %q is too large", stopText)}
		}
		r.stop = At(n + 1)
	}
	return r, nil
}

func parseInt(input, tok string, delimited bool, side string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err == nil {
		return n, nil
	}
	reason := fmt.Sprintf("%q is not an integer", tok)
	if delimited {
		reason = side + " " + reason
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		err = numErr.Err
	}
	return 0, &FormatError{Input: input, Reason: reason, Err: err}
}

// Start returns the first value of r, unbounded for -∞.
func (r Range) Start() Limit { return r.start }

// Stop returns the exclusive stop of r, unbounded for +∞.
func (r Range) Stop() Limit { return r.stop }

// Step returns the distance between consecutive values, never 0.
func (r Range) Step() int { return r.step }

// TrueEnd returns the last value produced by iterating r. It is
// EndKindInfinite when iteration never stops and EndKindEmpty when r
// produces nothing.
func (r Range) TrueEnd() End {
	if r.step > 0 {
		if r.stop.unbounded {
			return End{Kind: EndKindInfinite}
		}
		if r.start.unbounded {
			return End{Kind: EndKindValue, Value: r.stop.value - 1}
		}
		if r.start.value >= r.stop.value {
			return End{Kind: EndKindEmpty}
		}
		// unsigned arithmetic keeps the distance exact near the int limits
		n := (uint(r.stop.value-1) - uint(r.start.value)) / uint(r.step)
		return End{Kind: EndKindValue, Value: int(uint(r.start.value) + n*uint(r.step))}
	}

	// counting down from -∞ or towards +∞ never yields anything
	if r.start.unbounded || r.stop.unbounded || r.start.value <= r.stop.value {
		return End{Kind: EndKindEmpty}
	}
	mag := uint(-r.step)
	n := (uint(r.start.value) - uint(r.stop.value) - 1) / mag
	return End{Kind: EndKindValue, Value: int(uint(r.start.value) - n*mag)}
}

// Values returns a lazy sequence over r. Every call to the sequence starts
// again from the first value. It fails when either end is unbounded.
func (r Range) Values() (iter.Seq[int], error) {
	if r.start.unbounded || r.stop.unbounded {
		return nil, fmt.Errorf("%v: %w", r, ErrUnbounded)
	}
	start, step := r.start.value, r.step
	last, ok := r.TrueEnd().Int()
	return func(yield func(int) bool) {
		if !ok {
			return
		}
		for i := start; ; i += step {
			if !yield(i) || i == last {
				return
			}
		}
	}, nil
}

// Ints collects Values into a slice.
func (r Range) Ints() ([]int, error) {
	seq, err := r.Values()
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// Contains reports whether iterating r would produce v.
func (r Range) Contains(v int) bool {
	if r.step > 0 {
		if !r.stop.unbounded && v >= r.stop.value {
			return false
		}
		if r.start.unbounded {
			return true
		}
		return v >= r.start.value && (uint(v)-uint(r.start.value))%uint(r.step) == 0
	}
	if r.start.unbounded || r.stop.unbounded {
		return false
	}
	return v <= r.start.value && v > r.stop.value && (uint(r.start.value)-uint(v))%uint(-r.step) == 0
}

// IsNotEmpty reports whether r produces at least one value.
func (r Range) IsNotEmpty() bool {
	return r.TrueEnd().Kind != EndKindEmpty
}

// IsLowerBounded reports whether the start of r is finite.
func (r Range) IsLowerBounded() bool {
	return !r.start.unbounded
}

// IsUpperBounded reports whether the stop of r is finite.
func (r Range) IsUpperBounded() bool {
	return !r.stop.unbounded
}

// span returns the lowest and highest values r covers. Empty ranges fall
// back to their literal endpoints: [start, stop-1] counting up and
// [stop+1, start] counting down.
func (r Range) span() (lo, hi point) {
	end := r.TrueEnd()
	switch end.Kind {
	case EndKindEmpty:
		if r.step > 0 {
			return lowerPoint(r.start), upperPoint(r.stop).add(-1)
		}
		return upperPoint(r.stop).add(1), lowerPoint(r.start)
	case EndKindInfinite:
		return lowerPoint(r.start), posInf
	}
	if r.step > 0 {
		return lowerPoint(r.start), finite(end.Value)
	}
	return finite(end.Value), lowerPoint(r.start)
}

// String returns interval notation, e.g. "[1,4)", "(-∞,5)" or "[10,0) by -2".
func (r Range) String() string {
	left := "("
	leftStr := "-∞"
	if !r.start.unbounded {
		left = "["
		leftStr = strconv.Itoa(r.start.value)
	}
	rightStr := "∞"
	if !r.stop.unbounded {
		rightStr = strconv.Itoa(r.stop.value)
	}
	s := fmt.Sprintf("%s%s,%s)", left, leftStr, rightStr)
	if r.step != 1 {
		s += fmt.Sprintf(" by %d", r.step)
	}
	return s
}

// Text returns the form accepted by FromString, e.g. "1:3", "5", ":4" or
// "7:". Ranges whose step is not 1 have no text form and fall back to
// String.
func (r Range) Text() string {
	if r.step != 1 {
		return r.String()
	}
	switch {
	case r.start.unbounded && r.stop.unbounded:
		return DefaultDelimiter
	case r.start.unbounded:
		return DefaultDelimiter + strconv.Itoa(r.stop.value-1)
	case r.stop.unbounded:
		return strconv.Itoa(r.start.value) + DefaultDelimiter
	case r.stop.value-1 == r.start.value:
		return strconv.Itoa(r.start.value)
	}
	return strconv.Itoa(r.start.value) + DefaultDelimiter + strconv.Itoa(r.stop.value-1)
}
