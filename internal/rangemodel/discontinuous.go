package rangemodel

import (
	"iter"
	"slices"
	"strings"
	"unicode"
)

// ComponentSeparator separates component ranges in a discontinuous range.
const ComponentSeparator = ","

// DiscontinuousRange is an ordered list of component ranges, each lying
// inside a common Bound.
//   - Values iterates the components in order, so repeated or overlapping
//     components yield repeated values.
//   - With forceIncreasing every component counts upwards and ends at or
//     before the start of the next one.
type DiscontinuousRange struct {
	ranges          []Range
	bound           Bound
	forceIncreasing bool
}

// Parse parses text such as "1:5,8,10:12" against the bound
// [minValue, maxValue). Whitespace anywhere in text is ignored.
func Parse(text string, minValue, maxValue int, forceIncreasing bool) (*DiscontinuousRange, error) {
	bound, err := BoundOf(minValue, maxValue)
	if err != nil {
		return nil, err
	}
	return ParseBound(text, bound, forceIncreasing)
}

// ParseBound is Parse with an explicit, possibly open, bound.
func ParseBound(text string, bound Bound, forceIncreasing bool) (*DiscontinuousRange, error) {
	pieces := splitComponents(text)
	ranges := make([]Range, 0, len(pieces))
	for _, piece := range pieces {
		r, err := parseComponent(text, piece)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return NewDiscontinuousRange(ranges, bound, forceIncreasing)
}

// NewDiscontinuousRange validates ranges against bound and, when
// forceIncreasing is set, against each other.
func NewDiscontinuousRange(ranges []Range, bound Bound, forceIncreasing bool) (*DiscontinuousRange, error) {
	if len(ranges) == 0 {
		return nil, validationErrorf("at least one range is required")
	}
	for _, r := range ranges {
		if err := checkBound(r, bound); err != nil {
			return nil, err
		}
	}
	if forceIncreasing {
		if errs := checkIncreasing(ranges); len(errs) > 0 {
			return nil, errs[0]
		}
	}
	return &DiscontinuousRange{
		ranges:          slices.Clone(ranges),
		bound:           bound,
		forceIncreasing: forceIncreasing,
	}, nil
}

func splitComponents(text string) []string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
	return strings.Split(stripped, ComponentSeparator)
}

// parseComponent parses one comma separated piece of text. Unlike
// FromString it rejects an empty piece, so "3," and "," are malformed.
func parseComponent(text, piece string) (Range, error) {
	if piece == "" {
		return Range{}, &FormatError{Input: text, Reason: "empty range"}
	}
	return FromString(piece)
}

func checkBound(r Range, bound Bound) error {
	if bound.ContainsRange(r) {
		return nil
	}
	return validationErrorf("range %s is not within bound %s", r.Text(), bound)
}

// checkIncreasing returns one error per ordering violation.
func checkIncreasing(ranges []Range) []error {
	var errs []error
	for i, r := range ranges {
		if comparePoints(lowerPoint(r.start), upperPoint(r.stop)) >= 0 {
			errs = append(errs, validationErrorf("range %s is not increasing", r.Text()))
		}
		if i+1 == len(ranges) {
			continue
		}
		next := ranges[i+1]
		if comparePoints(upperPoint(r.stop), lowerPoint(next.start)) > 0 {
			errs = append(errs, validationErrorf("range %s must end before range %s starts", r.Text(), next.Text()))
		}
	}
	return errs
}

// Ranges returns a copy of the component ranges.
func (d *DiscontinuousRange) Ranges() []Range {
	return slices.Clone(d.ranges)
}

// Bound returns the bound every component was checked against.
func (d *DiscontinuousRange) Bound() Bound { return d.bound }

// ForceIncreasing reports whether the components were required to ascend.
func (d *DiscontinuousRange) ForceIncreasing() bool { return d.forceIncreasing }

// Values returns a lazy sequence over every component in order. It fails
// when any component is unbounded.
func (d *DiscontinuousRange) Values() (iter.Seq[int], error) {
	seqs := make([]iter.Seq[int], 0, len(d.ranges))
	for _, r := range d.ranges {
		seq, err := r.Values()
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, seq)
	}
	return func(yield func(int) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}, nil
}

// Ints collects Values into a slice.
func (d *DiscontinuousRange) Ints() ([]int, error) {
	seq, err := d.Values()
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// Contains reports whether any component produces v.
func (d *DiscontinuousRange) Contains(v int) bool {
	for _, r := range d.ranges {
		if r.Contains(v) {
			return true
		}
	}
	return false
}

// IsNotEmpty reports whether any component produces a value.
func (d *DiscontinuousRange) IsNotEmpty() bool {
	return slices.ContainsFunc(d.ranges, Range.IsNotEmpty)
}

// IsLowerBounded reports whether no component reaches -∞.
func (d *DiscontinuousRange) IsLowerBounded() bool {
	return !slices.ContainsFunc(d.ranges, func(r Range) bool { return !r.IsLowerBounded() })
}

// IsUpperBounded reports whether no component reaches +∞.
func (d *DiscontinuousRange) IsUpperBounded() bool {
	return !slices.ContainsFunc(d.ranges, func(r Range) bool { return !r.IsUpperBounded() })
}

// String returns the components in the form accepted by Parse.
func (d *DiscontinuousRange) String() string {
	return joinText(d.ranges)
}

func joinText(ranges []Range) string {
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = r.Text()
	}
	return strings.Join(parts, ComponentSeparator)
}
