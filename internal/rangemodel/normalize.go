package rangemodel

import "slices"

// Normalize returns the values of d as the shortest ascending list of
// unit-step ranges.
//
// Steps:
//  1. drop components that produce nothing
//  2. turn the rest into closed intervals [lo, hi] (a component with a step
//     other than 1 or -1 contributes one interval per value)
//  3. sort by lo and merge intervals that overlap or touch
//  4. convert back to ranges, leaving infinite sides unbounded
func (d *DiscontinuousRange) Normalize() []Range {
	type closed struct {
		lo, hi point
	}

	var spans []closed
	for _, r := range d.ranges {
		if !r.IsNotEmpty() {
			continue
		}
		if r.step == 1 || r.step == -1 {
			lo, hi := r.span()
			spans = append(spans, closed{lo: lo, hi: hi})
			continue
		}
		seq, _ := r.Values() // stepped ranges are always finite
		for v := range seq {
			spans = append(spans, closed{lo: finite(v), hi: finite(v)})
		}
	}
	if len(spans) == 0 {
		return nil
	}

	slices.SortFunc(spans, func(a, b closed) int {
		if c := comparePoints(a.lo, b.lo); c != 0 {
			return c
		}
		return comparePoints(a.hi, b.hi)
	})

	merged := spans[:1]
	for _, cur := range spans[1:] {
		last := &merged[len(merged)-1]
		// integer neighbours merge too: [1,3] and [4,6] become [1,6]
		if comparePoints(last.hi.add(1), cur.lo) >= 0 {
			if comparePoints(cur.hi, last.hi) > 0 {
				last.hi = cur.hi
			}
			continue
		}
		merged = append(merged, cur)
	}

	out := make([]Range, 0, len(merged))
	for _, m := range merged {
		r := Range{start: Unbounded(), stop: Unbounded(), step: 1}
		if m.lo.inf == 0 {
			r.start = At(m.lo.v)
		}
		// a highest value of math.MaxInt has no exclusive stop, so it stays open
		if stop := m.hi.add(1); stop.inf == 0 {
			r.stop = At(stop.v)
		}
		out = append(out, r)
	}
	return out
}

// NormalizedText renders Normalize in the form accepted by Parse. It is
// empty when d produces no values.
func (d *DiscontinuousRange) NormalizedText() string {
	return joinText(d.Normalize())
}
