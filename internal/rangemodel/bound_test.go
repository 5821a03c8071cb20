package rangemodel

import (
	"errors"
	"testing"
)

func mustParseRange(t *testing.T, s string) Range {
	t.Helper()
	r, err := FromString(s)
	if err != nil {
		t.Fatalf("FromString(%q) returned error: %v", s, err)
	}
	return r
}

func mustNew(t *testing.T, start, stop Limit, step int) Range {
	t.Helper()
	r, err := New(start, stop, step)
	if err != nil {
		t.Fatalf("New(%v,%v,%d) returned error: %v", start, stop, step, err)
	}
	return r
}

func TestNewBound(t *testing.T) {
	if _, err := NewBound(At(10), At(5)); err == nil {
		t.Fatalf("expected NewBound(10,5) to return error, got nil")
	} else {
		var typeErr *TypeError
		if !errors.As(err, &typeErr) {
			t.Fatalf("NewBound(10,5) error = %v, want *TypeError", err)
		}
	}

	cases := []struct {
		name        string
		start, stop Limit
		lower       bool
		upper       bool
		notEmpty    bool
	}{
		{"finite", At(0), At(10), true, true, true},
		{"empty", At(5), At(5), true, true, false},
		{"open_stop", At(0), Unbounded(), true, false, true},
		{"open_both", Unbounded(), Unbounded(), false, false, true},
	}
	for _, tc := range cases {
		b, err := NewBound(tc.start, tc.stop)
		if err != nil {
			t.Fatalf("%s: NewBound() returned error: %v", tc.name, err)
		}
		if b.IsLowerBounded() != tc.lower {
			t.Fatalf("%s: IsLowerBounded() = %v, want %v", tc.name, b.IsLowerBounded(), tc.lower)
		}
		if b.IsUpperBounded() != tc.upper {
			t.Fatalf("%s: IsUpperBounded() = %v, want %v", tc.name, b.IsUpperBounded(), tc.upper)
		}
		if b.IsNotEmpty() != tc.notEmpty {
			t.Fatalf("%s: IsNotEmpty() = %v, want %v", tc.name, b.IsNotEmpty(), tc.notEmpty)
		}
	}
}

func TestBound_Contains(t *testing.T) {
	b, _ := BoundOf(5, 100)
	cases := []struct {
		val int
		exp bool
	}{
		{4, false},
		{5, true},
		{99, true},
		{100, false},
	}
	for _, tc := range cases {
		if got := b.Contains(tc.val); got != tc.exp {
			t.Fatalf("Contains(%d) = %v, want %v (bound=%v)", tc.val, got, tc.exp, b)
		}
	}
}

func TestBound_ContainsRange(t *testing.T) {
	finite, _ := BoundOf(5, 100)
	openStop, _ := NewBound(At(0), Unbounded())

	cases := []struct {
		name  string
		bound Bound
		r     Range
		exp   bool
	}{
		{"below", finite, mustParseRange(t, "1:3"), false},
		{"inside", finite, mustParseRange(t, "5:99"), true},
		{"touches_stop", finite, mustParseRange(t, "5:100"), false},
		{"empty_inside", finite, mustParseRange(t, "10:5"), true},
		{"empty_below", finite, mustParseRange(t, "3:1"), false},
		{"open_start", finite, mustParseRange(t, ":50"), false},
		{"open_start_unlimited", Unlimited(), mustParseRange(t, ":50"), true},
		{"open_stop_finite", finite, mustParseRange(t, "50:"), false},
		{"open_stop_open_bound", openStop, mustParseRange(t, "50:"), true},
		{"stepped_last_value_inside", finite, mustNew(t, At(5), At(101), 10), true},
		{"counting_down", finite, mustNew(t, At(99), At(4), -1), true},
		{"counting_down_too_low", finite, mustNew(t, At(99), At(3), -1), false},
	}

	for _, tc := range cases {
		if got := tc.bound.ContainsRange(tc.r); got != tc.exp {
			t.Fatalf("%s: ContainsRange(%v) = %v, want %v (bound=%v)", tc.name, tc.r, got, tc.exp, tc.bound)
		}
	}
}
