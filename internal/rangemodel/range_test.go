package rangemodel

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestFromString_Iterates(t *testing.T) {
	cases := []struct {
		name string
		in   string
		exp  []int
	}{
		{"inclusive_pair", "1:5", []int{1, 2, 3, 4, 5}},
		{"single_value", "5", []int{5}},
		{"equal_ends", "7:7", []int{7}},
		{"negative", "-3:-1", []int{-3, -2, -1}},
		{"crossing_zero", "-1:1", []int{-1, 0, 1}},
		{"reversed_is_empty", "5:1", []int{}},
		{"plus_sign", "+2:+3", []int{2, 3}},
	}

	for _, tc := range cases {
		r, err := FromString(tc.in)
		if err != nil {
			t.Fatalf("%s: FromString(%q) returned error: %v", tc.name, tc.in, err)
		}
		got, err := r.Ints()
		if err != nil {
			t.Fatalf("%s: Ints() returned error: %v", tc.name, err)
		}
		if diff := cmp.Diff(tc.exp, got, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("%s: FromString(%q).Ints() mismatch (-want +got):\n%s", tc.name, tc.in, diff)
		}
	}
}

func TestFromString_Endpoints(t *testing.T) {
	cases := []struct {
		name           string
		in             string
		start, stop    int
		startUnbounded bool
		stopUnbounded  bool
	}{
		{"pair", "1:3", 1, 4, false, false},
		{"bare", "9", 9, 10, false, false},
		{"open_start", ":5", 0, 6, true, false},
		{"open_stop", "5:", 5, 0, false, true},
		{"both_open", ":", 0, 0, true, true},
		{"empty_text", "", 0, 0, true, true},
	}

	for _, tc := range cases {
		r, err := FromString(tc.in)
		if err != nil {
			t.Fatalf("%s: FromString(%q) returned error: %v", tc.name, tc.in, err)
		}
		if r.Step() != 1 {
			t.Fatalf("%s: Step() = %d, want 1", tc.name, r.Step())
		}
		start, ok := r.Start().Value()
		if ok == tc.startUnbounded || (ok && start != tc.start) {
			t.Fatalf("%s: Start() = (%d,%v), want (%d,%v)", tc.name, start, ok, tc.start, !tc.startUnbounded)
		}
		stop, ok := r.Stop().Value()
		if ok == tc.stopUnbounded || (ok && stop != tc.stop) {
			t.Fatalf("%s: Stop() = (%d,%v), want (%d,%v)", tc.name, stop, ok, tc.stop, !tc.stopUnbounded)
		}
	}
}

func TestFromString_Errors(t *testing.T) {
	errCases := []string{
		"abc",
		"1:b",
		"a:1",
		"1:2:3",
		"1.5",
		" 1",
		"9223372036854775807",
		"99999999999999999999",
	}

	for _, s := range errCases {
		_, err := FromString(s)
		if err == nil {
			t.Fatalf("expected FromString(%q) to return error, got nil", s)
		}
		var formatErr *FormatError
		if !errors.As(err, &formatErr) {
			t.Fatalf("FromString(%q) error %v is not a *FormatError", s, err)
		}
	}
}

func TestFromString_Messages(t *testing.T) {
	cases := []struct {
		in  string
		exp string
	}{
		{"abc", `invalid range "abc": "abc" is not an integer: invalid syntax`},
		{"1:b", `invalid range "1:b": stop "b" is not an integer: invalid syntax`},
		{"1:2:3", `invalid range "1:2:3": more than one ":"`},
	}

	for _, tc := range cases {
		_, err := FromString(tc.in)
		if err == nil || err.Error() != tc.exp {
			t.Fatalf("FromString(%q) error = %v, want %q", tc.in, err, tc.exp)
		}
	}
}

func TestFromStringDelim(t *testing.T) {
	r, err := FromStringDelim("2-4", "-")
	if err != nil {
		t.Fatalf("FromStringDelim returned error: %v", err)
	}
	got, _ := r.Ints()
	if diff := cmp.Diff([]int{2, 3, 4}, got); diff != "" {
		t.Fatalf("FromStringDelim mismatch (-want +got):\n%s", diff)
	}
	if _, err := FromStringDelim("2-4", ""); err == nil {
		t.Fatalf("expected an error for an empty delimiter")
	}
}

func TestNew_TypeErrors(t *testing.T) {
	cases := []struct {
		name        string
		start, stop Limit
		step        int
	}{
		{"zero_step", At(0), At(10), 0},
		{"unbounded_start_step_two", Unbounded(), At(10), 2},
		{"unbounded_stop_step_minus_three", At(0), Unbounded(), -3},
	}

	for _, tc := range cases {
		_, err := New(tc.start, tc.stop, tc.step)
		var typeErr *TypeError
		if !errors.As(err, &typeErr) {
			t.Fatalf("%s: New() error = %v, want *TypeError", tc.name, err)
		}
	}

	if _, err := New(Unbounded(), At(3), -1); err != nil {
		t.Fatalf("New with unit step and unbounded start returned error: %v", err)
	}
}

func TestRange_Values(t *testing.T) {
	cases := []struct {
		name              string
		start, stop, step int
		exp               []int
	}{
		{"up_by_one", 0, 4, 1, []int{0, 1, 2, 3}},
		{"up_by_three", 0, 10, 3, []int{0, 3, 6, 9}},
		{"up_by_three_aligned_stop", 0, 9, 3, []int{0, 3, 6}},
		{"down_by_one", 3, 0, -1, []int{3, 2, 1}},
		{"down_by_two", 10, 0, -2, []int{10, 8, 6, 4, 2}},
		{"up_empty", 4, 4, 1, []int{}},
		{"down_empty", 0, 4, -1, []int{}},
		{"near_max", math.MaxInt - 2, math.MaxInt, 5, []int{math.MaxInt - 2}},
	}

	for _, tc := range cases {
		r, err := New(At(tc.start), At(tc.stop), tc.step)
		if err != nil {
			t.Fatalf("%s: New() returned error: %v", tc.name, err)
		}
		got, err := r.Ints()
		if err != nil {
			t.Fatalf("%s: Ints() returned error: %v", tc.name, err)
		}
		if diff := cmp.Diff(tc.exp, got, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("%s: Ints() mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestRange_ValuesRestartable(t *testing.T) {
	seq, err := Span(1, 4).Values()
	if err != nil {
		t.Fatalf("Values() returned error: %v", err)
	}
	var first, second []int
	for v := range seq {
		first = append(first, v)
		if v == 2 {
			break
		}
	}
	for v := range seq {
		second = append(second, v)
	}
	if diff := cmp.Diff([]int{1, 2}, first); diff != "" {
		t.Fatalf("first pass mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, second); diff != "" {
		t.Fatalf("second pass mismatch (-want +got):\n%s", diff)
	}
}

func TestRange_ValuesUnbounded(t *testing.T) {
	for _, s := range []string{":5", "5:", ":"} {
		r, err := FromString(s)
		if err != nil {
			t.Fatalf("FromString(%q) returned error: %v", s, err)
		}
		if _, err := r.Values(); !errors.Is(err, ErrUnbounded) {
			t.Fatalf("FromString(%q).Values() error = %v, want ErrUnbounded", s, err)
		}
	}
}

func TestRange_StringRoundTrip(t *testing.T) {
	cases := []struct {
		text        string
		start, stop int
	}{
		{"1:3", 1, 4},
		{"5", 5, 6},
		{"-2:2", -2, 3},
		{"8:3", 8, 4},
	}

	for _, tc := range cases {
		parsed, err := FromString(tc.text)
		if err != nil {
			t.Fatalf("FromString(%q) returned error: %v", tc.text, err)
		}
		direct, err := New(At(tc.start), At(tc.stop), 1)
		if err != nil {
			t.Fatalf("New(%d,%d,1) returned error: %v", tc.start, tc.stop, err)
		}
		want, _ := direct.Ints()
		got, _ := parsed.Ints()
		if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("%q: direct and parsed ranges differ (-direct +parsed):\n%s", tc.text, diff)
		}
		if direct.Text() != tc.text {
			t.Fatalf("New(%d,%d,1).Text() = %q, want %q", tc.start, tc.stop, direct.Text(), tc.text)
		}
	}
}

func TestRange_TrueEnd(t *testing.T) {
	cases := []struct {
		name        string
		start, stop Limit
		step        int
		exp         End
	}{
		{"unit", At(1), At(4), 1, End{Kind: EndKindValue, Value: 3}},
		{"stepped", At(0), At(10), 4, End{Kind: EndKindValue, Value: 8}},
		{"down", At(10), At(0), -3, End{Kind: EndKindValue, Value: 1}},
		{"empty_up", At(5), At(5), 1, End{Kind: EndKindEmpty}},
		{"empty_down", At(0), At(5), -1, End{Kind: EndKindEmpty}},
		{"infinite", At(0), Unbounded(), 1, End{Kind: EndKindInfinite}},
		{"open_start", Unbounded(), At(6), 1, End{Kind: EndKindValue, Value: 5}},
		{"down_from_neg_inf", Unbounded(), At(0), -1, End{Kind: EndKindEmpty}},
		{"down_to_pos_inf", At(0), Unbounded(), -1, End{Kind: EndKindEmpty}},
	}

	for _, tc := range cases {
		r, err := New(tc.start, tc.stop, tc.step)
		if err != nil {
			t.Fatalf("%s: New() returned error: %v", tc.name, err)
		}
		if got := r.TrueEnd(); got != tc.exp {
			t.Fatalf("%s: TrueEnd() = %+v, want %+v", tc.name, got, tc.exp)
		}
	}
}

func TestRange_Contains(t *testing.T) {
	stepped, _ := New(At(1), At(10), 3)
	down, _ := New(At(10), At(0), -5)
	open, _ := FromString(":4")
	cases := []struct {
		name string
		r    Range
		val  int
		exp  bool
	}{
		{"stepped_hit", stepped, 7, true},
		{"stepped_miss", stepped, 8, false},
		{"stepped_stop_excluded", stepped, 10, false},
		{"down_hit", down, 5, true},
		{"down_stop_excluded", down, 0, false},
		{"open_start_far_below", open, -1000000, true},
		{"open_start_stop", open, 5, false},
	}

	for _, tc := range cases {
		if got := tc.r.Contains(tc.val); got != tc.exp {
			t.Fatalf("%s: Contains(%d) = %v, want %v (range=%v)", tc.name, tc.val, got, tc.exp, tc.r)
		}
	}
}

func TestRange_String(t *testing.T) {
	down, _ := New(At(10), At(0), -2)
	open, _ := FromString(":4")
	cases := []struct {
		name string
		r    Range
		exp  string
		text string
	}{
		{"finite", Span(1, 4), "[1,4)", "1:3"},
		{"open_start", open, "(-∞,5)", ":4"},
		{"stepped", down, "[10,0) by -2", "[10,0) by -2"},
	}

	for _, tc := range cases {
		if got := tc.r.String(); got != tc.exp {
			t.Fatalf("%s: String() = %q, want %q", tc.name, got, tc.exp)
		}
		if got := tc.r.Text(); got != tc.text {
			t.Fatalf("%s: Text() = %q, want %q", tc.name, got, tc.text)
		}
	}
}

func TestEndKind_Strings(t *testing.T) {
	if diff := cmp.Diff([]string{"empty", "infinite", "value"}, EndKindStrings()); diff != "" {
		t.Fatalf("EndKindStrings() mismatch (-want +got):\n%s", diff)
	}
	k, err := EndKindString("Infinite")
	if err != nil || k != EndKindInfinite {
		t.Fatalf("EndKindString(%q) = (%v,%v), want (%v,nil)", "Infinite", k, err, EndKindInfinite)
	}
}
