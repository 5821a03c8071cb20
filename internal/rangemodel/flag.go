package rangemodel

import "github.com/spf13/pflag"

// Flag is a pflag.Value holding a DiscontinuousRange. The text is parsed
// and checked against Bound when the flag is set.
type Flag struct {
	Bound           Bound
	ForceIncreasing bool

	value *DiscontinuousRange
}

// NewFlag returns an unset flag validated against bound.
func NewFlag(bound Bound, forceIncreasing bool) *Flag {
	return &Flag{Bound: bound, ForceIncreasing: forceIncreasing}
}

// Unlimited returns the bound (-∞, +∞).
func Unlimited() Bound {
	return Bound{r: Range{start: Unbounded(), stop: Unbounded(), step: 1}}
}

// Set parses s and keeps the previous value when s is invalid.
func (f *Flag) Set(s string) error {
	d, err := ParseBound(s, f.Bound, f.ForceIncreasing)
	if err != nil {
		return err
	}
	f.value = d
	return nil
}

// String returns the parsed ranges, or "" when unset.
func (f *Flag) String() string {
	if f.value == nil {
		return ""
	}
	return f.value.String()
}

// Type names the flag value in help output.
func (f *Flag) Type() string {
	return "ranges"
}

// Value returns the parsed range, or nil when the flag was never set.
func (f *Flag) Value() *DiscontinuousRange {
	return f.value
}

var _ pflag.Value = (*Flag)(nil)
