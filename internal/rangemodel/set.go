package rangemodel

// Set is a collection of integers described by ranges.
type Set interface {
	// Contains reports whether v belongs to the set.
	Contains(v int) bool
	IsNotEmpty() bool
	IsLowerBounded() bool
	IsUpperBounded() bool
}

var (
	_ Set = Range{}
	_ Set = Bound{}
	_ Set = (*DiscontinuousRange)(nil)
)
