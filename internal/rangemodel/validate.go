package rangemodel

import (
	"encoding/json"

	multierror "github.com/hashicorp/go-multierror"
)

// Result is the outcome of Check: valid, or invalid with a message.
type Result struct {
	err error
}

// Valid reports whether the checked text parsed.
func (r Result) Valid() bool {
	return r.err == nil
}

// Message returns the reason the text is invalid, or "" when it is valid.
func (r Result) Message() string {
	if r.err == nil {
		return ""
	}
	return r.err.Error()
}

// Err returns the parse error, if any.
func (r Result) Err() error {
	return r.err
}

// String returns "ok" or the message.
func (r Result) String() string {
	if r.err == nil {
		return "ok"
	}
	return r.err.Error()
}

// MarshalJSON encodes r as {"valid":bool,"message":string}.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Valid   bool   `json:"valid"`
		Message string `json:"message"`
	}{r.Valid(), r.Message()})
}

// Check parses text and reports the outcome without failing, for use in
// form validation messages.
func Check(text string, minValue, maxValue int, forceIncreasing bool) Result {
	return Result{err: Validate(text, minValue, maxValue, forceIncreasing)}
}

// Validate is Parse that keeps only the error.
func Validate(text string, minValue, maxValue int, forceIncreasing bool) error {
	_, err := Parse(text, minValue, maxValue, forceIncreasing)
	return err
}

// Diagnose reports every problem in text instead of stopping at the first.
// The result is nil or a *multierror.Error listing, in order, the malformed
// components, the components outside the bound and, with forceIncreasing,
// every ordering violation among the well-formed components.
func Diagnose(text string, minValue, maxValue int, forceIncreasing bool) error {
	var errs *multierror.Error

	bound, err := BoundOf(minValue, maxValue)
	if err != nil {
		return multierror.Append(errs, err)
	}

	var ranges []Range
	for _, piece := range splitComponents(text) {
		r, err := parseComponent(text, piece)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		if err := checkBound(r, bound); err != nil {
			errs = multierror.Append(errs, err)
		}
		ranges = append(ranges, r)
	}
	if forceIncreasing {
		errs = multierror.Append(errs, checkIncreasing(ranges)...)
	}
	return errs.ErrorOrNil()
}
