//go:generate go run github.com/dmarkham/enumer -type=Format -trimprefix=Format -transform=kebab
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Format is how a list of integers is rendered or read.
type Format int

const (
	FormatLines Format = iota
	FormatComma
	FormatSpace
	FormatJson
)

func (f Format) separator() string {
	switch f {
	case FormatComma:
		return ","
	case FormatSpace:
		return " "
	}
	return "\n"
}

// Write renders values to w. Separated formats put nothing after the last
// value except lines, which ends every value with a newline. JSON always
// writes an array, "[]" when values is empty, followed by a newline.
func Write(w io.Writer, format Format, values iter.Seq[int]) error {
	if !format.IsAFormat() {
		return fmt.Errorf("unsupported output format: %v", format)
	}
	if format == FormatJson {
		data, err := json.Marshal(collect(values))
		if err != nil {
			return fmt.Errorf("failed to marshal values to json: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	sep := format.separator()
	first := true
	for v := range values {
		if !first && format != FormatLines {
			if _, err := io.WriteString(w, sep); err != nil {
				return err
			}
		}
		first = false
		if _, err := io.WriteString(w, strconv.Itoa(v)); err != nil {
			return err
		}
		if format == FormatLines {
			if _, err := io.WriteString(w, sep); err != nil {
				return err
			}
		}
	}
	if !first && format != FormatLines {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

// Join returns values as a single string with no trailing newline, suitable
// for an environment variable value.
func Join(format Format, values iter.Seq[int]) (string, error) {
	ints := collect(values)
	switch format {
	case FormatJson:
		data, err := json.Marshal(ints)
		if err != nil {
			return "", fmt.Errorf("failed to marshal values to json: %w", err)
		}
		return string(data), nil
	case FormatLines, FormatComma, FormatSpace:
		parts := make([]string, len(ints))
		for i, v := range ints {
			parts[i] = strconv.Itoa(v)
		}
		return strings.Join(parts, format.separator()), nil
	}
	return "", fmt.Errorf("unsupported output format: %v", format)
}

// ParseInts reads integers from raw values written in format. A json value
// may be an array or a single number. Empty pieces are skipped.
func ParseInts(format Format, rawValues []string) ([]int, error) {
	var result []int
	if format == FormatJson {
		for _, raw := range rawValues {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			var arr []int
			if err := json.Unmarshal([]byte(raw), &arr); err == nil {
				result = append(result, arr...)
				continue
			}
			var n int
			if err := json.Unmarshal([]byte(raw), &n); err != nil {
				return nil, fmt.Errorf("invalid json value %s: %w", raw, err)
			}
			result = append(result, n)
		}
		return result, nil
	}
	if !format.IsAFormat() {
		return nil, fmt.Errorf("unsupported input format: %v", format)
	}

	seps := format.separator()
	if format == FormatLines {
		seps = "\r\n"
	}
	for _, raw := range rawValues {
		for _, part := range splitAndTrim(raw, seps) {
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("invalid integer %q", part)
			}
			result = append(result, n)
		}
	}
	return result, nil
}

func splitAndTrim(s string, seps string) []string {
	isSep := func(r rune) bool { return strings.ContainsRune(seps, r) }
	parts := strings.FieldsFunc(s, isSep)
	out := parts[:0]
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func collect(values iter.Seq[int]) []int {
	ints := slices.Collect(values)
	if ints == nil {
		ints = []int{}
	}
	return ints
}
