package rangemodel

import (
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
)

func TestFlag(t *testing.T) {
	bound := mustBound(t, 0, 100)
	f := NewFlag(bound, true)
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(f, "pages", "pages to print")

	if f.Value() != nil || f.String() != "" {
		t.Fatalf("unset flag has value %q", f.String())
	}
	if err := fs.Parse([]string{"--pages", "1:3, 10"}); err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	got, err := f.Value().Ints()
	if err != nil {
		t.Fatalf("Ints() returned error: %v", err)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 10}, got); diff != "" {
		t.Fatalf("flag value mismatch (-want +got):\n%s", diff)
	}
	if f.String() != "1:3,10" {
		t.Fatalf("String() = %q, want %q", f.String(), "1:3,10")
	}
	if f.Type() != "ranges" {
		t.Fatalf("Type() = %q, want %q", f.Type(), "ranges")
	}
}

func TestFlag_Rejects(t *testing.T) {
	cases := []string{"abc", "50:200", "5,1", "3,", ","}
	for _, s := range cases {
		f := NewFlag(mustBound(t, 0, 100), true)
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.SetOutput(io.Discard)
		fs.Var(f, "pages", "pages to print")
		if err := fs.Parse([]string{"--pages", s}); err == nil {
			t.Fatalf("expected --pages %q to fail, got value %q", s, f.String())
		}
		if f.Value() != nil {
			t.Fatalf("--pages %q left a value behind: %q", s, f.String())
		}
	}
}

func TestFlag_Unlimited(t *testing.T) {
	f := NewFlag(Unlimited(), false)
	if err := f.Set("-5:"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if !f.Value().Contains(1 << 50) {
		t.Fatalf("unlimited flag value does not contain a large value")
	}
}
