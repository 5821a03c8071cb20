package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vipcxj/rangekit/internal/output"
)

type containsOptions struct {
	bounds       boundOptions
	valuesFormat string
	quiet        bool
}

func newContainsCmd(root *rootOptions) *cobra.Command {
	opts := &containsOptions{}
	cmd := &cobra.Command{
		Use:   "contains SPEC VALUE...",
		Short: "Test whether values are covered by a range list",
		Long: `Print "VALUE true" or "VALUE false" for every VALUE.

With --quiet nothing is printed and the exit code is 0 only when every
VALUE is covered.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.bounds.resolve(cmd.Flags(), root.cfg)
			return opts.run(cmd, args[0], args[1:])
		},
	}

	fs := cmd.Flags()
	opts.bounds.register(fs)
	fs.StringVar(&opts.valuesFormat, "values-format", "comma", "how VALUE arguments are split: lines, comma, space or json")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "print nothing, report through the exit code")
	return cmd
}

func (o *containsOptions) run(cmd *cobra.Command, spec string, rawValues []string) error {
	format, err := output.FormatString(o.valuesFormat)
	if err != nil {
		return fmt.Errorf("invalid --values-format: %w", err)
	}
	values, err := output.ParseInts(format, rawValues)
	if err != nil {
		return err
	}
	d, err := o.bounds.parse(spec)
	if err != nil {
		return err
	}

	missing := false
	for _, v := range values {
		ok := d.Contains(v)
		missing = missing || !ok
		if !o.quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "%d %t\n", v, ok)
		}
	}
	if o.quiet && missing {
		return &exitError{code: 1}
	}
	return nil
}
