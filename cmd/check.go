package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/vipcxj/rangekit/internal/rangemodel"
)

type checkOptions struct {
	bounds boundOptions
	all    bool
	json   bool
}

func newCheckCmd(root *rootOptions) *cobra.Command {
	opts := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check SPEC",
		Short: "Validate a range list",
		Long: `Validate SPEC against the bound and ordering rules.

Prints "ok" and exits 0 when SPEC is valid. Otherwise prints why and exits 1.
With --all every problem is listed, one per line, instead of the first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.bounds.resolve(cmd.Flags(), root.cfg)
			return opts.run(cmd, args[0])
		},
	}

	fs := cmd.Flags()
	opts.bounds.register(fs)
	fs.BoolVarP(&opts.all, "all", "a", false, "report every problem instead of the first")
	fs.BoolVar(&opts.json, "json", false, `print {"valid":bool,"message":string}`)
	cmd.MarkFlagsMutuallyExclusive("all", "json")
	return cmd
}

func (o *checkOptions) run(cmd *cobra.Command, spec string) error {
	out := cmd.OutOrStdout()
	b := o.bounds

	if o.all {
		err := rangemodel.Diagnose(spec, b.min, b.max, b.forceIncreasing)
		if err == nil {
			fmt.Fprintln(out, "ok")
			return nil
		}
		var merr *multierror.Error
		if errors.As(err, &merr) {
			for _, e := range merr.Errors {
				fmt.Fprintln(out, e)
			}
		} else {
			fmt.Fprintln(out, err)
		}
		return &exitError{code: 1}
	}

	res := rangemodel.Check(spec, b.min, b.max, b.forceIncreasing)
	if o.json {
		data, err := json.Marshal(res)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n", data)
	} else {
		fmt.Fprintln(out, res)
	}
	if !res.Valid() {
		return &exitError{code: 1}
	}
	return nil
}
