package cmd

import (
	"fmt"
	"iter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vipcxj/rangekit/internal/output"
	"github.com/vipcxj/rangekit/internal/rangemodel"
	"github.com/vipcxj/rangekit/internal/shell"
)

type expandOptions struct {
	bounds    boundOptions
	format    string
	exclude   *rangemodel.Flag
	envName   string
	envPrefix string
	export    bool
	shell     string
}

func newExpandCmd(root *rootOptions) *cobra.Command {
	opts := &expandOptions{exclude: rangemodel.NewFlag(rangemodel.Unlimited(), false)}
	cmd := &cobra.Command{
		Use:   "expand SPEC",
		Short: "Print every integer covered by a range list",
		Long: `Print every integer covered by SPEC, component by component.

With --env the values are joined into a single shell assignment instead,
ready to be evaluated by the calling shell:

  eval "$(rangekit expand 1:3,7 --env pages --format comma)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.bounds.resolve(cmd.Flags(), root.cfg)
			return opts.run(cmd, root, args[0])
		},
	}

	fs := cmd.Flags()
	opts.bounds.register(fs)
	fs.StringVarP(&opts.format, "format", "f", "", "output format: lines, comma, space or json (default from RANGEKIT_FORMAT)")
	fs.Var(opts.exclude, "exclude", "range list of values to leave out")
	fs.StringVar(&opts.envName, "env", "", "print a shell assignment to this variable instead of the values")
	fs.StringVar(&opts.envPrefix, "prefix", "", "prefix for the --env variable name")
	fs.BoolVar(&opts.export, "export", false, "export the --env variable (persist it for powershell and cmd)")
	fs.StringVar(&opts.shell, "shell", "", "shell syntax for --env: auto, sh, powershell or cmd (default from RANGEKIT_SHELL)")
	return cmd
}

func (o *expandOptions) run(cmd *cobra.Command, root *rootOptions, spec string) error {
	format := root.cfg.OutputFormat()
	if o.format != "" {
		f, err := output.FormatString(o.format)
		if err != nil {
			return fmt.Errorf("invalid --format: %w", err)
		}
		format = f
	}

	d, err := o.bounds.parse(spec)
	if err != nil {
		return err
	}
	values, err := d.Values()
	if err != nil {
		return err
	}
	if ex := o.exclude.Value(); ex != nil {
		log.Debug().Stringer("exclude", ex).Msg("excluding values")
		values = without(values, ex)
	}

	if o.envName == "" {
		return output.Write(cmd.OutOrStdout(), format, values)
	}

	shellType := root.cfg.ShellType()
	if o.shell != "" {
		st, err := shell.ShellTypeString(o.shell)
		if err != nil {
			return fmt.Errorf("invalid --shell: %w", err)
		}
		shellType = st
	}
	joined, err := output.Join(format, values)
	if err != nil {
		return err
	}
	line, err := shell.Assignment(shellType, shell.EnvName(o.envName, o.envPrefix), joined, o.export)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), line)
	return err
}

func without(values iter.Seq[int], excluded rangemodel.Set) iter.Seq[int] {
	return func(yield func(int) bool) {
		for v := range values {
			if excluded.Contains(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}
