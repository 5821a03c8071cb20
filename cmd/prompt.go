package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vipcxj/rangekit/internal/rangemodel"
)

type promptOptions struct {
	bounds   boundOptions
	label    string
	attempts int
}

func newPromptCmd(root *rootOptions) *cobra.Command {
	opts := &promptOptions{}
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Ask for a range list on stdin until a valid one is entered",
		Long: `Read range lists from stdin, one per line, until one is valid, then
print its normalized form on stdout. Prompts and validation messages go to
stderr. Blank lines are ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.bounds.resolve(cmd.Flags(), root.cfg)
			return opts.run(cmd)
		},
	}

	fs := cmd.Flags()
	opts.bounds.register(fs)
	fs.StringVar(&opts.label, "label", "ranges", "what to ask for")
	fs.IntVar(&opts.attempts, "attempts", 0, "give up after this many invalid answers, 0 for no limit")
	return cmd
}

func (o *promptOptions) run(cmd *cobra.Command) error {
	b := o.bounds
	bound, err := rangemodel.BoundOf(b.min, b.max)
	if err != nil {
		return err
	}

	in := bufio.NewScanner(cmd.InOrStdin())
	errOut := cmd.ErrOrStderr()
	failures := 0
	for {
		fmt.Fprintf(errOut, "%s in %v: ", o.label, bound)
		if !in.Scan() {
			fmt.Fprintln(errOut)
			if err := in.Err(); err != nil {
				return err
			}
			return errors.New("no valid range list entered")
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}

		d, err := rangemodel.ParseBound(line, bound, b.forceIncreasing)
		if err == nil {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), d.NormalizedText())
			return err
		}
		log.Debug().Err(err).Str("input", line).Msg("rejected input")
		fmt.Fprintln(errOut, err)

		failures++
		if o.attempts > 0 && failures >= o.attempts {
			return fmt.Errorf("giving up after %d invalid answers", failures)
		}
	}
}
