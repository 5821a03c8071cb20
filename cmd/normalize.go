package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNormalizeCmd(root *rootOptions) *cobra.Command {
	var bounds boundOptions
	cmd := &cobra.Command{
		Use:   "normalize SPEC",
		Short: "Print the shortest sorted form of a range list",
		Long: `Print SPEC with its components sorted, overlapping or adjacent components
merged and empty components dropped, e.g. "8:9,1:3,4" becomes "1:4,8:9".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bounds.resolve(cmd.Flags(), root.cfg)
			d, err := bounds.parse(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), d.NormalizedText())
			return err
		},
	}
	bounds.register(cmd.Flags())
	return cmd
}
