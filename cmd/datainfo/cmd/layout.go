package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/quickwritereader/filovec/types"
	"github.com/quickwritereader/filovec/vector"
	"github.com/spf13/cobra"
)

func newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Print the DataInfo field layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FIELD\tOFFSET\tSIZE\tKIND")
			for _, f := range vector.DataInfoLayout {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", f.Name, f.Offset, f.Kind.Size(), f.Kind)
			}
			fmt.Fprintf(tw, "total\t\t%d\talign %d\n", types.LayoutSize(vector.DataInfoLayout), vector.DataInfoAlign)
			return tw.Flush()
		},
	}
}
