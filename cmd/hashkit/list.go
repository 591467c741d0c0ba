package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Giulio2002/hashkit/registry"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the supported algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCATEGORY\tSIZE")
			for _, alg := range registry.DigestAlgorithms() {
				fmt.Fprintf(w, "%s\t%s\t%d\n", alg, alg.Category(), alg.Size())
			}
			for _, alg := range registry.MACAlgorithms() {
				fmt.Fprintf(w, "%s\t%s\t%d\n", alg, alg.Category(), alg.Size())
			}
			return w.Flush()
		},
	}
}
