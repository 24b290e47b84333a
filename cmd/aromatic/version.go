package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvchem"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of aromatic",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "aromatic version %s\n", lvchem.Version)
		},
	}
}
