package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvchem/aromaticity"
)

func newSumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sum CONTRIBUTION...",
		Short: "Sum ring contributions and check the 4n+2 rule",
		Long:  `Treats the arguments as the pi-electron contributions of consecutive ring atoms, prints their sum and whether it is a valid Hückel count.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contrib := make([]int, len(args))
			ring := make([]int, 0, len(args)+1)
			for i, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("contribution %d: %w", i, err)
				}
				contrib[i] = n
				ring = append(ring, i)
			}
			ring = append(ring, 0)

			s := aromaticity.ElectronSum(ring, contrib, nil)
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%t\n", s, aromaticity.ValidSum(s))
			return nil
		},
	}
}
