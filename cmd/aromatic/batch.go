package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvchem/internal/batch"
	"github.com/katalvlaran/lvchem/internal/metrics"
)

func newBatchCmd(a *app) *cobra.Command {
	var withMetrics bool
	cmd := &cobra.Command{
		Use:   "batch [FILE]",
		Short: "Perceive one SMILES per line from FILE or stdin",
		Long: `Reads "SMILES [title]" lines from FILE (or stdin when FILE is omitted or "-"),
perceives them concurrently and prints one result line per molecule in input order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()
				in = f
			} else if f, ok := in.(*os.File); ok && isTerminal(f) {
				a.log.Info("reading SMILES from the terminal, end input with Ctrl-D")
			}
			inputs, err := batch.ReadInputs(in)
			if err != nil {
				return err
			}

			opts := []batch.Option{batch.WithWorkers(a.cfg.Workers), batch.WithLogger(a.log)}
			var reg *metrics.Registry
			if withMetrics {
				reg = metrics.NewRegistry()
				opts = append(opts, batch.WithMetrics(reg))
			}
			runner, err := batch.NewRunner(a.detector, opts...)
			if err != nil {
				return err
			}
			rep, err := runner.Run(cmd.Context(), inputs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, res := range rep.Results {
				if res.Err != nil {
					fmt.Fprintf(out, "%d\t%s\terror\t%v\n", res.Line, res.SMILES, res.Err)
					continue
				}
				fmt.Fprintf(out, "%d\t%s\t%d\t%s\n", res.Line, res.SMILES, len(res.Bonds), res.Title)
			}
			if reg != nil {
				if err := reg.WriteText(out); err != nil {
					return err
				}
			}
			if rep.Failed > 0 {
				return fmt.Errorf("%d of %d molecules failed", rep.Failed, len(rep.Results))
			}
			return nil
		},
	}
	cmd.Flags().Int("workers", 4, "number of concurrent workers (overrides the config)")
	cmd.Flags().BoolVar(&withMetrics, "metrics", false, "append Prometheus text metrics to the output")
	return cmd
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
