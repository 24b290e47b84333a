package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvchem/aromaticity"
	"github.com/katalvlaran/lvchem/internal/config"
	"github.com/katalvlaran/lvchem/internal/logging"
)

// app is the state shared by the subcommands after flag parsing.
type app struct {
	configPath string
	logLevel   string
	model      string
	cycles     string
	cycleLimit int

	cfg      config.Config
	log      *slog.Logger
	detector *aromaticity.Detector
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "aromatic",
		Short:         "aromatic perceives aromatic rings in molecules",
		Long:          `aromatic reads SMILES, applies an electron-donation model over the molecule's cycles and reports the bonds that satisfy the 4n+2 rule.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	// Persistent flags (available to all commands)
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides the config)")
	pf.StringVar(&a.model, "model", "", "electron-donation model: strict, exocyclic or daylight")
	pf.StringVar(&a.cycles, "cycles", "", "cycle finder: all, shortest, all-or-shortest or explicit")
	pf.IntVar(&a.cycleLimit, "cycle-limit", 0, "maximum number of cycles for the all finder")

	rootCmd.AddCommand(
		newPerceiveCmd(a),
		newBatchCmd(a),
		newSumCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// setup resolves the configuration: file first, then changed flags.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.DefaultConfig()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("model") {
		cfg.Model = a.model
	}
	if flags.Changed("cycles") {
		cfg.Cycles = a.cycles
	}
	if flags.Changed("cycle-limit") {
		cfg.CycleLimit = a.cycleLimit
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("workers") {
		n, err := flags.GetInt("workers")
		if err != nil {
			return err
		}
		cfg.Workers = n
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	a.log = logging.NewWriter(cmd.ErrOrStderr(), level)

	d, err := cfg.Detector(aromaticity.WithLogger(a.log))
	if err != nil {
		return fmt.Errorf("failed to build the detector: %w", err)
	}
	a.cfg, a.detector = cfg, d
	a.log.Debug("configured", "model", cfg.Model, "cycles", cfg.Cycles, "workers", cfg.Workers)

	return nil
}
