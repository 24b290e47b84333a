package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvchem/aromaticity"
	"github.com/katalvlaran/lvchem/atomtype"
	"github.com/katalvlaran/lvchem/smiles"
)

func newPerceiveCmd(a *app) *cobra.Command {
	var explain bool
	cmd := &cobra.Command{
		Use:   "perceive SMILES...",
		Short: "Report the aromatic atoms and bonds of each SMILES",
		Long:  `Parses each argument, types its atoms and prints the aromatic bond count with the aromatic atom and bond indices.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			for _, s := range args {
				if err := perceiveOne(cmd.OutOrStdout(), a.detector, s, explain); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&explain, "explain", false, "print contributions and the verdict of every candidate ring")
	return cmd
}

func perceiveOne(w io.Writer, d *aromaticity.Detector, s string, explain bool) error {
	m, err := smiles.Parse(s)
	if err != nil {
		return err
	}
	if _, err := atomtype.Perceive(m); err != nil {
		return fmt.Errorf("%s: %w", s, err)
	}
	p, err := d.Perceive(m)
	if err != nil {
		return fmt.Errorf("%s: %w", s, err)
	}

	fmt.Fprintf(w, "%s\t%d\tatoms=%v\tbonds=%v\n", s, len(p.AromaticBonds), p.AromaticAtoms, p.AromaticBonds)
	if !explain {
		return nil
	}

	fmt.Fprintf(w, "  model=%s finder=%s\n", p.Model, p.Finder)
	for i, c := range p.Contributions {
		atom, _ := m.Atom(i)
		if c == aromaticity.Excluded {
			fmt.Fprintf(w, "  atom %d %s excluded\n", i, atom.Element)
			continue
		}
		fmt.Fprintf(w, "  atom %d %s %d\n", i, atom.Element, c)
	}
	for si, sys := range p.Systems {
		fmt.Fprintf(w, "  system %d aromatic=%t\n", si, sys.Aromatic())
		for _, r := range sys.Rings {
			fmt.Fprintf(w, "    ring %v electrons=%d aromatic=%t\n", []int(r.Atoms), r.Electrons, r.Aromatic)
		}
	}
	return nil
}
