// Package lvchem perceives aromaticity on in-memory molecular graphs.
//
// What is in the box?
//
//	A small, thread-safe library and CLI that brings together:
//		• Molecule graphs: atoms, bonds, aromatic flags under locks
//		• SMILES reading with kekulization of aromatic input
//		• Atom typing: hybridisation and lone pairs from valence
//		• Cycle finders: all elementary cycles, shortest per bond, explicit
//		• Electron-donation models: strict, exocyclic, daylight
//		• Hückel 4n+2 perception over ring systems
//
// Packages:
//
//	molecule/     Molecule, Atom, Bond, snapshots and aromatic flags
//	smiles/       SMILES parser producing Kekulé molecules
//	atomtype/     hybridisation and lone-pair perception
//	cycles/       Finder implementations and ring membership
//	aromaticity/  models, Detector, Perceive / FindBonds / Apply
//	builder/      deterministic ring fixtures (annulenes, acenes, fused pairs)
//	cmd/aromatic  command-line front end
//
// Quick example:
//
//	m, _ := smiles.Parse("C1=CC=CO1")
//	d := aromaticity.MustNew(aromaticity.Config{
//		Model:  aromaticity.Daylight(),
//		Cycles: cycles.All(),
//	})
//	n, _ := d.Apply(m) // n == 5
//
// See each subpackage for its complexity and concurrency notes.
package lvchem

// Version is the release of the module, printed by "aromatic version".
const Version = "0.3.0"
