// Package builder provides deterministic, functional-options style
// constructors for molecular test and benchmark fixtures.
//
// The package offers:
//
//   - Build(opts, cons...): one orchestrator that creates a molecule, resolves
//     the configuration and applies constructors in order.
//   - Topology constructors (Kekulé structures, carbon by default):
//     – Annulene(n):     n-membered ring with alternating double bonds.
//     – Acene(k):        k linearly fused six-membered rings.
//     – FusedPair(a, b): an a-ring and a b-ring sharing one bond
//     (azulene is FusedPair(5, 7)).
//     – Chain(n):        open chain with alternating double bonds.
//   - Options:
//     – WithTitle:       molecule title.
//     – WithHetero:      replace the atom at an index by another element with
//     an explicit hydrogen count.
//     – WithCharge:      formal charge on an atom.
//     – WithSeed/WithRand + WithShuffle: deterministic renumbering of atoms
//     and bonds, for representation-invariance tests.
//
// Carbon atoms without an explicit hydrogen count receive 4 − (bond order
// sum) hydrogens (3 − sum when charged), never fewer than zero.
//
// Guarantees:
//
//   - Same options and constructor order give identical molecules.
//   - Option constructors panic on meaningless input (negative index, nil
//     RNG); constructors return sentinel errors and never panic.
package builder
