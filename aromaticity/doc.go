// Package aromaticity perceives which rings of a molecular graph are
// aromatic and flags their atoms and bonds.
//
// A Detector combines two pluggable policies:
//
//   - a Model, the electron-donation rule that assigns every atom a pi-electron
//     contribution of 0, 1 or 2, or Excluded when the atom cannot take part in
//     an aromatic ring;
//   - a cycles.Finder, the source of candidate rings.
//
// Perception is a pure computation over a snapshot of the molecule:
//
//  1. Build a Context (ring membership, degrees, pi-bond counts) from the
//     whole graph.
//  2. Ask the Model for every atom's contribution; excluded atoms are masked
//     out.
//  3. Find cycles on the masked graph, so every candidate ring is made of
//     contributing atoms only.
//  4. Group rings into ring systems (rings sharing an atom) and sum each
//     ring's contributions. A ring is aromatic iff its sum satisfies
//     Hückel's rule: sum > 0 and sum ≡ 2 (mod 4).
//  5. The aromatic bonds are the union of the bonds of every aromatic ring;
//     the aromatic atoms are their endpoints.
//
// Apply then clears every previous aromatic flag on the molecule and sets
// exactly the perceived ones, atomically under the molecule's write lock.
// Errors leave the molecule untouched.
//
// Models:
//
//	– Strict()              hybridisation based; exocyclic double/triple bonds
//	                        exclude both of their atoms (N=O of nitro-like
//	                        groups exempt).
//	– ExocyclicPermissive() the same without the exocyclic exclusion.
//	– Daylight()            valence and charge based, needs no atom typing.
//
// The hybridisation-based models read Atom.Hybridization and LonePairs, so
// run atomtype.Perceive first; untyped atoms are excluded.
//
// Errors (sentinel):
//
//	– ErrNoModel        Config.Model is nil.
//	– ErrNoCycleFinder  Config.Cycles is nil.
//	– ErrNilMolecule    a nil molecule was passed.
//	– ErrUnknownModel   ParseModel received an unknown name.
//
// A Detector is immutable after New and safe for concurrent use on distinct
// molecules.
package aromaticity
