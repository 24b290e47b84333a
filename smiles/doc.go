// Package smiles reads SMILES strings into molecule graphs.
//
// Supported syntax:
//
//   - organic-subset atoms B C N O P S F Cl Br I and aromatic b c n o p s;
//   - bracket atoms with isotope, any element symbol (aromatic se, as, te),
//     hydrogen count, charge (+, ++, +2, -, --, -2); chirality and atom
//     classes are read and ignored;
//   - bonds - = # $ : / \ (directional bonds are read as single);
//   - branches, ring closures (digits and %nn, allowed to span '.'),
//     disconnected components and the '*' wildcard.
//
// Organic-subset atoms receive implicit hydrogens from their lowest default
// valence. Aromatic (lowercase) input is flagged aromatic and then given a
// Kekulé structure: every aromatic atom that still needs a pi bond gets
// exactly one double bond to an aromatic neighbour. The assignment is a
// perfect matching found by exact backtracking, most-constrained atom first;
// when none exists Parse fails with ErrKekulize.
//
// Aromatic flags from the input are kept on the parsed molecule. Aromaticity
// perception replaces them wholesale.
package smiles
