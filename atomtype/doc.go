// Package atomtype perceives per-atom electronic configuration: hybridisation,
// lone pairs and pi-bond count, from element, formal charge, implicit
// hydrogens and bond orders.
//
// It is the minimal typing step the hybridisation-based aromaticity models
// rely on; atoms it cannot type (unknown element, unknown hydrogen count,
// unset bond order, negative electron balance) are left with Typed == false
// and are treated as unsuitable for aromaticity downstream.
//
// Rules (σ = explicit neighbours + implicit H, π = Σ(order−1)):
//
//   - lone pairs = (valence electrons − charge − Σorder − H) / 2
//   - σ ≥ 4 with π > 0 (hypervalent S/P):       sp3
//   - σ = 3 with π > 0 (incl. N-oxide N(=O)=C): sp2
//   - π ≥ 2:                                     sp1
//   - π = 1:                                     sp2
//   - π = 0, no lone pair, σ = 3, cation/boron:  sp2 (empty p orbital)
//   - π = 0, lone pair, σ ≤ 3, next to a π bond: planar3 (conjugated lone pair)
//   - π = 0, σ = 1, hydrogen-like:               s
//   - otherwise:                                 sp3
package atomtype
