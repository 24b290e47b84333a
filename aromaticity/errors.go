package aromaticity

import "errors"

// Sentinel errors returned by the aromaticity package.
var (
	// ErrNoModel indicates a Config without an electron-donation model.
	ErrNoModel = errors.New("aromaticity: electron donation model is required")

	// ErrNoCycleFinder indicates a Config without a cycle finder.
	ErrNoCycleFinder = errors.New("aromaticity: cycle finder is required")

	// ErrNilMolecule indicates that a nil molecule was passed.
	ErrNilMolecule = errors.New("aromaticity: molecule is nil")

	// ErrUnknownModel indicates an unrecognised model name.
	ErrUnknownModel = errors.New("aromaticity: unknown model")
)
