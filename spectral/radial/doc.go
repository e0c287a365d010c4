// Package radial reduces 2D spectral fields to 1D functions of wavenumber
// magnitude.
//
// The package does not transform anything itself. It consumes complex
// spectra produced by the transform plan (for the magnitude and power
// reductions) and real 2D arrays keyed by a wavenumber-magnitude grid (for
// the isotropic spectrum), and averages over all grid cells sharing a
// radius.
package radial
