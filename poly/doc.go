// Package poly implements exact univariate polynomials over the rationals:
// the characteristic polynomial of a square matrix and the complete set of
// its rational roots with multiplicities.
//
// Together with package matrix it forms the eigenvalue oracle of the Jordan
// walkthrough: CharPoly(A) → RationalRoots(p) yields every eigenvalue with
// its algebraic multiplicity, provided the spectrum is rational. Spectra
// with irrational or complex points are reported as ErrNonRationalRoots;
// Factor returns the rational part and the leftover factor so callers can
// still display what was found.
package poly
