// Package jordansolver derives the Jordan normal form of a small square
// matrix over the rationals, printing every intermediate step the way a
// linear-algebra course does it on paper.
//
// What you get:
//
//	• Exact arithmetic: every entry is a math/big.Rat, no rounding anywhere
//	• Spectrum: characteristic polynomial, eigenvalues, both multiplicities
//	• Block table: block counts per size from ranks of (A − λI)^k
//	• Jordan chains and the transition matrix P with J = P⁻¹AP
//	• A check of P against an independently built decomposition
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/     — exact dense matrices, RREF, rank, kernel, inverse
//	poly/       — rational polynomials, characteristic polynomial, rational roots
//	jordan/     — spectrum, block counts, chains, transition matrix, verification
//	report/     — localized step-by-step console transcript (ru, en)
//	catalog/    — named example matrices in YAML, embedded or from a file
//	cmd/jordan/ — the command-line front end
//
// Quick example:
//
//	    ⎡ 0    1  0⎤          ⎡2  1  0⎤
//	A = ⎢-4    4  0⎥  ⇒  J = ⎢0  2  0⎥
//	    ⎣-2  1/2  2⎦          ⎣0  0  2⎦
//
//	go run github.com/katalvlaran/jordan/cmd/jordan run -e ex1
package jordansolver
