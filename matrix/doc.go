// Package matrix offers exact rational matrices and the linear-algebra
// kernels needed to reason about Jordan structure.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix of math/big.Rat entries. Every arithmetic
//     result is exact and canonical, so two values are equal iff their
//     entries compare equal with big.Rat.Cmp.
//   - Vector, a column vector of big.Rat entries used for kernel bases,
//     root vectors and Jordan chains.
//   - Kernels: Add, Sub, Mul, Scale, Transpose, MatVec, Pow, Shift (A − λI),
//     Inverse (Gauss–Jordan), RREF, Rank, NullSpace, HStack.
//   - Central validators (ValidateNotNil, ValidateSquare, ...) returning
//     package sentinels for errors.Is matching.
//
// Matrices here are small (the walkthroughs use n ≤ 8); kernels favour
// determinism and exactness over speed.
//
// See the examples in this package and in jordan for usage patterns.
package matrix
