// Package jordan computes the Jordan normal form of a small exact matrix
// step by step, the way it is derived by hand.
//
// The pipeline, in call order:
//
//	ComputeSpectrum  eigenvalues with algebraic and geometric multiplicity
//	CountBlocks      number of Jordan blocks of each size per eigenvalue:
//	                 rank(B^(k−1)) + rank(B^(k+1)) − 2·rank(B^k), B = A − λI
//	RootVectors      kernel bases of B^k per order k (for display)
//	BuildChains      root-vector search and Jordan-chain construction
//	TransitionMatrix horizontal concatenation of chains, eigenvector first
//	Reference        an independent decomposition used as the oracle
//	Verify           P⁻¹·A·P == P_ref⁻¹·A·P_ref, exactly
//
// Solver sequences the stages and enforces their order.
//
// Ordering convention: eigenvalues ascending by value; within an eigenvalue,
// blocks by descending size; inside a block, eigenvector first. J produced
// by JordanForm, by the manual chains and by Reference all follow it, so the
// final check is a plain equality of matrices.
//
// Chain building accumulates explicitly: every accepted chain produces a
// new ChainSet value (chains, used vectors, trace, diagnostics); nothing is
// mutated in place. Candidate independence is a policy:
//
//	IndependenceRank  candidate chain must raise the rank of the used set by
//	                  its length (complete and sound; default)
//	IndependenceWeak  candidate head must merely differ from every used vector
//	                  (historical behavior, kept for comparison; can accept a
//	                  scalar multiple of a used vector and yield a singular P)
package jordan
