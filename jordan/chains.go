// SPDX-License-Identifier: MIT

package jordan

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/jordan/matrix"
)

// CandidateTrace records one candidate examined for a block.
// Ordinal is the position of the block in AllBlocks order.
type CandidateTrace struct {
	Ordinal   int
	Block     Block
	Candidate matrix.Vector
	Verdict   Verdict
}

// Diagnostic reports a block that did not yield a valid chain.
// Err wraps ErrNoCandidate or ErrChainNotTerminal.
type Diagnostic struct {
	Ordinal int
	Block   Block
	Err     error
}

// ChainSet is the accumulated state of chain building. Every step of
// BuildChains returns a new value; slices are never shared with a previous
// step.
type ChainSet struct {
	Chains      []Chain
	Used        UsedVectors
	Trace       []CandidateTrace
	Diagnostics []Diagnostic
}

// Columns returns every chain eigenvector-first, chains in completion order.
func (s ChainSet) Columns() []matrix.Vector {
	var cols []matrix.Vector
	for _, c := range s.Chains {
		cols = append(cols, c.EigenvectorFirst()...)
	}

	return cols
}

// Filled reports whether the chains supply exactly n columns with no
// skipped block.
func (s ChainSet) Filled(n int) bool {
	return s.Used.Len() == n && len(s.Diagnostics) == 0
}

func (s ChainSet) withTrace(t CandidateTrace) ChainSet {
	next := s
	next.Trace = append(append(make([]CandidateTrace, 0, len(s.Trace)+1), s.Trace...), t)

	return next
}

func (s ChainSet) withChain(c Chain) ChainSet {
	next := s
	next.Chains = append(append(make([]Chain, 0, len(s.Chains)+1), s.Chains...), c)
	next.Used = s.Used.With(c.Vectors...)

	return next
}

func (s ChainSet) withDiagnostic(d Diagnostic) ChainSet {
	next := s
	next.Diagnostics = append(append(make([]Diagnostic, 0, len(s.Diagnostics)+1), s.Diagnostics...), d)

	return next
}

// chainContext is the per-eigenvalue data a block step reads.
type chainContext struct {
	b    *matrix.Dense   // B = A − λI
	pows []*matrix.Dense // B^0..B^maxSize
	test independenceTest
	log  *slog.Logger
}

// BuildChains constructs one Jordan chain per block of tables.
//
// For each eigenvalue (table order) and each block of size k (descending):
//   - candidates are the canonical null-space basis of B^k, in basis order;
//   - the order test rejects v with B^(k−1)·v = 0;
//   - the independence policy (WithIndependence) admits or rejects the chain
//     v, B·v, ..., B^(k−1)·v against the vectors already used;
//   - the first admitted candidate heads the chain, and B·(last) = 0 is checked.
//
// A block with no admitted candidate is skipped with a Diagnostic wrapping
// ErrNoCandidate and logged at Warn; the resulting transition matrix is
// then under-filled. Every candidate examined is recorded in Trace.
//
// Errors:
//   - ErrNoBlockInfo when tables is empty.
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//   - ErrChainNotTerminal (with the partial ChainSet) when a chain fails its
//     post-condition.
//
// Complexity: O(Σ_blocks #candidates · (k·n^2 + rank test)).
func BuildChains(a matrix.Matrix, tables []BlockTable, opts ...Option) (ChainSet, error) {
	if len(tables) == 0 {
		return ChainSet{}, jordanErrorf(opBuildChains, ErrNoBlockInfo)
	}
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return ChainSet{}, jordanErrorf(opBuildChains, err)
	}
	o := gatherOptions(opts...)
	test := newIndependenceTest(o.independence)

	state := ChainSet{}
	ordinal := 0
	for _, t := range tables {
		pows, err := shiftPowers(a, t.Eigenvalue.Value, max(1, t.MaxSize()))
		if err != nil {
			return state, jordanErrorf(opBuildChains, err)
		}
		ctx := chainContext{
			b:    pows[1],
			pows: pows,
			test: test,
			log:  o.logger.With(slog.String("eigenvalue", t.Eigenvalue.Value.RatString())),
		}
		for _, blk := range t.Blocks() {
			if state, err = buildBlock(ctx, state, ordinal, blk); err != nil {
				return state, jordanErrorf(opBuildChains, err)
			}
			ordinal++
		}
	}

	return state, nil
}

// buildBlock examines candidates for one block and returns the next state.
func buildBlock(ctx chainContext, state ChainSet, ordinal int, blk Block) (ChainSet, error) {
	k := blk.Size
	candidates, err := matrix.NullSpace(ctx.pows[k])
	if err != nil {
		return state, err
	}

	for _, v := range candidates {
		below, err := matrix.MatVec(ctx.pows[k-1], v)
		if err != nil {
			return state, err
		}
		if below.IsZero() {
			state = state.withTrace(CandidateTrace{Ordinal: ordinal, Block: blk, Candidate: v, Verdict: VerdictWrongOrder})
			continue
		}

		chain, err := generateChain(ctx.b, v, k)
		if err != nil {
			return state, err
		}
		verdict, err := ctx.test.admit(state.Used, chain)
		if err != nil {
			return state, err
		}
		state = state.withTrace(CandidateTrace{Ordinal: ordinal, Block: blk, Candidate: v, Verdict: verdict})
		if verdict != VerdictAccepted {
			continue
		}

		tail, err := matrix.MatVec(ctx.b, chain[k-1])
		if err != nil {
			return state, err
		}
		if !tail.IsZero() {
			diagErr := fmt.Errorf("block of size %d: %w", k, ErrChainNotTerminal)
			ctx.log.Error("chain post-condition failed", slog.Int("size", k), slog.String("head", v.String()))

			return state.withDiagnostic(Diagnostic{Ordinal: ordinal, Block: blk, Err: diagErr}), diagErr
		}

		return state.withChain(Chain{Ordinal: ordinal, Eigenvalue: blk.Eigenvalue, Size: k, Vectors: chain}), nil
	}

	ctx.log.Warn("no admissible root vector, block skipped", slog.Int("size", k))

	return state.withDiagnostic(Diagnostic{
		Ordinal: ordinal,
		Block:   blk,
		Err:     fmt.Errorf("block of size %d: %w", k, ErrNoCandidate),
	}), nil
}

// generateChain returns v, B·v, ..., B^(k−1)·v.
func generateChain(b *matrix.Dense, v matrix.Vector, k int) ([]matrix.Vector, error) {
	chain := make([]matrix.Vector, k)
	chain[0] = v.Clone()
	for i := 1; i < k; i++ {
		next, err := matrix.MatVec(b, chain[i-1])
		if err != nil {
			return nil, err
		}
		chain[i] = next
	}

	return chain, nil
}
