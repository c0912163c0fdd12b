// SPDX-License-Identifier: MIT

package jordan

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/jordan/matrix"
)

// Structure is the outcome of the first stage: spectrum, block census and J.
type Structure struct {
	Spectrum Spectrum
	Tables   []BlockTable
	Cells    []*matrix.Dense
	J        *matrix.Dense
}

// Chains is the outcome of the second stage.
type Chains struct {
	Roots []RootSpace
	Set   ChainSet
	P     *matrix.Dense // nil only when no chain was built
}

// Result gathers every stage of a full run.
type Result struct {
	A            *matrix.Dense
	Structure    Structure
	Chains       Chains
	Reference    Decomposition
	Verification Verification
}

// Solver sequences the stages for one matrix:
//
//	JordanForm → BuildChains → Verify
//
// Stage results are kept so that later stages (and reporters) can read them;
// calling a stage before its prerequisite returns ErrNoBlockInfo or ErrNoChains.
// A Solver is not safe for concurrent use.
type Solver struct {
	a    *matrix.Dense
	opts Options

	structure *Structure
	chains    *Chains
}

// NewSolver validates A (non-nil, square) and takes a private copy of it.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNilEntry.
func NewSolver(a matrix.Matrix, opts ...Option) (*Solver, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, jordanErrorf(opSolver, err)
	}
	d, err := matrix.DenseCopy(a)
	if err != nil {
		return nil, jordanErrorf(opSolver, err)
	}

	return &Solver{a: d, opts: gatherOptions(opts...)}, nil
}

// Matrix returns a copy of the solver's input.
func (s *Solver) Matrix() *matrix.Dense {
	return s.a.Clone().(*matrix.Dense)
}

// Options returns the resolved configuration.
func (s *Solver) Options() Options { return s.opts }

// JordanForm computes the spectrum, the block tables, the cells and J.
// A non-rational spectrum is returned as ErrNonRationalSpectrum together
// with the partial spectrum in Structure.Spectrum.
func (s *Solver) JordanForm() (Structure, error) {
	sp, err := ComputeSpectrum(s.a)
	if err != nil {
		return Structure{Spectrum: sp}, err
	}
	tables, err := CountBlocks(s.a, sp)
	if err != nil {
		return Structure{Spectrum: sp}, err
	}
	cells, err := Cells(tables)
	if err != nil {
		return Structure{Spectrum: sp, Tables: tables}, err
	}
	j, err := JordanForm(s.a.Rows(), tables)
	if err != nil {
		return Structure{Spectrum: sp, Tables: tables, Cells: cells}, err
	}

	st := Structure{Spectrum: sp, Tables: tables, Cells: cells, J: j}
	s.structure = &st
	s.chains = nil

	return st, nil
}

// BuildChains lists root vectors, builds Jordan chains and assembles P.
//
// Errors:
//   - ErrNoBlockInfo when JordanForm has not succeeded yet; logged at Warn.
//   - ErrNoChains when no block produced a chain.
//   - ErrChainNotTerminal from BuildChains.
//
// An under-filled P (skipped blocks) is not an error here: it is kept and
// fails Verify.
func (s *Solver) BuildChains() (Chains, error) {
	if s.structure == nil {
		s.opts.logger.Warn("chains requested before block information", slog.String("op", opBuildChains))

		return Chains{}, jordanErrorf(opSolver, ErrNoBlockInfo)
	}
	roots, err := RootVectors(s.a, s.structure.Tables)
	if err != nil {
		return Chains{}, err
	}
	set, err := BuildChains(s.a, s.structure.Tables, s.optionList()...)
	if err != nil {
		return Chains{Roots: roots, Set: set}, err
	}
	p, err := TransitionMatrix(s.a.Rows(), set)
	if err != nil && !errors.Is(err, ErrUnderfilled) {
		return Chains{Roots: roots, Set: set}, err
	}

	ch := Chains{Roots: roots, Set: set, P: p}
	s.chains = &ch

	return ch, nil
}

// Verify compares the manual P against the reference decomposition.
// Errors: ErrNoChains when BuildChains has not succeeded yet.
func (s *Solver) Verify() (Decomposition, Verification, error) {
	if s.structure == nil || s.chains == nil {
		return Decomposition{}, Verification{}, jordanErrorf(opSolver, ErrNoChains)
	}
	ref, err := Reference(s.a, s.structure.Tables)
	if err != nil {
		return Decomposition{}, Verification{}, err
	}
	v, err := Verify(s.a, s.chains.P, ref.P)
	if err != nil {
		return ref, Verification{}, err
	}

	return ref, v, nil
}

// Run executes every stage in order. On error the result holds whatever the
// completed stages produced.
func (s *Solver) Run() (Result, error) {
	res := Result{A: s.Matrix()}

	st, err := s.JordanForm()
	res.Structure = st
	if err != nil {
		return res, err
	}
	ch, err := s.BuildChains()
	res.Chains = ch
	if err != nil {
		return res, err
	}
	ref, v, err := s.Verify()
	res.Reference, res.Verification = ref, v
	if err != nil {
		return res, err
	}

	return res, nil
}

// optionList replays the resolved options for package-level stages.
func (s *Solver) optionList() []Option {
	return []Option{WithIndependence(s.opts.independence), WithLogger(s.opts.logger)}
}
