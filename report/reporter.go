// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/jordan/jordan"
	"github.com/katalvlaran/jordan/matrix"
)

// ruleWidth is the length of the dashed rule around step headers.
const ruleWidth = 70

// Option configures a Reporter.
type Option func(*config)

type config struct {
	lang    language.Tag
	verbose bool
	styled  bool
}

// WithLanguage selects the transcript language; unsupported tags fall back
// to Russian.
func WithLanguage(tag language.Tag) Option { return func(c *config) { c.lang = tag } }

// WithVerbose adds the powers B^k and the candidate trace of chain building.
func WithVerbose(on bool) Option { return func(c *config) { c.verbose = on } }

// WithStyle enables ANSI styling of headers, rules and verdicts.
func WithStyle(on bool) Option { return func(c *config) { c.styled = on } }

// Reporter writes the transcript. It numbers steps in call order and
// remembers the first write error, which Err returns; later writes are
// dropped once an error occurred.
type Reporter struct {
	w       io.Writer
	p       *message.Printer
	st      styles
	verbose bool
	step    int
	err     error
}

// New returns a Reporter writing to w.
func New(w io.Writer, opts ...Option) *Reporter {
	c := config{lang: language.Russian}
	for _, o := range opts {
		if o != nil {
			o(&c)
		}
	}
	st := plainStyles()
	if c.styled {
		st = colorStyles(w)
	}

	return &Reporter{w: w, p: newPrinter(c.lang), st: st, verbose: c.verbose}
}

// Err returns the first write error, if any.
func (r *Reporter) Err() error { return r.err }

func (r *Reporter) write(s string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.w, s)
}

func (r *Reporter) line(s string) { r.write(s + "\n") }

// linef prints a translated, formatted line.
func (r *Reporter) linef(key string, args ...any) { r.line(r.p.Sprintf(key, args...)) }

func (r *Reporter) matrix(m *matrix.Dense) { r.write(FormatMatrix(m)) }

// Step prints a numbered header between two rules.
func (r *Reporter) Step(titleKey string) {
	r.step++
	rule := r.st.rule(strings.Repeat("-", ruleWidth))
	r.line(rule)
	r.line(r.st.title(r.p.Sprintf(msgStep, r.step, r.p.Sprintf(titleKey))))
	r.line(rule)
}

// Input prints the matrix under study.
func (r *Reporter) Input(a *matrix.Dense) {
	r.linef(msgInput)
	r.matrix(a)
}

// Spectrum prints the characteristic polynomial and both multiplicities.
func (r *Reporter) Spectrum(s jordan.Spectrum) {
	r.Step(msgSpectrum)
	r.linef(msgCharPoly, s.CharPoly.String())
	r.line("")
	r.linef(msgAlgebraic)
	for _, ev := range s.Eigenvalues {
		r.line(fmt.Sprintf("   λ = %s, a = %d", ev.Value.RatString(), ev.Algebraic))
	}
	r.line("")
	r.linef(msgGeometric)
	for _, ev := range s.Eigenvalues {
		r.line(fmt.Sprintf("   λ = %s, ρ = %d", ev.Value.RatString(), ev.Geometric))
	}
}

// Cells prints the block census and each Jordan cell.
func (r *Reporter) Cells(st jordan.Structure) {
	r.Step(msgCells)
	for _, t := range st.Tables {
		for k := 1; k <= len(t.Counts); k++ {
			if t.Counts[k-1] > 0 {
				r.linef(msgCellCount, t.Eigenvalue.Value.RatString(), k, k, t.Counts[k-1])
			}
		}
	}
	r.line("")
	r.linef(msgCellTotal, st.Spectrum.GeometricTotal())
	r.linef(msgCellList)
	for _, c := range st.Cells {
		r.matrix(c)
	}
}

// Form prints J.
func (r *Reporter) Form(j *matrix.Dense) {
	r.Step(msgForm)
	r.linef(msgFormHow)
	r.line("")
	r.linef(msgFormResult)
	r.matrix(j)
}

// RootVectors prints, per eigenvalue and order, rank(B^k), dim ker(B^k)
// and the new kernel vectors; verbose mode adds B^k itself.
func (r *Reporter) RootVectors(tables []jordan.BlockTable, roots []jordan.RootSpace) {
	r.Step(msgRoots)
	for i, space := range roots {
		alg := 0
		if i < len(tables) {
			alg = tables[i].Eigenvalue.Algebraic
		}
		r.line("")
		r.line(fmt.Sprintf("  λ = %s; a = %d", space.Eigenvalue.RatString(), alg))
		for _, lvl := range space.Levels {
			if r.verbose {
				r.line("")
				r.linef(msgPower, lvl.Order)
				r.matrix(lvl.Power)
			}
			r.line("")
			r.linef(msgOrder, lvl.Order)
			r.line(fmt.Sprintf("  rank(B^%d) = %d", lvl.Order, lvl.Rank))
			r.line(fmt.Sprintf("  dim(ker(B^%d)) = %d", lvl.Order, len(lvl.Kernel)))
			if lvl.Order == 1 {
				r.linef(msgEigenvectors)
				for j, v := range lvl.Kernel {
					r.line(fmt.Sprintf("    v_%d = %s", j+1, v))
				}
				continue
			}
			if len(lvl.New) > 0 {
				r.linef(msgRootsOfOrder, lvl.Order)
				for j, v := range lvl.New {
					r.line(fmt.Sprintf("    v_%d = %s", j+1, v))
				}
			}
		}
	}
}

// Chains prints, block by block, the chain built (head first) or the
// diagnostic of a skipped block; verbose mode adds the verdict on every
// candidate examined.
func (r *Reporter) Chains(tables []jordan.BlockTable, set jordan.ChainSet, policy jordan.Independence) {
	r.Step(msgChains)
	r.linef(msgPolicy, policy.String())

	for i, blk := range jordan.AllBlocks(tables) {
		r.line("")
		r.line(r.st.muted(r.p.Sprintf(msgBlock, blk.Size, blk.Size, blk.Eigenvalue.RatString())))
		if r.verbose {
			for _, tr := range set.Trace {
				if tr.Ordinal == i {
					r.line(r.p.Sprintf(msgCandidate, tr.Candidate.String(), r.verdict(tr.Verdict)))
				}
			}
		}
		for _, c := range set.Chains {
			if c.Ordinal == i {
				r.linef(msgChain, formatVectors(c.Vectors))
			}
		}
		for _, d := range set.Diagnostics {
			if d.Ordinal == i {
				r.Warning(d.Err)
			}
		}
	}
}

// Warning prints a highlighted, translated warning line.
func (r *Reporter) Warning(err error) {
	r.line(r.st.warning(r.p.Sprintf(msgWarning, err)))
}

// Transition prints P.
func (r *Reporter) Transition(p *matrix.Dense) {
	r.Step(msgTransition)
	r.linef(msgTransitionHelp)
	r.matrix(p)
}

// Check prints the banner, True/False, and an explanatory sentence.
func (r *Reporter) Check(v jordan.Verification) {
	r.Step(msgCheck)
	r.linef(msgCheckBanner)
	if v.Equal {
		r.line(r.st.success("True"))
		r.linef(msgCheckEqual)
		return
	}
	r.line(r.st.failure("False"))
	if !v.Invertible {
		r.linef(msgCheckSingular)
		return
	}
	r.linef(msgCheckDiffer)
}

// Result prints the whole transcript of a Solver run. runErr is the error
// returned by Run; a non-rational spectrum is reported in the transcript,
// any other error is printed as a warning after the completed steps.
// The returned error is the first write error.
func (r *Reporter) Result(res jordan.Result, policy jordan.Independence, runErr error) error {
	if res.A != nil {
		r.Input(res.A)
	}
	st := res.Structure
	if len(st.Spectrum.Eigenvalues) > 0 || !st.Spectrum.CharPoly.IsZero() {
		r.Spectrum(st.Spectrum)
	}
	if errors.Is(runErr, jordan.ErrNonRationalSpectrum) {
		r.line(r.st.failure(r.p.Sprintf(msgNonRational)))
		return r.err
	}
	if st.J != nil {
		r.Cells(st)
		r.Form(st.J)
	}
	if len(res.Chains.Roots) > 0 {
		r.RootVectors(st.Tables, res.Chains.Roots)
	}
	if len(res.Chains.Set.Chains) > 0 || len(res.Chains.Set.Diagnostics) > 0 {
		r.Chains(st.Tables, res.Chains.Set, policy)
	}
	if res.Chains.P != nil {
		r.Transition(res.Chains.P)
	}
	if runErr != nil {
		r.Warning(runErr)
		return r.err
	}
	r.Check(res.Verification)

	return r.err
}

func (r *Reporter) verdict(v jordan.Verdict) string {
	switch v {
	case jordan.VerdictAccepted:
		return r.st.success(r.p.Sprintf(msgAccepted))
	case jordan.VerdictWrongOrder:
		return r.p.Sprintf(msgWrongOrder)
	case jordan.VerdictDuplicate:
		return r.st.warning(r.p.Sprintf(msgDuplicate))
	case jordan.VerdictDependent:
		return r.st.warning(r.p.Sprintf(msgDependent))
	default:
		return v.String()
	}
}
