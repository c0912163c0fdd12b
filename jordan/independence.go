// SPDX-License-Identifier: MIT

package jordan

import (
	"github.com/katalvlaran/jordan/matrix"
)

// Verdict is the outcome of testing one candidate root vector.
type Verdict int

const (
	// VerdictAccepted: the candidate heads a new chain.
	VerdictAccepted Verdict = iota
	// VerdictWrongOrder: B^(k−1)·v = 0, so v has order below k.
	VerdictWrongOrder
	// VerdictDuplicate: v equals a vector already placed in a chain.
	VerdictDuplicate
	// VerdictDependent: the chain of v does not raise the rank of the used set
	// by its length.
	VerdictDependent
)

// String returns the trace label of the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictAccepted:
		return "accepted"
	case VerdictWrongOrder:
		return "wrong-order"
	case VerdictDuplicate:
		return "duplicate"
	case VerdictDependent:
		return "dependent"
	default:
		return "unknown"
	}
}

// UsedVectors is the immutable set of vectors already placed in chains,
// in placement order. With returns an extended copy; the receiver is never
// modified.
type UsedVectors struct {
	vs []matrix.Vector
}

// With returns a new set holding the receiver's vectors followed by vs.
func (u UsedVectors) With(vs ...matrix.Vector) UsedVectors {
	next := make([]matrix.Vector, 0, len(u.vs)+len(vs))
	next = append(next, u.vs...)
	for _, v := range vs {
		next = append(next, v.Clone())
	}

	return UsedVectors{vs: next}
}

// Len returns the number of used vectors.
func (u UsedVectors) Len() int { return len(u.vs) }

// Vectors returns the used vectors in placement order (shallow copy).
func (u UsedVectors) Vectors() []matrix.Vector {
	out := make([]matrix.Vector, len(u.vs))
	copy(out, u.vs)

	return out
}

// Contains reports whether v equals some used vector exactly.
func (u UsedVectors) Contains(v matrix.Vector) bool {
	for _, w := range u.vs {
		if w.Equal(v) {
			return true
		}
	}

	return false
}

// Rank returns the rank of the used vectors taken as columns.
func (u UsedVectors) Rank() (int, error) { return matrix.RankOfColumns(u.vs) }

// independenceTest decides whether a candidate chain (head first) may join
// the used set. The order test has already passed.
type independenceTest interface {
	admit(used UsedVectors, chain []matrix.Vector) (Verdict, error)
}

func newIndependenceTest(p Independence) independenceTest {
	if p == IndependenceWeak {
		return weakIndependence{}
	}

	return rankIndependence{}
}

// weakIndependence rejects only exact repeats of the head. Scalar multiples
// and combinations of used vectors pass.
type weakIndependence struct{}

func (weakIndependence) admit(used UsedVectors, chain []matrix.Vector) (Verdict, error) {
	if used.Contains(chain[0]) {
		return VerdictDuplicate, nil
	}

	return VerdictAccepted, nil
}

// rankIndependence requires rank(used ∪ chain) = rank(used) + len(chain).
type rankIndependence struct{}

func (rankIndependence) admit(used UsedVectors, chain []matrix.Vector) (Verdict, error) {
	if used.Contains(chain[0]) {
		return VerdictDuplicate, nil
	}
	before, err := used.Rank()
	if err != nil {
		return 0, err
	}
	after, err := used.With(chain...).Rank()
	if err != nil {
		return 0, err
	}
	if after != before+len(chain) {
		return VerdictDependent, nil
	}

	return VerdictAccepted, nil
}
