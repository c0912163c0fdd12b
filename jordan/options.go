// SPDX-License-Identifier: MIT

// Package jordan: functional configuration for chain building and logging.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package jordan

import (
	"fmt"
	"log/slog"
	"strings"
)

// Independence selects how candidate root vectors are tested against the
// vectors already placed in chains.
type Independence int

const (
	// IndependenceRank accepts a candidate only if its whole chain raises the
	// rank of the used set by the chain length.
	IndependenceRank Independence = iota

	// IndependenceWeak rejects a candidate only if it equals a used vector exactly.
	IndependenceWeak
)

// String returns the policy name used by flags and transcripts.
func (i Independence) String() string {
	switch i {
	case IndependenceRank:
		return "rank"
	case IndependenceWeak:
		return "weak"
	default:
		return fmt.Sprintf("Independence(%d)", int(i))
	}
}

// ParseIndependence maps "rank" / "weak" (case-insensitive) to a policy.
// Errors: ErrUnknownIndependence.
func ParseIndependence(s string) (Independence, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rank":
		return IndependenceRank, nil
	case "weak":
		return IndependenceWeak, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownIndependence)
	}
}

// ---------- Defaults (single source of truth) ----------

// DefaultIndependence is the policy used when none is given.
const DefaultIndependence = IndependenceRank

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicIndependenceInvalid = "jordan: WithIndependence: unknown policy"
	panicLoggerNil           = "jordan: WithLogger: logger must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; build it with
// Option constructors.
type Options struct {
	independence Independence
	logger       *slog.Logger
}

// Independence reports the configured policy.
func (o Options) Independence() Independence { return o.independence }

// Logger reports the configured logger (never nil).
func (o Options) Logger() *slog.Logger { return o.logger }

// WithIndependence selects the candidate independence policy.
// Panics on values other than IndependenceRank / IndependenceWeak.
func WithIndependence(i Independence) Option {
	if i != IndependenceRank && i != IndependenceWeak {
		panic(panicIndependenceInvalid)
	}

	return func(o *Options) { o.independence = i }
}

// WithLogger routes diagnostics (skipped blocks, broken chains) to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// NewOptions resolves opts over the defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

func defaultOptions() Options {
	return Options{
		independence: DefaultIndependence,
		logger:       slog.New(slog.DiscardHandler),
	}
}

func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
