// Package galeshapley defines the result types, functional options and
// sentinel errors for the Gale–Shapley stable matching procedure.
package galeshapley

import (
	"errors"
	"fmt"
)

// Sentinel errors for input validation and execution.
var (
	// ErrEmptyInput is returned when the proposer group is empty.
	ErrEmptyInput = errors.New("galeshapley: proposers must be non-empty")

	// ErrSizeMismatch is returned when the two groups differ in size.
	ErrSizeMismatch = errors.New("galeshapley: proposers and receivers differ in size")

	// ErrDuplicateLabel is returned when a label repeats inside one group.
	ErrDuplicateLabel = errors.New("galeshapley: duplicate label in group")

	// ErrOverlappingLabels is returned when a label names both a proposer and a receiver.
	ErrOverlappingLabels = errors.New("galeshapley: label present in both groups")

	// ErrMissingPreferences is returned when a participant has no preference list.
	ErrMissingPreferences = errors.New("galeshapley: missing preference list")

	// ErrIncompletePreferences is returned when a preference list omits
	// a member of the opposite group.
	ErrIncompletePreferences = errors.New("galeshapley: incomplete preference list")

	// ErrUnknownLabel is returned when a preference list (or a preference key)
	// names a label outside the expected group.
	ErrUnknownLabel = errors.New("galeshapley: unknown label in preferences")

	// ErrDuplicatePreference is returned when a preference list ranks the same label twice.
	ErrDuplicatePreference = errors.New("galeshapley: duplicate label in preference list")

	// ErrCursorExhausted signals a proposer ran out of receivers to propose to.
	// Unreachable for validated input.
	ErrCursorExhausted = errors.New("galeshapley: proposal cursor exhausted")

	// ErrStepLimit is returned when the proposal count exceeds the configured cap.
	ErrStepLimit = errors.New("galeshapley: proposal step limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("galeshapley: invalid option supplied")

	// ErrNotPerfectMatching is returned by BlockingPairs when the supplied
	// engagements are not a bijection between the two groups.
	ErrNotPerfectMatching = errors.New("galeshapley: engagements are not a perfect matching")
)

// PreferenceError reports a defect in one participant's preference list.
// Err is one of the preference sentinels and is matched by errors.Is.
type PreferenceError struct {
	Owner string // participant whose list is defective
	Label string // offending or absent label; empty for a missing list
	Err   error
}

func (e *PreferenceError) Error() string {
	if e.Label == "" {
		return fmt.Sprintf("%v: owner %q", e.Err, e.Owner)
	}

	return fmt.Sprintf("%v: owner %q, label %q", e.Err, e.Owner, e.Label)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *PreferenceError) Unwrap() error { return e.Err }

// Preferences maps every participant label to its ranking of the opposite
// group, most preferred first.
type Preferences map[string][]string

// Pair is one receiver together with the proposer it holds.
type Pair struct {
	Receiver string
	Proposer string
}

// Proposal describes a single proposal step as seen by an OnProposal hook.
//   - Step:      1-based index of the proposal.
//   - Accepted:  whether the receiver now holds Proposer.
//   - Displaced: the previous holder freed by this proposal, or "".
type Proposal struct {
	Step      int
	Proposer  string
	Receiver  string
	Accepted  bool
	Displaced string
}

// Option configures Match via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when
// Match is invoked.
type Option func(*Options)

// Options holds the tunables of a matching run.
type Options struct {
	// OnProposal is called after every proposal with its outcome.
	OnProposal func(p Proposal)

	// MaxSteps caps the number of proposals. Zero selects |P|·|R|,
	// the proven upper bound for valid input.
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a no-op hook and the default step cap.
func DefaultOptions() Options {
	return Options{
		OnProposal: func(Proposal) {},
		MaxSteps:   0,
	}
}

// WithOnProposal registers a hook invoked after each proposal step.
func WithOnProposal(fn func(p Proposal)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProposal = fn
		}
	}
}

// WithMaxSteps caps the number of proposal steps.
//
//	n > 0:  fail with ErrStepLimit once n proposals were made without finishing
//	n == 0: default cap |P|·|R|
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// Result is the outcome of a matching run.
//   - Engagements: receiver → proposer, one entry per receiver.
//   - Steps:       number of proposals executed.
type Result struct {
	Engagements map[string]string
	Steps       int

	receivers []string
	partner   map[string]string // proposer → receiver
}

// Len returns the number of matched pairs.
func (r *Result) Len() int { return len(r.Engagements) }

// ProposerOf returns the proposer held by receiver.
func (r *Result) ProposerOf(receiver string) (string, bool) {
	p, ok := r.Engagements[receiver]
	return p, ok
}

// ReceiverOf returns the receiver holding proposer.
func (r *Result) ReceiverOf(proposer string) (string, bool) {
	w, ok := r.partner[proposer]
	return w, ok
}

// Pairs returns the matching as pairs, in receiver input order.
func (r *Result) Pairs() []Pair {
	out := make([]Pair, 0, len(r.receivers))
	for _, w := range r.receivers {
		out = append(out, Pair{Receiver: w, Proposer: r.Engagements[w]})
	}

	return out
}

// newResult builds a Result from receiver → proposer engagements.
func newResult(receivers []string, engaged map[string]string, steps int) *Result {
	partner := make(map[string]string, len(engaged))
	for w, m := range engaged {
		partner[m] = w
	}

	return &Result{
		Engagements: engaged,
		Steps:       steps,
		receivers:   receivers,
		partner:     partner,
	}
}
