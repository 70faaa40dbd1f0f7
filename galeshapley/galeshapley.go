// Package galeshapley computes stable matchings between two equal-size
// groups with complete, strict preference lists.
//
// Match runs the proposer-proposing deferred-acceptance procedure and
// returns the proposer-optimal stable matching.
package galeshapley

import (
	"fmt"
	"slices"
)

const unheld = -1

// matcher encapsulates mutable state of one run.
type matcher struct {
	inst    *instance
	opts    Options
	cursor  []int // next position on each proposer's list
	holder  []int // receiver → held proposer, or unheld
	free    []int // FIFO of free proposers; head is proposing
	steps   int
	maxStep int
}

// Match computes the proposer-optimal stable matching of proposers and
// receivers under prefs.
//
// Every proposer and receiver must have a preference list in prefs that is
// a permutation of the opposite group. Input is validated before any
// proposal is made; on error no partial result is returned.
//
// Free proposers are served in FIFO order starting from input order:
// a rejected proposer proposes again at once, a displaced one is appended
// to the queue. The matching itself does not depend on that order.
//
// Errors:
//   - ErrEmptyInput, ErrSizeMismatch, ErrDuplicateLabel, ErrOverlappingLabels
//   - *PreferenceError wrapping ErrMissingPreferences, ErrUnknownLabel,
//     ErrDuplicatePreference or ErrIncompletePreferences
//   - ErrOptionViolation for bad options
//   - ErrStepLimit if the proposal cap is reached
//   - ErrCursorExhausted on an internal invariant violation
//
// Complexity: O(n²) time and memory for n participants per group.
func Match(proposers, receivers []string, prefs Preferences, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	inst, err := newInstance(proposers, receivers, prefs)
	if err != nil {
		return nil, err
	}

	return run(inst, o)
}

// MatchReceiverOptimal computes the receiver-optimal stable matching by
// letting receivers propose. The result is still keyed receiver → proposer;
// Steps counts receiver proposals.
func MatchReceiverOptimal(proposers, receivers []string, prefs Preferences, opts ...Option) (*Result, error) {
	if len(proposers) == 0 {
		return nil, ErrEmptyInput
	}
	swapped, err := Match(receivers, proposers, prefs, opts...)
	if err != nil {
		return nil, err
	}

	engaged := make(map[string]string, len(swapped.Engagements))
	for m, w := range swapped.Engagements {
		engaged[w] = m
	}

	return newResult(slices.Clone(receivers), engaged, swapped.Steps), nil
}

// run executes the proposal loop on a validated instance.
func run(inst *instance, o Options) (*Result, error) {
	n := len(inst.proposers)
	mt := &matcher{
		inst:    inst,
		opts:    o,
		cursor:  make([]int, n),
		holder:  make([]int, len(inst.receivers)),
		free:    make([]int, 0, n),
		maxStep: n * len(inst.receivers),
	}
	if o.MaxSteps > 0 {
		mt.maxStep = o.MaxSteps
	}
	for w := range mt.holder {
		mt.holder[w] = unheld
	}
	for m := 0; m < n; m++ {
		mt.free = append(mt.free, m)
	}

	if err := mt.loop(); err != nil {
		return nil, err
	}

	engaged := make(map[string]string, len(mt.holder))
	for w, m := range mt.holder {
		engaged[inst.receivers[w]] = inst.proposers[m]
	}

	return newResult(inst.receivers, engaged, mt.steps), nil
}

// loop proposes until no proposer is free.
func (mt *matcher) loop() error {
	for len(mt.free) > 0 {
		if mt.steps >= mt.maxStep {
			return fmt.Errorf("%w: %d proposals, %d proposers still free", ErrStepLimit, mt.steps, len(mt.free))
		}
		if err := mt.propose(mt.free[0]); err != nil {
			return err
		}
	}

	return nil
}

// propose lets proposer m ask the next receiver on its list.
func (mt *matcher) propose(m int) error {
	list := mt.inst.choices[m]
	if mt.cursor[m] >= len(list) {
		return fmt.Errorf("%w: %q after %d proposals", ErrCursorExhausted, mt.inst.proposers[m], mt.cursor[m])
	}
	w := list[mt.cursor[m]]
	mt.cursor[m]++
	mt.steps++

	ev := Proposal{
		Step:     mt.steps,
		Proposer: mt.inst.proposers[m],
		Receiver: mt.inst.receivers[w],
	}

	switch cur := mt.holder[w]; {
	case cur == unheld:
		mt.holder[w] = m
		mt.free = mt.free[1:]
		ev.Accepted = true
	case mt.inst.rank[w][m] < mt.inst.rank[w][cur]:
		mt.holder[w] = m
		mt.free = append(mt.free[1:], cur)
		ev.Accepted = true
		ev.Displaced = mt.inst.proposers[cur]
	default:
		// rejected: m stays at the head and tries its next choice
	}

	mt.opts.OnProposal(ev)

	return nil
}
