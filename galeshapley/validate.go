package galeshapley

import (
	"fmt"
	"slices"
)

// instance is a validated problem in index form.
//   - proposers/receivers: labels, in input order.
//   - choices[m]:          proposer m's list as receiver indices, best first.
//   - rank[w][m]:          position of proposer m on receiver w's list.
type instance struct {
	proposers []string
	receivers []string
	choices   [][]int
	rank      [][]int
}

// newInstance validates the input and converts it to index form.
// Checks run in a fixed order so the reported error does not depend on
// map iteration:
//
//	shape → duplicates → overlap → proposer lists → receiver lists → stray keys
func newInstance(proposers, receivers []string, prefs Preferences) (*instance, error) {
	if len(proposers) == 0 {
		return nil, ErrEmptyInput
	}
	if len(proposers) != len(receivers) {
		return nil, fmt.Errorf("%w: %d proposers, %d receivers", ErrSizeMismatch, len(proposers), len(receivers))
	}

	pIndex, err := indexGroup(proposers)
	if err != nil {
		return nil, err
	}
	rIndex, err := indexGroup(receivers)
	if err != nil {
		return nil, err
	}
	for _, w := range receivers {
		if _, ok := pIndex[w]; ok {
			return nil, fmt.Errorf("%w: %q", ErrOverlappingLabels, w)
		}
	}

	n := len(proposers)
	inst := &instance{
		proposers: slices.Clone(proposers),
		receivers: slices.Clone(receivers),
		choices:   make([][]int, n),
		rank:      make([][]int, n),
	}

	// Proposer lists are kept in preference order.
	for m, label := range proposers {
		list, err := indexList(label, prefs, rIndex, receivers)
		if err != nil {
			return nil, err
		}
		inst.choices[m] = list
	}

	// Receiver lists are inverted once so comparisons are O(1).
	for w, label := range receivers {
		list, err := indexList(label, prefs, pIndex, proposers)
		if err != nil {
			return nil, err
		}
		inv := make([]int, n)
		for pos, m := range list {
			inv[m] = pos
		}
		inst.rank[w] = inv
	}

	if len(prefs) != 2*n {
		var stray []string
		for k := range prefs {
			_, isP := pIndex[k]
			_, isR := rIndex[k]
			if !isP && !isR {
				stray = append(stray, k)
			}
		}
		if len(stray) > 0 {
			slices.Sort(stray)
			return nil, &PreferenceError{Owner: stray[0], Err: ErrUnknownLabel}
		}
	}

	return inst, nil
}

// indexGroup maps each label to its position, rejecting repeats.
func indexGroup(group []string) (map[string]int, error) {
	idx := make(map[string]int, len(group))
	for i, label := range group {
		if _, dup := idx[label]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
		}
		idx[label] = i
	}

	return idx, nil
}

// indexList converts owner's preference list to indices into the opposite
// group and checks that it is a permutation of that group.
func indexList(owner string, prefs Preferences, opposite map[string]int, order []string) ([]int, error) {
	list, ok := prefs[owner]
	if !ok {
		return nil, &PreferenceError{Owner: owner, Err: ErrMissingPreferences}
	}

	out := make([]int, 0, len(order))
	seen := make([]bool, len(order))
	for _, label := range list {
		i, ok := opposite[label]
		if !ok {
			return nil, &PreferenceError{Owner: owner, Label: label, Err: ErrUnknownLabel}
		}
		if seen[i] {
			return nil, &PreferenceError{Owner: owner, Label: label, Err: ErrDuplicatePreference}
		}
		seen[i] = true
		out = append(out, i)
	}

	if len(out) != len(order) {
		for i, s := range seen {
			if !s {
				return nil, &PreferenceError{Owner: owner, Label: order[i], Err: ErrIncompletePreferences}
			}
		}
	}

	return out, nil
}
