package galeshapley

import "fmt"

// BlockingPairs returns every blocking pair of engagements: a receiver w
// and proposer m, not matched to each other, who both rank the other above
// their assigned partner. A stable matching yields an empty slice.
//
// engagements maps receiver → proposer and must be a perfect matching of
// the two groups, otherwise ErrNotPerfectMatching is returned. The instance
// itself is validated as in Match.
//
// Pairs are ordered by proposer input order, then by that proposer's
// preference order.
//
// Complexity: O(n²).
func BlockingPairs(proposers, receivers []string, prefs Preferences, engagements map[string]string) ([]Pair, error) {
	inst, err := newInstance(proposers, receivers, prefs)
	if err != nil {
		return nil, err
	}
	holder, partner, err := inst.assignment(engagements)
	if err != nil {
		return nil, err
	}

	var out []Pair
	for m, choices := range inst.choices {
		for _, w := range choices {
			if w == partner[m] {
				break // everything further down is worse than m's partner
			}
			if inst.rank[w][m] < inst.rank[w][holder[w]] {
				out = append(out, Pair{Receiver: inst.receivers[w], Proposer: inst.proposers[m]})
			}
		}
	}

	return out, nil
}

// IsStable reports whether engagements has no blocking pair.
func IsStable(proposers, receivers []string, prefs Preferences, engagements map[string]string) (bool, error) {
	pairs, err := BlockingPairs(proposers, receivers, prefs, engagements)
	if err != nil {
		return false, err
	}

	return len(pairs) == 0, nil
}

// assignment converts receiver → proposer labels into index slices
// holder[w] = m and partner[m] = w, checking it is a bijection.
func (inst *instance) assignment(engagements map[string]string) (holder, partner []int, err error) {
	n := len(inst.proposers)
	if len(engagements) != n {
		return nil, nil, fmt.Errorf("%w: %d engagements for %d receivers", ErrNotPerfectMatching, len(engagements), n)
	}

	pIndex := make(map[string]int, n)
	for i, m := range inst.proposers {
		pIndex[m] = i
	}
	partner = make([]int, n)
	for i := range partner {
		partner[i] = unheld
	}
	holder = make([]int, n)
	for w, wl := range inst.receivers {
		ml, ok := engagements[wl]
		if !ok {
			return nil, nil, fmt.Errorf("%w: receiver %q unmatched", ErrNotPerfectMatching, wl)
		}
		m, ok := pIndex[ml]
		if !ok {
			return nil, nil, fmt.Errorf("%w: receiver %q holds unknown proposer %q", ErrNotPerfectMatching, wl, ml)
		}
		if partner[m] != unheld {
			return nil, nil, fmt.Errorf("%w: proposer %q matched twice", ErrNotPerfectMatching, ml)
		}
		holder[w] = m
		partner[m] = w
	}

	return holder, partner, nil
}
