// Package galeshapley_test provides fixtures and brute-force helpers shared
// across the *_test.go files of this package.
package galeshapley_test

import (
	"fmt"
	"maps"
	"math/rand"
	"slices"

	"github.com/katalvlaran/stablematch/galeshapley"
)

// seedDet is the base seed for randomized instances.
const seedDet = int64(1)

// referenceInstance is the 3×3 instance where every first choice is mutual.
func referenceInstance() ([]string, []string, galeshapley.Preferences) {
	return []string{"A", "B", "C"},
		[]string{"X", "Y", "Z"},
		galeshapley.Preferences{
			"A": {"X", "Y", "Z"},
			"B": {"Y", "X", "Z"},
			"C": {"Z", "X", "Y"},
			"X": {"A", "B", "C"},
			"Y": {"B", "A", "C"},
			"Z": {"C", "A", "B"},
		}
}

// contestedInstance makes every proposer start with X, forcing two
// displacements. Proposer-optimal result: X:C Y:A Z:B in five proposals.
func contestedInstance() ([]string, []string, galeshapley.Preferences) {
	return []string{"A", "B", "C"},
		[]string{"X", "Y", "Z"},
		galeshapley.Preferences{
			"A": {"X", "Y", "Z"},
			"B": {"X", "Z", "Y"},
			"C": {"X", "Y", "Z"},
			"X": {"C", "B", "A"},
			"Y": {"A", "C", "B"},
			"Z": {"B", "A", "C"},
		}
}

// twoStableInstance has exactly two stable matchings:
// proposer-optimal X:A Y:B and receiver-optimal X:B Y:A.
func twoStableInstance() ([]string, []string, galeshapley.Preferences) {
	return []string{"A", "B"},
		[]string{"X", "Y"},
		galeshapley.Preferences{
			"A": {"X", "Y"},
			"B": {"Y", "X"},
			"X": {"B", "A"},
			"Y": {"A", "B"},
		}
}

// randomInstance builds an n×n instance with uniformly shuffled lists.
func randomInstance(n int, rng *rand.Rand) ([]string, []string, galeshapley.Preferences) {
	proposers := make([]string, n)
	receivers := make([]string, n)
	for i := 0; i < n; i++ {
		proposers[i] = fmt.Sprintf("p%d", i)
		receivers[i] = fmt.Sprintf("r%d", i)
	}

	prefs := make(galeshapley.Preferences, 2*n)
	for _, p := range proposers {
		list := slices.Clone(receivers)
		rng.Shuffle(n, func(i, j int) { list[i], list[j] = list[j], list[i] })
		prefs[p] = list
	}
	for _, r := range receivers {
		list := slices.Clone(proposers)
		rng.Shuffle(n, func(i, j int) { list[i], list[j] = list[j], list[i] })
		prefs[r] = list
	}

	return proposers, receivers, prefs
}

// clonePrefs deep-copies prefs.
func clonePrefs(prefs galeshapley.Preferences) galeshapley.Preferences {
	out := make(galeshapley.Preferences, len(prefs))
	for k, v := range prefs {
		out[k] = slices.Clone(v)
	}

	return out
}

// allStableMatchings enumerates every perfect matching (n! of them) and keeps
// the stable ones. Only for small n.
func allStableMatchings(proposers, receivers []string, prefs galeshapley.Preferences) ([]map[string]string, error) {
	var out []map[string]string
	var perm func(k int, used []bool, cur map[string]string) error
	perm = func(k int, used []bool, cur map[string]string) error {
		if k == len(receivers) {
			ok, err := galeshapley.IsStable(proposers, receivers, prefs, cur)
			if err != nil {
				return err
			}
			if ok {
				out = append(out, maps.Clone(cur))
			}
			return nil
		}
		for i, p := range proposers {
			if used[i] {
				continue
			}
			used[i] = true
			cur[receivers[k]] = p
			if err := perm(k+1, used, cur); err != nil {
				return err
			}
			delete(cur, receivers[k])
			used[i] = false
		}
		return nil
	}

	err := perm(0, make([]bool, len(proposers)), make(map[string]string, len(receivers)))

	return out, err
}

// rankOf returns the position of label in list, or -1.
func rankOf(list []string, label string) int {
	return slices.Index(list, label)
}

// invert flips receiver → proposer into proposer → receiver.
func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}

	return out
}
