// Package galeshapley solves the stable marriage problem with the
// Gale–Shapley deferred-acceptance algorithm.
//
// 🚀 What is a stable matching?
//
//	Two equal-size groups, proposers and receivers, each rank every member
//	of the other group. A perfect matching is stable when no proposer and
//	receiver outside a common pair both prefer each other to the partners
//	they were assigned (no "blocking pair"). Typical uses:
//	  • Residency / school admission rounds
//	  • Pairing workers with shifts or tasks
//	  • Peer assignment (reviewers ↔ submissions, mentors ↔ mentees)
//
// ✨ Key features:
//   - proposer-optimal result: every proposer gets its best partner over
//     all stable matchings (MatchReceiverOptimal gives the mirror result)
//   - eager validation: group shapes and every preference list are checked
//     before the first proposal, with typed *PreferenceError diagnostics
//   - O(1) rank comparison via per-receiver inverse permutations
//   - FIFO free queue, fully deterministic for a given input order
//   - OnProposal hook to trace each step; MaxSteps defensive cap
//   - BlockingPairs / IsStable to audit any matching
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/stablematch/galeshapley"
//
//	prefs := galeshapley.Preferences{
//	  "A": {"X", "Y"}, "B": {"Y", "X"},
//	  "X": {"B", "A"}, "Y": {"A", "B"},
//	}
//
//	res, err := galeshapley.Match([]string{"A", "B"}, []string{"X", "Y"}, prefs)
//	if err != nil {
//	  // errors.Is(err, galeshapley.ErrIncompletePreferences), ...
//	}
//	fmt.Println(res.Engagements) // map[X:A Y:B]
//
// Algorithm Outline:
//  1. Every proposer is free, every receiver unheld, all cursors at 0.
//  2. While a proposer m is free (head of the FIFO queue), m proposes to
//     the next receiver w on its list and advances its cursor.
//  3. If w is unheld, w holds m.
//  4. Else if w ranks m above its holder m0, w holds m and m0 joins the
//     tail of the queue.
//  5. Otherwise w rejects m; m stays at the head.
//
// Performance:
//
//   - Time:   O(n²) proposals at most (n·n bound enforced)
//   - Memory: O(n²) for the index-form preference tables
//
// See examples in example_test.go.
package galeshapley
