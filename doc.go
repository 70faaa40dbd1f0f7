// Package stablematch is a small, dependency-free home for stable matching
// algorithms on two-sided markets.
//
// 🚀 What is stablematch?
//
//	Given two equal-size groups that rank each other, find a pairing no two
//	outsiders would both rather break. Packages:
//		• galeshapley: deferred acceptance (proposer- and receiver-optimal),
//		  eager input validation, blocking-pair audit
//
// ✨ Why choose stablematch?
//
//   - Deterministic – same input order, same proposals, same result
//   - Fail fast – malformed preference lists are rejected before matching
//   - Pure Go – no cgo, no hidden deps
//   - Observable – OnProposal hook to trace every step
//
// Quick example:
//
//	A ─ X    proposers A,B,C each get their first choice
//	B ─ Y    when receivers X,Y,Z rank them first as well
//	C ─ Z
//
// See examples/ for a runnable program.
//
//	go get github.com/katalvlaran/stablematch
package stablematch
