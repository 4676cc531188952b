// Package search implements iterative-deepening depth-first search over
// tree-shaped state spaces described by a Problem.
//
// A Problem is single-use: adapters are allowed to keep bookkeeping that
// Actions mutates during a run, so one instance must not be searched twice
// at the same time or shared across goroutines.
package search

// Problem describes a state space rooted at Initial.
//
// Actions lists the moves available from a state in the order they should be
// explored. Result applies a move and must not have side effects. IsGoal
// reports whether a state satisfies the search target; problems without a
// target return false.
type Problem[S, A any] interface {
	Initial() S
	Actions(state S) []A
	Result(state S, action A) S
	IsGoal(state S) bool
}
