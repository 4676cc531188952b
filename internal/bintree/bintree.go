// Package bintree checks whether a value is stored in a binary tree.
package bintree

import (
	"fmt"

	"iddfs-go/internal/search"
)

type Node[T comparable] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]
}

func New[T comparable](value T) *Node[T] {
	return &Node[T]{Value: value}
}

// SetChildren replaces both children; either may be nil.
func (n *Node[T]) SetChildren(left, right *Node[T]) *Node[T] {
	n.Left = left
	n.Right = right
	return n
}

func (n *Node[T]) String() string {
	return fmt.Sprintf("<%v>", n.Value)
}

// Problem searches for the node holding Goal.
type Problem[T comparable] struct {
	Root *Node[T]
	Goal T
}

var _ search.Problem[*Node[int], *Node[int]] = Problem[int]{}

func (p Problem[T]) Initial() *Node[T] {
	return p.Root
}

// Actions yields the left child, then the right one, skipping absent ones.
func (p Problem[T]) Actions(state *Node[T]) []*Node[T] {
	actions := make([]*Node[T], 0, 2)
	if state.Left != nil {
		actions = append(actions, state.Left)
	}
	if state.Right != nil {
		actions = append(actions, state.Right)
	}
	return actions
}

func (p Problem[T]) Result(_ *Node[T], action *Node[T]) *Node[T] {
	return action
}

func (p Problem[T]) IsGoal(state *Node[T]) bool {
	return state.Value == p.Goal
}

// FindPath returns the values from root to the shallowest node holding goal.
func FindPath[T comparable](root *Node[T], goal T) ([]T, bool) {
	if root == nil {
		return nil, false
	}

	res := search.IterativeDeepeningSearch[*Node[T], *Node[T]](Problem[T]{Root: root, Goal: goal})
	if !res.Found() {
		return nil, false
	}

	states := res.PathStates()
	values := make([]T, len(states))
	for i, s := range states {
		values[i] = s.Value
	}
	return values, true
}

// Contains reports whether any node below root holds goal.
func Contains[T comparable](root *Node[T], goal T) bool {
	_, ok := FindPath(root, goal)
	return ok
}
