// Package namedtree locates a labelled node in a hierarchical tree and
// reports the path leading to it.
package namedtree

import (
	"errors"
	"fmt"
	"strings"

	"iddfs-go/internal/search"
)

// ErrNotFound is returned when no node carries the target label.
var ErrNotFound = errors.New("namedtree: goal not found")

// PathSeparator joins labels in Solve output.
const PathSeparator = " -> "

type Node struct {
	Label    string
	Children []*Node
}

func New(label string) *Node {
	return &Node{Label: label}
}

func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

func (n *Node) AddChildren(children ...*Node) *Node {
	for _, c := range children {
		n.AddChild(c)
	}
	return n
}

func (n *Node) String() string {
	return "<" + n.Label + ">"
}

// Problem searches for the node labelled Goal.
type Problem struct {
	Root *Node
	Goal string
}

var _ search.Problem[*Node, *Node] = Problem{}

func (p Problem) Initial() *Node {
	return p.Root
}

func (p Problem) Actions(state *Node) []*Node {
	return state.Children
}

func (p Problem) Result(_ *Node, action *Node) *Node {
	return action
}

func (p Problem) IsGoal(state *Node) bool {
	return state.Label == p.Goal
}

// FindPath returns the labels from root to the shallowest node labelled goal.
func FindPath(root *Node, goal string) ([]string, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: empty tree", ErrNotFound)
	}

	res := search.IterativeDeepeningSearch[*Node, *Node](Problem{Root: root, Goal: goal})
	if !res.Found() {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, goal)
	}

	states := res.PathStates()
	labels := make([]string, len(states))
	for i, s := range states {
		labels[i] = s.Label
	}
	return labels, nil
}

// Solve returns the path to goal formatted as "dir1 -> dir3 -> file5".
func Solve(root *Node, goal string) (string, error) {
	labels, err := FindPath(root, goal)
	if err != nil {
		return "", err
	}
	return strings.Join(labels, PathSeparator), nil
}
