package search

import "slices"

// NoParent is the parent index of a root node.
const NoParent = -1

// Node wraps a state visited during search.
type Node[S, A any] struct {
	State  S
	Action A // zero value for the root
	Parent int
	Depth  int
}

// IsRoot reports whether the node has no parent.
func (n Node[S, A]) IsRoot() bool {
	return n.Parent == NoParent
}

// Arena stores the nodes of one search pass, addressed by index.
// Parents always sit at a lower index than their children.
type Arena[S, A any] struct {
	nodes []Node[S, A]
}

func newArena[S, A any](capacity int) *Arena[S, A] {
	return &Arena[S, A]{nodes: make([]Node[S, A], 0, capacity)}
}

func (a *Arena[S, A]) push(n Node[S, A]) int {
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1
}

// truncate drops every node at index n or above.
func (a *Arena[S, A]) truncate(n int) {
	clear(a.nodes[n:])
	a.nodes = a.nodes[:n]
}

// Len returns the number of nodes currently held.
func (a *Arena[S, A]) Len() int {
	return len(a.nodes)
}

// Node returns the node at index i.
func (a *Arena[S, A]) Node(i int) Node[S, A] {
	return a.nodes[i]
}

// Path returns the indices from the root to node i, root first.
func (a *Arena[S, A]) Path(i int) []int {
	if i < 0 || i >= len(a.nodes) {
		return nil
	}

	path := make([]int, 0, a.nodes[i].Depth+1)
	for ; i != NoParent; i = a.nodes[i].Parent {
		path = append(path, i)
	}

	slices.Reverse(path)
	return path
}
