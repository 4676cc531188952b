package search

// walker holds the state of a single depth-limited pass.
type walker[S, A any] struct {
	problem Problem[S, A]
	limit   int
	arena   *Arena[S, A]
	visited int
}

// DepthLimitedSearch runs a depth-first search from p.Initial() that never
// creates a node deeper than limit.
//
// Siblings are explored in the order Actions returns them and the first goal
// reached wins. A node exactly at the limit reports Cutoff when it still has
// successors; they are listed but not expanded. Actions is therefore called
// on nodes at the limit too, so a problem whose Actions has side effects sees
// those calls. A negative limit visits nothing and reports Cutoff.
func DepthLimitedSearch[S, A any](p Problem[S, A], limit int, opts ...Option) Result[S, A] {
	o := buildOptions(opts)

	res := runPass(p, limit)
	if o.OnPass != nil {
		o.OnPass(PassStats{Limit: limit, Outcome: res.Outcome, Visited: res.Visited})
	}
	return res
}

// IterativeDeepeningSearch runs DepthLimitedSearch with limits 0, 1, 2, ...
// until a pass finds a goal or fails outright. The result is either Found,
// with a goal of minimum depth, or Failure; never Cutoff.
//
// There is no upper bound on the limit: a state space without finite depth
// does not terminate.
func IterativeDeepeningSearch[S, A any](p Problem[S, A], opts ...Option) Result[S, A] {
	o := buildOptions(opts)

	var visited int
	for limit := 0; ; limit++ {
		res := runPass(p, limit)
		visited += res.Visited

		if o.OnPass != nil {
			o.OnPass(PassStats{Limit: limit, Outcome: res.Outcome, Visited: res.Visited})
		}

		if res.Outcome == Cutoff {
			continue
		}

		res.Passes = limit + 1
		res.Visited = visited
		return res
	}
}

func runPass[S, A any](p Problem[S, A], limit int) Result[S, A] {
	w := &walker[S, A]{
		problem: p,
		limit:   limit,
		arena:   newArena[S, A](max(limit+1, 1)),
	}

	if limit < 0 {
		return Result[S, A]{Outcome: Cutoff, Limit: limit, Passes: 1, arena: w.arena, goal: NoParent}
	}

	root := w.arena.push(Node[S, A]{State: p.Initial(), Parent: NoParent})
	outcome, goal := w.visit(root)
	if outcome != Found {
		w.arena.truncate(0)
	}

	return Result[S, A]{
		Outcome: outcome,
		Limit:   limit,
		Passes:  1,
		Visited: w.visited,
		arena:   w.arena,
		goal:    goal,
	}
}

// visit explores the subtree under the node at idx. On success it returns
// the goal index and leaves the root-to-goal path in the arena; otherwise
// the arena is back to its length on entry plus the node itself.
func (w *walker[S, A]) visit(idx int) (Outcome, int) {
	w.visited++

	node := w.arena.Node(idx)
	if w.problem.IsGoal(node.State) {
		return Found, idx
	}

	actions := w.problem.Actions(node.State)
	if node.Depth >= w.limit {
		if len(actions) > 0 {
			return Cutoff, NoParent
		}
		return Failure, NoParent
	}

	cutoff := false
	for _, action := range actions {
		mark := w.arena.Len()
		child := w.arena.push(Node[S, A]{
			State:  w.problem.Result(node.State, action),
			Action: action,
			Parent: idx,
			Depth:  node.Depth + 1,
		})

		outcome, goal := w.visit(child)
		switch outcome {
		case Found:
			return Found, goal
		case Cutoff:
			cutoff = true
		}
		w.arena.truncate(mark)
	}

	if cutoff {
		return Cutoff, NoParent
	}
	return Failure, NoParent
}
