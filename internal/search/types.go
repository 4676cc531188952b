package search

// Outcome is the terminal signal of a search pass.
type Outcome int

const (
	// Failure means the reachable space was exhausted without a goal.
	Failure Outcome = iota
	// Cutoff means the depth limit stopped the pass before the space was
	// exhausted, so a deeper pass might still succeed.
	Cutoff
	// Found means a goal node was reached.
	Found
)

func (o Outcome) String() string {
	switch o {
	case Failure:
		return "failure"
	case Cutoff:
		return "cutoff"
	case Found:
		return "found"
	default:
		return "unknown"
	}
}

// PassStats describes one depth-limited pass.
type PassStats struct {
	Limit   int
	Outcome Outcome
	Visited int // nodes goal-tested during the pass
}

// Option configures a search run.
type Option func(*Options)

// Options holds the optional hooks of a search run.
type Options struct {
	// OnPass, if non-nil, is called after every depth-limited pass.
	OnPass func(PassStats)
}

// WithOnPass installs fn as the per-pass hook.
func WithOnPass(fn func(PassStats)) Option {
	return func(o *Options) {
		o.OnPass = fn
	}
}

func buildOptions(opts []Option) Options {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Result is what a search run returns.
type Result[S, A any] struct {
	Outcome Outcome
	Limit   int // depth limit of the last pass
	Passes  int
	Visited int // nodes goal-tested across all passes

	arena *Arena[S, A]
	goal  int
}

// Found reports whether a goal node was reached.
func (r Result[S, A]) Found() bool {
	return r.Outcome == Found
}

// Goal returns the goal node when one was found.
func (r Result[S, A]) Goal() (Node[S, A], bool) {
	if !r.Found() {
		var zero Node[S, A]
		return zero, false
	}
	return r.arena.Node(r.goal), true
}

// Arena returns the arena of the last pass. After a successful run it holds
// exactly the root-to-goal path.
func (r Result[S, A]) Arena() *Arena[S, A] {
	return r.arena
}

// PathStates returns the states from the root to the goal, or nil.
func (r Result[S, A]) PathStates() []S {
	if !r.Found() {
		return nil
	}
	path := r.arena.Path(r.goal)
	states := make([]S, len(path))
	for i, idx := range path {
		states[i] = r.arena.Node(idx).State
	}
	return states
}

// PathActions returns the actions leading from the root to the goal, or nil.
// A goal at the root yields an empty, non-nil slice.
func (r Result[S, A]) PathActions() []A {
	if !r.Found() {
		return nil
	}
	path := r.arena.Path(r.goal)
	actions := make([]A, 0, len(path)-1)
	for _, idx := range path[1:] {
		actions = append(actions, r.arena.Node(idx).Action)
	}
	return actions
}
