// Package dupfind finds a pair of files with identical content in a file
// tree by exhausting an iterative-deepening search over it.
package dupfind

import (
	"bytes"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	"iddfs-go/internal/fstree"
	"iddfs-go/internal/hash"
	"iddfs-go/internal/search"
)

// Pair is a recorded duplicate: Found was reached after Original.
type Pair struct {
	Found    *fstree.Entry
	Original *fstree.Entry
	Content  []byte
}

// Paths returns the root-to-file label paths of both members.
func (p *Pair) Paths() (found, original []string) {
	return p.Found.PathLabels(), p.Original.PathLabels()
}

type Option func(*Problem)

// WithHasher replaces the xxHash content digest.
func WithHasher(fn hash.Func) Option {
	return func(p *Problem) {
		p.hasher = fn
	}
}

// Problem treats every entry of a file tree as a state. Hashing happens as a
// side effect of listing a file's actions; the problem has no goal, so a
// search over it always runs to exhaustion.
//
// A Problem records at most one pair and must be used for one search only.
type Problem struct {
	root   *fstree.Entry
	hasher hash.Func

	buckets   map[uint64][]*fstree.Entry
	seen      map[*fstree.Entry]struct{}
	duplicate *Pair
	skipped   int
}

var _ search.Problem[*fstree.Entry, *fstree.Entry] = (*Problem)(nil)

func NewProblem(root *fstree.Entry, opts ...Option) *Problem {
	p := &Problem{
		root:    root,
		hasher:  hash.Sum,
		buckets: make(map[uint64][]*fstree.Entry),
		seen:    make(map[*fstree.Entry]struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Problem) Initial() *fstree.Entry {
	return p.root
}

func (p *Problem) Actions(state *fstree.Entry) []*fstree.Entry {
	if !state.IsFile() {
		return state.Children()
	}

	if _, ok := p.seen[state]; ok {
		return nil
	}
	p.seen[state] = struct{}{}

	content, err := state.Content()
	if err != nil {
		p.skipped++
		logx.Errorf("skipping %s: %v", strings.Join(state.PathLabels(), "/"), err)
		return nil
	}

	h := p.hasher(content)
	for _, other := range p.buckets[h] {
		// Entries in a bucket were readable when they were added.
		otherContent, err := other.Content()
		if err != nil || !bytes.Equal(content, otherContent) {
			continue
		}
		if p.duplicate == nil {
			p.duplicate = &Pair{Found: state, Original: other, Content: content}
		}
		return nil
	}
	p.buckets[h] = append(p.buckets[h], state)
	return nil
}

func (p *Problem) Result(_ *fstree.Entry, action *fstree.Entry) *fstree.Entry {
	return action
}

func (p *Problem) IsGoal(*fstree.Entry) bool {
	return false
}

// Duplicate returns the recorded pair, if any.
func (p *Problem) Duplicate() (*Pair, bool) {
	return p.duplicate, p.duplicate != nil
}

// Skipped returns how many files could not be read.
func (p *Problem) Skipped() int {
	return p.skipped
}

// Find searches the tree below root and returns the first duplicate pair.
func Find(root *fstree.Entry, opts ...Option) (*Pair, bool) {
	p := NewProblem(root, opts...)
	search.IterativeDeepeningSearch[*fstree.Entry, *fstree.Entry](p)
	return p.Duplicate()
}
