package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"iddfs-go/internal/search"
)

// Reporter redraws a single status line after every search pass.
type Reporter struct {
	writer  io.Writer
	mu      sync.Mutex
	enabled bool
	passes  int
	visited int
	last    search.PassStats
}

func New() *Reporter {
	return NewWithWriter(os.Stdout)
}

func NewWithWriter(w io.Writer) *Reporter {
	return &Reporter{
		writer:  w,
		enabled: true,
	}
}

// Disable turns the reporter into a no-op.
func (r *Reporter) Disable() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled = false
}

// Pass is meant to be installed with search.WithOnPass.
func (r *Reporter) Pass(stats search.PassStats) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.passes++
	r.visited += stats.Visited
	r.last = stats

	if r.enabled {
		r.render()
	}
}

// render must be called with mu already locked
func (r *Reporter) render() {
	bar := strings.Repeat("█", r.last.Limit+1)

	// Clear the line and write progress
	fmt.Fprintf(r.writer, "\r\033[K[%s] depth %d: %s (%d nodes, %d total)",
		bar, r.last.Limit, r.last.Outcome, r.last.Visited, r.visited)
}

// Totals returns the number of passes and visited nodes seen so far.
func (r *Reporter) Totals() (passes, visited int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.passes, r.visited
}

func (r *Reporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.enabled || r.passes == 0 {
		return
	}
	fmt.Fprintf(r.writer, "\n")
}
