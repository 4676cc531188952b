package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"iddfs-go/internal/search"
)

func TestReporter_RendersEachPass(t *testing.T) {
	var buf bytes.Buffer
	r := NewWithWriter(&buf)

	r.Pass(search.PassStats{Limit: 0, Outcome: search.Cutoff, Visited: 1})
	r.Pass(search.PassStats{Limit: 1, Outcome: search.Found, Visited: 3})
	r.Finish()

	out := buf.String()
	assert.Contains(t, out, "[█] depth 0: cutoff (1 nodes, 1 total)")
	assert.Contains(t, out, "[██] depth 1: found (3 nodes, 4 total)")
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")))

	passes, visited := r.Totals()
	assert.Equal(t, 2, passes)
	assert.Equal(t, 4, visited)
}

func TestReporter_Disabled(t *testing.T) {
	var buf bytes.Buffer
	r := NewWithWriter(&buf)
	r.Disable()

	r.Pass(search.PassStats{Limit: 0, Outcome: search.Failure, Visited: 1})
	r.Finish()

	assert.Empty(t, buf.String())
	passes, _ := r.Totals()
	assert.Equal(t, 1, passes)
}

func TestReporter_FinishWithoutPasses(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(&buf).Finish()
	assert.Empty(t, buf.String())
}

func TestReporter_AsSearchHook(t *testing.T) {
	var buf bytes.Buffer
	r := NewWithWriter(&buf)

	search.DepthLimitedSearch[int, int](countdown(2), 5, search.WithOnPass(r.Pass))

	passes, visited := r.Totals()
	assert.Equal(t, 1, passes)
	assert.Equal(t, 3, visited)
}

// countdown is a chain n -> n-1 -> ... -> 0 with no goal.
type countdown int

func (c countdown) Initial() int { return int(c) }

func (c countdown) Actions(s int) []int {
	if s == 0 {
		return nil
	}
	return []int{s - 1}
}

func (c countdown) Result(_ int, a int) int { return a }

func (c countdown) IsGoal(int) bool { return false }
