package report

import (
	"fmt"
	"strings"

	"iddfs-go/internal/dupfind"
	"iddfs-go/internal/namedtree"
)

// Summary describes one finished search run.
type Summary struct {
	Passes  int
	Visited int
	Skipped int
}

func FormatDuplicate(pair *dupfind.Pair, summary Summary) string {
	var b strings.Builder

	if pair == nil {
		b.WriteString("No duplicates found.\n")
	} else {
		found, original := pair.Paths()
		b.WriteString("Duplicate found:\n\n")
		fmt.Fprintf(&b, "  = %s\n", strings.Join(original, "/"))
		fmt.Fprintf(&b, "  = %s\n", strings.Join(found, "/"))
		fmt.Fprintf(&b, "    content (%d bytes): %s\n", len(pair.Content), preview(pair.Content, 64))
	}

	b.WriteString("\n")
	b.WriteString(formatSummary(summary))
	return b.String()
}

func FormatPath(labels []string) string {
	if len(labels) == 0 {
		return "Goal not found."
	}
	return "Path: " + strings.Join(labels, namedtree.PathSeparator)
}

func FormatMembership[T any](goal T, found bool) string {
	if found {
		return fmt.Sprintf("%v: present", goal)
	}
	return fmt.Sprintf("%v: absent", goal)
}

func formatSummary(s Summary) string {
	out := fmt.Sprintf("Summary: %d passes, %d nodes visited", s.Passes, s.Visited)
	if s.Skipped > 0 {
		out += fmt.Sprintf(", %d files skipped", s.Skipped)
	}
	return out + "\n"
}

// preview quotes content, cut to at most n bytes.
func preview(content []byte, n int) string {
	if len(content) <= n {
		return fmt.Sprintf("%q", content)
	}
	return fmt.Sprintf("%q...", content[:n])
}
