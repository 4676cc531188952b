package fstree

import (
	"fmt"
	"strings"
)

// Render draws the tree with box-drawing branches and a count footer.
func Render(root *Entry) string {
	var b strings.Builder
	b.WriteString(root.Name)
	b.WriteString("\n")
	renderChildren(&b, root, "")

	dirs, files := root.Counts()
	fmt.Fprintf(&b, "\nDirectories: %d, Files: %d", dirs, files)
	return b.String()
}

func renderChildren(b *strings.Builder, e *Entry, branch string) {
	for i, c := range e.children {
		last := i == len(e.children)-1

		b.WriteString(branch)
		if last {
			b.WriteString("└── ")
		} else {
			b.WriteString("├── ")
		}
		b.WriteString(c.Name)
		b.WriteString("\n")

		if c.file {
			continue
		}
		if last {
			renderChildren(b, c, branch+"    ")
		} else {
			renderChildren(b, c, branch+"│   ")
		}
	}
}
