// Package fstree holds the file trees searched by the duplicate finder:
// synthetic trees, trees loaded from disk, and their renderings.
package fstree

import (
	"fmt"
	"os"
	"slices"
)

// Entry is a directory or a file in a tree.
// A file holds its content in memory or reads it from source on demand.
type Entry struct {
	Name string

	file     bool
	content  []byte
	source   string
	children []*Entry
	parent   *Entry
}

// NewDir creates an empty directory entry.
func NewDir(name string) *Entry {
	return &Entry{Name: name}
}

// NewFile creates a file entry holding content.
func NewFile(name string, content []byte) *Entry {
	if content == nil {
		content = []byte{}
	}
	return &Entry{Name: name, file: true, content: content}
}

// newDiskFile creates a file entry whose content is read from path.
func newDiskFile(name, path string) *Entry {
	return &Entry{Name: name, file: true, source: path}
}

// Add appends children to a directory and returns it.
// Adding to a file panics: files have no children.
func (e *Entry) Add(children ...*Entry) *Entry {
	if e.file {
		panic(fmt.Sprintf("fstree: cannot add children to file %q", e.Name))
	}
	for _, c := range children {
		c.parent = e
		e.children = append(e.children, c)
	}
	return e
}

// IsFile reports whether the entry is a leaf holding content.
func (e *Entry) IsFile() bool {
	return e.file
}

// Children returns the entries of a directory in insertion order.
func (e *Entry) Children() []*Entry {
	return e.children
}

// Parent returns the containing directory, nil for a root.
func (e *Entry) Parent() *Entry {
	return e.parent
}

// Source returns the on-disk path of a lazily read file, "" otherwise.
func (e *Entry) Source() string {
	return e.source
}

// Content returns the bytes of a file.
func (e *Entry) Content() ([]byte, error) {
	if !e.file {
		return nil, fmt.Errorf("%q is a directory", e.Name)
	}
	if e.source == "" {
		return e.content, nil
	}

	data, err := os.ReadFile(e.source)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// PathLabels returns the names from the root down to e.
func (e *Entry) PathLabels() []string {
	var labels []string
	for n := e; n != nil; n = n.parent {
		labels = append(labels, n.Name)
	}
	slices.Reverse(labels)
	return labels
}

// Counts returns the number of directories and files below e, excluding e.
func (e *Entry) Counts() (dirs, files int) {
	for _, c := range e.children {
		if c.file {
			files++
			continue
		}
		d, f := c.Counts()
		dirs += d + 1
		files += f
	}
	return dirs, files
}

// Walk calls fn for e and every entry below it, depth-first in child order.
func (e *Entry) Walk(fn func(*Entry)) {
	fn(e)
	for _, c := range e.children {
		c.Walk(fn)
	}
}
