package fstree

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Materialize writes the tree below root into dir, replacing whatever is
// there. Directories are created first, then files are written by up to
// workers goroutines. It returns the path of the written root directory.
func Materialize(ctx context.Context, root *Entry, dir string, workers int) (string, error) {
	if root.IsFile() {
		return "", fmt.Errorf("root %q is a file", root.Name)
	}
	if workers <= 0 {
		workers = 1
	}

	if !validName(root.Name) {
		return "", fmt.Errorf("root name %q is not a single path element", root.Name)
	}
	rootPath := filepath.Join(dir, root.Name)
	if rel, err := filepath.Rel(dir, rootPath); err != nil || rel == "." || !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%s escapes %s", rootPath, dir)
	}
	if err := os.RemoveAll(rootPath); err != nil {
		return "", fmt.Errorf("failed to clear %s: %w", rootPath, err)
	}

	type fileJob struct {
		path  string
		entry *Entry
	}
	var jobs []fileJob

	var mkdirs func(e *Entry, path string) error
	mkdirs = func(e *Entry, path string) error {
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
		for _, c := range e.children {
			if !validName(c.Name) {
				return fmt.Errorf("entry name %q is not a single path element", c.Name)
			}
			childPath := filepath.Join(path, c.Name)
			if c.file {
				jobs = append(jobs, fileJob{path: childPath, entry: c})
				continue
			}
			if err := mkdirs(c, childPath); err != nil {
				return err
			}
		}
		return nil
	}
	if err := mkdirs(root, rootPath); err != nil {
		return "", err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := job.entry.Content()
			if err != nil {
				return fmt.Errorf("%s: %w", job.path, err)
			}
			if err := os.WriteFile(job.path, data, 0644); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	return rootPath, nil
}

// validName reports whether name is a single path element that stays in
// its parent directory.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsRune(name, '/') && !strings.ContainsRune(name, filepath.Separator)
}
