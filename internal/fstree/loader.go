package fstree

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

type LoadResult struct {
	Root   *Entry
	Files  int
	Errors []error
}

// Load builds a tree mirroring the directory at rootPath. File content is
// read lazily. Entries matching an exclusion pattern are left out, and
// entries that cannot be read are recorded in Errors and skipped.
func Load(rootPath string, exclusions []string) (*LoadResult, error) {
	result := &LoadResult{
		Errors: make([]error, 0),
	}
	dirs := make(map[string]*Entry)

	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// If error is on the root path, return it (don't continue walking)
			if path == rootPath {
				return err
			}
			// Skip permission errors and continue walking
			result.Errors = append(result.Errors, err)
			return nil
		}

		if path == rootPath {
			if !d.IsDir() {
				return fmt.Errorf("%s is not a directory", rootPath)
			}
			result.Root = NewDir(filepath.Base(path))
			dirs[path] = result.Root
			return nil
		}

		// Get relative path for matching
		relPath, err := filepath.Rel(rootPath, path)
		if err != nil {
			result.Errors = append(result.Errors, err)
			return nil
		}

		// Check if path should be excluded
		if shouldExclude(relPath, exclusions) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		parent, ok := dirs[filepath.Dir(path)]
		if !ok {
			return nil
		}

		switch {
		case d.IsDir():
			dir := NewDir(d.Name())
			parent.Add(dir)
			dirs[path] = dir
		case d.Type().IsRegular():
			parent.Add(newDiskFile(d.Name(), path))
			result.Files++
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	return result, nil
}

func shouldExclude(relPath string, exclusions []string) bool {
	for _, pattern := range exclusions {
		// Handle directory exclusions (patterns ending with /)
		if strings.HasSuffix(pattern, "/") {
			dirPattern := strings.TrimSuffix(pattern, "/")
			// Check if the current path or any parent matches the directory pattern
			parts := strings.Split(relPath, string(filepath.Separator))
			for _, part := range parts {
				if matched, _ := filepath.Match(dirPattern, part); matched {
					return true
				}
			}
			continue
		}

		// Handle file pattern exclusions
		if matched, err := filepath.Match(pattern, filepath.Base(relPath)); err == nil && matched {
			return true
		}
		// Also try matching against the full relative path for patterns with /
		if strings.Contains(pattern, "/") {
			if matched, err := filepath.Match(pattern, relPath); err == nil && matched {
				return true
			}
		}
	}
	return false
}
