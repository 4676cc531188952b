package fstree

import (
	"fmt"
	"math/rand/v2"
)

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GeneratorConfig controls the shape of a synthetic tree.
type GeneratorConfig struct {
	RootName        string  `yaml:"root_name" toml:"root_name"`
	Seed            uint64  `yaml:"seed" toml:"seed"`
	MaxDepth        int     `yaml:"max_depth" toml:"max_depth"`
	Breadth         int     `yaml:"breadth" toml:"breadth"`
	DuplicateChance float64 `yaml:"duplicate_chance" toml:"duplicate_chance"`
	MaxEntries      int     `yaml:"max_entries" toml:"max_entries"`
	MaxFiles        int     `yaml:"max_files" toml:"max_files"`
	ContentSize     int     `yaml:"content_size" toml:"content_size"`
}

func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		RootName:        "root",
		Seed:            1,
		MaxDepth:        10,
		Breadth:         5,
		DuplicateChance: 0.01,
		MaxEntries:      300,
		MaxFiles:        120,
		ContentSize:     50,
	}
}

func (c GeneratorConfig) validate() error {
	switch {
	case c.RootName != "" && !validName(c.RootName):
		return fmt.Errorf("root_name must be a single path element, got %q", c.RootName)
	case c.MaxDepth < 0:
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	case c.Breadth < 1:
		return fmt.Errorf("breadth must be at least 1, got %d", c.Breadth)
	case c.DuplicateChance < 0 || c.DuplicateChance > 1:
		return fmt.Errorf("duplicate_chance must be within [0, 1], got %g", c.DuplicateChance)
	case c.MaxFiles < 1:
		return fmt.Errorf("max_files must be at least 1, got %d", c.MaxFiles)
	case c.MaxEntries < 0 || c.ContentSize < 0:
		return fmt.Errorf("max_entries and content_size must not be negative")
	}
	return nil
}

type generator struct {
	cfg   GeneratorConfig
	rng   *rand.Rand
	pool  [][]byte
	dirs  int
	files int
}

// Generate builds a synthetic tree. The same config always yields the same tree.
//
// The root holds directories only. Every directory gets between 1 and Breadth
// children, each a file or a directory with equal odds. A file reuses earlier
// content with probability DuplicateChance, at most once along each branch.
// Generation stops descending at MaxDepth, stops opening directories once
// MaxEntries entries exist, and stops entirely after MaxFiles files.
func Generate(cfg GeneratorConfig) (*Entry, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}
	if cfg.RootName == "" {
		cfg.RootName = "root"
	}

	g := &generator{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}

	root := NewDir(cfg.RootName)
	g.fill(root, 0, true)
	return root, nil
}

// fill reports false once the file limit is reached.
func (g *generator) fill(dir *Entry, depth int, allowDuplicate bool) bool {
	if depth >= g.cfg.MaxDepth || g.dirs+g.files >= g.cfg.MaxEntries {
		return true
	}

	n := 1 + g.rng.IntN(g.cfg.Breadth)
	for range n {
		isFile := depth > 0 && g.rng.IntN(2) == 0
		if !isFile {
			child := NewDir(fmt.Sprintf("dir_%d", g.dirs))
			g.dirs++
			dir.Add(child)
			if !g.fill(child, depth+1, allowDuplicate) {
				return false
			}
			continue
		}

		var content []byte
		if g.rng.Float64() < g.cfg.DuplicateChance && len(g.pool) > 0 && allowDuplicate {
			content = g.pool[g.rng.IntN(len(g.pool))]
			allowDuplicate = false
		} else {
			content = g.randomContent()
			g.pool = append(g.pool, content)
		}

		dir.Add(NewFile(fmt.Sprintf("file_%d.txt", g.files), content))
		g.files++
		if g.files >= g.cfg.MaxFiles {
			return false
		}
	}
	return true
}

func (g *generator) randomContent() []byte {
	buf := make([]byte, g.cfg.ContentSize)
	for i := range buf {
		buf[i] = alphabet[g.rng.IntN(len(alphabet))]
	}
	return buf
}
