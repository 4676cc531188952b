package fstree

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func depthOf(e *Entry) int {
	d := 0
	for _, c := range e.Children() {
		d = max(d, depthOf(c)+1)
	}
	return d
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.Seed = 99

	a, err := Generate(cfg)
	require.NoError(t, err)
	b, err := Generate(cfg)
	require.NoError(t, err)

	assert.Equal(t, Render(a), Render(b))

	var contentsA, contentsB [][]byte
	a.Walk(func(e *Entry) {
		if e.IsFile() {
			contentsA = append(contentsA, e.content)
		}
	})
	b.Walk(func(e *Entry) {
		if e.IsFile() {
			contentsB = append(contentsB, e.content)
		}
	})
	assert.Equal(t, contentsA, contentsB)
}

func TestGenerate_DifferentSeeds(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.Seed = 1
	a, err := Generate(cfg)
	require.NoError(t, err)

	cfg.Seed = 2
	b, err := Generate(cfg)
	require.NoError(t, err)

	fa, err := Fingerprint(a)
	require.NoError(t, err)
	fb, err := Fingerprint(b)
	require.NoError(t, err)
	assert.NotEqual(t, fa, fb)
}

func TestGenerate_RespectsLimits(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		cfg := DefaultGeneratorConfig()
		cfg.Seed = seed
		cfg.MaxDepth = 4
		cfg.MaxFiles = 15

		root, err := Generate(cfg)
		require.NoError(t, err)

		assert.LessOrEqual(t, depthOf(root), cfg.MaxDepth)
		_, files := root.Counts()
		assert.LessOrEqual(t, files, cfg.MaxFiles)

		for _, c := range root.Children() {
			assert.False(t, c.IsFile(), "root level must hold directories only")
		}
		root.Walk(func(e *Entry) {
			if e.IsFile() {
				assert.Len(t, e.content, cfg.ContentSize)
			}
		})
	}
}

func TestGenerate_StopsAtFileCap(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		cfg := DefaultGeneratorConfig()
		cfg.Seed = seed
		cfg.MaxFiles = 3

		root, err := Generate(cfg)
		require.NoError(t, err)

		_, files := root.Counts()
		if files < cfg.MaxFiles {
			continue
		}
		require.Equal(t, cfg.MaxFiles, files)

		// Generation is depth first, so nothing may follow the capping file
		// in pre-order.
		var last *Entry
		root.Walk(func(e *Entry) { last = e })
		require.NotNil(t, last)
		assert.True(t, last.IsFile(), "seed %d", seed)
		assert.Equal(t, "file_2.txt", last.Name, "seed %d", seed)
	}
}

func TestGenerate_DuplicateChance(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.DuplicateChance = 1
	cfg.Seed = 5

	root, err := Generate(cfg)
	require.NoError(t, err)

	var contents [][]byte
	root.Walk(func(e *Entry) {
		if e.IsFile() {
			contents = append(contents, e.content)
		}
	})
	require.GreaterOrEqual(t, len(contents), 2)

	dup := false
	for i := range contents {
		for j := i + 1; j < len(contents); j++ {
			if bytes.Equal(contents[i], contents[j]) {
				dup = true
			}
		}
	}
	assert.True(t, dup)
}

func TestGenerate_InvalidConfig(t *testing.T) {
	cases := map[string]func(*GeneratorConfig){
		"negative depth":   func(c *GeneratorConfig) { c.MaxDepth = -1 },
		"zero breadth":     func(c *GeneratorConfig) { c.Breadth = 0 },
		"chance above one": func(c *GeneratorConfig) { c.DuplicateChance = 1.5 },
		"zero max files":   func(c *GeneratorConfig) { c.MaxFiles = 0 },
		"negative size":    func(c *GeneratorConfig) { c.ContentSize = -1 },
		"parent root name": func(c *GeneratorConfig) { c.RootName = ".." },
		"dot root name":    func(c *GeneratorConfig) { c.RootName = "." },
		"nested root name": func(c *GeneratorConfig) { c.RootName = "a/../../x" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultGeneratorConfig()
			mutate(&cfg)
			_, err := Generate(cfg)
			assert.Error(t, err)
		})
	}
}

func TestGenerate_ZeroDepthIsBareRoot(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.MaxDepth = 0
	cfg.RootName = ""

	root, err := Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, "root", root.Name)
	assert.Empty(t, root.Children())
}
