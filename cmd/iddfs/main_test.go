package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iddfs-go/internal/fstree"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "--quiet"}, args...))
	return cmd.Execute()
}

func TestGenerate_WritesXMLAndFiles(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "XML", "tree.xml")

	err := run(t, "generate", "--seed", "3", "--output", output, "--materialize", dir, "--workers", "2")
	require.NoError(t, err)

	saved, err := fstree.LoadXML(output)
	require.NoError(t, err)

	cfg := fstree.DefaultGeneratorConfig()
	cfg.Seed = 3
	want, err := fstree.Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, fstree.Render(want), fstree.Render(saved))

	info, err := os.Stat(filepath.Join(dir, "root"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestDupes_FoundInXML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.xml")
	root := fstree.NewDir("root").Add(
		fstree.NewFile("a", []byte("x")),
		fstree.NewDir("d").Add(fstree.NewFile("b", []byte("x"))),
	)
	require.NoError(t, fstree.SaveXML(root, path))

	err := run(t, "dupes", "--xml", path)
	assert.ErrorIs(t, err, errDuplicateFound)
}

func TestDupes_NoneInDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0644))

	assert.NoError(t, run(t, "dupes", "--dir", dir))
}

func TestDupes_MissingXML(t *testing.T) {
	err := run(t, "dupes", "--xml", "/nonexistent/tree.xml")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errDuplicateFound)
}

func TestFind(t *testing.T) {
	assert.NoError(t, run(t, "find", "file5"))
	assert.NoError(t, run(t, "find", "file7"))
	assert.Error(t, run(t, "find"))
}

func TestMember(t *testing.T) {
	assert.NoError(t, run(t, "member", "4", "7"))
	assert.Error(t, run(t, "member", "four"))
}

func TestToNamedTree(t *testing.T) {
	entry := fstree.NewDir("r").Add(fstree.NewDir("a").Add(fstree.NewFile("f", nil)))

	n := toNamedTree(entry)
	require.Len(t, n.Children, 1)
	assert.Equal(t, "a", n.Children[0].Label)
	assert.Equal(t, "f", n.Children[0].Children[0].Label)
}
