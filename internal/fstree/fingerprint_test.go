package fstree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint_Deterministic(t *testing.T) {
	a, err := Fingerprint(sampleTree())
	require.NoError(t, err)
	b, err := Fingerprint(sampleTree())
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.Equal(t, a, b)
}

func TestFingerprint_ContentChange(t *testing.T) {
	original, err := Fingerprint(sampleTree())
	require.NoError(t, err)

	changed := sampleTree()
	changed.Children()[1].content = []byte("THREE")
	fp, err := Fingerprint(changed)
	require.NoError(t, err)

	assert.NotEqual(t, original, fp)
}

func TestFingerprint_Rename(t *testing.T) {
	original, err := Fingerprint(sampleTree())
	require.NoError(t, err)

	renamed := sampleTree()
	renamed.Children()[0].Name = "z"
	fp, err := Fingerprint(renamed)
	require.NoError(t, err)

	assert.NotEqual(t, original, fp)
}

func TestFingerprint_SmallTrees(t *testing.T) {
	empty, err := Fingerprint(NewDir("r"))
	require.NoError(t, err)
	assert.Len(t, empty, 16)

	single, err := Fingerprint(NewDir("r").Add(NewFile("f", []byte("x"))))
	require.NoError(t, err)
	assert.Len(t, single, 16)
	assert.NotEqual(t, empty, single)
}

func TestFingerprint_UnreadableFile(t *testing.T) {
	root := NewDir("r").Add(
		NewFile("a", []byte("a")),
		newDiskFile("gone", "/nonexistent/gone"),
	)
	_, err := Fingerprint(root)
	assert.Error(t, err)
}
