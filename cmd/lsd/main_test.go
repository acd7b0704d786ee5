package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempDoc(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.lsd")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestReadDocumentParsesPlainFile(t *testing.T) {
	path := writeTempDoc(t, "a 10\nb 20")
	root, err := readDocument(path)
	require.NoError(t, err)

	node, ok := root.Get("a")
	require.True(t, ok)
	v, ok := node.Value()
	require.True(t, ok)
	assert.Equal(t, "10", v)
}

func TestReadDocumentMissingFile(t *testing.T) {
	_, err := readDocument(filepath.Join(t.TempDir(), "missing.lsd"))
	assert.Error(t, err)
}

func TestRenderValueAndAggregate(t *testing.T) {
	path := writeTempDoc(t, "a 10\nb [ 1 2 ]")
	root, err := readDocument(path)
	require.NoError(t, err)

	a, ok := root.Get("a")
	require.True(t, ok)
	assert.Equal(t, "10", render(a))

	b, ok := root.Get("b")
	require.True(t, ok)
	assert.Equal(t, "<list>", render(b))
}
