package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatherSourcesWalksDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
	for _, name := range []string{"b.png", "a.png", filepath.Join("nested", "c.png")} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	sources, err := gatherSources([]string{dir, "https://example.com/cat.png"}, nil, true)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.png"),
		filepath.Join(dir, "b.png"),
		filepath.Join(dir, "nested", "c.png"),
		"https://example.com/cat.png",
	}, sources)
}

func TestGatherSourcesFromStdin(t *testing.T) {
	stdin := strings.NewReader("one.png\n\n  two.png  \nhttps://example.com/three.png")

	sources, err := gatherSources(nil, stdin, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"one.png", "two.png", "https://example.com/three.png"}, sources)

	// an interactive stdin is never read
	sources, err = gatherSources(nil, strings.NewReader("ignored.png"), true)
	require.NoError(t, err)
	assert.Empty(t, sources)
}
