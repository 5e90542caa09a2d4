package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	// --- Arrange ---
	root := t.TempDir()
	for _, name := range []string{"b.yaml", "a.hcl", "nested/c.yml", "nested/D.YAML", "nested/skip.txt", "nested/yaml"} {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}

	// --- Act ---
	files, err := FindFilesByExtension(root, ".hcl", ".yaml", ".yml")

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "b.yaml"),
		filepath.Join(root, "nested", "D.YAML"),
		filepath.Join(root, "nested", "c.yml"),
	}, files)
}

func TestFindFilesByExtension_PanicsWithoutExtension(t *testing.T) {
	require.Panics(t, func() { _, _ = FindFilesByExtension(t.TempDir()) })
	require.Panics(t, func() { _, _ = FindFilesByExtension(t.TempDir(), "") })
}
