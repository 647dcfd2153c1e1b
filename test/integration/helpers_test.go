//go:build integration

package integration_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // HOME, so no real ~/.appscaffold/config.yaml is read
	WorkDir string // where the layout is generated
}

// setupTestEnv creates isolated temp directories and sets HOME so config
// lookups are sandboxed. The env var is restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir: t.TempDir(),
		WorkDir: t.TempDir(),
	}
	t.Setenv("HOME", env.HomeDir)
	return env
}

// snapshot walks root and returns every directory (with a trailing slash) and
// every file with its content, keyed by slash-separated path relative to root.
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()

	tree := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			tree[rel+"/"] = ""
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		tree[rel] = string(data)
		return nil
	})
	require.NoError(t, err)
	return tree
}

func countFiles(tree map[string]string) int {
	n := 0
	for p := range tree {
		if p[len(p)-1] != '/' {
			n++
		}
	}
	return n
}
