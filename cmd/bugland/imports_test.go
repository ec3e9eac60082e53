package main

import (
	"go/build"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modulePath = "github.com/younwookim/bugland"

// TestImports_NoWindowToolkit walks the in-module import graph of the CLI and
// checks that no package pulls in ebiten, which needs cgo and X11 to build.
func TestImports_NoWindowToolkit(t *testing.T) {
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	seen := map[string]bool{}
	queue := []string{modulePath + "/cmd/bugland"}
	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]
		if seen[path] {
			continue
		}
		seen[path] = true

		dir := filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(path, modulePath)))
		pkg, err := build.ImportDir(dir, 0)
		require.NoError(t, err, path)

		for _, imp := range pkg.Imports {
			assert.False(t, strings.HasPrefix(imp, "github.com/hajimehoshi/ebiten"),
				"%s imports %s", path, imp)
			if strings.HasPrefix(imp, modulePath+"/") {
				queue = append(queue, imp)
			}
		}
	}

	assert.True(t, seen[modulePath+"/internal/application/viewer"])
	assert.True(t, seen[modulePath+"/internal/application/system"])
}
