package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree(t *testing.T) {
	files := map[string]string{
		"Move.toml":            "Package manifest",
		"sources/Demo.move":    "Module source",
		"tests/Demo_test.move": "Module tests",
	}

	out := RenderFileTree("demo", files)

	assert.Contains(t, out, "demo/")
	assert.Contains(t, out, "Move.toml")
	assert.Contains(t, out, "sources/")
	assert.Contains(t, out, "Demo.move")
	assert.Contains(t, out, "tests/")
	assert.Contains(t, out, "Package manifest")

	// Directories sort before files.
	lines := strings.Split(out, "\n")
	var moveTomlIdx, sourcesIdx int
	for i, l := range lines {
		if strings.Contains(l, "Move.toml") {
			moveTomlIdx = i
		}
		if strings.Contains(l, "sources/") {
			sourcesIdx = i
		}
	}
	assert.Less(t, sourcesIdx, moveTomlIdx)
}

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Empty(t, RenderFileTree("demo", nil))
}

func TestRenderFileTree_ExplicitDirectory(t *testing.T) {
	out := RenderFileTree("demo", map[string]string{"tests/": "Test directory"})
	assert.Contains(t, out, "tests/")
	assert.Contains(t, out, "Test directory")
}

func TestRenderSimpleTree(t *testing.T) {
	out := RenderSimpleTree("demo", []string{"Move.toml", "sources/Demo.move"})
	assert.Contains(t, out, "demo/")
	assert.Contains(t, out, "└── Move.toml")
}
