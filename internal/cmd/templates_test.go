package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesCmd(t *testing.T) {
	err := execute(t, "templates")
	require.NoError(t, err)
}

func TestTemplatesCmd_RejectsArgs(t *testing.T) {
	err := execute(t, "templates", "extra")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}
