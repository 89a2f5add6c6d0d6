package profile

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movekit/cli/internal/errors"
)

func TestHexLiteral(t *testing.T) {
	assert.Equal(t, "0xabc123", HexLiteral("abc123"))
	assert.Equal(t, "0xabc123", HexLiteral("0xabc123"))
	assert.Equal(t, "0Xabc123", HexLiteral("0Xabc123"))
}

func TestReadDefaultAddress(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, ".acct")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))

	content := "profiles:\n  default:\n    account: abc123def\n"
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(content), 0o644))

	addr, err := readDefaultAddress(dir, "acct")
	require.NoError(t, err)
	assert.Equal(t, "0xabc123def", addr)
}

func TestReadDefaultAddress_MissingConfig(t *testing.T) {
	_, err := readDefaultAddress(t.TempDir(), "acct")
	assert.ErrorIs(t, err, errors.ErrProfileInit)
}

func TestReadDefaultAddress_NoAccount(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, ".acct")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte("profiles:\n  default: {}\n"), 0o644))

	_, err := readDefaultAddress(dir, "acct")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrProfileInit)
	assert.Contains(t, err.Error(), "no address is recorded")
}

func TestCLIInitializer_BinaryMissing(t *testing.T) {
	init := CLIInitializer{Binary: "definitely-not-a-real-binary"}

	_, err := init.Init(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, errors.ErrProfileInit)
}

func TestCLIInitializer_Success(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub account CLI is a shell script")
	}

	binDir := t.TempDir()
	workDir := t.TempDir()

	script := "#!/bin/sh\nmkdir -p .acct\nprintf 'profiles:\\n  default:\\n    account: cafebabe\\n' > .acct/config.yaml\n"
	binary := filepath.Join(binDir, "acct")
	require.NoError(t, os.WriteFile(binary, []byte(script), 0o755))

	init := CLIInitializer{Binary: binary, Network: "devnet"}

	addr, err := init.Init(context.Background(), workDir)
	require.NoError(t, err)
	assert.Equal(t, "0xcafebabe", addr)
}
