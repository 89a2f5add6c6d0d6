// Package profile creates the default account profile for a scaffolded
// package by delegating to an external account CLI.
package profile

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/movekit/cli/internal/errors"
	"github.com/movekit/cli/internal/output"
)

// Initializer creates an account profile scoped to a package directory and
// returns the account's hex-literal address.
type Initializer interface {
	Init(ctx context.Context, dir string) (string, error)
}

// CLIInitializer shells out to an account CLI (e.g. "movement" or "aptos")
// in non-interactive mode, then reads the address it recorded in its
// profile config file.
type CLIInitializer struct {
	// Binary is the account CLI executable.
	Binary string

	// Network is the network the profile is created against.
	Network string
}

// profileConfig mirrors the relevant slice of the account CLI's
// config.yaml.
type profileConfig struct {
	Profiles map[string]struct {
		Account string `yaml:"account"`
	} `yaml:"profiles"`
}

// Init implements Initializer.
func (c CLIInitializer) Init(ctx context.Context, dir string) (string, error) {
	network := c.Network
	if network == "" {
		network = "devnet"
	}

	output.Debug("initializing account profile", "binary", c.Binary, "network", network, "dir", dir)

	cmd := exec.CommandContext(ctx, c.Binary, "init", "--network", network, "--assume-yes")
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", errors.NewProfileInitError(
			fmt.Sprintf("running %s init: %v\n%s", c.Binary, err, strings.TrimSpace(string(out))),
			dir,
			fmt.Sprintf("Make sure %q is installed and on your PATH, or pass --skip-profile-creation.", c.Binary),
		)
	}

	addr, err := readDefaultAddress(dir, c.Binary)
	if err != nil {
		return "", err
	}
	return addr, nil
}

// readDefaultAddress extracts the "default" profile's account address from
// the config file the account CLI wrote under dir.
func readDefaultAddress(dir, binary string) (string, error) {
	configPath := filepath.Join(dir, "."+filepath.Base(binary), "config.yaml")

	content, err := os.ReadFile(configPath)
	if err != nil {
		return "", errors.NewProfileInitError(
			fmt.Sprintf("the profile config could not be read: %v", err),
			configPath,
			"",
		)
	}

	var cfg profileConfig
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return "", errors.NewProfileInitError(
			fmt.Sprintf("parsing profile config: %v", err),
			configPath,
			"",
		)
	}

	account := cfg.Profiles["default"].Account
	if account == "" {
		return "", errors.NewProfileInitError(
			"no address is recorded in the `default` profile",
			configPath,
			"",
		)
	}

	return HexLiteral(account), nil
}

// HexLiteral normalizes an account address to 0x-prefixed form.
func HexLiteral(account string) string {
	if strings.HasPrefix(account, "0x") || strings.HasPrefix(account, "0X") {
		return account
	}
	return "0x" + account
}
