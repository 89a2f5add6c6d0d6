// Package manifest post-processes the scaffolded Move.toml: merging named
// addresses supplied on the command line into its [addresses] table.
package manifest

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Filename is the package manifest file name.
const Filename = "Move.toml"

// PlaceholderAddress marks an address to be filled in later by the user.
const PlaceholderAddress = "_"

// ParseNamedAddresses parses a "name=addr,name=addr" command-line value.
// Addresses are hex literals or the placeholder "_". An empty input yields
// an empty map.
func ParseNamedAddresses(s string) (map[string]string, error) {
	out := make(map[string]string)
	if strings.TrimSpace(s) == "" {
		return out, nil
	}

	for _, pair := range strings.Split(s, ",") {
		name, addr, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, fmt.Errorf("invalid named address %q, expected name=address", pair)
		}

		name = strings.TrimSpace(name)
		addr = strings.TrimSpace(addr)
		if name == "" || addr == "" {
			return nil, fmt.Errorf("invalid named address %q, expected name=address", pair)
		}
		if addr != PlaceholderAddress && !strings.HasPrefix(addr, "0x") {
			return nil, fmt.Errorf("invalid address %q for %q, expected a 0x hex literal or %q", addr, name, PlaceholderAddress)
		}

		if _, dup := out[name]; dup {
			return nil, fmt.Errorf("duplicate named address %q", name)
		}
		out[name] = addr
	}

	return out, nil
}

// MergeNamedAddresses merges addrs into the [addresses] table of the
// manifest at path, preserving entries already present. An existing entry
// with a conflicting address is an error; re-stating the same address is
// not.
func MergeNamedAddresses(path string, addrs map[string]string) error {
	if len(addrs) == 0 {
		return nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var doc map[string]interface{}
	if err := toml.Unmarshal(content, &doc); err != nil {
		return fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	addresses, _ := doc["addresses"].(map[string]interface{})
	if addresses == nil {
		addresses = make(map[string]interface{})
	}

	names := make([]string, 0, len(addrs))
	for name := range addrs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if existing, ok := addresses[name]; ok && existing != addrs[name] {
			return fmt.Errorf("address %q is already declared as %v in %s", name, existing, path)
		}
		addresses[name] = addrs[name]
	}
	doc["addresses"] = addresses

	rendered, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("rendering manifest: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("checking manifest %s: %w", path, err)
	}

	if err := os.WriteFile(path, rendered, info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}
