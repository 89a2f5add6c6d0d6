// Package variants defines the closed set of template variants movekit can
// scaffold and carries their embedded template trees.
package variants

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed all:templates
var templateFS embed.FS

// ID names a template variant.
type ID string

const (
	// Default is the baseline package skeleton: manifest, sources, tests.
	// Always rendered.
	Default ID = "default"

	// Coin adds an example module with a managed coin.
	Coin ID = "coin"

	// CompanionApp adds a js/ subtree with a client application skeleton.
	CompanionApp ID = "companion-app"
)

// Variant describes one template variant.
type Variant struct {
	// ID is the variant identifier.
	ID ID

	// Title is the short human-readable name.
	Title string

	// Description explains what the variant adds.
	Description string

	// Subtree is the embedded template directory for this variant.
	Subtree string

	// Optional variants are offered via prompt; the default answer is no.
	Optional bool

	// Question is the yes/no prompt shown for optional variants.
	Question string
}

var registry = map[ID]Variant{
	Default: {
		ID:          Default,
		Title:       "Empty package",
		Description: "Move.toml manifest, sources/ and tests/ with a module skeleton",
		Subtree:     "templates/default",
	},
	Coin: {
		ID:          Coin,
		Title:       "Coin example",
		Description: "Example module implementing a managed coin",
		Subtree:     "templates/coin",
		Optional:    true,
		Question:    "Add the coin example module?",
	},
	CompanionApp: {
		ID:          CompanionApp,
		Title:       "Companion app",
		Description: "js/ subtree with a client application skeleton",
		Subtree:     "templates/companion",
		Optional:    true,
		Question:    "Add a companion app under js/?",
	},
}

// renderOrder is the deterministic order variants are rendered in.
var renderOrder = []ID{Default, Coin, CompanionApp}

// Get returns a variant by id.
func Get(id ID) (Variant, error) {
	v, ok := registry[id]
	if !ok {
		return Variant{}, fmt.Errorf("unknown template variant %q; valid variants: %s", id, "default, coin, companion-app")
	}
	return v, nil
}

// List returns all variants in render order.
func List() []Variant {
	out := make([]Variant, 0, len(renderOrder))
	for _, id := range renderOrder {
		out = append(out, registry[id])
	}
	return out
}

// Optional returns the optional variants in render order.
func Optional() []Variant {
	var out []Variant
	for _, v := range List() {
		if v.Optional {
			out = append(out, v)
		}
	}
	return out
}

// FS returns the embedded template filesystem.
func FS() fs.FS {
	return templateFS
}
