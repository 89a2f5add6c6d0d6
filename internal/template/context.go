package template

import "strings"

// Placeholder keys recognized in the bundled templates.
const (
	KeyPackageName          = "package_name"
	KeyPackageLowercaseName = "package_lowercase_name"
	KeyDefaultAddress       = "default_address"
	KeyAddress              = "address"
)

// SentinelAddress is substituted for address keys when no account profile
// was created.
const SentinelAddress = "_"

// Context is an ordered mapping of placeholder key to replacement string.
// It is built once per scaffold operation and immutable afterwards; tokens
// with keys absent from the context are left verbatim.
type Context struct {
	keys   []string
	values map[string]string
}

// NewContext creates an empty substitution context.
func NewContext() *Context {
	return &Context{values: make(map[string]string)}
}

// Set binds a key to its replacement value, preserving insertion order.
func (c *Context) Set(key, value string) *Context {
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
	return c
}

// Lookup returns the replacement for key, if bound.
func (c *Context) Lookup(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Keys returns the bound keys in insertion order.
func (c *Context) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Apply replaces every recognized token occurrence in text.
// For each token found, every literal occurrence of that token's exact
// span is replaced by the mapped value, so repeated identical tokens are
// rewritten in one pass. Unmapped keys pass through untouched.
func (c *Context) Apply(text string) string {
	for _, tok := range FindTokens(text) {
		value, ok := c.values[tok.Key]
		if !ok {
			continue
		}
		text = strings.ReplaceAll(text, tok.Literal, value)
	}
	return text
}

// ApplyPath rewrites a slash- or OS-separated path string. Substitution is
// the same as Apply; the path form exists so call sites read clearly and
// path rewriting stays an independent pass from content rewriting.
func (c *Context) ApplyPath(path string) string {
	return c.Apply(path)
}

// NewScaffoldContext builds the substitution context for one scaffold run
// from the package name and the resolved profile address (or sentinel).
func NewScaffoldContext(packageName, address string) *Context {
	if address == "" {
		address = SentinelAddress
	}

	return NewContext().
		Set(KeyPackageName, packageName).
		Set(KeyPackageLowercaseName, LowerSnakeCase(packageName)).
		Set(KeyDefaultAddress, address).
		Set(KeyAddress, address)
}
