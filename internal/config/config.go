// Package config provides configuration loading and management.
package config

// TemplateConfig contains template source settings.
type TemplateConfig struct {
	// CoinURL is an optional git URL for the coin example template.
	// When set, the variant is cloned instead of materialized from the
	// embedded copy. Env: MOVEKIT_COIN_TEMPLATE_URL
	CoinURL string `mapstructure:"coinUrl"`

	// CompanionAppURL is an optional git URL for the companion app template.
	// Env: MOVEKIT_COMPANION_TEMPLATE_URL
	CompanionAppURL string `mapstructure:"companionAppUrl"`
}

// Config represents the movekit CLI configuration.
// Loaded from ~/.movekit/config.yaml; environment variables take precedence.
type Config struct {
	// CacheDir is the per-machine template cache directory.
	// Env: MOVEKIT_CACHE_DIR, Default: ~/.movekit/cache
	CacheDir string `mapstructure:"cacheDir"`

	// AccountCLI is the executable invoked to initialize an account profile.
	// Env: MOVEKIT_ACCOUNT_CLI, Default: "movement"
	AccountCLI string `mapstructure:"accountCli"`

	// Templates contains template source settings.
	Templates TemplateConfig `mapstructure:"templates"`
}

// WithDefaults returns a copy of the config with default values filled in.
func (c *Config) WithDefaults() *Config {
	out := *c

	if out.CacheDir == "" {
		if dir, err := GetCacheDir(); err == nil {
			out.CacheDir = dir
		}
	}
	if out.AccountCLI == "" {
		out.AccountCLI = "movement"
	}

	return &out
}
