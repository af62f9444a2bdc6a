// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Override with --verbose flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the addon-docs CLI configuration.
// Loaded from ~/.addon-docs/config.yaml; environment variables take
// precedence over file values.
type Config struct {
	// BaseDir is the default consumer application directory used when
	// neither the positional argument nor --dir is given.
	// Env: ADDON_DOCS_DIR
	BaseDir string `mapstructure:"baseDir" yaml:"baseDir,omitempty"`

	// DryRun makes every run a preview unless overridden on the command line.
	// Env: ADDON_DOCS_DRY_RUN
	DryRun bool `mapstructure:"dryRun" yaml:"dryRun,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `addon-docs config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		BaseDir: "",
		DryRun:  false,
	}
}
