package config

import "strings"

// Color modes accepted by output.color
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Merge holds merge-copy settings
type Merge struct {
	// Exclude lists doublestar globs matched against paths relative to the
	// directory being copied. Matching files are never copied or counted.
	Exclude []string `koanf:"exclude" toml:"exclude"`
}

// Output holds presentation settings
type Output struct {
	Color string `koanf:"color" toml:"color"`
}

// Config is the main configuration structure
type Config struct {
	PackageRoot string `koanf:"package_root" toml:"package_root"`
	Merge       Merge  `koanf:"merge" toml:"merge"`
	Output      Output `koanf:"output" toml:"output"`
}

// envKey maps GOVSETUP_MERGE__EXCLUDE to merge.exclude.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}
