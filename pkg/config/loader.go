package config

import (
	"fmt"
	"os"

	"github.com/arthur-debert/govsetup/pkg/errors"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read as options.
const EnvPrefix = "GOVSETUP_"

// LoadConfiguration loads the installer options. configPath may be empty; when
// set, the file must exist.
func LoadConfiguration(configPath string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", configPath)
		}
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configPath)
		}
	}

	// 3. Env vars
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks option values.
func (c *Config) Validate() error {
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Newf(errors.ErrConfigValid, "output.color must be auto, always or never, got %q", c.Output.Color).
			WithDetail("key", "output.color")
	}

	for _, pattern := range c.Merge.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return errors.New(errors.ErrConfigValid, fmt.Sprintf("invalid exclude pattern %q", pattern)).
				WithDetail("key", "merge.exclude")
		}
	}

	return nil
}
