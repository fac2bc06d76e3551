package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dohook/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override
	EnvPrefix = "DOHOOK_"
	// EnvConfigFile names the config file when --config is not given
	EnvConfigFile = "DOHOOK_CONFIG"
	// ConfigFileName is looked up in the working directory and the XDG
	// config directory
	ConfigFileName = "dohook.toml"
)

// LoadConfiguration builds the configuration from the embedded defaults,
// the config file and the environment, in that order of precedence.
//
// path names the config file explicitly; a missing explicit file is an
// error. With an empty path, $DOHOOK_CONFIG, ./dohook.toml and
// $XDG_CONFIG_HOME/dohook/dohook.toml are tried in turn.
//
// Environment variables map to keys by dropping the prefix, lower-casing
// and turning "__" into a key separator, so DOHOOK_REGISTRY__DEFAULT_PRIORITY
// sets registry.default_priority.
func LoadConfiguration(path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded defaults")
	}

	// 2. Config file
	configPath, err := resolveConfigPath(path)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configPath).
				WithDetail("path", configPath)
		}
	}

	// 3. Env vars
	err = k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
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

// Default returns the configuration made of the embedded defaults only.
// It panics if the embedded defaults cannot be decoded, which can only
// happen when the binary was built with a broken defaults.toml.
func Default() *Config {
	cfg, err := decodeDefaults(defaultConfig)
	if err != nil {
		panic(err)
	}
	return cfg
}

func decodeDefaults(content []byte) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: content}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded defaults")
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal embedded defaults")
	}
	return &cfg, nil
}

// envKey turns DOHOOK_REGISTRY__DEFAULT_PRIORITY into registry.default_priority.
// Variables naming files rather than keys are skipped.
func envKey(s string) string {
	if s == EnvConfigFile {
		return ""
	}
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func resolveConfigPath(explicit string) (string, error) {
	if explicit == "" {
		explicit = os.Getenv(EnvConfigFile)
	}
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s is not readable", explicit).
				WithDetail("path", explicit)
		}
		return explicit, nil
	}

	xdg.Reload()
	candidates := []string{
		ConfigFileName,
		filepath.Join(xdg.ConfigHome, "dohook", ConfigFileName),
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}
