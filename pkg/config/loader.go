package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	tsfixerr "github.com/EhssanAtassi/tsfix/pkg/errors"
)

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load assembles the configuration in three layers: embedded defaults, an
// optional config file, and TSFIX_* environment variables. An empty
// configPath triggers the default search (./tsfix.toml, ./tsfix.yaml, then
// the XDG config dir).
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, tsfixerr.Wrap(err, tsfixerr.ErrConfigLoad, "failed to load built-in defaults")
	}

	// 2. Config file, if one exists
	path, explicit := configPath, configPath != ""
	if !explicit {
		path = findConfigFile()
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if explicit {
				return nil, tsfixerr.Wrapf(err, tsfixerr.ErrConfigLoad, "cannot read config file %s", path)
			}
		} else {
			if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
				return nil, tsfixerr.Wrapf(err, tsfixerr.ErrConfigParse, "failed to parse config file %s", path)
			}
		}
	}

	// 3. Environment variables. Only the first underscore separates the
	// section from the key, so TSFIX_RULES_UNUSED_IMPORTS maps to
	// rules.unused_imports.
	err := k.Load(env.Provider("TSFIX_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "TSFIX_")), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, tsfixerr.Wrap(err, tsfixerr.ErrConfigLoad, "failed to load environment variables")
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
		return nil, tsfixerr.Wrap(err, tsfixerr.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the embedded default configuration, ignoring any config
// file or environment overrides.
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		// The embedded defaults always parse; reaching this means the
		// binary itself is broken.
		panic(err)
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		panic(err)
	}
	return &cfg
}

func findConfigFile() string {
	candidates := []string{
		"tsfix.toml",
		"tsfix.yaml",
		filepath.Join(xdg.ConfigHome, "tsfix", "config.toml"),
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

func validate(cfg *Config) error {
	if cfg.Scan.Root == "" {
		return tsfixerr.New(tsfixerr.ErrConfigValid, "scan.root must not be empty")
	}
	if len(cfg.Scan.Extensions) == 0 {
		return tsfixerr.New(tsfixerr.ErrConfigValid, "scan.extensions must not be empty")
	}
	for _, ext := range cfg.Scan.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return tsfixerr.Newf(tsfixerr.ErrConfigValid, "scan.extensions entry %q must start with a dot", ext)
		}
	}
	return nil
}
