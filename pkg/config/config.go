// Package config loads the fontlint tool configuration. Settings are
// layered: built-in defaults, then the user config file under the XDG
// config directory, then FONTLINT_* environment variables. The rule spec
// itself is not configuration; it has its own format and parser in
// pkg/rules.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	flerrors "github.com/arthur-debert/fontlint/pkg/errors"
	"github.com/arthur-debert/fontlint/pkg/logging"
	"github.com/arthur-debert/fontlint/pkg/paths"
)

const envPrefix = "FONTLINT_"

// Config holds the tool-level settings
type Config struct {
	// SpecFile is the rule spec applied when none is given on the command line
	SpecFile string `koanf:"spec_file" toml:"spec_file"`
	// ExtraSpec is inline spec text processed after the spec file
	ExtraSpec string `koanf:"extra_spec" toml:"extra_spec"`
	// Runlog prints the tags of run tests after resolving a font
	Runlog bool `koanf:"runlog" toml:"runlog"`
	// Skiplog prints the tags of skipped tests after resolving a font
	Skiplog bool `koanf:"skiplog" toml:"skiplog"`
	// Format selects the output format: auto, term or text
	Format string `koanf:"format" toml:"format"`
}

// Load builds the effective configuration from defaults, the user config
// file (when present) and the environment.
func Load() (*Config, error) {
	return LoadFrom(paths.ConfigFilePath())
}

// LoadFrom is Load with an explicit config file path
func LoadFrom(configPath string) (*Config, error) {
	log := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, flerrors.Wrap(err, flerrors.ErrConfigParse, "load built-in defaults")
	}

	// 2. User config file, when present
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, flerrors.Wrapf(err, flerrors.ErrConfigParse, "load config from %s", configPath)
		}
		log.Debug().Str("path", configPath).Msg("Loaded user config")
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, flerrors.Wrapf(err, flerrors.ErrConfigLoad, "stat config file %s", configPath)
	}

	// 3. Environment: FONTLINT_SPEC_FILE -> spec_file etc.
	envProvider := env.Provider(envPrefix, ".", func(key string) string {
		return strings.ToLower(strings.TrimPrefix(key, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, flerrors.Wrap(err, flerrors.ErrConfigLoad, "load environment overrides")
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, flerrors.Wrap(err, flerrors.ErrConfigParse, "unmarshal config")
	}
	return cfg, nil
}

// WriteDefault writes the effective default configuration to path,
// creating parent directories. An existing file is left alone unless
// force is set.
func WriteDefault(path string, force bool) error {
	log := logging.GetLogger("config")

	if _, err := os.Stat(path); err == nil && !force {
		return flerrors.Newf(flerrors.ErrConfigLoad, "config file %s already exists (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return flerrors.Wrap(err, flerrors.ErrFileAccess, "create config directory")
	}

	cfg := &Config{}
	if err := gotoml.Unmarshal(defaultConfig, cfg); err != nil {
		return flerrors.Wrap(err, flerrors.ErrConfigParse, "parse built-in defaults")
	}
	data, err := gotoml.Marshal(cfg)
	if err != nil {
		return flerrors.Wrap(err, flerrors.ErrInternal, "marshal default config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return flerrors.Wrap(err, flerrors.ErrFileAccess, "write config file")
	}
	log.Info().Str("path", path).Msg("Wrote default configuration")
	return nil
}
