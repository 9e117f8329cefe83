// Package config loads the glassblock CLI configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/glassblock/config.toml
// (falling back to ~/.config/glassblock/config.toml). Every key is optional:
//
//	design_path = "~/designs/kitchen.json"
//	num_windows = 2
//	num_colors  = 5
//	indent      = "  "
//	log_level   = "info"
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/glassblock/pkg/design"
	errs "github.com/matzehuels/glassblock/pkg/errors"
)

const (
	// AppName is used for the config directory.
	AppName = "glassblock"

	// FileName is the config file name inside the config directory.
	FileName = "config.toml"

	// EnvPath overrides the config file location.
	EnvPath = "GLASSBLOCK_CONFIG"

	// DefaultDesignPath is used when neither the command line nor the config
	// file names a design file.
	DefaultDesignPath = "design.json"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Config holds user preferences for the CLI.
type Config struct {
	DesignPath string `toml:"design_path"`
	NumWindows int    `toml:"num_windows"`
	NumColors  int    `toml:"num_colors"`
	Indent     string `toml:"indent"`
	LogLevel   string `toml:"log_level"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		DesignPath: DefaultDesignPath,
		NumWindows: design.MinWindows,
		NumColors:  design.DefaultNumColors,
		Indent:     "  ",
		LogLevel:   "info",
	}
}

// Dir returns the config directory using the XDG standard (~/.config/glassblock/).
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName), nil
}

// Path returns the config file path, honoring EnvPath.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads the config file at path on top of [Default].
// A missing file is not an error. Unknown keys and out-of-range values are.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errs.New(errs.ErrCodeInvalidConfig, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	cfg.DesignPath = expandHome(cfg.DesignPath)
	if err := cfg.Validate(); err != nil {
		return Config{}, errs.WithContext(err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks the sizes against the design limits and the log level
// against the known names.
func (c Config) Validate() error {
	if err := errs.ValidatePath(c.DesignPath); err != nil {
		return errs.WithContext(err, "design_path")
	}
	if err := errs.ValidateRange("num_windows", c.NumWindows, design.MinWindows, design.MaxWindows); err != nil {
		return err
	}
	if err := errs.ValidateRange("num_colors", c.NumColors, design.MinColors, design.MaxColors); err != nil {
		return err
	}
	for _, l := range validLogLevels {
		if strings.EqualFold(c.LogLevel, l) {
			return nil
		}
	}
	return errs.New(errs.ErrCodeInvalidConfig, "log_level must be one of %s", strings.Join(validLogLevels, ", "))
}

// NewDesign returns a fresh design sized by NumWindows and NumColors.
func (c Config) NewDesign() (*design.State, error) {
	s := design.New()
	if err := s.SetNumWindows(c.NumWindows); err != nil {
		return nil, err
	}
	if err := s.BlockSupply().SetNumColors(c.NumColors); err != nil {
		return nil, err
	}
	return s, nil
}

// Write saves c as TOML at path, creating the directory if needed.
func Write(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidPath, err, "create config dir")
	}
	f, err := os.Create(path)
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "encode config")
	}
	return nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
