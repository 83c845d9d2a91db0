package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	appDirName     = "flashfind"
	configFileName = "config.toml"

	// DefaultSaveFileName is suggested by the save prompt when no name is configured
	DefaultSaveFileName = "fd_results.txt"
)

// Config represents the application configuration
type Config struct {
	Version   int          `toml:"version"`
	FdBinary  string       `toml:"fd_binary"`  // name or path of the fd executable
	SearchDir string       `toml:"search_dir"` // working directory for fd, "" = current directory
	Regex     bool         `toml:"regex"`      // initial state of the regex toggle
	ExtraArgs []string     `toml:"extra_args"` // appended after the generated arguments
	Save      SaveSettings `toml:"save"`
	UI        UISettings   `toml:"ui"`
}

// SaveSettings controls the save-results prompt
type SaveSettings struct {
	Dir              string `toml:"dir"`
	FileName         string `toml:"file_name"`
	ConfirmOverwrite bool   `toml:"confirm_overwrite"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	AltScreen      bool `toml:"alt_screen"`
	AutosaveOnExit bool `toml:"autosave_on_exit"`
}

// DefaultSavePath returns the path the save prompt starts with
func (c *Config) DefaultSavePath() string {
	name := c.Save.FileName
	if name == "" {
		name = DefaultSaveFileName
	}
	if c.Save.Dir == "" {
		return name
	}
	return filepath.Join(c.Save.Dir, name)
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

type configService struct {
	filePath string
}

// NewConfigService creates a config service backed by the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, appDirName, configFileName),
	}
}

// NewConfigServiceAt creates a config service bound to an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file this service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to defaults when no file exists
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path.
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.FdBinary == "" {
		cfg.FdBinary = "fd"
	}
	if cfg.Save.FileName == "" {
		cfg.Save.FileName = DefaultSaveFileName
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:   1,
		FdBinary:  "fd",
		ExtraArgs: []string{},
		Save: SaveSettings{
			FileName:         DefaultSaveFileName,
			ConfirmOverwrite: true,
		},
		UI: UISettings{
			AltScreen:      true,
			AutosaveOnExit: true,
		},
	}
}
