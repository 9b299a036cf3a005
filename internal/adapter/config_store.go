package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/daily-scale/internal/model"
)

const (
	configDirName  = "daily-scale"
	configFileName = "config.yaml"
)

// ConfigStore persists and retrieves user defaults.
type ConfigStore interface {
	// DefaultPath returns where the configuration lives when no path is given.
	DefaultPath() (m.Path, error)
	// Load reads the configuration. A missing file yields an empty Config.
	Load(path m.Path) (m.Config, error)
	// Save writes the configuration, creating parent directories as needed.
	Save(path m.Path, cfg m.Config) error
}

type configStore struct{}

// NewConfigStore constructs a ConfigStore backed by YAML files.
func NewConfigStore() ConfigStore {
	return &configStore{}
}

func (cs *configStore) DefaultPath() (m.Path, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	return m.Path(filepath.Join(configDir, configDirName, configFileName)), nil
}

func (cs *configStore) Load(path m.Path) (m.Config, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			zap.L().Debug("no config file", zap.String("path", string(path)))
			return m.Config{}, nil
		}

		return m.Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg m.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return m.Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	zap.L().Debug("loaded config", zap.String("path", string(path)), zap.Any("config", cfg))

	return cfg, nil
}

func (cs *configStore) Save(path m.Path, cfg m.Config) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory for %s: %w", path, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o640); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
