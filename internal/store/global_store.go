package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/amterp/shades/internal/config"
	"github.com/amterp/shades/internal/model"
	"github.com/amterp/shades/internal/version"
)

// FileGlobalStore implements GlobalStore using the filesystem.
type FileGlobalStore struct {
	paths *config.Paths
}

// NewGlobalStore creates a new global store.
func NewGlobalStore(paths *config.Paths) *FileGlobalStore {
	return &FileGlobalStore{paths: paths}
}

// Load reads the global config from disk.
// Returns an empty config if the file doesn't exist.
func (s *FileGlobalStore) Load() (*model.GlobalConfig, error) {
	path := s.paths.GlobalConfigPath()
	if path == "" {
		return &model.GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.GlobalConfig{}, nil
		}
		return nil, err
	}

	var cfg model.GlobalConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	// Strict version validation (only if file exists)
	if cfg.ShadesSchema == "" {
		return nil, version.MissingGlobalSchema(path)
	}
	if cfg.ShadesSchema != version.CurrentGlobalSchema() {
		return nil, version.InvalidGlobalSchema(path, cfg.ShadesSchema)
	}

	return &cfg, nil
}

// Save writes the global config to disk.
func (s *FileGlobalStore) Save(cfg *model.GlobalConfig) error {
	cfg.ShadesSchema = version.CurrentGlobalSchema()

	path := s.paths.GlobalConfigPath()
	if path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// EnsureExists creates the global config file with defaults if missing.
func (s *FileGlobalStore) EnsureExists() error {
	path := s.paths.GlobalConfigPath()
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return s.Save(model.DefaultGlobalConfig())
	}
	return nil
}
