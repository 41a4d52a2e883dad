package config

import (
	"os"
	"path/filepath"
)

const (
	AppDir         = "shades"
	ConfigFileName = "config.toml"
	PoolFileName   = "shades.toml"
	DotConfigDir   = ".config"
)

// Paths resolves where shades keeps its files.
type Paths struct {
	configHome string // parent of the shades dir, e.g. ~/.config
}

// NewPaths resolves paths under ~/.config. An unknown home leaves every
// path empty, which callers treat as "no config".
func NewPaths() *Paths {
	home, err := os.UserHomeDir()
	if err != nil {
		return &Paths{}
	}
	return &Paths{configHome: filepath.Join(home, DotConfigDir)}
}

// NewPathsAt resolves paths under an explicit config home.
func NewPathsAt(configHome string) *Paths {
	return &Paths{configHome: configHome}
}

// ConfigDir returns the shades config directory.
func (p *Paths) ConfigDir() string {
	if p.configHome == "" {
		return ""
	}
	return filepath.Join(p.configHome, AppDir)
}

// GlobalConfigPath returns the path to config.toml.
func (p *Paths) GlobalConfigPath() string {
	if p.configHome == "" {
		return ""
	}
	return filepath.Join(p.ConfigDir(), ConfigFileName)
}

// PoolPath resolves a pool_file setting. Relative paths are taken from the
// config directory; empty means the built-in table.
func (p *Paths) PoolPath(poolFile string) string {
	if poolFile == "" {
		return ""
	}
	if filepath.IsAbs(poolFile) || p.configHome == "" {
		return poolFile
	}
	return filepath.Join(p.ConfigDir(), poolFile)
}
