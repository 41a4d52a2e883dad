package service

import (
	"os"

	"github.com/BurntSushi/toml"
)

// readTOMLMap reads a TOML file into a generic map so unknown keys survive
// a rewrite.
func readTOMLMap(path string) (map[string]any, error) {
	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}

// writeTOMLMap writes a map to a TOML file.
func writeTOMLMap(path string, data map[string]any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(data)
}

// tomlNumber reads an integer or float TOML value.
func tomlNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
