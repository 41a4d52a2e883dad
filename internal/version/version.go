package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Current schema versions. Bump when making breaking changes to the file,
// and add the matching MinShadesVersion entry.
const (
	CurrentGlobalVersion = 1
)

// GlobalSchemaPrefix prefixes the shades_schema value in config.toml.
const GlobalSchemaPrefix = "global/"

// MinShadesVersion maps schema identifiers to the minimum shades release
// that can read them.
var MinShadesVersion = map[string]string{
	"global/1": "0.1.0",
}

// FormatGlobalSchema creates a global schema string from a version number.
// Example: FormatGlobalSchema(1) returns "global/1"
func FormatGlobalSchema(v int) string {
	return fmt.Sprintf("%s%d", GlobalSchemaPrefix, v)
}

// ParseGlobalVersion extracts the version number from a global schema string.
func ParseGlobalVersion(schema string) (int, error) {
	if !strings.HasPrefix(schema, GlobalSchemaPrefix) {
		return 0, fmt.Errorf("invalid global schema format: %q (expected %sN)", schema, GlobalSchemaPrefix)
	}
	versionStr := strings.TrimPrefix(schema, GlobalSchemaPrefix)
	v, err := strconv.Atoi(versionStr)
	if err != nil {
		return 0, fmt.Errorf("invalid global schema version: %q", versionStr)
	}
	if v < 1 {
		return 0, fmt.Errorf("invalid global schema version: %d (must be >= 1)", v)
	}
	return v, nil
}

// CurrentGlobalSchema returns the current global schema string.
func CurrentGlobalSchema() string {
	return FormatGlobalSchema(CurrentGlobalVersion)
}
