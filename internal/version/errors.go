package version

import (
	"fmt"
)

// SchemaVersionError indicates a config file this build can't read.
type SchemaVersionError struct {
	FilePath    string
	Found       string // "missing" or the schema that was found
	Expected    string
	MinRequired string // minimum shades release, set for newer schemas
}

func (e *SchemaVersionError) Error() string {
	if e.MinRequired != "" {
		return fmt.Sprintf(
			"global config schema %s requires shades >= %s (file: %s, supports up to: %s)",
			e.Found, e.MinRequired, e.FilePath, e.Expected,
		)
	}
	if e.Found == "missing" {
		return fmt.Sprintf(
			"global config has no shades_schema (file: %s). Add shades_schema = %q.",
			e.FilePath, e.Expected,
		)
	}
	return fmt.Sprintf(
		"global config has invalid schema version: found %s, expected %s (file: %s)",
		e.Found, e.Expected, e.FilePath,
	)
}

// MissingGlobalSchema creates an error for a config without shades_schema.
func MissingGlobalSchema(path string) error {
	return &SchemaVersionError{
		FilePath: path,
		Found:    "missing",
		Expected: CurrentGlobalSchema(),
	}
}

// InvalidGlobalSchema creates an error for a config with an unsupported schema.
func InvalidGlobalSchema(path, found string) error {
	e := &SchemaVersionError{
		FilePath: path,
		Found:    found,
		Expected: CurrentGlobalSchema(),
	}
	if v, err := ParseGlobalVersion(found); err == nil && v > CurrentGlobalVersion {
		if minShades, ok := MinShadesVersion[found]; ok {
			e.MinRequired = minShades
		} else {
			e.MinRequired = "a newer version"
		}
	}
	return e
}
