package version

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatGlobalSchema(t *testing.T) {
	tests := []struct {
		version  int
		expected string
	}{
		{1, "global/1"},
		{2, "global/2"},
		{10, "global/10"},
	}
	for _, tt := range tests {
		got := FormatGlobalSchema(tt.version)
		if got != tt.expected {
			t.Errorf("FormatGlobalSchema(%d) = %q, want %q", tt.version, got, tt.expected)
		}
	}
}

func TestParseGlobalVersion(t *testing.T) {
	tests := []struct {
		schema    string
		expected  int
		expectErr bool
	}{
		{"global/1", 1, false},
		{"global/2", 2, false},
		{"board/1", 0, true},    // Wrong prefix
		{"global/", 0, true},    // Missing version
		{"global/abc", 0, true}, // Invalid version
		{"global/0", 0, true},   // Version must be >= 1
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseGlobalVersion(tt.schema)
		if tt.expectErr {
			if err == nil {
				t.Errorf("ParseGlobalVersion(%q) expected error, got %d", tt.schema, got)
			}
		} else {
			if err != nil {
				t.Errorf("ParseGlobalVersion(%q) unexpected error: %v", tt.schema, err)
			} else if got != tt.expected {
				t.Errorf("ParseGlobalVersion(%q) = %d, want %d", tt.schema, got, tt.expected)
			}
		}
	}
}

func TestCurrentGlobalSchema(t *testing.T) {
	if got := CurrentGlobalSchema(); got != "global/1" {
		t.Errorf("CurrentGlobalSchema() = %q, want %q", got, "global/1")
	}
}

func TestSchemaVersionError(t *testing.T) {
	err := MissingGlobalSchema("/home/u/.config/shades/config.toml")
	if !strings.Contains(err.Error(), "no shades_schema") {
		t.Errorf("unexpected message: %v", err)
	}

	err = InvalidGlobalSchema("/cfg.toml", "global/7")
	var sve *SchemaVersionError
	if !errors.As(err, &sve) {
		t.Fatalf("expected SchemaVersionError, got %T", err)
	}
	if sve.MinRequired != "a newer version" {
		t.Errorf("MinRequired = %q", sve.MinRequired)
	}

	err = InvalidGlobalSchema("/cfg.toml", "bogus")
	if !errors.As(err, &sve) || sve.MinRequired != "" {
		t.Errorf("malformed schema should not suggest an upgrade: %v", err)
	}
}

// TestMinShadesVersionCompleteness catches a bumped schema constant without
// a matching MinShadesVersion entry.
func TestMinShadesVersionCompleteness(t *testing.T) {
	if _, ok := MinShadesVersion[CurrentGlobalSchema()]; !ok {
		t.Errorf("MinShadesVersion missing entry for %q", CurrentGlobalSchema())
	}
}
