package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amterp/shades/internal/model"
	"github.com/amterp/shades/internal/version"
	"github.com/amterp/shades/testutil"
)

func TestGlobalStore_LoadMissingFile(t *testing.T) {
	dir, cleanup := testutil.TempConfigDir(t)
	defer cleanup()

	s := NewGlobalStore(testutil.NewTestPaths(dir))
	cfg, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ColumnCount() != model.DefaultColumnCount {
		t.Errorf("ColumnCount = %d, want default", cfg.ColumnCount())
	}
}

func TestGlobalStore_SaveAndLoad(t *testing.T) {
	dir, cleanup := testutil.TempConfigDir(t)
	defer cleanup()

	s := NewGlobalStore(testutil.NewTestPaths(dir))
	bias := 2.5
	in := &model.GlobalConfig{Columns: 7, Bias: &bias, PoolFile: "mine.toml", OpenURL: "https://example.com/p"}
	if err := s.Save(in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if in.ShadesSchema != version.CurrentGlobalSchema() {
		t.Errorf("Save should stamp schema, got %q", in.ShadesSchema)
	}

	out, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if out.Columns != 7 || out.UsageBias() != 2.5 || out.PoolFile != "mine.toml" || out.OpenURL != "https://example.com/p" {
		t.Errorf("round trip mismatch: %+v", out)
	}
}

func TestGlobalStore_SchemaValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing schema", "columns = 4\n"},
		{"wrong schema", "shades_schema = \"global/99\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, cleanup := testutil.TempConfigDir(t)
			defer cleanup()

			path := filepath.Join(dir, "shades", "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := NewGlobalStore(testutil.NewTestPaths(dir)).Load()
			if _, ok := err.(*version.SchemaVersionError); !ok {
				t.Errorf("expected SchemaVersionError, got %v", err)
			}
		})
	}
}

func TestGlobalStore_InvalidToml(t *testing.T) {
	dir, cleanup := testutil.TempConfigDir(t)
	defer cleanup()

	path := filepath.Join(dir, "shades", "config.toml")
	os.WriteFile(path, []byte("columns = = 3"), 0644)

	if _, err := NewGlobalStore(testutil.NewTestPaths(dir)).Load(); err == nil {
		t.Error("expected parse error")
	}
}

func TestGlobalStore_EnsureExists(t *testing.T) {
	dir, cleanup := testutil.TempConfigDir(t)
	defer cleanup()

	s := NewGlobalStore(testutil.NewTestPaths(dir))
	if err := s.EnsureExists(); err != nil {
		t.Fatalf("EnsureExists failed: %v", err)
	}
	cfg, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port() != model.DefaultServePort || cfg.Columns != model.DefaultColumnCount {
		t.Errorf("defaults not written: %+v", cfg)
	}

	// Existing file is left alone
	cfg.Columns = 3
	s.Save(cfg)
	s.EnsureExists()
	cfg, _ = s.Load()
	if cfg.Columns != 3 {
		t.Errorf("EnsureExists overwrote config: columns = %d", cfg.Columns)
	}
}
