package testutil

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/amterp/shades/internal/config"
	"github.com/amterp/shades/internal/model"
	"github.com/amterp/shades/internal/namepool"
	"github.com/amterp/shades/internal/selector"
	"github.com/amterp/shades/internal/service"
)

// Rand returns a deterministic random source.
func Rand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// TestPool returns the built-in name pool with a seeded synonym source.
func TestPool(seed int64) *namepool.Pool {
	return namepool.Builtin(Rand(seed))
}

// TestPaletteService returns an n-column service over the built-in pool.
// Every random choice derives from seed. syncer may be nil.
func TestPaletteService(n int, seed int64, syncer service.Syncer) *service.PaletteService {
	pool := TestPool(seed)
	sel := selector.New(pool, Rand(seed+1))
	return service.NewPaletteService(n, pool, sel, model.DefaultBias, syncer)
}

// TempConfigDir creates a temporary config home for testing.
// Returns the temp dir path and a cleanup function.
func TempConfigDir(t *testing.T) (string, func()) {
	t.Helper()

	dir, err := os.MkdirTemp("", "shades-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	if err := os.MkdirAll(filepath.Join(dir, "shades"), 0755); err != nil {
		os.RemoveAll(dir)
		t.Fatalf("failed to create config dir: %v", err)
	}

	cleanup := func() {
		os.RemoveAll(dir)
	}

	return dir, cleanup
}

// NewTestPaths creates Paths rooted at the given temp config home.
func NewTestPaths(configHome string) *config.Paths {
	return config.NewPathsAt(configHome)
}

// FakeClipboard records writes. Set Fail to make every write error.
type FakeClipboard struct {
	mu     sync.Mutex
	Fail   bool
	writes []string
}

// ErrClipboardDenied is returned by a failing FakeClipboard.
var ErrClipboardDenied = errors.New("clipboard write denied")

func (c *FakeClipboard) WriteText(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Fail {
		return ErrClipboardDenied
	}
	c.writes = append(c.writes, text)
	return nil
}

// Writes returns everything written so far.
func (c *FakeClipboard) Writes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.writes))
	copy(out, c.writes)
	return out
}

// RecordingRenderer keeps every frame it is asked to draw.
type RecordingRenderer struct {
	Frames [][]model.Column
}

func (r *RecordingRenderer) Render(cols []model.Column) {
	r.Frames = append(r.Frames, cols)
}

// Last returns the most recent frame, nil if nothing was drawn.
func (r *RecordingRenderer) Last() []model.Column {
	if len(r.Frames) == 0 {
		return nil
	}
	return r.Frames[len(r.Frames)-1]
}
