package service

import (
	"math/rand"
	"testing"

	shaderr "github.com/amterp/shades/internal/errors"
	"github.com/amterp/shades/internal/model"
	"github.com/amterp/shades/internal/namepool"
	"github.com/amterp/shades/internal/selector"
)

type recordingSyncer struct {
	states []model.PaletteState
}

func (r *recordingSyncer) Sync(state model.PaletteState) {
	r.states = append(r.states, state)
}

func newTestService(t *testing.T, n int, seed int64) (*PaletteService, *recordingSyncer) {
	t.Helper()
	pool := namepool.Builtin(rand.New(rand.NewSource(seed)))
	sel := selector.New(pool, rand.New(rand.NewSource(seed+1)))
	syncer := &recordingSyncer{}
	return NewPaletteService(n, pool, sel, 1.0, syncer), syncer
}

// ============================================================================
// Generate
// ============================================================================

func TestGenerate_FillsEveryColumn(t *testing.T) {
	svc, syncer := newTestService(t, 5, 1)

	if err := svc.Generate(false); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	seen := model.NewShadeSet()
	for _, col := range svc.Columns() {
		if !col.Shade.IsGray() {
			t.Errorf("column %d shade %q is not gray", col.Index, col.Shade)
		}
		if seen.Has(col.Shade) {
			t.Errorf("duplicate shade %q", col.Shade)
		}
		seen.Add(col.Shade)
		if col.Name == "" {
			t.Errorf("column %d has no name for pool shade %q", col.Index, col.Shade)
		}
	}
	if len(syncer.states) != 1 {
		t.Errorf("expected one sync, got %d", len(syncer.states))
	}
}

func TestGenerate_LockingInvariant(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		svc, _ := newTestService(t, 6, seed)
		if err := svc.Generate(false); err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		svc.SetLocked(1, true)
		svc.SetLocked(4, true)
		before := svc.Columns()

		if err := svc.Generate(true); err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		after := svc.Columns()

		fresh := model.NewShadeSet()
		for i := range after {
			if before[i].Locked {
				if after[i].Shade != before[i].Shade {
					t.Errorf("seed %d: locked column %d changed %q -> %q", seed, i, before[i].Shade, after[i].Shade)
				}
				continue
			}
			if after[i].Shade == before[i].Shade {
				t.Errorf("seed %d: unlocked column %d kept %q", seed, i, after[i].Shade)
			}
			if fresh.Has(after[i].Shade) {
				t.Errorf("seed %d: duplicate new shade %q", seed, after[i].Shade)
			}
			if after[i].Shade == before[1].Shade || after[i].Shade == before[4].Shade {
				t.Errorf("seed %d: new shade %q collides with a locked column", seed, after[i].Shade)
			}
			fresh.Add(after[i].Shade)
		}
	}
}

func TestGenerate_IgnoringLocksRefillsEverything(t *testing.T) {
	svc, _ := newTestService(t, 3, 4)
	svc.Generate(false)
	svc.SetLocked(0, true)

	if err := svc.Generate(false); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	col, _ := svc.Column(0)
	if !col.Locked {
		t.Error("Generate must not clear locks")
	}

	total := 0
	for _, n := range svc.Usage().Snapshot() {
		total += n
	}
	if total != 6 {
		t.Errorf("total usage = %d, want 6 (locked column regenerated too)", total)
	}
}

func TestGenerate_BumpsUsage(t *testing.T) {
	svc, _ := newTestService(t, 4, 9)

	svc.Generate(false)
	svc.Generate(true)

	total := 0
	for _, n := range svc.Usage().Snapshot() {
		total += n
	}
	if total != 8 {
		t.Errorf("total usage = %d, want 8", total)
	}
	for _, col := range svc.Columns() {
		if svc.Usage().Count(col.Shade) < 1 {
			t.Errorf("shade %q on screen has no usage", col.Shade)
		}
	}
}

func TestGenerate_AllLocked(t *testing.T) {
	svc, syncer := newTestService(t, 2, 2)
	svc.Generate(false)
	svc.SetLocked(0, true)
	svc.SetLocked(1, true)
	before := svc.State()

	if err := svc.Generate(true); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !svc.State().Equal(before) {
		t.Errorf("fully locked palette changed: %v -> %v", before, svc.State())
	}
	if len(syncer.states) != 2 {
		t.Errorf("expected a sync per generate, got %d", len(syncer.states))
	}
}

// ============================================================================
// ApplyShades / Init
// ============================================================================

func TestApplyShades_SkipsLockedAndStopsAtShorterList(t *testing.T) {
	svc, _ := newTestService(t, 4, 3)
	svc.ApplyShades([]model.Shade{"#010101", "#020202", "#030303", "#040404"}, true)
	svc.SetLocked(1, true)

	applied := svc.ApplyShades([]model.Shade{"#0A0A0A", "#0B0B0B", "#0C0C0C"}, false)

	want := model.PaletteState{"#0A0A0A", "#020202", "#0C0C0C", "#040404"}
	if !svc.State().Equal(want) {
		t.Errorf("State = %v, want %v", svc.State(), want)
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}
}

func TestApplyShades_OverwriteLocked(t *testing.T) {
	svc, _ := newTestService(t, 2, 3)
	svc.SetLocked(0, true)

	svc.ApplyShades([]model.Shade{"#0A0A0A", "#0B0B0B"}, true)

	if got := svc.State(); !got.Equal(model.PaletteState{"#0A0A0A", "#0B0B0B"}) {
		t.Errorf("State = %v", got)
	}
	col, _ := svc.Column(0)
	if col.Name != "Sable" {
		t.Errorf("Name = %q, want Sable", col.Name)
	}
}

func TestApplyShades_LongerListIgnoresExtras(t *testing.T) {
	svc, _ := newTestService(t, 2, 3)

	applied := svc.ApplyShades([]model.Shade{"#0A0A0A", "#0B0B0B", "#0C0C0C"}, false)
	if applied != 2 || svc.Len() != 2 {
		t.Errorf("applied = %d, len = %d", applied, svc.Len())
	}
}

func TestApplyShades_NonGrayHasBlankName(t *testing.T) {
	svc, _ := newTestService(t, 1, 3)

	svc.ApplyShades([]model.Shade{"#AA1122"}, false)
	col, _ := svc.Column(0)
	if col.Shade != "#AA1122" || col.Name != "" {
		t.Errorf("column = %+v", col)
	}
}

func TestInit_FromFragmentBackfills(t *testing.T) {
	svc, syncer := newTestService(t, 5, 6)

	if err := svc.Init("#0a0a0a-zzzzzz-1b1b1b"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	state := svc.State()
	if state[0] != "#0A0A0A" || state[1] != "#1B1B1B" {
		t.Errorf("decoded shades not applied in order: %v", state)
	}
	if len(model.NewShadeSet(state...)) != 5 {
		t.Errorf("backfilled palette has duplicates: %v", state)
	}
	if len(syncer.states) != 1 {
		t.Errorf("expected one sync, got %d", len(syncer.states))
	}
}

func TestInit_TruncatesLongFragment(t *testing.T) {
	svc, _ := newTestService(t, 2, 6)

	svc.Init("010101-020202-030303")
	if !svc.State().Equal(model.PaletteState{"#010101", "#020202"}) {
		t.Errorf("State = %v", svc.State())
	}
}

func TestInit_NoFragmentGenerates(t *testing.T) {
	svc, _ := newTestService(t, 3, 6)

	if err := svc.Init(""); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	for _, col := range svc.Columns() {
		if svc.Usage().Count(col.Shade) != 1 {
			t.Errorf("column %d shade %q was not generated", col.Index, col.Shade)
		}
	}
	if svc.Usage().Len() != 3 {
		t.Errorf("usage len = %d, want 3", svc.Usage().Len())
	}
}

// ============================================================================
// Locks / SetShade
// ============================================================================

func TestToggleLock(t *testing.T) {
	svc, syncer := newTestService(t, 3, 1)
	svc.ApplyShades([]model.Shade{"#0A0A0A"}, false)
	syncs := len(syncer.states)

	locked, err := svc.ToggleLock(0)
	if err != nil || !locked {
		t.Fatalf("ToggleLock = %v, %v", locked, err)
	}
	locked, _ = svc.ToggleLock(0)
	if locked {
		t.Error("second toggle should unlock")
	}

	col, _ := svc.Column(0)
	if col.Shade != "#0A0A0A" {
		t.Errorf("toggle changed shade to %q", col.Shade)
	}
	if len(syncer.states) != syncs {
		t.Error("toggling a lock must not publish state")
	}

	if _, err := svc.ToggleLock(3); !shaderr.IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestSetShade(t *testing.T) {
	svc, _ := newTestService(t, 1, 1)

	svc.SetShade(0, "#0A0A0A", true)
	if err := svc.SetShade(0, "0b0b0b", false); err != nil {
		t.Fatalf("SetShade failed: %v", err)
	}
	col, _ := svc.Column(0)
	if col.Shade != "#0B0B0B" || col.Name != "Sable" {
		t.Errorf("column = %+v, want shade #0B0B0B with old name kept", col)
	}

	if err := svc.SetShade(0, "nope", true); !shaderr.IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	if err := svc.SetShade(-1, "#000000", true); !shaderr.IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestFragment(t *testing.T) {
	svc, _ := newTestService(t, 2, 1)
	svc.ApplyShades([]model.Shade{"#0A0A0A", "#1B1B1B"}, false)

	if got := svc.Fragment(); got != "0A0A0A-1B1B1B" {
		t.Errorf("Fragment = %q", got)
	}
}
