package service

import (
	shaderr "github.com/amterp/shades/internal/errors"
	"github.com/amterp/shades/internal/fragment"
	"github.com/amterp/shades/internal/model"
)

// Namer resolves a display name for a shade ("" when unknown).
type Namer interface {
	NameFromHex(hex string) string
}

// Picker produces distinct shades outside an exclusion set.
type Picker interface {
	SelectUnique(count int, excluded model.ShadeSet, usage *model.UsageCounter, bias float64) ([]model.Shade, error)
}

// Syncer publishes palette state after a mutation (URL, parent frame).
type Syncer interface {
	Sync(state model.PaletteState)
}

// PaletteService owns the column state model and the session usage counter.
// It is not safe for concurrent use.
type PaletteService struct {
	columns []model.Column
	namer   Namer
	picker  Picker
	usage   *model.UsageCounter
	bias    float64
	syncer  Syncer
}

// NewPaletteService creates n unlocked columns. syncer may be nil.
func NewPaletteService(n int, namer Namer, picker Picker, bias float64, syncer Syncer) *PaletteService {
	return &PaletteService{
		columns: model.NewColumns(n),
		namer:   namer,
		picker:  picker,
		usage:   model.NewUsageCounter(),
		bias:    bias,
		syncer:  syncer,
	}
}

// Len returns the number of columns.
func (s *PaletteService) Len() int {
	return len(s.columns)
}

// Columns returns a snapshot of every column.
func (s *PaletteService) Columns() []model.Column {
	out := make([]model.Column, len(s.columns))
	copy(out, s.columns)
	return out
}

// Column returns a snapshot of column i.
func (s *PaletteService) Column(i int) (model.Column, error) {
	if err := s.checkIndex(i); err != nil {
		return model.Column{}, err
	}
	return s.columns[i], nil
}

// State returns the current palette state.
func (s *PaletteService) State() model.PaletteState {
	return model.StateOf(s.columns)
}

// Fragment returns the encoded palette state.
func (s *PaletteService) Fragment() string {
	return fragment.EncodeColumns(s.columns)
}

// Usage returns the session usage counter.
func (s *PaletteService) Usage() *model.UsageCounter {
	return s.usage
}

// NameFor resolves a fresh display name for column i's current shade.
func (s *PaletteService) NameFor(i int) string {
	if s.checkIndex(i) != nil {
		return ""
	}
	return s.namer.NameFromHex(s.columns[i].Shade.String())
}

// SetShade assigns shade to column i. With resolveName the display name is
// re-resolved ("" when the shade has no name); otherwise it is kept.
func (s *PaletteService) SetShade(i int, shade model.Shade, resolveName bool) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	canonical, ok := model.ParseShade(string(shade))
	if !ok {
		return shaderr.InvalidField("shade", string(shade))
	}

	col := &s.columns[i]
	col.Shade = canonical
	if resolveName {
		col.Name = s.namer.NameFromHex(canonical.String())
	}
	return nil
}

// ToggleLock flips column i's lock and returns the new state. The shade is
// untouched and nothing is published: locks are not part of palette state.
func (s *PaletteService) ToggleLock(i int) (bool, error) {
	if err := s.checkIndex(i); err != nil {
		return false, err
	}
	s.columns[i].Locked = !s.columns[i].Locked
	return s.columns[i].Locked, nil
}

// SetLocked sets column i's lock explicitly.
func (s *PaletteService) SetLocked(i int, locked bool) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.columns[i].Locked = locked
	return nil
}

// Generate assigns new shades. With respectLocks, locked columns keep their
// shade and their shades are excluded; unlocked columns never get back the
// shade they had. Without it every column is refilled with no exclusions.
// Each assigned shade bumps its usage count by one.
func (s *PaletteService) Generate(respectLocks bool) error {
	var targets []int
	exclude := model.NewShadeSet()

	for i, col := range s.columns {
		if respectLocks && col.Locked {
			exclude.Add(col.Shade)
			continue
		}
		targets = append(targets, i)
	}
	if respectLocks {
		for _, i := range targets {
			exclude.Add(s.columns[i].Shade)
		}
	}

	shades, err := s.picker.SelectUnique(len(targets), exclude, s.usage, s.bias)
	if err != nil {
		return err
	}

	for n, i := range targets {
		if err := s.SetShade(i, shades[n], true); err != nil {
			return err
		}
		s.usage.Bump(shades[n], 1)
	}

	s.sync()
	return nil
}

// ApplyShades maps shades onto columns by position, up to the shorter of the
// two lists. Locked columns are skipped unless overwriteLocked; columns past
// the end of shades are left alone, as are positions holding invalid shades.
// Returns how many columns changed.
func (s *PaletteService) ApplyShades(shades []model.Shade, overwriteLocked bool) int {
	count := min(len(s.columns), len(shades))

	applied := 0
	for i := 0; i < count; i++ {
		if s.columns[i].Locked && !overwriteLocked {
			continue
		}
		if err := s.SetShade(i, shades[i], true); err != nil {
			continue
		}
		applied++
	}

	s.sync()
	return applied
}

// Init loads the palette on startup. A decodable fragment supplies the first
// shades (locks are overwritten) and any missing columns are backfilled with
// fresh shades distinct from the decoded ones. Otherwise every column is
// generated with no exclusions.
func (s *PaletteService) Init(frag string) error {
	decoded := fragment.Decode(frag)
	if decoded == nil {
		return s.Generate(false)
	}

	base := decoded[:min(len(decoded), len(s.columns))]
	shades := make([]model.Shade, 0, len(s.columns))
	shades = append(shades, base...)

	if missing := len(s.columns) - len(base); missing > 0 {
		extras, err := s.picker.SelectUnique(missing, model.NewShadeSet(base...), s.usage, s.bias)
		if err != nil {
			return err
		}
		shades = append(shades, extras...)
	}

	s.ApplyShades(shades, true)
	return nil
}

func (s *PaletteService) sync() {
	if s.syncer != nil {
		s.syncer.Sync(s.State())
	}
}

func (s *PaletteService) checkIndex(i int) error {
	if i < 0 || i >= len(s.columns) {
		return shaderr.ColumnOutOfRange(i, len(s.columns))
	}
	return nil
}
