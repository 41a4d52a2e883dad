package model

// Column is one on-screen swatch slot.
type Column struct {
	Index  int    `json:"index"`
	Locked bool   `json:"locked"`
	Shade  Shade  `json:"shade"`
	Name   string `json:"name"`
}

// NewColumns returns n unlocked columns showing Black.
func NewColumns(n int) []Column {
	cols := make([]Column, n)
	for i := range cols {
		cols[i] = Column{Index: i, Shade: Black}
	}
	return cols
}

// PaletteState is the ordered list of every column's shade. It is the
// externally observable state: what goes into the fragment and what the
// parent frame is told about.
type PaletteState []Shade

// StateOf extracts the palette state from columns in index order.
func StateOf(cols []Column) PaletteState {
	state := make(PaletteState, len(cols))
	for i, col := range cols {
		shade := col.Shade
		if shade == "" {
			shade = Black
		}
		state[i] = shade
	}
	return state
}

// Strings returns the shades as "#RRGGBB" strings.
func (p PaletteState) Strings() []string {
	out := make([]string, len(p))
	for i, s := range p {
		out[i] = s.String()
	}
	return out
}

// Equal reports whether two states hold the same shades in the same order.
func (p PaletteState) Equal(other PaletteState) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}
