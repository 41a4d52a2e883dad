package model

// ShadeSet is an unordered set of shades.
type ShadeSet map[Shade]struct{}

// NewShadeSet builds a set, normalizing each entry. Invalid entries are dropped.
func NewShadeSet(shades ...Shade) ShadeSet {
	set := make(ShadeSet, len(shades))
	for _, s := range shades {
		set.Add(s)
	}
	return set
}

// Add inserts s after normalizing it. Returns false if s isn't a valid shade.
func (set ShadeSet) Add(s Shade) bool {
	canonical, ok := ParseShade(string(s))
	if !ok {
		return false
	}
	set[canonical] = struct{}{}
	return true
}

// Has reports whether s (normalized) is in the set. A nil set is empty.
func (set ShadeSet) Has(s Shade) bool {
	canonical, ok := ParseShade(string(s))
	if !ok {
		return false
	}
	_, found := set[canonical]
	return found
}
