package model

// UsageCounter counts how often each shade was assigned by generation during
// the current session. It is a soft bias signal only and is never persisted.
// A nil *UsageCounter reads as all zeros.
type UsageCounter struct {
	counts map[Shade]int
}

// NewUsageCounter returns an empty counter.
func NewUsageCounter() *UsageCounter {
	return &UsageCounter{counts: make(map[Shade]int)}
}

// Count returns how many times shade has been assigned.
func (u *UsageCounter) Count(shade Shade) int {
	if u == nil {
		return 0
	}
	return u.counts[shade]
}

// Bump adds delta to the count for shade. Non-canonical shades are ignored.
func (u *UsageCounter) Bump(shade Shade, delta int) {
	if u == nil || !shade.Valid() {
		return
	}
	next := u.counts[shade] + delta
	if next < 0 {
		next = 0
	}
	u.counts[shade] = next
}

// Len returns the number of distinct shades seen.
func (u *UsageCounter) Len() int {
	if u == nil {
		return 0
	}
	return len(u.counts)
}

// Snapshot returns a copy of the counts.
func (u *UsageCounter) Snapshot() map[Shade]int {
	out := make(map[Shade]int)
	if u == nil {
		return out
	}
	for k, v := range u.counts {
		out[k] = v
	}
	return out
}
