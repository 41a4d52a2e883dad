// Package selector picks unique grayscale shades for palette columns.
//
// Named pool shades are preferred, ordered by a usage-aware random score so
// that shades assigned often this session sink without ever being forbidden.
// When the pool runs dry, shades are synthesized from a generator biased
// toward the dark end of the range.
package selector

import (
	"math"
	"math/rand"
	"sort"

	shaderr "github.com/amterp/shades/internal/errors"
	"github.com/amterp/shades/internal/model"
)

const (
	// FallbackRange caps synthesized intensities to the darkest quarter.
	FallbackRange = 64

	// MaxFallbackAttempts bounds random draws before the exhaustive sweep.
	MaxFallbackAttempts = 4096
)

// Candidates supplies the named shades the selector prefers.
type Candidates interface {
	Shades() []model.Shade
}

// Selector draws unique shades. Not safe for concurrent use.
type Selector struct {
	pool Candidates
	rng  *rand.Rand
}

// New creates a selector over pool. rng must not be nil.
func New(pool Candidates, rng *rand.Rand) *Selector {
	return &Selector{pool: pool, rng: rng}
}

type candidate struct {
	shade model.Shade
	score float64
}

// SelectUnique returns count distinct shades, none of them in excluded.
// usage may be nil. Negative bias is treated as zero.
func (s *Selector) SelectUnique(count int, excluded model.ShadeSet, usage *model.UsageCounter, bias float64) ([]model.Shade, error) {
	if count <= 0 {
		return []model.Shade{}, nil
	}
	bias = math.Max(0, bias)

	used := model.NewShadeSet()
	for shade := range excluded {
		used.Add(shade)
	}

	// Score every distinct pool shade not already taken
	var candidates []candidate
	seen := model.NewShadeSet()
	for _, shade := range s.pool.Shades() {
		if used.Has(shade) || seen.Has(shade) {
			continue
		}
		seen.Add(shade)
		score := s.rng.Float64() / (1 + float64(usage.Count(shade))*bias)
		candidates = append(candidates, candidate{shade: shade, score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	out := make([]model.Shade, 0, count)
	for _, c := range candidates {
		if len(out) >= count {
			break
		}
		used.Add(c.shade)
		out = append(out, c.shade)
	}

	// Pool exhausted: synthesize dark-biased shades
	for attempts := 0; len(out) < count && attempts < MaxFallbackAttempts; attempts++ {
		shade := s.randomDarkShade()
		if used.Has(shade) {
			continue
		}
		used.Add(shade)
		out = append(out, shade)
	}

	// Random draws keep colliding; sweep the whole gray range darkest first
	for v := 0; len(out) < count && v < 256; v++ {
		shade := model.Gray(uint8(v))
		if used.Has(shade) {
			continue
		}
		used.Add(shade)
		out = append(out, shade)
	}

	if len(out) < count {
		return nil, &shaderr.ExhaustedError{Wanted: count, Got: len(out)}
	}
	return out, nil
}

// randomDarkShade squares a uniform draw to push mass toward zero, then
// scales into [0, FallbackRange).
func (s *Selector) randomDarkShade() model.Shade {
	u := s.rng.Float64()
	v := int(math.Floor(u * u * FallbackRange))
	return model.Gray(uint8(v))
}
