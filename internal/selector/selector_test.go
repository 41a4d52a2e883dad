package selector

import (
	"fmt"
	"math/rand"
	"testing"

	shaderr "github.com/amterp/shades/internal/errors"
	"github.com/amterp/shades/internal/model"
	"github.com/amterp/shades/internal/namepool"
)

type staticPool []model.Shade

func (p staticPool) Shades() []model.Shade { return p }

func TestSelectUnique_SizeDistinctExcluded(t *testing.T) {
	pool := namepool.Builtin(rand.New(rand.NewSource(1)))
	excluded := model.NewShadeSet("#000000", "#0a0a0a", "191919")

	for seed := int64(0); seed < 25; seed++ {
		for _, count := range []int{0, 1, 5, 9, 40, 80, 150} {
			t.Run(fmt.Sprintf("seed=%d/count=%d", seed, count), func(t *testing.T) {
				sel := New(pool, rand.New(rand.NewSource(seed)))
				got, err := sel.SelectUnique(count, excluded, model.NewUsageCounter(), 1.0)
				if err != nil {
					t.Fatalf("SelectUnique failed: %v", err)
				}
				if len(got) != count {
					t.Fatalf("len = %d, want %d", len(got), count)
				}

				seen := model.NewShadeSet()
				for _, shade := range got {
					if !shade.Valid() || !shade.IsGray() {
						t.Errorf("shade %q is not a canonical gray", shade)
					}
					if seen.Has(shade) {
						t.Errorf("duplicate shade %q", shade)
					}
					if excluded.Has(shade) {
						t.Errorf("excluded shade %q returned", shade)
					}
					seen.Add(shade)
				}
			})
		}
	}
}

func TestSelectUnique_PrefersPool(t *testing.T) {
	pool := staticPool{"#101010", "#202020", "#303030"}
	sel := New(pool, rand.New(rand.NewSource(3)))

	got, err := sel.SelectUnique(3, nil, nil, 1.0)
	if err != nil {
		t.Fatalf("SelectUnique failed: %v", err)
	}
	want := model.NewShadeSet(pool...)
	for _, shade := range got {
		if !want.Has(shade) {
			t.Errorf("got %q, expected only pool shades", shade)
		}
	}
}

func TestSelectUnique_FallbackIsDark(t *testing.T) {
	sel := New(staticPool{}, rand.New(rand.NewSource(11)))

	got, err := sel.SelectUnique(24, nil, nil, 1.0)
	if err != nil {
		t.Fatalf("SelectUnique failed: %v", err)
	}
	for _, shade := range got {
		v, ok := shade.Intensity()
		if !ok {
			t.Fatalf("fallback shade %q is not gray", shade)
		}
		if v >= FallbackRange {
			t.Errorf("fallback shade %q outside dark range", shade)
		}
	}
}

func TestSelectUnique_SweepsWholeRange(t *testing.T) {
	sel := New(staticPool{}, rand.New(rand.NewSource(5)))

	got, err := sel.SelectUnique(200, nil, nil, 1.0)
	if err != nil {
		t.Fatalf("SelectUnique failed: %v", err)
	}
	if len(model.NewShadeSet(got...)) != 200 {
		t.Errorf("expected 200 distinct shades")
	}
}

func TestSelectUnique_Exhausted(t *testing.T) {
	excluded := model.NewShadeSet()
	for v := 0; v < 250; v++ {
		excluded.Add(model.Gray(uint8(v)))
	}
	sel := New(staticPool{}, rand.New(rand.NewSource(1)))

	_, err := sel.SelectUnique(10, excluded, nil, 1.0)
	if !shaderr.IsExhausted(err) {
		t.Fatalf("expected exhausted error, got %v", err)
	}
}

func TestSelectUnique_UsageBias(t *testing.T) {
	fresh := model.Shade("#111111")
	worn := model.Shade("#222222")
	pool := staticPool{fresh, worn}

	usage := model.NewUsageCounter()
	usage.Bump(worn, 100)

	sel := New(pool, rand.New(rand.NewSource(99)))
	wins := map[model.Shade]int{}
	for i := 0; i < 5000; i++ {
		got, err := sel.SelectUnique(1, nil, usage, 1.0)
		if err != nil {
			t.Fatalf("SelectUnique failed: %v", err)
		}
		wins[got[0]]++
	}

	if wins[fresh] <= wins[worn] {
		t.Errorf("unused shade should win more often: fresh=%d worn=%d", wins[fresh], wins[worn])
	}
	if wins[worn] == 0 {
		t.Errorf("heavily used shade should still be possible, never picked in 5000 draws")
	}
}

func TestSelectUnique_ZeroBiasIgnoresUsage(t *testing.T) {
	pool := staticPool{"#111111", "#222222"}
	usage := model.NewUsageCounter()
	usage.Bump("#222222", 1000)

	sel := New(pool, rand.New(rand.NewSource(4)))
	wins := map[model.Shade]int{}
	for i := 0; i < 4000; i++ {
		got, _ := sel.SelectUnique(1, nil, usage, -5)
		wins[got[0]]++
	}

	// Both should land near 2000 without bias
	for shade, n := range wins {
		if n < 1600 || n > 2400 {
			t.Errorf("%s picked %d of 4000 times, expected roughly half", shade, n)
		}
	}
}
