package namepool

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/amterp/shades/internal/model"
)

func testPool(t *testing.T) *Pool {
	t.Helper()
	return New([]Entry{
		{Name: "Void", Value: "00"},
		{Name: "Vantablack", Value: "00"},
		{Name: "Abyss", Value: "0"}, // padded to "00"
		{Name: "Sable", Value: "0a"},
		{Name: "Broken", Value: "xyz"},
		{Name: "Sable", Value: "FF"}, // duplicate name, ignored
		{Name: "Charcoal", Value: "#19"},
	}, rand.New(rand.NewSource(1)))
}

func TestHexFromName(t *testing.T) {
	p := testPool(t)

	tests := []struct {
		name   string
		want   model.Shade
		wantOK bool
	}{
		{"Void", "#000000", true},
		{"Abyss", "#000000", true},
		{"Sable", "#0A0A0A", true},
		{"sable", "#0A0A0A", true},
		{"Charcoal", "#191919", true},
		{"Broken", "", false},
		{"Unknown", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.HexFromName(tt.name)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("HexFromName(%q) = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNameFromHex_FailsSoft(t *testing.T) {
	p := testPool(t)

	for _, hex := range []string{"", "zzzzzz", "#0A0A0B", "#123456", "#FEFEFE"} {
		if got := p.NameFromHex(hex); got != "" {
			t.Errorf("NameFromHex(%q) = %q, want empty", hex, got)
		}
	}
}

func TestNameFromHex_SingleMatch(t *testing.T) {
	p := testPool(t)

	for _, hex := range []string{"#0A0A0A", "0a0a0a", "#0a0A0a"} {
		if got := p.NameFromHex(hex); got != "Sable" {
			t.Errorf("NameFromHex(%q) = %q, want Sable", hex, got)
		}
	}
}

func TestNameFromHex_SynonymsVary(t *testing.T) {
	p := testPool(t)

	seen := make(map[string]int)
	for i := 0; i < 300; i++ {
		seen[p.NameFromHex("#000000")]++
	}

	for _, name := range []string{"Void", "Vantablack", "Abyss"} {
		if seen[name] == 0 {
			t.Errorf("synonym %q never selected in 300 draws: %v", name, seen)
		}
	}
	if len(seen) != 3 {
		t.Errorf("expected exactly 3 distinct names, got %v", seen)
	}
}

func TestNameFromHex_SeededSequenceIsDeterministic(t *testing.T) {
	a := New([]Entry{{"A", "00"}, {"B", "00"}, {"C", "00"}}, rand.New(rand.NewSource(42)))
	b := New([]Entry{{"A", "00"}, {"B", "00"}, {"C", "00"}}, rand.New(rand.NewSource(42)))

	for i := 0; i < 20; i++ {
		if x, y := a.NameFromHex("#000000"), b.NameFromHex("#000000"); x != y {
			t.Fatalf("draw %d differs: %q vs %q", i, x, y)
		}
	}
}

func TestCanonicalName_FirstSeenWins(t *testing.T) {
	p := testPool(t)

	if got := p.CanonicalName("#000000"); got != "Void" {
		t.Errorf("CanonicalName = %q, want Void", got)
	}
	if got := p.Synonyms("#000000"); strings.Join(got, ",") != "Void,Vantablack,Abyss" {
		t.Errorf("Synonyms = %v", got)
	}
}

func TestShades_DedupedInTableOrder(t *testing.T) {
	p := testPool(t)

	got := p.Shades()
	want := []model.Shade{"#000000", "#0A0A0A", "#191919"}
	if len(got) != len(want) {
		t.Fatalf("Shades() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Shades()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, want 3", p.Len())
	}
	if len(p.Names()) != 6 {
		t.Errorf("Names() = %v, want 6 entries", p.Names())
	}
}

func TestBuiltin(t *testing.T) {
	p := Builtin(rand.New(rand.NewSource(7)))

	if p.Len() < 20 {
		t.Errorf("built-in table has only %d shades", p.Len())
	}
	for _, shade := range p.Shades() {
		if !shade.IsGray() {
			t.Errorf("built-in shade %q is not grayscale", shade)
		}
		if p.NameFromHex(shade.String()) == "" {
			t.Errorf("built-in shade %q has no name", shade)
		}
	}
}

func TestLoad(t *testing.T) {
	src := `
[[shade]]
name = "Ink"
value = "05"

[[shade]]
name = "Tar"
value = "11"
`
	p, err := Load(strings.NewReader(src), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if shade, ok := p.HexFromName("Tar"); !ok || shade != "#111111" {
		t.Errorf("HexFromName(Tar) = %q, %v", shade, ok)
	}

	if _, err := Load(strings.NewReader("[[shade]\nname="), nil); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("eerie black"); got != "Eerie Black" {
		t.Errorf("DisplayName = %q", got)
	}
}

func TestReadEntries_KeepsRowsAsWritten(t *testing.T) {
	src := `
[[shade]]
name = "Ink"
value = "05"

[[shade]]
name = "Ink"
value = "zz"
`
	entries, err := ReadEntries(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 2 || entries[1].Value != "zz" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestValidValue(t *testing.T) {
	for _, v := range []string{"00", "0", "#19", "ff", " 0a "} {
		if !ValidValue(v) {
			t.Errorf("ValidValue(%q) = false", v)
		}
	}
	for _, v := range []string{"", "xyz", "100", "#", "g0"} {
		if ValidValue(v) {
			t.Errorf("ValidValue(%q) = true", v)
		}
	}
}
