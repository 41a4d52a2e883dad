// Package namepool maps human-readable shade names to grayscale intensities
// and back. The built-in table ships as data/shades.toml; a user table in the
// same format can replace it.
package namepool

import (
	_ "embed"
	"fmt"
	"io"
	"math/rand"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/amterp/shades/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed data/shades.toml
var builtinTable []byte

var componentRegex = regexp.MustCompile(`^[0-9A-F]{2}$`)

// Entry is one row of the name table.
type Entry struct {
	Name  string `toml:"name"`
	Value string `toml:"value"` // two hex digits, e.g. "0A"
}

type table struct {
	Shades []Entry `toml:"shade"`
}

// Pool is an immutable name table with a reverse index built once at load.
// Synonym selection draws from an injected random source guarded by rngMu.
type Pool struct {
	entries     []Entry
	byName      map[string]string   // name -> normalized component, "" if invalid
	byLowerName map[string]string   // lowercased name -> name
	byComponent map[string][]string // component -> names in table order
	shades      []model.Shade       // distinct valid shades in table order

	rngMu sync.Mutex
	rng   *rand.Rand
}

// New builds a pool from entries. Duplicate names keep their first value.
// Entries with a value that isn't a two-digit hex code stay in the table
// but never resolve. rng drives synonym selection; nil seeds from the clock.
func New(entries []Entry, rng *rand.Rand) *Pool {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	p := &Pool{
		byName:      make(map[string]string, len(entries)),
		byLowerName: make(map[string]string, len(entries)),
		byComponent: make(map[string][]string),
		rng:         rng,
	}

	seen := make(map[model.Shade]bool)
	for _, e := range entries {
		if e.Name == "" {
			continue
		}
		if _, dup := p.byName[e.Name]; dup {
			continue
		}
		p.entries = append(p.entries, e)

		comp, ok := normalizeComponent(e.Value)
		if !ok {
			p.byName[e.Name] = ""
			continue
		}
		p.byName[e.Name] = comp
		if _, taken := p.byLowerName[strings.ToLower(e.Name)]; !taken {
			p.byLowerName[strings.ToLower(e.Name)] = e.Name
		}
		p.byComponent[comp] = append(p.byComponent[comp], e.Name)

		shade := shadeOf(comp)
		if !seen[shade] {
			seen[shade] = true
			p.shades = append(p.shades, shade)
		}
	}

	return p
}

// ReadEntries reads the rows of a TOML name table as written, without
// dropping duplicates or invalid values.
func ReadEntries(r io.Reader) ([]Entry, error) {
	var t table
	if _, err := toml.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("parse name table: %w", err)
	}
	return t.Shades, nil
}

// Load reads a TOML name table.
func Load(r io.Reader, rng *rand.Rand) (*Pool, error) {
	entries, err := ReadEntries(r)
	if err != nil {
		return nil, err
	}
	return New(entries, rng), nil
}

// LoadFile reads a TOML name table from disk.
func LoadFile(path string, rng *rand.Rand) (*Pool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f, rng)
}

// Builtin returns a pool over the embedded table.
func Builtin(rng *rand.Rand) *Pool {
	var t table
	if err := toml.Unmarshal(builtinTable, &t); err != nil {
		panic(fmt.Sprintf("embedded name table is invalid: %v", err))
	}
	return New(t.Shades, rng)
}

// HexFromName resolves a name to its shade. Exact matches win; otherwise the
// lookup is case-insensitive. Returns false for unknown names and for names
// whose stored value isn't a valid two-digit code.
func (p *Pool) HexFromName(name string) (model.Shade, bool) {
	comp, ok := p.byName[name]
	if !ok {
		canonical, found := p.byLowerName[strings.ToLower(name)]
		if !found {
			return "", false
		}
		comp = p.byName[canonical]
	}
	if comp == "" {
		return "", false
	}
	return shadeOf(comp), true
}

// NameFromHex returns one of the names for a grayscale hex. When several
// names share the intensity the choice is uniformly random on every call.
// Returns "" for invalid input, non-gray colors and unknown intensities.
func (p *Pool) NameFromHex(hex string) string {
	names := p.Synonyms(hex)
	if len(names) == 0 {
		return ""
	}
	if len(names) == 1 {
		return names[0]
	}

	p.rngMu.Lock()
	idx := p.rng.Intn(len(names))
	p.rngMu.Unlock()
	return names[idx]
}

// CanonicalName returns the first listed name for a hex, or "".
func (p *Pool) CanonicalName(hex string) string {
	names := p.Synonyms(hex)
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// Synonyms returns every name for a grayscale hex in table order.
func (p *Pool) Synonyms(hex string) []string {
	shade, ok := model.ParseShade(hex)
	if !ok {
		return nil
	}
	v, ok := shade.Intensity()
	if !ok {
		return nil
	}
	names := p.byComponent[fmt.Sprintf("%02X", v)]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Names returns every name in table order.
func (p *Pool) Names() []string {
	out := make([]string, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.Name
	}
	return out
}

// Shades returns every distinct resolvable shade in table order.
func (p *Pool) Shades() []model.Shade {
	out := make([]model.Shade, len(p.shades))
	copy(out, p.shades)
	return out
}

// Len returns the number of distinct resolvable shades.
func (p *Pool) Len() int {
	return len(p.shades)
}

// DisplayName title-cases a name for labels ("eerie black" -> "Eerie Black").
func DisplayName(name string) string {
	return cases.Title(language.English).String(name)
}

// ValidValue reports whether v is a usable table value: one or two hex
// digits, optionally prefixed with '#'.
func ValidValue(v string) bool {
	_, ok := normalizeComponent(v)
	return ok
}

// normalizeComponent uppercases and left-pads v to two digits.
func normalizeComponent(v string) (string, bool) {
	comp := strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(v), "#"))
	if len(comp) == 1 {
		comp = "0" + comp
	}
	if !componentRegex.MatchString(comp) {
		return "", false
	}
	return comp, true
}

func shadeOf(comp string) model.Shade {
	return model.Shade("#" + comp + comp + comp)
}
