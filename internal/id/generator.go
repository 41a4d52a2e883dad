package id

import (
	"time"

	fid "github.com/amterp/flexid"
	"github.com/amterp/shades/internal/util"
)

// contextLabelWords caps how much of a label ends up in a context id.
const contextLabelWords = 3

var generator *fid.Generator

func init() {
	epoch := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	config := fid.NewConfig().
		WithEpoch(epoch).
		WithTickSize(10 * time.Millisecond).
		WithNumRandomChars(3)

	generator = fid.MustNewGenerator(config)
}

// Generate returns a new unique ID.
func Generate() string {
	return generator.MustGenerate()
}

// ContextID returns an embed context id for the ?ctx= parameter, so a host
// page with several frames can tell their messages apart. A label prefixes
// the id in slug form: "Hero Palette" -> "hero-palette-<id>".
func ContextID(label string) string {
	slug := util.SlugN(label, contextLabelWords)
	if slug == "" {
		return Generate()
	}
	return slug + "-" + Generate()
}
