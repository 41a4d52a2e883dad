package model

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Shade is a canonical "#RRGGBB" uppercase color. Palette shades are always
// grayscale, but a Shade decoded from a shared fragment may not be.
type Shade string

// Black is the shade a column shows before anything is assigned.
const Black Shade = "#000000"

// lightLumaThreshold is the Rec. 601 luma at which text on a swatch flips
// from white to black.
const lightLumaThreshold = 140

var hex6Regex = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// ParseShade normalizes s to a canonical Shade. A leading '#' is optional and
// case is ignored. Returns false for anything that isn't exactly six hex
// digits, including padded input.
func ParseShade(s string) (Shade, bool) {
	raw := strings.TrimPrefix(s, "#")
	if !hex6Regex.MatchString(raw) {
		return "", false
	}
	return Shade("#" + strings.ToUpper(raw)), true
}

// Gray returns the grayscale shade with all three components equal to v.
func Gray(v uint8) Shade {
	return Shade(fmt.Sprintf("#%02X%02X%02X", v, v, v))
}

// String returns the "#RRGGBB" form.
func (s Shade) String() string {
	return string(s)
}

// Hex returns the six hex digits without the leading '#'.
func (s Shade) Hex() string {
	return strings.TrimPrefix(string(s), "#")
}

// Valid reports whether s is in canonical form.
func (s Shade) Valid() bool {
	canonical, ok := ParseShade(string(s))
	return ok && canonical == s
}

// RGB returns the 8-bit components.
func (s Shade) RGB() (r, g, b uint8, ok bool) {
	if !s.Valid() {
		return 0, 0, 0, false
	}
	c, err := colorful.Hex(string(s))
	if err != nil {
		return 0, 0, 0, false
	}
	r, g, b = c.RGB255()
	return r, g, b, true
}

// IsGray reports whether all three components are equal.
func (s Shade) IsGray() bool {
	r, g, b, ok := s.RGB()
	return ok && r == g && g == b
}

// Intensity returns the shared component value of a grayscale shade.
func (s Shade) Intensity() (uint8, bool) {
	r, g, b, ok := s.RGB()
	if !ok || r != g || g != b {
		return 0, false
	}
	return r, true
}

// IsLight reports whether the shade is light enough to need dark text.
func (s Shade) IsLight() bool {
	r, g, b, ok := s.RGB()
	if !ok {
		return false
	}
	y := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	return y >= lightLumaThreshold
}

// TextColor returns the overlay text color for a swatch of this shade.
func (s Shade) TextColor() string {
	if s.IsLight() {
		return "#000"
	}
	return "#FFF"
}
