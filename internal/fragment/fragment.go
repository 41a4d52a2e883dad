// Package fragment converts palette state to and from the URL fragment
// "rrggbb-rrggbb-...": one six-digit token per column, dash separated.
package fragment

import (
	"strings"

	"github.com/amterp/shades/internal/model"
)

// Separator joins tokens in an encoded fragment.
const Separator = "-"

// Encode joins each shade's six hex digits in order. Shades are written as
// stored; callers pass canonical shades.
func Encode(shades []model.Shade) string {
	parts := make([]string, len(shades))
	for i, s := range shades {
		parts[i] = s.Hex()
	}
	return strings.Join(parts, Separator)
}

// EncodeColumns encodes the shades of cols in column order.
func EncodeColumns(cols []model.Column) string {
	return Encode(model.StateOf(cols))
}

// Normalize canonicalizes one fragment token: optional '#', any case.
func Normalize(token string) (model.Shade, bool) {
	return model.ParseShade(token)
}

// Decode parses a fragment (with or without its leading '#'). Invalid
// tokens are dropped and the survivors keep their order. Returns nil when
// the input is empty or nothing survives.
func Decode(fragment string) []model.Shade {
	fragment = strings.TrimPrefix(fragment, "#")
	if fragment == "" {
		return nil
	}

	var out []model.Shade
	for _, token := range strings.Split(fragment, Separator) {
		if shade, ok := Normalize(token); ok {
			out = append(out, shade)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
