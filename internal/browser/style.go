package browser

import "github.com/amterp/shades/internal/model"

// Lock control outlines on unlocked columns. Locked controls fall back to
// the stylesheet.
const (
	borderOnLight = "rgba(0,0,0,.85)"
	borderOnDark  = "rgba(255,255,255,.85)"
)

// inlineStyle is a set of CSS properties to apply. An empty value means
// remove the property.
type inlineStyle map[string]string

// columnStyle colors a column and its text for contrast.
func columnStyle(shade model.Shade) inlineStyle {
	return inlineStyle{
		"background-color": shade.String(),
		"color":            shade.TextColor(),
	}
}

// lockStyle outlines an unlocked control so it reads on the column's shade.
func lockStyle(shade model.Shade, locked bool) inlineStyle {
	if locked {
		return inlineStyle{"border-color": "", "background": "", "color": ""}
	}
	border := borderOnDark
	if shade.IsLight() {
		border = borderOnLight
	}
	return inlineStyle{
		"border-color": border,
		"background":   "transparent",
		"color":        shade.TextColor(),
	}
}

func lockLabel(locked bool) string {
	if locked {
		return "Locked"
	}
	return "Lock"
}
