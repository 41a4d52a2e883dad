package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/amterp/shades/internal/fragment"
	"github.com/amterp/shades/internal/model"
)

// defaultFaviconShades is drawn when the request carries no palette.
var defaultFaviconShades = []model.Shade{"#000000", "#0E0E0E", "#1C1C1C", "#2A2A2A", "#383838"}

// GenerateFaviconSVG draws shades as equal vertical stripes in a rounded
// square.
func GenerateFaviconSVG(shades []model.Shade) string {
	if len(shades) == 0 {
		shades = defaultFaviconShades
	}

	var stripes strings.Builder
	width := 32.0 / float64(len(shades))
	for i, s := range shades {
		fmt.Fprintf(&stripes, `<rect x="%.3f" y="0" width="%.3f" height="32" fill="%s"/>`,
			float64(i)*width, width+0.01, s)
	}

	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 32 32"><clipPath id="r"><rect width="32" height="32" rx="6"/></clipPath><g clip-path="url(#r)">%s</g></svg>`,
		stripes.String(),
	)
}

// GetFavicon serves a favicon of the palette in ?p=, or the default stripes.
func (h *Handler) GetFavicon(w http.ResponseWriter, r *http.Request) {
	shades := fragment.Decode(r.URL.Query().Get("p"))
	if len(shades) > model.MaxColumnCount {
		shades = shades[:model.MaxColumnCount]
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write([]byte(GenerateFaviconSVG(shades)))
}
