package api

import (
	"io/fs"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	shaderr "github.com/amterp/shades/internal/errors"
	"github.com/amterp/shades/internal/model"
	"github.com/amterp/shades/internal/namepool"
	"github.com/amterp/shades/internal/selector"
	"github.com/amterp/shades/internal/service"
)

// Handler serves the preview page and a few read-only JSON helpers. It keeps
// no palette state: every palette request builds and discards its own.
type Handler struct {
	pool    *namepool.Pool
	config  *model.GlobalConfig
	assets  fs.FS
	newSeed func() int64
}

// NewHandler creates a handler. assets is usually DefaultAssets().
func NewHandler(pool *namepool.Pool, config *model.GlobalConfig, assets fs.FS) *Handler {
	return &Handler{
		pool:    pool,
		config:  config,
		assets:  assets,
		newSeed: func() int64 { return time.Now().UnixNano() },
	}
}

// RegisterRoutes registers all routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /favicon.svg", h.GetFavicon)
	mux.HandleFunc("GET /api/v1/palette", h.GetPalette)
	mux.HandleFunc("GET /api/v1/names", h.ListNames)

	// Pages and assets
	mux.Handle("GET /", StaticHandler(h.assets))
}

// PaletteResponse is a generated palette.
type PaletteResponse struct {
	Columns  []model.Column `json:"columns"`
	Fragment string         `json:"fragment"`
}

// GetPalette generates a palette. Query: columns (1-9), from (a fragment to
// start from, backfilled like a page load), seed (for reproducible output).
func (h *Handler) GetPalette(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	n := h.config.ColumnCount()
	if raw := q.Get("columns"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > model.MaxColumnCount {
			Error(w, shaderr.InvalidField("columns", "must be 1-9"))
			return
		}
		n = v
	}

	seed := h.newSeed()
	if raw := q.Get("seed"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			Error(w, shaderr.InvalidField("seed", "must be an integer"))
			return
		}
		seed = v
	}

	sel := selector.New(h.pool, rand.New(rand.NewSource(seed)))
	svc := service.NewPaletteService(n, h.pool, sel, h.config.UsageBias(), nil)
	if err := svc.Init(q.Get("from")); err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, PaletteResponse{
		Columns:  svc.Columns(),
		Fragment: svc.Fragment(),
	})
}

// NameResponse is one row of the name table.
type NameResponse struct {
	Name  string      `json:"name"`
	Shade model.Shade `json:"shade"`
}

// ListNames lists the name table, or with ?shade= every synonym of one shade.
func (h *Handler) ListNames(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("shade"); raw != "" {
		shade, ok := model.ParseShade(raw)
		if !ok {
			Error(w, shaderr.InvalidField("shade", raw+" is not a #RRGGBB color"))
			return
		}
		names := h.pool.Synonyms(shade.String())
		if len(names) == 0 {
			Error(w, shaderr.ShadeNotFound(shade.String()))
			return
		}
		out := make([]NameResponse, len(names))
		for i, name := range names {
			out[i] = NameResponse{Name: name, Shade: shade}
		}
		JSON(w, http.StatusOK, out)
		return
	}

	names := h.pool.Names()
	out := make([]NameResponse, 0, len(names))
	for _, name := range names {
		shade, ok := h.pool.HexFromName(name)
		if !ok {
			continue
		}
		out = append(out, NameResponse{Name: name, Shade: shade})
	}
	JSON(w, http.StatusOK, out)
}
