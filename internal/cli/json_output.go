package cli

import (
	"encoding/json"
	"fmt"

	"github.com/amterp/shades/internal/model"
	"github.com/amterp/shades/internal/namepool"
)

// PaletteOutput wraps a generated palette for JSON output.
type PaletteOutput struct {
	Columns  []model.Column `json:"columns"`
	Fragment string         `json:"fragment"`
	URL      string         `json:"url,omitempty"`
}

// NewPaletteOutput creates a PaletteOutput. Always returns an empty array
// (not null) when there are no columns.
func NewPaletteOutput(cols []model.Column, frag, url string) PaletteOutput {
	if cols == nil {
		cols = []model.Column{}
	}
	return PaletteOutput{Columns: cols, Fragment: frag, URL: url}
}

// shadeJson describes one decoded shade and every name the table has for it.
// Name is the canonical one, stable across runs.
type shadeJson struct {
	Shade string   `json:"shade"`
	Gray  bool     `json:"gray"`
	Name  string   `json:"name"`
	Names []string `json:"names"`
}

func shadeToJson(shade model.Shade, pool *namepool.Pool) shadeJson {
	names := pool.Synonyms(shade.String())
	if names == nil {
		names = []string{}
	}
	return shadeJson{
		Shade: shade.String(),
		Gray:  shade.IsGray(),
		Name:  pool.CanonicalName(shade.String()),
		Names: names,
	}
}

// ShadesOutput wraps decoded or encoded shades for JSON output.
type ShadesOutput struct {
	Shades   []shadeJson `json:"shades"`
	Fragment string      `json:"fragment"`
}

// NewShadesOutput creates a ShadesOutput. The fragment is re-encoded from
// the shades so it is always canonical.
func NewShadesOutput(shades []model.Shade, frag string, pool *namepool.Pool) ShadesOutput {
	result := make([]shadeJson, 0, len(shades))
	for _, s := range shades {
		result = append(result, shadeToJson(s, pool))
	}
	return ShadesOutput{Shades: result, Fragment: frag}
}

// nameJson is one row of the name table.
type nameJson struct {
	Name  string `json:"name"`
	Shade string `json:"shade"`
}

// NamesOutput wraps name table rows for JSON output.
type NamesOutput struct {
	Names []nameJson `json:"names"`
}

// NewNamesOutput lists names with their resolved shade. Names that don't
// resolve are skipped.
func NewNamesOutput(names []string, pool *namepool.Pool) NamesOutput {
	result := make([]nameJson, 0, len(names))
	for _, name := range names {
		shade, ok := pool.HexFromName(name)
		if !ok {
			continue
		}
		result = append(result, nameJson{Name: name, Shade: shade.String()})
	}
	return NamesOutput{Names: result}
}

// LinkOutput wraps an open-in-full-view link for JSON output.
type LinkOutput struct {
	URL      string `json:"url"`
	Fragment string `json:"fragment"`
}

// EmbedOutput wraps an iframe snippet for JSON output.
type EmbedOutput struct {
	Ctx      string `json:"ctx"`
	Src      string `json:"src"`
	Iframe   string `json:"iframe"`
	Listener string `json:"listener"`
}

// configJson mirrors model.GlobalConfig with defaults applied.
//
// SYNC WARNING: This struct must stay in sync with model.GlobalConfig fields.
// See TestConfigJsonFieldSync.
type configJson struct {
	ShadesSchema string  `json:"shades_schema"`
	Columns      int     `json:"columns"`
	Bias         float64 `json:"bias"`
	PoolFile     string  `json:"pool_file,omitempty"`
	ServePort    int     `json:"serve_port"`
	OpenURL      string  `json:"open_url,omitempty"`
}

func configToJson(c *model.GlobalConfig) configJson {
	return configJson{
		ShadesSchema: c.ShadesSchema,
		Columns:      c.ColumnCount(),
		Bias:         c.UsageBias(),
		PoolFile:     c.PoolFile,
		ServePort:    c.Port(),
		OpenURL:      c.OpenURL,
	}
}

// ConfigOutput wraps the effective global config for JSON output.
type ConfigOutput struct {
	Path   string     `json:"path"`
	Exists bool       `json:"exists"`
	Config configJson `json:"config"`
}

// printJson marshals the value as indented JSON and prints it to stdout.
func printJson(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

// warnJsonNotSupported prints a warning to stderr when --json is used on an unsupported command.
func warnJsonNotSupported(command string) {
	PrintWarning("--json is not supported for '%s' (flag ignored)", command)
}
