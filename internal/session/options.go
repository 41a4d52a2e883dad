package session

import (
	"net/url"
	"strings"
)

// HistoryMode controls whether committed palettes add history entries.
type HistoryMode string

const (
	HistoryPush    HistoryMode = "push"    // Back cycles through palettes
	HistoryReplace HistoryMode = "replace" // Back leaves the page
)

// EmbedMode records whether the page runs inside another page's frame.
type EmbedMode string

const (
	Standalone EmbedMode = "standalone"
	Embedded   EmbedMode = "embedded"
)

// Query parameter names read once at startup.
const (
	ParamEmbed    = "embed"
	ParamHistory  = "history"
	ParamHist     = "hist"
	ParamKeys     = "keys"
	ParamKeyboard = "keyboard"
)

// contextParams are checked in order; the first non-empty one wins.
var contextParams = []string{"ctx", "id", "source"}

var (
	replaceSpellings = []string{"replace", "r", "0", "false", "off"}
	pushSpellings    = []string{"push", "p", "1", "true", "on"}
	truthySpellings  = []string{"1", "true", "on"}
)

// Options is the startup configuration derived from the page URL and
// frame position. It is decided once and never re-evaluated.
type Options struct {
	Embed         EmbedMode
	History       HistoryMode
	AllowKeyboard bool
	Context       string // opaque embed context, "" when absent
}

// IsEmbedded reports whether the page is framed or flagged as embedded.
func (o Options) IsEmbedded() bool {
	return o.Embed == Embedded
}

// HasContext reports whether an embed context was supplied.
func (o Options) HasContext() bool {
	return o.Context != ""
}

// ParseOptions resolves startup options. framed is true when the page is
// not the top-level browsing context (or that can't be determined).
func ParseOptions(query url.Values, framed bool) Options {
	opts := Options{Embed: Standalone}

	if framed || embedFlag(query) {
		opts.Embed = Embedded
	}

	// Explicit override first, then default by embed mode
	opts.History = defaultHistory(opts.Embed)
	if raw := firstNonEmpty(query, ParamHistory, ParamHist); raw != "" {
		raw = strings.ToLower(raw)
		switch {
		case contains(replaceSpellings, raw):
			opts.History = HistoryReplace
		case contains(pushSpellings, raw):
			opts.History = HistoryPush
		}
	}

	opts.AllowKeyboard = !opts.IsEmbedded() ||
		contains(truthySpellings, strings.ToLower(query.Get(ParamKeys))) ||
		contains(truthySpellings, strings.ToLower(query.Get(ParamKeyboard)))

	opts.Context = firstNonEmpty(query, contextParams...)

	return opts
}

func defaultHistory(mode EmbedMode) HistoryMode {
	if mode == Embedded {
		return HistoryReplace
	}
	return HistoryPush
}

// embedFlag is true when ?embed is present with any value other than 0/false.
func embedFlag(query url.Values) bool {
	if !query.Has(ParamEmbed) {
		return false
	}
	v := query.Get(ParamEmbed)
	return v != "0" && v != "false"
}

func firstNonEmpty(query url.Values, keys ...string) string {
	for _, k := range keys {
		if v := query.Get(k); v != "" {
			return v
		}
	}
	return ""
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
