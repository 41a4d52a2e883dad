package model

// Defaults applied when the global config omits a value.
const (
	DefaultColumnCount = 5
	DefaultBias        = 1.0
	DefaultServePort   = 5175
	MaxColumnCount     = 9 // digit shortcuts only reach 1-9
)

// GlobalConfig represents the user's global shades configuration.
// Stored at ~/.config/shades/config.toml
// Schema changes require bumping CurrentGlobalVersion in internal/version.
type GlobalConfig struct {
	ShadesSchema string   `toml:"shades_schema"`
	Columns      int      `toml:"columns,omitempty"`
	Bias         *float64 `toml:"bias,omitempty"`
	PoolFile     string   `toml:"pool_file,omitempty"` // Replaces the built-in name table
	ServePort    int      `toml:"serve_port,omitempty"`
	OpenURL      string   `toml:"open_url,omitempty"` // Base URL for `shades link` when none is given
}

// DefaultGlobalConfig returns the config written on first run.
func DefaultGlobalConfig() *GlobalConfig {
	bias := DefaultBias
	return &GlobalConfig{
		Columns:   DefaultColumnCount,
		Bias:      &bias,
		ServePort: DefaultServePort,
	}
}

// ColumnCount returns the configured column count, or the default.
func (g *GlobalConfig) ColumnCount() int {
	if g == nil || g.Columns <= 0 {
		return DefaultColumnCount
	}
	if g.Columns > MaxColumnCount {
		return MaxColumnCount
	}
	return g.Columns
}

// UsageBias returns the configured selection bias, or the default.
// Negative values are treated as zero.
func (g *GlobalConfig) UsageBias() float64 {
	if g == nil || g.Bias == nil {
		return DefaultBias
	}
	if *g.Bias < 0 {
		return 0
	}
	return *g.Bias
}

// Port returns the preview server port, or the default.
func (g *GlobalConfig) Port() int {
	if g == nil || g.ServePort <= 0 {
		return DefaultServePort
	}
	return g.ServePort
}
