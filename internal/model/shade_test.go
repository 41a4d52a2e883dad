package model

import "testing"

func TestParseShade(t *testing.T) {
	tests := []struct {
		input  string
		want   Shade
		wantOK bool
	}{
		{"aa1122", "#AA1122", true},
		{"#aa1122", "#AA1122", true},
		{"#AA1122", "#AA1122", true},
		{"00ff00", "#00FF00", true},
		{" 0a0a0a ", "", false},
		{"#0a0a0a\n", "", false},

		{"", "", false},
		{"#", "", false},
		{"zzzzzz", "", false},
		{"abc", "", false},
		{"#abcd", "", false},
		{"aa11223", "", false},
		{"##aa1122", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseShade(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseShade(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseShade(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGray(t *testing.T) {
	if got := Gray(0x0A); got != "#0A0A0A" {
		t.Errorf("Gray(0x0A) = %q", got)
	}
	if got := Gray(255); got != "#FFFFFF" {
		t.Errorf("Gray(255) = %q", got)
	}
	if !Gray(0x3F).IsGray() {
		t.Error("Gray() should produce a grayscale shade")
	}
}

func TestShade_Intensity(t *testing.T) {
	v, ok := Shade("#1C1C1C").Intensity()
	if !ok || v != 0x1C {
		t.Errorf("Intensity() = %d, %v; want 28, true", v, ok)
	}

	if _, ok := Shade("#1C1C1D").Intensity(); ok {
		t.Error("non-gray shade should have no intensity")
	}
	if _, ok := Shade("#1c1c1c").Intensity(); ok {
		t.Error("non-canonical shade should be rejected")
	}
}

func TestShade_IsLight(t *testing.T) {
	tests := []struct {
		shade Shade
		want  bool
	}{
		{"#000000", false},
		{"#3F3F3F", false},
		{"#808080", false},
		{"#909090", true},
		{"#FFFFFF", true},
		{"bogus", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.shade), func(t *testing.T) {
			if got := tt.shade.IsLight(); got != tt.want {
				t.Errorf("IsLight() = %v, want %v", got, tt.want)
			}
		})
	}

	if Shade("#FFFFFF").TextColor() != "#000" {
		t.Error("white swatch should use black text")
	}
	if Shade("#111111").TextColor() != "#FFF" {
		t.Error("dark swatch should use white text")
	}
}

func TestStateOf(t *testing.T) {
	cols := NewColumns(3)
	cols[1].Shade = "#222222"
	cols[2].Shade = ""

	state := StateOf(cols)
	want := PaletteState{"#000000", "#222222", "#000000"}
	if !state.Equal(want) {
		t.Errorf("StateOf() = %v, want %v", state, want)
	}
}

func TestUsageCounter(t *testing.T) {
	u := NewUsageCounter()
	u.Bump("#111111", 1)
	u.Bump("#111111", 1)
	u.Bump("not-a-shade", 5)

	if got := u.Count("#111111"); got != 2 {
		t.Errorf("Count = %d, want 2", got)
	}
	if u.Len() != 1 {
		t.Errorf("Len = %d, want 1", u.Len())
	}

	var nilCounter *UsageCounter
	if nilCounter.Count("#111111") != 0 {
		t.Error("nil counter should read as zero")
	}
	nilCounter.Bump("#111111", 1) // must not panic
}

func TestGlobalConfig_Defaults(t *testing.T) {
	var cfg *GlobalConfig
	if cfg.ColumnCount() != DefaultColumnCount {
		t.Errorf("ColumnCount() = %d", cfg.ColumnCount())
	}
	if cfg.UsageBias() != DefaultBias {
		t.Errorf("UsageBias() = %v", cfg.UsageBias())
	}
	if cfg.Port() != DefaultServePort {
		t.Errorf("Port() = %d", cfg.Port())
	}

	neg := -3.0
	cfg = &GlobalConfig{Columns: 20, Bias: &neg}
	if cfg.ColumnCount() != MaxColumnCount {
		t.Errorf("ColumnCount() = %d, want clamp to %d", cfg.ColumnCount(), MaxColumnCount)
	}
	if cfg.UsageBias() != 0 {
		t.Errorf("UsageBias() = %v, want 0", cfg.UsageBias())
	}
}
