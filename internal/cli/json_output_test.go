package cli

import (
	"encoding/json"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/amterp/shades/internal/model"
	"github.com/amterp/shades/internal/namepool"
)

// TestConfigJsonFieldSync ensures configJson stays in sync with model.GlobalConfig.
// If this test fails, you probably added a field to model.GlobalConfig but forgot
// to add it to configJson in json_output.go.
func TestConfigJsonFieldSync(t *testing.T) {
	configType := reflect.TypeOf(model.GlobalConfig{})
	configJsonType := reflect.TypeOf(configJson{})

	// Fields whose type changes because defaults are applied
	transformed := map[string]string{
		"Bias": "Pointer in the file so unset differs from 0; output shows the effective value",
	}

	for i := 0; i < configType.NumField(); i++ {
		field := configType.Field(i)

		jsonField, found := configJsonType.FieldByName(field.Name)
		if !found {
			t.Errorf("model.GlobalConfig has field %q but configJson does not. "+
				"Add it to configJson and configToJson().", field.Name)
			continue
		}
		if _, ok := transformed[field.Name]; ok {
			continue
		}
		if field.Type != jsonField.Type {
			t.Errorf("Field %q has type %v in model.GlobalConfig but %v in configJson",
				field.Name, field.Type, jsonField.Type)
		}
	}

	if configType.NumField() != configJsonType.NumField() {
		t.Errorf("configJson has %d fields, model.GlobalConfig has %d",
			configJsonType.NumField(), configType.NumField())
	}
}

func TestConfigToJsonAppliesDefaults(t *testing.T) {
	cj := configToJson(&model.GlobalConfig{OpenURL: "https://example.com/apps/"})

	if cj.Columns != model.DefaultColumnCount {
		t.Errorf("Columns = %d, want %d", cj.Columns, model.DefaultColumnCount)
	}
	if cj.Bias != model.DefaultBias {
		t.Errorf("Bias = %v, want %v", cj.Bias, model.DefaultBias)
	}
	if cj.ServePort != model.DefaultServePort {
		t.Errorf("ServePort = %d, want %d", cj.ServePort, model.DefaultServePort)
	}
	if cj.OpenURL != "https://example.com/apps/" {
		t.Errorf("OpenURL = %q", cj.OpenURL)
	}
}

func TestNewPaletteOutput_EmptyColumnsIsArray(t *testing.T) {
	out, err := json.Marshal(NewPaletteOutput(nil, "", ""))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(out), `"columns":[]`) {
		t.Errorf("expected empty array, got %s", out)
	}
	if strings.Contains(string(out), `"url"`) {
		t.Errorf("empty url should be omitted, got %s", out)
	}
}

func TestNewShadesOutput(t *testing.T) {
	pool := namepool.Builtin(rand.New(rand.NewSource(1)))
	shades := []model.Shade{"#0A0A0A", "#AA1122"}

	out := NewShadesOutput(shades, "0A0A0A-AA1122", pool)

	if len(out.Shades) != 2 {
		t.Fatalf("expected 2 shades, got %d", len(out.Shades))
	}
	if !out.Shades[0].Gray || len(out.Shades[0].Names) == 0 || out.Shades[0].Names[0] != "Sable" {
		t.Errorf("first shade = %+v", out.Shades[0])
	}
	if out.Shades[1].Gray || out.Shades[1].Names == nil || len(out.Shades[1].Names) != 0 {
		t.Errorf("non-gray shade should have no names (non-nil), got %+v", out.Shades[1])
	}
	if out.Shades[1].Name != "" {
		t.Errorf("non-gray shade name = %q, want empty", out.Shades[1].Name)
	}
}

func TestNewShadesOutput_NameIsCanonical(t *testing.T) {
	pool := namepool.New([]namepool.Entry{
		{Name: "Void", Value: "00"},
		{Name: "Abyss", Value: "00"},
		{Name: "Pitch", Value: "00"},
	}, rand.New(rand.NewSource(7)))

	for i := 0; i < 20; i++ {
		out := NewShadesOutput([]model.Shade{"#000000"}, "000000", pool)
		if got := out.Shades[0].Name; got != "Void" {
			t.Fatalf("Name = %q, want Void on every run", got)
		}
		if len(out.Shades[0].Names) != 3 {
			t.Errorf("Names = %v", out.Shades[0].Names)
		}
	}
}

func TestNewNamesOutput_SkipsUnresolvable(t *testing.T) {
	pool := namepool.New([]namepool.Entry{
		{Name: "Sable", Value: "0A"},
		{Name: "Broken", Value: "XYZ"},
	}, nil)

	out := NewNamesOutput(pool.Names(), pool)

	if len(out.Names) != 1 || out.Names[0].Name != "Sable" || out.Names[0].Shade != "#0A0A0A" {
		t.Errorf("Names = %+v", out.Names)
	}
}
