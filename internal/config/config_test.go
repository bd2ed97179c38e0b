package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/san-kum/sortviz/internal/sorting"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Speed != 1.0 {
		t.Errorf("expected speed 1.0, got %f", cfg.Speed)
	}
	if cfg.BaseIntervalMs <= 0 {
		t.Error("base interval should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortviz.yaml")
	data := `
speed: 2.5
preset: reversed
algorithms: [quick, mergesort, quick]
presets:
  - name: tiny
    description: three values
    array: [3, 1, 2]
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Speed != 2.5 {
		t.Errorf("expected speed 2.5, got %f", cfg.Speed)
	}
	if cfg.BaseIntervalMs != DefaultBaseIntervalMs {
		t.Errorf("expected default base interval, got %d", cfg.BaseIntervalMs)
	}

	algs, err := cfg.GetAlgorithms()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(algs, []sorting.Algorithm{sorting.Quick, sorting.Merge}) {
		t.Errorf("unexpected algorithms %v", algs)
	}

	arr, err := cfg.GetArray()
	if err != nil {
		t.Fatal(err)
	}
	if arr[0] != 95 || arr[len(arr)-1] != 0 {
		t.Errorf("expected reversed preset, got %v", arr)
	}

	if p := cfg.GetPreset("tiny"); p == nil || len(p.Array) != 3 {
		t.Errorf("expected user preset tiny, got %v", p)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"speed too high", "speed: 9\n", ErrSpeedRange},
		{"speed too low", "speed: 0.01\n", ErrSpeedRange},
		{"speed NaN", "speed: .nan\n", ErrSpeedRange},
		{"duplicate preset", "presets:\n  - {name: tiny, array: [2, 1]}\n  - {name: tiny, array: [3]}\n", ErrDuplicatePreset},
		{"unknown preset", "preset: zigzag\n", ErrUnknownPreset},
		{"unknown algorithm", "algorithms: [bogo]\n", sorting.ErrUnsupportedAlgorithm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Array = []int{4, 2, 9}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded, cfg)
	}
}

func TestPresets(t *testing.T) {
	a := Presets(7)
	b := Presets(7)
	if !reflect.DeepEqual(a, b) {
		t.Error("presets should be deterministic for a seed")
	}
	if len(a) != 8 {
		t.Errorf("expected 8 presets, got %d", len(a))
	}
	for _, p := range a {
		if len(p.Array) != PresetLength {
			t.Errorf("preset %s: expected %d values, got %d", p.Name, PresetLength, len(p.Array))
		}
	}
	if !sorting.IsSorted(a[1].Array) {
		t.Error("sorted preset is not sorted")
	}
}

func TestCatalogOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Presets = []Preset{{Name: "sorted", Array: []int{1, 2}}, {Name: "extra", Array: []int{7}}}

	names := cfg.ListPresets()
	if len(names) != 9 || names[8] != "extra" {
		t.Errorf("unexpected catalog %v", names)
	}
	if p := cfg.GetPreset("sorted"); p == nil || len(p.Array) != 2 {
		t.Errorf("expected overridden sorted preset, got %v", p)
	}
	if cfg.GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestParseArray(t *testing.T) {
	tests := []struct {
		in   string
		want []int
		ok   bool
	}{
		{"5, 3, 4, 1, 2", []int{5, 3, 4, 1, 2}, true},
		{"1,,x, 2", []int{1, 2}, true},
		{"-4, +3, 7px, 2.9", []int{-4, 3, 7, 2}, true},
		{"abc, , -", nil, false},
		{"", nil, false},
	}

	for _, tt := range tests {
		got, ok := ParseArray(tt.in)
		if ok != tt.ok || !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseArray(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFormatArray(t *testing.T) {
	if got := FormatArray([]int{3, -1, 2}); got != "3, -1, 2" {
		t.Errorf("unexpected format %q", got)
	}
}
