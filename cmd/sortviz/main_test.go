package main

import (
	"log/slog"
	"reflect"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/sorting"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}

	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func testCommand(t *testing.T, set map[string]string) *cobra.Command {
	t.Helper()
	configFile, logFile = "", ""
	cmd := &cobra.Command{}
	f := cmd.Flags()
	f.Float64Var(&speed, "speed", config.DefaultSpeed, "")
	f.StringVar(&presetName, "preset", config.DefaultPreset, "")
	f.StringVar(&arrayText, "array", "", "")
	f.StringSliceVar(&algorithms, "algorithms", nil, "")
	f.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "")
	for k, v := range set {
		if err := f.Set(k, v); err != nil {
			t.Fatalf("set %s: %v", k, err)
		}
	}
	return cmd
}

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := loadSettings(testCommand(t, nil), true)
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	defer s.closer()

	if len(s.algs) != len(sorting.All()) {
		t.Errorf("got %d algorithms, want all", len(s.algs))
	}
	if len(s.array) != config.PresetLength {
		t.Errorf("got array of %d, want %d", len(s.array), config.PresetLength)
	}
}

func TestLoadSettings_FlagsOverride(t *testing.T) {
	s, err := loadSettings(testCommand(t, map[string]string{
		"speed":      "2.5",
		"array":      "4, 2, 9",
		"algorithms": "quick,heap",
	}), true)
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	defer s.closer()

	if s.cfg.Speed != 2.5 {
		t.Errorf("speed = %g, want 2.5", s.cfg.Speed)
	}
	if !reflect.DeepEqual(s.array, []int{4, 2, 9}) {
		t.Errorf("array = %v", s.array)
	}
	if !reflect.DeepEqual(s.algs, []sorting.Algorithm{sorting.Quick, sorting.Heap}) {
		t.Errorf("algorithms = %v", s.algs)
	}
}

func TestLoadSettings_InvalidArrayKeepsPreset(t *testing.T) {
	s, err := loadSettings(testCommand(t, map[string]string{"array": "a, b"}), true)
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	defer s.closer()

	want := config.DefaultConfig().GetPreset(config.DefaultPreset).Array
	if !reflect.DeepEqual(s.array, want) {
		t.Errorf("array = %v, want the default preset", s.array)
	}
}

func TestLoadSettings_Errors(t *testing.T) {
	cases := map[string]map[string]string{
		"speed":     {"speed": "9"},
		"preset":    {"preset": "zigzag"},
		"algorithm": {"algorithms": "bogo"},
		"log level": {"log-level": "loud"},
	}
	for name, set := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := loadSettings(testCommand(t, set), true); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
