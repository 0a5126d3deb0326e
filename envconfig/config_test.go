// config_test.go - Unit Tests fuer die Environment-Konfiguration
package envconfig

import (
	"log/slog"
	"testing"
)

// TestLogLevel testet die Interpretation von METADUMP_DEBUG
func TestLogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"false", slog.LevelInfo},
		{"0", slog.LevelInfo},
		{"1", slog.LevelDebug},
		{"true", slog.LevelDebug},
		{"2", slog.Level(-8)},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("METADUMP_DEBUG", tt.value)
			if got := LogLevel(); got != tt.want {
				t.Errorf("LogLevel() = %v, erwartet %v", got, tt.want)
			}
		})
	}
}

// TestVar testet das Trimmen von Quotes und Leerzeichen
func TestVar(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"plain", "plain"},
		{"  padded  ", "padded"},
		{`"quoted"`, "quoted"},
		{"'single'", "single"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Setenv("METADUMP_TEST_VAR", tt.raw)
			if got := Var("METADUMP_TEST_VAR"); got != tt.want {
				t.Errorf("Var() = %q, erwartet %q", got, tt.want)
			}
		})
	}
}

// TestAsMap testet den Export fuer die Usage-Dokumentation
func TestAsMap(t *testing.T) {
	t.Setenv("METADUMP_DEBUG", "1")

	got, ok := AsMap()["METADUMP_DEBUG"]
	if !ok {
		t.Fatal("AsMap() enthaelt METADUMP_DEBUG nicht")
	}
	if got.Name != "METADUMP_DEBUG" || got.Description == "" {
		t.Errorf("AsMap()[METADUMP_DEBUG] = %+v, unvollstaendig", got)
	}
	if got.Value != slog.LevelDebug {
		t.Errorf("Value = %v, erwartet Debug", got.Value)
	}
}
