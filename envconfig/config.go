// config.go - Konfigurationsfunktionen fuer tflite-metadump
//
// Dieses Modul enthaelt:
// - LogLevel: Gibt Log-Level zurueck (METADUMP_DEBUG)
// - Var: Liest eine Environment-Variable (getrimmt, ohne Quotes)
// - EnvVar/AsMap: Export fuer die Usage-Dokumentation der Commands
package envconfig

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// LogLevel gibt das slog-Level zurueck
// Konfigurierbar via METADUMP_DEBUG
// Default: Info; METADUMP_DEBUG=1 aktiviert Debug
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("METADUMP_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// Var gibt eine Environment-Variable zurueck
// Entfernt fuehrende/trailing Quotes und Leerzeichen
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// EnvVar repraesentiert eine Environment-Variable mit Metadaten
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap gibt alle Konfigurationen als Map zurueck
// Enthaelt Namen, aktuelle Werte und Beschreibungen
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"METADUMP_DEBUG": {"METADUMP_DEBUG", LogLevel(), "Show additional debug information (e.g. METADUMP_DEBUG=1)"},
	}
}
