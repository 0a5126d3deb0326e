// Package logutil - Logger-Konstruktion fuer slog
//
// Dieses Modul enthaelt:
// - NewLogger: Erstellt einen Text-Logger mit gekuerzter Source-Angabe
package logutil

import (
	"io"
	"log/slog"
	"path/filepath"
)

// NewLogger erstellt einen slog Text-Logger auf dem gegebenen Writer
// Source-Pfade werden auf den Dateinamen gekuerzt
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.SourceKey {
				source := attr.Value.Any().(*slog.Source)
				source.File = filepath.Base(source.File)
			}
			return attr
		},
	}))
}
