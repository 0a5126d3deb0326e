// cmd_dump.go - Dump Command Handler
// Hauptfunktionen: DumpHandler, dump
package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/7blacky7/tflite-metadump/metadump"
)

// DumpHandler - Liest das Modell und druckt den Metadata-Report
func DumpHandler(cmd *cobra.Command, args []string) error {
	buffers, err := cmd.Flags().GetBool("buffers")
	if err != nil {
		return err
	}

	return dump(args[0], os.Stdout, buffers)
}

// dump fuehrt einen kompletten Lauf aus: Datei lesen, Payload
// extrahieren, Report rendern. Die Datei wird einmal vollstaendig
// gelesen; alle dekodierten Sichten borgen aus diesem einen Buffer
func dump(path string, w io.Writer, buffers bool) error {
	bts, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	slog.Debug("read model file", "path", path, "bytes", len(bts))

	if buffers {
		if err := showBuffers(bts, w); err != nil {
			return err
		}
	}

	payload, err := metadump.Extract(bts)
	if err != nil {
		return err
	}

	return metadump.NewRenderer(w).Render(payload)
}
