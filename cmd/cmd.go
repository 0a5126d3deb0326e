// cmd.go - Haupt-CLI Setup und Root Command
// Hauptfunktionen: NewCLI, appendEnvDocs
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/7blacky7/tflite-metadump/envconfig"
	"github.com/7blacky7/tflite-metadump/logutil"
)

// appendEnvDocs - Fuegt Umgebungsvariablen-Dokumentation zum Command hinzu
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// NewCLI - Erstellt das CLI mit dem Dump-Command
func NewCLI() *cobra.Command {
	slog.SetDefault(logutil.NewLogger(os.Stderr, envconfig.LogLevel()))
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "tflite-metadump MODEL",
		Short:         "Dump the embedded TFLITE_METADATA of a .tflite model",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: DumpHandler,
	}

	rootCmd.Flags().Bool("buffers", false, "Show the container's buffer pool before the report")

	// Environment-Dokumentation hinzufuegen
	envVars := envconfig.AsMap()
	appendEnvDocs(rootCmd, []envconfig.EnvVar{envVars["METADUMP_DEBUG"]})

	return rootCmd
}
