// main.go - Einstiegspunkt fuer tflite-metadump
// Delegiert an das cmd-Package (CLI Setup und Handler)
package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/7blacky7/tflite-metadump/cmd"
)

func main() {
	cobra.CheckErr(cmd.NewCLI().ExecuteContext(context.Background()))
}
