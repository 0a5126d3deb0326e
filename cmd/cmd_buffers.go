// cmd_buffers.go - Buffer-Pool Anzeige (--buffers)
// Hauptfunktionen: showBuffers
package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/7blacky7/tflite-metadump/format"
	"github.com/7blacky7/tflite-metadump/fs/tflite"
	"github.com/7blacky7/tflite-metadump/metadump"
)

// showBuffers druckt den Buffer-Pool des Containers als Tabelle
// Laeuft vor dem eigentlichen Report und funktioniert auch fuer
// Container ohne Metadata-Eintrag
func showBuffers(bts []byte, w io.Writer) error {
	model, err := tflite.RootModel(bts)
	if err != nil {
		return fmt.Errorf("decoding model: %w", err)
	}
	if !model.HasBuffers() {
		return metadump.ErrNoBuffers
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"INDEX", "SIZE"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")

	var total int64
	for j := 0; j < model.BuffersLength(); j++ {
		var buffer tflite.Buffer
		if !model.Buffers(&buffer, j) {
			continue
		}

		size := int64(buffer.DataLength())
		total += size
		table.Append([]string{strconv.Itoa(j), format.HumanBytes(size)})
	}

	table.Render()
	fmt.Fprintf(w, "total buffer data: %s\n\n", format.HumanBytes(total))

	return nil
}
