// cmd_test.go - Unit Tests fuer den Dump-Lauf und die Buffer-Tabelle
package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/google/go-cmp/cmp"

	"github.com/7blacky7/tflite-metadump/fs/tflite"
	"github.com/7blacky7/tflite-metadump/fs/tflite/metadata"
	"github.com/7blacky7/tflite-metadump/metadump"
)

// buildMetadataPayload baut ein minimales Metadata-Flatbuffer mit
// Name und Version
func buildMetadataPayload(t *testing.T) []byte {
	t.Helper()
	b := flatbuffers.NewBuilder(0)
	name := b.CreateString("test_model")
	version := b.CreateString("v2")
	metadata.ModelMetadataStart(b)
	metadata.ModelMetadataAddName(b, name)
	metadata.ModelMetadataAddVersion(b, version)
	b.Finish(metadata.ModelMetadataEnd(b))
	return b.FinishedBytes()
}

// buildContainer baut einen .tflite Container, dessen Eintrag
// entryName auf den Payload in Buffer 1 zeigt
func buildContainer(t *testing.T, entryName string, payload []byte) []byte {
	t.Helper()
	b := flatbuffers.NewBuilder(0)

	tflite.BufferStart(b)
	empty := tflite.BufferEnd(b)
	dataOff := b.CreateByteVector(payload)
	tflite.BufferStart(b)
	tflite.BufferAddData(b, dataOff)
	filled := tflite.BufferEnd(b)

	tflite.ModelStartBuffersVector(b, 2)
	b.PrependUOffsetT(filled)
	b.PrependUOffsetT(empty)
	buffersVec := b.EndVector(2)

	nameOff := b.CreateString(entryName)
	tflite.MetadataStart(b)
	tflite.MetadataAddName(b, nameOff)
	tflite.MetadataAddBuffer(b, 1)
	entry := tflite.MetadataEnd(b)

	tflite.ModelStartMetadataVector(b, 1)
	b.PrependUOffsetT(entry)
	entriesVec := b.EndVector(1)

	tflite.ModelStart(b)
	tflite.ModelAddBuffers(b, buffersVec)
	tflite.ModelAddMetadata(b, entriesVec)
	b.Finish(tflite.ModelEnd(b))

	return b.FinishedBytes()
}

// writeModel legt den Container als Datei im Test-Verzeichnis ab
func writeModel(t *testing.T, bts []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.tflite")
	if err := os.WriteFile(path, bts, 0o644); err != nil {
		t.Fatalf("Testdatei schreiben: %v", err)
	}
	return path
}

// TestDumpReport testet den kompletten Lauf von Datei bis Report
func TestDumpReport(t *testing.T) {
	path := writeModel(t, buildContainer(t, metadump.MetadataEntryName, buildMetadataPayload(t)))

	var buf bytes.Buffer
	if err := dump(path, &buf, false); err != nil {
		t.Fatalf("dump: unerwarteter Fehler %v", err)
	}

	want := "name: test_model\nversion: v2\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Report mismatch (-want +got):\n%s", diff)
	}
}

// TestDumpMissingFile testet eine nicht vorhandene Modelldatei
func TestDumpMissingFile(t *testing.T) {
	var buf bytes.Buffer
	err := dump(filepath.Join(t.TempDir(), "does-not-exist.tflite"), &buf, false)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("dump err = %v, erwartet os.ErrNotExist", err)
	}
	if buf.Len() != 0 {
		t.Errorf("dump erzeugte Ausgabe trotz Fehler: %q", buf.String())
	}
}

// TestDumpNoMetadataEntry testet einen Container ohne den erwarteten
// Eintrag: Fehler-Sentinel und keine Teil-Ausgabe
func TestDumpNoMetadataEntry(t *testing.T) {
	path := writeModel(t, buildContainer(t, "min_runtime_version", []byte("1.14.0")))

	var buf bytes.Buffer
	err := dump(path, &buf, false)
	if !errors.Is(err, metadump.ErrMetadataNotFound) {
		t.Fatalf("dump err = %v, erwartet ErrMetadataNotFound", err)
	}
	if buf.Len() != 0 {
		t.Errorf("dump erzeugte Ausgabe trotz Fehler: %q", buf.String())
	}
}

// TestDumpWithBuffers testet die vorgeschaltete Buffer-Tabelle
func TestDumpWithBuffers(t *testing.T) {
	payload := buildMetadataPayload(t)
	path := writeModel(t, buildContainer(t, metadump.MetadataEntryName, payload))

	var buf bytes.Buffer
	if err := dump(path, &buf, true); err != nil {
		t.Fatalf("dump: unerwarteter Fehler %v", err)
	}

	out := buf.String()
	for _, part := range []string{"INDEX", "SIZE", "total buffer data: "} {
		if !strings.Contains(out, part) {
			t.Errorf("Buffer-Tabelle: %q fehlt in:\n%s", part, out)
		}
	}
	if !strings.HasSuffix(out, "name: test_model\nversion: v2\n") {
		t.Errorf("Report folgt nicht auf die Tabelle:\n%s", out)
	}
}

// TestShowBuffersNoPool testet einen Container ohne Buffer-Vektor
func TestShowBuffersNoPool(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	tflite.ModelStart(b)
	b.Finish(tflite.ModelEnd(b))

	var buf bytes.Buffer
	if err := showBuffers(b.FinishedBytes(), &buf); !errors.Is(err, metadump.ErrNoBuffers) {
		t.Fatalf("showBuffers err = %v, erwartet ErrNoBuffers", err)
	}
}

// TestNewCLIArgCount testet die Argument-Pruefung des Root Commands
func TestNewCLIArgCount(t *testing.T) {
	for _, args := range [][]string{{}, {"a.tflite", "b.tflite"}} {
		cli := NewCLI()
		cli.SetArgs(args)
		cli.SetOut(&bytes.Buffer{})
		cli.SetErr(&bytes.Buffer{})

		if err := cli.Execute(); err == nil {
			t.Errorf("Execute(%v) = nil, erwartet Argument-Fehler", args)
		}
	}
}
