// metadump_test.go - Unit Tests fuer den Container-Locator
//
// Die Test-Container werden im Speicher ueber die FlatBuffers-Builder
// der Zugriffsschicht erzeugt; es gibt keine Datei-Fixtures
package metadump

import (
	"errors"
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/google/go-cmp/cmp"

	"github.com/7blacky7/tflite-metadump/fs/tflite"
	"github.com/7blacky7/tflite-metadump/fs/util/fbsutil"
)

// modelEntry beschreibt einen Metadata-Eintrag eines Test-Containers
type modelEntry struct {
	name   string
	buffer uint32
}

// modelSpec beschreibt einen Test-Container
// Die with*-Flags steuern, ob der jeweilige Vektor ueberhaupt in die
// Table geschrieben wird (abwesend vs. leer)
type modelSpec struct {
	entries     []modelEntry
	buffers     [][]byte
	withEntries bool
	withBuffers bool
}

// buildModel erzeugt einen .tflite Container im Speicher
func buildModel(t *testing.T, spec modelSpec) []byte {
	t.Helper()
	b := flatbuffers.NewBuilder(0)

	bufferOffs := make([]flatbuffers.UOffsetT, len(spec.buffers))
	for i, data := range spec.buffers {
		var dataOff flatbuffers.UOffsetT
		if data != nil {
			dataOff = b.CreateByteVector(data)
		}
		tflite.BufferStart(b)
		if data != nil {
			tflite.BufferAddData(b, dataOff)
		}
		bufferOffs[i] = tflite.BufferEnd(b)
	}

	entryOffs := make([]flatbuffers.UOffsetT, len(spec.entries))
	for i, e := range spec.entries {
		nameOff := b.CreateString(e.name)
		tflite.MetadataStart(b)
		tflite.MetadataAddName(b, nameOff)
		tflite.MetadataAddBuffer(b, e.buffer)
		entryOffs[i] = tflite.MetadataEnd(b)
	}

	var entriesVec flatbuffers.UOffsetT
	if spec.withEntries {
		tflite.ModelStartMetadataVector(b, len(entryOffs))
		for i := len(entryOffs) - 1; i >= 0; i-- {
			b.PrependUOffsetT(entryOffs[i])
		}
		entriesVec = b.EndVector(len(entryOffs))
	}

	var buffersVec flatbuffers.UOffsetT
	if spec.withBuffers {
		tflite.ModelStartBuffersVector(b, len(bufferOffs))
		for i := len(bufferOffs) - 1; i >= 0; i-- {
			b.PrependUOffsetT(bufferOffs[i])
		}
		buffersVec = b.EndVector(len(bufferOffs))
	}

	tflite.ModelStart(b)
	if spec.withBuffers {
		tflite.ModelAddBuffers(b, buffersVec)
	}
	if spec.withEntries {
		tflite.ModelAddMetadata(b, entriesVec)
	}
	b.Finish(tflite.ModelEnd(b))

	return b.FinishedBytes()
}

// TestExtractStructuralErrors testet die Fehler-Sentinels des Locators
func TestExtractStructuralErrors(t *testing.T) {
	tests := []struct {
		name string
		spec modelSpec
		want error
	}{
		{
			"Keine Metadata-Liste",
			modelSpec{withBuffers: true, buffers: [][]byte{nil}},
			ErrNoMetadata,
		},
		{
			"Leere Metadata-Liste",
			modelSpec{withEntries: true, withBuffers: true, buffers: [][]byte{nil}},
			ErrMetadataNotFound,
		},
		{
			"Eintrag mit falschem Namen",
			modelSpec{
				withEntries: true, withBuffers: true,
				entries: []modelEntry{{name: "SOMETHING_ELSE", buffer: 0}},
				buffers: [][]byte{nil},
			},
			ErrMetadataNotFound,
		},
		{
			"Kein Buffer-Pool",
			modelSpec{
				withEntries: true,
				entries:     []modelEntry{{name: MetadataEntryName, buffer: 0}},
			},
			ErrNoBuffers,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := Extract(buildModel(t, tt.spec))
			if !errors.Is(err, tt.want) {
				t.Fatalf("Extract err = %v, erwartet %v", err, tt.want)
			}
			if payload != nil {
				t.Errorf("Extract payload = %v, erwartet nil bei Fehler", payload)
			}
		})
	}
}

// TestExtractRootDecodeError testet beschaedigte Container-Bytes
func TestExtractRootDecodeError(t *testing.T) {
	for _, buf := range [][]byte{nil, {0x01}, {0xff, 0xff, 0xff, 0xff}, []byte("not a model")} {
		if _, err := Extract(buf); !errors.Is(err, fbsutil.ErrMalformed) {
			t.Errorf("Extract(%q) err = %v, erwartet ErrMalformed", buf, err)
		}
	}
}

// TestExtractPayload testet die Aufloesung des Buffer-Index
func TestExtractPayload(t *testing.T) {
	payload := []byte{0x10, 0x20, 0x30, 0x40}

	tests := []struct {
		name string
		spec modelSpec
		want []byte
	}{
		{
			"Gueltiger Buffer",
			modelSpec{
				withEntries: true, withBuffers: true,
				entries: []modelEntry{{name: MetadataEntryName, buffer: 1}},
				buffers: [][]byte{nil, payload},
			},
			payload,
		},
		{
			"Index ausserhalb des Pools ergibt leeren Payload",
			modelSpec{
				withEntries: true, withBuffers: true,
				entries: []modelEntry{{name: MetadataEntryName, buffer: 7}},
				buffers: [][]byte{nil},
			},
			[]byte{},
		},
		{
			"Buffer ohne Daten ergibt leeren Payload",
			modelSpec{
				withEntries: true, withBuffers: true,
				entries: []modelEntry{{name: MetadataEntryName, buffer: 0}},
				buffers: [][]byte{nil},
			},
			[]byte{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(buildModel(t, tt.spec))
			if err != nil {
				t.Fatalf("Extract: unerwarteter Fehler %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Extract payload mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestExtractPicksNamedEntry testet die Auswahl unter mehreren Eintraegen
func TestExtractPicksNamedEntry(t *testing.T) {
	payload := []byte{0xaa, 0xbb}
	spec := modelSpec{
		withEntries: true, withBuffers: true,
		entries: []modelEntry{
			{name: "min_runtime_version", buffer: 1},
			{name: MetadataEntryName, buffer: 2},
		},
		buffers: [][]byte{nil, {0x01}, payload},
	}

	got, err := Extract(buildModel(t, spec))
	if err != nil {
		t.Fatalf("Extract: unerwarteter Fehler %v", err)
	}
	if diff := cmp.Diff(payload, got); diff != "" {
		t.Errorf("Extract payload mismatch (-want +got):\n%s", diff)
	}
}
