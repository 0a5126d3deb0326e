// render_test.go - Unit Tests fuer Renderer und Dispatcher
//
// Getestet werden Druckreihenfolge, Platzhalter, der Dispatch auf den
// Detector-Decoder und die Anchor-Kuerzung. Alle Payloads werden im
// Speicher gebaut; die Golden-Strings sind das Ausgabeformat
package metadump

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/google/go-cmp/cmp"

	"github.com/7blacky7/tflite-metadump/fs/tflite/detector"
	"github.com/7blacky7/tflite-metadump/fs/tflite/metadata"
	"github.com/7blacky7/tflite-metadump/fs/util/fbsutil"
)

// tableVector baut einen Vektor aus Table-Offsets (Reihenfolge erhalten)
func tableVector(b *flatbuffers.Builder, offs []flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	b.StartVector(4, len(offs), 4)
	for i := len(offs) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offs[i])
	}
	return b.EndVector(len(offs))
}

func floatVec(b *flatbuffers.Builder, vals []float32) flatbuffers.UOffsetT {
	b.StartVector(4, len(vals), 4)
	for i := len(vals) - 1; i >= 0; i-- {
		b.PrependFloat32(vals[i])
	}
	return b.EndVector(len(vals))
}

func stringVec(b *flatbuffers.Builder, vals []string) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(vals))
	for i, v := range vals {
		offs[i] = b.CreateString(v)
	}
	return tableVector(b, offs)
}

func associatedFile(b *flatbuffers.Builder, name string, typ metadata.AssociatedFileType) flatbuffers.UOffsetT {
	nameOff := b.CreateString(name)
	metadata.AssociatedFileStart(b)
	metadata.AssociatedFileAddName(b, nameOff)
	metadata.AssociatedFileAddType(b, typ)
	return metadata.AssociatedFileEnd(b)
}

func customEntry(b *flatbuffers.Builder, name string, data []byte) flatbuffers.UOffsetT {
	var dataOff flatbuffers.UOffsetT
	if data != nil {
		dataOff = b.CreateByteVector(data)
	}
	nameOff := b.CreateString(name)
	metadata.CustomMetadataStart(b)
	metadata.CustomMetadataAddName(b, nameOff)
	if data != nil {
		metadata.CustomMetadataAddData(b, dataOff)
	}
	return metadata.CustomMetadataEnd(b)
}

// buildDetectorPayload baut einen DETECTOR_METADATA Payload mit
// Decoding-Optionen und numAnchors Anchors (XCenter = Index)
func buildDetectorPayload(t *testing.T, numAnchors int) []byte {
	t.Helper()
	b := flatbuffers.NewBuilder(0)

	anchorOffs := make([]flatbuffers.UOffsetT, numAnchors)
	for j := 0; j < numAnchors; j++ {
		detector.FixedAnchorStart(b)
		detector.FixedAnchorAddXCenter(b, float32(j))
		detector.FixedAnchorAddYCenter(b, 0.5)
		detector.FixedAnchorAddWidth(b, 1)
		detector.FixedAnchorAddHeight(b, 2)
		anchorOffs[j] = detector.FixedAnchorEnd(b)
	}
	anchorsVec := tableVector(b, anchorOffs)

	detector.FixedAnchorsSchemaStart(b)
	detector.FixedAnchorsSchemaAddAnchors(b, anchorsVec)
	fixed := detector.FixedAnchorsSchemaEnd(b)

	detector.SsdAnchorsOptionsStart(b)
	detector.SsdAnchorsOptionsAddFixedAnchorsSchema(b, fixed)
	ssd := detector.SsdAnchorsOptionsEnd(b)

	detector.TensorsDecodingOptionsStart(b)
	detector.TensorsDecodingOptionsAddNumClasses(b, 3)
	detector.TensorsDecodingOptionsAddNumBoxes(b, 5)
	detector.TensorsDecodingOptionsAddNumCoords(b, 4)
	detector.TensorsDecodingOptionsAddXScale(b, 10)
	detector.TensorsDecodingOptionsAddYScale(b, 10)
	detector.TensorsDecodingOptionsAddWScale(b, 5)
	detector.TensorsDecodingOptionsAddHScale(b, 5)
	detector.TensorsDecodingOptionsAddSigmoidScore(b, true)
	dec := detector.TensorsDecodingOptionsEnd(b)

	mpv := b.CreateString("1.2.0")
	detector.ObjectDetectorOptionsStart(b)
	detector.ObjectDetectorOptionsAddMinParserVersion(b, mpv)
	detector.ObjectDetectorOptionsAddTensorsDecodingOptions(b, dec)
	detector.ObjectDetectorOptionsAddSsdAnchorsOptions(b, ssd)
	b.Finish(detector.ObjectDetectorOptionsEnd(b))

	return b.FinishedBytes()
}

func render(t *testing.T, payload []byte) string {
	t.Helper()
	var buf bytes.Buffer
	if err := NewRenderer(&buf).Render(payload); err != nil {
		t.Fatalf("Render: unerwarteter Fehler %v", err)
	}
	return buf.String()
}

// TestRenderTopLevelFields testet Reihenfolge und Abwesenheit der
// skalaren Top-Level-Felder (license fehlt absichtlich)
func TestRenderTopLevelFields(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	name := b.CreateString("mobilenet_v1")
	desc := b.CreateString("image classifier")
	version := b.CreateString("v1")
	author := b.CreateString("tester")
	mpv := b.CreateString("1.0.0")

	metadata.ModelMetadataStart(b)
	metadata.ModelMetadataAddMinParserVersion(b, mpv)
	metadata.ModelMetadataAddAuthor(b, author)
	metadata.ModelMetadataAddVersion(b, version)
	metadata.ModelMetadataAddDescription(b, desc)
	metadata.ModelMetadataAddName(b, name)
	b.Finish(metadata.ModelMetadataEnd(b))

	want := `name: mobilenet_v1
description: image classifier
version: v1
author: tester
min_parser_version: 1.0.0
`
	got := render(t, b.FinishedBytes())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Report mismatch (-want +got):\n%s", diff)
	}

	if strings.Contains(got, "license") {
		t.Error("Abwesendes license-Feld darf keine Zeile erzeugen")
	}
}

// TestRenderIdempotent testet byte-identische Wiederholung
func TestRenderIdempotent(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	name := b.CreateString("repeatable")
	metadata.ModelMetadataStart(b)
	metadata.ModelMetadataAddName(b, name)
	b.Finish(metadata.ModelMetadataEnd(b))

	payload := b.FinishedBytes()
	if first, second := render(t, payload), render(t, payload); first != second {
		t.Errorf("Wiederholter Lauf weicht ab:\n%q\n%q", first, second)
	}
}

// TestRenderMalformedPayload testet den MetadataDecode-Fehlerpfad
func TestRenderMalformedPayload(t *testing.T) {
	for _, payload := range [][]byte{{}, {0xff, 0xff, 0xff, 0xff}} {
		var buf bytes.Buffer
		err := NewRenderer(&buf).Render(payload)
		if !errors.Is(err, fbsutil.ErrMalformed) {
			t.Errorf("Render(%v) err = %v, erwartet ErrMalformed", payload, err)
		}
		if buf.Len() != 0 {
			t.Errorf("Render(%v) erzeugte Teil-Ausgabe %q", payload, buf.String())
		}
	}
}

// TestRenderSubgraphUsesTopLevelFiles testet die bewusst erhaltene
// Eigenheit: unter Subgraphs wird die Top-Level-Dateiliste gedruckt,
// nicht die Subgraph-eigene
func TestRenderSubgraphUsesTopLevelFiles(t *testing.T) {
	b := flatbuffers.NewBuilder(0)

	local := associatedFile(b, "local_labels.txt", metadata.AssociatedFileTypeVOCABULARY)
	localVec := tableVector(b, []flatbuffers.UOffsetT{local})
	subName := b.CreateString("main")
	metadata.SubGraphMetadataStart(b)
	metadata.SubGraphMetadataAddName(b, subName)
	metadata.SubGraphMetadataAddAssociatedFiles(b, localVec)
	sub := metadata.SubGraphMetadataEnd(b)
	subVec := tableVector(b, []flatbuffers.UOffsetT{sub})

	global := associatedFile(b, "global_labels.txt", metadata.AssociatedFileTypeTENSOR_AXIS_LABELS)
	globalVec := tableVector(b, []flatbuffers.UOffsetT{global})

	metadata.ModelMetadataStart(b)
	metadata.ModelMetadataAddSubgraphMetadata(b, subVec)
	metadata.ModelMetadataAddAssociatedFiles(b, globalVec)
	b.Finish(metadata.ModelMetadataEnd(b))

	want := `1 associated file(s):
- name: global_labels.txt
  type: TENSOR_AXIS_LABELS
1 subgraph(s)
- name: main
  1 associated file(s):
  - name: global_labels.txt
    type: TENSOR_AXIS_LABELS
`
	got := render(t, b.FinishedBytes())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Report mismatch (-want +got):\n%s", diff)
	}

	if strings.Contains(got, "local_labels.txt") {
		t.Error("Subgraph-eigene Dateiliste darf nicht erscheinen")
	}
}

// TestRenderTensorBlock testet die wiederverwendbare Tensor-Routine
// inklusive Content, Stats, Dateien, Process-Units und Gruppen
func TestRenderTensorBlock(t *testing.T) {
	b := flatbuffers.NewBuilder(0)

	// Content: Bild mit RGB-Farbraum plus Wertebereich
	metadata.ImagePropertiesStart(b)
	metadata.ImagePropertiesAddColorSpace(b, metadata.ColorSpaceTypeRGB)
	img := metadata.ImagePropertiesEnd(b)
	metadata.ValueRangeStart(b)
	metadata.ValueRangeAddMin(b, 0)
	metadata.ValueRangeAddMax(b, 255)
	rng := metadata.ValueRangeEnd(b)
	metadata.ContentStart(b)
	metadata.ContentAddContentPropertiesType(b, metadata.ContentPropertiesImageProperties)
	metadata.ContentAddContentProperties(b, img)
	metadata.ContentAddRange(b, rng)
	content := metadata.ContentEnd(b)

	maxVec := floatVec(b, []float32{1})
	minVec := floatVec(b, []float32{0})
	metadata.StatsStart(b)
	metadata.StatsAddMax(b, maxVec)
	metadata.StatsAddMin(b, minVec)
	stats := metadata.StatsEnd(b)

	mean := floatVec(b, []float32{127.5})
	std := floatVec(b, []float32{127.5})
	metadata.NormalizationOptionsStart(b)
	metadata.NormalizationOptionsAddMean(b, mean)
	metadata.NormalizationOptionsAddStd(b, std)
	norm := metadata.NormalizationOptionsEnd(b)
	metadata.ProcessUnitStart(b)
	metadata.ProcessUnitAddOptionsType(b, metadata.ProcessUnitOptionsNormalizationOptions)
	metadata.ProcessUnitAddOptions(b, norm)
	unit := metadata.ProcessUnitEnd(b)
	unitVec := tableVector(b, []flatbuffers.UOffsetT{unit})

	labels := associatedFile(b, "labels.txt", metadata.AssociatedFileTypeTENSOR_AXIS_LABELS)
	labelsVec := tableVector(b, []flatbuffers.UOffsetT{labels})

	dims := stringVec(b, []string{"batch", "height"})
	tensName := b.CreateString("image")
	tensDesc := b.CreateString("input image")
	metadata.TensorMetadataStart(b)
	metadata.TensorMetadataAddName(b, tensName)
	metadata.TensorMetadataAddDescription(b, tensDesc)
	metadata.TensorMetadataAddDimensionNames(b, dims)
	metadata.TensorMetadataAddContent(b, content)
	metadata.TensorMetadataAddProcessUnits(b, unitVec)
	metadata.TensorMetadataAddStats(b, stats)
	metadata.TensorMetadataAddAssociatedFiles(b, labelsVec)
	tens := metadata.TensorMetadataEnd(b)
	tensVec := tableVector(b, []flatbuffers.UOffsetT{tens})

	metadata.ScoreThresholdingOptionsStart(b)
	metadata.ScoreThresholdingOptionsAddGlobalScoreThreshold(b, 0.5)
	thresh := metadata.ScoreThresholdingOptionsEnd(b)
	metadata.ProcessUnitStart(b)
	metadata.ProcessUnitAddOptionsType(b, metadata.ProcessUnitOptionsScoreThresholdingOptions)
	metadata.ProcessUnitAddOptions(b, thresh)
	outUnit := metadata.ProcessUnitEnd(b)
	outUnitVec := tableVector(b, []flatbuffers.UOffsetT{outUnit})

	groupNames := stringVec(b, []string{"a", "b"})
	groupName := b.CreateString("pair")
	metadata.TensorGroupStart(b)
	metadata.TensorGroupAddName(b, groupName)
	metadata.TensorGroupAddTensorNames(b, groupNames)
	group := metadata.TensorGroupEnd(b)
	groupVec := tableVector(b, []flatbuffers.UOffsetT{group})

	// Subgraph ohne Namen: Platzhalter erwartet
	metadata.SubGraphMetadataStart(b)
	metadata.SubGraphMetadataAddInputTensorMetadata(b, tensVec)
	metadata.SubGraphMetadataAddOutputProcessUnits(b, outUnitVec)
	metadata.SubGraphMetadataAddInputTensorGroups(b, groupVec)
	sub := metadata.SubGraphMetadataEnd(b)
	subVec := tableVector(b, []flatbuffers.UOffsetT{sub})

	metadata.ModelMetadataStart(b)
	metadata.ModelMetadataAddSubgraphMetadata(b, subVec)
	b.Finish(metadata.ModelMetadataEnd(b))

	want := `1 subgraph(s)
- name: <unnamed>
  - 1 input tensor(s) with metadata
    - name: image
      description: input image
      dimension names: ["batch", "height"]
      content: image_properties {ColorSpace:RGB}, range: {Min:0 Max:255}
      stats: {Max:[1] Min:[0]}
      1 associated file(s):
      - name: labels.txt
        type: TENSOR_AXIS_LABELS
      1 process unit(s):
      - normalization_options: {Mean:[127.5] Std:[127.5]}
  - 1 output tensor process units
    - score_thresholding_options: {GlobalScoreThreshold:0.5}
  - 1 input tensor groups
    - {Name:pair TensorNames:[a b]}
`
	got := render(t, b.FinishedBytes())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Report mismatch (-want +got):\n%s", diff)
	}
}

// buildSubgraphWithCustom baut ein Metadata-Payload mit genau einem
// Subgraph, der die gegebenen CustomMetadata-Eintraege traegt
func buildSubgraphWithCustom(t *testing.T, entries map[string][]byte, order []string) []byte {
	t.Helper()
	b := flatbuffers.NewBuilder(0)

	customOffs := make([]flatbuffers.UOffsetT, 0, len(order))
	for _, name := range order {
		customOffs = append(customOffs, customEntry(b, name, entries[name]))
	}
	customVec := tableVector(b, customOffs)

	subName := b.CreateString("detector")
	metadata.SubGraphMetadataStart(b)
	metadata.SubGraphMetadataAddName(b, subName)
	metadata.SubGraphMetadataAddCustomMetadata(b, customVec)
	sub := metadata.SubGraphMetadataEnd(b)
	subVec := tableVector(b, []flatbuffers.UOffsetT{sub})

	metadata.ModelMetadataStart(b)
	metadata.ModelMetadataAddSubgraphMetadata(b, subVec)
	b.Finish(metadata.ModelMetadataEnd(b))

	return b.FinishedBytes()
}

// TestRenderCustomMetadataDispatch testet den Name-Tag-Dispatch:
// bekanntes Tag wird dekodiert, unbekanntes bekommt die feste Zeile
func TestRenderCustomMetadataDispatch(t *testing.T) {
	payload := buildSubgraphWithCustom(t,
		map[string][]byte{
			"DETECTOR_METADATA": buildDetectorPayload(t, 2),
			"VENDOR_SPECIFIC":   []byte("opaque"),
		},
		[]string{"DETECTOR_METADATA", "VENDOR_SPECIFIC"},
	)

	got := render(t, payload)

	for _, line := range []string{
		"  - 2 custom metadata entries\n",
		"    - name: DETECTOR_METADATA\n",
		"      min_parser_version: 1.2.0\n",
		"      tensors_decoding_options: {NumClasses:3 NumBoxes:5 NumCoords:4 KeypointCoordOffset:0 NumKeypoints:0 NumValuesPerKeypoint:0 XScale:10 YScale:10 WScale:5 HScale:5 ApplyExponentialOnBoxSize:false SigmoidScore:true}\n",
		"      ssd_anchor_options:\n",
		"        fixed_anchors_schema:\n",
		"          2 anchors\n",
		"          - {XCenter:0 YCenter:0.5 Width:1 Height:2}\n",
		"          - {XCenter:1 YCenter:0.5 Width:1 Height:2}\n",
		"    - name: VENDOR_SPECIFIC\n",
		"      6 bytes\n",
		"      (unknown or unhandled format)\n",
	} {
		if !strings.Contains(got, line) {
			t.Errorf("Zeile %q fehlt in:\n%s", line, got)
		}
	}

	if strings.Contains(got, "decoding error") {
		t.Errorf("Unerwarteter Dekodierfehler in:\n%s", got)
	}
}

// TestRenderCustomMetadataRecovery testet die lokale Fehlerbehandlung:
// ein korrupter Detector-Payload bricht den Report nicht ab
func TestRenderCustomMetadataRecovery(t *testing.T) {
	payload := buildSubgraphWithCustom(t,
		map[string][]byte{
			"DETECTOR_METADATA": {0xff, 0xff, 0xff, 0xff},
			"AFTERWARDS":        []byte("ok"),
		},
		[]string{"DETECTOR_METADATA", "AFTERWARDS"},
	)

	got := render(t, payload)

	idxName := strings.Index(got, "    - name: DETECTOR_METADATA\n      4 bytes\n      decoding error: ")
	if idxName < 0 {
		t.Fatalf("Fehlerzeile direkt nach der Byte-Zeile fehlt in:\n%s", got)
	}

	idxNext := strings.Index(got, "    - name: AFTERWARDS\n")
	if idxNext < 0 || idxNext < idxName {
		t.Errorf("Folgeeintrag fehlt oder steht vor dem Fehler in:\n%s", got)
	}
	if !strings.Contains(got, "      (unknown or unhandled format)\n") {
		t.Errorf("Folgeeintrag wurde nicht normal gerendert:\n%s", got)
	}
}

// TestAnchorTruncation testet das Display-Budget: unterhalb des
// Budgets alles, oberhalb Kopf, Sammelzeile und Schwanz mit der
// festgelegten Index-Arithmetik
func TestAnchorTruncation(t *testing.T) {
	renderDetector := func(numAnchors int) string {
		var buf bytes.Buffer
		r := NewRenderer(&buf)
		if err := r.renderDetectorOptions(3, buildDetectorPayload(t, numAnchors)); err != nil {
			t.Fatalf("renderDetectorOptions: unerwarteter Fehler %v", err)
		}
		return buf.String()
	}

	anchorLines := func(out string) []string {
		var lines []string
		for _, line := range strings.Split(out, "\n") {
			if strings.HasPrefix(line, "          - {") {
				lines = append(lines, line)
			}
		}
		return lines
	}

	t.Run("N=10 unter dem Budget", func(t *testing.T) {
		out := renderDetector(10)
		if !strings.Contains(out, "          10 anchors\n") {
			t.Errorf("Anchor-Anzahl fehlt in:\n%s", out)
		}
		if got := anchorLines(out); len(got) != 10 {
			t.Errorf("Anchor-Zeilen = %d, erwartet 10", len(got))
		}
		if strings.Contains(out, "more") {
			t.Errorf("Sammelzeile unterhalb des Budgets in:\n%s", out)
		}
	})

	t.Run("N=100 ueber dem Budget", func(t *testing.T) {
		out := renderDetector(100)
		if !strings.Contains(out, "          - ...76 more\n") {
			t.Errorf("Sammelzeile '...76 more' fehlt in:\n%s", out)
		}

		got := anchorLines(out)
		// Kopf 0..11, Schwanz 87..99 (der Index-Bereich [n-1-12, n)
		// umfasst 13 Eintraege)
		if len(got) != 25 {
			t.Fatalf("Anchor-Zeilen = %d, erwartet 25", len(got))
		}
		for j := 0; j < 12; j++ {
			if want := fmt.Sprintf("XCenter:%d ", j); !strings.Contains(got[j], want) {
				t.Errorf("Kopf-Anchor %d = %q, erwartet %q", j, got[j], want)
			}
		}
		for i, j := 12, 87; j < 100; i, j = i+1, j+1 {
			if want := fmt.Sprintf("XCenter:%d ", j); !strings.Contains(got[i], want) {
				t.Errorf("Schwanz-Anchor %d = %q, erwartet %q", i, got[i], want)
			}
		}
	})
}
