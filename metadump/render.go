// render.go - Renderer und Dispatcher fuer den Metadata-Baum
//
// Dieses Modul enthaelt:
// - Renderer: Laeuft den dekodierten Baum in fester Reihenfolge ab und
//   schreibt den Report zeilenweise auf einen io.Writer
// - Sub-Format-Dispatch: CustomMetadata-Tags werden ueber eine Map auf
//   bekannte Decoder abgebildet (einzige Erweiterungsstelle:
//   DETECTOR_METADATA)
// - Anchor-Kuerzung: grosse Anchor-Listen werden auf das Display-Budget
//   gekuerzt (Kopf, Sammelzeile, Schwanz)
package metadump

import (
	"fmt"
	"io"
	"strings"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/7blacky7/tflite-metadump/fs/tflite/detector"
	"github.com/7blacky7/tflite-metadump/fs/tflite/metadata"
)

// anchorDisplayBudget begrenzt die Anzahl voll ausgegebener Anchors
// Listen koennen tausende Eintraege haben; oberhalb des Budgets werden
// Kopf und Schwanz gedruckt und die Mitte zusammengefasst. Die
// Index-Arithmetik (Sammelzeile n-Budget, Schwanz ab n-1-Budget/2) ist
// Teil des beobachtbaren Ausgabeformats und bleibt exakt so
const anchorDisplayBudget = 24

// unnamed ist der Platzhalter fuer fehlende Namen
const unnamed = "<unnamed>"

// indent rendert eine Einrueckungstiefe als zwei Leerzeichen pro Ebene
type indent int

func (n indent) String() string {
	return strings.Repeat("  ", int(n))
}

// Renderer schreibt den Metadata-Report auf einen Writer
// Der Baum wird nie materialisiert; jedes Feld wird erst beim Drucken
// aus dem Payload gelesen
type Renderer struct {
	w        io.Writer
	decoders map[string]func(indent, []byte) error
}

// NewRenderer erstellt einen Renderer mit den bekannten Sub-Decodern
func NewRenderer(w io.Writer) *Renderer {
	r := &Renderer{w: w}
	r.decoders = map[string]func(indent, []byte) error{
		DetectorMetadataName: r.renderDetectorOptions,
	}
	return r
}

// Render dekodiert den Payload als ModelMetadata und druckt den Report
func (r *Renderer) Render(payload []byte) error {
	meta, err := metadata.RootModelMetadata(payload)
	if err != nil {
		return fmt.Errorf("decoding metadata: %w", err)
	}

	if name := meta.Name(); name != nil {
		fmt.Fprintf(r.w, "name: %s\n", name)
	}
	if desc := meta.Description(); desc != nil {
		fmt.Fprintf(r.w, "description: %s\n", desc)
	}
	if version := meta.Version(); version != nil {
		fmt.Fprintf(r.w, "version: %s\n", version)
	}
	if author := meta.Author(); author != nil {
		fmt.Fprintf(r.w, "author: %s\n", author)
	}
	if license := meta.License(); license != nil {
		fmt.Fprintf(r.w, "license: %s\n", license)
	}
	if mpv := meta.MinParserVersion(); mpv != nil {
		fmt.Fprintf(r.w, "min_parser_version: %s\n", mpv)
	}

	if meta.HasAssociatedFiles() {
		fmt.Fprintf(r.w, "%d associated file(s):\n", meta.AssociatedFilesLength())
		r.printAssociatedFiles(0, meta.AssociatedFiles, meta.AssociatedFilesLength())
	}

	if meta.HasSubgraphMetadata() {
		fmt.Fprintf(r.w, "%d subgraph(s)\n", meta.SubgraphMetadataLength())
		for j := 0; j < meta.SubgraphMetadataLength(); j++ {
			var sub metadata.SubGraphMetadata
			if !meta.SubgraphMetadata(&sub, j) {
				continue
			}
			r.renderSubgraph(meta, &sub)
		}
	}

	return nil
}

func (r *Renderer) renderSubgraph(meta *metadata.ModelMetadata, sub *metadata.SubGraphMetadata) {
	fmt.Fprintf(r.w, "- name: %s\n", nameOr(sub.Name()))
	if desc := sub.Description(); desc != nil {
		fmt.Fprintf(r.w, "  description: %s\n", desc)
	}

	// Hier wird bewusst die Top-Level-Dateiliste gedruckt, nicht die
	// Subgraph-eigene; das reproduziert das Referenzverhalten
	if meta.HasAssociatedFiles() {
		fmt.Fprintf(r.w, "  %d associated file(s):\n", meta.AssociatedFilesLength())
		r.printAssociatedFiles(1, meta.AssociatedFiles, meta.AssociatedFilesLength())
	}

	if sub.HasInputTensorMetadata() {
		fmt.Fprintf(r.w, "  - %d input tensor(s) with metadata\n", sub.InputTensorMetadataLength())
		r.printTensorMetadata(2, sub.InputTensorMetadata, sub.InputTensorMetadataLength())
	}
	if sub.HasOutputTensorMetadata() {
		fmt.Fprintf(r.w, "  - %d output tensor(s) with metadata\n", sub.OutputTensorMetadataLength())
		r.printTensorMetadata(2, sub.OutputTensorMetadata, sub.OutputTensorMetadataLength())
	}

	if sub.HasInputProcessUnits() {
		fmt.Fprintf(r.w, "  - %d input tensor process units\n", sub.InputProcessUnitsLength())
		r.printProcessUnits(2, sub.InputProcessUnits, sub.InputProcessUnitsLength())
	}
	if sub.HasOutputProcessUnits() {
		fmt.Fprintf(r.w, "  - %d output tensor process units\n", sub.OutputProcessUnitsLength())
		r.printProcessUnits(2, sub.OutputProcessUnits, sub.OutputProcessUnitsLength())
	}

	if sub.HasInputTensorGroups() {
		fmt.Fprintf(r.w, "  - %d input tensor groups\n", sub.InputTensorGroupsLength())
		r.printTensorGroups(2, sub.InputTensorGroups, sub.InputTensorGroupsLength())
	}
	if sub.HasOutputTensorGroups() {
		fmt.Fprintf(r.w, "  - %d output tensor groups\n", sub.OutputTensorGroupsLength())
		r.printTensorGroups(2, sub.OutputTensorGroups, sub.OutputTensorGroupsLength())
	}

	if sub.HasCustomMetadata() {
		fmt.Fprintf(r.w, "  - %d custom metadata entries\n", sub.CustomMetadataLength())
		for j := 0; j < sub.CustomMetadataLength(); j++ {
			var custom metadata.CustomMetadata
			if !sub.CustomMetadata(&custom, j) {
				continue
			}
			r.renderCustomMetadata(&custom)
		}
	}
}

// renderCustomMetadata druckt einen Eintrag und dispatcht auf den
// Sub-Decoder des Name-Tags; ein Dekodierfehler wird lokal gefangen
// und inline gemeldet, der restliche Report laeuft weiter
func (r *Renderer) renderCustomMetadata(custom *metadata.CustomMetadata) {
	data := custom.DataBytes()
	fmt.Fprintf(r.w, "    - name: %s\n", nameOr(custom.Name()))
	fmt.Fprintf(r.w, "      %d bytes\n", len(data))

	decode, ok := r.decoders[string(custom.Name())]
	if !ok {
		fmt.Fprintf(r.w, "      (unknown or unhandled format)\n")
		return
	}
	if err := decode(3, data); err != nil {
		fmt.Fprintf(r.w, "      decoding error: %v\n", err)
	}
}

// renderDetectorOptions dekodiert einen DETECTOR_METADATA Payload
// (Schema C) und druckt ihn eine Ebene tiefer
func (r *Renderer) renderDetectorOptions(ind indent, data []byte) error {
	opts, err := detector.RootObjectDetectorOptions(data)
	if err != nil {
		return err
	}

	if mpv := opts.MinParserVersion(); mpv != nil {
		fmt.Fprintf(r.w, "%smin_parser_version: %s\n", ind, mpv)
	}
	if dec := opts.TensorsDecodingOptions(nil); dec != nil {
		fmt.Fprintf(r.w, "%stensors_decoding_options: %s\n", ind, formatDecodingOptions(dec))
	}
	if ssd := opts.SsdAnchorsOptions(nil); ssd != nil {
		fmt.Fprintf(r.w, "%sssd_anchor_options:\n", ind)
		if fixed := ssd.FixedAnchorsSchema(nil); fixed != nil {
			fmt.Fprintf(r.w, "%s  fixed_anchors_schema:\n", ind)
			if fixed.HasAnchors() {
				r.printAnchors(ind, fixed)
			}
		}
	}

	return nil
}

// printAnchors druckt die Anchor-Liste unter dem Display-Budget
func (r *Renderer) printAnchors(ind indent, fixed *detector.FixedAnchorsSchema) {
	n := fixed.AnchorsLength()
	fmt.Fprintf(r.w, "%s    %d anchors\n", ind, n)

	printAt := func(j int) {
		var anchor detector.FixedAnchor
		if fixed.Anchors(&anchor, j) {
			fmt.Fprintf(r.w, "%s    - %s\n", ind, formatAnchor(&anchor))
		}
	}

	if n <= anchorDisplayBudget {
		for j := 0; j < n; j++ {
			printAt(j)
		}
		return
	}

	for j := 0; j < anchorDisplayBudget/2; j++ {
		printAt(j)
	}
	fmt.Fprintf(r.w, "%s    - ...%d more\n", ind, n-anchorDisplayBudget)
	for j := n - 1 - anchorDisplayBudget/2; j < n; j++ {
		printAt(j)
	}
}

// printTensorMetadata druckt eine Tensor-Liste; wird fuer Ein- und
// Ausgabetensoren auf derselben Tiefe wiederverwendet
func (r *Renderer) printTensorMetadata(ind indent, at func(*metadata.TensorMetadata, int) bool, n int) {
	for j := 0; j < n; j++ {
		var tens metadata.TensorMetadata
		if !at(&tens, j) {
			continue
		}

		fmt.Fprintf(r.w, "%s- name: %s\n", ind, nameOr(tens.Name()))
		if desc := tens.Description(); desc != nil {
			fmt.Fprintf(r.w, "%s  description: %s\n", ind, desc)
		}
		if tens.HasDimensionNames() {
			fmt.Fprintf(r.w, "%s  dimension names: %s\n", ind, formatDimensionNames(&tens))
		}
		if content := tens.Content(nil); content != nil {
			fmt.Fprintf(r.w, "%s  content: %s\n", ind, formatContent(content))
		}
		if stats := tens.Stats(nil); stats != nil {
			fmt.Fprintf(r.w, "%s  stats: %s\n", ind, formatStats(stats))
		}
		if tens.HasAssociatedFiles() {
			fmt.Fprintf(r.w, "%s  %d associated file(s):\n", ind, tens.AssociatedFilesLength())
			r.printAssociatedFiles(ind+1, tens.AssociatedFiles, tens.AssociatedFilesLength())
		}
		if tens.HasProcessUnits() {
			fmt.Fprintf(r.w, "%s  %d process unit(s):\n", ind, tens.ProcessUnitsLength())
			r.printProcessUnits(ind+1, tens.ProcessUnits, tens.ProcessUnitsLength())
		}
	}
}

// printAssociatedFiles druckt eine Dateiliste; der Typ wird immer
// gedruckt (Schema-Default UNKNOWN), alle anderen Felder nur wenn
// vorhanden
func (r *Renderer) printAssociatedFiles(ind indent, at func(*metadata.AssociatedFile, int) bool, n int) {
	for j := 0; j < n; j++ {
		var file metadata.AssociatedFile
		if !at(&file, j) {
			continue
		}

		fmt.Fprintf(r.w, "%s- name: %s\n", ind, nameOr(file.Name()))
		if desc := file.Description(); desc != nil {
			fmt.Fprintf(r.w, "%s  description: %s\n", ind, desc)
		}
		fmt.Fprintf(r.w, "%s  type: %s\n", ind, file.Type())
		if locale := file.Locale(); locale != nil {
			fmt.Fprintf(r.w, "%s  locale: %s\n", ind, locale)
		}
		if version := file.Version(); version != nil {
			fmt.Fprintf(r.w, "%s  version: %s\n", ind, version)
		}
	}
}

// printProcessUnits druckt Process-Units als Variante plus Felddump
func (r *Renderer) printProcessUnits(ind indent, at func(*metadata.ProcessUnit, int) bool, n int) {
	for j := 0; j < n; j++ {
		var unit metadata.ProcessUnit
		if !at(&unit, j) {
			continue
		}
		fmt.Fprintf(r.w, "%s- %s\n", ind, formatProcessUnit(&unit))
	}
}

func (r *Renderer) printTensorGroups(ind indent, at func(*metadata.TensorGroup, int) bool, n int) {
	for j := 0; j < n; j++ {
		var group metadata.TensorGroup
		if !at(&group, j) {
			continue
		}
		fmt.Fprintf(r.w, "%s- %s\n", ind, formatTensorGroup(&group))
	}
}

// nameOr liefert den Namen oder den Platzhalter fuer Abwesenheit
func nameOr(name []byte) string {
	if name == nil {
		return unnamed
	}
	return string(name)
}

func formatDimensionNames(tens *metadata.TensorMetadata) string {
	quoted := make([]string, tens.DimensionNamesLength())
	for j := range quoted {
		quoted[j] = fmt.Sprintf("%q", tens.DimensionNames(j))
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// formatProcessUnit bildet jede Union-Variante auf eine Zeile ab
// Die Abbildung ist total ueber die geschlossene Union des Schemas
func formatProcessUnit(unit *metadata.ProcessUnit) string {
	var tab flatbuffers.Table
	if !unit.Options(&tab) {
		return "<none>"
	}

	switch unit.OptionsType() {
	case metadata.ProcessUnitOptionsNormalizationOptions:
		var o metadata.NormalizationOptions
		o.Init(tab.Bytes, tab.Pos)
		return fmt.Sprintf("normalization_options: {Mean:%v Std:%v}",
			floatVector(o.Mean, o.MeanLength()), floatVector(o.Std, o.StdLength()))
	case metadata.ProcessUnitOptionsScoreCalibrationOptions:
		var o metadata.ScoreCalibrationOptions
		o.Init(tab.Bytes, tab.Pos)
		return fmt.Sprintf("score_calibration_options: {ScoreTransformation:%s DefaultScore:%v}",
			o.ScoreTransformation(), o.DefaultScore())
	case metadata.ProcessUnitOptionsScoreThresholdingOptions:
		var o metadata.ScoreThresholdingOptions
		o.Init(tab.Bytes, tab.Pos)
		return fmt.Sprintf("score_thresholding_options: {GlobalScoreThreshold:%v}", o.GlobalScoreThreshold())
	case metadata.ProcessUnitOptionsBertTokenizerOptions:
		var o metadata.BertTokenizerOptions
		o.Init(tab.Bytes, tab.Pos)
		return fmt.Sprintf("bert_tokenizer_options: {VocabFiles:%v}",
			fileNames(o.VocabFile, o.VocabFileLength()))
	case metadata.ProcessUnitOptionsSentencePieceTokenizerOptions:
		var o metadata.SentencePieceTokenizerOptions
		o.Init(tab.Bytes, tab.Pos)
		return fmt.Sprintf("sentence_piece_tokenizer_options: {SentencePieceModels:%v VocabFiles:%v}",
			fileNames(o.SentencePieceModel, o.SentencePieceModelLength()),
			fileNames(o.VocabFile, o.VocabFileLength()))
	case metadata.ProcessUnitOptionsRegexTokenizerOptions:
		var o metadata.RegexTokenizerOptions
		o.Init(tab.Bytes, tab.Pos)
		return fmt.Sprintf("regex_tokenizer_options: {DelimRegexPattern:%s VocabFiles:%v}",
			o.DelimRegexPattern(), fileNames(o.VocabFile, o.VocabFileLength()))
	default:
		return "<none>"
	}
}

// formatContent bildet jede Content-Variante auf eine Zeile ab
func formatContent(content *metadata.Content) string {
	var s string

	var tab flatbuffers.Table
	hasProps := content.ContentProperties(&tab)

	switch {
	case !hasProps:
		s = "<none>"
	case content.ContentPropertiesType() == metadata.ContentPropertiesFeatureProperties:
		s = "feature_properties {}"
	case content.ContentPropertiesType() == metadata.ContentPropertiesImageProperties:
		var p metadata.ImageProperties
		p.Init(tab.Bytes, tab.Pos)
		s = fmt.Sprintf("image_properties {ColorSpace:%s", p.ColorSpace())
		if size := p.DefaultSize(nil); size != nil {
			s += fmt.Sprintf(" DefaultSize:%dx%d", size.Width(), size.Height())
		}
		s += "}"
	case content.ContentPropertiesType() == metadata.ContentPropertiesBoundingBoxProperties:
		var p metadata.BoundingBoxProperties
		p.Init(tab.Bytes, tab.Pos)
		index := make([]uint32, p.IndexLength())
		for j := range index {
			index[j] = p.Index(j)
		}
		s = fmt.Sprintf("bounding_box_properties {Index:%v Type:%s CoordinateType:%s}",
			index, p.Type(), p.CoordinateType())
	case content.ContentPropertiesType() == metadata.ContentPropertiesAudioProperties:
		var p metadata.AudioProperties
		p.Init(tab.Bytes, tab.Pos)
		s = fmt.Sprintf("audio_properties {SampleRate:%d Channels:%d}", p.SampleRate(), p.Channels())
	default:
		s = "<none>"
	}

	if rng := content.Range(nil); rng != nil {
		s += fmt.Sprintf(", range: {Min:%d Max:%d}", rng.Min(), rng.Max())
	}

	return s
}

func formatStats(stats *metadata.Stats) string {
	return fmt.Sprintf("{Max:%v Min:%v}",
		floatVector(stats.Max, stats.MaxLength()), floatVector(stats.Min, stats.MinLength()))
}

func formatTensorGroup(group *metadata.TensorGroup) string {
	names := make([]string, group.TensorNamesLength())
	for j := range names {
		names[j] = string(group.TensorNames(j))
	}
	return fmt.Sprintf("{Name:%s TensorNames:%v}", group.Name(), names)
}

func formatDecodingOptions(dec *detector.TensorsDecodingOptions) string {
	return fmt.Sprintf("%+v", struct {
		NumClasses                int32
		NumBoxes                  int32
		NumCoords                 int32
		KeypointCoordOffset       int32
		NumKeypoints              int32
		NumValuesPerKeypoint      int32
		XScale                    float32
		YScale                    float32
		WScale                    float32
		HScale                    float32
		ApplyExponentialOnBoxSize bool
		SigmoidScore              bool
	}{
		dec.NumClasses(), dec.NumBoxes(), dec.NumCoords(),
		dec.KeypointCoordOffset(), dec.NumKeypoints(), dec.NumValuesPerKeypoint(),
		dec.XScale(), dec.YScale(), dec.WScale(), dec.HScale(),
		dec.ApplyExponentialOnBoxSize(), dec.SigmoidScore(),
	})
}

func formatAnchor(anchor *detector.FixedAnchor) string {
	return fmt.Sprintf("%+v", struct {
		XCenter float32
		YCenter float32
		Width   float32
		Height  float32
	}{anchor.XCenter(), anchor.YCenter(), anchor.Width(), anchor.Height()})
}

func floatVector(at func(int) float32, n int) []float32 {
	s := make([]float32, n)
	for j := range s {
		s[j] = at(j)
	}
	return s
}

func fileNames(at func(*metadata.AssociatedFile, int) bool, n int) []string {
	names := make([]string, 0, n)
	for j := 0; j < n; j++ {
		var file metadata.AssociatedFile
		if at(&file, j) {
			names = append(names, nameOr(file.Name()))
		}
	}
	return names
}
