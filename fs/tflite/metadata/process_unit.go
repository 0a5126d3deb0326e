// process_unit.go - ProcessUnit Table mit ProcessUnitOptions Union
//
// Die Union ist im Schema geschlossen: Normalization, ScoreCalibration,
// ScoreThresholding, BertTokenizer, SentencePieceTokenizer und
// RegexTokenizer. ProcessUnit-Slots: options_type=0, options=1
package metadata

import (
	"strconv"

	flatbuffers "github.com/google/flatbuffers/go"
)

// ProcessUnitOptions ist der Union-Diskriminator eines ProcessUnit
type ProcessUnitOptions byte

const (
	ProcessUnitOptionsNONE                          ProcessUnitOptions = 0
	ProcessUnitOptionsNormalizationOptions          ProcessUnitOptions = 1
	ProcessUnitOptionsScoreCalibrationOptions       ProcessUnitOptions = 2
	ProcessUnitOptionsScoreThresholdingOptions      ProcessUnitOptions = 3
	ProcessUnitOptionsBertTokenizerOptions          ProcessUnitOptions = 4
	ProcessUnitOptionsSentencePieceTokenizerOptions ProcessUnitOptions = 5
	ProcessUnitOptionsRegexTokenizerOptions         ProcessUnitOptions = 6
)

var EnumNamesProcessUnitOptions = map[ProcessUnitOptions]string{
	ProcessUnitOptionsNONE:                          "NONE",
	ProcessUnitOptionsNormalizationOptions:          "NormalizationOptions",
	ProcessUnitOptionsScoreCalibrationOptions:       "ScoreCalibrationOptions",
	ProcessUnitOptionsScoreThresholdingOptions:      "ScoreThresholdingOptions",
	ProcessUnitOptionsBertTokenizerOptions:          "BertTokenizerOptions",
	ProcessUnitOptionsSentencePieceTokenizerOptions: "SentencePieceTokenizerOptions",
	ProcessUnitOptionsRegexTokenizerOptions:         "RegexTokenizerOptions",
}

func (v ProcessUnitOptions) String() string {
	if s, ok := EnumNamesProcessUnitOptions[v]; ok {
		return s
	}
	return "ProcessUnitOptions(" + strconv.FormatInt(int64(v), 10) + ")"
}

// ScoreTransformationType klassifiziert die Score-Transformation
type ScoreTransformationType byte

const (
	ScoreTransformationTypeIDENTITY         ScoreTransformationType = 0
	ScoreTransformationTypeLOG              ScoreTransformationType = 1
	ScoreTransformationTypeINVERSE_LOGISTIC ScoreTransformationType = 2
)

var EnumNamesScoreTransformationType = map[ScoreTransformationType]string{
	ScoreTransformationTypeIDENTITY:         "IDENTITY",
	ScoreTransformationTypeLOG:              "LOG",
	ScoreTransformationTypeINVERSE_LOGISTIC: "INVERSE_LOGISTIC",
}

func (v ScoreTransformationType) String() string {
	if s, ok := EnumNamesScoreTransformationType[v]; ok {
		return s
	}
	return "ScoreTransformationType(" + strconv.FormatInt(int64(v), 10) + ")"
}

// ProcessUnit traegt genau eine Variante der Options-Union
type ProcessUnit struct {
	_tab flatbuffers.Table
}

func (rcv *ProcessUnit) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *ProcessUnit) OptionsType() ProcessUnitOptions {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return ProcessUnitOptions(rcv._tab.GetByte(o + rcv._tab.Pos))
	}
	return ProcessUnitOptionsNONE
}

func (rcv *ProcessUnit) Options(obj *flatbuffers.Table) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		rcv._tab.Union(obj, o)
		return true
	}
	return false
}

func ProcessUnitStart(builder *flatbuffers.Builder) {
	builder.StartObject(2)
}

func ProcessUnitAddOptionsType(builder *flatbuffers.Builder, optionsType ProcessUnitOptions) {
	builder.PrependByteSlot(0, byte(optionsType), 0)
}

func ProcessUnitAddOptions(builder *flatbuffers.Builder, options flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, options, 0)
}

func ProcessUnitEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// NormalizationOptions: mean=0, std=1
type NormalizationOptions struct {
	_tab flatbuffers.Table
}

func (rcv *NormalizationOptions) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *NormalizationOptions) Mean(j int) float32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.GetFloat32(a + flatbuffers.UOffsetT(j*4))
	}
	return 0
}

func (rcv *NormalizationOptions) MeanLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *NormalizationOptions) Std(j int) float32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.GetFloat32(a + flatbuffers.UOffsetT(j*4))
	}
	return 0
}

func (rcv *NormalizationOptions) StdLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func NormalizationOptionsStart(builder *flatbuffers.Builder) {
	builder.StartObject(2)
}

func NormalizationOptionsAddMean(builder *flatbuffers.Builder, mean flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, mean, 0)
}

func NormalizationOptionsStartMeanVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func NormalizationOptionsAddStd(builder *flatbuffers.Builder, std flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, std, 0)
}

func NormalizationOptionsStartStdVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func NormalizationOptionsEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// ScoreCalibrationOptions: score_transformation=0, default_score=1
type ScoreCalibrationOptions struct {
	_tab flatbuffers.Table
}

func (rcv *ScoreCalibrationOptions) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *ScoreCalibrationOptions) ScoreTransformation() ScoreTransformationType {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return ScoreTransformationType(rcv._tab.GetByte(o + rcv._tab.Pos))
	}
	return ScoreTransformationTypeIDENTITY
}

func (rcv *ScoreCalibrationOptions) DefaultScore() float32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetFloat32(o + rcv._tab.Pos)
	}
	return 0
}

func ScoreCalibrationOptionsStart(builder *flatbuffers.Builder) {
	builder.StartObject(2)
}

func ScoreCalibrationOptionsAddScoreTransformation(builder *flatbuffers.Builder, scoreTransformation ScoreTransformationType) {
	builder.PrependByteSlot(0, byte(scoreTransformation), 0)
}

func ScoreCalibrationOptionsAddDefaultScore(builder *flatbuffers.Builder, defaultScore float32) {
	builder.PrependFloat32Slot(1, defaultScore, 0)
}

func ScoreCalibrationOptionsEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// ScoreThresholdingOptions: global_score_threshold=0
type ScoreThresholdingOptions struct {
	_tab flatbuffers.Table
}

func (rcv *ScoreThresholdingOptions) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *ScoreThresholdingOptions) GlobalScoreThreshold() float32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetFloat32(o + rcv._tab.Pos)
	}
	return 0
}

func ScoreThresholdingOptionsStart(builder *flatbuffers.Builder) {
	builder.StartObject(1)
}

func ScoreThresholdingOptionsAddGlobalScoreThreshold(builder *flatbuffers.Builder, globalScoreThreshold float32) {
	builder.PrependFloat32Slot(0, globalScoreThreshold, 0)
}

func ScoreThresholdingOptionsEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// BertTokenizerOptions: vocab_file=0
type BertTokenizerOptions struct {
	_tab flatbuffers.Table
}

func (rcv *BertTokenizerOptions) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *BertTokenizerOptions) VocabFile(obj *AssociatedFile, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * 4
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func (rcv *BertTokenizerOptions) VocabFileLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func BertTokenizerOptionsStart(builder *flatbuffers.Builder) {
	builder.StartObject(1)
}

func BertTokenizerOptionsAddVocabFile(builder *flatbuffers.Builder, vocabFile flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, vocabFile, 0)
}

func BertTokenizerOptionsStartVocabFileVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func BertTokenizerOptionsEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// SentencePieceTokenizerOptions: sentencepiece_model=0, vocab_file=1
type SentencePieceTokenizerOptions struct {
	_tab flatbuffers.Table
}

func (rcv *SentencePieceTokenizerOptions) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *SentencePieceTokenizerOptions) SentencePieceModel(obj *AssociatedFile, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * 4
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func (rcv *SentencePieceTokenizerOptions) SentencePieceModelLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *SentencePieceTokenizerOptions) VocabFile(obj *AssociatedFile, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * 4
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func (rcv *SentencePieceTokenizerOptions) VocabFileLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func SentencePieceTokenizerOptionsStart(builder *flatbuffers.Builder) {
	builder.StartObject(2)
}

func SentencePieceTokenizerOptionsAddSentencePieceModel(builder *flatbuffers.Builder, sentencePieceModel flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, sentencePieceModel, 0)
}

func SentencePieceTokenizerOptionsStartSentencePieceModelVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func SentencePieceTokenizerOptionsAddVocabFile(builder *flatbuffers.Builder, vocabFile flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, vocabFile, 0)
}

func SentencePieceTokenizerOptionsStartVocabFileVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func SentencePieceTokenizerOptionsEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// RegexTokenizerOptions: delim_regex_pattern=0, vocab_file=1
type RegexTokenizerOptions struct {
	_tab flatbuffers.Table
}

func (rcv *RegexTokenizerOptions) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *RegexTokenizerOptions) DelimRegexPattern() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func (rcv *RegexTokenizerOptions) VocabFile(obj *AssociatedFile, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * 4
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func (rcv *RegexTokenizerOptions) VocabFileLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func RegexTokenizerOptionsStart(builder *flatbuffers.Builder) {
	builder.StartObject(2)
}

func RegexTokenizerOptionsAddDelimRegexPattern(builder *flatbuffers.Builder, delimRegexPattern flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, delimRegexPattern, 0)
}

func RegexTokenizerOptionsAddVocabFile(builder *flatbuffers.Builder, vocabFile flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, vocabFile, 0)
}

func RegexTokenizerOptionsStartVocabFileVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func RegexTokenizerOptionsEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
