// options.go - ObjectDetectorOptions, TensorsDecodingOptions und Anchor-Tables
//
// Feld-Slots laut Schema:
// - ObjectDetectorOptions: min_parser_version=0,
//   tensors_decoding_options=1, ssd_anchors_options=2
// - TensorsDecodingOptions: num_classes=0, num_boxes=1, num_coords=2,
//   keypoint_coord_offset=3, num_keypoints=4,
//   num_values_per_keypoint=5, x_scale=6, y_scale=7, w_scale=8,
//   h_scale=9, apply_exponential_on_box_size=10, sigmoid_score=11
// - SsdAnchorsOptions: fixed_anchors_schema=0
// - FixedAnchorsSchema: anchors=0
// - FixedAnchor: x_center=0, y_center=1, width=2, height=3
package detector

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// ObjectDetectorOptions ist die Root-Table eines DETECTOR_METADATA Payloads
type ObjectDetectorOptions struct {
	_tab flatbuffers.Table
}

func (rcv *ObjectDetectorOptions) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *ObjectDetectorOptions) MinParserVersion() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func (rcv *ObjectDetectorOptions) TensorsDecodingOptions(obj *TensorsDecodingOptions) *TensorsDecodingOptions {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		x := rcv._tab.Indirect(o + rcv._tab.Pos)
		if obj == nil {
			obj = new(TensorsDecodingOptions)
		}
		obj.Init(rcv._tab.Bytes, x)
		return obj
	}
	return nil
}

func (rcv *ObjectDetectorOptions) SsdAnchorsOptions(obj *SsdAnchorsOptions) *SsdAnchorsOptions {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		x := rcv._tab.Indirect(o + rcv._tab.Pos)
		if obj == nil {
			obj = new(SsdAnchorsOptions)
		}
		obj.Init(rcv._tab.Bytes, x)
		return obj
	}
	return nil
}

func ObjectDetectorOptionsStart(builder *flatbuffers.Builder) {
	builder.StartObject(3)
}

func ObjectDetectorOptionsAddMinParserVersion(builder *flatbuffers.Builder, minParserVersion flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, minParserVersion, 0)
}

func ObjectDetectorOptionsAddTensorsDecodingOptions(builder *flatbuffers.Builder, tensorsDecodingOptions flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, tensorsDecodingOptions, 0)
}

func ObjectDetectorOptionsAddSsdAnchorsOptions(builder *flatbuffers.Builder, ssdAnchorsOptions flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(2, ssdAnchorsOptions, 0)
}

func ObjectDetectorOptionsEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// TensorsDecodingOptions buendelt die SSD-Decoding-Parameter
type TensorsDecodingOptions struct {
	_tab flatbuffers.Table
}

func (rcv *TensorsDecodingOptions) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *TensorsDecodingOptions) NumClasses() int32 {
	return rcv._tab.GetInt32Slot(4, 0)
}

func (rcv *TensorsDecodingOptions) NumBoxes() int32 {
	return rcv._tab.GetInt32Slot(6, 0)
}

func (rcv *TensorsDecodingOptions) NumCoords() int32 {
	return rcv._tab.GetInt32Slot(8, 0)
}

func (rcv *TensorsDecodingOptions) KeypointCoordOffset() int32 {
	return rcv._tab.GetInt32Slot(10, 0)
}

func (rcv *TensorsDecodingOptions) NumKeypoints() int32 {
	return rcv._tab.GetInt32Slot(12, 0)
}

func (rcv *TensorsDecodingOptions) NumValuesPerKeypoint() int32 {
	return rcv._tab.GetInt32Slot(14, 0)
}

func (rcv *TensorsDecodingOptions) XScale() float32 {
	return rcv._tab.GetFloat32Slot(16, 0)
}

func (rcv *TensorsDecodingOptions) YScale() float32 {
	return rcv._tab.GetFloat32Slot(18, 0)
}

func (rcv *TensorsDecodingOptions) WScale() float32 {
	return rcv._tab.GetFloat32Slot(20, 0)
}

func (rcv *TensorsDecodingOptions) HScale() float32 {
	return rcv._tab.GetFloat32Slot(22, 0)
}

func (rcv *TensorsDecodingOptions) ApplyExponentialOnBoxSize() bool {
	return rcv._tab.GetBoolSlot(24, false)
}

func (rcv *TensorsDecodingOptions) SigmoidScore() bool {
	return rcv._tab.GetBoolSlot(26, false)
}

func TensorsDecodingOptionsStart(builder *flatbuffers.Builder) {
	builder.StartObject(12)
}

func TensorsDecodingOptionsAddNumClasses(builder *flatbuffers.Builder, numClasses int32) {
	builder.PrependInt32Slot(0, numClasses, 0)
}

func TensorsDecodingOptionsAddNumBoxes(builder *flatbuffers.Builder, numBoxes int32) {
	builder.PrependInt32Slot(1, numBoxes, 0)
}

func TensorsDecodingOptionsAddNumCoords(builder *flatbuffers.Builder, numCoords int32) {
	builder.PrependInt32Slot(2, numCoords, 0)
}

func TensorsDecodingOptionsAddKeypointCoordOffset(builder *flatbuffers.Builder, keypointCoordOffset int32) {
	builder.PrependInt32Slot(3, keypointCoordOffset, 0)
}

func TensorsDecodingOptionsAddNumKeypoints(builder *flatbuffers.Builder, numKeypoints int32) {
	builder.PrependInt32Slot(4, numKeypoints, 0)
}

func TensorsDecodingOptionsAddNumValuesPerKeypoint(builder *flatbuffers.Builder, numValuesPerKeypoint int32) {
	builder.PrependInt32Slot(5, numValuesPerKeypoint, 0)
}

func TensorsDecodingOptionsAddXScale(builder *flatbuffers.Builder, xScale float32) {
	builder.PrependFloat32Slot(6, xScale, 0)
}

func TensorsDecodingOptionsAddYScale(builder *flatbuffers.Builder, yScale float32) {
	builder.PrependFloat32Slot(7, yScale, 0)
}

func TensorsDecodingOptionsAddWScale(builder *flatbuffers.Builder, wScale float32) {
	builder.PrependFloat32Slot(8, wScale, 0)
}

func TensorsDecodingOptionsAddHScale(builder *flatbuffers.Builder, hScale float32) {
	builder.PrependFloat32Slot(9, hScale, 0)
}

func TensorsDecodingOptionsAddApplyExponentialOnBoxSize(builder *flatbuffers.Builder, applyExponentialOnBoxSize bool) {
	builder.PrependBoolSlot(10, applyExponentialOnBoxSize, false)
}

func TensorsDecodingOptionsAddSigmoidScore(builder *flatbuffers.Builder, sigmoidScore bool) {
	builder.PrependBoolSlot(11, sigmoidScore, false)
}

func TensorsDecodingOptionsEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// SsdAnchorsOptions traegt das optionale Fixed-Anchors-Schema
type SsdAnchorsOptions struct {
	_tab flatbuffers.Table
}

func (rcv *SsdAnchorsOptions) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *SsdAnchorsOptions) FixedAnchorsSchema(obj *FixedAnchorsSchema) *FixedAnchorsSchema {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		x := rcv._tab.Indirect(o + rcv._tab.Pos)
		if obj == nil {
			obj = new(FixedAnchorsSchema)
		}
		obj.Init(rcv._tab.Bytes, x)
		return obj
	}
	return nil
}

func SsdAnchorsOptionsStart(builder *flatbuffers.Builder) {
	builder.StartObject(1)
}

func SsdAnchorsOptionsAddFixedAnchorsSchema(builder *flatbuffers.Builder, fixedAnchorsSchema flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, fixedAnchorsSchema, 0)
}

func SsdAnchorsOptionsEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// FixedAnchorsSchema traegt die geordnete Anchor-Liste
type FixedAnchorsSchema struct {
	_tab flatbuffers.Table
}

func (rcv *FixedAnchorsSchema) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *FixedAnchorsSchema) HasAnchors() bool {
	return rcv._tab.Offset(4) != 0
}

func (rcv *FixedAnchorsSchema) Anchors(obj *FixedAnchor, j int) bool {
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

func (rcv *FixedAnchorsSchema) AnchorsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func FixedAnchorsSchemaStart(builder *flatbuffers.Builder) {
	builder.StartObject(1)
}

func FixedAnchorsSchemaAddAnchors(builder *flatbuffers.Builder, anchors flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, anchors, 0)
}

func FixedAnchorsSchemaStartAnchorsVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func FixedAnchorsSchemaEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// FixedAnchor ist ein einzelner Anchor (vier float-Werte)
type FixedAnchor struct {
	_tab flatbuffers.Table
}

func (rcv *FixedAnchor) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *FixedAnchor) XCenter() float32 {
	return rcv._tab.GetFloat32Slot(4, 0)
}

func (rcv *FixedAnchor) YCenter() float32 {
	return rcv._tab.GetFloat32Slot(6, 0)
}

func (rcv *FixedAnchor) Width() float32 {
	return rcv._tab.GetFloat32Slot(8, 0)
}

func (rcv *FixedAnchor) Height() float32 {
	return rcv._tab.GetFloat32Slot(10, 0)
}

func FixedAnchorStart(builder *flatbuffers.Builder) {
	builder.StartObject(4)
}

func FixedAnchorAddXCenter(builder *flatbuffers.Builder, xCenter float32) {
	builder.PrependFloat32Slot(0, xCenter, 0)
}

func FixedAnchorAddYCenter(builder *flatbuffers.Builder, yCenter float32) {
	builder.PrependFloat32Slot(1, yCenter, 0)
}

func FixedAnchorAddWidth(builder *flatbuffers.Builder, width float32) {
	builder.PrependFloat32Slot(2, width, 0)
}

func FixedAnchorAddHeight(builder *flatbuffers.Builder, height float32) {
	builder.PrependFloat32Slot(3, height, 0)
}

func FixedAnchorEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
