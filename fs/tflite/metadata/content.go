// content.go - Content Table mit ContentProperties Union
//
// Die Union ist im Schema geschlossen: Feature, Image, BoundingBox und
// Audio. Content-Slots: content_properties_type=0,
// content_properties=1, range=2
package metadata

import (
	"strconv"

	flatbuffers "github.com/google/flatbuffers/go"
)

// ContentProperties ist der Union-Diskriminator eines Content
type ContentProperties byte

const (
	ContentPropertiesNONE                  ContentProperties = 0
	ContentPropertiesFeatureProperties     ContentProperties = 1
	ContentPropertiesImageProperties       ContentProperties = 2
	ContentPropertiesBoundingBoxProperties ContentProperties = 3
	ContentPropertiesAudioProperties       ContentProperties = 4
)

var EnumNamesContentProperties = map[ContentProperties]string{
	ContentPropertiesNONE:                  "NONE",
	ContentPropertiesFeatureProperties:     "FeatureProperties",
	ContentPropertiesImageProperties:       "ImageProperties",
	ContentPropertiesBoundingBoxProperties: "BoundingBoxProperties",
	ContentPropertiesAudioProperties:       "AudioProperties",
}

func (v ContentProperties) String() string {
	if s, ok := EnumNamesContentProperties[v]; ok {
		return s
	}
	return "ContentProperties(" + strconv.FormatInt(int64(v), 10) + ")"
}

// ColorSpaceType klassifiziert den Farbraum eines Bild-Tensors
type ColorSpaceType byte

const (
	ColorSpaceTypeUNKNOWN   ColorSpaceType = 0
	ColorSpaceTypeRGB       ColorSpaceType = 1
	ColorSpaceTypeGRAYSCALE ColorSpaceType = 2
)

var EnumNamesColorSpaceType = map[ColorSpaceType]string{
	ColorSpaceTypeUNKNOWN:   "UNKNOWN",
	ColorSpaceTypeRGB:       "RGB",
	ColorSpaceTypeGRAYSCALE: "GRAYSCALE",
}

func (v ColorSpaceType) String() string {
	if s, ok := EnumNamesColorSpaceType[v]; ok {
		return s
	}
	return "ColorSpaceType(" + strconv.FormatInt(int64(v), 10) + ")"
}

// BoundingBoxType klassifiziert die Kodierung einer Bounding-Box
type BoundingBoxType byte

const (
	BoundingBoxTypeUNKNOWN    BoundingBoxType = 0
	BoundingBoxTypeBOUNDARIES BoundingBoxType = 1
	BoundingBoxTypeUPPER_LEFT BoundingBoxType = 2
	BoundingBoxTypeCENTER     BoundingBoxType = 3
)

var EnumNamesBoundingBoxType = map[BoundingBoxType]string{
	BoundingBoxTypeUNKNOWN:    "UNKNOWN",
	BoundingBoxTypeBOUNDARIES: "BOUNDARIES",
	BoundingBoxTypeUPPER_LEFT: "UPPER_LEFT",
	BoundingBoxTypeCENTER:     "CENTER",
}

func (v BoundingBoxType) String() string {
	if s, ok := EnumNamesBoundingBoxType[v]; ok {
		return s
	}
	return "BoundingBoxType(" + strconv.FormatInt(int64(v), 10) + ")"
}

// CoordinateType klassifiziert die Koordinaten-Einheit
type CoordinateType byte

const (
	CoordinateTypeRATIO CoordinateType = 0
	CoordinateTypePIXEL CoordinateType = 1
)

var EnumNamesCoordinateType = map[CoordinateType]string{
	CoordinateTypeRATIO: "RATIO",
	CoordinateTypePIXEL: "PIXEL",
}

func (v CoordinateType) String() string {
	if s, ok := EnumNamesCoordinateType[v]; ok {
		return s
	}
	return "CoordinateType(" + strconv.FormatInt(int64(v), 10) + ")"
}

// Content beschreibt den Inhaltstyp eines Tensors
type Content struct {
	_tab flatbuffers.Table
}

func (rcv *Content) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Content) ContentPropertiesType() ContentProperties {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return ContentProperties(rcv._tab.GetByte(o + rcv._tab.Pos))
	}
	return ContentPropertiesNONE
}

func (rcv *Content) ContentProperties(obj *flatbuffers.Table) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		rcv._tab.Union(obj, o)
		return true
	}
	return false
}

func (rcv *Content) Range(obj *ValueRange) *ValueRange {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		x := rcv._tab.Indirect(o + rcv._tab.Pos)
		if obj == nil {
			obj = new(ValueRange)
		}
		obj.Init(rcv._tab.Bytes, x)
		return obj
	}
	return nil
}

func ContentStart(builder *flatbuffers.Builder) {
	builder.StartObject(3)
}

func ContentAddContentPropertiesType(builder *flatbuffers.Builder, contentPropertiesType ContentProperties) {
	builder.PrependByteSlot(0, byte(contentPropertiesType), 0)
}

func ContentAddContentProperties(builder *flatbuffers.Builder, contentProperties flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, contentProperties, 0)
}

func ContentAddRange(builder *flatbuffers.Builder, range_ flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(2, range_, 0)
}

func ContentEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// ValueRange: min=0, max=1
type ValueRange struct {
	_tab flatbuffers.Table
}

func (rcv *ValueRange) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *ValueRange) Min() int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *ValueRange) Max() int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return 0
}

func ValueRangeStart(builder *flatbuffers.Builder) {
	builder.StartObject(2)
}

func ValueRangeAddMin(builder *flatbuffers.Builder, min int32) {
	builder.PrependInt32Slot(0, min, 0)
}

func ValueRangeAddMax(builder *flatbuffers.Builder, max int32) {
	builder.PrependInt32Slot(1, max, 0)
}

func ValueRangeEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// FeatureProperties ist eine leere Marker-Table
type FeatureProperties struct {
	_tab flatbuffers.Table
}

func (rcv *FeatureProperties) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func FeaturePropertiesStart(builder *flatbuffers.Builder) {
	builder.StartObject(0)
}

func FeaturePropertiesEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// ImageProperties: color_space=0, default_size=1
type ImageProperties struct {
	_tab flatbuffers.Table
}

func (rcv *ImageProperties) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *ImageProperties) ColorSpace() ColorSpaceType {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return ColorSpaceType(rcv._tab.GetByte(o + rcv._tab.Pos))
	}
	return ColorSpaceTypeUNKNOWN
}

func (rcv *ImageProperties) DefaultSize(obj *ImageSize) *ImageSize {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		x := rcv._tab.Indirect(o + rcv._tab.Pos)
		if obj == nil {
			obj = new(ImageSize)
		}
		obj.Init(rcv._tab.Bytes, x)
		return obj
	}
	return nil
}

func ImagePropertiesStart(builder *flatbuffers.Builder) {
	builder.StartObject(2)
}

func ImagePropertiesAddColorSpace(builder *flatbuffers.Builder, colorSpace ColorSpaceType) {
	builder.PrependByteSlot(0, byte(colorSpace), 0)
}

func ImagePropertiesAddDefaultSize(builder *flatbuffers.Builder, defaultSize flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, defaultSize, 0)
}

func ImagePropertiesEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// ImageSize: width=0, height=1
type ImageSize struct {
	_tab flatbuffers.Table
}

func (rcv *ImageSize) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *ImageSize) Width() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *ImageSize) Height() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func ImageSizeStart(builder *flatbuffers.Builder) {
	builder.StartObject(2)
}

func ImageSizeAddWidth(builder *flatbuffers.Builder, width uint32) {
	builder.PrependUint32Slot(0, width, 0)
}

func ImageSizeAddHeight(builder *flatbuffers.Builder, height uint32) {
	builder.PrependUint32Slot(1, height, 0)
}

func ImageSizeEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// BoundingBoxProperties: index=0, type=1, coordinate_type=2
type BoundingBoxProperties struct {
	_tab flatbuffers.Table
}

func (rcv *BoundingBoxProperties) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *BoundingBoxProperties) Index(j int) uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.GetUint32(a + flatbuffers.UOffsetT(j*4))
	}
	return 0
}

func (rcv *BoundingBoxProperties) IndexLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *BoundingBoxProperties) Type() BoundingBoxType {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return BoundingBoxType(rcv._tab.GetByte(o + rcv._tab.Pos))
	}
	return BoundingBoxTypeUNKNOWN
}

func (rcv *BoundingBoxProperties) CoordinateType() CoordinateType {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return CoordinateType(rcv._tab.GetByte(o + rcv._tab.Pos))
	}
	return CoordinateTypeRATIO
}

func BoundingBoxPropertiesStart(builder *flatbuffers.Builder) {
	builder.StartObject(3)
}

func BoundingBoxPropertiesAddIndex(builder *flatbuffers.Builder, index flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, index, 0)
}

func BoundingBoxPropertiesStartIndexVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func BoundingBoxPropertiesAddType(builder *flatbuffers.Builder, type_ BoundingBoxType) {
	builder.PrependByteSlot(1, byte(type_), 0)
}

func BoundingBoxPropertiesAddCoordinateType(builder *flatbuffers.Builder, coordinateType CoordinateType) {
	builder.PrependByteSlot(2, byte(coordinateType), 0)
}

func BoundingBoxPropertiesEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// AudioProperties: sample_rate=0, channels=1
type AudioProperties struct {
	_tab flatbuffers.Table
}

func (rcv *AudioProperties) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *AudioProperties) SampleRate() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *AudioProperties) Channels() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func AudioPropertiesStart(builder *flatbuffers.Builder) {
	builder.StartObject(2)
}

func AudioPropertiesAddSampleRate(builder *flatbuffers.Builder, sampleRate uint32) {
	builder.PrependUint32Slot(0, sampleRate, 0)
}

func AudioPropertiesAddChannels(builder *flatbuffers.Builder, channels uint32) {
	builder.PrependUint32Slot(1, channels, 0)
}

func AudioPropertiesEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
