// associated_file.go - AssociatedFile Table und AssociatedFileType Enum
//
// Feld-Slots laut Schema: name=0, description=1, type=2, locale=3,
// version=4
package metadata

import (
	"strconv"

	flatbuffers "github.com/google/flatbuffers/go"
)

// AssociatedFileType klassifiziert eine mitgelieferte Datei
type AssociatedFileType byte

const (
	AssociatedFileTypeUNKNOWN                       AssociatedFileType = 0
	AssociatedFileTypeDESCRIPTIONS                  AssociatedFileType = 1
	AssociatedFileTypeTENSOR_AXIS_LABELS            AssociatedFileType = 2
	AssociatedFileTypeTENSOR_VALUE_LABELS           AssociatedFileType = 3
	AssociatedFileTypeTENSOR_AXIS_SCORE_CALIBRATION AssociatedFileType = 4
	AssociatedFileTypeVOCABULARY                    AssociatedFileType = 5
	AssociatedFileTypeSCANN_INDEX_FILE              AssociatedFileType = 6
)

var EnumNamesAssociatedFileType = map[AssociatedFileType]string{
	AssociatedFileTypeUNKNOWN:                       "UNKNOWN",
	AssociatedFileTypeDESCRIPTIONS:                  "DESCRIPTIONS",
	AssociatedFileTypeTENSOR_AXIS_LABELS:            "TENSOR_AXIS_LABELS",
	AssociatedFileTypeTENSOR_VALUE_LABELS:           "TENSOR_VALUE_LABELS",
	AssociatedFileTypeTENSOR_AXIS_SCORE_CALIBRATION: "TENSOR_AXIS_SCORE_CALIBRATION",
	AssociatedFileTypeVOCABULARY:                    "VOCABULARY",
	AssociatedFileTypeSCANN_INDEX_FILE:              "SCANN_INDEX_FILE",
}

func (v AssociatedFileType) String() string {
	if s, ok := EnumNamesAssociatedFileType[v]; ok {
		return s
	}
	return "AssociatedFileType(" + strconv.FormatInt(int64(v), 10) + ")"
}

// AssociatedFile beschreibt eine zum Modell gehoerende Datei
type AssociatedFile struct {
	_tab flatbuffers.Table
}

func (rcv *AssociatedFile) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *AssociatedFile) Name() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func (rcv *AssociatedFile) Description() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

// Type hat immer einen Wert; abwesend bedeutet UNKNOWN (Schema-Default)
func (rcv *AssociatedFile) Type() AssociatedFileType {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return AssociatedFileType(rcv._tab.GetByte(o + rcv._tab.Pos))
	}
	return AssociatedFileTypeUNKNOWN
}

func (rcv *AssociatedFile) Locale() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func (rcv *AssociatedFile) Version() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(12))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func AssociatedFileStart(builder *flatbuffers.Builder) {
	builder.StartObject(5)
}

func AssociatedFileAddName(builder *flatbuffers.Builder, name flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, name, 0)
}

func AssociatedFileAddDescription(builder *flatbuffers.Builder, description flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, description, 0)
}

func AssociatedFileAddType(builder *flatbuffers.Builder, type_ AssociatedFileType) {
	builder.PrependByteSlot(2, byte(type_), 0)
}

func AssociatedFileAddLocale(builder *flatbuffers.Builder, locale flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(3, locale, 0)
}

func AssociatedFileAddVersion(builder *flatbuffers.Builder, version flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(4, version, 0)
}

func AssociatedFileEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
