// model.go - Model Root-Table (TFLite Schema, Table "Model")
//
// Feld-Slots folgen dem offiziellen Schema (v3c):
// version=0, operator_codes=1, subgraphs=2, description=3, buffers=4,
// metadata_buffer=5, metadata=6, signature_defs=7
package tflite

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// Model ist die Root-Table eines .tflite Containers
type Model struct {
	_tab flatbuffers.Table
}

func (rcv *Model) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Model) Table() flatbuffers.Table {
	return rcv._tab
}

// HasBuffers meldet, ob der Container ueberhaupt einen Buffer-Pool traegt
// (abwesender Vektor, nicht leerer Vektor)
func (rcv *Model) HasBuffers() bool {
	return rcv._tab.Offset(12) != 0
}

func (rcv *Model) Buffers(obj *Buffer, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(12))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * 4
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func (rcv *Model) BuffersLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(12))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

// HasMetadata meldet, ob die Metadata-Liste vorhanden ist
func (rcv *Model) HasMetadata() bool {
	return rcv._tab.Offset(16) != 0
}

func (rcv *Model) Metadata(obj *Metadata, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(16))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * 4
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func (rcv *Model) MetadataLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(16))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func ModelStart(builder *flatbuffers.Builder) {
	builder.StartObject(8)
}

func ModelAddBuffers(builder *flatbuffers.Builder, buffers flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(4, buffers, 0)
}

func ModelStartBuffersVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func ModelAddMetadata(builder *flatbuffers.Builder, metadata flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(6, metadata, 0)
}

func ModelStartMetadataVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func ModelEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
