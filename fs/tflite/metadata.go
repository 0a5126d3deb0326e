// metadata.go - Metadata Table (benannter Eintrag mit Buffer-Index)
package tflite

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// Metadata ist ein benannter Eintrag der Model-Metadata-Liste
// Der Payload liegt im Buffer-Pool unter dem Index Buffer()
type Metadata struct {
	_tab flatbuffers.Table
}

func (rcv *Metadata) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Metadata) Name() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func (rcv *Metadata) Buffer() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func MetadataStart(builder *flatbuffers.Builder) {
	builder.StartObject(2)
}

func MetadataAddName(builder *flatbuffers.Builder, name flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, name, 0)
}

func MetadataAddBuffer(builder *flatbuffers.Builder, buffer uint32) {
	builder.PrependUint32Slot(1, buffer, 0)
}

func MetadataEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
