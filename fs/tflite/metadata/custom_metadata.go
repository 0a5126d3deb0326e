// custom_metadata.go - CustomMetadata Table (Name-Tag plus Byte-Blob)
package metadata

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// CustomMetadata traegt einen benannten, opaken Byte-Blob
// Die Bedeutung des Blobs ergibt sich allein aus dem Namen
type CustomMetadata struct {
	_tab flatbuffers.Table
}

func (rcv *CustomMetadata) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *CustomMetadata) Name() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func (rcv *CustomMetadata) DataBytes() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func (rcv *CustomMetadata) DataLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func CustomMetadataStart(builder *flatbuffers.Builder) {
	builder.StartObject(2)
}

func CustomMetadataAddName(builder *flatbuffers.Builder, name flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, name, 0)
}

func CustomMetadataAddData(builder *flatbuffers.Builder, data flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, data, 0)
}

func CustomMetadataEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
