// buffer.go - Buffer Table (roher Byte-Bereich im Buffer-Pool)
package tflite

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// Buffer ist ein Eintrag des Buffer-Pools; Data kann leer sein
type Buffer struct {
	_tab flatbuffers.Table
}

func (rcv *Buffer) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Buffer) DataBytes() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func (rcv *Buffer) DataLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func BufferStart(builder *flatbuffers.Builder) {
	builder.StartObject(1)
}

func BufferAddData(builder *flatbuffers.Builder, data flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, data, 0)
}

func BufferEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
