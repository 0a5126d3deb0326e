// tensor_group.go - TensorGroup Table (benanntes Tensor-Buendel)
package metadata

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// TensorGroup fasst zusammengehoerige Tensoren unter einem Namen
type TensorGroup struct {
	_tab flatbuffers.Table
}

func (rcv *TensorGroup) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *TensorGroup) Name() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func (rcv *TensorGroup) TensorNames(j int) []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.ByteVector(a + flatbuffers.UOffsetT(j*4))
	}
	return nil
}

func (rcv *TensorGroup) TensorNamesLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func TensorGroupStart(builder *flatbuffers.Builder) {
	builder.StartObject(2)
}

func TensorGroupAddName(builder *flatbuffers.Builder, name flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, name, 0)
}

func TensorGroupAddTensorNames(builder *flatbuffers.Builder, tensorNames flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, tensorNames, 0)
}

func TensorGroupStartTensorNamesVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func TensorGroupEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
