// subgraph_metadata.go - SubGraphMetadata Table
//
// Feld-Slots laut Schema: name=0, description=1,
// input_tensor_metadata=2, output_tensor_metadata=3,
// associated_files=4, input_process_units=5, output_process_units=6,
// input_tensor_groups=7, output_tensor_groups=8, custom_metadata=9
package metadata

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// SubGraphMetadata beschreibt einen Subgraph des Modells
type SubGraphMetadata struct {
	_tab flatbuffers.Table
}

func (rcv *SubGraphMetadata) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *SubGraphMetadata) Name() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func (rcv *SubGraphMetadata) Description() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func (rcv *SubGraphMetadata) HasInputTensorMetadata() bool {
	return rcv._tab.Offset(8) != 0
}

func (rcv *SubGraphMetadata) InputTensorMetadata(obj *TensorMetadata, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * 4
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func (rcv *SubGraphMetadata) InputTensorMetadataLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *SubGraphMetadata) HasOutputTensorMetadata() bool {
	return rcv._tab.Offset(10) != 0
}

func (rcv *SubGraphMetadata) OutputTensorMetadata(obj *TensorMetadata, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * 4
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func (rcv *SubGraphMetadata) OutputTensorMetadataLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

// HasAssociatedFiles meldet den Subgraph-eigenen Dateivektor
// Der Renderer liest fuer Subgraphs bewusst die Top-Level-Liste,
// dieser Zugriff bleibt fuer Tests und Vollstaendigkeit erhalten
func (rcv *SubGraphMetadata) HasAssociatedFiles() bool {
	return rcv._tab.Offset(12) != 0
}

func (rcv *SubGraphMetadata) AssociatedFiles(obj *AssociatedFile, j int) bool {
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

func (rcv *SubGraphMetadata) AssociatedFilesLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(12))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *SubGraphMetadata) HasInputProcessUnits() bool {
	return rcv._tab.Offset(14) != 0
}

func (rcv *SubGraphMetadata) InputProcessUnits(obj *ProcessUnit, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(14))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * 4
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func (rcv *SubGraphMetadata) InputProcessUnitsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(14))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *SubGraphMetadata) HasOutputProcessUnits() bool {
	return rcv._tab.Offset(16) != 0
}

func (rcv *SubGraphMetadata) OutputProcessUnits(obj *ProcessUnit, j int) bool {
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

func (rcv *SubGraphMetadata) OutputProcessUnitsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(16))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *SubGraphMetadata) HasInputTensorGroups() bool {
	return rcv._tab.Offset(18) != 0
}

func (rcv *SubGraphMetadata) InputTensorGroups(obj *TensorGroup, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(18))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * 4
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func (rcv *SubGraphMetadata) InputTensorGroupsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(18))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *SubGraphMetadata) HasOutputTensorGroups() bool {
	return rcv._tab.Offset(20) != 0
}

func (rcv *SubGraphMetadata) OutputTensorGroups(obj *TensorGroup, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(20))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * 4
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func (rcv *SubGraphMetadata) OutputTensorGroupsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(20))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *SubGraphMetadata) HasCustomMetadata() bool {
	return rcv._tab.Offset(22) != 0
}

func (rcv *SubGraphMetadata) CustomMetadata(obj *CustomMetadata, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(22))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * 4
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func (rcv *SubGraphMetadata) CustomMetadataLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(22))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func SubGraphMetadataStart(builder *flatbuffers.Builder) {
	builder.StartObject(10)
}

func SubGraphMetadataAddName(builder *flatbuffers.Builder, name flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, name, 0)
}

func SubGraphMetadataAddDescription(builder *flatbuffers.Builder, description flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, description, 0)
}

func SubGraphMetadataAddInputTensorMetadata(builder *flatbuffers.Builder, inputTensorMetadata flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(2, inputTensorMetadata, 0)
}

func SubGraphMetadataStartInputTensorMetadataVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func SubGraphMetadataAddOutputTensorMetadata(builder *flatbuffers.Builder, outputTensorMetadata flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(3, outputTensorMetadata, 0)
}

func SubGraphMetadataStartOutputTensorMetadataVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func SubGraphMetadataAddAssociatedFiles(builder *flatbuffers.Builder, associatedFiles flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(4, associatedFiles, 0)
}

func SubGraphMetadataStartAssociatedFilesVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func SubGraphMetadataAddInputProcessUnits(builder *flatbuffers.Builder, inputProcessUnits flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(5, inputProcessUnits, 0)
}

func SubGraphMetadataStartInputProcessUnitsVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func SubGraphMetadataAddOutputProcessUnits(builder *flatbuffers.Builder, outputProcessUnits flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(6, outputProcessUnits, 0)
}

func SubGraphMetadataStartOutputProcessUnitsVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func SubGraphMetadataAddInputTensorGroups(builder *flatbuffers.Builder, inputTensorGroups flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(7, inputTensorGroups, 0)
}

func SubGraphMetadataStartInputTensorGroupsVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func SubGraphMetadataAddOutputTensorGroups(builder *flatbuffers.Builder, outputTensorGroups flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(8, outputTensorGroups, 0)
}

func SubGraphMetadataStartOutputTensorGroupsVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func SubGraphMetadataAddCustomMetadata(builder *flatbuffers.Builder, customMetadata flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(9, customMetadata, 0)
}

func SubGraphMetadataStartCustomMetadataVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func SubGraphMetadataEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
