// model_metadata.go - ModelMetadata Root-Table
//
// Feld-Slots laut Schema: name=0, description=1, version=2,
// subgraph_metadata=3, author=4, license=5, associated_files=6,
// min_parser_version=7
package metadata

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// ModelMetadata ist die Wurzel des Metadata-Baums
type ModelMetadata struct {
	_tab flatbuffers.Table
}

func (rcv *ModelMetadata) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *ModelMetadata) Name() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func (rcv *ModelMetadata) Description() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func (rcv *ModelMetadata) Version() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

// HasSubgraphMetadata meldet, ob der Subgraph-Vektor vorhanden ist
func (rcv *ModelMetadata) HasSubgraphMetadata() bool {
	return rcv._tab.Offset(10) != 0
}

func (rcv *ModelMetadata) SubgraphMetadata(obj *SubGraphMetadata, j int) bool {
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

func (rcv *ModelMetadata) SubgraphMetadataLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *ModelMetadata) Author() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(12))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func (rcv *ModelMetadata) License() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(14))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

// HasAssociatedFiles meldet, ob der Top-Level Dateivektor vorhanden ist
func (rcv *ModelMetadata) HasAssociatedFiles() bool {
	return rcv._tab.Offset(16) != 0
}

func (rcv *ModelMetadata) AssociatedFiles(obj *AssociatedFile, j int) bool {
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

func (rcv *ModelMetadata) AssociatedFilesLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(16))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *ModelMetadata) MinParserVersion() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(18))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func ModelMetadataStart(builder *flatbuffers.Builder) {
	builder.StartObject(8)
}

func ModelMetadataAddName(builder *flatbuffers.Builder, name flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, name, 0)
}

func ModelMetadataAddDescription(builder *flatbuffers.Builder, description flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, description, 0)
}

func ModelMetadataAddVersion(builder *flatbuffers.Builder, version flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(2, version, 0)
}

func ModelMetadataAddSubgraphMetadata(builder *flatbuffers.Builder, subgraphMetadata flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(3, subgraphMetadata, 0)
}

func ModelMetadataStartSubgraphMetadataVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func ModelMetadataAddAuthor(builder *flatbuffers.Builder, author flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(4, author, 0)
}

func ModelMetadataAddLicense(builder *flatbuffers.Builder, license flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(5, license, 0)
}

func ModelMetadataAddAssociatedFiles(builder *flatbuffers.Builder, associatedFiles flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(6, associatedFiles, 0)
}

func ModelMetadataStartAssociatedFilesVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func ModelMetadataAddMinParserVersion(builder *flatbuffers.Builder, minParserVersion flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(7, minParserVersion, 0)
}

func ModelMetadataEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
