// Package fbsutil - Sicherheits-Helfer fuer FlatBuffers Root-Tables
//
// Die Go FlatBuffers-Runtime hat keinen Verifier: GetRootAs auf
// beschaedigten Bytes panict oder liest Unsinn. Dieses Modul prueft
// die Root-Struktur (Root-Offset, VTable-Position und -Laenge) und
// liefert einen Fehler statt eines Panics.
//
// Dieses Modul enthaelt:
// - Root: Validiert einen Buffer und gibt die Root-Table zurueck
// - ErrMalformed: Sentinel-Fehler fuer beschaedigte Buffer
package fbsutil

import (
	"errors"
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"
)

// ErrMalformed wird fuer Buffer zurueckgegeben, die keine gueltige
// FlatBuffers Root-Table tragen
var ErrMalformed = errors.New("malformed flatbuffer")

// Root validiert die Root-Table eines FlatBuffers-Buffers
// Geprueft werden Root-Offset, VTable-Offset und VTable-Laenge;
// Feld-Zugriffe innerhalb der Table uebernimmt die Runtime
func Root(buf []byte) (flatbuffers.Table, error) {
	var tab flatbuffers.Table

	if len(buf) < flatbuffers.SizeUOffsetT {
		return tab, fmt.Errorf("%w: buffer too small (%d bytes)", ErrMalformed, len(buf))
	}

	root := flatbuffers.GetUOffsetT(buf)
	if int(root) < flatbuffers.SizeUOffsetT || int(root)+flatbuffers.SizeSOffsetT > len(buf) {
		return tab, fmt.Errorf("%w: root table offset %d out of range", ErrMalformed, root)
	}

	vtable := int64(root) - int64(flatbuffers.GetSOffsetT(buf[root:]))
	if vtable < 0 || vtable+2*flatbuffers.SizeVOffsetT > int64(len(buf)) {
		return tab, fmt.Errorf("%w: vtable offset %d out of range", ErrMalformed, vtable)
	}

	vlen := int64(flatbuffers.GetVOffsetT(buf[vtable:]))
	if vlen < 2*flatbuffers.SizeVOffsetT || vlen%2 != 0 || vtable+vlen > int64(len(buf)) {
		return tab, fmt.Errorf("%w: vtable length %d out of range", ErrMalformed, vlen)
	}

	tab.Bytes = buf
	tab.Pos = root
	return tab, nil
}
