// Package metadata - Zugriffsschicht fuer das TFLite Metadata-Schema (Schema B)
//
// FlatBuffers Table-Bindings im flatc-Stil fuer den Metadata-Baum:
// ModelMetadata mit Subgraph-, Tensor-, AssociatedFile-, ProcessUnit-,
// TensorGroup- und CustomMetadata-Strukturen. Alle Felder sind laut
// Schema optional; Abwesenheit wird ueber nil bzw. Has*-Helfer
// signalisiert, nie als Fehler. Builder-Funktionen sind enthalten,
// damit Tests Metadata-Payloads im Speicher erzeugen koennen.
//
// Dieses Modul enthaelt:
// - RootModelMetadata: Validierter Einstieg in einen Metadata-Payload
package metadata

import (
	"fmt"

	"github.com/7blacky7/tflite-metadump/fs/util/fbsutil"
)

// RootModelMetadata validiert den Payload und gibt die Root-Table zurueck
func RootModelMetadata(buf []byte) (*ModelMetadata, error) {
	tab, err := fbsutil.Root(buf)
	if err != nil {
		return nil, fmt.Errorf("metadata: %w", err)
	}

	m := &ModelMetadata{}
	m.Init(tab.Bytes, tab.Pos)
	return m, nil
}
