// Package tflite - Zugriffsschicht fuer das TFLite Model-Schema (Schema A)
//
// FlatBuffers Table-Bindings im flatc-Stil, beschraenkt auf die Felder,
// die der Metadata-Dump liest: die benannte Metadata-Liste und den
// Buffer-Pool des Containers. Builder-Funktionen sind enthalten, damit
// Tests Container im Speicher erzeugen koennen.
//
// Dieses Modul enthaelt:
// - RootModel: Validierter Einstieg in einen Model-Buffer
package tflite

import (
	"fmt"

	"github.com/7blacky7/tflite-metadump/fs/util/fbsutil"
)

// RootModel validiert den Buffer und gibt die Model Root-Table zurueck
func RootModel(buf []byte) (*Model, error) {
	tab, err := fbsutil.Root(buf)
	if err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}

	m := &Model{}
	m.Init(tab.Bytes, tab.Pos)
	return m, nil
}
