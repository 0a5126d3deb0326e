// Package metadump - Kern des Metadata-Dumps
//
// Dieses Modul enthaelt den Container-Locator:
// - Extract: Findet den TFLITE_METADATA Eintrag und liefert den Payload
// - Fehler-Sentinels fuer strukturelle Abwesenheit auf Container-Ebene
//
// Die Darstellung des dekodierten Baums uebernimmt render.go
package metadump

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/7blacky7/tflite-metadump/fs/tflite"
)

// MetadataEntryName ist der Name des Metadata-Eintrags im Container
const MetadataEntryName = "TFLITE_METADATA"

// DetectorMetadataName ist das einzige CustomMetadata-Tag mit bekanntem Sub-Decoder
const DetectorMetadataName = "DETECTOR_METADATA"

var (
	// ErrNoMetadata: der Container traegt gar keine Metadata-Liste
	ErrNoMetadata = errors.New("model contains no metadata entries")

	// ErrMetadataNotFound: kein Eintrag der Liste heisst TFLITE_METADATA
	ErrMetadataNotFound = errors.New("model contains no `TFLITE_METADATA` entry")

	// ErrNoBuffers: der Container traegt keinen Buffer-Pool
	ErrNoBuffers = errors.New("model contains no buffer list")
)

// Extract findet den TFLITE_METADATA Eintrag eines .tflite Containers
// und liefert dessen rohen Payload aus dem Buffer-Pool
//
// Ein Buffer-Index ausserhalb des Pools oder ein Buffer ohne Daten
// ergibt einen leeren Payload, keinen Fehler; die Dekodierung des
// leeren Payloads schlaegt dann in der naechsten Stufe sauber fehl
func Extract(buf []byte) ([]byte, error) {
	model, err := tflite.RootModel(buf)
	if err != nil {
		return nil, fmt.Errorf("decoding model: %w", err)
	}

	if !model.HasMetadata() {
		return nil, ErrNoMetadata
	}

	var entry tflite.Metadata
	found := false
	for j := 0; j < model.MetadataLength(); j++ {
		if model.Metadata(&entry, j) && string(entry.Name()) == MetadataEntryName {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrMetadataNotFound
	}

	if !model.HasBuffers() {
		return nil, ErrNoBuffers
	}

	idx := int(entry.Buffer())
	var buffer tflite.Buffer
	if idx >= model.BuffersLength() || !model.Buffers(&buffer, idx) {
		slog.Debug("metadata entry points outside the buffer pool", "index", idx, "buffers", model.BuffersLength())
		return []byte{}, nil
	}

	payload := buffer.DataBytes()
	if payload == nil {
		payload = []byte{}
	}

	slog.Debug("extracted metadata payload", "index", idx, "bytes", len(payload))
	return payload, nil
}
