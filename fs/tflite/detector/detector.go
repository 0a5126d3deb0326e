// Package detector - Zugriffsschicht fuer das Object-Detector-Schema (Schema C)
//
// FlatBuffers Table-Bindings im flatc-Stil fuer die MediaPipe
// ObjectDetectorOptions: Decoding-Optionen und die (potenziell sehr
// grosse) Liste fixer SSD-Anchors. Payloads dieses Schemas liegen als
// opake Blobs in CustomMetadata-Eintraegen mit dem Tag
// DETECTOR_METADATA.
//
// Dieses Modul enthaelt:
// - RootObjectDetectorOptions: Validierter Einstieg in einen Payload
package detector

import (
	"fmt"

	"github.com/7blacky7/tflite-metadump/fs/util/fbsutil"
)

// RootObjectDetectorOptions validiert den Payload und gibt die Root-Table zurueck
func RootObjectDetectorOptions(buf []byte) (*ObjectDetectorOptions, error) {
	tab, err := fbsutil.Root(buf)
	if err != nil {
		return nil, fmt.Errorf("detector options: %w", err)
	}

	o := &ObjectDetectorOptions{}
	o.Init(tab.Bytes, tab.Pos)
	return o, nil
}
