// Package yamlutil converts between YAML and JSON for RestDoc documents.
// Callers author RestDoc specs in either format; the rest of this module
// only ever sees JSON.
package yamlutil

import (
	"bytes"
	"io"

	"sigs.k8s.io/yaml"
)

// YAMLToJSON converts data, which may already be JSON (a valid subset of
// YAML), to JSON.
func YAMLToJSON(data []byte) ([]byte, error) {
	return yaml.YAMLToJSON(data)
}

// JSONToYAML converts JSON to YAML, used by tooling that renders a loaded
// Document back out for inspection.
func JSONToYAML(data []byte) ([]byte, error) {
	return yaml.JSONToYAML(data)
}

// EncodeYAMLToJSON reads r in full and returns an io.Reader over its JSON
// encoding, letting a caller stream a RestDoc document from a file or HTTP
// body of either format into the JSON decoders the rest of this module
// uses.
func EncodeYAMLToJSON(r io.Reader) (io.Reader, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	b, err = YAMLToJSON(b)
	if err != nil {
		return nil, err
	}
	return bytes.NewBuffer(b), nil
}
