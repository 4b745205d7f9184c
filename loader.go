package restdoc

import (
	"encoding/json"
	"io"

	"github.com/lindenlab/restdoc/yamlutil"
	"github.com/tidwall/gjson"
)

// Load parses data (JSON or YAML — yamlutil detects and converts the
// latter) into a Document. Load only checks structural well-formedness
// and the restDocVersion gate; resource paths, methods, validation
// patterns and inline schemas are checked when the Document is compiled
// by New. Duplicate resources are not rejected by either: they surface as
// ErrAmbiguousResource when Resolve matches a path against them.
func Load(data []byte) (*Document, error) {
	jsonData, err := yamlutil.YAMLToJSON(data)
	if err != nil {
		return nil, newError(err, "", "document")
	}

	resources := gjson.GetBytes(jsonData, "resources")
	if !resources.Exists() || !resources.IsArray() {
		return nil, newError(ErrMissingResources, "", "")
	}

	doc := &Document{}
	if err := json.Unmarshal(jsonData, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// LoadReader reads r in full and Loads it, accepting either format from a
// file or HTTP response body.
func LoadReader(r io.Reader) (*Document, error) {
	jr, err := yamlutil.EncodeYAMLToJSON(r)
	if err != nil {
		return nil, newError(err, "", "document")
	}
	data, err := io.ReadAll(jr)
	if err != nil {
		return nil, err
	}
	return Load(data)
}
