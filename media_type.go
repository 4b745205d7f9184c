package restdoc

import "encoding/json"

// MediaTypeEntry names a schema (by reference into Document.Schemas) that
// an accepts/response.types entry may match against (spec.md §4.6's
// "media-type entry {type, schema}" — named Schema here since "type" is
// the MediaTypeEntry's own JSON-Schema-sibling discriminator, not RestDoc's).
type MediaTypeEntry struct {
	Schema  string          `json:"schema,omitempty"`
	Example json.RawMessage `json:"example,omitempty"`
}
