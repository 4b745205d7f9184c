package restdoc

import "encoding/json"

// SchemaEntry is one entry of a Document's schemas map (spec.md §3's
// Schema model): `{type: "inline"|"url", schema?: json-schema}`. Only a
// SchemaInline entry with a non-empty Schema body can be validated;
// everything else (SchemaURL, or an inline entry missing its body) is
// opaque and handled by C7's lazy_schema_matching policy (spec.md §4.6
// steps 1-2).
type SchemaEntry struct {
	Type    SchemaType      `json:"type"`
	Schema  json.RawMessage `json:"schema,omitempty"`
	URL     string          `json:"url,omitempty"`
	Example json.RawMessage `json:"example,omitempty"`
}

// Validatable reports whether e can be handed to the external JSON-schema
// validator.
func (e *SchemaEntry) Validatable() bool {
	return e != nil && e.Type == SchemaInline && len(e.Schema) > 0
}

// SchemaMap maps a schema name to its entry, in declaration order (see
// ordered_map.go). Declaration order matters here only for deterministic
// compiler registration order, not for spec semantics.
type SchemaMap = OrderedMap[*SchemaEntry]
