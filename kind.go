package restdoc

// SchemaType distinguishes an inline JSON-schema fragment from an opaque
// external reference (spec.md §3's Schema model).
type SchemaType uint8

const (
	// SchemaNil is the zero value of SchemaType.
	SchemaNil SchemaType = iota
	// SchemaInline represents a schema with an embedded JSON-schema body.
	SchemaInline
	// SchemaURL represents an external schema, never validated directly.
	SchemaURL
)

var schemaTypeNames = map[SchemaType]string{
	SchemaNil:    "",
	SchemaInline: "inline",
	SchemaURL:    "url",
}

var schemaTypeValues = map[string]SchemaType{
	"inline": SchemaInline,
	"url":    SchemaURL,
}

func (t SchemaType) String() string {
	return schemaTypeNames[t]
}

func (t SchemaType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *SchemaType) UnmarshalText(b []byte) error {
	*t = schemaTypeValues[string(b)]
	return nil
}

// ValidationType names the kind of constraint a Validation expresses.
// RestDoc currently defines one: "match" (spec.md §3).
type ValidationType uint8

const (
	ValidationNil ValidationType = iota
	// ValidationMatch carries a regular-expression pattern a parameter
	// value must satisfy. Multiple match validations on one parameter
	// are alternatives, not conjunctions.
	ValidationMatch
)

var validationTypeNames = map[ValidationType]string{
	ValidationNil:   "",
	ValidationMatch: "match",
}

var validationTypeValues = map[string]ValidationType{
	"match": ValidationMatch,
}

func (t ValidationType) String() string {
	return validationTypeNames[t]
}

func (t ValidationType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *ValidationType) UnmarshalText(b []byte) error {
	*t = validationTypeValues[string(b)]
	return nil
}
