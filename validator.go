package restdoc

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// options holds Validator construction settings assembled by Option
// functions (the teacher's functional-options pattern, e.g.
// resolver.go's Openers-configuration options).
type options struct {
	lazySchemaMatching bool
	compiler           *jsonschema.Compiler
	formatAssertions   bool
}

// Option configures a Validator at construction time.
type Option func(*options)

// WithLazySchemaMatching controls C7's lazy_schema_matching policy: when
// true, a MediaTypeEntry referencing a schema that is SchemaURL, or
// missing from Document.Schemas entirely, is treated as an automatic
// match rather than a validation failure (spec.md §4.6 steps 1-2). The
// default, matching the documented API surface's lazy_schema_matching=false,
// is strict: such a reference fails validation.
func WithLazySchemaMatching(lazy bool) Option {
	return func(o *options) { o.lazySchemaMatching = lazy }
}

// WithJSONSchemaCompiler supplies a pre-configured jsonschema.Compiler,
// letting a caller register custom format assertions or a schema cache
// before Document schemas are added to it. If omitted, New builds a fresh
// compiler.
func WithJSONSchemaCompiler(compiler *jsonschema.Compiler) Option {
	return func(o *options) { o.compiler = compiler }
}

// WithFormatAssertions turns on jsonschema's format assertions (e.g.
// "date-time", "uuid"), which draft 2019-09+ treats as vocabulary and
// disables by default.
func WithFormatAssertions(assert bool) Option {
	return func(o *options) { o.formatAssertions = assert }
}

// Validator resolves request paths to resources and checks requests and
// responses against a compiled Document (spec.md §4). A Validator is safe
// for concurrent use once New returns successfully.
type Validator struct {
	doc      *Document
	compiled []compiledResource
	schemas  map[string]*jsonschema.Schema
	lazy     bool
}

// New compiles doc: it synthesizes and validates every resource's path
// regexes (C5) and compiles every inline schema in doc.Schemas (C7) so
// that later ValidateRequest/ValidateResponse calls never re-parse a
// schema document.
func New(doc *Document, opts ...Option) (*Validator, error) {
	o := options{lazySchemaMatching: false}
	for _, opt := range opts {
		opt(&o)
	}
	if o.compiler == nil {
		o.compiler = jsonschema.NewCompiler()
	}
	o.compiler.Draft = jsonschema.Draft4
	o.compiler.AssertFormat = o.formatAssertions

	compiled, err := compileResources(doc.Resources)
	if err != nil {
		return nil, err
	}

	v := &Validator{doc: doc, compiled: compiled, schemas: map[string]*jsonschema.Schema{}, lazy: o.lazySchemaMatching}

	names := doc.Schemas.Keys()
	for _, name := range names {
		entry, _ := doc.Schemas.Get(name)
		if !entry.Validatable() {
			continue
		}
		body := []byte(entry.Schema)
		if !gjson.GetBytes(body, "$id").Exists() {
			var err error
			body, err = sjson.SetBytes(body, "$id", name)
			if err != nil {
				return nil, newError(err, "", name)
			}
		}
		if err := o.compiler.AddResource(name, bytes.NewReader(body)); err != nil {
			return nil, newError(err, "", name)
		}
	}
	for _, name := range names {
		entry, _ := doc.Schemas.Get(name)
		if !entry.Validatable() {
			continue
		}
		schema, err := o.compiler.Compile(name)
		if err != nil {
			return nil, newError(err, "", name)
		}
		v.schemas[name] = schema
	}
	return v, nil
}

// docSchema looks up name in the document's schemas map.
func (v *Validator) docSchema(name string) (*SchemaEntry, bool) {
	entry, ok := v.doc.Schemas.Get(name)
	return entry, ok
}

// validateBody attempts to match body against mt's referenced schema,
// returning false and a diagnostic message on any failure. A
// reference to a SchemaURL entry, or to a name absent from the document
// entirely, is treated per the lazy-matching policy set on the Validator
// (spec.md §4.6 steps 1-2): lazy mode reports success, strict mode
// reports failure.
func (v *Validator) validateBody(mt MediaTypeEntry, body []byte) (bool, string) {
	entry, ok := v.docSchema(mt.Schema)
	if !ok || !entry.Validatable() {
		if v.lazy {
			return true, ""
		}
		return false, fmt.Sprintf("schema %q is not an inline schema and lazy matching is disabled", mt.Schema)
	}

	schema, ok := v.schemas[mt.Schema]
	if !ok {
		if v.lazy {
			return true, ""
		}
		return false, fmt.Sprintf("schema %q was not compiled", mt.Schema)
	}

	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return false, fmt.Sprintf("body is not valid JSON: %s", err)
	}
	if err := schema.Validate(data); err != nil {
		return false, fmt.Sprintf("schema %q: %s", mt.Schema, err)
	}
	return true, ""
}
