package restdoc

// Validation is one constraint on a path parameter's value. RestDoc
// currently defines a single kind, "match" — a regular-expression pattern
// the value must satisfy (spec.md §3).
type Validation struct {
	Type    ValidationType `json:"type,omitempty"`
	Pattern string         `json:"pattern"`
}

// ParamSpec documents a single resource path parameter. Multiple "match"
// validations are alternatives at that parameter's position, not
// conjunctions — C5 (uritemplate.CompileRegexes) enumerates their
// cartesian product across all of a template's parameters.
type ParamSpec struct {
	Description string       `json:"description,omitempty"`
	Default     string       `json:"default,omitempty"`
	Validations []Validation `json:"validations,omitempty"`
}

// matchPatterns extracts p's "match" validation patterns in declaration
// order, the shape uritemplate.CompileRegexes consumes. Only validations
// whose type is explicitly "match" count; a typeless or unrecognized-type
// validation is skipped, mirroring the source's
// validation.get('type', '') == 'match' check.
func (p *ParamSpec) matchPatterns() []string {
	if p == nil {
		return nil
	}
	var pats []string
	for _, v := range p.Validations {
		if v.Type == ValidationMatch {
			pats = append(pats, v.Pattern)
		}
	}
	return pats
}

// ParamMap maps a path parameter name to its spec, in declaration order.
type ParamMap = OrderedMap[*ParamSpec]

// MethodSpec describes one HTTP method a Resource supports: the status
// codes it may answer with, its own required headers, the request bodies
// it accepts, and its own response expectations (spec.md §6's per-method
// keys: description, statusCodes, headers, accepts, response).
type MethodSpec struct {
	Description string           `json:"description,omitempty"`
	StatusCodes *StatusCodeMap   `json:"statusCodes,omitempty"`
	Headers     *HeaderMap       `json:"headers,omitempty"`
	Accepts     []MediaTypeEntry `json:"accepts,omitempty"`
	Response    *ResponseSpec    `json:"response,omitempty"`
}

// MethodMap maps an HTTP method to its spec, in declaration order.
type MethodMap = OrderedMap[*MethodSpec]

// Resource is one declared API endpoint: a URI template, its path
// parameters, and the HTTP methods it supports (spec.md §3's Resource
// model). Resources are immutable once a Document is compiled by New.
type Resource struct {
	ID          string     `json:"id,omitempty"`
	Path        string     `json:"path"`
	Description string     `json:"description,omitempty"`
	Params      *ParamMap  `json:"params,omitempty"`
	Methods     *MethodMap `json:"methods"`
}

// params flattens r's ParamMap into the uritemplate.Params shape C5
// expects: parameter name to declared alternative patterns.
func (r *Resource) params() map[string][]string {
	out := map[string][]string{}
	for _, name := range r.Params.Keys() {
		spec, _ := r.Params.Get(name)
		out[name] = spec.matchPatterns()
	}
	return out
}
