package restdoc

// ResponseSpec describes the schemas and headers expected on a response,
// scoped either to a single status code entry or to a method as a whole
// (spec.md §4.7 steps 4-5 walk both levels with the same first-success
// rule).
type ResponseSpec struct {
	Types   []MediaTypeEntry `json:"types,omitempty"`
	Headers *HeaderMap       `json:"headers,omitempty"`
}

// StatusCodeEntry is one entry of a statusCodes map (document- or
// method-level).
type StatusCodeEntry struct {
	Description string        `json:"description,omitempty"`
	Response    *ResponseSpec `json:"response,omitempty"`
}

// StatusCodeMap maps a stringified HTTP status code to its entry, in
// declaration order (see ordered_map.go).
type StatusCodeMap = OrderedMap[*StatusCodeEntry]
