package restdoc

import "net/textproto"

// HeaderSpec is a single header's presence requirement (spec.md §6's
// "headers" objects: every entry is a bare {required} record, unlike the
// teacher's much larger Header — RestDoc headers aren't typed parameters,
// just names that must be present).
type HeaderSpec struct {
	Required bool `json:"required,omitempty"`
}

// HeaderMap maps a header name to its HeaderSpec, in declaration order
// (see ordered_map.go), following the teacher's `HeaderMap =
// ComponentMap[*Header]` alias pattern (header.go).
type HeaderMap = OrderedMap[*HeaderSpec]

// HeaderPolicies groups the document-level required headers by direction:
// spec.md §6's top-level "headers": {"request", "response"}.
type HeaderPolicies struct {
	Request  *HeaderMap `json:"request,omitempty"`
	Response *HeaderMap `json:"response,omitempty"`
}

// missingRequired returns the canonicalized names of headers in hm marked
// required that are absent from present. Both hm's declared names and
// present's keys are canonicalized with textproto before comparison, so
// "content-type" and "Content-Type" are treated as the same header.
func missingRequired(hm *HeaderMap, present map[string][]string) []string {
	if hm.Len() == 0 {
		return nil
	}
	have := make(map[string]bool, len(present))
	for k := range present {
		have[textproto.CanonicalMIMEHeaderKey(k)] = true
	}
	var missing []string
	for _, name := range hm.Keys() {
		spec, _ := hm.Get(name)
		if spec == nil || !spec.Required {
			continue
		}
		canon := textproto.CanonicalMIMEHeaderKey(name)
		if !have[canon] {
			missing = append(missing, canon)
		}
	}
	return missing
}
