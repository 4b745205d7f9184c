package restdoc

import "strings"

// Location is the breadcrumb an Error carries: which resource it concerns,
// and a free-form detail (a path, a header name, a schema name — whatever
// pinpoints the failure). It replaces the teacher's uri.URI-based
// Location, which resolved cross-document $ref graphs this module has no
// need of: RestDoc's schema $ref resolution is delegated wholesale to
// santhosh-tekuri/jsonschema (see validator.go).
type Location struct {
	Resource string
	Detail   string
}

func (l Location) String() string {
	switch {
	case l.Resource == "" && l.Detail == "":
		return ""
	case l.Resource == "":
		return l.Detail
	case l.Detail == "":
		return l.Resource
	default:
		return strings.Join([]string{l.Resource, l.Detail}, ": ")
	}
}
