package restdoc

import (
	"errors"
	"fmt"
)

var (
	// ErrNoResource is returned by Resolve when no compiled regex matches
	// the path (spec.md §4.5 step 3).
	ErrNoResource = errors.New("restdoc: no resource found matching path")

	// ErrAmbiguousResource is returned by Resolve when more than one
	// distinct resource's regexes match the path (spec.md §4.5 step 2).
	ErrAmbiguousResource = errors.New("restdoc: multiple resources match path")

	// ErrUnknownMethod is returned when the requested method is not
	// declared on the resolved resource.
	ErrUnknownMethod = errors.New("restdoc: method not declared for resource")

	// ErrMissingHeader is returned when a required header is absent.
	ErrMissingHeader = errors.New("restdoc: missing required header")

	// ErrBodyRejected is returned when a body matches none of the
	// declared schemas.
	ErrBodyRejected = errors.New("restdoc: body does not match any declared schema")

	// ErrInvalidStatus is returned when a response status is not a key
	// of the merged statusCodes map.
	ErrInvalidStatus = errors.New("restdoc: invalid status code")

	// ErrMethodMissingStatusCodes is returned by ValidateResponse when
	// the resolved method declares no statusCodes of its own (spec.md
	// §4.7 step 2).
	ErrMethodMissingStatusCodes = errors.New("restdoc: method missing statusCodes definition")

	// ErrUnsupportedVersion is returned when a document's restDocVersion
	// falls outside SupportedVersions.
	ErrUnsupportedVersion = errors.New("restdoc: unsupported document version")

	// ErrMissingResources is returned by Load when the document has no
	// "resources" array.
	ErrMissingResources = errors.New("restdoc: document has no resources array")

	// ErrResourceMissingPath is returned at construction when a resource
	// has no path template.
	ErrResourceMissingPath = errors.New("restdoc: resource missing path")

	// ErrResourceMissingMethods is returned at construction when a
	// resource declares no methods.
	ErrResourceMissingMethods = errors.New("restdoc: resource missing methods")
)

// Error wraps a failure in document loading, construction, resolution, or
// validation with a Location pinpointing the resource and detail involved.
type Error struct {
	Err error
	Location
}

func newError(err error, resource, detail string) *Error {
	return &Error{Err: err, Location: Location{Resource: resource, Detail: detail}}
}

func (e *Error) Error() string {
	loc := e.Location.String()
	if loc == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s (%s)", e.Err, loc)
}

func (e *Error) Unwrap() error {
	return e.Err
}
