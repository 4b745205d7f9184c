package uritemplate

import (
	"errors"
	"fmt"
)

var (
	// ErrMismatchedBraces is returned when a template has an opening '{'
	// with no matching '}'.
	ErrMismatchedBraces = errors.New("uritemplate: mismatched {}")

	// ErrExplodeUnsupported is returned by CompileRegexes when a varspec
	// uses the explode ('*') modifier. Expand supports explode; regex
	// synthesis does not.
	ErrExplodeUnsupported = errors.New("uritemplate: explode modifier not supported in regex synthesis")

	// ErrInvalidPattern is returned when a parameter's match pattern
	// fails to compile as a regular expression.
	ErrInvalidPattern = errors.New("uritemplate: invalid validation pattern")
)

// Error wraps a failure in template expansion or regex synthesis with the
// template and, where applicable, the parameter name that caused it.
type Error struct {
	Err      error
	Template string
	Param    string
}

func newError(err error, template, param string) *Error {
	return &Error{Err: err, Template: template, Param: param}
}

func (e *Error) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("%s: %q", e.Err, e.Template)
	}
	return fmt.Sprintf("%s for parameter %q: %q", e.Err, e.Param, e.Template)
}

func (e *Error) Unwrap() error { return e.Err }
