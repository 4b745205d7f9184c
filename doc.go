// Package restdoc implements the RestDoc document model and validator: it
// resolves a concrete request path to exactly one declared resource (via
// the uritemplate package's compiled regex sets) and checks that a request
// or response conforms to that resource's declared headers, status codes,
// and JSON-schema fragments.
//
// A Document is loaded with Load, compiled once with New, and the
// resulting Validator's ValidateRequest/ValidateResponse are safe for
// concurrent use thereafter.
package restdoc
