package restdoc

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/wI2L/jsondiff"
)

// methodSpec looks up method on resource, reporting ErrUnknownMethod if
// it is not declared. The lookup is case-insensitive: RestDoc documents
// conventionally spell methods lowercase ("get", "post"), while Go's
// net/http constants this package's Method values are built from
// (MethodGet = Method(http.MethodGet)) are uppercase.
func methodSpec(resource *Resource, method Method) (*MethodSpec, error) {
	for _, name := range resource.Methods.Keys() {
		if strings.EqualFold(name, string(method)) {
			spec, _ := resource.Methods.Get(name)
			return spec, nil
		}
	}
	return nil, newError(ErrUnknownMethod, resourceKey(resource), string(method))
}

// ValidateRequest resolves path to a resource, checks that method is
// declared, enforces required headers, and — if the method declares
// accepts — finds the first entry whose schema matches body (spec.md
// §4.7's validateRequest, C8). A method with no accepts list always
// succeeds with a nil matching schema.
func (v *Validator) ValidateRequest(method Method, path string, body []byte, headers map[string][]string) (*Resource, map[string][]string, *MediaTypeEntry, error) {
	resource, params, err := v.Resolve(path)
	if err != nil {
		return nil, nil, nil, err
	}
	ms, err := methodSpec(resource, method)
	if err != nil {
		return nil, nil, nil, err
	}

	if missing := missingRequired(ms.Headers, headers); len(missing) > 0 {
		return nil, nil, nil, newError(ErrMissingHeader, resourceKey(resource), joinNames(missing))
	}
	if v.doc.Headers != nil {
		if missing := missingRequired(v.doc.Headers.Request, headers); len(missing) > 0 {
			return nil, nil, nil, newError(ErrMissingHeader, resourceKey(resource), joinNames(missing))
		}
	}

	if len(ms.Accepts) == 0 {
		return resource, params, nil, nil
	}

	var errs []string
	for i := range ms.Accepts {
		ok, msg := v.validateBody(ms.Accepts[i], body)
		if ok {
			return resource, params, &ms.Accepts[i], nil
		}
		errs = append(errs, msg)
	}
	return nil, nil, nil, rejectionError(resourceKey(resource), ms.Accepts, body, errs)
}

// ValidateResponse resolves path, checks method and status, requires the
// resolved method to declare its own statusCodes, merges document- and
// method-level statusCodes, enforces every applicable header requirement,
// and finds the first matching schema across the status entry's and the
// method's own response.types (spec.md §4.7's validateResponse, C8).
func (v *Validator) ValidateResponse(method Method, path string, status int, body []byte, headers map[string][]string) (*Resource, map[string][]string, *MediaTypeEntry, error) {
	resource, params, err := v.Resolve(path)
	if err != nil {
		return nil, nil, nil, err
	}
	ms, err := methodSpec(resource, method)
	if err != nil {
		return nil, nil, nil, err
	}

	if ms.StatusCodes.Len() == 0 {
		return nil, nil, nil, newError(ErrMethodMissingStatusCodes, resourceKey(resource), string(method))
	}
	merged := mergeStatusCodes(v.doc.StatusCodes, ms.StatusCodes)

	key := strconv.Itoa(status)
	entry, ok := merged[key]
	if !ok {
		return nil, nil, nil, newError(ErrInvalidStatus, resourceKey(resource), key)
	}

	var errs []string
	var matching *MediaTypeEntry

	if entry.Response != nil {
		for i := range entry.Response.Types {
			ok, msg := v.validateBody(entry.Response.Types[i], body)
			if ok {
				matching = &entry.Response.Types[i]
				break
			}
			errs = append(errs, msg)
		}
		if missing := missingRequired(entry.Response.Headers, headers); len(missing) > 0 {
			return nil, nil, nil, newError(ErrMissingHeader, resourceKey(resource), joinNames(missing))
		}
	}

	if matching == nil && ms.Response != nil {
		for i := range ms.Response.Types {
			ok, msg := v.validateBody(ms.Response.Types[i], body)
			if ok {
				matching = &ms.Response.Types[i]
				break
			}
			errs = append(errs, msg)
		}
	}
	if ms.Response != nil {
		if missing := missingRequired(ms.Response.Headers, headers); len(missing) > 0 {
			return nil, nil, nil, newError(ErrMissingHeader, resourceKey(resource), joinNames(missing))
		}
	}

	if v.doc.Headers != nil {
		if missing := missingRequired(v.doc.Headers.Response, headers); len(missing) > 0 {
			return nil, nil, nil, newError(ErrMissingHeader, resourceKey(resource), joinNames(missing))
		}
	}

	if matching == nil {
		candidates := append(typesOf(entry.Response), typesOf(ms.Response)...)
		if len(candidates) == 0 {
			return resource, params, nil, nil
		}
		return nil, nil, nil, rejectionError(resourceKey(resource), candidates, body, errs)
	}
	return resource, params, matching, nil
}

// mergeStatusCodes merges method's entries over doc's into a fresh map,
// replacing the Python source's in-place dict.update (which leaked a
// method's statusCodes into the document-level map across calls — Design
// Note 3). The merge happens at the status-code key: a method-level entry
// for a given code replaces the document-level entry for that code
// wholesale (spec.md §4.7 step 2, "method overrides document on key
// conflict") rather than deep-merging their fields — unlike
// json-patch/v5's RFC 7386 MergePatch, which would recursively merge a
// conflicting entry's nested objects (e.g. response) instead of replacing
// them.
func mergeStatusCodes(doc, method *StatusCodeMap) map[string]*StatusCodeEntry {
	out := map[string]*StatusCodeEntry{}
	for _, key := range doc.Keys() {
		entry, _ := doc.Get(key)
		out[key] = entry
	}
	for _, key := range method.Keys() {
		entry, _ := method.Get(key)
		out[key] = entry
	}
	return out
}

// rejectionError builds ErrBodyRejected wrapped with the collected
// per-schema error messages and, when a candidate carries an Example, a
// structural diff between body and that example to aid debugging
// (spec.md §4.7's "collected errors").
func rejectionError(resourceID string, candidates []MediaTypeEntry, body []byte, errs []string) error {
	detail := strings.Join(errs, "; ")
	for _, c := range candidates {
		if len(c.Example) == 0 {
			continue
		}
		patch, err := jsondiff.CompareJSON(c.Example, body)
		if err != nil || len(patch) == 0 {
			continue
		}
		diff, err := json.Marshal(patch)
		if err != nil {
			continue
		}
		detail = fmt.Sprintf("%s; diff against %q example: %s", detail, c.Schema, diff)
		break
	}
	return newError(ErrBodyRejected, resourceID, detail)
}

func typesOf(rs *ResponseSpec) []MediaTypeEntry {
	if rs == nil {
		return nil
	}
	return rs.Types
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}
