package restdoc

import (
	"regexp"
	"strings"
)

// resourceKey identifies a Resource for ambiguity-detection purposes: two
// compiledResource entries whose patterns both match a path count as one
// ambiguity candidate only if they come from *different* resources — a
// resource with several alternative regexes (one per combination of
// "match" validations) is expected to have more than one of its own
// patterns match the same input (spec.md §4.5 step 2).
func resourceKey(r *Resource) string {
	if r.ID != "" {
		return r.ID
	}
	return r.Path
}

// Resolve finds the single declared Resource whose path template matches
// path, and the path parameter values captured along the way (spec.md
// §4.5). It returns ErrNoResource if nothing matches and
// ErrAmbiguousResource if patterns from more than one distinct resource
// match.
func (v *Validator) Resolve(path string) (*Resource, map[string][]string, error) {
	var matched *Resource
	var params map[string][]string
	seen := map[string]bool{}

	for _, cr := range v.compiled {
		m := cr.pattern.FindStringSubmatch(path)
		if m == nil {
			continue
		}
		key := resourceKey(cr.resource)
		if !seen[key] {
			seen[key] = true
			if len(seen) > 1 {
				return nil, nil, newError(ErrAmbiguousResource, "", path)
			}
			matched = cr.resource
		}
		// Spec.md §4.5 step 4 takes parameters from the last pattern that
		// matched, not the first — a later alternative regex can capture
		// a more specific set of named groups than an earlier one.
		params = extractParams(cr.pattern, m)
	}

	if matched == nil {
		return nil, nil, newError(ErrNoResource, "", path)
	}
	return matched, params, nil
}

// extractParams groups a regex match's named captures back into RestDoc
// parameter names, stripping the "_<idx>" disambiguation suffix
// uritemplate.CompileRegexes appended to every capture group name. The
// suffix is always "_" followed by decimal digits, so the last underscore
// in the name is always the separator (Design Note 4).
func extractParams(re *regexp.Regexp, m []string) map[string][]string {
	out := map[string][]string{}
	for i, name := range re.SubexpNames() {
		if name == "" || i >= len(m) || m[i] == "" {
			continue
		}
		idx := strings.LastIndex(name, "_")
		if idx < 0 {
			continue
		}
		key := name[:idx]
		out[key] = append(out[key], m[i])
	}
	return out
}
