package restdoc

import (
	"regexp"

	"github.com/lindenlab/restdoc/uritemplate"
)

// compiledResource pairs a Resource with one of the concrete regexes
// uritemplate.CompileRegexes synthesized from its path template and
// parameter validations (spec.md §4.4). A Resource with multiple
// alternative "match" patterns on its parameters compiles to multiple
// compiledResource entries sharing the same *Resource pointer.
type compiledResource struct {
	pattern  *regexp.Regexp
	resource *Resource
}

// compileResources validates and compiles every resource's path template,
// returning one compiledResource per synthesized regex. It aborts on the
// first invalid resource rather than collecting every error, mirroring the
// teacher's fail-fast document construction in validator.go.
func compileResources(resources []*Resource) ([]compiledResource, error) {
	var out []compiledResource
	for _, r := range resources {
		if r.Path == "" {
			return nil, newError(ErrResourceMissingPath, r.ID, "")
		}
		if r.Methods.Len() == 0 {
			return nil, newError(ErrResourceMissingMethods, r.ID, r.Path)
		}

		patterns, err := uritemplate.CompileRegexes(r.Path, r.params())
		if err != nil {
			return nil, newError(err, r.ID, r.Path)
		}
		for _, p := range patterns {
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, newError(err, r.ID, r.Path)
			}
			out = append(out, compiledResource{pattern: re, resource: r})
		}
	}
	return out, nil
}
