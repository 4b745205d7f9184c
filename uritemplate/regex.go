package uritemplate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Params maps a path parameter name to the raw "match" validation patterns
// declared for it (spec.md §3's ParamSpec.validations). A parameter with no
// entry, or an empty slice, has no declared alternatives.
type Params map[string][]string

type exprPart struct {
	op    operator
	specs []varspec
	// bodies[i] holds the alternative regex bodies for specs[i], in
	// declaration order. Always non-empty.
	bodies [][]string
	// idxs[i] is the position of specs[i] among all varspecs in the whole
	// template, used to build globally-unique capture group names
	// (<name>_<idx>) — a per-expression-local index would collide if the
	// same variable name appeared in two different expressions.
	idxs []int
}

type templatePart struct {
	literal string
	expr    *exprPart
}

// CompileRegexes translates template and its per-parameter validation
// patterns into the cartesian product of concrete, anchored regex strings
// that recognize URIs produced by template (spec.md §4.4). Each produced
// regex uses named captures of the form <name>_<positionIndex>.
//
// Exploded varspecs are rejected with ErrExplodeUnsupported: Expand
// supports explode, regex synthesis does not (spec.md §9, Open Question
// 1 — mirrored deliberately, not silently accepted).
func CompileRegexes(template string, params Params) ([]string, error) {
	parts, err := parseTemplateParts(template, params)
	if err != nil {
		return nil, err
	}

	slots := make([][]string, 0)
	for _, p := range parts {
		if p.expr == nil {
			continue
		}
		slots = append(slots, p.expr.bodies...)
	}

	combos := odometer(slots)
	out := make([]string, 0, len(combos))
	for _, combo := range combos {
		out = append(out, renderCombo(parts, combo))
	}
	return out, nil
}

func parseTemplateParts(template string, params Params) ([]templatePart, error) {
	var parts []templatePart
	i := 0
	varIdx := 0
	for i < len(template) {
		c := template[i]
		if c != '{' {
			j := i
			for j < len(template) && template[j] != '{' {
				j++
			}
			parts = append(parts, templatePart{literal: template[i:j]})
			i = j
			continue
		}
		j := i + 1
		for j < len(template) && template[j] != '}' {
			j++
		}
		if j >= len(template) {
			return nil, newError(ErrMismatchedBraces, template, "")
		}
		ep, next, err := buildExprPart(template[i+1:j], params, varIdx)
		if err != nil {
			return nil, err
		}
		parts = append(parts, templatePart{expr: ep})
		varIdx = next
		i = j + 1
	}
	return parts, nil
}

func buildExprPart(expr string, params Params, startIdx int) (*exprPart, int, error) {
	op, body := operatorFor(expr)
	specs := parseVarspecs(body)

	ep := &exprPart{op: op, specs: specs, bodies: make([][]string, len(specs)), idxs: make([]int, len(specs))}
	valid := fmt.Sprintf("[^%s]", regexp.QuoteMeta(op.glue))
	for i, spec := range specs {
		if spec.explode {
			return nil, startIdx, newError(ErrExplodeUnsupported, expr, spec.name)
		}
		bodies, err := paramBodies(spec.name, params[spec.name], valid)
		if err != nil {
			return nil, startIdx, newError(err, expr, spec.name)
		}
		ep.bodies[i] = bodies
		ep.idxs[i] = startIdx
		startIdx++
	}
	return ep, startIdx, nil
}

func paramBodies(name string, patterns []string, valid string) ([]string, error) {
	if len(patterns) == 0 {
		return []string{valid + "+"}, nil
	}
	bodies := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		prefix, suffix := valid+"*", valid+"*"
		p := pattern
		if strings.HasPrefix(p, "^") {
			p = p[1:]
			prefix = ""
		}
		if strings.HasSuffix(p, "$") {
			p = p[:len(p)-1]
			suffix = ""
		}
		if len(p) == 0 {
			p = valid + "+"
			prefix, suffix = "", ""
		}
		if _, err := regexp.Compile(p); err != nil {
			return nil, fmt.Errorf("%w for %q (%s): %s", ErrInvalidPattern, name, err, pattern)
		}
		bodies = append(bodies, prefix+p+suffix)
	}
	return bodies, nil
}

// odometer enumerates the cartesian product of index choices across slots,
// one combination per call result entry, least-significant slot varying
// fastest — matching the teacher's counter-array increment loop.
func odometer(slots [][]string) [][]int {
	if len(slots) == 0 {
		return [][]int{{}}
	}
	total := 1
	for _, s := range slots {
		total *= len(s)
	}
	combos := make([][]int, 0, total)
	counters := make([]int, len(slots))
	for {
		combo := make([]int, len(counters))
		copy(combo, counters)
		combos = append(combos, combo)

		i := 0
		for {
			counters[i]++
			if counters[i] < len(slots[i]) {
				break
			}
			counters[i] = 0
			i++
			if i == len(counters) {
				return combos
			}
		}
	}
}

func renderCombo(parts []templatePart, combo []int) string {
	var out strings.Builder
	out.WriteByte('^')
	slot := 0
	for _, p := range parts {
		if p.expr == nil {
			out.WriteString(p.literal)
			continue
		}
		out.WriteString(renderExprFragment(p.expr, combo, &slot))
	}
	out.WriteByte('$')
	return out.String()
}

func renderExprFragment(ep *exprPart, combo []int, slot *int) string {
	alts := make([]string, len(ep.specs))
	for i, spec := range ep.specs {
		body := ep.bodies[i][combo[*slot]]
		*slot++
		alts[i] = captureSnippet(ep.op, spec, ep.idxs[i], body)
	}
	var b strings.Builder
	if ep.op.leader != "" {
		b.WriteByte('\\')
		b.WriteString(ep.op.leader)
		b.WriteByte('?')
	}
	b.WriteString("(?:")
	b.WriteString(strings.Join(alts, "|"))
	b.WriteString("){0,")
	b.WriteString(strconv.Itoa(len(ep.specs)))
	b.WriteByte('}')
	return b.String()
}

// captureSnippet builds the named-capture pattern for one varspec
// occurrence. paramIdx is the zero-based occurrence of this varspec inside
// the template, used to disambiguate capture group names
// (spec.md's "Compiled Resource Map" naming convention: <name>_<idx>).
func captureSnippet(op operator, spec varspec, paramIdx int, body string) string {
	key := fmt.Sprintf("%s_%d", spec.name, paramIdx)
	if !op.keepName {
		return fmt.Sprintf("%s?(?P<%s>%s)()", op.glue, key, body)
	}
	return fmt.Sprintf("%s?%s=?(?P<%s>%s)()", op.glue, spec.name, key, body)
}
