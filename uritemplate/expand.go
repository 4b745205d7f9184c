package uritemplate

import "strings"

// Expand walks template left to right, copying literal bytes verbatim and
// expanding each {...} expression against ctx, concatenating the results.
//
// A template with no expressions expands to itself byte-for-byte
// (spec.md's "template idempotence of literals" property).
func Expand(template string, ctx Context) (string, error) {
	var out strings.Builder
	i := 0
	for i < len(template) {
		c := template[i]
		if c != '{' {
			out.WriteByte(c)
			i++
			continue
		}
		j := i + 1
		for j < len(template) && template[j] != '}' {
			j++
		}
		if j >= len(template) {
			return "", newError(ErrMismatchedBraces, template, "")
		}
		expanded, err := expandExpression(template[i+1:j], ctx)
		if err != nil {
			return "", err
		}
		out.WriteString(expanded)
		i = j + 1
	}
	return out.String(), nil
}

func expandExpression(expr string, ctx Context) (string, error) {
	op, body := operatorFor(expr)
	specs := parseVarspecs(body)

	outputs := make([]string, 0, len(specs))
	for _, spec := range specs {
		v := ctx.Lookup(spec.name)
		if !v.Defined() {
			continue
		}
		rendered, ok := renderVarspec(op, spec, v)
		if ok {
			outputs = append(outputs, rendered)
		}
	}
	if len(outputs) == 0 {
		return "", nil
	}
	return op.leader + strings.Join(outputs, op.glue), nil
}

// renderVarspec dispatches on the value's shape; the bool result reports
// whether the varspec produced any output (a defined scalar always does;
// a list/pairs value with all-undefined elements does not).
func renderVarspec(op operator, spec varspec, v Value) (string, bool) {
	switch t := v.(type) {
	case Scalar:
		return renderScalar(op, spec, t.String()), true
	case List:
		return renderList(op, spec, t)
	case Pairs:
		return renderPairs(op, spec, t.Items)
	case Map:
		keys := t.sortedKeys()
		kvs := make([]KV, 0, len(keys))
		for _, k := range keys {
			kvs = append(kvs, KV{Key: k, Value: t.Items[k]})
		}
		return renderPairs(op, spec, kvs)
	default:
		return "", false
	}
}

func renderScalar(op operator, spec varspec, s string) string {
	encoded := op.encode(spec.truncate(s))
	if !op.keepName {
		return encoded
	}
	if !op.formStyle && encoded == "" {
		return spec.name
	}
	return spec.name + "=" + encoded
}

func renderList(op operator, spec varspec, l List) (string, bool) {
	items := make([]string, 0, len(l.Items))
	for _, el := range l.Items {
		s, ok := el.(Scalar)
		if !ok {
			continue
		}
		items = append(items, op.encode(spec.truncate(s.String())))
	}
	if len(items) == 0 {
		return "", false
	}
	if !op.keepName {
		sep := ","
		if spec.explode {
			sep = op.glue
		}
		return strings.Join(items, sep), true
	}
	if spec.explode {
		named := make([]string, len(items))
		for i, it := range items {
			named[i] = spec.name + "=" + it
		}
		return strings.Join(named, op.glue), true
	}
	return spec.name + "=" + strings.Join(items, ","), true
}

func renderPairs(op operator, spec varspec, kvs []KV) (string, bool) {
	entrySep := ","
	kvSep := ","
	if spec.explode {
		entrySep = op.glue
		kvSep = "="
	}
	entries := make([]string, 0, len(kvs))
	for _, kv := range kvs {
		// Non-scalar pair values are not addressed by RFC 6570; treat
		// as undefined rather than guessing a rendering.
		sc, ok := kv.Value.(Scalar)
		if !ok {
			continue
		}
		val := sc.String()
		if spec.explode && val == "" {
			entry := kv.Key
			if op.keepName && op.formStyle {
				entry += "="
			}
			entries = append(entries, entry)
			continue
		}
		entries = append(entries, kv.Key+kvSep+op.encode(spec.truncate(val)))
	}
	if len(entries) == 0 {
		return "", false
	}
	joined := strings.Join(entries, entrySep)
	if op.keepName && !spec.explode {
		joined = spec.name + "=" + joined
	}
	return joined, true
}
