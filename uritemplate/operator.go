package uritemplate

// operator is the behavioral record shared by all eight expression
// operators (RFC 6570 §2.2). Rather than a class hierarchy of
// KeepNameMixin/ReservedExpr-style mixins, each operator is one value of
// this struct; polymorphism is composition of the fields below plus the
// two policy flags (formStyle, reservedPass).
type operator struct {
	sigil byte // 0 for the default (simple) operator

	// leader is emitted once, before the glued varspec outputs, iff the
	// expression produced any output at all.
	leader string

	// glue separates varspec outputs, and — when a varspec is exploded —
	// separates list elements or key/value pairs.
	glue string

	// keepName reports whether a scalar/list/pairs rendering is prefixed
	// with "name=" (non-explode) or "name=" per element (explode).
	keepName bool

	// formStyle reports whether an empty scalar renders as "name=" (form
	// style: '?' and '&') as opposed to bare "name" (';').
	formStyle bool

	// reservedPass reports whether reserved characters and already-valid
	// pct-encoded triplets pass through unescaped ('+' and '#').
	reservedPass bool
}

// operators is the process-lifetime constant operator table, built once
// here instead of the teacher's module-level op_table populated at import
// — see DESIGN.md's note on avoiding global mutable state.
var operators = [...]operator{
	{sigil: 0, leader: "", glue: ","},
	{sigil: '+', leader: "", glue: ",", reservedPass: true},
	{sigil: '#', leader: "#", glue: ",", reservedPass: true},
	{sigil: '.', leader: ".", glue: "."},
	{sigil: '/', leader: "/", glue: "/"},
	{sigil: ';', leader: ";", glue: ";", keepName: true},
	{sigil: '?', leader: "?", glue: "&", keepName: true, formStyle: true},
	{sigil: '&', leader: "&", glue: "&", keepName: true, formStyle: true},
}

// defaultOperator is the operator used when an expression carries no
// sigil.
var defaultOperator = operators[0]

// operatorFor returns the operator selected by the first byte of expr, and
// the remainder of expr with that sigil (if any) consumed.
func operatorFor(expr string) (operator, string) {
	if len(expr) == 0 {
		return defaultOperator, expr
	}
	for _, op := range operators {
		if op.sigil != 0 && expr[0] == op.sigil {
			return op, expr[1:]
		}
	}
	return defaultOperator, expr
}
