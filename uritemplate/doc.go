// Package uritemplate implements RFC 6570 URI Templates.
//
// A template string can be expanded against a variable binding (Context)
// into a URI string with Expand, or compiled with CompileRegexes into a set
// of regular expressions that recognize concrete URIs produced by that
// template and bind their captured parameters back by name.
package uritemplate
