package uritemplate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureContext mirrors the canonical variable set used by the teacher's
// Python fixtures (test_uritemplate.py), covering every value shape RFC
// 6570 distinguishes: scalar, list, and (unordered) map.
func fixtureContext() Context {
	return Context{
		"count": NewList("one", "two", "three"),
		"dom":   NewList("example", "com"),
		"dub":   ScalarString("me/too"),
		"hello": ScalarString("Hello World!"),
		"half":  ScalarString("50%"),
		"var":   ScalarString("value"),
		"who":   ScalarString("fred"),
		"base":  ScalarString("http://example.com/home/"),
		"path":  ScalarString("/foo/bar"),
		"list":  NewList("red", "green", "blue"),
		"keys": NewMap(map[string]string{
			"semi":  ";",
			"dot":   ".",
			"comma": ",",
		}),
		"v":          ScalarString("6"),
		"x":          ScalarString("1024"),
		"y":          ScalarString("768"),
		"empty":      ScalarString(""),
		"empty_keys": NewMap(map[string]string{}),
	}
}

func TestExpandSimple(t *testing.T) {
	ctx := fixtureContext()
	cases := map[string]string{
		"{var}":       "value",
		"{hello}":     "Hello%20World%21",
		"{half}":      "50%25",
		"O{empty}X":   "OX",
		"O{undef}X":   "OX",
		"{x,y}":       "1024,768",
		"{x,hello,y}": "1024,Hello%20World%21,768",
		"?{x,empty}":  "?1024,",
		"?{x,undef}":  "?1024",
		"?{undef,y}":  "?768",
		"{var:3}":     "val",
		"{var:30}":    "value",
		"{list}":      "red,green,blue",
		"{list*}":     "red,green,blue",
		"{keys}":      "comma,%2C,dot,.,semi,%3B",
		"{keys*}":     "comma=%2C,dot=.,semi=%3B",
	}
	for tmpl, want := range cases {
		got, err := Expand(tmpl, ctx)
		require.NoError(t, err, tmpl)
		assert.Equal(t, want, got, tmpl)
	}
}

func TestExpandReserved(t *testing.T) {
	ctx := fixtureContext()
	cases := map[string]string{
		"{+var}":       "value",
		"{+hello}":     "Hello%20World!",
		"{+half}":      "50%25",
		"{base}index":  "http%3A%2F%2Fexample.com%2Fhome%2Findex",
		"{+base}index": "http://example.com/home/index",
		"O{+empty}X":   "OX",
		"O{+undef}X":   "OX",
		"{+path}/here": "/foo/bar/here",
		"here?ref={+path}": "here?ref=/foo/bar",
		"{+list}":      "red,green,blue",
		"{+list*}":     "red,green,blue",
		"{+keys}":      "comma,,,dot,.,semi,;",
		"{+keys*}":     "comma=,,dot=.,semi=;",
	}
	for tmpl, want := range cases {
		got, err := Expand(tmpl, ctx)
		require.NoError(t, err, tmpl)
		assert.Equal(t, want, got, tmpl)
	}
}

func TestExpandFragment(t *testing.T) {
	ctx := fixtureContext()
	cases := map[string]string{
		"{#var}":       "#value",
		"{#hello}":     "#Hello%20World!",
		"{#half}":      "#50%25",
		"foo{#empty}":  "foo#",
		"foo{#undef}":  "foo",
		"{#path,x}/here": "#/foo/bar,1024/here",
		"{#list}":      "#red,green,blue",
		"{#list*}":     "#red,green,blue",
		"{#keys}":      "#comma,,,dot,.,semi,;",
		"{#keys*}":     "#comma=,,dot=.,semi=;",
	}
	for tmpl, want := range cases {
		got, err := Expand(tmpl, ctx)
		require.NoError(t, err, tmpl)
		assert.Equal(t, want, got, tmpl)
	}
}

func TestExpandLabel(t *testing.T) {
	ctx := fixtureContext()
	cases := map[string]string{
		"{.who}":       ".fred",
		"{.who,who}":   ".fred.fred",
		"{.half,who}":  ".50%25.fred",
		"X{.var}":      "X.value",
		"X{.empty}":    "X.",
		"X{.undef}":    "X",
		"{.list}":      ".red,green,blue",
		"{.list*}":     ".red.green.blue",
		"{.keys}":      ".comma,%2C,dot,.,semi,%3B",
		"{.keys*}":     ".comma=%2C.dot=..semi=%3B",
	}
	for tmpl, want := range cases {
		got, err := Expand(tmpl, ctx)
		require.NoError(t, err, tmpl)
		assert.Equal(t, want, got, tmpl)
	}
}

func TestExpandPathSegments(t *testing.T) {
	ctx := fixtureContext()
	cases := map[string]string{
		"{/who}":        "/fred",
		"{/who,who}":    "/fred/fred",
		"{/var,x}/here": "/value/1024/here",
		"{/var:1,var}":  "/v/value",
		"{/list}":       "/red,green,blue",
		"{/list*}":      "/red/green/blue",
		"{/list*,path:4}": "/red/green/blue/%2Ffoo",
		"{/keys}":       "/comma,%2C,dot,.,semi,%3B",
		"{/keys*}":      "/comma=%2C/dot=./semi=%3B",
	}
	for tmpl, want := range cases {
		got, err := Expand(tmpl, ctx)
		require.NoError(t, err, tmpl)
		assert.Equal(t, want, got, tmpl)
	}
}

func TestExpandPathParameter(t *testing.T) {
	ctx := fixtureContext()
	cases := map[string]string{
		"{;who}":      ";who=fred",
		"{;half}":     ";half=50%25",
		"{;empty}":    ";empty",
		"{;v,empty,who}": ";v=6;empty;who=fred",
		"{;v,bar,who}":   ";v=6;who=fred",
		"{;x,y}":      ";x=1024;y=768",
		"{;x,y,empty}": ";x=1024;y=768;empty",
		"{;list}":     ";list=red,green,blue",
		"{;list*}":    ";list=red;list=green;list=blue",
		"{;keys}":     ";keys=comma,%2C,dot,.,semi,%3B",
		"{;keys*}":    ";comma=%2C;dot=.;semi=%3B",
	}
	for tmpl, want := range cases {
		got, err := Expand(tmpl, ctx)
		require.NoError(t, err, tmpl)
		assert.Equal(t, want, got, tmpl)
	}
}

func TestExpandQuery(t *testing.T) {
	ctx := fixtureContext()
	cases := map[string]string{
		"{?who}":      "?who=fred",
		"{?half}":     "?half=50%25",
		"{?x,y}":      "?x=1024&y=768",
		"{?x,y,empty}": "?x=1024&y=768&empty=",
		"{?x,y,undef}": "?x=1024&y=768",
		"{?list}":     "?list=red,green,blue",
		"{?list*}":    "?list=red&list=green&list=blue",
		"{?keys}":     "?keys=comma,%2C,dot,.,semi,%3B",
		"{?keys*}":    "?comma=%2C&dot=.&semi=%3B",
	}
	for tmpl, want := range cases {
		got, err := Expand(tmpl, ctx)
		require.NoError(t, err, tmpl)
		assert.Equal(t, want, got, tmpl)
	}
}

func TestExpandQueryContinuation(t *testing.T) {
	ctx := fixtureContext()
	cases := map[string]string{
		"{&who}":          "&who=fred",
		"{&half}":         "&half=50%25",
		"?fixed=yes{&x}":  "?fixed=yes&x=1024",
		"{&x,y,empty}":    "&x=1024&y=768&empty=",
		"{&x,y,undef}":    "&x=1024&y=768",
		"{&list}":         "&list=red,green,blue",
		"{&list*}":        "&list=red&list=green&list=blue",
		"{&keys}":         "&keys=comma,%2C,dot,.,semi,%3B",
		"{&keys*}":        "&comma=%2C&dot=.&semi=%3B",
	}
	for tmpl, want := range cases {
		got, err := Expand(tmpl, ctx)
		require.NoError(t, err, tmpl)
		assert.Equal(t, want, got, tmpl)
	}
}

func TestExpandLiteralOnly(t *testing.T) {
	got, err := Expand("/resources/fixed/path", Context{})
	require.NoError(t, err)
	assert.Equal(t, "/resources/fixed/path", got)
}

func TestExpandMismatchedBraces(t *testing.T) {
	_, err := Expand("/resources/{id", Context{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMismatchedBraces)
}

func TestScalarOf(t *testing.T) {
	s, err := ScalarOf("plain")
	require.NoError(t, err)
	assert.Equal(t, "plain", s.String())

	s, err = ScalarOf(true)
	require.NoError(t, err)
	assert.Equal(t, "True", s.String())

	s, err = ScalarOf(false)
	require.NoError(t, err)
	assert.Equal(t, "False", s.String())

	s, err = ScalarOf(42)
	require.NoError(t, err)
	assert.Equal(t, "42", s.String())
}
