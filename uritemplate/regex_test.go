package uritemplate

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileRegexesSingleAlternative(t *testing.T) {
	regexes, err := CompileRegexes("/resource1/{resource_id}", Params{
		"resource_id": {"^[0-9a-fA-F-]{36}$"},
	})
	require.NoError(t, err)
	require.Len(t, regexes, 1)

	want := "^/resource1/(?:,?(?P<resource_id_0>[0-9a-fA-F-]{36})()){0,1}$"
	assert.Equal(t, want, regexes[0])

	re, err := regexp.Compile(regexes[0])
	require.NoError(t, err)
	assert.True(t, re.MatchString("/resource1/550e8400-e29b-41d4-a716-446655440000"))
	assert.False(t, re.MatchString("/resource1/not-a-uuid"))
}

func TestCompileRegexesMultipleAlternatives(t *testing.T) {
	regexes, err := CompileRegexes("/resource1/{resource_id}", Params{
		"resource_id": {"foo", "bar"},
	})
	require.NoError(t, err)
	require.Len(t, regexes, 2)

	matched := 0
	for _, pattern := range regexes {
		re, err := regexp.Compile(pattern)
		require.NoError(t, err)
		if re.MatchString("/resource1/foo") {
			matched++
		}
	}
	assert.Equal(t, 1, matched, "exactly one alternative regex should recognize the foo path")

	matched = 0
	for _, pattern := range regexes {
		re, err := regexp.Compile(pattern)
		require.NoError(t, err)
		if re.MatchString("/resource1/bar") {
			matched++
		}
	}
	assert.Equal(t, 1, matched, "exactly one alternative regex should recognize the bar path")
}

// TestCompileRegexesAmbiguousResources checks that two resources with
// disjoint alternative patterns never both match the same path: exactly
// one regex across both concrete regex sets recognizes /resource1/alt1.
func TestCompileRegexesAmbiguousResources(t *testing.T) {
	resource1, err := CompileRegexes("/resource1/{resource_id}", Params{
		"resource_id": {"^alt1$", "^alt2$"},
	})
	require.NoError(t, err)

	resource2, err := CompileRegexes("/resource2/{resource_id}", Params{
		"resource_id": {"^alt3$", "^alt4$"},
	})
	require.NoError(t, err)

	all := append(append([]string{}, resource1...), resource2...)
	path := "/resource1/alt1"
	matches := 0
	for _, pattern := range all {
		re, err := regexp.Compile(pattern)
		require.NoError(t, err)
		if re.MatchString(path) {
			matches++
		}
	}
	assert.Equal(t, 1, matches)
}

func TestCompileRegexesNamedCaptures(t *testing.T) {
	regexes, err := CompileRegexes("/a/{x}/b/{y}", Params{})
	require.NoError(t, err)
	require.Len(t, regexes, 1)

	re, err := regexp.Compile(regexes[0])
	require.NoError(t, err)
	names := re.SubexpNames()
	assert.Contains(t, names, "x_0")
	assert.Contains(t, names, "y_1")
}

func TestCompileRegexesExplodeUnsupported(t *testing.T) {
	_, err := CompileRegexes("/items{/ids*}", Params{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExplodeUnsupported)
}

func TestCompileRegexesInvalidPattern(t *testing.T) {
	_, err := CompileRegexes("/resource1/{resource_id}", Params{
		"resource_id": {"(unclosed"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestCompileRegexesNoValidations(t *testing.T) {
	regexes, err := CompileRegexes("/widgets/{id}", Params{})
	require.NoError(t, err)
	require.Len(t, regexes, 1)

	re, err := regexp.Compile(regexes[0])
	require.NoError(t, err)
	assert.True(t, re.MatchString("/widgets/abc123"))
}
