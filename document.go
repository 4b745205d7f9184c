package restdoc

import (
	"encoding/json"

	"github.com/Masterminds/semver"
)

// SupportedVersions is the range of restDocVersion values this package
// accepts (spec.md §3). A document omitting restDocVersion entirely is
// accepted without complaint; one declaring a version outside this range
// is rejected with ErrUnsupportedVersion.
var SupportedVersions = mustConstraint(">= 1.0.0, < 2.0.0")

func mustConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Document is the root of a loaded RestDoc file: its declared resources,
// the named schemas they reference, the document-wide status-code
// catalogue, and the document-wide header policies (spec.md §3).
type Document struct {
	RestDocVersion *semver.Version
	Resources      []*Resource     `json:"resources"`
	Schemas        *SchemaMap      `json:"schemas,omitempty"`
	StatusCodes    *StatusCodeMap  `json:"statusCodes,omitempty"`
	Headers        *HeaderPolicies `json:"headers,omitempty"`
}

// documentAlias mirrors Document but with a plain string restDocVersion
// field, letting UnmarshalJSON parse and range-check the version itself
// rather than relying on semver.Version's own JSON unmarshaler.
type documentAlias struct {
	RestDocVersion string          `json:"restDocVersion,omitempty"`
	Resources      []*Resource     `json:"resources"`
	Schemas        *SchemaMap      `json:"schemas,omitempty"`
	StatusCodes    *StatusCodeMap  `json:"statusCodes,omitempty"`
	Headers        *HeaderPolicies `json:"headers,omitempty"`
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var alias documentAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	d.Resources = alias.Resources
	d.Schemas = alias.Schemas
	d.StatusCodes = alias.StatusCodes
	d.Headers = alias.Headers

	if alias.RestDocVersion == "" {
		return nil
	}
	v, err := semver.NewVersion(alias.RestDocVersion)
	if err != nil {
		return newError(err, "", "restDocVersion")
	}
	if !SupportedVersions.Check(v) {
		return newError(ErrUnsupportedVersion, "", alias.RestDocVersion)
	}
	d.RestDocVersion = v
	return nil
}

func (d Document) MarshalJSON() ([]byte, error) {
	alias := documentAlias{
		Resources:   d.Resources,
		Schemas:     d.Schemas,
		StatusCodes: d.StatusCodes,
		Headers:     d.Headers,
	}
	if d.RestDocVersion != nil {
		alias.RestDocVersion = d.RestDocVersion.String()
	}
	return json.Marshal(alias)
}
