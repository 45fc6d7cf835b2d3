/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package claim

import (
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Schema describes a claim shape registered on the ledger: the exact set of
// attribute names a conforming claim carries and whether issued claims can
// later be revoked. Registered schemas are immutable.
type Schema struct {
	Name       string   `json:"name"`
	Attributes []string `json:"attributes"`
	Revokable  bool     `json:"revokable"`
	Tx         string   `json:"tx,omitempty"`
}

// JSONSchema renders the schema as a JSON Schema document demanding exactly
// the declared attribute set: every attribute required, no additional
// properties, values unconstrained.
func (s *Schema) JSONSchema() map[string]interface{} {
	properties := make(map[string]interface{}, len(s.Attributes))
	for _, attr := range s.Attributes {
		properties[attr] = map[string]interface{}{}
	}

	required := s.Attributes
	if required == nil {
		required = []string{}
	}

	return map[string]interface{}{
		"type":                 "object",
		"properties":           properties,
		"required":             required,
		"additionalProperties": false,
	}
}

// ValidateAttributes checks a claim against a schema: the claim must
// reference the schema by name and carry exactly the schema's attribute set,
// in any order, with any values. The outcome is a verification result, a
// mismatch is not an error.
func ValidateAttributes(c *Claim, s *Schema) VerificationResult {
	if c == nil || s == nil {
		return Fail(CheckSchema, errors.New("claim and schema must not be nil"))
	}

	if c.Schema != s.Name {
		return Fail(CheckSchema, fmt.Errorf("claim references schema %q, not %q", c.Schema, s.Name))
	}

	attributes := c.Attributes
	if attributes == nil {
		attributes = map[string]interface{}{}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(s.JSONSchema()),
		gojsonschema.NewGoLoader(attributes),
	)
	if err != nil {
		return Fail(CheckSchema, fmt.Errorf("validation of claim attributes: %w", err))
	}

	if !result.Valid() {
		return Fail(CheckSchema, errors.New(describeSchemaValidationError(result, s.Name)))
	}

	return Pass()
}

func describeSchemaValidationError(result *gojsonschema.Result, schemaName string) string {
	errMsg := "claim does not conform to schema " + schemaName + ":\n"
	for _, desc := range result.Errors() {
		errMsg += fmt.Sprintf("- %s\n", desc)
	}

	return errMsg
}
