/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package claim holds the claim and schema models of the protocol, the
// canonical hashing the signature scheme is defined over, and schema
// conformance checking of claim attributes.
package claim

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
)

// CustomFields are claim JSON fields not described by the claim model. They
// survive marshal/parse round trips untouched.
type CustomFields map[string]interface{}

// Claim is a set of attributes an issuer attests about an owner, bound to a
// named on-chain schema. Signature covers the canonical form of ID, OwnerDID,
// Schema and Attributes; IssuerDID, the validity window and Tx ride outside
// the signed envelope.
type Claim struct {
	ID         string
	OwnerDID   string
	IssuerDID  string
	Schema     string
	Attributes map[string]interface{}
	Signature  []byte
	ValidFrom  *time.Time
	ValidTo    *time.Time
	Tx         string

	CustomFields CustomFields
}

// rawClaim is the JSON model of Claim.
type rawClaim struct {
	ID         string                 `json:"id,omitempty"`
	OwnerDID   string                 `json:"ownerDID,omitempty"`
	IssuerDID  string                 `json:"issuerDID,omitempty"`
	Schema     string                 `json:"schema,omitempty"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
	Signature  string                 `json:"signature,omitempty"`
	ValidFrom  *time.Time             `json:"validFrom,omitempty"`
	ValidTo    *time.Time             `json:"validTo,omitempty"`
	Tx         string                 `json:"tx,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface for Claim. The
// signature is emitted as a hex string.
func (c *Claim) MarshalJSON() ([]byte, error) {
	raw := &rawClaim{
		ID:         c.ID,
		OwnerDID:   c.OwnerDID,
		IssuerDID:  c.IssuerDID,
		Schema:     c.Schema,
		Attributes: c.Attributes,
		ValidFrom:  c.ValidFrom,
		ValidTo:    c.ValidTo,
		Tx:         c.Tx,
	}

	if len(c.Signature) > 0 {
		raw.Signature = hex.EncodeToString(c.Signature)
	}

	data, err := marshalWithCustomFields(raw, c.CustomFields)
	if err != nil {
		return nil, fmt.Errorf("JSON marshalling of claim: %w", err)
	}

	return data, nil
}

// ParseClaim parses the JSON form of a claim. Fields outside the claim model
// are preserved in CustomFields. A malformed signature hex string fails the
// parse; a missing signature is fine, the claim is just unsigned.
func ParseClaim(data []byte) (*Claim, error) {
	raw := &rawClaim{}
	cf := make(CustomFields)

	if err := unmarshalWithCustomFields(data, raw, cf); err != nil {
		return nil, fmt.Errorf("JSON unmarshalling of claim: %w", err)
	}

	var signature []byte

	if raw.Signature != "" {
		var err error

		signature, err = hex.DecodeString(raw.Signature)
		if err != nil {
			return nil, fmt.Errorf("decode claim signature: %w", err)
		}
	}

	return &Claim{
		ID:           raw.ID,
		OwnerDID:     raw.OwnerDID,
		IssuerDID:    raw.IssuerDID,
		Schema:       raw.Schema,
		Attributes:   raw.Attributes,
		Signature:    signature,
		ValidFrom:    raw.ValidFrom,
		ValidTo:      raw.ValidTo,
		Tx:           raw.Tx,
		CustomFields: cf,
	}, nil
}

// DecodeAttributes decodes the claim attributes into out, honouring json
// struct tags.
func (c *Claim) DecodeAttributes(out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "json",
	})
	if err != nil {
		return fmt.Errorf("create attributes decoder: %w", err)
	}

	if err := decoder.Decode(c.Attributes); err != nil {
		return fmt.Errorf("decode attributes: %w", err)
	}

	return nil
}

// ValidIn reports whether at is inside the claim's validity window. A missing
// bound is open: no ValidFrom means valid arbitrarily far in the past, no
// ValidTo means no expiry.
func (c *Claim) ValidIn(at time.Time) bool {
	if c.ValidFrom != nil && at.Before(*c.ValidFrom) {
		return false
	}

	if c.ValidTo != nil && at.After(*c.ValidTo) {
		return false
	}

	return true
}

