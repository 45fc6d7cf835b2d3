/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package claim

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
)

// HashSize is the byte length of a claim hash.
const HashSize = sha256.Size

// canonicalClaim pins the signed envelope: exactly these four fields, keys in
// lexicographic order. Declaration order matters, encoding/json emits struct
// fields in it.
type canonicalClaim struct {
	Attributes map[string]interface{} `json:"attributes"`
	ID         string                 `json:"id"`
	OwnerDID   string                 `json:"ownerDID"`
	Schema     string                 `json:"schema"`
}

// Canonical serializes the signed part of a claim into its canonical JSON
// form: an object with exactly the keys attributes, id, ownerDID and schema,
// object keys in lexicographic order at every nesting level (encoding/json
// sorts map keys). Signature, issuer, validity window and tx are not covered.
// Two claims with the same signed content canonicalize to identical bytes
// regardless of attribute insertion order.
func Canonical(c *Claim) ([]byte, error) {
	if c == nil {
		return nil, errors.New("claim is nil")
	}

	data, err := json.Marshal(&canonicalClaim{
		Attributes: c.Attributes,
		ID:         c.ID,
		OwnerDID:   c.OwnerDID,
		Schema:     c.Schema,
	})
	if err != nil {
		return nil, fmt.Errorf("canonical form of claim: %w", err)
	}

	return data, nil
}

// Hash computes the SHA-256 digest of the claim's canonical form. This is the
// value issuers sign and the ledger contracts key claims by.
func Hash(c *Claim) ([]byte, error) {
	data, err := Canonical(c)
	if err != nil {
		return nil, err
	}

	digest := sha256.Sum256(data)

	return digest[:], nil
}
