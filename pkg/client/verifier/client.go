/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package verifier implements the verifier role: checking claims offline
// against known keys and schemas, and online against the issuer contract the
// client is bound to. The verifier role is read-only, it needs nothing
// beyond a chain.Querier.
package verifier

import (
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bluele/gcache"

	"github.com/seraph-id/sdk-go/pkg/chain"
	"github.com/seraph-id/sdk-go/pkg/common/log"
	"github.com/seraph-id/sdk-go/pkg/crypto"
	"github.com/seraph-id/sdk-go/pkg/doc/claim"
)

var logger = log.New("seraphid-sdk/client/verifier")

// Client verifies claims against one issuer contract.
type Client struct {
	query   chain.Querier
	schemas gcache.Cache
}

// New builds a verifier client reading from the issuer contract behind
// query.
func New(query chain.Querier) (*Client, error) {
	if query == nil {
		return nil, errors.New("verifier client needs a chain querier")
	}

	// Registered schemas are immutable, resolved ones are cached for the
	// client's lifetime.
	return &Client{query: query, schemas: gcache.New(0).Build()}, nil
}

// Name reads the display name of the issuer contract.
func (c *Client) Name(ctx context.Context) (string, error) {
	result, err := c.query.Query(ctx, chain.OpGetName)
	if err != nil {
		return "", fmt.Errorf("get contract name: %w", err)
	}

	return result.String()
}

// PublicKeys reads the hex-encoded signing keys the issuer contract
// announces.
func (c *Client) PublicKeys(ctx context.Context) ([]string, error) {
	result, err := c.query.Query(ctx, chain.OpGetPublicKeys)
	if err != nil {
		return nil, fmt.Errorf("get issuer public keys: %w", err)
	}

	return result.Strings()
}

// GetSchemaDetails resolves a schema by name through the issuer contract.
// Results are cached, schemas cannot change once registered.
func (c *Client) GetSchemaDetails(ctx context.Context, name string) (*claim.Schema, error) {
	if name == "" {
		return nil, errors.New("schema name is empty")
	}

	if cached, err := c.schemas.Get(name); err == nil {
		if s, ok := cached.(claim.Schema); ok {
			return &s, nil
		}
	}

	result, err := c.query.Query(ctx, chain.OpGetSchemaDetails, name)
	if err != nil {
		return nil, fmt.Errorf("get schema details: %w", err)
	}

	raw, err := result.String()
	if err != nil {
		return nil, fmt.Errorf("get schema details: %w", err)
	}

	if raw == "" {
		return nil, fmt.Errorf("schema %q not found", name)
	}

	var s claim.Schema
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("parse schema details: %w", err)
	}

	if err := c.schemas.Set(name, s); err != nil {
		logger.Debugf("schema cache rejected %q: %s", name, err)
	}

	return &s, nil
}

// IsValidClaim asks the issuer contract whether the claim id is currently
// valid. The contract answers false both for revoked and for never-anchored
// ids, the two cases are indistinguishable on chain.
func (c *Client) IsValidClaim(ctx context.Context, claimID string) (bool, error) {
	if claimID == "" {
		return false, errors.New("claim id is empty")
	}

	result, err := c.query.Query(ctx, chain.OpIsValidClaim, claimID)
	if err != nil {
		return false, fmt.Errorf("is valid claim: %w", err)
	}

	return result.Bool()
}

// ValidateClaim runs the full validation pipeline against the issuer
// contract: signature under the issuer's announced keys, schema conformance,
// on-chain validity, validity window, then any custom validators. The first
// failing check ends the pipeline. A fault that prevents a verdict (an
// unreachable oracle) is returned as an error with a zero result.
func (c *Client) ValidateClaim(ctx context.Context, cl *claim.Claim,
	opts ...ValidateOption) (claim.VerificationResult, error) {
	if cl == nil {
		return claim.Fail(claim.CheckSignature, errors.New("claim is nil")), nil
	}

	options := newValidateOptions(opts)

	keys, err := c.issuerKeys(ctx)
	if err != nil {
		return claim.VerificationResult{}, err
	}

	if result := verifySignature(cl, keys...); !result.Valid {
		return result, nil
	}

	schema, err := c.GetSchemaDetails(ctx, cl.Schema)
	if err != nil {
		return claim.VerificationResult{}, err
	}

	if result := claim.ValidateAttributes(cl, schema); !result.Valid {
		return result, nil
	}

	valid, err := c.IsValidClaim(ctx, cl.ID)
	if err != nil {
		return claim.VerificationResult{}, err
	}

	if !valid {
		return claim.Fail(claim.CheckRevocation,
			fmt.Errorf("claim %s is not valid on the ledger (revoked or never anchored)", cl.ID)), nil
	}

	if !cl.ValidIn(options.at) {
		return claim.Fail(claim.CheckValidity,
			fmt.Errorf("claim %s is outside its validity window at %s", cl.ID, options.at.Format(time.RFC3339))), nil
	}

	for _, validator := range options.custom {
		if err := runCustomValidator(validator, cl); err != nil {
			return claim.Fail(claim.CheckCustom, err), nil
		}
	}

	return claim.Pass(), nil
}

// issuerKeys resolves and parses the issuer's announced signing keys. Keys
// that do not parse are skipped, one bad entry must not block verification
// under the remaining ones.
func (c *Client) issuerKeys(ctx context.Context) ([]*ecdsa.PublicKey, error) {
	encoded, err := c.PublicKeys(ctx)
	if err != nil {
		return nil, err
	}

	keys := make([]*ecdsa.PublicKey, 0, len(encoded))

	for _, hexKey := range encoded {
		key, err := crypto.ParsePublicKeyHex(hexKey)
		if err != nil {
			logger.Warnf("skipping unparseable issuer key %q: %s", hexKey, err)
			continue
		}

		keys = append(keys, key)
	}

	return keys, nil
}
