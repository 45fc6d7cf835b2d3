/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package issuer implements the issuer role: building and signing claims,
// registering schemas and anchoring or revoking claims on the issuer
// contract. The read and validation capabilities of the verifier role are
// embedded, an issuer validates its own output the same way a verifier
// validates anyone's.
package issuer

import (
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/seraph-id/sdk-go/pkg/chain"
	"github.com/seraph-id/sdk-go/pkg/client/verifier"
	"github.com/seraph-id/sdk-go/pkg/common/log"
	"github.com/seraph-id/sdk-go/pkg/crypto"
	"github.com/seraph-id/sdk-go/pkg/doc/claim"
	"github.com/seraph-id/sdk-go/pkg/doc/did"
)

var logger = log.New("seraphid-sdk/client/issuer")

// Client acts as one issuer identity against one issuer contract.
type Client struct {
	*verifier.Client

	did     *did.DID
	invoker chain.Invoker
}

// New builds an issuer client acting as didString against the issuer
// contract behind query and invoker.
func New(didString string, query chain.Querier, invoker chain.Invoker) (*Client, error) {
	parsed, err := did.Parse(didString)
	if err != nil {
		return nil, fmt.Errorf("issuer DID: %w", err)
	}

	if invoker == nil {
		return nil, errors.New("issuer client needs a chain invoker")
	}

	reader, err := verifier.New(query)
	if err != nil {
		return nil, err
	}

	return &Client{Client: reader, did: parsed, invoker: invoker}, nil
}

// DID returns the issuer identity claims are signed as.
func (c *Client) DID() string {
	return c.did.String()
}

// CreateClaim builds an unsigned claim owned by ownerDID against the named
// schema. The claim id is generated unless WithClaimID provides one.
func (c *Client) CreateClaim(schemaName, ownerDID string,
	attributes map[string]interface{}, opts ...ClaimOption) (*claim.Claim, error) {
	if schemaName == "" {
		return nil, errors.New("schema name is empty")
	}

	if _, err := did.Parse(ownerDID); err != nil {
		return nil, fmt.Errorf("owner DID: %w", err)
	}

	cl := &claim.Claim{
		OwnerDID:   ownerDID,
		IssuerDID:  c.did.String(),
		Schema:     schemaName,
		Attributes: attributes,
	}

	for _, opt := range opts {
		opt(cl)
	}

	if cl.ID == "" {
		cl.ID = uuid.New().String()
	}

	return cl, nil
}

// SignClaim hashes the claim's canonical form, signs the digest with priv
// and records the signature on the claim. IssuerDID is set to this client's
// identity; it rides outside the signed envelope, so the assignment does not
// change the digest.
func (c *Client) SignClaim(cl *claim.Claim, priv *ecdsa.PrivateKey) error {
	if cl == nil {
		return errors.New("claim is nil")
	}

	if priv == nil {
		return errors.New("signing key is nil")
	}

	cl.IssuerDID = c.did.String()

	digest, err := claim.Hash(cl)
	if err != nil {
		return err
	}

	signature, err := crypto.Sign(digest, priv)
	if err != nil {
		return fmt.Errorf("sign claim: %w", err)
	}

	cl.Signature = signature

	return nil
}

// RegisterSchema registers a new claim schema on the issuer contract.
// Schemas are write-once, registering an existing name faults. On success
// the schema's Tx is set to the transaction id.
func (c *Client) RegisterSchema(ctx context.Context, s *claim.Schema, params chain.InvokeParams) (string, error) {
	if s == nil || s.Name == "" {
		return "", errors.New("schema has no name")
	}

	definition, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("serialize schema: %w", err)
	}

	receipt, err := c.invoker.Invoke(ctx, chain.OpRegisterSchema, params, string(definition))
	if err != nil {
		return "", fmt.Errorf("register schema: %w", err)
	}

	s.Tx = receipt.TxID
	logger.Infof("registered schema %s, tx %s", s.Name, receipt.TxID)

	return receipt.TxID, nil
}

// InjectClaim anchors a signed claim's id on the issuer contract. On success
// the claim's Tx is set to the transaction id.
func (c *Client) InjectClaim(ctx context.Context, cl *claim.Claim, params chain.InvokeParams) (string, error) {
	if cl == nil || cl.ID == "" {
		return "", errors.New("claim has no id")
	}

	if len(cl.Signature) == 0 {
		return "", errors.New("claim is not signed")
	}

	receipt, err := c.invoker.Invoke(ctx, chain.OpInjectClaim, params, cl.ID)
	if err != nil {
		return "", fmt.Errorf("inject claim: %w", err)
	}

	cl.Tx = receipt.TxID
	logger.Infof("injected claim %s, tx %s", cl.ID, receipt.TxID)

	return receipt.TxID, nil
}

// IssueClaim signs the claim and anchors it in one go.
func (c *Client) IssueClaim(ctx context.Context, cl *claim.Claim,
	priv *ecdsa.PrivateKey, params chain.InvokeParams) (string, error) {
	if err := c.SignClaim(cl, priv); err != nil {
		return "", err
	}

	return c.InjectClaim(ctx, cl, params)
}

// RevokeClaim revokes a claim id on the issuer contract. Revocation is
// terminal: the id can never become valid again. Whether a claim is
// revokable is governed by its schema, the contract faults otherwise.
func (c *Client) RevokeClaim(ctx context.Context, claimID string, params chain.InvokeParams) (string, error) {
	if claimID == "" {
		return "", errors.New("claim id is empty")
	}

	receipt, err := c.invoker.Invoke(ctx, chain.OpRevokeClaim, params, claimID)
	if err != nil {
		return "", fmt.Errorf("revoke claim: %w", err)
	}

	logger.Infof("revoked claim %s, tx %s", claimID, receipt.TxID)

	return receipt.TxID, nil
}
