/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package rot implements the root-of-trust role: a registry contract where a
// trust anchor vouches for (issuer, schema) pairs. Relying parties only
// query it, the anchor also registers and deactivates issuers.
//
// Trust checking is composed by the caller: validating a claim and checking
// whether its issuer is trusted for the claim's schema are separate
// questions, against separate contracts.
package rot

import (
	"context"
	"errors"
	"fmt"

	"github.com/seraph-id/sdk-go/pkg/chain"
	"github.com/seraph-id/sdk-go/pkg/common/log"
	"github.com/seraph-id/sdk-go/pkg/doc/did"
)

var logger = log.New("seraphid-sdk/client/rot")

// Client talks to one root-of-trust contract.
type Client struct {
	query   chain.Querier
	invoker chain.Invoker
}

// New builds a root-of-trust client. invoker may be nil for read-only use,
// relying parties never invoke.
func New(query chain.Querier, invoker chain.Invoker) (*Client, error) {
	if query == nil {
		return nil, errors.New("root-of-trust client needs a chain querier")
	}

	return &Client{query: query, invoker: invoker}, nil
}

// Name reads the display name of the root-of-trust contract.
func (c *Client) Name(ctx context.Context) (string, error) {
	result, err := c.query.Query(ctx, chain.OpGetName)
	if err != nil {
		return "", fmt.Errorf("get contract name: %w", err)
	}

	return result.String()
}

// IsTrusted reports whether the trust anchor vouches for issuerDID issuing
// claims of the named schema. The DID prefix is stripped before the query,
// the contract keys registrations by ledger address. An unknown pair is
// false, never an error.
func (c *Client) IsTrusted(ctx context.Context, issuerDID, schemaName string) (bool, error) {
	if issuerDID == "" || schemaName == "" {
		return false, errors.New("issuer DID and schema name must not be empty")
	}

	result, err := c.query.Query(ctx, chain.OpIsTrusted, did.StripPrefix(issuerDID), schemaName)
	if err != nil {
		return false, fmt.Errorf("is trusted: %w", err)
	}

	return result.Bool()
}

// RegisterIssuer records that the trust anchor vouches for issuerDID issuing
// claims of the named schema.
func (c *Client) RegisterIssuer(ctx context.Context, issuerDID, schemaName string,
	params chain.InvokeParams) (string, error) {
	receipt, err := c.invoke(ctx, chain.OpRegisterIssuer, issuerDID, schemaName, params)
	if err != nil {
		return "", err
	}

	logger.Infof("registered issuer %s for schema %s, tx %s", issuerDID, schemaName, receipt.TxID)

	return receipt.TxID, nil
}

// DeactivateIssuer withdraws the anchor's endorsement of issuerDID for the
// named schema. Future IsTrusted reads answer false; claims already issued
// are untouched, their standing is the verifier's policy call.
func (c *Client) DeactivateIssuer(ctx context.Context, issuerDID, schemaName string,
	params chain.InvokeParams) (string, error) {
	receipt, err := c.invoke(ctx, chain.OpDeactivateIssuer, issuerDID, schemaName, params)
	if err != nil {
		return "", err
	}

	logger.Infof("deactivated issuer %s for schema %s, tx %s", issuerDID, schemaName, receipt.TxID)

	return receipt.TxID, nil
}

func (c *Client) invoke(ctx context.Context, op, issuerDID, schemaName string,
	params chain.InvokeParams) (*chain.Receipt, error) {
	if c.invoker == nil {
		return nil, errors.New("root-of-trust client is read-only, no invoker configured")
	}

	if issuerDID == "" || schemaName == "" {
		return nil, errors.New("issuer DID and schema name must not be empty")
	}

	receipt, err := c.invoker.Invoke(ctx, op, params, did.StripPrefix(issuerDID), schemaName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return receipt, nil
}
