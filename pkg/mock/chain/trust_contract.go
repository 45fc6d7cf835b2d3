/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mockchain

import (
	"context"
	"fmt"
	"sync"

	"github.com/seraph-id/sdk-go/pkg/chain"
)

// TrustContract is an in-memory stand-in for the root-of-trust smart
// contract: a registry of (issuer, schema) pairs the trust anchor vouches
// for.
type TrustContract struct {
	ContractName string
	ScriptHash   string

	mu      sync.Mutex
	trusted map[string]bool
	txSeq   int
}

// NewTrustContract builds a root-of-trust contract fixture with no
// registrations.
func NewTrustContract(name string) *TrustContract {
	return &TrustContract{
		ContractName: name,
		ScriptHash:   "0xmockrot",
		trusted:      make(map[string]bool),
	}
}

// Query implements chain.Querier over the fixture state.
func (c *TrustContract) Query(_ context.Context, op string, args ...interface{}) (*chain.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch op {
	case chain.OpGetName:
		return &chain.Result{Value: c.ContractName}, nil

	case chain.OpIsTrusted:
		key, err := c.trustKey(op, args)
		if err != nil {
			return nil, err
		}

		// Unknown pairs read as false, absence of trust is not a fault.
		return &chain.Result{Value: c.trusted[key]}, nil

	default:
		return nil, c.fault(op, "unknown operation")
	}
}

// Invoke implements chain.Invoker over the fixture state.
func (c *TrustContract) Invoke(_ context.Context, op string,
	_ chain.InvokeParams, args ...interface{}) (*chain.Receipt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key, err := c.trustKey(op, args)
	if err != nil {
		return nil, err
	}

	switch op {
	case chain.OpRegisterIssuer:
		c.trusted[key] = true
	case chain.OpDeactivateIssuer:
		delete(c.trusted, key)
	default:
		return nil, c.fault(op, "unknown operation")
	}

	c.txSeq++

	return &chain.Receipt{TxID: fmt.Sprintf("tx-%04d", c.txSeq)}, nil
}

func (c *TrustContract) trustKey(op string, args []interface{}) (string, error) {
	issuer, err := stringArg(op, args, 0)
	if err != nil {
		return "", err
	}

	schema, err := stringArg(op, args, 1)
	if err != nil {
		return "", err
	}

	return issuer + "|" + schema, nil
}

func (c *TrustContract) fault(op, exception string) error {
	return &chain.Error{Op: op, ScriptHash: c.ScriptHash, Exception: exception}
}
