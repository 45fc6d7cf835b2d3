/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mockchain

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/seraph-id/sdk-go/pkg/chain"
	"github.com/seraph-id/sdk-go/pkg/doc/claim"
)

// IssuerContract is an in-memory stand-in for the issuer smart contract. It
// enforces the contract's storage rules: schemas are write-once, claim ids
// are single-use and revocation is terminal.
type IssuerContract struct {
	ContractName string
	PublicKeys   []string
	ScriptHash   string

	mu      sync.Mutex
	schemas map[string]string
	valid   map[string]bool
	revoked map[string]bool
	txSeq   int
}

// NewIssuerContract builds an issuer contract fixture announcing the given
// signing public keys (hex).
func NewIssuerContract(name string, publicKeys ...string) *IssuerContract {
	return &IssuerContract{
		ContractName: name,
		PublicKeys:   publicKeys,
		ScriptHash:   "0xmockissuer",
		schemas:      make(map[string]string),
		valid:        make(map[string]bool),
		revoked:      make(map[string]bool),
	}
}

// Query implements chain.Querier over the fixture state.
func (c *IssuerContract) Query(_ context.Context, op string, args ...interface{}) (*chain.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch op {
	case chain.OpGetName:
		return &chain.Result{Value: c.ContractName}, nil

	case chain.OpGetPublicKeys:
		return &chain.Result{Value: c.PublicKeys}, nil

	case chain.OpGetSchemaDetails:
		name, err := stringArg(op, args, 0)
		if err != nil {
			return nil, err
		}

		schemaJSON, ok := c.schemas[name]
		if !ok {
			return nil, c.fault(op, fmt.Sprintf("schema %s does not exist", name))
		}

		return &chain.Result{Value: schemaJSON}, nil

	case chain.OpIsValidClaim:
		id, err := stringArg(op, args, 0)
		if err != nil {
			return nil, err
		}

		return &chain.Result{Value: c.valid[id] && !c.revoked[id]}, nil

	default:
		return nil, c.fault(op, "unknown operation")
	}
}

// Invoke implements chain.Invoker over the fixture state.
func (c *IssuerContract) Invoke(_ context.Context, op string,
	_ chain.InvokeParams, args ...interface{}) (*chain.Receipt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch op {
	case chain.OpRegisterSchema:
		schemaJSON, err := stringArg(op, args, 0)
		if err != nil {
			return nil, err
		}

		var s claim.Schema
		if err := json.Unmarshal([]byte(schemaJSON), &s); err != nil {
			return nil, c.fault(op, "schema definition is not valid JSON")
		}

		if _, exists := c.schemas[s.Name]; exists {
			return nil, c.fault(op, fmt.Sprintf("schema %s already exists", s.Name))
		}

		c.schemas[s.Name] = schemaJSON

		return c.receipt(), nil

	case chain.OpInjectClaim:
		id, err := stringArg(op, args, 0)
		if err != nil {
			return nil, err
		}

		if c.revoked[id] {
			return nil, c.fault(op, fmt.Sprintf("claim %s was revoked", id))
		}

		if c.valid[id] {
			return nil, c.fault(op, fmt.Sprintf("claim %s already exists", id))
		}

		c.valid[id] = true

		return c.receipt(), nil

	case chain.OpRevokeClaim:
		id, err := stringArg(op, args, 0)
		if err != nil {
			return nil, err
		}

		if !c.valid[id] && !c.revoked[id] {
			return nil, c.fault(op, fmt.Sprintf("claim %s does not exist", id))
		}

		c.valid[id] = false
		c.revoked[id] = true

		return c.receipt(), nil

	default:
		return nil, c.fault(op, "unknown operation")
	}
}

func (c *IssuerContract) receipt() *chain.Receipt {
	c.txSeq++

	return &chain.Receipt{TxID: fmt.Sprintf("tx-%04d", c.txSeq)}
}

func (c *IssuerContract) fault(op, exception string) error {
	return &chain.Error{Op: op, ScriptHash: c.ScriptHash, Exception: exception}
}

func stringArg(op string, args []interface{}, i int) (string, error) {
	if i >= len(args) {
		return "", &chain.Error{Op: op, Exception: fmt.Sprintf("argument %d missing", i)}
	}

	s, ok := args[i].(string)
	if !ok {
		return "", &chain.Error{Op: op, Exception: fmt.Sprintf("argument %d is not a string", i)}
	}

	return s, nil
}
