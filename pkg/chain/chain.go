/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package chain defines the capability interfaces the SDK uses to talk to
// the smart contracts backing the claim protocol. An implementation is
// scoped to one contract: the script hash is bound at construction, not
// passed per call. Role clients compose the narrow capabilities they need,
// a read-only verifier takes a Querier and nothing else.
package chain

import (
	"context"
)

// Querier performs read-only contract invocations. Implementations must not
// require gas or produce transactions.
type Querier interface {
	// Query runs a read-only operation and returns its decoded result.
	// A fault of the transport or the contract is an error; a negative
	// answer (false, empty) is a result.
	Query(ctx context.Context, op string, args ...interface{}) (*Result, error)
}

// Invoker performs state-changing contract invocations by relaying signed
// transactions.
type Invoker interface {
	// Invoke runs a state-changing operation and returns the transaction
	// receipt. Acceptance of the transaction does not imply the state
	// change is final on the ledger.
	Invoke(ctx context.Context, op string, params InvokeParams, args ...interface{}) (*Receipt, error)
}

// InvokeParams carries per-transaction parameters. There are no defaults,
// callers state what an invocation may cost.
type InvokeParams struct {
	// Gas attached to the invocation transaction.
	Gas float64

	// Signer is an opaque reference the implementation resolves to the
	// identity signing the transaction (a wallet account label or key
	// handle). Never raw key material.
	Signer string
}

// Receipt identifies an accepted state-changing transaction.
type Receipt struct {
	TxID string
}
