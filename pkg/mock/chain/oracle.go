/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package mockchain provides chain oracle mocks: a fully programmable Oracle
// for unit tests and in-memory contract fixtures mimicking the issuer and
// root-of-trust contracts for end-to-end tests.
package mockchain

import (
	"context"

	"github.com/seraph-id/sdk-go/pkg/chain"
)

// Oracle is a programmable mock implementation of chain.Querier and
// chain.Invoker.
type Oracle struct {
	QueryValue  *chain.Result
	QueryErr    error
	QueryFunc   func(ctx context.Context, op string, args ...interface{}) (*chain.Result, error)
	InvokeValue *chain.Receipt
	InvokeErr   error
	InvokeFunc  func(ctx context.Context, op string, params chain.InvokeParams, args ...interface{}) (*chain.Receipt, error)
}

// Query returns the programmed result.
func (o *Oracle) Query(ctx context.Context, op string, args ...interface{}) (*chain.Result, error) {
	if o.QueryFunc != nil {
		return o.QueryFunc(ctx, op, args...)
	}

	if o.QueryErr != nil {
		return nil, o.QueryErr
	}

	if o.QueryValue != nil {
		return o.QueryValue, nil
	}

	return &chain.Result{}, nil
}

// Invoke returns the programmed receipt.
func (o *Oracle) Invoke(ctx context.Context, op string,
	params chain.InvokeParams, args ...interface{}) (*chain.Receipt, error) {
	if o.InvokeFunc != nil {
		return o.InvokeFunc(ctx, op, params, args...)
	}

	if o.InvokeErr != nil {
		return nil, o.InvokeErr
	}

	if o.InvokeValue != nil {
		return o.InvokeValue, nil
	}

	return &chain.Receipt{TxID: "tx-mock"}, nil
}
