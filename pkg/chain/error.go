/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package chain

import (
	"errors"
	"fmt"
)

// Error is a failed contract operation: the transport broke, the node
// rejected the call or the contract execution faulted. It is never used for
// negative query answers.
type Error struct {
	// Op is the contract operation that failed.
	Op string

	// ScriptHash identifies the contract the operation ran against.
	ScriptHash string

	// Exception is the diagnostic reported by the node or contract, empty
	// when the failure never reached the contract.
	Exception string

	// Err is the underlying transport error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("chain operation %q on contract %s failed", e.Op, e.ScriptHash)

	if e.Exception != "" {
		msg += ": " + e.Exception
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes the underlying transport error to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsChainError reports whether err is (or wraps) a chain operation failure,
// and returns it when so.
func IsChainError(err error) (*Error, bool) {
	var chainErr *Error
	if errors.As(err, &chainErr) {
		return chainErr, true
	}

	return nil, false
}
