/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package storage defines the key-value storage interfaces wallet-side
// claim persistence is built on.
package storage

import "errors"

// ErrDataNotFound is returned when no record exists under a key.
var ErrDataNotFound = errors.New("data not found")

// Provider hands out named stores.
type Provider interface {
	// OpenStore opens the store of the given namespace, creating it on
	// first use.
	OpenStore(name string) (Store, error)

	// CloseStore closes the store of the given namespace.
	CloseStore(name string) error

	// Close closes all stores opened through this provider.
	Close() error
}

// Store is a flat key-value record store.
type Store interface {
	// Put stores the record under the key.
	Put(k string, v []byte) error

	// Get fetches the record under the key, ErrDataNotFound when absent.
	Get(k string) ([]byte, error)
}
