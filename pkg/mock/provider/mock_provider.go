/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package provider provides a mock of the context stores are built on.
package provider

import "github.com/seraph-id/sdk-go/pkg/storage"

// Provider mocks the context needed for store initialization.
type Provider struct {
	StorageProviderValue storage.Provider
}

// StorageProvider returns the mock storage provider.
func (p *Provider) StorageProvider() storage.Provider {
	return p.StorageProviderValue
}
