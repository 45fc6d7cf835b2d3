/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package claim provides wallet-side persistence of claims, keyed by claim
// id. Claims are stored in their JSON wire form, so anything a claim carries
// over the wire, custom fields included, survives storage.
package claim

import (
	"errors"
	"fmt"

	docclaim "github.com/seraph-id/sdk-go/pkg/doc/claim"
	"github.com/seraph-id/sdk-go/pkg/storage"
)

const nameSpace = "claim"

// ErrNotFound signals that no claim is stored under the given id.
var ErrNotFound = errors.New("claim not found under given id")

// Store stores claims.
type Store struct {
	store storage.Store
}

type provider interface {
	StorageProvider() storage.Provider
}

// New returns a new claim store on top of the context's storage provider.
func New(ctx provider) (*Store, error) {
	store, err := ctx.StorageProvider().OpenStore(nameSpace)
	if err != nil {
		return nil, fmt.Errorf("open claim store: %w", err)
	}

	return &Store{store: store}, nil
}

// SaveClaim stores a claim under its id, overwriting any previous version.
func (s *Store) SaveClaim(cl *docclaim.Claim) error {
	if cl == nil || cl.ID == "" {
		return errors.New("claim has no id")
	}

	claimBytes, err := cl.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal claim: %w", err)
	}

	if err := s.store.Put(cl.ID, claimBytes); err != nil {
		return fmt.Errorf("put claim: %w", err)
	}

	return nil
}

// GetClaim fetches the claim stored under the given id.
func (s *Store) GetClaim(claimID string) (*docclaim.Claim, error) {
	claimBytes, err := s.store.Get(claimID)
	if err != nil {
		if errors.Is(err, storage.ErrDataNotFound) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("get claim: %w", err)
	}

	cl, err := docclaim.ParseClaim(claimBytes)
	if err != nil {
		return nil, fmt.Errorf("parse stored claim: %w", err)
	}

	return cl, nil
}
