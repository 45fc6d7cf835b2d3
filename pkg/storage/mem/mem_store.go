/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package mem provides an in-memory storage.Provider, the default backing
// of the claim store and the one tests use.
package mem

import (
	"errors"
	"strings"
	"sync"

	"github.com/seraph-id/sdk-go/pkg/storage"
)

// Provider is an in-memory implementation of storage.Provider.
type Provider struct {
	dbs  map[string]*memStore
	lock sync.RWMutex
}

// NewProvider instantiates an empty Provider.
func NewProvider() *Provider {
	return &Provider{dbs: make(map[string]*memStore)}
}

// OpenStore opens the store of the given namespace, creating it on first
// use. Namespaces are case-insensitive.
func (p *Provider) OpenStore(name string) (storage.Store, error) {
	if store := p.getMemStore(name); store != nil {
		return store, nil
	}

	return p.newMemStore(name), nil
}

func (p *Provider) getMemStore(name string) *memStore {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.dbs[strings.ToLower(name)]
}

func (p *Provider) newMemStore(name string) *memStore {
	p.lock.Lock()
	defer p.lock.Unlock()

	store := &memStore{db: make(map[string][]byte)}
	p.dbs[strings.ToLower(name)] = store

	return store
}

// Close drops all stores opened through this provider.
func (p *Provider) Close() error {
	p.lock.Lock()
	defer p.lock.Unlock()

	for _, store := range p.dbs {
		store.reset()
	}

	p.dbs = make(map[string]*memStore)

	return nil
}

// CloseStore drops the store of the given namespace.
func (p *Provider) CloseStore(name string) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	k := strings.ToLower(name)

	if store, ok := p.dbs[k]; ok {
		delete(p.dbs, k)
		store.reset()
	}

	return nil
}

type memStore struct {
	db map[string][]byte
	sync.RWMutex
}

// Put stores the record under the key.
func (s *memStore) Put(k string, v []byte) error {
	if k == "" || v == nil {
		return errors.New("key and value are mandatory")
	}

	s.Lock()
	s.db[k] = v
	s.Unlock()

	return nil
}

// Get fetches the record under the key.
func (s *memStore) Get(k string) ([]byte, error) {
	if k == "" {
		return nil, errors.New("key is mandatory")
	}

	s.RLock()
	data, ok := s.db[k]
	s.RUnlock()

	if !ok {
		return nil, storage.ErrDataNotFound
	}

	return data, nil
}

func (s *memStore) reset() {
	s.Lock()
	s.db = make(map[string][]byte)
	s.Unlock()
}
