/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mem_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/seraph-id/sdk-go/pkg/storage"
	"github.com/seraph-id/sdk-go/pkg/storage/mem"
)

func TestStorePutGet(t *testing.T) {
	t.Parallel()

	provider := mem.NewProvider()

	store, err := provider.OpenStore(randomNamespace())
	require.NoError(t, err)

	const key = "did:neoid:test:abc"
	data := []byte("value")

	err = store.Put(key, data)
	require.NoError(t, err)

	doc, err := store.Get(key)
	require.NoError(t, err)
	require.Equal(t, data, doc)

	// test update
	update := []byte(`{"key1":"value1"}`)
	err = store.Put(key, update)
	require.NoError(t, err)

	doc, err = store.Get(key)
	require.NoError(t, err)
	require.Equal(t, update, doc)

	_, err = store.Get("did:neoid:test:xyz")
	require.True(t, errors.Is(err, storage.ErrDataNotFound))

	// empty key
	_, err = store.Get("")
	require.Error(t, err)

	// nil value
	err = store.Put(key, nil)
	require.Error(t, err)

	// empty key
	err = store.Put("", data)
	require.Error(t, err)
}

func TestMultiStore(t *testing.T) {
	t.Parallel()

	provider := mem.NewProvider()

	const commonKey = "claim-1"

	data := []byte("value1")

	store1name := randomNamespace()

	store1, err := provider.OpenStore(store1name)
	require.NoError(t, err)

	store2, err := provider.OpenStore(randomNamespace())
	require.NoError(t, err)

	err = store1.Put(commonKey, data)
	require.NoError(t, err)

	doc, err := store1.Get(commonKey)
	require.NoError(t, err)
	require.Equal(t, data, doc)

	// not visible in store 2
	doc, err = store2.Get(commonKey)
	require.True(t, errors.Is(err, storage.ErrDataNotFound))
	require.Empty(t, doc)

	// reopening a namespace yields the same store
	store3, err := provider.OpenStore(store1name)
	require.NoError(t, err)

	doc, err = store3.Get(commonKey)
	require.NoError(t, err)
	require.Equal(t, data, doc)
}

func TestNamespaceCaseInsensitive(t *testing.T) {
	t.Parallel()

	provider := mem.NewProvider()

	lower, err := provider.OpenStore("claim")
	require.NoError(t, err)

	require.NoError(t, lower.Put("k", []byte("v")))

	upper, err := provider.OpenStore("CLAIM")
	require.NoError(t, err)

	doc, err := upper.Get("k")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), doc)
}

func TestCloseStore(t *testing.T) {
	t.Parallel()

	provider := mem.NewProvider()

	name := randomNamespace()

	store, err := provider.OpenStore(name)
	require.NoError(t, err)

	require.NoError(t, store.Put("k", []byte("v")))

	require.NoError(t, provider.CloseStore(name))

	// closing an unknown namespace is a no-op
	require.NoError(t, provider.CloseStore(randomNamespace()))

	// the data is gone, from old handles too
	_, err = store.Get("k")
	require.True(t, errors.Is(err, storage.ErrDataNotFound))

	store, err = provider.OpenStore(name)
	require.NoError(t, err)

	_, err = store.Get("k")
	require.True(t, errors.Is(err, storage.ErrDataNotFound))
}

func TestClose(t *testing.T) {
	t.Parallel()

	provider := mem.NewProvider()

	store1, err := provider.OpenStore(randomNamespace())
	require.NoError(t, err)

	store2, err := provider.OpenStore(randomNamespace())
	require.NoError(t, err)

	require.NoError(t, store1.Put("k1", []byte("v1")))
	require.NoError(t, store2.Put("k2", []byte("v2")))

	require.NoError(t, provider.Close())

	_, err = store1.Get("k1")
	require.True(t, errors.Is(err, storage.ErrDataNotFound))

	_, err = store2.Get("k2")
	require.True(t, errors.Is(err, storage.ErrDataNotFound))
}

func randomNamespace() string {
	return "ns" + uuid.New().String()
}
