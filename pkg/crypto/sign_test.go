/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	kp, err := GenerateKeyPair()
	require.NoError(t, err)

	data := []byte("claim hash stand-in")

	sig, err := Sign(data, kp.PrivateKey)
	require.NoError(t, err)
	require.Len(t, sig, SignatureSize)

	t.Run("round trip", func(t *testing.T) {
		require.True(t, Verify(sig, data, kp.PublicKey))
	})

	t.Run("tampered signature fails", func(t *testing.T) {
		tampered := make([]byte, len(sig))
		copy(tampered, sig)
		tampered[0] ^= 0x01

		require.False(t, Verify(tampered, data, kp.PublicKey))
	})

	t.Run("tampered data fails", func(t *testing.T) {
		require.False(t, Verify(sig, []byte("other data"), kp.PublicKey))
	})

	t.Run("wrong key fails", func(t *testing.T) {
		other, err := GenerateKeyPair()
		require.NoError(t, err)

		require.False(t, Verify(sig, data, other.PublicKey))
	})

	t.Run("malformed signatures verify false", func(t *testing.T) {
		require.False(t, Verify(nil, data, kp.PublicKey))
		require.False(t, Verify([]byte{}, data, kp.PublicKey))
		require.False(t, Verify(sig[:SignatureSize-1], data, kp.PublicKey))
		require.False(t, Verify(make([]byte, SignatureSize+1), data, kp.PublicKey))
	})

	t.Run("nil public key verifies false", func(t *testing.T) {
		require.False(t, Verify(sig, data, nil))
	})
}
