/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package crypto

import (
	"testing"

	"github.com/btcsuite/btcutil/base58"
	"github.com/stretchr/testify/require"
)

func TestVerificationScript(t *testing.T) {
	kp, err := GenerateKeyPair()
	require.NoError(t, err)

	script := VerificationScript(kp.PublicKey)
	require.Len(t, script, PublicKeySize+2)
	require.Equal(t, opPushBytes33, script[0])
	require.Equal(t, opCheckSig, script[len(script)-1])
	require.Equal(t, PublicKeyBytes(kp.PublicKey), script[1:len(script)-1])
}

func TestAddressFromPublicKey(t *testing.T) {
	kp, err := GenerateKeyPair()
	require.NoError(t, err)

	address := AddressFromPublicKey(kp.PublicKey)

	t.Run("valid and version-pinned", func(t *testing.T) {
		require.NoError(t, ValidateAddress(address))
		require.True(t, address[0] == 'A')
	})

	t.Run("deterministic", func(t *testing.T) {
		require.Equal(t, address, AddressFromPublicKey(kp.PublicKey))
	})

	t.Run("decodes back to script hash", func(t *testing.T) {
		hash, err := AddressScriptHash(address)
		require.NoError(t, err)
		require.Equal(t, ScriptHash(VerificationScript(kp.PublicKey)), hash)
	})

	t.Run("distinct keys yield distinct addresses", func(t *testing.T) {
		other, err := GenerateKeyPair()
		require.NoError(t, err)
		require.NotEqual(t, address, AddressFromPublicKey(other.PublicKey))
	})
}

func TestValidateAddress(t *testing.T) {
	t.Run("error - not base58check", func(t *testing.T) {
		require.ErrorIs(t, ValidateAddress("definitely not an address"), ErrInvalidAddress)
	})

	t.Run("error - bad checksum", func(t *testing.T) {
		kp, err := GenerateKeyPair()
		require.NoError(t, err)

		address := AddressFromPublicKey(kp.PublicKey)

		flipped := byte('1')
		if address[len(address)-1] == '1' {
			flipped = '2'
		}

		require.ErrorIs(t, ValidateAddress(address[:len(address)-1]+string(flipped)), ErrInvalidAddress)
	})

	t.Run("error - wrong version byte", func(t *testing.T) {
		encoded := base58.CheckEncode(make([]byte, ScriptHashSize), 0x00)
		require.ErrorIs(t, ValidateAddress(encoded), ErrInvalidAddress)
	})

	t.Run("error - wrong script hash length", func(t *testing.T) {
		encoded := base58.CheckEncode(make([]byte, ScriptHashSize-1), AddressVersion)
		require.ErrorIs(t, ValidateAddress(encoded), ErrInvalidAddress)
	})
}
