/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package crypto

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/btcsuite/btcutil/base58"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // ledger addresses are defined over RIPEMD-160
)

const (
	// AddressVersion is the version byte prefixed to script hashes before
	// Base58Check encoding.
	AddressVersion byte = 0x17

	// ScriptHashSize is the byte length of a verification script hash.
	ScriptHashSize = 20

	opPushBytes33 byte = 0x21
	opCheckSig    byte = 0xAC
)

// ErrInvalidAddress is returned when an address fails checksum, version or
// length validation.
var ErrInvalidAddress = errors.New("invalid address")

// VerificationScript builds the single-signature verification script for a
// public key: a push of the 33-byte compressed point followed by a signature
// check opcode.
func VerificationScript(pub *ecdsa.PublicKey) []byte {
	script := make([]byte, 0, PublicKeySize+2)
	script = append(script, opPushBytes33)
	script = append(script, PublicKeyBytes(pub)...)
	script = append(script, opCheckSig)

	return script
}

// ScriptHash computes RIPEMD-160 over SHA-256 of the given verification
// script.
func ScriptHash(script []byte) []byte {
	sh := sha256.Sum256(script)

	r := ripemd160.New()
	r.Write(sh[:]) //nolint:errcheck // hash.Hash Write never fails

	return r.Sum(nil)
}

// AddressFromPublicKey derives the Base58Check address controlled by the
// given public key.
func AddressFromPublicKey(pub *ecdsa.PublicKey) string {
	return base58.CheckEncode(ScriptHash(VerificationScript(pub)), AddressVersion)
}

// AddressScriptHash decodes an address back to its 20-byte script hash.
func AddressScriptHash(address string) ([]byte, error) {
	hash, version, err := base58.CheckDecode(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAddress, err.Error())
	}

	if version != AddressVersion {
		return nil, fmt.Errorf("%w: version byte 0x%x", ErrInvalidAddress, version)
	}

	if len(hash) != ScriptHashSize {
		return nil, fmt.Errorf("%w: script hash must be %d bytes, got %d", ErrInvalidAddress, ScriptHashSize, len(hash))
	}

	return hash, nil
}

// ValidateAddress checks that address is a well-formed Base58Check address
// with the expected version byte and script hash length.
func ValidateAddress(address string) error {
	_, err := AddressScriptHash(address)

	return err
}
