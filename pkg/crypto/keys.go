/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package crypto implements the signature engine of the claim protocol: ECDSA
// over the NIST P-256 curve with SHA-256, producing the fixed-size r‖s
// signatures the ledger's own signature check expects, plus the key and
// address codecs shared by all roles.
package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
)

const (
	// PrivateKeySize is the byte length of a raw private key scalar.
	PrivateKeySize = 32

	// PublicKeySize is the byte length of a compressed public key point.
	PublicKeySize = 33

	// SignatureSize is the byte length of an r‖s signature.
	SignatureSize = 64
)

// ErrInvalidKey is returned when key material cannot be decoded.
var ErrInvalidKey = errors.New("invalid key")

// KeyPair holds an identity's ECDSA P-256 key pair.
type KeyPair struct {
	PrivateKey *ecdsa.PrivateKey
	PublicKey  *ecdsa.PublicKey
}

// GenerateKeyPair creates a new ECDSA P-256 key pair.
func GenerateKeyPair() (*KeyPair, error) {
	privKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate key pair: %w", err)
	}

	return &KeyPair{PrivateKey: privKey, PublicKey: &privKey.PublicKey}, nil
}

// PublicKeyBytes returns the compressed SEC1 encoding of pub (33 bytes).
func PublicKeyBytes(pub *ecdsa.PublicKey) []byte {
	return elliptic.MarshalCompressed(pub.Curve, pub.X, pub.Y)
}

// PublicKeyHex returns the compressed public key encoded as a hex string.
func PublicKeyHex(pub *ecdsa.PublicKey) string {
	return hex.EncodeToString(PublicKeyBytes(pub))
}

// ParsePublicKey decodes a compressed SEC1 P-256 public key point.
func ParsePublicKey(data []byte) (*ecdsa.PublicKey, error) {
	if len(data) != PublicKeySize {
		return nil, fmt.Errorf("%w: public key must be %d bytes, got %d", ErrInvalidKey, PublicKeySize, len(data))
	}

	x, y := elliptic.UnmarshalCompressed(elliptic.P256(), data)
	if x == nil {
		return nil, fmt.Errorf("%w: point is not on curve P-256", ErrInvalidKey)
	}

	return &ecdsa.PublicKey{Curve: elliptic.P256(), X: x, Y: y}, nil
}

// ParsePublicKeyHex decodes a hex-encoded compressed public key.
func ParsePublicKeyHex(s string) (*ecdsa.PublicKey, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKey, err.Error())
	}

	return ParsePublicKey(data)
}

// PrivateKeyBytes returns the raw 32-byte private key scalar, left-padded.
func PrivateKeyBytes(priv *ecdsa.PrivateKey) []byte {
	out := make([]byte, PrivateKeySize)
	priv.D.FillBytes(out)

	return out
}

// PrivateKeyHex returns the raw private key scalar encoded as a hex string.
func PrivateKeyHex(priv *ecdsa.PrivateKey) string {
	return hex.EncodeToString(PrivateKeyBytes(priv))
}

// ParsePrivateKey builds a P-256 private key from its raw 32-byte scalar.
func ParsePrivateKey(data []byte) (*ecdsa.PrivateKey, error) {
	if len(data) != PrivateKeySize {
		return nil, fmt.Errorf("%w: private key must be %d bytes, got %d", ErrInvalidKey, PrivateKeySize, len(data))
	}

	curve := elliptic.P256()

	d := new(big.Int).SetBytes(data)
	if d.Sign() == 0 || d.Cmp(curve.Params().N) >= 0 {
		return nil, fmt.Errorf("%w: private key scalar out of range", ErrInvalidKey)
	}

	priv := &ecdsa.PrivateKey{D: d}
	priv.PublicKey.Curve = curve
	priv.PublicKey.X, priv.PublicKey.Y = curve.ScalarBaseMult(data)

	return priv, nil
}

// ParsePrivateKeyHex decodes a hex-encoded raw private key scalar.
func ParsePrivateKeyHex(s string) (*ecdsa.PrivateKey, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKey, err.Error())
	}

	return ParsePrivateKey(data)
}
