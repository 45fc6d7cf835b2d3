/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package crypto

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/google/tink/go/signature/subtle"
)

// Tink subtle primitive parameters. The IEEE P1363 encoding yields the
// fixed-size r‖s signatures the ledger contracts verify, as opposed to DER.
const (
	signHashAlg  = "SHA256"
	signCurve    = "NIST_P256"
	signEncoding = "IEEE_P1363"
)

// Sign signs data with the given private key and returns a 64-byte r‖s
// signature. The data is hashed with SHA-256 as part of the ECDSA operation,
// so callers passing an already-computed claim hash get the hash-of-hash
// construction the ledger's verifier expects.
func Sign(data []byte, privKey *ecdsa.PrivateKey) ([]byte, error) {
	signer, err := subtle.NewECDSASignerFromPrivateKey(signHashAlg, signEncoding, privKey)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}

	sig, err := signer.Sign(data)
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}

	return sig, nil
}

// Verify reports whether signature is a valid r‖s signature of data under the
// given public key. Malformed signatures of any length simply verify false.
func Verify(signature, data []byte, pubKey *ecdsa.PublicKey) bool {
	if pubKey == nil || pubKey.Curve == nil || len(signature) != SignatureSize {
		return false
	}

	verifier, err := subtle.NewECDSAVerifierFromPublicKey(signHashAlg, signEncoding, pubKey)
	if err != nil {
		return false
	}

	return verifier.Verify(signature, data) == nil
}
