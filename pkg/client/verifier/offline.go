/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifier

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/seraph-id/sdk-go/pkg/crypto"
	"github.com/seraph-id/sdk-go/pkg/doc/claim"
)

// VerifyOffline checks a claim without any chain access: the signature must
// verify under pub, and when schema is not nil the attributes must conform
// to it. Revocation and validity window are deliberately out of scope here,
// both need a live oracle or a policy decision by the caller.
func VerifyOffline(cl *claim.Claim, pub *ecdsa.PublicKey, schema *claim.Schema) claim.VerificationResult {
	if result := verifySignature(cl, pub); !result.Valid {
		return result
	}

	if schema != nil {
		if result := claim.ValidateAttributes(cl, schema); !result.Valid {
			return result
		}
	}

	return claim.Pass()
}

// verifySignature checks the claim signature against any of the given keys.
func verifySignature(cl *claim.Claim, keys ...*ecdsa.PublicKey) claim.VerificationResult {
	if cl == nil {
		return claim.Fail(claim.CheckSignature, errors.New("claim is nil"))
	}

	if len(cl.Signature) == 0 {
		return claim.Fail(claim.CheckSignature, errors.New("claim is not signed"))
	}

	digest, err := claim.Hash(cl)
	if err != nil {
		return claim.Fail(claim.CheckSignature, fmt.Errorf("hash claim: %w", err))
	}

	for _, key := range keys {
		if crypto.Verify(cl.Signature, digest, key) {
			return claim.Pass()
		}
	}

	return claim.Fail(claim.CheckSignature, errors.New("signature does not verify under any issuer key"))
}
