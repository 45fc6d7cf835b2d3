/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuer

import (
	"time"

	"github.com/seraph-id/sdk-go/pkg/doc/claim"
)

// ClaimOption customizes a claim built by CreateClaim.
type ClaimOption func(*claim.Claim)

// WithClaimID uses the given id instead of a generated one.
func WithClaimID(id string) ClaimOption {
	return func(cl *claim.Claim) {
		cl.ID = id
	}
}

// WithValidFrom sets the start of the claim's validity window.
func WithValidFrom(t time.Time) ClaimOption {
	return func(cl *claim.Claim) {
		cl.ValidFrom = &t
	}
}

// WithValidTo sets the expiry of the claim's validity window.
func WithValidTo(t time.Time) ClaimOption {
	return func(cl *claim.Claim) {
		cl.ValidTo = &t
	}
}
