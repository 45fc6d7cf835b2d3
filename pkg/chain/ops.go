/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package chain

// Operation names of the issuer and root-of-trust contracts. These strings
// are part of the contract ABI and must match it byte for byte.
const (
	// Both contracts.
	OpGetName = "getName"

	// Issuer contract.
	OpGetSchemaDetails = "getSchemaDetails"
	OpGetPublicKeys    = "getPublicKeys"
	OpIsValidClaim     = "isValidClaim"
	OpRegisterSchema   = "registerSchema"
	OpInjectClaim      = "injectClaim"
	OpRevokeClaim      = "revokeClaim"

	// Root-of-trust contract.
	OpIsTrusted        = "isTrusted"
	OpRegisterIssuer   = "registerIssuer"
	OpDeactivateIssuer = "deactivateIssuer"
)
