/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package claim

// Check names one stage of the claim validation pipeline.
type Check string

// Validation pipeline stages, in the order ValidateClaim runs them.
const (
	CheckSignature  Check = "signature"
	CheckSchema     Check = "schema"
	CheckRevocation Check = "revocation"
	CheckValidity   Check = "validity"
	CheckCustom     Check = "custom"
)

// VerificationResult is the outcome of verifying or validating a claim. A
// negative outcome is a value, not an error: FailedCheck names the first
// stage that failed and Err carries its diagnostic. Errors are reserved for
// faults that prevented a verdict, such as an unreachable chain oracle.
type VerificationResult struct {
	Valid       bool
	FailedCheck Check
	Err         error
}

// Pass builds the positive verification result.
func Pass() VerificationResult {
	return VerificationResult{Valid: true}
}

// Fail builds a negative verification result for the given check.
func Fail(check Check, err error) VerificationResult {
	return VerificationResult{Valid: false, FailedCheck: check, Err: err}
}
