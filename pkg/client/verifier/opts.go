/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifier

import (
	"fmt"
	"time"

	"github.com/seraph-id/sdk-go/pkg/doc/claim"
)

type validateOptions struct {
	at     time.Time
	custom []func(*claim.Claim) error
}

// ValidateOption customizes a single ValidateClaim run.
type ValidateOption func(*validateOptions)

// WithValidationTime checks the claim's validity window against at instead
// of the wall clock.
func WithValidationTime(at time.Time) ValidateOption {
	return func(o *validateOptions) {
		o.at = at
	}
}

// WithCustomValidator appends a caller-supplied predicate to the pipeline.
// Custom validators run last, only on claims that passed every built-in
// check. A predicate returning an error, or panicking, fails the claim, it
// never aborts validation.
func WithCustomValidator(validate func(*claim.Claim) error) ValidateOption {
	return func(o *validateOptions) {
		o.custom = append(o.custom, validate)
	}
}

func newValidateOptions(opts []ValidateOption) *validateOptions {
	options := &validateOptions{at: time.Now()}

	for _, opt := range opts {
		opt(options)
	}

	return options
}

// runCustomValidator contains a predicate's failure modes: both errors and
// panics read as a failed check.
func runCustomValidator(validate func(*claim.Claim) error, cl *claim.Claim) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("custom validator panicked: %v", r)
		}
	}()

	return validate(cl)
}
