/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package did implements parsing and formatting of decentralized identifiers
// of the neoid method. A neoid DID binds an identity to a ledger address on
// one of the known networks, for example did:neoid:test:AYhE3Svuqdfh1RtzvE8dVpx8jkWLPZWML7.
package did

import (
	"errors"
	"fmt"
	"strings"

	"github.com/seraph-id/sdk-go/pkg/crypto"
)

// Method is the DID method name registered for ledger-anchored identities.
const Method = "neoid"

const (
	schemePrefix = "did"
	numSegments  = 4
)

// Network identifies the ledger network a DID is anchored on.
type Network string

// Networks with well-known magic on the ledger.
const (
	MainNet Network = "main"
	TestNet Network = "test"
	PrivNet Network = "priv"
)

// ErrMalformedDID is returned when a DID string does not have the
// did:neoid:<network>:<address> shape.
var ErrMalformedDID = errors.New("malformed DID")

// DID is a parsed decentralized identifier of the neoid method.
type DID struct {
	Network Network
	Address string
}

// String assembles the canonical string form of the DID.
func (d *DID) String() string {
	return fmt.Sprintf("%s:%s:%s:%s", schemePrefix, Method, d.Network, d.Address)
}

// Format builds a DID string for the given network and address. The address
// must pass checksum validation; the caller owns proving control of it.
func Format(network Network, address string) (string, error) {
	if !knownNetwork(network) {
		return "", fmt.Errorf("%w: unknown network %q", ErrMalformedDID, network)
	}

	if err := crypto.ValidateAddress(address); err != nil {
		return "", err
	}

	d := DID{Network: network, Address: address}

	return d.String(), nil
}

// Parse splits a DID string into its parsed form. It accepts exactly the
// strings Format produces: four non-empty colon-separated segments with the
// did scheme, the neoid method and a known network. The address segment is
// checked for shape only, not for checksum validity.
func Parse(didString string) (*DID, error) {
	parts := strings.Split(didString, ":")
	if len(parts) != numSegments {
		return nil, fmt.Errorf("%w: expected %d segments, got %d", ErrMalformedDID, numSegments, len(parts))
	}

	if parts[0] != schemePrefix {
		return nil, fmt.Errorf("%w: scheme must be %q", ErrMalformedDID, schemePrefix)
	}

	if parts[1] != Method {
		return nil, fmt.Errorf("%w: method must be %q", ErrMalformedDID, Method)
	}

	network := Network(parts[2])
	if !knownNetwork(network) {
		return nil, fmt.Errorf("%w: unknown network %q", ErrMalformedDID, parts[2])
	}

	if parts[3] == "" {
		return nil, fmt.Errorf("%w: empty address", ErrMalformedDID)
	}

	return &DID{Network: network, Address: parts[3]}, nil
}

// MustParse is a Parse that panics on error, for tests and static DIDs.
func MustParse(didString string) *DID {
	d, err := Parse(didString)
	if err != nil {
		panic(err)
	}

	return d
}

// Validate reports whether didString parses and carries a checksum-valid
// address.
func Validate(didString string) error {
	d, err := Parse(didString)
	if err != nil {
		return err
	}

	return crypto.ValidateAddress(d.Address)
}

// StripPrefix cuts the did:neoid:<network>: prefix off a DID string, leaving
// the bare address. Strings with fewer segments are returned unchanged, so
// passing an already-bare address is harmless.
func StripPrefix(didString string) string {
	parts := strings.SplitN(didString, ":", numSegments)
	if len(parts) != numSegments {
		return didString
	}

	return parts[numSegments-1]
}

func knownNetwork(n Network) bool {
	switch n {
	case MainNet, TestNet, PrivNet:
		return true
	default:
		return false
	}
}
