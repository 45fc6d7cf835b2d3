/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package seraphid enables Go developers to build solutions on the Seraph ID
// self-sovereign identity protocol (https://www.seraphid.io).
//
// Packages for end developer usage
//
// pkg/client/issuer: Creates, signs and anchors claims against the issuer's
// smart contract, and registers the schemas they are bound to.
// Reference: https://pkg.go.dev/github.com/seraph-id/sdk-go/pkg/client/issuer
//
// pkg/client/verifier: Validates presented claims, offline against issuer
// keys and online against the ledger.
// Reference: https://pkg.go.dev/github.com/seraph-id/sdk-go/pkg/client/verifier
//
// pkg/client/rot: Resolves and administers issuer trust through a root of
// trust contract.
// Reference: https://pkg.go.dev/github.com/seraph-id/sdk-go/pkg/client/rot
//
// Basic workflow
//
//	1) Bind a chain.Querier/chain.Invoker to your contract (pkg/chain/rpchttp,
//	   or your own node binding).
//	2) Create a client instance using its New func, passing the capability.
//	3) Use the funcs provided by each client to create your solution!
package seraphid
