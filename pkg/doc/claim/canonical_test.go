/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package claim

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCanonical(t *testing.T) {
	t.Run("golden form", func(t *testing.T) {
		c := &Claim{
			ID:       "c1",
			OwnerDID: "did:neoid:test:own",
			Schema:   "KYC",
			Attributes: map[string]interface{}{
				"name": "Alice",
				"age":  25,
			},
		}

		data, err := Canonical(c)
		require.NoError(t, err)
		require.Equal(t,
			`{"attributes":{"age":25,"name":"Alice"},"id":"c1","ownerDID":"did:neoid:test:own","schema":"KYC"}`,
			string(data))
	})

	t.Run("covers only the signed fields", func(t *testing.T) {
		base := testClaim()

		other := testClaim()
		other.IssuerDID = "did:neoid:test:someoneelse"
		other.Signature = []byte{0x01}
		other.Tx = "0xother"
		later := time.Now().UTC()
		other.ValidFrom = &later
		other.ValidTo = nil

		baseForm, err := Canonical(base)
		require.NoError(t, err)

		otherForm, err := Canonical(other)
		require.NoError(t, err)

		require.Equal(t, baseForm, otherForm)
	})

	t.Run("attribute insertion order is irrelevant", func(t *testing.T) {
		left, err := ParseClaim([]byte(`{"id":"c1","ownerDID":"o","schema":"s","attributes":{"a":1,"b":{"y":2,"x":1}}}`))
		require.NoError(t, err)

		right, err := ParseClaim([]byte(`{"attributes":{"b":{"x":1,"y":2},"a":1},"schema":"s","ownerDID":"o","id":"c1"}`))
		require.NoError(t, err)

		leftForm, err := Canonical(left)
		require.NoError(t, err)

		rightForm, err := Canonical(right)
		require.NoError(t, err)

		require.Equal(t, leftForm, rightForm)
	})

	t.Run("nil and empty attributes", func(t *testing.T) {
		withNil, err := Canonical(&Claim{ID: "c1", OwnerDID: "o", Schema: "s"})
		require.NoError(t, err)
		require.Equal(t, `{"attributes":null,"id":"c1","ownerDID":"o","schema":"s"}`, string(withNil))

		withEmpty, err := Canonical(&Claim{ID: "c1", OwnerDID: "o", Schema: "s", Attributes: map[string]interface{}{}})
		require.NoError(t, err)
		require.Equal(t, `{"attributes":{},"id":"c1","ownerDID":"o","schema":"s"}`, string(withEmpty))
	})

	t.Run("error - nil claim", func(t *testing.T) {
		_, err := Canonical(nil)
		require.Error(t, err)
	})

	t.Run("error - unserializable attribute value", func(t *testing.T) {
		_, err := Canonical(&Claim{ID: "c1", Attributes: map[string]interface{}{"bad": math.NaN()}})
		require.Error(t, err)
	})
}

func TestHash(t *testing.T) {
	t.Run("deterministic and sized", func(t *testing.T) {
		first, err := Hash(testClaim())
		require.NoError(t, err)
		require.Len(t, first, HashSize)

		second, err := Hash(testClaim())
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("any signed field changes the hash", func(t *testing.T) {
		base, err := Hash(testClaim())
		require.NoError(t, err)

		for name, mutate := range map[string]func(*Claim){
			"id":        func(c *Claim) { c.ID = "claim-2" },
			"owner":     func(c *Claim) { c.OwnerDID = "did:neoid:test:other" },
			"schema":    func(c *Claim) { c.Schema = "AML" },
			"attribute": func(c *Claim) { c.Attributes["age"] = float64(26) },
		} {
			c := testClaim()
			mutate(c)

			h, err := Hash(c)
			require.NoError(t, err)
			require.NotEqual(t, base, h, "mutating %s must change the hash", name)
		}
	})

	t.Run("unsigned fields do not change the hash", func(t *testing.T) {
		base, err := Hash(testClaim())
		require.NoError(t, err)

		c := testClaim()
		c.Signature = nil
		c.Tx = ""
		c.IssuerDID = ""
		c.ValidFrom = nil
		c.ValidTo = nil

		h, err := Hash(c)
		require.NoError(t, err)
		require.Equal(t, base, h)
	})

	t.Run("error propagates", func(t *testing.T) {
		_, err := Hash(nil)
		require.Error(t, err)
	})
}
