/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rpchttp_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seraph-id/sdk-go/pkg/chain"
	"github.com/seraph-id/sdk-go/pkg/chain/rpchttp"
)

const testScriptHash = "0x48d47fd034b81c84b63bbab2bea21b4dda916ff1"

var (
	_ chain.Querier = (*rpchttp.Oracle)(nil)
	_ chain.Invoker = (*rpchttp.Oracle)(nil)
)

func TestNew(t *testing.T) {
	t.Run("test new oracle", func(t *testing.T) {
		o, err := rpchttp.New(testScriptHash, rpchttp.Config{Endpoint: "https://gateway.example.com/invoke"})
		require.NoError(t, err)
		require.NotNil(t, o)
	})

	t.Run("test missing script hash", func(t *testing.T) {
		o, err := rpchttp.New("", rpchttp.Config{Endpoint: "https://gateway.example.com/invoke"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "script hash is mandatory")
		require.Nil(t, o)
	})

	t.Run("test invalid endpoint", func(t *testing.T) {
		o, err := rpchttp.New(testScriptHash, rpchttp.Config{Endpoint: "not a url"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "gateway endpoint invalid")
		require.Nil(t, o)
	})
}

func TestQuery(t *testing.T) {
	t.Run("test success", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
			require.Equal(t, http.MethodPost, req.Method)
			require.Equal(t, "application/json", req.Header.Get("Content-Type"))

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			require.Equal(t, testScriptHash, body["scriptHash"])
			require.Equal(t, "getSchemaDetails", body["operation"])
			require.Equal(t, []interface{}{"KYC"}, body["args"])

			fmt.Fprint(res, `{"state":"HALT","stack":["{\"name\":\"KYC\"}"]}`)
		}))

		defer func() { testServer.Close() }()

		o, err := rpchttp.New(testScriptHash, rpchttp.Config{Endpoint: testServer.URL})
		require.NoError(t, err)

		result, err := o.Query(context.Background(), "getSchemaDetails", "KYC")
		require.NoError(t, err)

		s, err := result.String()
		require.NoError(t, err)
		require.Equal(t, `{"name":"KYC"}`, s)
	})

	t.Run("test empty stack", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
			fmt.Fprint(res, `{"state":"HALT","stack":[]}`)
		}))

		defer func() { testServer.Close() }()

		o, err := rpchttp.New(testScriptHash, rpchttp.Config{Endpoint: testServer.URL})
		require.NoError(t, err)

		result, err := o.Query(context.Background(), "isValidClaim", "claim-1")
		require.NoError(t, err)

		valid, err := result.Bool()
		require.NoError(t, err)
		require.False(t, valid)
	})

	t.Run("test contract fault", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
			fmt.Fprint(res, `{"state":"FAULT","exception":"schema KYC does not exist"}`)
		}))

		defer func() { testServer.Close() }()

		o, err := rpchttp.New(testScriptHash, rpchttp.Config{Endpoint: testServer.URL})
		require.NoError(t, err)

		result, err := o.Query(context.Background(), "getSchemaDetails", "KYC")
		require.Error(t, err)
		require.Nil(t, result)

		chainErr, ok := chain.IsChainError(err)
		require.True(t, ok)
		require.Equal(t, "getSchemaDetails", chainErr.Op)
		require.Equal(t, testScriptHash, chainErr.ScriptHash)
		require.Contains(t, chainErr.Exception, "schema KYC does not exist")
	})

	t.Run("test unexpected gateway state", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
			fmt.Fprint(res, `{"state":"BREAK"}`)
		}))

		defer func() { testServer.Close() }()

		o, err := rpchttp.New(testScriptHash, rpchttp.Config{Endpoint: testServer.URL})
		require.NoError(t, err)

		result, err := o.Query(context.Background(), "getName")
		require.Error(t, err)
		require.Contains(t, err.Error(), "unexpected gateway state")
		require.Nil(t, result)
	})

	t.Run("test retries server errors", func(t *testing.T) {
		var attempts int32

		testServer := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
			if atomic.AddInt32(&attempts, 1) < 3 {
				res.WriteHeader(http.StatusBadGateway)
				return
			}

			fmt.Fprint(res, `{"state":"HALT","stack":["My Company"]}`)
		}))

		defer func() { testServer.Close() }()

		o, err := rpchttp.New(testScriptHash, rpchttp.Config{Endpoint: testServer.URL, MaxRetries: 2})
		require.NoError(t, err)

		result, err := o.Query(context.Background(), "getName")
		require.NoError(t, err)
		require.EqualValues(t, 3, atomic.LoadInt32(&attempts))

		name, err := result.String()
		require.NoError(t, err)
		require.Equal(t, "My Company", name)
	})

	t.Run("test gives up after max retries", func(t *testing.T) {
		var attempts int32

		testServer := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
			atomic.AddInt32(&attempts, 1)
			res.WriteHeader(http.StatusInternalServerError)
		}))

		defer func() { testServer.Close() }()

		o, err := rpchttp.New(testScriptHash, rpchttp.Config{Endpoint: testServer.URL, MaxRetries: 1})
		require.NoError(t, err)

		result, err := o.Query(context.Background(), "getName")
		require.Error(t, err)
		require.Contains(t, err.Error(), "query getName")
		require.Contains(t, err.Error(), "gateway status 500")
		require.Nil(t, result)
		require.EqualValues(t, 2, atomic.LoadInt32(&attempts))
	})

	t.Run("test does not retry client errors", func(t *testing.T) {
		var attempts int32

		testServer := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
			atomic.AddInt32(&attempts, 1)
			res.WriteHeader(http.StatusBadRequest)
		}))

		defer func() { testServer.Close() }()

		o, err := rpchttp.New(testScriptHash, rpchttp.Config{Endpoint: testServer.URL, MaxRetries: 3})
		require.NoError(t, err)

		result, err := o.Query(context.Background(), "getName")
		require.Error(t, err)
		require.Contains(t, err.Error(), "gateway status 400")
		require.Nil(t, result)
		require.EqualValues(t, 1, atomic.LoadInt32(&attempts))
	})

	t.Run("test endpoint down", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {}))
		testServer.Close()

		o, err := rpchttp.New(testScriptHash, rpchttp.Config{Endpoint: testServer.URL})
		require.NoError(t, err)

		result, err := o.Query(context.Background(), "getName")
		require.Error(t, err)
		require.Contains(t, err.Error(), "query getName")
		require.Nil(t, result)
	})

	t.Run("test cancelled context", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
			fmt.Fprint(res, `{"state":"HALT"}`)
		}))

		defer func() { testServer.Close() }()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		o, err := rpchttp.New(testScriptHash, rpchttp.Config{Endpoint: testServer.URL, MaxRetries: 10})
		require.NoError(t, err)

		result, err := o.Query(ctx, "getName")
		require.Error(t, err)
		require.Nil(t, result)
	})
}

func TestInvoke(t *testing.T) {
	t.Run("test success", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			require.Equal(t, testScriptHash, body["scriptHash"])
			require.Equal(t, "injectClaim", body["operation"])
			require.Equal(t, 0.1, body["gas"])
			require.Equal(t, "issuer-wallet", body["signer"])

			fmt.Fprint(res, `{"state":"HALT","txid":"0x9f86d081884c"}`)
		}))

		defer func() { testServer.Close() }()

		o, err := rpchttp.New(testScriptHash, rpchttp.Config{Endpoint: testServer.URL})
		require.NoError(t, err)

		receipt, err := o.Invoke(context.Background(), "injectClaim",
			chain.InvokeParams{Gas: 0.1, Signer: "issuer-wallet"}, "claim-1")
		require.NoError(t, err)
		require.Equal(t, "0x9f86d081884c", receipt.TxID)
	})

	t.Run("test contract fault", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
			fmt.Fprint(res, `{"state":"FAULT","exception":"claim claim-1 already exists"}`)
		}))

		defer func() { testServer.Close() }()

		o, err := rpchttp.New(testScriptHash, rpchttp.Config{Endpoint: testServer.URL})
		require.NoError(t, err)

		receipt, err := o.Invoke(context.Background(), "injectClaim", chain.InvokeParams{}, "claim-1")
		require.Error(t, err)
		require.Nil(t, receipt)

		chainErr, ok := chain.IsChainError(err)
		require.True(t, ok)
		require.Equal(t, "injectClaim", chainErr.Op)
		require.Contains(t, chainErr.Exception, "already exists")
	})

	t.Run("test never retries", func(t *testing.T) {
		var attempts int32

		testServer := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
			atomic.AddInt32(&attempts, 1)
			res.WriteHeader(http.StatusInternalServerError)
		}))

		defer func() { testServer.Close() }()

		o, err := rpchttp.New(testScriptHash, rpchttp.Config{Endpoint: testServer.URL, MaxRetries: 5})
		require.NoError(t, err)

		receipt, err := o.Invoke(context.Background(), "revokeClaim", chain.InvokeParams{}, "claim-1")
		require.Error(t, err)
		require.Contains(t, err.Error(), "invoke revokeClaim")
		require.Nil(t, receipt)
		require.EqualValues(t, 1, atomic.LoadInt32(&attempts))
	})
}
