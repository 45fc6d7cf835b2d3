/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package rpchttp implements the chain capabilities over a plain HTTP JSON
// gateway in front of a node. The gateway accepts a POST per contract
// invocation and reports either the VM result or the exception that stopped
// it. Read-only queries are retried with exponential backoff on transport
// failures; state-changing invocations never are, replaying a write is not
// safe on its own.
package rpchttp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"

	"github.com/seraph-id/sdk-go/pkg/chain"
	"github.com/seraph-id/sdk-go/pkg/common/log"
)

var logger = log.New("seraphid-sdk/rpchttp")

const (
	gatewayContentType = "application/json"

	stateHalt  = "HALT"
	stateFault = "FAULT"
)

// Config configures an Oracle.
type Config struct {
	// Endpoint is the gateway URL invocations are posted to.
	Endpoint string

	// HTTPClient is the client used for gateway calls. Defaults to a plain
	// http.Client.
	HTTPClient *http.Client

	// MaxRetries bounds the retries of a failed query, zero disables
	// retrying.
	MaxRetries uint64
}

// Oracle talks to one contract through an HTTP gateway. It implements both
// chain.Querier and chain.Invoker; read-only clients should still be handed
// only the capability they need.
type Oracle struct {
	scriptHash string
	endpoint   string
	client     *http.Client
	maxRetries uint64
}

// New returns an Oracle bound to the contract at scriptHash.
func New(scriptHash string, cfg Config) (*Oracle, error) {
	if scriptHash == "" {
		return nil, errors.New("contract script hash is mandatory")
	}

	if _, err := url.ParseRequestURI(cfg.Endpoint); err != nil {
		return nil, errors.Wrap(err, "gateway endpoint invalid")
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	return &Oracle{
		scriptHash: scriptHash,
		endpoint:   cfg.Endpoint,
		client:     client,
		maxRetries: cfg.MaxRetries,
	}, nil
}

// gatewayRequest is the wire form of one contract invocation.
type gatewayRequest struct {
	ScriptHash string        `json:"scriptHash"`
	Operation  string        `json:"operation"`
	Args       []interface{} `json:"args,omitempty"`
	Gas        float64       `json:"gas,omitempty"`
	Signer     string        `json:"signer,omitempty"`
}

// gatewayResponse is the gateway's answer: the VM state plus the result
// stack on HALT, the exception on FAULT, and the transaction id for writes.
type gatewayResponse struct {
	State     string        `json:"state"`
	Stack     []interface{} `json:"stack,omitempty"`
	TxID      string        `json:"txid,omitempty"`
	Exception string        `json:"exception,omitempty"`
}

// Query implements chain.Querier. Transport failures and 5xx answers are
// retried up to MaxRetries times; a contract fault is returned as a
// chain.Error without retrying.
func (o *Oracle) Query(ctx context.Context, op string, args ...interface{}) (*chain.Result, error) {
	var resp *gatewayResponse

	post := func() error {
		var err error

		resp, err = o.post(ctx, &gatewayRequest{
			ScriptHash: o.scriptHash,
			Operation:  op,
			Args:       args,
		})
		if err == nil {
			return nil
		}

		var transient transientError
		if errors.As(err, &transient) {
			return err
		}

		return backoff.Permanent(err)
	}

	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), o.maxRetries), ctx)

	if err := backoff.Retry(post, bo); err != nil {
		return nil, errors.Wrapf(err, "query %s", op)
	}

	if resp.State == stateFault {
		return nil, &chain.Error{Op: op, ScriptHash: o.scriptHash, Exception: resp.Exception}
	}

	if resp.State != stateHalt {
		return nil, errors.Errorf("query %s: unexpected gateway state %q", op, resp.State)
	}

	result := &chain.Result{}
	if len(resp.Stack) > 0 {
		result.Value = resp.Stack[0]
	}

	return result, nil
}

// Invoke implements chain.Invoker. It posts the invocation exactly once.
func (o *Oracle) Invoke(ctx context.Context, op string, params chain.InvokeParams,
	args ...interface{}) (*chain.Receipt, error) {
	resp, err := o.post(ctx, &gatewayRequest{
		ScriptHash: o.scriptHash,
		Operation:  op,
		Args:       args,
		Gas:        params.Gas,
		Signer:     params.Signer,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "invoke %s", op)
	}

	if resp.State == stateFault {
		return nil, &chain.Error{Op: op, ScriptHash: o.scriptHash, Exception: resp.Exception}
	}

	if resp.State != stateHalt {
		return nil, errors.Errorf("invoke %s: unexpected gateway state %q", op, resp.State)
	}

	return &chain.Receipt{TxID: resp.TxID}, nil
}

// post runs one gateway round trip. Failures worth retrying, network faults
// and 5xx statuses, come back as transientError.
func (o *Oracle) post(ctx context.Context, greq *gatewayRequest) (*gatewayResponse, error) {
	body, err := json.Marshal(greq)
	if err != nil {
		return nil, errors.Wrap(err, "marshal gateway request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "create gateway request")
	}

	req.Header.Set("Content-Type", gatewayContentType)

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, transientError{errors.Wrap(err, "gateway post failed")}
	}

	defer closeResponseBody(resp.Body)

	respBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, transientError{errors.Wrap(err, "read gateway response")}
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, transientError{errors.Errorf("gateway status %d: %s", resp.StatusCode, respBody)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("gateway status %d: %s", resp.StatusCode, respBody)
	}

	gresp := &gatewayResponse{}
	if err := json.Unmarshal(respBody, gresp); err != nil {
		return nil, errors.Wrap(err, "unmarshal gateway response")
	}

	return gresp, nil
}

type transientError struct {
	err error
}

func (e transientError) Error() string {
	return e.err.Error()
}

func (e transientError) Unwrap() error {
	return e.err
}

func closeResponseBody(respBody io.Closer) {
	if err := respBody.Close(); err != nil {
		logger.Errorf("Failed to close response body: %v", err)
	}
}
