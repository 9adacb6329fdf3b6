// Copyright 2020 IOTA Stiftung
// SPDX-License-Identifier: Apache-2.0

// Package chainclient talks to a contracts-enabled node over its HTTP API.
// To be used by utilities like sawfly-cli and the deployment handles.
package chainclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/atomic"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/log"

	"github.com/iotaledger/sawfly/packages/contracts"
	"github.com/iotaledger/sawfly/packages/hashing"
	"github.com/iotaledger/sawfly/packages/ledger"
	"github.com/iotaledger/sawfly/packages/webapi/models"
	"github.com/iotaledger/sawfly/packages/webapi/routes"
)

const defaultRequestTimeout = 30 * time.Second

// ErrNotFound is returned by lookups when the node has no matching entry.
var ErrNotFound = ierrors.New("not found")

type Config struct {
	// APIAddress is the base address of the node API, e.g. "http://localhost:9090".
	APIAddress string
	// KeyPair signs outgoing calls; calls go out unsigned without it.
	KeyPair *ledger.KeyPair
	// RequestTimeout bounds each HTTP request. Zero means the default.
	RequestTimeout time.Duration
}

// Client talks to one contracts-enabled node. It satisfies the chain surface
// the deployment handles are built on; the runtime call table is fetched
// once, at construction, and never re-probed per call.
type Client interface {
	contracts.Chain

	// CallTable exposes the cached runtime call table.
	CallTable() *ledger.CallTable
	// Info reports general chain info.
	Info(ctx context.Context) (*models.InfoResponse, error)
	// GetReceipt fetches the receipt filed under the given request ID.
	GetReceipt(ctx context.Context, requestID hashing.HashValue) (*ledger.Receipt, error)
	// GetCodeInfo fetches info about a stored code bundle.
	GetCodeInfo(ctx context.Context, hash hashing.HashValue) (*ledger.CodeInfo, error)
	// GetContractInfo fetches info about a deployed contract.
	GetContractInfo(ctx context.Context, address ledger.AccountID) (*ledger.ContractInfo, error)
}

var _ Client = &client{}

type client struct {
	config     Config
	baseURL    string
	httpClient http.Client
	calls      *ledger.CallTable
	nonce      *atomic.Uint64
	log        log.Logger
}

// NewClient connects to the node and fetches its runtime call table.
func NewClient(config Config, logger log.Logger) (Client, error) {
	if config.RequestTimeout == 0 {
		config.RequestTimeout = defaultRequestTimeout
	}
	c := &client{
		config:     config,
		baseURL:    strings.TrimSuffix(config.APIAddress, "/") + routes.Prefix(),
		httpClient: http.Client{Timeout: config.RequestTimeout},
		nonce:      atomic.NewUint64(0),
		log:        logger.NewChildLogger("nc"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.RequestTimeout)
	defer cancel()
	var res models.CallTableResponse
	if err := c.get(ctx, routes.RuntimeCalls(), &res); err != nil {
		return nil, ierrors.Wrap(err, "cannot fetch the runtime call table")
	}
	c.calls = res.ToCallTable()
	c.log.LogDebugf("connected to %s, runtime calls: %d", config.APIAddress, len(c.calls.List()))
	return c, nil
}

func (c *client) CallTable() *ledger.CallTable {
	return c.calls
}

func (c *client) HasCall(module, entry string) bool {
	return c.calls.Has(module, entry)
}

func (c *client) CallArity(module, entry string) (int, bool) {
	return c.calls.Arity(module, entry)
}

// SubmitCall signs the call if a key pair is configured, posts it and
// decodes the receipt. Node-side rejections surface with their message
// unchanged.
func (c *client) SubmitCall(ctx context.Context, call *ledger.Call) (*ledger.Receipt, error) {
	if len(call.Signature) == 0 && c.config.KeyPair != nil {
		call.Sign(c.config.KeyPair, c.nonce.Inc())
	}
	c.log.LogDebugf("posting %s", call.FullName())
	var res models.ReceiptResponse
	if err := c.post(ctx, routes.SubmitCall(), models.MapCall(call), &res); err != nil {
		return nil, err
	}
	return res.ToReceipt()
}

func (c *client) Info(ctx context.Context) (*models.InfoResponse, error) {
	var res models.InfoResponse
	if err := c.get(ctx, routes.Info(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *client) GetReceipt(ctx context.Context, requestID hashing.HashValue) (*ledger.Receipt, error) {
	var res models.ReceiptResponse
	if err := c.get(ctx, routes.GetReceipt(requestID.Hex()), &res); err != nil {
		return nil, err
	}
	return res.ToReceipt()
}

func (c *client) GetCodeInfo(ctx context.Context, hash hashing.HashValue) (*ledger.CodeInfo, error) {
	var res models.CodeInfoResponse
	if err := c.get(ctx, routes.GetCodeInfo(hash.Hex()), &res); err != nil {
		return nil, err
	}
	return res.ToCodeInfo()
}

func (c *client) GetContractInfo(ctx context.Context, address ledger.AccountID) (*ledger.ContractInfo, error) {
	var res models.ContractInfoResponse
	if err := c.get(ctx, routes.GetContractInfo(address.String()), &res); err != nil {
		return nil, err
	}
	return res.ToContractInfo()
}

func (c *client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *client) post(ctx context.Context, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *client) do(req *http.Request, out any) error {
	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var envelope models.ErrorResponse
		if err := json.NewDecoder(res.Body).Decode(&envelope); err == nil && envelope.Error.Message != "" {
			return ierrors.New(envelope.Error.Message)
		}
		return ierrors.Errorf("unexpected status %d from %s", res.StatusCode, req.URL)
	}
	return json.NewDecoder(res.Body).Decode(out)
}
