// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/Syncano/syncano-dotnet-sub001/internal/config"
	"github.com/Syncano/syncano-dotnet-sub001/internal/logger"
	"github.com/Syncano/syncano-dotnet-sub001/internal/utils"
	"github.com/Syncano/syncano-dotnet-sub001/internal/validators"
	"github.com/Syncano/syncano-dotnet-sub001/models"
	"github.com/go-resty/resty/v2"
)

const (
	rpcPath        = "/api/jsonrpc"
	rpcVersion     = "2.0"
	headerAPIKey   = "X-API-KEY"
	headerInstance = "X-INSTANCE"
)

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *ServerError    `json:"error,omitempty"`
}

type httpServerAdapter struct {
	client    *utils.HTTPClient
	validator validators.Validator
	nextID    atomic.Uint64

	mu       sync.RWMutex
	apiKey   string
	instance string
	closed   bool

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the stateless JSON-RPC over HTTP
// implementation of [ServerAdapter]. It normalises and validates the base URL
// from adapterCfg.HTTPAddress and configures the underlying HTTP client with
// the resolved base URL and request timeout.
//
// Every call is a single POST to /api/jsonrpc carrying the credentials
// stored by Login in request headers. The HTTP backend cannot deliver push
// notifications.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{
		client:    client,
		validator: validators.NewSubscriptionValidator(),
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [ServerAdapter]. The HTTP backend is stateless, so Login
// only validates and stores the credentials; a rejected key surfaces as a
// [*ServerError] on the first call.
func (h *httpServerAdapter) Login(ctx context.Context, apiKey, instanceName string) error {
	creds := models.Credentials{
		APIKey:   strings.TrimSpace(apiKey),
		Instance: strings.TrimSpace(instanceName),
	}
	if err := h.validator.Validate(ctx, creds); err != nil {
		return NewValidationError(err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrConnectionClosed
	}
	h.apiKey = creds.APIKey
	h.instance = creds.Instance
	return nil
}

// Call implements [ServerAdapter]. It POSTs a JSON-RPC envelope for method
// and decodes the "result" member into result. An "error" member in the
// response body, or a non-2xx status, yields a [*ServerError].
func (h *httpServerAdapter) Call(ctx context.Context, method string, params any, result any) error {
	if method == "" {
		return fmt.Errorf("%w: method is required", ErrValidation)
	}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	id := h.nextID.Add(1)
	var rpcResp rpcResponse
	resp, err := req.
		SetBody(rpcRequest{JSONRPC: rpcVersion, ID: id, Method: method, Params: params}).
		SetResult(&rpcResp).
		Post(rpcPath)
	if err != nil {
		return mapTransportError(method, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Str("method", method).Int("status", resp.StatusCode()).Err(err).Msg("call rejected")
		return err
	}
	if rpcResp.Error != nil {
		h.logger.Debug().Str("method", method).Str("code", rpcResp.Error.Code).Msg("call rejected")
		return rpcResp.Error
	}
	if rpcResp.ID != 0 && rpcResp.ID != id {
		return fmt.Errorf("%w: response id %d does not match request id %d", ErrProtocol, rpcResp.ID, id)
	}

	if result == nil || len(rpcResp.Result) == 0 {
		return nil
	}
	if err = json.Unmarshal(rpcResp.Result, result); err != nil {
		return fmt.Errorf("%w: decode %s result: %w", ErrProtocol, method, err)
	}
	return nil
}

// Close implements [ServerAdapter]. It forgets the stored credentials; later
// calls fail with [ErrConnectionClosed].
func (h *httpServerAdapter) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	h.apiKey = ""
	h.instance = ""
	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return nil, ErrConnectionClosed
	}

	req := h.client.R().SetContext(ctx)
	if h.apiKey != "" {
		req.SetHeader(headerAPIKey, h.apiKey)
	}
	if h.instance != "" {
		req.SetHeader(headerInstance, h.instance)
	}
	return req, nil
}
