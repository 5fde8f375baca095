// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Syncano/syncano-dotnet-sub001/internal/config"
	"github.com/Syncano/syncano-dotnet-sub001/internal/logger"
	"github.com/Syncano/syncano-dotnet-sub001/internal/validators"
	"github.com/Syncano/syncano-dotnet-sub001/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRPC is a JSON-RPC backend whose behaviour is supplied per test.
type fakeRPC struct {
	hits    atomic.Int64
	handler func(w http.ResponseWriter, r *http.Request, req rpcRequest)
}

func newFakeRPC(t *testing.T, handler func(w http.ResponseWriter, r *http.Request, req rpcRequest)) (*fakeRPC, *httptest.Server) {
	t.Helper()
	f := &fakeRPC{handler: handler}

	r := chi.NewRouter()
	r.Post(rpcPath, func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)
		var req rpcRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.handler(w, r, req)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return f, srv
}

func writeRPC(w http.ResponseWriter, resp rpcResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// ── NewHTTPServerAdapter ─────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "adds https scheme", raw: "api.syncano.com", want: "https://api.syncano.com"},
		{name: "keeps scheme and trims slash", raw: "http://localhost:8080/", want: "http://localhost:8080"},
		{name: "trims spaces", raw: "  http://host  ", want: "http://host"},
		{name: "empty", raw: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_MissingArguments_NoRequest(t *testing.T) {
	f, srv := newFakeRPC(t, func(w http.ResponseWriter, _ *http.Request, req rpcRequest) {
		writeRPC(w, rpcResponse{JSONRPC: rpcVersion, ID: req.ID})
	})
	a := newTestAdapter(t, srv.URL)

	err := a.Login(context.Background(), "", "instance")
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, validators.ErrEmptyAPIKey)

	err = a.Login(context.Background(), "key", " ")
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, validators.ErrEmptyInstance)

	err = a.Login(context.Background(), "\t", "")
	assert.ErrorIs(t, err, validators.ErrEmptyAPIKey)

	assert.Equal(t, int64(0), f.hits.Load())
}

func TestLogin_CredentialsSentOnCall(t *testing.T) {
	_, srv := newFakeRPC(t, func(w http.ResponseWriter, r *http.Request, req rpcRequest) {
		assert.Equal(t, "secret", r.Header.Get(headerAPIKey))
		assert.Equal(t, "my-instance", r.Header.Get(headerInstance))
		writeRPC(w, rpcResponse{JSONRPC: rpcVersion, ID: req.ID})
	})
	a := newTestAdapter(t, srv.URL)

	require.NoError(t, a.Login(context.Background(), "secret", "my-instance"))
	require.NoError(t, a.Call(context.Background(), "project.get", nil, nil))
}

// ── Call ─────────────────────────────────────────────────────────────────────

func TestCall_DecodesResult(t *testing.T) {
	_, srv := newFakeRPC(t, func(w http.ResponseWriter, _ *http.Request, req rpcRequest) {
		assert.Equal(t, "project.get_one", req.Method)
		assert.Equal(t, rpcVersion, req.JSONRPC)
		params, _ := req.Params.(map[string]any)
		writeRPC(w, rpcResponse{
			JSONRPC: rpcVersion,
			ID:      req.ID,
			Result:  json.RawMessage(`{"id":"` + params["project_id"].(string) + `","name":"Demo"}`),
		})
	})
	a := newTestAdapter(t, srv.URL)

	var got models.Project
	err := a.Call(context.Background(), "project.get_one", map[string]string{"project_id": "42"}, &got)

	require.NoError(t, err)
	assert.Equal(t, "42", got.ID)
	assert.Equal(t, "Demo", got.Name)
}

func TestCall_RPCErrorIsServerError(t *testing.T) {
	_, srv := newFakeRPC(t, func(w http.ResponseWriter, _ *http.Request, req rpcRequest) {
		writeRPC(w, rpcResponse{JSONRPC: rpcVersion, ID: req.ID, Error: &ServerError{Code: "not_found", Message: "project not found"}})
	})
	a := newTestAdapter(t, srv.URL)

	err := a.Call(context.Background(), "project.get_one", nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServer)
	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, "not_found", serverErr.Code)
}

func TestCall_HTTPStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, want: ErrServer},
		{name: "not found", status: http.StatusNotFound, want: ErrServer},
		{name: "bad gateway", status: http.StatusBadGateway, want: ErrConnection},
		{name: "teapot", status: http.StatusTeapot, want: ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, srv := newFakeRPC(t, func(w http.ResponseWriter, _ *http.Request, _ rpcRequest) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			})
			a := newTestAdapter(t, srv.URL)

			err := a.Call(context.Background(), "project.get", nil, nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCall_ContextDeadline_IsTimeout(t *testing.T) {
	_, srv := newFakeRPC(t, func(w http.ResponseWriter, _ *http.Request, req rpcRequest) {
		time.Sleep(200 * time.Millisecond)
		writeRPC(w, rpcResponse{JSONRPC: rpcVersion, ID: req.ID})
	})
	a := newTestAdapter(t, srv.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := a.Call(ctx, "project.get", nil, nil)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestCall_EmptyMethod(t *testing.T) {
	f, srv := newFakeRPC(t, func(w http.ResponseWriter, _ *http.Request, req rpcRequest) {
		writeRPC(w, rpcResponse{JSONRPC: rpcVersion, ID: req.ID})
	})
	a := newTestAdapter(t, srv.URL)

	err := a.Call(context.Background(), "", nil, nil)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, int64(0), f.hits.Load())
}

func TestCall_MalformedResult_IsProtocolError(t *testing.T) {
	_, srv := newFakeRPC(t, func(w http.ResponseWriter, _ *http.Request, req rpcRequest) {
		writeRPC(w, rpcResponse{JSONRPC: rpcVersion, ID: req.ID, Result: json.RawMessage(`"not an object"`)})
	})
	a := newTestAdapter(t, srv.URL)

	var got models.Project
	err := a.Call(context.Background(), "project.get_one", nil, &got)
	assert.ErrorIs(t, err, ErrProtocol)
}

// ── Close ────────────────────────────────────────────────────────────────────

func TestClose_FailsFast(t *testing.T) {
	f, srv := newFakeRPC(t, func(w http.ResponseWriter, _ *http.Request, req rpcRequest) {
		writeRPC(w, rpcResponse{JSONRPC: rpcVersion, ID: req.ID})
	})
	a := newTestAdapter(t, srv.URL)

	require.NoError(t, a.Close())
	require.NoError(t, a.Close())

	err := a.Call(context.Background(), "project.get", nil, nil)
	assert.ErrorIs(t, err, ErrConnectionClosed)
	assert.ErrorIs(t, a.Login(context.Background(), "k", "i"), ErrConnectionClosed)
	assert.Equal(t, int64(0), f.hits.Load())
}

func TestServerError_Is(t *testing.T) {
	err := &ServerError{Code: "x", Message: "y"}
	assert.ErrorIs(t, err, ErrServer)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.Equal(t, "server error: x: y", err.Error())
	assert.Equal(t, "server error: y", (&ServerError{Message: "y"}).Error())
}

func TestNewValidationError(t *testing.T) {
	assert.NoError(t, NewValidationError(nil))

	err := NewValidationError(assert.AnError)
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, assert.AnError)

	assert.Same(t, err, NewValidationError(err))
}
