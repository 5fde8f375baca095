// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into a *ServerError. Statuses
// without a JSON-RPC error body get a code derived from the status.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return &ServerError{Code: "bad_request", Message: body}
	case http.StatusUnauthorized:
		return &ServerError{Code: "unauthorized", Message: body}
	case http.StatusForbidden:
		return &ServerError{Code: "forbidden", Message: body}
	case http.StatusNotFound:
		return &ServerError{Code: "not_found", Message: body}
	case http.StatusConflict:
		return &ServerError{Code: "conflict", Message: body}
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: http %d: %s", ErrConnection, resp.StatusCode(), body)
	default:
		return &ServerError{Code: fmt.Sprintf("http_%d", resp.StatusCode()), Message: body}
	}
}

// mapTransportError classifies an error returned by resty before any
// response was received.
func mapTransportError(op string, err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%s: %w: %w", op, ErrTimeout, err)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrConnection, err)
	}
}
