package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-stable-ramp/internal/logger"
	"github.com/sbilibin2017/gw-stable-ramp/internal/metrics"
	"github.com/sbilibin2017/gw-stable-ramp/internal/models"
)

// BlindPayFacade talks to the BlindPay REST API. Every method is exactly one
// authenticated request; nothing is retried.
type BlindPayFacade struct {
	baseURL    string
	instanceID string
	apiKey     string
	client     *http.Client
}

// NewBlindPayFacade creates a facade for one BlindPay instance.
// Missing credentials are reported per call as models.ErrConfiguration.
func NewBlindPayFacade(baseURL, instanceID, apiKey string, timeout time.Duration) *BlindPayFacade {
	return &BlindPayFacade{
		baseURL:    strings.TrimRight(baseURL, "/"),
		instanceID: instanceID,
		apiKey:     apiKey,
		client:     &http.Client{Timeout: timeout},
	}
}

// Configured reports whether credentials were provided.
func (f *BlindPayFacade) Configured() bool {
	return f.instanceID != "" && f.apiKey != ""
}

// do sends one request and decodes a 2xx body into out. It returns the raw body
// so callers can keep the provider payload.
func (f *BlindPayFacade) do(
	ctx context.Context,
	op, method, path string,
	query url.Values,
	body any,
	out any,
) ([]byte, error) {
	if !f.Configured() {
		logger.Log.Errorw("blindpay credentials missing", "operation", op)
		return nil, models.ErrConfiguration
	}

	u := f.baseURL + "/instances/" + url.PathEscape(f.instanceID) + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: marshal request: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		metrics.ObserveProviderRequest(op, 0, time.Since(start))
		logger.Log.Errorw("blindpay request failed", "operation", op, "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %s: %v", models.ErrUpstreamProvider, op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	metrics.ObserveProviderRequest(op, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: read response: %v", models.ErrUpstreamProvider, op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		perr := newProviderError(resp.StatusCode, raw)
		logger.Log.Warnw("blindpay non-2xx response",
			"operation", op,
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"summary", perr.Summary,
		)
		return nil, perr
	}

	logger.Log.Debugw("blindpay response", "operation", op, "status", resp.StatusCode, "size", len(raw))

	if out != nil && len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return raw, fmt.Errorf("%w: %s: decode response: %v", models.ErrUpstreamProvider, op, err)
		}
	}
	return raw, nil
}

// newProviderError builds a ProviderError from a non-2xx body, keeping the
// parsed JSON when possible and the raw text otherwise.
func newProviderError(status int, raw []byte) *models.ProviderError {
	perr := &models.ProviderError{StatusCode: status}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err == nil {
		perr.Body = parsed
		perr.Summary = summarize(parsed)
	} else {
		text := strings.TrimSpace(string(raw))
		perr.Body = text
		perr.Summary = text
	}

	if perr.Summary == "" {
		perr.Summary = http.StatusText(status)
	}
	return perr
}

// summarize picks the most descriptive message out of a provider error body.
func summarize(body any) string {
	obj, ok := body.(map[string]any)
	if !ok {
		return ""
	}
	for _, key := range []string{"message", "error", "detail"} {
		if s, ok := obj[key].(string); ok && s != "" {
			return s
		}
	}
	if errs, ok := obj["errors"].([]any); ok && len(errs) > 0 {
		if first, ok := errs[0].(map[string]any); ok {
			for _, key := range []string{"message", "detail", "title"} {
				if s, ok := first[key].(string); ok && s != "" {
					return s
				}
			}
		}
	}
	return ""
}

// decodeList accepts both a bare JSON array and a {"data": [...]} envelope.
func decodeList[T any](raw []byte) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	items := []T{}
	if len(raw) == 0 {
		return items, nil
	}
	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var envelope struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data != nil {
		items = envelope.Data
	}
	return items, nil
}

// unixTime reads a provider timestamp that may be seconds or milliseconds.
func unixTime(v int64) time.Time {
	switch {
	case v <= 0:
		return time.Time{}
	case v > 1_000_000_000_000:
		return time.UnixMilli(v).UTC()
	default:
		return time.Unix(v, 0).UTC()
	}
}
