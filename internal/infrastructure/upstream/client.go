// Package upstream implements the HTTP client for the remote catalog,
// identity, email, and blob API. The transport chain is
// observe → authorize → net/http: every outgoing request gets the bearer
// header attached (unless excluded) and every response passes the failure
// observer before reaching the caller.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dkcommerce/storefront-gateway/internal/core/domain"
	"github.com/dkcommerce/storefront-gateway/internal/core/ports"
)

const defaultTimeout = 15 * time.Second

// Config captures the settings for the upstream client.
type Config struct {
	// BaseURL is the API base, typically ending in /api.
	BaseURL string
	Timeout time.Duration
}

// Client is the shared base for all upstream endpoint clients.
type Client struct {
	baseURL string
	apiRoot string
	http    *http.Client
	log     zerolog.Logger
}

// New builds the upstream client. Outgoing requests read the token through
// the given reader; the session service is the only component that writes it.
func New(cfg Config, tokens ports.TokenReader, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	base := strings.TrimRight(cfg.BaseURL, "/")
	transport := &ObserveTransport{
		Base: &AuthorizeTransport{Tokens: tokens},
		Log:  log,
	}

	return &Client{
		baseURL: base,
		apiRoot: apiRoot(base),
		http:    &http.Client{Timeout: timeout, Transport: transport},
		log:     log,
	}
}

var trailingAPI = regexp.MustCompile(`/api/?$`)

// apiRoot strips a trailing /api segment so relative asset paths resolve
// against the host root.
func apiRoot(baseURL string) string {
	return trailingAPI.ReplaceAllString(baseURL, "")
}

var absoluteURL = regexp.MustCompile(`(?i)^(blob:|data:|https?://|//)`)

// AbsoluteURL normalises an asset reference returned by the upstream into an
// absolute URL. Already-absolute references (http, protocol-relative, blob,
// data) pass through unchanged; rooted and bare paths are joined to the API
// root.
func (c *Client) AbsoluteURL(raw string) string {
	if raw == "" {
		return ""
	}
	if absoluteURL.MatchString(raw) {
		return raw
	}
	if strings.HasPrefix(raw, "/") {
		return c.apiRoot + raw
	}
	return c.apiRoot + "/" + raw
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}

// Ping reports whether the upstream host answers at all. Any HTTP response
// counts as reachable; only transport failures are errors.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiRoot+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upstream ping: %w", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	return c.sendJSON(ctx, http.MethodPost, path, body, out)
}

func (c *Client) putJSON(ctx context.Context, path string, body, out any) error {
	return c.sendJSON(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.url(path), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// do executes the request and decodes a JSON body into out when non-nil.
// Failures are surfaced exactly once; there is no retry anywhere in this
// client.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		// Cancellation must stay visible to errors.Is for the superseded-
		// request status mapping.
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %s %s: %v", domain.ErrUpstream, req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return statusError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", domain.ErrUpstream, req.URL.Path, err)
	}
	return nil
}

// statusError maps upstream failure statuses onto domain sentinels so the
// rest of the gateway never inspects raw status codes.
func statusError(resp *http.Response) error {
	_, _ = io.Copy(io.Discard, resp.Body)
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	default:
		return fmt.Errorf("%w: %s returned %d", domain.ErrUpstream, resp.Request.URL.Path, resp.StatusCode)
	}
}
