package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

type captureTransport struct {
	req *http.Request
}

func (t *captureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.req = req
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: req}, nil
}

type staticReader struct {
	token   string
	present bool
}

func (r staticReader) Token(context.Context) (string, bool) {
	return r.token, r.present
}

func roundTrip(t *testing.T, transport *AuthorizeTransport, target string, header http.Header) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if header != nil {
		req.Header = header
	}
	if _, err := transport.RoundTrip(req); err != nil {
		t.Fatalf("RoundTrip error: %v", err)
	}
	capture := transport.Base.(*captureTransport)
	return capture.req
}

func TestAuthorizeTransport_AddsBearerHeader(t *testing.T) {
	transport := &AuthorizeTransport{
		Base:   &captureTransport{},
		Tokens: staticReader{token: "abc.def.ghi", present: true},
	}

	sent := roundTrip(t, transport, "https://api.example.com/api/product/GetAllAsync", nil)
	if got := sent.Header.Get("Authorization"); got != "Bearer abc.def.ghi" {
		t.Fatalf("unexpected Authorization header: %q", got)
	}
}

func TestAuthorizeTransport_TrimsToken(t *testing.T) {
	transport := &AuthorizeTransport{
		Base:   &captureTransport{},
		Tokens: staticReader{token: "  abc.def.ghi \n", present: true},
	}

	sent := roundTrip(t, transport, "https://api.example.com/api/Category/GetAllAsync", nil)
	if got := sent.Header.Get("Authorization"); got != "Bearer abc.def.ghi" {
		t.Fatalf("token not trimmed: %q", got)
	}
}

func TestAuthorizeTransport_SkipsAuthEndpoints(t *testing.T) {
	for _, path := range []string{"/api/auth/login", "/api/auth/register"} {
		transport := &AuthorizeTransport{
			Base:   &captureTransport{},
			Tokens: staticReader{token: "abc.def.ghi", present: true},
		}

		sent := roundTrip(t, transport, "https://api.example.com"+path, nil)
		if got := sent.Header.Get("Authorization"); got != "" {
			t.Fatalf("header must not be added for %s, got %q", path, got)
		}
	}
}

func TestAuthorizeTransport_NoToken(t *testing.T) {
	transport := &AuthorizeTransport{
		Base:   &captureTransport{},
		Tokens: staticReader{},
	}

	sent := roundTrip(t, transport, "https://api.example.com/api/product/GetAllAsync", nil)
	if got := sent.Header.Get("Authorization"); got != "" {
		t.Fatalf("header must not be added without a token, got %q", got)
	}
}

func TestAuthorizeTransport_PreservesExistingHeader(t *testing.T) {
	transport := &AuthorizeTransport{
		Base:   &captureTransport{},
		Tokens: staticReader{token: "abc.def.ghi", present: true},
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer original")
	sent := roundTrip(t, transport, "https://api.example.com/api/product/GetAllAsync", header)
	if got := sent.Header.Get("Authorization"); got != "Bearer original" {
		t.Fatalf("existing header must win, got %q", got)
	}
}

func TestAuthorizeTransport_DoesNotMutateCaller(t *testing.T) {
	transport := &AuthorizeTransport{
		Base:   &captureTransport{},
		Tokens: staticReader{token: "abc.def.ghi", present: true},
	}

	req := httptest.NewRequest(http.MethodGet, "https://api.example.com/api/product/GetAllAsync", nil)
	if _, err := transport.RoundTrip(req); err != nil {
		t.Fatalf("RoundTrip error: %v", err)
	}
	if got := req.Header.Get("Authorization"); got != "" {
		t.Fatalf("caller's request was mutated: %q", got)
	}
}
