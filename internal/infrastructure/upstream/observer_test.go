package upstream

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type staticTransport struct {
	resp *http.Response
	err  error
}

func (t *staticTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.err != nil {
		return nil, t.err
	}
	t.resp.Request = req
	return t.resp, nil
}

func TestObserveTransport_PassesResponsesUnchanged(t *testing.T) {
	body := io.NopCloser(strings.NewReader(`{"ok":true}`))
	inner := &staticTransport{resp: &http.Response{StatusCode: http.StatusOK, Body: body}}
	transport := &ObserveTransport{Base: inner, Log: zerolog.Nop()}

	req := httptest.NewRequest(http.MethodGet, "https://api.example.com/api/x", nil)
	resp, err := transport.RoundTrip(req)
	if err != nil {
		t.Fatalf("RoundTrip error: %v", err)
	}
	if resp != inner.resp {
		t.Fatalf("response must pass through unchanged")
	}
}

func TestObserveTransport_LogsFailuresAndPropagates(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	inner := &staticTransport{resp: &http.Response{StatusCode: http.StatusForbidden, Body: http.NoBody}}
	transport := &ObserveTransport{Base: inner, Log: log}

	req := httptest.NewRequest(http.MethodGet, "https://api.example.com/api/secret", nil)
	resp, err := transport.RoundTrip(req)
	if err != nil {
		t.Fatalf("RoundTrip error: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("failure status must be propagated, got %d", resp.StatusCode)
	}

	logged := buf.String()
	if !strings.Contains(logged, "/api/secret") || !strings.Contains(logged, "403") {
		t.Fatalf("failure log must carry URL and status: %s", logged)
	}
}

func TestObserveTransport_TransportErrorPropagates(t *testing.T) {
	wantErr := errors.New("connection refused")
	transport := &ObserveTransport{Base: &staticTransport{err: wantErr}, Log: zerolog.Nop()}

	req := httptest.NewRequest(http.MethodGet, "https://api.example.com/api/x", nil)
	if _, err := transport.RoundTrip(req); !errors.Is(err, wantErr) {
		t.Fatalf("transport error must surface verbatim, got %v", err)
	}
}
