package upstream

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/dkcommerce/storefront-gateway/internal/api/metrics"
)

// ObserveTransport is the outermost hop of the upstream transport chain: it
// passes every response through unchanged and logs failures uniformly (URL
// plus status). It never retries and never rewrites a response; the redirect
// policy for upstream 401/403 lives in the API error handler, gated by
// configuration.
type ObserveTransport struct {
	Base http.RoundTripper
	Log  zerolog.Logger
}

func (t *ObserveTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base().RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(req.Method, "error").Inc()
		t.Log.Warn().
			Str("url", req.URL.String()).
			Err(err).
			Msg("upstream request failed")
		return nil, err
	}

	status := strconv.Itoa(resp.StatusCode)
	metrics.UpstreamRequestsTotal.WithLabelValues(req.Method, status).Inc()
	metrics.UpstreamRequestDuration.WithLabelValues(req.Method).Observe(elapsed.Seconds())

	if resp.StatusCode >= 400 {
		t.Log.Warn().
			Str("url", req.URL.String()).
			Int("status", resp.StatusCode).
			Msg("upstream request failed")
	}
	return resp, nil
}

func (t *ObserveTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}
