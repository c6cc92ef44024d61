// Package metrics defines and registers all custom Prometheus metrics for
// the storefront gateway. It is the single source of truth for metric names,
// labels, and help strings. Registration happens at import time via promauto
// against the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Upstream metrics ──────────────────────────────────────────────────────────

// UpstreamRequestsTotal counts outgoing requests to the catalog/identity API.
// Labels:
//   - method: HTTP method
//   - status: numeric response status, or "error" for transport failures
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests issued to the upstream API.",
	},
	[]string{"method", "status"},
)

// UpstreamRequestDuration measures upstream round-trip latency.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Round-trip duration of upstream API requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// GuardDecisionsTotal counts route guard outcomes.
// Label:
//   - decision: "allow" or "deny"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard decisions, by outcome.",
	},
	[]string{"decision"},
)

// TokenExtractionMissesTotal counts 2xx login/register responses that carried
// no recognisable token field.
var TokenExtractionMissesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_extraction_misses_total",
		Help:      "Total number of successful auth responses lacking a token field.",
	},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CatalogCacheTotal counts list cache lookups.
// Labels:
//   - collection: "categories", "main_categories", "products", "menu"
//   - result: "hit" or "miss"
var CatalogCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_cache_total",
		Help:      "Total number of catalog cache lookups, by collection and result.",
	},
	[]string{"collection", "result"},
)

// AppointmentsSubmittedTotal counts appointment form submissions forwarded to
// the upstream mailer.
// Label:
//   - result: "ok" or "error"
var AppointmentsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_submitted_total",
		Help:      "Total number of appointment submissions, by result.",
	},
	[]string{"result"},
)
