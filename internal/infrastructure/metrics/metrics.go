// Package metrics holds the Prometheus instruments of the listing service.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	apperrors "github.com/estately-inc/estately/internal/shared/errors"
)

const namespace = "estately"

// ListingMetrics counts listing read fallbacks, write outcomes and stats
// cache usage. A nil *ListingMetrics is a valid no-op recorder.
type ListingMetrics struct {
	readFallbacks *prometheus.CounterVec
	writes        *prometheus.CounterVec
	statsCache    *prometheus.CounterVec
}

var (
	listingMetricsOnce sync.Once
	listingMetrics     *ListingMetrics
)

// Listing returns the process-wide listing metrics registered on the
// default registerer.
func Listing() *ListingMetrics {
	listingMetricsOnce.Do(func() {
		listingMetrics = NewListingMetrics(prometheus.DefaultRegisterer)
	})
	return listingMetrics
}

func NewListingMetrics(registerer prometheus.Registerer) *ListingMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	readFallbacks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_read_fallback_total",
		Help:      "Listing reads answered with an empty result because storage failed.",
	}, []string{"operation"})
	writes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_writes_total",
		Help:      "Listing write operations by outcome.",
	}, []string{"operation", "outcome"})
	statsCache := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_stats_cache_total",
		Help:      "Listing stats cache lookups by result.",
	}, []string{"result"})

	registerer.MustRegister(readFallbacks, writes, statsCache)

	return &ListingMetrics{
		readFallbacks: readFallbacks,
		writes:        writes,
		statsCache:    statsCache,
	}
}

func (m *ListingMetrics) RecordReadFallback(operation string) {
	if m == nil {
		return
	}
	m.readFallbacks.WithLabelValues(operation).Inc()
}

// RecordWrite classifies err into a low-cardinality outcome label.
func (m *ListingMetrics) RecordWrite(operation string, err error) {
	if m == nil {
		return
	}
	m.writes.WithLabelValues(operation, Outcome(err)).Inc()
}

func (m *ListingMetrics) RecordStatsCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.statsCache.WithLabelValues(result).Inc()
}

// Outcome maps an operation error to a metric label.
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if appErr := apperrors.GetAppError(err); appErr != nil {
		return string(appErr.Type)
	}
	return "error"
}

// HTTPMetrics records request counts and latency per route.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewHTTPMetrics(registerer prometheus.Registerer) *HTTPMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	registerer.MustRegister(requests, duration)

	return &HTTPMetrics{requests: requests, duration: duration}
}

// GinMiddleware observes every request. Unmatched routes share one label.
func GinMiddleware(m *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		m.requests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
