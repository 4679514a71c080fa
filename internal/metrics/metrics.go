// Package metrics exposes Prometheus metrics for the HTTP surface and the
// article write path.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gopress_http_requests_total",
		Help: "Total number of HTTP requests by method, route, and status.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gopress_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// ArticlesCreated counts successful article creations.
	ArticlesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gopress_articles_created_total",
		Help: "Total number of articles created.",
	})

	// ArticlesUpdated counts successful article updates.
	ArticlesUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gopress_articles_updated_total",
		Help: "Total number of articles updated.",
	})

	// ArticlesDeleted counts successful article deletions.
	ArticlesDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gopress_articles_deleted_total",
		Help: "Total number of articles deleted.",
	})

	// TagsUpserted counts tags created on first reference by an article write.
	TagsUpserted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gopress_tags_upserted_total",
		Help: "Total number of tags created by the article write path.",
	})
)

// Middleware records request counts and latency per route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(method, route, status).Inc()
		httpRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler returns the Prometheus exposition handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
