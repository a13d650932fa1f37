package apiutil

import (
	"strconv"
	"time"

	"github.com/Aidin1998/userfeed/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// unmatchedRoute labels requests that hit no route, so arbitrary paths do
// not become label values.
const unmatchedRoute = "unmatched"

// MetricsMiddleware counts requests per route template, method and status
// and observes their latency.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		observeRequest(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}

func observeRequest(route, method string, status int, elapsed time.Duration) {
	metrics.HTTPRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	metrics.HTTPRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}
