package metrics

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTP request metrics
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "userfeed_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "method", "code"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "userfeed_http_request_duration_seconds",
			Help:    "Histogram of response latency (seconds) for HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)
)

// StoreQueries counts store operations by outcome ("ok" or "error").
var StoreQueries = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "userfeed_store_queries_total",
		Help: "Total number of store operations by outcome",
	},
	[]string{"operation", "outcome"},
)

// StoreQueryDuration records latency of store operations
var StoreQueryDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "userfeed_store_query_duration_seconds",
		Help:    "Latency in seconds of store operations",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// Database connection pool metrics
var (
	DBOpenConns = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "userfeed_db_open_connections",
			Help: "Number of open connections in the DB pool",
		},
		[]string{"db"},
	)

	DBIdleConns = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "userfeed_db_idle_connections",
			Help: "Number of idle connections in the DB pool",
		},
		[]string{"db"},
	)

	DBInUseConns = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "userfeed_db_in_use_connections",
			Help: "Number of in-use connections in the DB pool",
		},
		[]string{"db"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal, HTTPRequestDuration)
	prometheus.MustRegister(StoreQueries, StoreQueryDuration)
	prometheus.MustRegister(DBOpenConns, DBIdleConns, DBInUseConns)
}

// ObservePool copies connection pool stats into the pool gauges.
func ObservePool(db string, stats sql.DBStats) {
	DBOpenConns.WithLabelValues(db).Set(float64(stats.OpenConnections))
	DBIdleConns.WithLabelValues(db).Set(float64(stats.Idle))
	DBInUseConns.WithLabelValues(db).Set(float64(stats.InUse))
}
