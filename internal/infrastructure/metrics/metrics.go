package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Customer ledger metrics
	SalesRecorded    *prometheus.CounterVec
	ReceiptsRecorded prometheus.Counter
	SaleAmount       *prometheus.HistogramVec

	// Statement metrics
	StatementsComputed prometheus.Counter
	StatementDuration  prometheus.Histogram
	StatementCacheHits *prometheus.CounterVec

	// Cash register metrics
	CashEntriesRecorded *prometheus.CounterVec

	// Check portfolio metrics
	ChecksRegistered prometheus.Counter
	CheckTransitions *prometheus.CounterVec

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Customer ledger metrics
		SalesRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "defter_sales_recorded_total",
				Help: "Total number of sales and returns recorded",
			},
			[]string{"type"},
		),
		ReceiptsRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "defter_receipts_recorded_total",
			Help: "Total number of customer payments recorded",
		}),
		SaleAmount: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "defter_sale_amount",
				Help:    "Sale amounts",
				Buckets: []float64{10, 100, 500, 1000, 5000, 10000, 50000},
			},
			[]string{"currency"},
		),

		// Statement metrics
		StatementsComputed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "defter_statements_computed_total",
			Help: "Total number of customer statements computed",
		}),
		StatementDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "defter_statement_duration_seconds",
			Help:    "Duration of statement computations",
			Buckets: prometheus.DefBuckets,
		}),
		StatementCacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "defter_statement_cache_total",
				Help: "Statement cache lookups by outcome",
			},
			[]string{"outcome"},
		),

		// Cash register metrics
		CashEntriesRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "defter_cash_entries_recorded_total",
				Help: "Total cash register entries by direction",
			},
			[]string{"direction"},
		),

		// Check portfolio metrics
		ChecksRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "defter_checks_registered_total",
			Help: "Total number of checks and promissory notes registered",
		}),
		CheckTransitions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "defter_check_transitions_total",
				Help: "Total check status transitions by target status",
			},
			[]string{"status"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "defter_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "defter_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "defter_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "defter_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "defter_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "defter_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),
	}
}
