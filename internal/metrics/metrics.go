package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// Domain
	UsersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "users_created_total",
			Help: "Total users created",
		},
	)
	ExercisesLogged = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "exercises_logged_total",
			Help: "Total exercises stored",
		},
	)
	DatesDefaulted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exercise_dates_defaulted_total",
			Help: "Exercises whose date fell back to the current time",
		},
		[]string{"reason"}, // absent|invalid
	)
	OperationErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "operation_errors_total",
			Help: "Failed service operations",
		},
		[]string{"op", "kind"}, // kind: not_found|validation
	)

	initOnce sync.Once
)

// /metrics endpoint'i için handler
var Handler = promhttp.Handler

// Init registers every collector with the default registry. Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestsTotal,
			RequestLatency,
			UsersCreated,
			ExercisesLogged,
			DatesDefaulted,
			OperationErrors,
		)
	})
}
