package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backend_api_requests_total",
		Help: "Total number of requests issued against the backend API",
	}, []string{"method", "route", "status"})

	APIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "backend_api_request_duration_seconds",
		Help:    "Latency of backend API round trips",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	EntityOpsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "entity_operations_total",
		Help: "Total number of entity operations by outcome",
	}, []string{"entity", "operation", "outcome"})

	ImageUploadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "image_uploads_total",
		Help: "Total number of product images uploaded to object storage",
	})

	ImageUploadsFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "image_uploads_failed_total",
		Help: "Total number of failed product image uploads",
	}, []string{"reason"})

	LoginAttemptsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "login_attempts_total",
		Help: "Total number of login attempts sent to the backend",
	})

	LoginFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "login_failures_total",
		Help: "Total number of failed login attempts",
	})
)
