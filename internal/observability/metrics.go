// Package observability holds the Prometheus collectors and the tracer
// provider setup shared by the server.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "quizzme"

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	DecksSaved = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "decks_saved_total",
		Help:      "Decks committed to the document store.",
	})

	CardsSaved = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cards_saved_total",
		Help:      "Cards committed to the document store.",
	})

	DeckStoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deck_store_errors_total",
		Help:      "Document store failures by deck store operation.",
	}, []string{"operation"})

	Generations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generations_total",
		Help:      "Flashcard generation requests by result.",
	}, []string{"result"})

	CheckoutSessions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkout_sessions_total",
		Help:      "Checkout sessions created by plan and result.",
	}, []string{"plan", "result"})
)
