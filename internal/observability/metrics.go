package observability

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	ScrapesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "appliancefit_scrapes_total",
			Help: "Product page scrapes by result",
		},
		[]string{"result"},
	)

	FetchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "appliancefit_fetch_duration_seconds",
			Help:    "Time spent fetching product pages",
			Buckets: prometheus.DefBuckets,
		},
	)

	UnknownFields = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "appliancefit_unknown_fields_total",
			Help: "Fields left Unknown after extraction",
		},
		[]string{"field"},
	)

	ComparisonsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "appliancefit_comparisons_total",
			Help: "Compatibility comparisons by verdict",
		},
		[]string{"verdict"},
	)
)

var registerOnce sync.Once

// Register adds every collector to the default registry. Safe to call more
// than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(ScrapesTotal, FetchDuration, UnknownFields, ComparisonsTotal)
	})
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Start registers the collectors and serves /metrics on its own port.
func Start(port string) {
	Register()
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	go func() {
		if err := http.ListenAndServe(":"+port, mux); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Str("component", "Metrics").Msg("[Metrics] server stopped")
		}
	}()
}
