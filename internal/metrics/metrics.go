package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Generation outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
)

var (
	// MetricGenerations counts generate actions by outcome
	MetricGenerations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "palette_generations_total",
		Help: "Total palette generations by outcome",
	}, []string{"outcome"})

	// MetricRenders counts rendered forms by renderer
	MetricRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "palette_renders_total",
		Help: "Total rendered forms by renderer",
	}, []string{"renderer"})

	// MetricHTTPRequests counts HTTP requests by route and status code
	MetricHTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "palette_http_requests_total",
		Help: "Total HTTP requests by route and status code",
	}, []string{"route", "code"})
)

// ObserveGeneration records a generate action.
func ObserveGeneration(ok bool) {
	outcome := OutcomeSuccess
	if !ok {
		outcome = OutcomeInvalid
	}
	MetricGenerations.WithLabelValues(outcome).Inc()
}

// ObserveRender records a rendered form.
func ObserveRender(renderer string) {
	MetricRenders.WithLabelValues(renderer).Inc()
}

// ObserveRequest records an HTTP response.
func ObserveRequest(route string, code int) {
	MetricHTTPRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
