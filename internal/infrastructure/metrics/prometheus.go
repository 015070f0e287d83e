package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/archiveinsight/backend/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var analysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "dupcheck_analyses_total",
	Help: "Total number of completed analyses labelled by final result",
}, []string{"result"})

var analysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "dupcheck_analysis_duration_seconds",
	Help:    "Time spent producing one match report.",
	Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
})

var extractionFailures = promauto.NewCounter(prometheus.CounterOpts{
	Name: "dupcheck_extraction_failures_total",
	Help: "Uploads whose text could not be extracted",
})

var reportCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "dupcheck_report_cache_total",
	Help: "Report cache lookups labelled by outcome",
}, []string{"outcome"})

var httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "dupcheck_http_requests_total",
	Help: "Total number of requests labelled by route and status",
}, []string{"route", "status"})

// Recorder publishes analysis metrics to the default Prometheus registry
type Recorder struct{}

var _ domain.AnalysisMetrics = Recorder{}

// NewRecorder returns the process-wide recorder
func NewRecorder() Recorder {
	return Recorder{}
}

func (Recorder) ObserveAnalysis(result domain.Verdict, elapsed time.Duration) {
	analysesTotal.WithLabelValues(string(result)).Inc()
	analysisDuration.Observe(elapsed.Seconds())
}

func (Recorder) IncExtractionFailures() {
	extractionFailures.Inc()
}

func (Recorder) ObserveCacheLookup(hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	reportCacheLookups.WithLabelValues(outcome).Inc()
}

// ObserveRequest counts one served HTTP request
func ObserveRequest(route string, status int) {
	httpRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

// Handler exposes the default registry in the Prometheus text format
func Handler() http.Handler {
	return promhttp.Handler()
}
