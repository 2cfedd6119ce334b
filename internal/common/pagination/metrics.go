package pagination

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pagesServed = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "newsapi",
		Subsystem: "pagination",
		Name:      "page_number",
		Help:      "Page numbers requested from list and search, by response status.",
		Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 500},
	}, []string{"status"})

	pageFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "newsapi",
		Subsystem: "pagination",
		Name:      "failures_total",
		Help:      "Paged requests that failed, by reason (validation, engine, decode).",
	}, []string{"reason"})
)

// RecordRequest observes the page a client asked for. Deep pages are the
// expensive ones for the engine's from/size paging.
func RecordRequest(statusCode int, page int) {
	pagesServed.WithLabelValues(strconv.Itoa(statusCode)).Observe(float64(page))
}

// RecordError counts a failed paged request.
func RecordError(reason string) {
	pageFailures.WithLabelValues(reason).Inc()
}
