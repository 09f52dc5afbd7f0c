package services

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// searchTotal counts searches by retrieval path and outcome.
	searchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lexicon_searches_total",
			Help: "Total number of search requests by retrieval path and outcome.",
		},
		[]string{"path", "ok"},
	)

	// searchResults observes how many entries matched per search, which is
	// the main signal for tuning the full-text threshold.
	searchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lexicon_search_results",
			Help:    "Number of matching entries per search request.",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 500, 1000},
		},
	)
)

func init() {
	prometheus.MustRegister(searchTotal, searchResults)
}

// observeSearch records one finished search attempt.
func observeSearch(fullText bool, total int64, ok bool) {
	path := "pattern"
	if fullText {
		path = "fulltext"
	}
	searchTotal.WithLabelValues(path, strconv.FormatBool(ok)).Inc()
	if ok {
		searchResults.Observe(float64(total))
	}
}
