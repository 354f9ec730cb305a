package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// lookupsTotal counts Find and FindTitle calls.
	//
	// Labels:
	//   - result: "hit" when at least one book matched, "miss" otherwise.
	lookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "catalog_lookups_total",
		Help: "The total number of catalog lookups",
	}, []string{"result"})

	// booksLoaded counts distinct books across every catalog built.
	booksLoaded = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "catalog_books_loaded_total",
		Help: "The total number of books loaded into catalogs",
	})
)

func recordLookup(found bool) {
	result := "miss"
	if found {
		result = "hit"
	}

	lookupsTotal.WithLabelValues(result).Inc()
}
