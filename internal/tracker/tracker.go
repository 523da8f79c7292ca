package tracker

import "github.com/paislab/pais-api/internal/models"

// Tracker records successful country lookups: an append-only search log plus
// a running per-region, per-country counter.
type Tracker interface {
	// RecordSearch appends one search record (name, region, timestamp) to
	// the search log.
	RecordSearch(country *models.Country) error

	// BumpRanking increments the counter for (region, name), creating the
	// region and/or country entry with count 1 if absent.
	BumpRanking(country *models.Country) error

	// Ranking returns the full current ranking aggregate verbatim.
	Ranking() (models.Ranking, error)

	// Close cleans up resources
	Close() error
}
