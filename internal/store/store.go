package store

import "github.com/paislab/pais-api/internal/models"

// Store defines the interface for the favorites store
// Allows multiple implementations (file, MySQL, Redis) and easy testing with mocks
//
// The store is policy-free: blacklist checks happen in the service layer,
// before Add is ever called.
type Store interface {
	// Add persists a country as a new favorite under its region namespace.
	// Returns a 409-status error if the same name already exists there.
	Add(country *models.Country) (*models.Country, error)

	// ListGroupedByRegion returns all favorite names grouped by region.
	// An empty map (never nil) when no favorites exist yet.
	ListGroupedByRegion() (models.Favorites, error)

	// Remove deletes the favorite with the given name, searching every
	// region namespace. Returns false when no region holds it.
	Remove(name string) (bool, error)

	// Close cleans up resources (database connections, etc.)
	Close() error
}
