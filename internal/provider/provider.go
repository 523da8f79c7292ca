package provider

import (
	"context"

	"github.com/paislab/pais-api/internal/models"
)

// Provider is the external country-information API this service reads from.
// It is the system of record for Country data; the rest of the application
// only ever sees the mapped models.Country value.
type Provider interface {
	// Lookup resolves a free-text (partial or full) country name into a
	// canonical Country. Returns a 404-status error when the provider knows
	// no such country.
	Lookup(ctx context.Context, name string) (*models.Country, error)
}
