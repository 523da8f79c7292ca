package provider

import (
	"context"

	"github.com/paislab/pais-api/internal/errs"
	"github.com/paislab/pais-api/internal/models"
)

// MockProvider is a test double for the Provider interface
// It allows tests to control behavior and verify interactions
type MockProvider struct {
	// Data holds the mock data (query name -> country)
	Data map[string]*models.Country

	// Track method calls for verification in tests
	LookupCalls []string

	// Control behavior for error scenarios
	LookupError error
}

// NewMockProvider creates a mock provider pre-populated with common test
// countries, keyed by the query string tests will use
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Data: map[string]*models.Country{
			"Chile": {
				Name:       "Chile",
				Capital:    "Santiago",
				Region:     "Americas",
				Currency:   "CLP",
				Languages:  []string{"Spanish"},
				Population: 19116209,
			},
			"Japan": {
				Name:       "Japan",
				Capital:    "Tokyo",
				Region:     "Asia",
				Currency:   "JPY",
				Languages:  []string{"Japanese"},
				Population: 125836021,
			},
		},
		LookupCalls: []string{},
	}
}

// Lookup implements the Provider interface
// Tracks calls and returns configured data or errors
func (m *MockProvider) Lookup(ctx context.Context, name string) (*models.Country, error) {
	m.LookupCalls = append(m.LookupCalls, name)

	if m.LookupError != nil {
		return nil, m.LookupError
	}

	country, exists := m.Data[name]
	if !exists {
		return nil, errs.NotFound("País no encontrado")
	}

	return country, nil
}
