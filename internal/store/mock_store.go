package store

import (
	"github.com/paislab/pais-api/internal/errs"
	"github.com/paislab/pais-api/internal/models"
)

// MockStore is a test double for the Store interface
// It allows tests to control behavior and verify interactions
type MockStore struct {
	// Favorites holds the mock state (region -> name -> country)
	Favorites map[string]map[string]*models.Country

	// Track method calls for verification in tests
	AddCalls    []string
	ListCalls   int
	RemoveCalls []string
	CloseCalled bool

	// Control behavior for error scenarios
	AddError    error
	ListError   error
	RemoveError error
	CloseError  error
}

// NewMockStore creates an empty mock favorites store
func NewMockStore() *MockStore {
	return &MockStore{
		Favorites:   map[string]map[string]*models.Country{},
		AddCalls:    []string{},
		RemoveCalls: []string{},
	}
}

// Add implements the Store interface
// Tracks calls and enforces the duplicate rule like a real backend
func (m *MockStore) Add(country *models.Country) (*models.Country, error) {
	m.AddCalls = append(m.AddCalls, country.Name)

	if m.AddError != nil {
		return nil, m.AddError
	}

	region := m.Favorites[country.Region]
	if region == nil {
		region = map[string]*models.Country{}
		m.Favorites[country.Region] = region
	}
	if _, exists := region[country.Name]; exists {
		return nil, errs.Conflict("País ya está en favoritos")
	}

	region[country.Name] = country
	return country, nil
}

// ListGroupedByRegion implements the Store interface
func (m *MockStore) ListGroupedByRegion() (models.Favorites, error) {
	m.ListCalls++

	if m.ListError != nil {
		return nil, m.ListError
	}

	grouped := models.Favorites{}
	for region, countries := range m.Favorites {
		names := []string{}
		for name := range countries {
			names = append(names, name)
		}
		grouped[region] = names
	}
	return grouped, nil
}

// Remove implements the Store interface
func (m *MockStore) Remove(name string) (bool, error) {
	m.RemoveCalls = append(m.RemoveCalls, name)

	if m.RemoveError != nil {
		return false, m.RemoveError
	}

	for _, countries := range m.Favorites {
		if _, exists := countries[name]; exists {
			delete(countries, name)
			return true, nil
		}
	}
	return false, nil
}

// Close implements the Store interface
// Tracks that close was called and returns configured error if any
func (m *MockStore) Close() error {
	m.CloseCalled = true
	return m.CloseError
}
