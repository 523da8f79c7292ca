package tracker

import "github.com/paislab/pais-api/internal/models"

// MockTracker is a test double for the Tracker interface
// It allows tests to control behavior and verify interactions
type MockTracker struct {
	// RankingData is returned verbatim by Ranking()
	RankingData models.Ranking

	// Track method calls for verification in tests
	RecordSearchCalls []string
	BumpRankingCalls  []string
	RankingCalls      int
	CloseCalled       bool

	// Control behavior for error scenarios
	RecordSearchError error
	BumpRankingError  error
	RankingError      error
}

// NewMockTracker creates a mock tracker with an empty ranking
func NewMockTracker() *MockTracker {
	return &MockTracker{
		RankingData:       models.Ranking{},
		RecordSearchCalls: []string{},
		BumpRankingCalls:  []string{},
	}
}

// RecordSearch implements the Tracker interface
func (m *MockTracker) RecordSearch(country *models.Country) error {
	m.RecordSearchCalls = append(m.RecordSearchCalls, country.Name)
	return m.RecordSearchError
}

// BumpRanking implements the Tracker interface
func (m *MockTracker) BumpRanking(country *models.Country) error {
	m.BumpRankingCalls = append(m.BumpRankingCalls, country.Name)
	return m.BumpRankingError
}

// Ranking implements the Tracker interface
func (m *MockTracker) Ranking() (models.Ranking, error) {
	m.RankingCalls++
	if m.RankingError != nil {
		return nil, m.RankingError
	}
	return m.RankingData, nil
}

// Close implements the Tracker interface
func (m *MockTracker) Close() error {
	m.CloseCalled = true
	return nil
}
