package tracker

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/paislab/pais-api/internal/models"
)

// FileTracker implements Tracker against two JSON files: an append-only
// search log (array) and a ranking aggregate (object). Both are
// read-modify-write; a mutex serializes the cycles so concurrent lookups
// cannot lose an increment. There is no transactional guarantee across the
// two files - a crash between the two writes leaves them inconsistent, which
// is acceptable for this non-critical feature.
type FileTracker struct {
	searchLogPath string
	rankingPath   string
	mu            sync.Mutex
}

// NewFileTracker creates a file-backed tracker. Missing files are created
// empty so the first request never has to special-case them.
func NewFileTracker(searchLogPath, rankingPath string) (*FileTracker, error) {
	if err := ensureFile(searchLogPath, "[]"); err != nil {
		return nil, err
	}
	if err := ensureFile(rankingPath, "{}"); err != nil {
		return nil, err
	}

	return &FileTracker{
		searchLogPath: searchLogPath,
		rankingPath:   rankingPath,
	}, nil
}

// ensureFile creates the file with the given empty content if it does not
// exist yet
func ensureFile(path, empty string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(empty), 0o644); err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	return nil
}

// RecordSearch implements the Tracker interface method
func (t *FileTracker) RecordSearch(country *models.Country) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var records []models.SearchRecord
	if err := readJSON(t.searchLogPath, &records); err != nil {
		return err
	}

	records = append(records, models.SearchRecord{
		Name:   country.Name,
		Region: country.Region,
		Date:   time.Now().UTC().Format(time.RFC3339),
	})

	return writeJSON(t.searchLogPath, records)
}

// BumpRanking implements the Tracker interface method
func (t *FileTracker) BumpRanking(country *models.Country) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var ranking models.Ranking
	if err := readJSON(t.rankingPath, &ranking); err != nil {
		return err
	}
	if ranking == nil {
		ranking = models.Ranking{}
	}

	region := country.Region
	if region == "" {
		region = models.NoRegion
	}

	if ranking[region] == nil {
		ranking[region] = map[string]int{}
	}
	ranking[region][country.Name]++

	return writeJSON(t.rankingPath, ranking)
}

// Ranking implements the Tracker interface method
func (t *FileTracker) Ranking() (models.Ranking, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var ranking models.Ranking
	if err := readJSON(t.rankingPath, &ranking); err != nil {
		return nil, err
	}
	if ranking == nil {
		ranking = models.Ranking{}
	}
	return ranking, nil
}

// Close cleans up resources
// For the file tracker there is nothing to clean up, the method exists to
// satisfy the Tracker interface
func (t *FileTracker) Close() error {
	return nil
}

// readJSON loads a JSON file into out. A missing, empty, or unparseable file
// counts as empty data, not an error: a hand-mangled file must never wedge
// requests, the next successful write replaces it with valid content.
func readJSON(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if strings.TrimSpace(string(data)) == "" {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		// Covers both corrupt content and a wrong shape (e.g. an array
		// where the ranking object should be)
		log.Error().Err(err).Str("path", path).Msg("Discarding unparseable tracker file")
		return nil
	}
	return nil
}

// writeJSON persists data as indented JSON
func writeJSON(path string, data interface{}) error {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
