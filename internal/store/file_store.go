package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/paislab/pais-api/internal/errs"
	"github.com/paislab/pais-api/internal/models"
)

// FileStore implements Store on the local file system: one directory per
// region, one JSON file per country inside it.
//
// Layout:
//
//	<root>/Americas/Chile.json
//	<root>/Europe/Spain.json
//
// A single mutex serializes every operation so two concurrent adds for the
// same country cannot both pass the existence check.
type FileStore struct {
	root string
	mu   sync.Mutex
}

// NewFileStore creates a file-backed favorites store rooted at dir.
// The root directory is created lazily on the first Add.
func NewFileStore(dir string) *FileStore {
	return &FileStore{root: dir}
}

// Add implements the Store interface method
// Creates the region directory if absent and fails with a 409 error when the
// country is already a favorite in that region.
func (s *FileStore) Add(country *models.Country) (*models.Country, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	regionDir := filepath.Join(s.root, country.Region)
	countryPath := filepath.Join(regionDir, country.Name+".json")

	if err := os.MkdirAll(regionDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create region directory: %w", err)
	}

	if _, err := os.Stat(countryPath); err == nil {
		return nil, errs.Conflict("País ya está en favoritos")
	}

	data, err := json.MarshalIndent(country, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode favorite: %w", err)
	}
	if err := os.WriteFile(countryPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write favorite: %w", err)
	}

	return country, nil
}

// ListGroupedByRegion implements the Store interface method
// Enumeration order follows the file system, it is not guaranteed sorted.
func (s *FileStore) ListGroupedByRegion() (models.Favorites, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	grouped := models.Favorites{}

	regions, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			// No favorites yet
			return grouped, nil
		}
		return nil, fmt.Errorf("failed to read favorites directory: %w", err)
	}

	for _, region := range regions {
		if !region.IsDir() {
			continue
		}

		regionDir := filepath.Join(s.root, region.Name())
		files, err := os.ReadDir(regionDir)
		if err != nil {
			return nil, fmt.Errorf("failed to read region directory: %w", err)
		}

		names := []string{}
		for _, file := range files {
			data, err := os.ReadFile(filepath.Join(regionDir, file.Name()))
			if err != nil {
				return nil, fmt.Errorf("failed to read favorite: %w", err)
			}

			var country models.Country
			if err := json.Unmarshal(data, &country); err != nil {
				return nil, fmt.Errorf("failed to decode favorite: %w", err)
			}
			names = append(names, country.Name)
		}

		grouped[region.Name()] = names
	}

	return grouped, nil
}

// Get reads a single stored favorite by its (region, name) pair.
// Not part of the Store interface; used by the migration tool to copy full
// Country records into another backend.
func (s *FileStore) Get(region, name string) (*models.Country, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.root, region, name+".json"))
	if err != nil {
		return nil, fmt.Errorf("failed to read favorite: %w", err)
	}

	var country models.Country
	if err := json.Unmarshal(data, &country); err != nil {
		return nil, fmt.Errorf("failed to decode favorite: %w", err)
	}
	return &country, nil
}

// Remove implements the Store interface method
// Scans every region namespace for the name; there is no name->region index,
// so this is an O(regions) walk.
func (s *FileStore) Remove(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	regions, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read favorites directory: %w", err)
	}

	for _, region := range regions {
		if !region.IsDir() {
			continue
		}

		countryPath := filepath.Join(s.root, region.Name(), name+".json")
		if _, err := os.Stat(countryPath); err != nil {
			continue
		}

		if err := os.Remove(countryPath); err != nil {
			return false, fmt.Errorf("failed to delete favorite: %w", err)
		}
		return true, nil
	}

	return false, nil
}

// Close cleans up resources
// For the file store there is nothing to clean up, the method exists to
// satisfy the Store interface
func (s *FileStore) Close() error {
	return nil
}
