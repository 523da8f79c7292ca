package store

import (
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/paislab/pais-api/internal/errs"
	"github.com/paislab/pais-api/internal/models"
)

// chile returns a fresh test country
func chile() *models.Country {
	return &models.Country{
		Name:       "Chile",
		Capital:    "Santiago",
		Region:     "Americas",
		Currency:   "CLP",
		Languages:  []string{"Spanish"},
		Population: 19116209,
	}
}

// TestFileStore_Add_Success tests adding a favorite
func TestFileStore_Add_Success(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	stored, err := store.Add(chile())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if stored.Name != "Chile" {
		t.Errorf("expected stored country returned unchanged, got '%s'", stored.Name)
	}

	// One file per country inside a per-region directory
	if _, err := os.Stat(filepath.Join(dir, "Americas", "Chile.json")); err != nil {
		t.Errorf("expected Americas/Chile.json to exist: %v", err)
	}
}

// TestFileStore_Add_Duplicate tests the 409 on a second add
func TestFileStore_Add_Duplicate(t *testing.T) {
	store := NewFileStore(t.TempDir())

	if _, err := store.Add(chile()); err != nil {
		t.Fatalf("first add failed: %v", err)
	}

	_, err := store.Add(chile())
	if err == nil {
		t.Fatal("expected conflict error, got nil")
	}
	if errs.StatusOf(err) != http.StatusConflict {
		t.Errorf("expected status 409, got %d", errs.StatusOf(err))
	}
	if err.Error() != "País ya está en favoritos" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
}

// TestFileStore_ListGroupedByRegion tests grouping across regions
func TestFileStore_ListGroupedByRegion(t *testing.T) {
	store := NewFileStore(t.TempDir())

	store.Add(chile())
	store.Add(&models.Country{Name: "Japan", Capital: "Tokyo", Region: "Asia"})
	store.Add(&models.Country{Name: "Peru", Capital: "Lima", Region: "Americas"})

	grouped, err := store.ListGroupedByRegion()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(grouped) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(grouped))
	}
	if len(grouped["Americas"]) != 2 {
		t.Errorf("expected 2 countries in Americas, got %v", grouped["Americas"])
	}
	if len(grouped["Asia"]) != 1 || grouped["Asia"][0] != "Japan" {
		t.Errorf("expected [Japan] in Asia, got %v", grouped["Asia"])
	}
}

// TestFileStore_List_Empty tests listing before any favorite exists
func TestFileStore_List_Empty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "does-not-exist-yet"))

	grouped, err := store.ListGroupedByRegion()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if grouped == nil {
		t.Fatal("expected empty map, got nil")
	}
	if len(grouped) != 0 {
		t.Errorf("expected no favorites, got %v", grouped)
	}
}

// TestFileStore_List_Idempotent tests that listing twice returns the same result
func TestFileStore_List_Idempotent(t *testing.T) {
	store := NewFileStore(t.TempDir())
	store.Add(chile())

	first, err := store.ListGroupedByRegion()
	if err != nil {
		t.Fatalf("first list failed: %v", err)
	}
	second, err := store.ListGroupedByRegion()
	if err != nil {
		t.Fatalf("second list failed: %v", err)
	}

	if len(first) != len(second) || len(first["Americas"]) != len(second["Americas"]) {
		t.Errorf("expected identical results, got %v then %v", first, second)
	}
}

// TestFileStore_Remove_Success tests the full add/list/remove round trip
func TestFileStore_Remove_Success(t *testing.T) {
	store := NewFileStore(t.TempDir())
	store.Add(chile())

	removed, err := store.Remove("Chile")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !removed {
		t.Fatal("expected favorite to be removed")
	}

	grouped, _ := store.ListGroupedByRegion()
	if len(grouped["Americas"]) != 0 {
		t.Errorf("expected Chile gone from Americas, got %v", grouped["Americas"])
	}
}

// TestFileStore_Remove_NotFound tests deleting a country that isn't stored
func TestFileStore_Remove_NotFound(t *testing.T) {
	store := NewFileStore(t.TempDir())
	store.Add(chile())

	removed, err := store.Remove("Atlantis")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if removed {
		t.Error("expected false for unknown favorite")
	}
}

// TestFileStore_Remove_EmptyStore tests deleting before the root exists
func TestFileStore_Remove_EmptyStore(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "does-not-exist-yet"))

	removed, err := store.Remove("Chile")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if removed {
		t.Error("expected false on an empty store")
	}
}

// TestFileStore_Get tests reading back a full stored record
func TestFileStore_Get(t *testing.T) {
	store := NewFileStore(t.TempDir())
	store.Add(chile())

	country, err := store.Get("Americas", "Chile")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if country.Capital != "Santiago" || country.Currency != "CLP" {
		t.Errorf("stored record corrupted: %+v", country)
	}
}

// TestFileStore_ConcurrentAdd tests that concurrent adds of the same country
// produce exactly one favorite and conflicts for the rest
func TestFileStore_ConcurrentAdd(t *testing.T) {
	store := NewFileStore(t.TempDir())

	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Add(chile()); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if successes != 1 {
		t.Errorf("expected exactly 1 successful add, got %d", successes)
	}
}
