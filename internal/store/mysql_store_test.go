package store

import (
	"database/sql"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/paislab/pais-api/internal/errs"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock database for testing
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open gorm db: %v", err)
	}

	return db, mock, sqlDB
}

// favoriteColumns is the column set of the favoritos table
var favoriteColumns = []string{"name", "region", "capital", "currency", "languages", "population"}

// TestMySQLStore_Add_Success tests inserting a new favorite
func TestMySQLStore_Add_Success(t *testing.T) {
	db, mock, sqlDB := setupMockDB(t)
	defer sqlDB.Close()

	store := &MySQLStore{db: db}

	// Existence check finds nothing
	mock.ExpectQuery("SELECT \\* FROM `favoritos` WHERE name = \\? AND region = \\? .*").
		WithArgs("Chile", "Americas", 1).
		WillReturnRows(sqlmock.NewRows(favoriteColumns))

	// Then the insert runs in a transaction
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `favoritos` .*").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	stored, err := store.Add(chile())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if stored.Name != "Chile" {
		t.Errorf("expected stored country returned unchanged, got '%s'", stored.Name)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// TestMySQLStore_Add_Duplicate tests the 409 when the row already exists
func TestMySQLStore_Add_Duplicate(t *testing.T) {
	db, mock, sqlDB := setupMockDB(t)
	defer sqlDB.Close()

	store := &MySQLStore{db: db}

	rows := sqlmock.NewRows(favoriteColumns).
		AddRow("Chile", "Americas", "Santiago", "CLP", `["Spanish"]`, 19116209)

	mock.ExpectQuery("SELECT \\* FROM `favoritos` WHERE name = \\? AND region = \\? .*").
		WithArgs("Chile", "Americas", 1).
		WillReturnRows(rows)

	_, err := store.Add(chile())
	if err == nil {
		t.Fatal("expected conflict error, got nil")
	}
	if errs.StatusOf(err) != http.StatusConflict {
		t.Errorf("expected status 409, got %d", errs.StatusOf(err))
	}
}

// TestMySQLStore_ListGroupedByRegion tests grouping rows by region
func TestMySQLStore_ListGroupedByRegion(t *testing.T) {
	db, mock, sqlDB := setupMockDB(t)
	defer sqlDB.Close()

	store := &MySQLStore{db: db}

	rows := sqlmock.NewRows(favoriteColumns).
		AddRow("Chile", "Americas", "Santiago", "CLP", `["Spanish"]`, 19116209).
		AddRow("Peru", "Americas", "Lima", "PEN", `["Spanish"]`, 32971854).
		AddRow("Japan", "Asia", "Tokyo", "JPY", `["Japanese"]`, 125836021)

	mock.ExpectQuery("SELECT \\* FROM `favoritos`").
		WillReturnRows(rows)

	grouped, err := store.ListGroupedByRegion()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(grouped["Americas"]) != 2 {
		t.Errorf("expected 2 countries in Americas, got %v", grouped["Americas"])
	}
	if len(grouped["Asia"]) != 1 {
		t.Errorf("expected 1 country in Asia, got %v", grouped["Asia"])
	}
}

// TestMySQLStore_Remove_Found tests a successful delete
func TestMySQLStore_Remove_Found(t *testing.T) {
	db, mock, sqlDB := setupMockDB(t)
	defer sqlDB.Close()

	store := &MySQLStore{db: db}

	// The row is located first, then deleted by its full primary key
	rows := sqlmock.NewRows(favoriteColumns).
		AddRow("Chile", "Americas", "Santiago", "CLP", `["Spanish"]`, 19116209)

	mock.ExpectQuery("SELECT \\* FROM `favoritos` WHERE name = \\? .*").
		WithArgs("Chile", 1).
		WillReturnRows(rows)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `favoritos` WHERE name = \\? AND region = \\?").
		WithArgs("Chile", "Americas").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	removed, err := store.Remove("Chile")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !removed {
		t.Error("expected favorite to be removed")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// TestMySQLStore_Remove_NotFound tests deleting a row that isn't there
func TestMySQLStore_Remove_NotFound(t *testing.T) {
	db, mock, sqlDB := setupMockDB(t)
	defer sqlDB.Close()

	store := &MySQLStore{db: db}

	mock.ExpectQuery("SELECT \\* FROM `favoritos` WHERE name = \\? .*").
		WithArgs("Atlantis", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	removed, err := store.Remove("Atlantis")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if removed {
		t.Error("expected false for unknown favorite")
	}
}

// TestMySQLStore_Remove_SingleRowAcrossRegions tests that when the same name
// exists under two regions only one row is deleted, same as the other backends
func TestMySQLStore_Remove_SingleRowAcrossRegions(t *testing.T) {
	db, mock, sqlDB := setupMockDB(t)
	defer sqlDB.Close()

	store := &MySQLStore{db: db}

	// Two rows share the name; the located one decides the region to delete
	rows := sqlmock.NewRows(favoriteColumns).
		AddRow("Chile", "Americas", "Santiago", "CLP", `["Spanish"]`, 19116209)

	mock.ExpectQuery("SELECT \\* FROM `favoritos` WHERE name = \\? .*").
		WithArgs("Chile", 1).
		WillReturnRows(rows)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `favoritos` WHERE name = \\? AND region = \\?").
		WithArgs("Chile", "Americas").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	removed, err := store.Remove("Chile")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !removed {
		t.Error("expected favorite to be removed")
	}

	// The delete was region-scoped, never a bare name-wide statement
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
