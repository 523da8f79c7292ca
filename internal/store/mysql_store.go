package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/paislab/pais-api/internal/errs"
	"github.com/paislab/pais-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// FavoriteModel is the GORM model for the favoritos table
// One row per favorite; (region, name) is the unique namespace, matching the
// one-file-per-country layout of the file store.
type FavoriteModel struct {
	Name       string `gorm:"column:name;primaryKey"`
	Region     string `gorm:"column:region;primaryKey"`
	Capital    string `gorm:"column:capital"`
	Currency   string `gorm:"column:currency"`
	Languages  string `gorm:"column:languages"` // JSON-encoded []string
	Population int64  `gorm:"column:population"`
}

// TableName specifies the table name for GORM
// By default, GORM would pluralize to "favorite_models"
func (FavoriteModel) TableName() string {
	return "favoritos"
}

// MySQLStore implements Store using MySQL with GORM
type MySQLStore struct {
	db *gorm.DB
}

// NewMySQLStore creates a new MySQL favorites store using GORM
//
// Parameters:
//   - dsn: Data Source Name (connection string)
//     Format: user:password@tcp(host:port)/dbname?parseTime=true
//
// Returns:
//   - *MySQLStore: pointer to the created store
//   - error: any error that occurred during connection
func NewMySQLStore(dsn string) (*MySQLStore, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(mysql.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL with GORM: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping MySQL database: %w", err)
	}

	// Create the favoritos table on first run
	if err := db.AutoMigrate(&FavoriteModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate favoritos table: %w", err)
	}

	return &MySQLStore{db: db}, nil
}

// Add implements the Store interface method
func (s *MySQLStore) Add(country *models.Country) (*models.Country, error) {
	var existing FavoriteModel
	result := s.db.Where("name = ? AND region = ?", country.Name, country.Region).First(&existing)
	if result.Error == nil {
		return nil, errs.Conflict("País ya está en favoritos")
	}
	if result.Error != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("database query failed: %w", result.Error)
	}

	record, err := toFavoriteModel(country)
	if err != nil {
		return nil, err
	}

	if err := s.db.Create(record).Error; err != nil {
		return nil, fmt.Errorf("failed to store favorite: %w", err)
	}

	return country, nil
}

// ListGroupedByRegion implements the Store interface method
func (s *MySQLStore) ListGroupedByRegion() (models.Favorites, error) {
	var records []FavoriteModel
	if err := s.db.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("database query failed: %w", err)
	}

	grouped := models.Favorites{}
	for _, record := range records {
		grouped[record.Region] = append(grouped[record.Region], record.Name)
	}

	return grouped, nil
}

// Remove implements the Store interface method
// Deletes a single (region, name) row, matching the first-match semantics of
// the file and Redis backends when the same name exists under two regions.
func (s *MySQLStore) Remove(name string) (bool, error) {
	var record FavoriteModel
	result := s.db.Where("name = ?", name).First(&record)
	if result.Error == gorm.ErrRecordNotFound {
		return false, nil
	}
	if result.Error != nil {
		return false, fmt.Errorf("database query failed: %w", result.Error)
	}

	res := s.db.Where("name = ? AND region = ?", record.Name, record.Region).Delete(&FavoriteModel{})
	if res.Error != nil {
		return false, fmt.Errorf("database delete failed: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Close closes the database connection
// Should be called when the application shuts down
func (s *MySQLStore) Close() error {
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

// toFavoriteModel converts a domain Country into a database row
func toFavoriteModel(country *models.Country) (*FavoriteModel, error) {
	languages, err := json.Marshal(country.Languages)
	if err != nil {
		return nil, fmt.Errorf("failed to encode languages: %w", err)
	}

	return &FavoriteModel{
		Name:       country.Name,
		Region:     country.Region,
		Capital:    country.Capital,
		Currency:   country.Currency,
		Languages:  string(languages),
		Population: country.Population,
	}, nil
}
