package database

import (
	"context"
	"errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"realestate/server/internal/models"
	"realestate/server/internal/repository"
)

// Database is the SQLite-backed implementation of the property repository.
type Database struct {
	db *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite handles one writer at a time; a single connection avoids
	// SQLITE_BUSY under concurrent requests.
	sqlDB.SetMaxOpenConns(1)

	return &Database{db: db}, nil
}

// NewTestDB opens an in-memory database for tests.
func NewTestDB() (*Database, error) {
	return NewDatabase(":memory:")
}

func (d *Database) GetDB() *gorm.DB {
	return d.db
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) RunMigrations() error {
	return d.db.AutoMigrate(&models.Property{})
}

func (d *Database) GetByID(ctx context.Context, id int) (*models.Property, error) {
	var p models.Property
	err := d.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (d *Database) GetAll(ctx context.Context) ([]models.Property, error) {
	var properties []models.Property
	err := d.db.WithContext(ctx).Order("id ASC").Find(&properties).Error
	return properties, err
}

func (d *Database) GetAvailable(ctx context.Context) ([]models.Property, error) {
	var properties []models.Property
	err := d.db.WithContext(ctx).
		Where("is_available = ?", true).
		Order("price ASC").
		Find(&properties).Error
	return properties, err
}

func (d *Database) GetByCity(ctx context.Context, city string) ([]models.Property, error) {
	var properties []models.Property
	err := d.db.WithContext(ctx).
		Where("LOWER(city) = LOWER(?)", city).
		Order("price ASC").
		Find(&properties).Error
	return properties, err
}

func (d *Database) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	err := d.db.WithContext(ctx).
		Model(&models.Property{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (d *Database) Add(ctx context.Context, property *models.Property) error {
	return d.db.WithContext(ctx).Create(property).Error
}

func (d *Database) Update(ctx context.Context, property *models.Property) error {
	return d.db.WithContext(ctx).Save(property).Error
}

func (d *Database) Delete(ctx context.Context, property *models.Property) (bool, error) {
	result := d.db.WithContext(ctx).Delete(&models.Property{}, property.ID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
