package repository

import (
	"context"
	"errors"

	"realestate/server/internal/models"
)

// ErrNotFound is returned when no property exists for the requested id.
var ErrNotFound = errors.New("property not found")

// PropertyRepository is the persistence port for properties. The service
// layer depends on this contract rather than on a concrete store, so it can
// be exercised against an in-memory fake in tests.
type PropertyRepository interface {
	// GetByID returns the property with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id int) (*models.Property, error)

	// GetAll returns every property ordered by id ascending.
	GetAll(ctx context.Context) ([]models.Property, error)

	// GetAvailable returns available properties ordered by price ascending.
	// Note the ordering differs from GetAll on purpose.
	GetAvailable(ctx context.Context) ([]models.Property, error)

	// GetByCity returns properties whose city matches exactly, ignoring
	// case, ordered by price ascending. This is a stricter match than the
	// substring filter used by the listing query.
	GetByCity(ctx context.Context, city string) ([]models.Property, error)

	// Exists reports whether a property with the given id is stored.
	Exists(ctx context.Context, id int) (bool, error)

	// Add persists a new property and fills in its generated id.
	Add(ctx context.Context, property *models.Property) error

	// Update persists the full state of an existing property.
	Update(ctx context.Context, property *models.Property) error

	// Delete removes the property and reports whether a row was affected.
	Delete(ctx context.Context, property *models.Property) (bool, error)
}
