package property

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"realestate/server/internal/models"
	"realestate/server/internal/repository"
)

// PropertyDTO is the response shape for read operations.
type PropertyDTO struct {
	ID             int             `json:"id"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	State          string          `json:"state"`
	ZipCode        string          `json:"zip_code"`
	Price          decimal.Decimal `json:"price"`
	MonthlyRent    decimal.Decimal `json:"monthly_rent"`
	Bedrooms       int             `json:"bedrooms"`
	Bathrooms      decimal.Decimal `json:"bathrooms"`
	SquareFeet     int             `json:"square_feet"`
	YearBuilt      int             `json:"year_built"`
	PropertyType   string          `json:"property_type"`
	IsAvailable    bool            `json:"is_available"`
	ListedDateUtc  time.Time       `json:"listed_date_utc"`
	LastUpdatedUtc *time.Time      `json:"last_updated_utc"`
}

func toDTO(p models.Property) PropertyDTO {
	return PropertyDTO{
		ID:             p.ID,
		Address:        p.Address,
		City:           p.City,
		State:          p.State,
		ZipCode:        p.ZipCode,
		Price:          p.Price,
		MonthlyRent:    p.MonthlyRent,
		Bedrooms:       p.Bedrooms,
		Bathrooms:      p.Bathrooms,
		SquareFeet:     p.SquareFeet,
		YearBuilt:      p.YearBuilt,
		PropertyType:   p.PropertyType,
		IsAvailable:    p.IsAvailable,
		ListedDateUtc:  p.ListedDateUtc,
		LastUpdatedUtc: p.LastUpdatedUtc,
	}
}

func toDTOs(properties []models.Property) []PropertyDTO {
	dtos := make([]PropertyDTO, len(properties))
	for i, p := range properties {
		dtos[i] = toDTO(p)
	}
	return dtos
}

// GetByID returns nil, nil when no property has the id. Absence is not an
// error on the read path; the boundary turns nil into a 404.
func (s *Service) GetByID(ctx context.Context, id int) (*PropertyDTO, error) {
	prop, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch property %d: %w", id, err)
	}
	dto := toDTO(*prop)
	return &dto, nil
}

// ListQuery is the optional filter and pagination input for List. Unset
// filters are not applied; the ones that are set must all match. City is a
// case-insensitive substring match here, unlike the exact-match InCity
// lookup.
type ListQuery struct {
	IsAvailable *bool
	City        string
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	MinBedrooms *int
	PageNumber  int
	PageSize    int
}

// ListResult is one page of filtered properties plus pagination metadata.
type ListResult struct {
	Properties      []PropertyDTO `json:"properties"`
	TotalCount      int           `json:"total_count"`
	PageNumber      int           `json:"page_number"`
	PageSize        int           `json:"page_size"`
	TotalPages      int           `json:"total_pages"`
	HasPreviousPage bool          `json:"has_previous_page"`
	HasNextPage     bool          `json:"has_next_page"`
}

// List applies the active filters to the full collection, sorts by id
// ascending and returns the requested page. A page number past the end
// yields an empty page with intact metadata, not an error.
func (s *Service) List(ctx context.Context, q ListQuery) (ListResult, error) {
	if q.PageNumber < 1 {
		q.PageNumber = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 10
	}

	properties, err := s.repo.GetAll(ctx)
	if err != nil {
		return ListResult{}, fmt.Errorf("failed to list properties: %w", err)
	}

	filtered := applyFilters(properties, q)

	totalCount := len(filtered)
	totalPages := 0
	if totalCount > 0 {
		// Division form of ceil: totalCount+pageSize-1 can overflow for
		// huge page sizes, which are valid input.
		totalPages = (totalCount-1)/q.PageSize + 1
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].ID < filtered[j].ID
	})

	page := paginate(filtered, q.PageNumber, q.PageSize)

	return ListResult{
		Properties:      toDTOs(page),
		TotalCount:      totalCount,
		PageNumber:      q.PageNumber,
		PageSize:        q.PageSize,
		TotalPages:      totalPages,
		HasPreviousPage: q.PageNumber > 1,
		// Compares the page number against the page count rather than the
		// remaining item count; kept as the reference boundary behavior.
		HasNextPage: q.PageNumber < totalPages,
	}, nil
}

// Available returns available properties in the repository's price-ascending
// order. Distinct from List with an availability filter: no pagination, and
// the ordering differs.
func (s *Service) Available(ctx context.Context) ([]PropertyDTO, error) {
	properties, err := s.repo.GetAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch available properties: %w", err)
	}
	return toDTOs(properties), nil
}

// InCity returns properties whose city matches exactly, ignoring case,
// ordered by price ascending. Contrast with List's substring city filter.
func (s *Service) InCity(ctx context.Context, city string) ([]PropertyDTO, error) {
	properties, err := s.repo.GetByCity(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch properties in city %q: %w", city, err)
	}
	return toDTOs(properties), nil
}

// applyFilters keeps the properties that satisfy every active filter. The
// filters commute, so evaluation order does not matter.
func applyFilters(properties []models.Property, q ListQuery) []models.Property {
	filtered := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if q.IsAvailable != nil && p.IsAvailable != *q.IsAvailable {
			continue
		}
		if q.City != "" && !strings.Contains(strings.ToLower(p.City), strings.ToLower(q.City)) {
			continue
		}
		if q.MinPrice != nil && p.Price.LessThan(*q.MinPrice) {
			continue
		}
		if q.MaxPrice != nil && p.Price.GreaterThan(*q.MaxPrice) {
			continue
		}
		if q.MinBedrooms != nil && p.Bedrooms < *q.MinBedrooms {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func paginate(properties []models.Property, pageNumber, pageSize int) []models.Property {
	// Bound-check by division before multiplying: (pageNumber-1)*pageSize
	// overflows for huge but valid page parameters. Any page past the last
	// one is an empty page.
	if len(properties) == 0 || pageNumber > (len(properties)-1)/pageSize+1 {
		return nil
	}
	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if end > len(properties) {
		end = len(properties)
	}
	return properties[start:end]
}
