package property

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"realestate/server/internal/models"
	"realestate/server/internal/repository"
	"realestate/server/internal/validation"
)

// UpdateResult reports the outcome of an update command. On validation
// failure the message holds every violated rule, joined.
type UpdateResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Update validates the partial request, merges it into the stored entity and
// persists the result. Fields left unset keep their current value.
func (s *Service) Update(ctx context.Context, req validation.UpdateRequest) (UpdateResult, error) {
	if result := s.validator.ValidateUpdate(req); !result.Valid {
		return UpdateResult{
			Success: false,
			Message: strings.Join(result.Errors, ", "),
		}, nil
	}

	prop, err := s.repo.GetByID(ctx, req.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return UpdateResult{
			Success: false,
			Message: fmt.Sprintf("Property with ID %d not found", req.ID),
		}, nil
	}
	if err != nil {
		return UpdateResult{}, fmt.Errorf("failed to fetch property %d: %w", req.ID, err)
	}

	prop.ApplyUpdate(models.PropertyUpdateData{
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Price:        req.Price,
		MonthlyRent:  req.MonthlyRent,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		SquareFeet:   req.SquareFeet,
		YearBuilt:    req.YearBuilt,
		PropertyType: req.PropertyType,
	}, s.now())

	if err := s.repo.Update(ctx, prop); err != nil {
		return UpdateResult{}, fmt.Errorf("failed to update property %d: %w", req.ID, err)
	}

	s.logger.WithField("id", req.ID).Info("Property updated")

	return UpdateResult{Success: true, Message: "Property updated successfully"}, nil
}
