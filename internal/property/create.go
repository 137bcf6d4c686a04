package property

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"realestate/server/internal/models"
	"realestate/server/internal/validation"
)

// CreateResult reports the outcome of a create command.
type CreateResult struct {
	ID      int      `json:"id"`
	Address string   `json:"address"`
	City    string   `json:"city"`
	State   string   `json:"state"`
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// Create validates the request, constructs the domain entity and persists
// it. Request validation reports every violated rule at once; the domain
// constructor stops at the first.
func (s *Service) Create(ctx context.Context, req validation.CreateRequest) (CreateResult, error) {
	if result := s.validator.ValidateCreate(req); !result.Valid {
		return CreateResult{
			Success: false,
			Message: "Validation failed",
			Errors:  result.Errors,
		}, nil
	}

	prop, err := models.NewProperty(models.PropertyCreationData{
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
	if err != nil {
		var domainErr *models.DomainError
		if errors.As(err, &domainErr) {
			return CreateResult{Success: false, Message: domainErr.Message}, nil
		}
		return CreateResult{}, err
	}

	if err := s.repo.Add(ctx, prop); err != nil {
		return CreateResult{}, fmt.Errorf("failed to add property: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"id":   prop.ID,
		"city": prop.City,
	}).Info("Property created")

	return CreateResult{
		ID:      prop.ID,
		Address: prop.Address,
		City:    prop.City,
		State:   prop.State,
		Success: true,
		Message: "Property created successfully",
	}, nil
}
