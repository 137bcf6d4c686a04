package property

import (
	"context"
	"errors"
	"fmt"

	"realestate/server/internal/repository"
)

// DeleteResult reports the outcome of a delete command.
type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Delete removes the property with the given id. A missing id is a
// structured failure; a delete that affects no rows after a successful fetch
// is a store fault and surfaces as an error.
func (s *Service) Delete(ctx context.Context, id int) (DeleteResult, error) {
	prop, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return DeleteResult{
			Success: false,
			Message: fmt.Sprintf("Property with ID %d not found", id),
		}, nil
	}
	if err != nil {
		return DeleteResult{}, fmt.Errorf("failed to fetch property %d: %w", id, err)
	}

	deleted, err := s.repo.Delete(ctx, prop)
	if err != nil {
		return DeleteResult{}, fmt.Errorf("failed to delete property %d: %w", id, err)
	}
	if !deleted {
		return DeleteResult{}, fmt.Errorf("delete affected no rows for property %d", id)
	}

	s.logger.WithField("id", id).Info("Property deleted")

	return DeleteResult{
		Success: true,
		Message: fmt.Sprintf("Property %d deleted successfully", id),
	}, nil
}
