package property

import (
	"time"

	"github.com/sirupsen/logrus"

	"realestate/server/internal/repository"
	"realestate/server/internal/validation"
)

// Service sequences validation, domain operations and persistence for
// property commands and queries. Validation and not-found outcomes come back
// as structured results; store failures are returned as errors for the API
// boundary to map to a generic response.
type Service struct {
	repo      repository.PropertyRepository
	validator *validation.Validator
	logger    *logrus.Logger
	now       func() time.Time
}

func NewService(repo repository.PropertyRepository, logger *logrus.Logger, now func() time.Time) *Service {
	if logger == nil {
		logger = logrus.New()
	}
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo:      repo,
		validator: validation.NewValidator(now),
		logger:    logger,
		now:       now,
	}
}
