package service

import (
	"context"

	"github.com/sangkips/backoffice-api/internal/domain/enum"
	"github.com/sangkips/backoffice-api/internal/domain/repository"
	"github.com/sangkips/backoffice-api/pkg/apperror"
)

// StatusService toggles active flags
type StatusService struct {
	statusRepo repository.StatusRepository
}

// NewStatusService creates a new status service
func NewStatusService(statusRepo repository.StatusRepository) *StatusService {
	return &StatusService{statusRepo: statusRepo}
}

// ToggleActive sets the active flag of one row. target must name a known entity.
func (s *StatusService) ToggleActive(ctx context.Context, target string, id uint, active bool) error {
	t, err := enum.ParseStatusTarget(target)
	if err != nil {
		return apperror.NewBadRequestError("Unknown status target")
	}
	if id == 0 {
		return apperror.NewBadRequestError("Invalid ID")
	}

	ok, err := s.statusRepo.SetActive(ctx, t, id, active)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.ErrNotFound
	}
	return nil
}
