package repository

import (
	"context"

	"github.com/sangkips/backoffice-api/internal/domain/enum"
)

// StatusRepository toggles the active flag of the entities named by enum.StatusTarget
type StatusRepository interface {
	// SetActive returns false when no row with id exists for target
	SetActive(ctx context.Context, target enum.StatusTarget, id uint, active bool) (bool, error)
}
