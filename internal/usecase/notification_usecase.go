package usecase

import (
	"context"

	"antigaspi/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for the in-app alert feed.
type NotificationUsecase interface {
	ListAlerts(ctx context.Context) ([]*entity.Alert, error)
	MarkAlertRead(ctx context.Context, id uuid.UUID) error
	MarkAllAlertsRead(ctx context.Context) error
}
