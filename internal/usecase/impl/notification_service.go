package impl

import (
	"context"
	"log/slog"

	"antigaspi/internal/domain/entity"
	domainerrors "antigaspi/internal/domain/errors"
	"antigaspi/internal/domain/repository"
	"antigaspi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	alerts repository.AlertRepository
	logger *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(
	alerts repository.AlertRepository,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		alerts: alerts,
		logger: logger,
	}
}

// ListAlerts returns the retained alerts, newest first.
func (srv *notificationService) ListAlerts(ctx context.Context) ([]*entity.Alert, error) {
	alerts, err := srv.alerts.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list alerts")
	}

	return alerts, nil
}

// MarkAlertRead flips one alert to read. Unknown ids are rejected.
func (srv *notificationService) MarkAlertRead(ctx context.Context, id uuid.UUID) error {
	if err := srv.alerts.MarkRead(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return errors.Wrap(domainerrors.ErrAlertNotFound, "alert not found")
		}

		return errors.Wrap(err, "failed to mark alert read")
	}

	return nil
}

// MarkAllAlertsRead flips every retained alert to read.
func (srv *notificationService) MarkAllAlertsRead(ctx context.Context) error {
	if err := srv.alerts.MarkAllRead(ctx); err != nil {
		return errors.Wrap(err, "failed to mark alerts read")
	}

	return nil
}
