package repository

import (
	"context"
	"errors"

	"antigaspi/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAlertNotFound is returned when an alert id is unknown.
var ErrAlertNotFound = errors.New("alert not found")

// AlertRepository stores the volatile synthetic notifications. The store
// retains only the most recent alerts up to its configured cap.
type AlertRepository interface {
	// Add prepends an alert, evicting the oldest beyond the retention cap.
	Add(ctx context.Context, alert *entity.Alert) error

	// List returns the retained alerts, newest first.
	List(ctx context.Context) ([]*entity.Alert, error)

	// MarkRead flips one alert to read.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// MarkAllRead flips every retained alert to read.
	MarkAllRead(ctx context.Context) error
}
