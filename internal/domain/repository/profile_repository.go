package repository

import (
	"context"
	"errors"

	"antigaspi/internal/domain/entity"
)

// ErrProfileNotFound is returned when no profile row exists yet.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists the device's single profile, the only durable
// entity in the system.
type ProfileRepository interface {
	// Load returns the stored profile, or ErrProfileNotFound when the device
	// has no account yet.
	Load(ctx context.Context) (*entity.Profile, error)

	// Save upserts the profile row.
	Save(ctx context.Context, profile *entity.Profile) error

	// Clear removes the stored profile entirely.
	Clear(ctx context.Context) error
}
