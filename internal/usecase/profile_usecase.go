package usecase

import (
	"context"
	"time"

	"antigaspi/internal/domain/entity"
)

// ProfileUsecase defines the interface for the device profile. The store
// holds at most one profile; registering again replaces it.
type ProfileUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	RefreshSession(ctx context.Context, input *RefreshSessionInput) (*AuthOutput, error)
	Logout(ctx context.Context) error
	GetProfile(ctx context.Context) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.Profile, error)
	SaveProfile(ctx context.Context) (*entity.Profile, error)
	ClearProfile(ctx context.Context) error
}

// --- Input/Output DTOs ---

// RegisterInput defines the data required to create the device profile.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
}

// LoginInput defines the credentials checked against the stored profile.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileInput carries a partial profile update. Nil fields are
// left unchanged.
type UpdateProfileInput struct {
	Name      *string `json:"name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	City      *string `json:"city,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// RefreshSessionInput carries the refresh token exchanged for a new pair.
type RefreshSessionInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthOutput bundles the profile with a fresh token pair.
type AuthOutput struct {
	Profile          *entity.Profile `json:"profile"`
	AccessToken      string          `json:"access_token"`
	RefreshToken     string          `json:"refresh_token"`
	RefreshExpiresAt time.Time       `json:"refresh_expires_at"`
}
