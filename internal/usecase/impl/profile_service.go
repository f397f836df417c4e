package impl

import (
	"context"
	"log/slog"
	"time"

	"antigaspi/config"
	"antigaspi/internal/domain/entity"
	domainerrors "antigaspi/internal/domain/errors"
	"antigaspi/internal/domain/repository"
	"antigaspi/internal/domain/service"
	"antigaspi/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// saveProfileDelay is the simulated latency of the explicit save action.
const saveProfileDelay = time.Second

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profiles      repository.ProfileRepository
	hasher        service.PasswordHasher
	tokens        service.TokenService
	refreshSecret string
	logger        *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	cfg *config.Config,
	profiles repository.ProfileRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profiles:      profiles,
		hasher:        hasher,
		tokens:        tokens,
		refreshSecret: cfg.SecretKey.Refresh,
		logger:        logger,
	}
}

// Register creates the device profile, replacing any previous one, and
// returns a fresh token pair.
func (srv *profileService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	now := time.Now()
	profile := &entity.Profile{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		City:         input.City,
		PasswordHash: hash,
		RegisteredAt: &now,
		LoggedIn:     true,
		UpdatedAt:    now,
	}

	if err := srv.profiles.Save(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to save profile")
	}

	srv.logger.Info("profile registered", "profileID", profile.ID, "email", profile.Email)

	return srv.withTokens(profile)
}

// Login checks the credentials against the stored profile and marks it
// logged in.
func (srv *profileService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	profile, err := srv.profiles.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "no profile registered")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	if profile.Email != input.Email || !srv.hasher.Check(input.Password, profile.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "credential mismatch")
	}

	profile.LoggedIn = true
	profile.UpdatedAt = time.Now()
	if err := srv.profiles.Save(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to save profile")
	}

	srv.logger.Info("profile logged in", "profileID", profile.ID)

	return srv.withTokens(profile)
}

// RefreshSession exchanges a valid refresh token for a fresh token pair.
// The token must carry the refresh type and name the stored profile.
func (srv *profileService) RefreshSession(ctx context.Context, input *usecase.RefreshSessionInput) (*usecase.AuthOutput, error) {
	token, err := srv.tokens.ValidateToken(input.RefreshToken, srv.refreshSecret)
	if err != nil || !token.Valid {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "invalid refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["type"] != "refresh" {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "not a refresh token")
	}

	sub, _ := claims["sub"].(string)
	profileID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "malformed token subject")
	}

	profile, err := srv.profiles.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "no profile registered")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}
	if profile.ID != profileID {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "token does not match the stored profile")
	}

	srv.logger.Info("session refreshed", "profileID", profile.ID)

	return srv.withTokens(profile)
}

// Logout clears the logged-in flag while keeping the profile stored.
func (srv *profileService) Logout(ctx context.Context) error {
	profile, err := srv.getProfile(ctx)
	if err != nil {
		return err
	}

	profile.LoggedIn = false
	profile.UpdatedAt = time.Now()
	if err := srv.profiles.Save(ctx, profile); err != nil {
		return errors.Wrap(err, "failed to save profile")
	}

	return nil
}

// GetProfile returns the stored device profile.
func (srv *profileService) GetProfile(ctx context.Context) (*entity.Profile, error) {
	return srv.getProfile(ctx)
}

// UpdateProfile applies a partial update and mirrors it to the store
// immediately.
func (srv *profileService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	profile, err := srv.getProfile(ctx)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		profile.Name = *input.Name
	}
	if input.Phone != nil {
		profile.Phone = *input.Phone
	}
	if input.City != nil {
		profile.City = *input.City
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = *input.AvatarURL
	}
	profile.UpdatedAt = time.Now()

	if err := srv.profiles.Save(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to save profile")
	}

	return profile, nil
}

// SaveProfile re-persists the profile after a simulated processing delay.
// The save itself always succeeds once the delay elapses.
func (srv *profileService) SaveProfile(ctx context.Context) (*entity.Profile, error) {
	profile, err := srv.getProfile(ctx)
	if err != nil {
		return nil, err
	}

	if err := sleepFor(ctx, saveProfileDelay); err != nil {
		return nil, errors.Wrap(err, "save aborted")
	}

	profile.UpdatedAt = time.Now()
	if err := srv.profiles.Save(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to save profile")
	}

	return profile, nil
}

// ClearProfile removes the stored profile entirely.
func (srv *profileService) ClearProfile(ctx context.Context) error {
	if err := srv.profiles.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear profile")
	}

	srv.logger.Info("profile cleared")

	return nil
}

func (srv *profileService) getProfile(ctx context.Context) (*entity.Profile, error) {
	profile, err := srv.profiles.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "no profile registered")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return profile, nil
}

func (srv *profileService) withTokens(profile *entity.Profile) (*usecase.AuthOutput, error) {
	access, refresh, err := srv.tokens.GenerateTokens(profile.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthOutput{
		Profile:          profile,
		AccessToken:      access,
		RefreshToken:     refresh,
		RefreshExpiresAt: time.Now().Add(srv.tokens.GetRefreshTokenDuration()),
	}, nil
}
