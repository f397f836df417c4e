package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "antigaspi/internal/domain/errors"
	"antigaspi/internal/infra/auth"
	"antigaspi/internal/infra/persistence/memory"
	"antigaspi/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProfileService(t *testing.T) usecase.ProfileUsecase {
	t.Helper()

	cfg := testConfig()
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewProfileService(
		cfg,
		memory.NewProfileRepository(),
		auth.NewBcryptHasher(cfg),
		tokens,
		newDiscardLogger(),
	)
}

func TestProfileService_RegisterAndLogin(t *testing.T) {
	service := createTestProfileService(t)
	ctx := context.Background()

	out, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Karim Testeur",
		Email:    "karim@example.dz",
		Password: "motdepasse123",
		City:     "Alger",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.True(t, out.Profile.LoggedIn)
	require.NotNil(t, out.Profile.RegisteredAt)
	assert.NotEqual(t, "motdepasse123", out.Profile.PasswordHash)

	logged, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "karim@example.dz",
		Password: "motdepasse123",
	})
	require.NoError(t, err)
	assert.Equal(t, out.Profile.ID, logged.Profile.ID)
}

func TestProfileService_Login_InvalidCredentials(t *testing.T) {
	service := createTestProfileService(t)
	ctx := context.Background()

	_, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "karim@example.dz",
		Password: "motdepasse123",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = service.Register(ctx, &usecase.RegisterInput{
		Name:     "Karim Testeur",
		Email:    "karim@example.dz",
		Password: "motdepasse123",
	})
	require.NoError(t, err)

	_, err = service.Login(ctx, &usecase.LoginInput{
		Email:    "karim@example.dz",
		Password: "mauvais-mdp",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = service.Login(ctx, &usecase.LoginInput{
		Email:    "autre@example.dz",
		Password: "motdepasse123",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestProfileService_RefreshSession(t *testing.T) {
	service := createTestProfileService(t)
	ctx := context.Background()

	registered, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Karim Testeur",
		Email:    "karim@example.dz",
		Password: "motdepasse123",
	})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), registered.RefreshExpiresAt, time.Minute)

	refreshed, err := service.RefreshSession(ctx, &usecase.RefreshSessionInput{
		RefreshToken: registered.RefreshToken,
	})
	require.NoError(t, err)
	assert.Equal(t, registered.Profile.ID, refreshed.Profile.ID)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEmpty(t, refreshed.RefreshToken)
}

func TestProfileService_RefreshSession_RejectsBadTokens(t *testing.T) {
	service := createTestProfileService(t)
	ctx := context.Background()

	registered, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Karim Testeur",
		Email:    "karim@example.dz",
		Password: "motdepasse123",
	})
	require.NoError(t, err)

	// An access token is signed with the other secret and carries the
	// wrong type claim.
	_, err = service.RefreshSession(ctx, &usecase.RefreshSessionInput{
		RefreshToken: registered.AccessToken,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	_, err = service.RefreshSession(ctx, &usecase.RefreshSessionInput{
		RefreshToken: "pas-un-jeton",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestProfileService_RefreshSession_RequiresMatchingProfile(t *testing.T) {
	service := createTestProfileService(t)
	ctx := context.Background()

	first, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Karim Testeur",
		Email:    "karim@example.dz",
		Password: "motdepasse123",
	})
	require.NoError(t, err)

	// Registering again replaces the profile; the old token names a
	// profile that no longer exists.
	_, err = service.Register(ctx, &usecase.RegisterInput{
		Name:     "Amina Remplaçante",
		Email:    "amina@example.dz",
		Password: "motdepasse456",
	})
	require.NoError(t, err)

	_, err = service.RefreshSession(ctx, &usecase.RefreshSessionInput{
		RefreshToken: first.RefreshToken,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestProfileService_Logout(t *testing.T) {
	service := createTestProfileService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Karim Testeur",
		Email:    "karim@example.dz",
		Password: "motdepasse123",
	})
	require.NoError(t, err)

	require.NoError(t, service.Logout(ctx))

	profile, err := service.GetProfile(ctx)
	require.NoError(t, err)
	assert.False(t, profile.LoggedIn)
}

func TestProfileService_UpdateProfile_PartialMerge(t *testing.T) {
	service := createTestProfileService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Karim Testeur",
		Email:    "karim@example.dz",
		Password: "motdepasse123",
		City:     "Alger",
	})
	require.NoError(t, err)

	city := "Oran"
	updated, err := service.UpdateProfile(ctx, &usecase.UpdateProfileInput{City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Oran", updated.City)
	assert.Equal(t, "Karim Testeur", updated.Name)

	// The update is mirrored to the store immediately.
	stored, err := service.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Oran", stored.City)
}

func TestProfileService_ClearProfile(t *testing.T) {
	service := createTestProfileService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Karim Testeur",
		Email:    "karim@example.dz",
		Password: "motdepasse123",
	})
	require.NoError(t, err)

	require.NoError(t, service.ClearProfile(ctx))

	_, err = service.GetProfile(ctx)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestProfileService_SaveProfile_AbortsOnCanceledContext(t *testing.T) {
	service := createTestProfileService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Karim Testeur",
		Email:    "karim@example.dz",
		Password: "motdepasse123",
	})
	require.NoError(t, err)

	canceled, cancel := context.WithCancel(ctx)
	cancel()

	_, err = service.SaveProfile(canceled)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
