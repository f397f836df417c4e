package impl

import (
	"context"
	"testing"

	domainerrors "antigaspi/internal/domain/errors"
	"antigaspi/internal/domain/repository"
	"antigaspi/internal/infra/persistence/memory"
	"antigaspi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestReviewService(t *testing.T) (usecase.ReviewUsecase, repository.ProfileRepository) {
	t.Helper()

	profiles := memory.NewProfileRepository()
	service := NewReviewService(
		memory.NewReviewRepository(),
		memory.NewListingRepository(),
		profiles,
		newDiscardLogger(),
	)

	return service, profiles
}

func TestReviewService_AddReview(t *testing.T) {
	service, profiles := createTestReviewService(t)
	profile := registerTestProfile(t, profiles)
	ctx := context.Background()

	review, err := service.AddReview(ctx, &usecase.AddReviewInput{
		ListingID: 2,
		Rating:    5,
		Comment:   "Excellent, je recommande !",
	})
	require.NoError(t, err)
	assert.Equal(t, profile.ID, review.AuthorID)
	assert.Equal(t, profile.Name, review.AuthorName)
	assert.Zero(t, review.Helpful)

	listed, err := service.ListReviews(ctx, 2)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, review.ID, listed[0].ID)
}

func TestReviewService_AddReview_Errors(t *testing.T) {
	service, profiles := createTestReviewService(t)
	registerTestProfile(t, profiles)
	ctx := context.Background()

	_, err := service.AddReview(ctx, &usecase.AddReviewInput{ListingID: 1, Rating: 0})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRating))

	_, err = service.AddReview(ctx, &usecase.AddReviewInput{ListingID: 1, Rating: 6})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRating))

	_, err = service.AddReview(ctx, &usecase.AddReviewInput{ListingID: 99999, Rating: 4})
	assert.True(t, errors.Is(err, domainerrors.ErrListingNotFound))
}

func TestReviewService_Summary(t *testing.T) {
	service, _ := createTestReviewService(t)

	// Listing 1 ships with two seeded reviews, 5 and 4 stars.
	summary, err := service.Summary(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Count)
	assert.InDelta(t, 4.5, summary.Average, 0.001)
	require.Len(t, summary.Distribution, 5)
	assert.Equal(t, 5, summary.Distribution[0].Stars)
	assert.Equal(t, 1, summary.Distribution[0].Count)
	assert.InDelta(t, 50, summary.Distribution[0].Percent, 0.001)
	assert.Equal(t, 1, summary.Distribution[1].Count)
}

func TestReviewService_Summary_Empty(t *testing.T) {
	service, _ := createTestReviewService(t)

	summary, err := service.Summary(context.Background(), 99999)
	require.NoError(t, err)
	assert.Zero(t, summary.Count)
	assert.Zero(t, summary.Average)
	require.Len(t, summary.Distribution, 5)
}

func TestReviewService_VoteHelpful(t *testing.T) {
	service, _ := createTestReviewService(t)
	ctx := context.Background()

	_, err := service.VoteHelpful(ctx, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrReviewNotFound))

	listed, err := service.ListReviews(ctx, 1)
	require.NoError(t, err)
	require.NotEmpty(t, listed)

	before := listed[0].Helpful
	voted, err := service.VoteHelpful(ctx, listed[0].ID)
	require.NoError(t, err)
	assert.Equal(t, before+1, voted.Helpful)
}
