package impl

import (
	"context"
	"log/slog"
	"time"

	"antigaspi/internal/domain/entity"
	domainerrors "antigaspi/internal/domain/errors"
	"antigaspi/internal/domain/repository"
	"antigaspi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviews  repository.ReviewRepository
	listings repository.ListingRepository
	profiles repository.ProfileRepository
	logger   *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	reviews repository.ReviewRepository,
	listings repository.ListingRepository,
	profiles repository.ProfileRepository,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		reviews:  reviews,
		listings: listings,
		profiles: profiles,
		logger:   logger,
	}
}

// AddReview files a review on a listing, authored by the current profile.
// Reviews are additive: once filed they are never edited or removed.
func (srv *reviewService) AddReview(ctx context.Context, input *usecase.AddReviewInput) (*entity.Review, error) {
	if input.Rating < entity.MinRating || input.Rating > entity.MaxRating {
		return nil, errors.Wrap(domainerrors.ErrInvalidRating, "rating out of bounds")
	}

	if _, err := srv.listings.FindByID(ctx, input.ListingID); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrListingNotFound, "listing not found")
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	profile, err := srv.profiles.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "no profile registered")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	review := &entity.Review{
		ID:         uuid.New(),
		ListingID:  input.ListingID,
		AuthorID:   profile.ID,
		AuthorName: profile.Name,
		AvatarURL:  profile.AvatarURL,
		Rating:     input.Rating,
		Comment:    input.Comment,
		Date:       time.Now(),
	}

	if err := srv.reviews.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.logger.Info("review filed", "listingID", input.ListingID, "rating", input.Rating)

	return review, nil
}

// ListReviews returns the reviews of one listing, newest first.
func (srv *reviewService) ListReviews(ctx context.Context, listingID int64) ([]*entity.Review, error) {
	reviews, err := srv.reviews.ListByListing(ctx, listingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// Summary aggregates the reviews of one listing into an average and a
// per-star distribution, five stars down to one.
func (srv *reviewService) Summary(ctx context.Context, listingID int64) (*entity.ReviewSummary, error) {
	reviews, err := srv.reviews.ListByListing(ctx, listingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	summary := &entity.ReviewSummary{
		ListingID:    listingID,
		Count:        len(reviews),
		Distribution: make([]entity.StarCount, 0, entity.MaxRating),
	}

	counts := make(map[int]int, entity.MaxRating)
	sum := 0
	for _, review := range reviews {
		counts[review.Rating]++
		sum += review.Rating
	}
	if summary.Count > 0 {
		summary.Average = float64(sum) / float64(summary.Count)
	}

	for stars := entity.MaxRating; stars >= entity.MinRating; stars-- {
		row := entity.StarCount{Stars: stars, Count: counts[stars]}
		if summary.Count > 0 {
			row.Percent = float64(row.Count) / float64(summary.Count) * 100
		}
		summary.Distribution = append(summary.Distribution, row)
	}

	return summary, nil
}

// VoteHelpful increments the helpful counter of a review.
func (srv *reviewService) VoteHelpful(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviews.VoteHelpful(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReviewNotFound, "review not found")
		}

		return nil, errors.Wrap(err, "failed to vote review helpful")
	}

	return review, nil
}
