package usecase

import (
	"context"

	"antigaspi/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewUsecase defines the interface for listing reviews.
type ReviewUsecase interface {
	AddReview(ctx context.Context, input *AddReviewInput) (*entity.Review, error)
	ListReviews(ctx context.Context, listingID int64) ([]*entity.Review, error)
	Summary(ctx context.Context, listingID int64) (*entity.ReviewSummary, error)
	VoteHelpful(ctx context.Context, id uuid.UUID) (*entity.Review, error)
}

// --- Input DTOs ---

// AddReviewInput defines the data required to review a listing. The
// author is always the current profile.
type AddReviewInput struct {
	ListingID int64  `json:"listing_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}
