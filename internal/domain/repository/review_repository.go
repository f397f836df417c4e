package repository

import (
	"context"
	"errors"

	"antigaspi/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when a review id is unknown.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository stores the additive per-listing reviews.
type ReviewRepository interface {
	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// ListByListing returns the reviews of one listing, newest first.
	ListByListing(ctx context.Context, listingID int64) ([]*entity.Review, error)

	// VoteHelpful increments the helpful counter of a review.
	VoteHelpful(ctx context.Context, id uuid.UUID) (*entity.Review, error)
}
