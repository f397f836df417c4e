package memory

import (
	"context"
	"sync"

	"antigaspi/internal/domain/entity"
	"antigaspi/internal/domain/repository"

	"github.com/google/uuid"
)

// reviewRepository implements repository.ReviewRepository, newest first.
type reviewRepository struct {
	mu      sync.RWMutex
	reviews []*entity.Review
}

// NewReviewRepository builds the review store pre-populated with the demo
// reviews.
func NewReviewRepository() repository.ReviewRepository {
	repo := &reviewRepository{}
	for _, seed := range seedReviews() {
		review := seed
		review.ID = uuid.New()
		repo.reviews = append(repo.reviews, &review)
	}

	return repo
}

// Create prepends the review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	copied := *review
	repo.reviews = append([]*entity.Review{&copied}, repo.reviews...)

	return nil
}

// ListByListing returns copies of the listing's reviews, newest first.
func (repo *reviewRepository) ListByListing(ctx context.Context, listingID int64) ([]*entity.Review, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var out []*entity.Review
	for _, review := range repo.reviews {
		if review.ListingID == listingID {
			copied := *review
			out = append(out, &copied)
		}
	}

	return out, nil
}

// VoteHelpful increments the helpful counter and returns the updated review.
func (repo *reviewRepository) VoteHelpful(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, review := range repo.reviews {
		if review.ID == id {
			review.Helpful++
			copied := *review

			return &copied, nil
		}
	}

	return nil, repository.ErrReviewNotFound
}
