package memory

import (
	"context"
	"sync"

	"antigaspi/internal/domain/entity"
	"antigaspi/internal/domain/repository"

	"github.com/google/uuid"
)

// cartRepository implements repository.CartRepository over per-profile
// item slices in insertion order.
type cartRepository struct {
	mu    sync.RWMutex
	carts map[uuid.UUID][]*entity.CartItem
}

// NewCartRepository builds an empty cart store.
func NewCartRepository() repository.CartRepository {
	return &cartRepository{
		carts: make(map[uuid.UUID][]*entity.CartItem),
	}
}

// Items returns copies of the profile's cart in insertion order.
func (repo *cartRepository) Items(ctx context.Context, profileID uuid.UUID) ([]*entity.CartItem, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.CartItem, 0, len(repo.carts[profileID]))
	for _, item := range repo.carts[profileID] {
		copied := *item
		out = append(out, &copied)
	}

	return out, nil
}

// Upsert replaces the item for its listing id, or appends it.
func (repo *cartRepository) Upsert(ctx context.Context, profileID uuid.UUID, item *entity.CartItem) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	copied := *item
	for i, existing := range repo.carts[profileID] {
		if existing.Listing.ID == item.Listing.ID {
			repo.carts[profileID][i] = &copied

			return nil
		}
	}
	repo.carts[profileID] = append(repo.carts[profileID], &copied)

	return nil
}

// Remove drops the item for the listing id.
func (repo *cartRepository) Remove(ctx context.Context, profileID uuid.UUID, listingID int64) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	items := repo.carts[profileID]
	for i, existing := range items {
		if existing.Listing.ID == listingID {
			repo.carts[profileID] = append(items[:i], items[i+1:]...)

			return nil
		}
	}

	return repository.ErrCartItemNotFound
}

// Clear empties the profile's cart.
func (repo *cartRepository) Clear(ctx context.Context, profileID uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	delete(repo.carts, profileID)

	return nil
}
