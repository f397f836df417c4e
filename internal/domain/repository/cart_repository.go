package repository

import (
	"context"
	"errors"

	"antigaspi/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartItemNotFound is returned when a listing id is not in the cart.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository holds the ephemeral per-profile selections.
type CartRepository interface {
	// Items returns the profile's cart items in insertion order.
	Items(ctx context.Context, profileID uuid.UUID) ([]*entity.CartItem, error)

	// Upsert adds or replaces the item for its listing id.
	Upsert(ctx context.Context, profileID uuid.UUID, item *entity.CartItem) error

	// Remove drops the item for the listing id.
	Remove(ctx context.Context, profileID uuid.UUID, listingID int64) error

	// Clear empties the profile's cart.
	Clear(ctx context.Context, profileID uuid.UUID) error
}
