package usecase

import (
	"context"

	"antigaspi/internal/domain/entity"
)

// CheckoutUsecase defines the interface for the current profile's cart
// and order submission.
type CheckoutUsecase interface {
	GetCart(ctx context.Context) (*entity.Cart, error)
	AddItem(ctx context.Context, input *AddItemInput) (*entity.Cart, error)
	UpdateQuantity(ctx context.Context, listingID int64, quantity int) (*entity.Cart, error)
	RemoveItem(ctx context.Context, listingID int64) (*entity.Cart, error)
	SubmitOrder(ctx context.Context) (*entity.OrderReceipt, error)
}

// --- Input DTOs ---

// AddItemInput defines the data required to put a listing in the cart.
type AddItemInput struct {
	ListingID      int64                 `json:"listing_id" validate:"required"`
	DeliveryOption entity.DeliveryOption `json:"delivery_option" validate:"omitempty,oneof=pickup delivery"`
}
