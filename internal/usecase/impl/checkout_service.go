package impl

import (
	"context"
	"log/slog"
	"time"

	"antigaspi/config"
	"antigaspi/internal/domain/entity"
	domainerrors "antigaspi/internal/domain/errors"
	"antigaspi/internal/domain/repository"
	"antigaspi/internal/usecase"
	"antigaspi/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	carts    repository.CartRepository
	listings repository.ListingRepository
	profiles repository.ProfileRepository
	cfg      *config.CheckoutConfig
	logger   *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	carts repository.CartRepository,
	listings repository.ListingRepository,
	profiles repository.ProfileRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		carts:    carts,
		listings: listings,
		profiles: profiles,
		cfg:      cfg.Checkout,
		logger:   logger,
	}
}

func (srv *checkoutService) currentProfileID(ctx context.Context) (uuid.UUID, error) {
	profile, err := srv.profiles.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return uuid.Nil, errors.Wrap(domainerrors.ErrUnauthorized, "no profile registered")
		}

		return uuid.Nil, errors.Wrap(err, "failed to load profile")
	}

	return profile.ID, nil
}

// GetCart returns the current profile's cart with its computed total.
func (srv *checkoutService) GetCart(ctx context.Context) (*entity.Cart, error) {
	profileID, err := srv.currentProfileID(ctx)
	if err != nil {
		return nil, err
	}

	return srv.buildCart(ctx, profileID)
}

// AddItem puts a listing in the cart. Adding an already present listing
// increments its quantity instead of duplicating the line.
func (srv *checkoutService) AddItem(ctx context.Context, input *usecase.AddItemInput) (*entity.Cart, error) {
	profileID, err := srv.currentProfileID(ctx)
	if err != nil {
		return nil, err
	}

	listing, err := srv.listings.FindByID(ctx, input.ListingID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrListingNotFound, "listing not found")
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	items, err := srv.carts.Items(ctx, profileID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	item := &entity.CartItem{
		Listing:        *listing,
		Quantity:       entity.MinCartQuantity,
		DeliveryOption: input.DeliveryOption,
		AddedAt:        time.Now(),
	}
	if item.DeliveryOption == "" {
		item.DeliveryOption = entity.DeliveryPickup
	}
	for _, existing := range items {
		if existing.Listing.ID == input.ListingID {
			item = existing
			item.Quantity++

			break
		}
	}

	if err := srv.carts.Upsert(ctx, profileID, item); err != nil {
		return nil, errors.Wrap(err, "failed to store cart item")
	}

	return srv.buildCart(ctx, profileID)
}

// UpdateQuantity sets the quantity of a cart line. A quantity below the
// floor drops the line entirely.
func (srv *checkoutService) UpdateQuantity(ctx context.Context, listingID int64, quantity int) (*entity.Cart, error) {
	profileID, err := srv.currentProfileID(ctx)
	if err != nil {
		return nil, err
	}

	items, err := srv.carts.Items(ctx, profileID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	var item *entity.CartItem
	for _, existing := range items {
		if existing.Listing.ID == listingID {
			item = existing

			break
		}
	}
	if item == nil {
		return nil, errors.Wrap(domainerrors.ErrCartItemNotFound, "listing not in cart")
	}

	if quantity < entity.MinCartQuantity {
		if err := srv.carts.Remove(ctx, profileID, listingID); err != nil {
			return nil, errors.Wrap(err, "failed to remove cart item")
		}

		return srv.buildCart(ctx, profileID)
	}

	item.Quantity = quantity
	if err := srv.carts.Upsert(ctx, profileID, item); err != nil {
		return nil, errors.Wrap(err, "failed to store cart item")
	}

	return srv.buildCart(ctx, profileID)
}

// RemoveItem drops a cart line.
func (srv *checkoutService) RemoveItem(ctx context.Context, listingID int64) (*entity.Cart, error) {
	profileID, err := srv.currentProfileID(ctx)
	if err != nil {
		return nil, err
	}

	if err := srv.carts.Remove(ctx, profileID, listingID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCartItemNotFound, "listing not in cart")
		}

		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	return srv.buildCart(ctx, profileID)
}

// SubmitOrder runs the simulated order pipeline: a processing delay, a
// receipt, and an emptied cart. An empty cart is rejected up front.
func (srv *checkoutService) SubmitOrder(ctx context.Context) (*entity.OrderReceipt, error) {
	profileID, err := srv.currentProfileID(ctx)
	if err != nil {
		return nil, err
	}

	cart, err := srv.buildCart(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, errors.Wrap(domainerrors.ErrCartEmpty, "cart is empty")
	}

	if err := sleepFor(ctx, srv.cfg.ProcessingDelay); err != nil {
		return nil, errors.Wrap(err, "order aborted")
	}

	itemCount := 0
	for _, item := range cart.Items {
		itemCount += item.Quantity
	}

	receipt := &entity.OrderReceipt{
		OrderID:     uuid.New(),
		ItemCount:   itemCount,
		Total:       cart.Total,
		SubmittedAt: time.Now(),
	}

	if err := srv.carts.Clear(ctx, profileID); err != nil {
		return nil, errors.Wrap(err, "failed to clear cart")
	}

	srv.logger.Info("order submitted",
		"orderID", receipt.OrderID, "items", receipt.ItemCount, "total", receipt.Total)

	return receipt, nil
}

// buildCart assembles the cart view, pricing each line from its snapshot.
// Donations always contribute zero regardless of their price text.
func (srv *checkoutService) buildCart(ctx context.Context, profileID uuid.UUID) (*entity.Cart, error) {
	items, err := srv.carts.Items(ctx, profileID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	total := 0
	for _, item := range items {
		if item.Listing.IsDonation {
			continue
		}
		total += util.ParseDinars(item.Listing.Price) * item.Quantity
	}

	return &entity.Cart{ProfileID: profileID, Items: items, Total: total}, nil
}
