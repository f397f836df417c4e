// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"antigaspi/internal/domain/entity"
)

// CatalogUsecase defines the interface for catalog-related business operations.
// The "viewer" of every operation is the device's single profile.
type CatalogUsecase interface {
	CreateListing(ctx context.Context, input *CreateListingInput) (*entity.Listing, error)
	ListListings(ctx context.Context) ([]*entity.Listing, error)
	GetListing(ctx context.Context, id int64) (*entity.Listing, error)
	ReserveListing(ctx context.Context, id int64) (*entity.Listing, error)
	UnreserveListing(ctx context.Context, id int64) (*entity.Listing, error)
	ListReserved(ctx context.Context) ([]*entity.Listing, error)
	ListingsByUser(ctx context.Context, userName string) ([]*entity.Listing, error)
	DonationsByUser(ctx context.Context, userName string) ([]*entity.Listing, error)
	Statistics(ctx context.Context) (*entity.CatalogStatistics, error)
	ShareListing(ctx context.Context, id int64) ([]byte, error)
	ResolveShareCode(ctx context.Context, input *ResolveShareCodeInput) (*entity.Listing, error)
}

// --- Input DTOs ---

// CreateListingInput defines the data required to publish a listing. The
// owner is always the current profile; the donation flag is inferred from
// the price text and never supplied by the caller.
type CreateListingInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Location    string   `json:"location" validate:"required"`
	ImageURL    string   `json:"image_url"`
	ExpiryDate  string   `json:"expiry_date"`
	Category    string   `json:"category" validate:"required"`
	Condition   string   `json:"condition"`
	Weight      *float64 `json:"weight,omitempty" validate:"omitempty,gt=0"`
	FlashOffer  bool     `json:"is_flash_offer"`
}

// ResolveShareCodeInput carries the payload decoded from a scanned share
// QR code.
type ResolveShareCodeInput struct {
	Payload string `json:"payload" validate:"required"`
}
