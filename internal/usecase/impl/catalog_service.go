// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"antigaspi/internal/domain/entity"
	domainerrors "antigaspi/internal/domain/errors"
	"antigaspi/internal/domain/repository"
	"antigaspi/internal/domain/service"
	"antigaspi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	listings     repository.ListingRepository
	reservations repository.ReservationRepository
	profiles     repository.ProfileRepository
	qrService    service.QRCodeService
	logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	listings repository.ListingRepository,
	reservations repository.ReservationRepository,
	profiles repository.ProfileRepository,
	qrService service.QRCodeService,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		listings:     listings,
		reservations: reservations,
		profiles:     profiles,
		qrService:    qrService,
		logger:       logger,
	}
}

// currentProfile loads the device profile backing every catalog operation.
func (srv *catalogService) currentProfile(ctx context.Context) (*entity.Profile, error) {
	profile, err := srv.profiles.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "no profile registered")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return profile, nil
}

// CreateListing publishes a new listing owned by the current profile. The
// donation flag is inferred from the price text and frozen from then on.
func (srv *catalogService) CreateListing(ctx context.Context, input *usecase.CreateListingInput) (*entity.Listing, error) {
	profile, err := srv.currentProfile(ctx)
	if err != nil {
		return nil, err
	}

	listing := &entity.Listing{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Location:    input.Location,
		Owner:       profile.Name,
		OwnerID:     profile.ID,
		ImageURL:    input.ImageURL,
		ExpiryDate:  input.ExpiryDate,
		Category:    input.Category,
		Condition:   input.Condition,
		Weight:      input.Weight,
		FlashOffer:  input.FlashOffer,
		IsDonation:  entity.PriceIsDonation(input.Price),
	}
	if listing.Condition == "" {
		listing.Condition = entity.DefaultCondition
	}
	if listing.IsDonation && listing.Price == "" {
		listing.Price = entity.PriceFree
	}

	if err := srv.listings.Create(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to create listing")
	}

	srv.logger.Info("listing published",
		"listingID", listing.ID, "name", listing.Name, "donation", listing.IsDonation)

	return listing, nil
}

// ListListings returns the whole catalog, newest first.
func (srv *catalogService) ListListings(ctx context.Context) ([]*entity.Listing, error) {
	listings, err := srv.listings.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list listings")
	}

	return listings, nil
}

// GetListing retrieves a single listing by id.
func (srv *catalogService) GetListing(ctx context.Context, id int64) (*entity.Listing, error) {
	listing, err := srv.listings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrListingNotFound, "listing not found")
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	return listing, nil
}

// ReserveListing marks a listing reserved by the current profile and records
// the snapshot shown on the reserved screen. Reserving an unknown, already
// reserved or self-owned listing is rejected explicitly.
func (srv *catalogService) ReserveListing(ctx context.Context, id int64) (*entity.Listing, error) {
	profile, err := srv.currentProfile(ctx)
	if err != nil {
		return nil, err
	}

	listing, err := srv.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}

	if listing.OwnerID != uuid.Nil && listing.OwnerID == profile.ID {
		return nil, errors.Wrap(domainerrors.ErrOwnListingReservation, "listing belongs to the viewer")
	}
	if listing.Reserved {
		return nil, errors.Wrap(domainerrors.ErrListingAlreadyReserved, "listing already reserved")
	}

	now := time.Now()
	listing.Reserved = true
	listing.ReservedAt = &now
	listing.ReservedBy = profile.ID

	if err := srv.listings.Update(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to update listing")
	}
	if err := srv.reservations.Add(ctx, profile.ID, listing); err != nil {
		return nil, errors.Wrap(err, "failed to record reservation")
	}

	srv.logger.Info("listing reserved", "listingID", id)

	return listing, nil
}

// UnreserveListing releases a reservation held by the current profile.
func (srv *catalogService) UnreserveListing(ctx context.Context, id int64) (*entity.Listing, error) {
	profile, err := srv.currentProfile(ctx)
	if err != nil {
		return nil, err
	}

	listing, err := srv.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}

	if !listing.Reserved {
		return nil, errors.Wrap(domainerrors.ErrListingNotReserved, "listing is not reserved")
	}
	if listing.ReservedBy != profile.ID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "reservation held by another profile")
	}

	listing.Reserved = false
	listing.ReservedAt = nil
	listing.ReservedBy = uuid.Nil

	if err := srv.listings.Update(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to update listing")
	}
	if err := srv.reservations.Remove(ctx, profile.ID, id); err != nil {
		return nil, errors.Wrap(err, "failed to remove reservation")
	}

	srv.logger.Info("listing released", "listingID", id)

	return listing, nil
}

// ListReserved returns the current profile's reservation snapshots.
func (srv *catalogService) ListReserved(ctx context.Context) ([]*entity.Listing, error) {
	profile, err := srv.currentProfile(ctx)
	if err != nil {
		return nil, err
	}

	reserved, err := srv.reservations.ListByViewer(ctx, profile.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reservations")
	}

	return reserved, nil
}

// ListingsByUser returns the listings published under an exact owner name.
func (srv *catalogService) ListingsByUser(ctx context.Context, userName string) ([]*entity.Listing, error) {
	listings, err := srv.listings.ListByOwner(ctx, userName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list listings by owner")
	}

	return listings, nil
}

// DonationsByUser returns the donations published under an exact owner name.
func (srv *catalogService) DonationsByUser(ctx context.Context, userName string) ([]*entity.Listing, error) {
	listings, err := srv.ListingsByUser(ctx, userName)
	if err != nil {
		return nil, err
	}

	donations := make([]*entity.Listing, 0, len(listings))
	for _, listing := range listings {
		if listing.IsDonation {
			donations = append(donations, listing)
		}
	}

	return donations, nil
}

// Statistics aggregates the catalog partitioned by reservation state, so
// available plus reserved always spans the whole catalog.
func (srv *catalogService) Statistics(ctx context.Context) (*entity.CatalogStatistics, error) {
	listings, err := srv.listings.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list listings")
	}

	stats := &entity.CatalogStatistics{}
	for _, listing := range listings {
		if listing.Reserved {
			stats.ReservedProducts++
			stats.ReservedWeight += listing.EffectiveWeight()

			continue
		}
		stats.TotalProducts++
		stats.TotalWeight += listing.EffectiveWeight()
	}

	return stats, nil
}

// ShareListing renders the share QR code of a listing.
func (srv *catalogService) ShareListing(ctx context.Context, id int64) ([]byte, error) {
	listing, err := srv.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateListingQR(listing.ID, listing.Name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return png, nil
}

// ResolveShareCode decodes a scanned share payload back into its listing.
func (srv *catalogService) ResolveShareCode(ctx context.Context, input *usecase.ResolveShareCodeInput) (*entity.Listing, error) {
	id, err := srv.qrService.ParseListingQR(input.Payload)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("code de partage invalide"), err.Error())
	}

	return srv.GetListing(ctx, id)
}
