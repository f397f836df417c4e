// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"antigaspi/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrListingNotFound is a domain-specific error returned when a listing is not found.
var ErrListingNotFound = errors.New("listing not found")

// ListingRepository defines the standard operations for catalog persistence.
// The application layer depends on this interface, not the concrete store.
type ListingRepository interface {
	// List returns every listing, newest first.
	List(ctx context.Context) ([]*entity.Listing, error)

	// FindByID retrieves a single listing by its identifier.
	FindByID(ctx context.Context, id int64) (*entity.Listing, error)

	// Create persists a new listing, assigning its creation-time-derived ID.
	Create(ctx context.Context, listing *entity.Listing) error

	// Update replaces an existing listing.
	Update(ctx context.Context, listing *entity.Listing) error

	// ListByOwner returns the listings whose owner display name matches
	// exactly (case-sensitive).
	ListByOwner(ctx context.Context, owner string) ([]*entity.Listing, error)

	// Count returns the current catalog size.
	Count(ctx context.Context) (int, error)
}

// ReservationRepository keeps the per-viewer denormalized snapshots of
// reserved listings. The canonical reserved flag lives on the listing; this
// list is what the "reserved" screen shows.
type ReservationRepository interface {
	// Add records a reservation snapshot for the viewer. A snapshot for the
	// same listing id replaces the previous one, so the list never holds
	// duplicates.
	Add(ctx context.Context, viewerID uuid.UUID, snapshot *entity.Listing) error

	// Remove drops the viewer's snapshot for the listing id, if any.
	Remove(ctx context.Context, viewerID uuid.UUID, listingID int64) error

	// ListByViewer returns the viewer's snapshots in reservation order.
	ListByViewer(ctx context.Context, viewerID uuid.UUID) ([]*entity.Listing, error)
}
