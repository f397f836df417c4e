// Package memory contains the volatile in-memory implementation of the
// persistence layer. Everything here resets to its seed state on restart;
// only the profile lives elsewhere, in the sqlite store.
package memory

import (
	"context"
	"sync"
	"time"

	"antigaspi/internal/domain/entity"
	"antigaspi/internal/domain/repository"

	"github.com/google/uuid"
)

// listingRepository implements repository.ListingRepository over a
// mutex-guarded slice ordered newest first.
type listingRepository struct {
	mu       sync.RWMutex
	listings []*entity.Listing
	lastID   int64
}

// NewListingRepository builds the catalog store pre-populated with the demo
// listings.
func NewListingRepository() repository.ListingRepository {
	repo := &listingRepository{}
	for _, seed := range seedListings() {
		listing := seed
		repo.listings = append(repo.listings, &listing)
		if listing.ID > repo.lastID {
			repo.lastID = listing.ID
		}
	}

	return repo
}

// List returns copies of every listing, newest first. Callers never share
// mutable state with the store.
func (repo *listingRepository) List(ctx context.Context) ([]*entity.Listing, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.Listing, 0, len(repo.listings))
	for _, listing := range repo.listings {
		copied := *listing
		out = append(out, &copied)
	}

	return out, nil
}

// FindByID retrieves a copy of a single listing.
func (repo *listingRepository) FindByID(ctx context.Context, id int64) (*entity.Listing, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	listing := repo.find(id)
	if listing == nil {
		return nil, repository.ErrListingNotFound
	}
	copied := *listing

	return &copied, nil
}

// Create assigns a creation-time-derived identifier and prepends the listing.
// Identifiers are unix milliseconds, bumped past the last assigned one so
// two creations in the same millisecond stay distinct.
func (repo *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= repo.lastID {
		id = repo.lastID + 1
	}
	repo.lastID = id

	listing.ID = id
	listing.CreatedAt = time.Now()

	copied := *listing
	repo.listings = append([]*entity.Listing{&copied}, repo.listings...)

	return nil
}

// Update replaces the stored listing with the given state.
func (repo *listingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i, stored := range repo.listings {
		if stored.ID == listing.ID {
			copied := *listing
			repo.listings[i] = &copied

			return nil
		}
	}

	return repository.ErrListingNotFound
}

// ListByOwner filters by exact, case-sensitive owner display name.
func (repo *listingRepository) ListByOwner(ctx context.Context, owner string) ([]*entity.Listing, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var out []*entity.Listing
	for _, listing := range repo.listings {
		if listing.Owner == owner {
			copied := *listing
			out = append(out, &copied)
		}
	}

	return out, nil
}

// Count returns the catalog size.
func (repo *listingRepository) Count(ctx context.Context) (int, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return len(repo.listings), nil
}

func (repo *listingRepository) find(id int64) *entity.Listing {
	for _, listing := range repo.listings {
		if listing.ID == id {
			return listing
		}
	}

	return nil
}

// reservationRepository implements repository.ReservationRepository: the
// per-viewer denormalized snapshots backing the "reserved" screen.
type reservationRepository struct {
	mu        sync.RWMutex
	snapshots map[uuid.UUID][]*entity.Listing
}

// NewReservationRepository builds an empty reservation snapshot store.
func NewReservationRepository() repository.ReservationRepository {
	return &reservationRepository{
		snapshots: make(map[uuid.UUID][]*entity.Listing),
	}
}

// Add records the snapshot, replacing any previous one for the same listing
// so a double reservation can never duplicate an entry.
func (repo *reservationRepository) Add(ctx context.Context, viewerID uuid.UUID, snapshot *entity.Listing) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	copied := *snapshot
	kept := repo.snapshots[viewerID][:0]
	for _, existing := range repo.snapshots[viewerID] {
		if existing.ID != snapshot.ID {
			kept = append(kept, existing)
		}
	}
	repo.snapshots[viewerID] = append(kept, &copied)

	return nil
}

// Remove drops the viewer's snapshot for the listing, silently when absent.
func (repo *reservationRepository) Remove(ctx context.Context, viewerID uuid.UUID, listingID int64) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	kept := repo.snapshots[viewerID][:0]
	for _, existing := range repo.snapshots[viewerID] {
		if existing.ID != listingID {
			kept = append(kept, existing)
		}
	}
	repo.snapshots[viewerID] = kept

	return nil
}

// ListByViewer returns copies of the viewer's snapshots in reservation order.
func (repo *reservationRepository) ListByViewer(ctx context.Context, viewerID uuid.UUID) ([]*entity.Listing, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.Listing, 0, len(repo.snapshots[viewerID]))
	for _, snapshot := range repo.snapshots[viewerID] {
		copied := *snapshot
		out = append(out, &copied)
	}

	return out, nil
}
