package memory

import (
	"context"
	"sync"

	"antigaspi/internal/domain/entity"
	"antigaspi/internal/domain/repository"
)

// profileRepository implements repository.ProfileRepository without the
// sqlite store. The production wiring persists the profile; this variant
// backs tests and ephemeral setups.
type profileRepository struct {
	mu      sync.RWMutex
	profile *entity.Profile
}

// NewProfileRepository builds an empty volatile profile store.
func NewProfileRepository() repository.ProfileRepository {
	return &profileRepository{}
}

// Load returns a copy of the stored profile.
func (repo *profileRepository) Load(ctx context.Context) (*entity.Profile, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if repo.profile == nil {
		return nil, repository.ErrProfileNotFound
	}

	copied := *repo.profile

	return &copied, nil
}

// Save replaces the stored profile.
func (repo *profileRepository) Save(ctx context.Context, profile *entity.Profile) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	copied := *profile
	repo.profile = &copied

	return nil
}

// Clear removes the stored profile entirely.
func (repo *profileRepository) Clear(ctx context.Context) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.profile = nil

	return nil
}
