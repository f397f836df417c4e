package memory

import (
	"context"
	"testing"

	"antigaspi/internal/domain/entity"
	"antigaspi/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingRepository_SeededAndOrdered(t *testing.T) {
	repo := NewListingRepository()
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 13, count)

	listings, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 13)
}

func TestListingRepository_Create_UniqueIDsAndPrepend(t *testing.T) {
	repo := NewListingRepository()
	ctx := context.Background()

	first := &entity.Listing{Name: "Galette kabyle", Price: "300 DA"}
	second := &entity.Listing{Name: "Makroud au miel", Price: "500 DA"}

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	// Same-millisecond creations must still get distinct ids.
	assert.NotEqual(t, first.ID, second.ID)
	assert.Greater(t, second.ID, first.ID)

	listings, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, listings[0].ID)
	assert.Equal(t, first.ID, listings[1].ID)
}

func TestListingRepository_FindByID(t *testing.T) {
	repo := NewListingRepository()
	ctx := context.Background()

	listing, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Couscous traditionnel fait maison", listing.Name)

	_, err = repo.FindByID(ctx, 99999)
	assert.True(t, errors.Is(err, repository.ErrListingNotFound))
}

func TestListingRepository_ReturnsCopies(t *testing.T) {
	repo := NewListingRepository()
	ctx := context.Background()

	listing, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	listing.Name = "mutated"

	again, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Couscous traditionnel fait maison", again.Name)
}

func TestListingRepository_Update(t *testing.T) {
	repo := NewListingRepository()
	ctx := context.Background()

	listing, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)

	listing.Reserved = true
	require.NoError(t, repo.Update(ctx, listing))

	stored, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, stored.Reserved)

	missing := &entity.Listing{ID: 99999}
	err = repo.Update(ctx, missing)
	assert.True(t, errors.Is(err, repository.ErrListingNotFound))
}

func TestReservationRepository_AddReplacesSameListing(t *testing.T) {
	repo := NewReservationRepository()
	ctx := context.Background()
	viewer := uuid.New()

	snapshot := &entity.Listing{ID: 1, Name: "Couscous traditionnel fait maison"}
	require.NoError(t, repo.Add(ctx, viewer, snapshot))
	require.NoError(t, repo.Add(ctx, viewer, snapshot))

	reserved, err := repo.ListByViewer(ctx, viewer)
	require.NoError(t, err)
	assert.Len(t, reserved, 1)
}

func TestReservationRepository_RemoveIsScopedToViewer(t *testing.T) {
	repo := NewReservationRepository()
	ctx := context.Background()
	viewer := uuid.New()
	other := uuid.New()

	require.NoError(t, repo.Add(ctx, viewer, &entity.Listing{ID: 1}))
	require.NoError(t, repo.Add(ctx, other, &entity.Listing{ID: 1}))

	require.NoError(t, repo.Remove(ctx, viewer, 1))

	mine, err := repo.ListByViewer(ctx, viewer)
	require.NoError(t, err)
	assert.Empty(t, mine)

	theirs, err := repo.ListByViewer(ctx, other)
	require.NoError(t, err)
	assert.Len(t, theirs, 1)
}
