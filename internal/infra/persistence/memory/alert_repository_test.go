package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"antigaspi/config"
	"antigaspi/internal/domain/entity"
	"antigaspi/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCappedAlertRepo(cap int) repository.AlertRepository {
	return NewAlertRepository(&config.Config{
		Simulator: &config.SimulatorConfig{MaxAlerts: cap},
	})
}

func alert(title string) *entity.Alert {
	return &entity.Alert{
		ID:        uuid.New(),
		Type:      entity.AlertNewListing,
		Title:     title,
		CreatedAt: time.Now(),
	}
}

func TestAlertRepository_NewestFirstWithCap(t *testing.T) {
	repo := newCappedAlertRepo(3)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.Add(ctx, alert(fmt.Sprintf("alerte %d", i))))
	}

	alerts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 3)
	assert.Equal(t, "alerte 5", alerts[0].Title)
	assert.Equal(t, "alerte 3", alerts[2].Title)
}

func TestAlertRepository_MarkRead(t *testing.T) {
	repo := newCappedAlertRepo(10)
	ctx := context.Background()

	err := repo.MarkRead(ctx, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrAlertNotFound))

	first := alert("alerte")
	require.NoError(t, repo.Add(ctx, first))
	require.NoError(t, repo.MarkRead(ctx, first.ID))

	alerts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.True(t, alerts[0].Read)
}

func TestAlertRepository_MarkAllRead(t *testing.T) {
	repo := newCappedAlertRepo(10)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, alert("une")))
	require.NoError(t, repo.Add(ctx, alert("deux")))
	require.NoError(t, repo.MarkAllRead(ctx))

	alerts, err := repo.List(ctx)
	require.NoError(t, err)
	for _, a := range alerts {
		assert.True(t, a.Read)
	}
}
