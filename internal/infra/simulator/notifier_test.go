package simulator

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"antigaspi/config"
	"antigaspi/internal/domain/entity"
	"antigaspi/internal/infra/persistence/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

type nopLifecycle struct{}

func (nopLifecycle) Append(fx.Hook) {}

func newTestNotifier(t *testing.T, probability float64) (*notifier, Params) {
	t.Helper()

	cfg := &config.Config{Simulator: &config.SimulatorConfig{
		PollInterval:     5 * time.Millisecond,
		AlertInterval:    5 * time.Millisecond,
		AlertProbability: probability,
		MaxAlerts:        10,
	}}
	params := Params{
		Lifecycle: nopLifecycle{},
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Listings:  memory.NewListingRepository(),
		Alerts:    memory.NewAlertRepository(cfg),
		Profiles:  memory.NewProfileRepository(),
	}

	d, err := NewNotifier(params)
	require.NoError(t, err)

	return d.(*notifier), params
}

func TestNotifier_GrowthAlert(t *testing.T) {
	n, params := newTestNotifier(t, 0)
	ctx := context.Background()

	require.NoError(t, params.Profiles.Save(ctx, &entity.Profile{
		ID:   uuid.New(),
		Name: "Karim Testeur",
	}))

	go n.Serve(ctx)
	defer n.cancel()

	// Let the watcher record its baseline before growing the catalog.
	time.Sleep(20 * time.Millisecond)

	require.NoError(t, params.Listings.Create(ctx, &entity.Listing{
		Name:     "Galette kabyle",
		Location: "Tizi Ouzou",
		Owner:    "Sarah Benali",
	}))

	require.Eventually(t, func() bool {
		alerts, err := params.Alerts.List(ctx)

		return err == nil && len(alerts) == 1
	}, time.Second, 5*time.Millisecond)

	alerts, err := params.Alerts.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.AlertNewListing, alerts[0].Type)
	assert.Contains(t, alerts[0].Body, "Galette kabyle")
	assert.Contains(t, alerts[0].Body, "Tizi Ouzou")
}

func TestNotifier_SkipsOwnListings(t *testing.T) {
	n, params := newTestNotifier(t, 0)
	ctx := context.Background()

	require.NoError(t, params.Profiles.Save(ctx, &entity.Profile{
		ID:   uuid.New(),
		Name: "Karim Testeur",
	}))

	go n.Serve(ctx)
	defer n.cancel()

	time.Sleep(20 * time.Millisecond)

	require.NoError(t, params.Listings.Create(ctx, &entity.Listing{
		Name:  "Confiture de figues",
		Owner: "Karim Testeur",
	}))

	// No alert should ever land for the profile's own listing.
	time.Sleep(50 * time.Millisecond)
	alerts, err := params.Alerts.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestNotifier_RandomAlertsRequireProfile(t *testing.T) {
	n, params := newTestNotifier(t, 1)
	ctx := context.Background()

	go n.Serve(ctx)
	defer n.cancel()

	// Probability one, but no profile: nothing may be emitted.
	time.Sleep(50 * time.Millisecond)
	alerts, err := params.Alerts.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, alerts)

	require.NoError(t, params.Profiles.Save(ctx, &entity.Profile{
		ID:   uuid.New(),
		Name: "Karim Testeur",
	}))

	require.Eventually(t, func() bool {
		alerts, err := params.Alerts.List(ctx)

		return err == nil && len(alerts) > 0
	}, time.Second, 5*time.Millisecond)
}
