// Package simulator produces the synthetic notifications of the
// application: catalog-growth alerts and periodic random activity alerts.
// There is no real transport behind them.
package simulator

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"antigaspi/config"
	"antigaspi/internal/delivery"
	"antigaspi/internal/domain/entity"
	"antigaspi/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// alertTemplate is one of the fixed synthetic alert shapes drawn at random.
type alertTemplate struct {
	kind       entity.AlertType
	title      string
	body       string
	redirectTo string
}

var alertTemplates = []alertTemplate{
	{
		kind:       entity.AlertDonation,
		title:      "Nouveau don disponible !",
		body:       "Un utilisateur a partagé des produits gratuits près de chez vous",
		redirectTo: "/products",
	},
	{
		kind:       entity.AlertMessage,
		title:      "Nouveau message",
		body:       "Vous avez reçu un message concernant votre produit",
		redirectTo: "/messages",
	},
	{
		kind:       entity.AlertReservation,
		title:      "Produit réservé",
		body:       "Quelqu'un s'intéresse à votre produit",
		redirectTo: "/reserved",
	},
}

// notifier watches the catalog and emits synthetic alerts. It runs as a
// Delivery so its loops share the application lifecycle and never outlive it.
type notifier struct {
	cfg      *config.SimulatorConfig
	logger   *slog.Logger
	listings repository.ListingRepository
	alerts   repository.AlertRepository
	profiles repository.ProfileRepository

	ctx       context.Context
	cancel    context.CancelFunc
	lastCount int
}

// Params defines the parameters required for the notifier.
type Params struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Listings repository.ListingRepository
	Alerts   repository.AlertRepository
	Profiles repository.ProfileRepository
}

// NewNotifier builds the notification simulator delivery.
func NewNotifier(params Params) (delivery.Delivery, error) {
	ctx, cancel := context.WithCancel(context.Background())
	n := &notifier{
		cfg:      params.Config.Simulator,
		logger:   params.Logger,
		listings: params.Listings,
		alerts:   params.Alerts,
		profiles: params.Profiles,
		ctx:      ctx,
		cancel:   cancel,
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			n.cancel()

			return nil
		},
	})

	return n, nil
}

// Serve runs the growth watcher and the random alert loop until shutdown.
func (n *notifier) Serve(ctx context.Context) error {
	count, err := n.listings.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read initial catalog size")
	}
	n.lastCount = count

	n.logger.Info("Starting notification simulator",
		slog.Duration("pollInterval", n.cfg.PollInterval),
		slog.Duration("alertInterval", n.cfg.AlertInterval))

	pollTicker := time.NewTicker(n.cfg.PollInterval)
	defer pollTicker.Stop()
	alertTicker := time.NewTicker(n.cfg.AlertInterval)
	defer alertTicker.Stop()

	for {
		select {
		case <-n.ctx.Done():
			n.logger.Info("Notification simulator stopped")

			return nil
		case <-ctx.Done():
			return nil
		case <-pollTicker.C:
			n.pollGrowth()
		case <-alertTicker.C:
			n.maybeEmitRandomAlert()
		}
	}
}

// pollGrowth emits one alert per listing added since the previous poll,
// skipping the current profile's own listings.
func (n *notifier) pollGrowth() {
	listings, err := n.listings.List(n.ctx)
	if err != nil {
		n.logger.Error("failed to poll catalog", "error", err)

		return
	}
	added := len(listings) - n.lastCount
	n.lastCount = len(listings)
	if added <= 0 {
		return
	}

	ownerName := n.profileName()

	// New listings are prepended, so the additions are the head of the list.
	for _, listing := range listings[:added] {
		if ownerName != "" && listing.Owner == ownerName {
			continue
		}
		alert := &entity.Alert{
			ID:         uuid.New(),
			Type:       entity.AlertNewListing,
			Title:      "Nouveau produit disponible !",
			Body:       fmt.Sprintf("%s a été ajouté dans %s", listing.Name, listing.Location),
			ListingID:  &listing.ID,
			RedirectTo: "/products",
			CreatedAt:  time.Now(),
		}
		if err := n.alerts.Add(n.ctx, alert); err != nil {
			n.logger.Error("failed to store growth alert", "error", err)
		}
	}
}

// maybeEmitRandomAlert draws one synthetic alert with the configured
// probability, only while a profile name is present.
func (n *notifier) maybeEmitRandomAlert() {
	if rand.Float64() >= n.cfg.AlertProbability {
		return
	}
	if n.profileName() == "" {
		return
	}

	template := alertTemplates[rand.IntN(len(alertTemplates))]
	alert := &entity.Alert{
		ID:         uuid.New(),
		Type:       template.kind,
		Title:      template.title,
		Body:       template.body,
		RedirectTo: template.redirectTo,
		CreatedAt:  time.Now(),
	}
	if err := n.alerts.Add(n.ctx, alert); err != nil {
		n.logger.Error("failed to store random alert", "error", err)

		return
	}
	n.logger.Debug("synthetic alert emitted", "type", template.kind)
}

func (n *notifier) profileName() string {
	profile, err := n.profiles.Load(n.ctx)
	if err != nil {
		return ""
	}

	return profile.Name
}
