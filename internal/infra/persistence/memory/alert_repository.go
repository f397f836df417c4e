package memory

import (
	"context"
	"sync"

	"antigaspi/config"
	"antigaspi/internal/domain/entity"
	"antigaspi/internal/domain/repository"

	"github.com/google/uuid"
)

// alertRepository implements repository.AlertRepository with a bounded,
// newest-first buffer.
type alertRepository struct {
	mu     sync.RWMutex
	alerts []*entity.Alert
	cap    int
}

// NewAlertRepository builds the alert store with the configured retention cap.
func NewAlertRepository(cfg *config.Config) repository.AlertRepository {
	return &alertRepository{cap: cfg.Simulator.MaxAlerts}
}

// Add prepends the alert and evicts everything beyond the cap.
func (repo *alertRepository) Add(ctx context.Context, alert *entity.Alert) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	copied := *alert
	repo.alerts = append([]*entity.Alert{&copied}, repo.alerts...)
	if len(repo.alerts) > repo.cap {
		repo.alerts = repo.alerts[:repo.cap]
	}

	return nil
}

// List returns copies of the retained alerts, newest first.
func (repo *alertRepository) List(ctx context.Context) ([]*entity.Alert, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.Alert, 0, len(repo.alerts))
	for _, alert := range repo.alerts {
		copied := *alert
		out = append(out, &copied)
	}

	return out, nil
}

// MarkRead flips one alert to read.
func (repo *alertRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, alert := range repo.alerts {
		if alert.ID == id {
			alert.Read = true

			return nil
		}
	}

	return repository.ErrAlertNotFound
}

// MarkAllRead flips every retained alert to read.
func (repo *alertRepository) MarkAllRead(ctx context.Context) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, alert := range repo.alerts {
		alert.Read = true
	}

	return nil
}
