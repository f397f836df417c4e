package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"antigaspi/config"
	"antigaspi/internal/domain/entity"
	"antigaspi/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// testConfig mirrors the production defaults with simulated delays zeroed
// so tests stay fast.
func testConfig() *config.Config {
	cfg := &config.Config{
		Auth:      &config.AuthConfig{BcryptCost: 4},
		AutoReply: &config.AutoReplyConfig{MinDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond},
		Simulator: &config.SimulatorConfig{
			PollInterval:     time.Second,
			AlertInterval:    time.Second,
			AlertProbability: 1,
			MaxAlerts:        10,
		},
		Checkout: &config.CheckoutConfig{ProcessingDelay: 0},
		Payment:  &config.PaymentConfig{PlatformFeePercent: 10, RegistrationFee: 500, ProcessingDelay: 0},
		QRCode:   &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M"},
	}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	return cfg
}

// registerTestProfile stores a ready-made device profile and returns it.
func registerTestProfile(t *testing.T, profiles repository.ProfileRepository) *entity.Profile {
	t.Helper()

	now := time.Now()
	profile := &entity.Profile{
		ID:           uuid.New(),
		Name:         "Karim Testeur",
		Email:        "karim@example.dz",
		Phone:        "0550123456",
		City:         "Alger",
		PasswordHash: "not-a-real-hash",
		RegisteredAt: &now,
		LoggedIn:     true,
		UpdatedAt:    now,
	}
	require.NoError(t, profiles.Save(context.Background(), profile))

	return profile
}

// stubResponder records scheduled replies instead of delivering them.
type stubResponder struct {
	mu        sync.Mutex
	scheduled []string
}

func (r *stubResponder) ScheduleReply(conversationKey string, _ *entity.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scheduled = append(r.scheduled, conversationKey)
}

func (r *stubResponder) ComposeInterest(listingName string) *entity.Message {
	return &entity.Message{
		ID:      uuid.New(),
		Sender:  "Sarah Benali",
		Content: fmt.Sprintf("Bonjour ! Votre %s est-il toujours disponible ?", listingName),
		SentAt:  time.Now(),
	}
}

func (r *stubResponder) scheduledKeys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.scheduled...)
}
