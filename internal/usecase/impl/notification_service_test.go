package impl

import (
	"context"
	"testing"
	"time"

	"antigaspi/internal/domain/entity"
	domainerrors "antigaspi/internal/domain/errors"
	"antigaspi/internal/domain/repository"
	"antigaspi/internal/infra/persistence/memory"
	"antigaspi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (usecase.NotificationUsecase, repository.AlertRepository) {
	t.Helper()

	alerts := memory.NewAlertRepository(testConfig())

	return NewNotificationService(alerts, newDiscardLogger()), alerts
}

func addTestAlert(t *testing.T, alerts repository.AlertRepository) *entity.Alert {
	t.Helper()

	alert := &entity.Alert{
		ID:        uuid.New(),
		Type:      entity.AlertNewListing,
		Title:     "Nouveau produit disponible !",
		Body:      "Couscous traditionnel fait maison a été ajouté dans Alger",
		CreatedAt: time.Now(),
	}
	require.NoError(t, alerts.Add(context.Background(), alert))

	return alert
}

func TestNotificationService_ListAlerts(t *testing.T) {
	service, alerts := createTestNotificationService(t)

	listed, err := service.ListAlerts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, listed)

	addTestAlert(t, alerts)
	addTestAlert(t, alerts)

	listed, err = service.ListAlerts(context.Background())
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestNotificationService_MarkAlertRead(t *testing.T) {
	service, alerts := createTestNotificationService(t)
	ctx := context.Background()

	err := service.MarkAlertRead(ctx, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrAlertNotFound))

	alert := addTestAlert(t, alerts)
	require.NoError(t, service.MarkAlertRead(ctx, alert.ID))

	listed, err := service.ListAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.True(t, listed[0].Read)
}

func TestNotificationService_MarkAllAlertsRead(t *testing.T) {
	service, alerts := createTestNotificationService(t)
	ctx := context.Background()

	addTestAlert(t, alerts)
	addTestAlert(t, alerts)

	require.NoError(t, service.MarkAllAlertsRead(ctx))

	listed, err := service.ListAlerts(ctx)
	require.NoError(t, err)
	for _, alert := range listed {
		assert.True(t, alert.Read)
	}
}
