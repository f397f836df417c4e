package handler

import (
	"log/slog"
	"net/http"

	"antigaspi/internal/delivery/http/response"
	domainerrors "antigaspi/internal/domain/errors"
	"antigaspi/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for the alert feed handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{uc: uc, logger: logger}
}

// List returns the retained alerts, newest first.
func (h *NotificationHandler) List(c echo.Context) error {
	alerts, err := h.uc.ListAlerts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, alerts, "")
}

// MarkRead flips one alert to read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid alert id")
	}

	if err := h.uc.MarkAlertRead(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification lue")
}

// MarkAllRead flips every retained alert to read.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	if err := h.uc.MarkAllAlertsRead(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notifications lues")
}
