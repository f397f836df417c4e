package handler

import (
	"log/slog"
	"net/http"

	"antigaspi/internal/delivery/http/response"
	"antigaspi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for the simulated payment handlers.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{uc: uc, logger: logger}
}

// Quote prices a payment without settling it.
func (h *PaymentHandler) Quote(c echo.Context) error {
	var input *usecase.QuoteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Demande de devis invalide")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	quote, err := h.uc.Quote(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, quote, "")
}

// Pay settles a quote through the simulated gateway.
func (h *PaymentHandler) Pay(c echo.Context) error {
	var input *usecase.PayInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Paiement invalide")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	receipt, err := h.uc.Pay(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, receipt, "Paiement effectué")
}
