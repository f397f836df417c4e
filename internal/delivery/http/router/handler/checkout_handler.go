package handler

import (
	"log/slog"
	"net/http"

	"antigaspi/internal/delivery/http/response"
	"antigaspi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for cart and order handlers.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{uc: uc, logger: logger}
}

// Get returns the current cart with its computed total.
func (h *CheckoutHandler) Get(c echo.Context) error {
	cart, err := h.uc.GetCart(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// AddItem puts a listing in the cart.
func (h *CheckoutHandler) AddItem(c echo.Context) error {
	var input *usecase.AddItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Article invalide")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	cart, err := h.uc.AddItem(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Article ajouté au panier")
}

// UpdateQuantity sets the quantity of a cart line.
func (h *CheckoutHandler) UpdateQuantity(c echo.Context) error {
	id, err := listingIDParam(c)
	if err != nil {
		return err
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Quantité invalide")
	}

	cart, err := h.uc.UpdateQuantity(c.Request().Context(), id, input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Panier mis à jour")
}

// RemoveItem drops a cart line.
func (h *CheckoutHandler) RemoveItem(c echo.Context) error {
	id, err := listingIDParam(c)
	if err != nil {
		return err
	}

	cart, err := h.uc.RemoveItem(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Article retiré du panier")
}

// Submit runs the simulated order pipeline.
func (h *CheckoutHandler) Submit(c echo.Context) error {
	receipt, err := h.uc.SubmitOrder(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, receipt, "Commande confirmée")
}
