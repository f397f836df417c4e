// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"antigaspi/internal/delivery/http/response"
	domainerrors "antigaspi/internal/domain/errors"
	"antigaspi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for catalog-related handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, logger: logger}
}

func listingIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("invalid listing id")
	}

	return id, nil
}

// List returns the whole catalog, newest first.
func (h *CatalogHandler) List(c echo.Context) error {
	listings, err := h.uc.ListListings(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

// Get returns a single listing.
func (h *CatalogHandler) Get(c echo.Context) error {
	id, err := listingIDParam(c)
	if err != nil {
		return err
	}

	listing, err := h.uc.GetListing(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "")
}

// Create publishes a listing owned by the current profile.
func (h *CatalogHandler) Create(c echo.Context) error {
	var input *usecase.CreateListingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Annonce invalide")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	listing, err := h.uc.CreateListing(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, listing, "Annonce publiée")
}

// Reserve marks a listing reserved by the current profile.
func (h *CatalogHandler) Reserve(c echo.Context) error {
	id, err := listingIDParam(c)
	if err != nil {
		return err
	}

	listing, err := h.uc.ReserveListing(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "Annonce réservée")
}

// Unreserve releases a reservation held by the current profile.
func (h *CatalogHandler) Unreserve(c echo.Context) error {
	id, err := listingIDParam(c)
	if err != nil {
		return err
	}

	listing, err := h.uc.UnreserveListing(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "Réservation annulée")
}

// Reserved lists the current profile's reservation snapshots.
func (h *CatalogHandler) Reserved(c echo.Context) error {
	listings, err := h.uc.ListReserved(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

// ByUser lists the listings published under an exact owner name.
func (h *CatalogHandler) ByUser(c echo.Context) error {
	listings, err := h.uc.ListingsByUser(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

// DonationsByUser lists the donations published under an exact owner name.
func (h *CatalogHandler) DonationsByUser(c echo.Context) error {
	listings, err := h.uc.DonationsByUser(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

// Statistics returns the catalog aggregates.
func (h *CatalogHandler) Statistics(c echo.Context) error {
	stats, err := h.uc.Statistics(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// Share streams the listing's share QR code as PNG.
func (h *CatalogHandler) Share(c echo.Context) error {
	id, err := listingIDParam(c)
	if err != nil {
		return err
	}

	png, err := h.uc.ShareListing(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.PNG(c, png)
}

// Scan resolves a scanned share code back into its listing.
func (h *CatalogHandler) Scan(c echo.Context) error {
	var input *usecase.ResolveShareCodeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Code de partage invalide")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	listing, err := h.uc.ResolveShareCode(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "")
}
