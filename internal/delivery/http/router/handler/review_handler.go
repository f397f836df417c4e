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

// ReviewHandler holds dependencies for review handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{uc: uc, logger: logger}
}

// Add files a review on a listing.
func (h *ReviewHandler) Add(c echo.Context) error {
	id, err := listingIDParam(c)
	if err != nil {
		return err
	}

	// Bind into an allocated struct: an empty body must fall through to
	// validation, not leave a nil input behind.
	input := new(usecase.AddReviewInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Avis invalide")
	}
	input.ListingID = id
	if err := c.Validate(input); err != nil {
		return err
	}

	review, err := h.uc.AddReview(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Avis publié")
}

// List returns the reviews of one listing, newest first.
func (h *ReviewHandler) List(c echo.Context) error {
	id, err := listingIDParam(c)
	if err != nil {
		return err
	}

	reviews, err := h.uc.ListReviews(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "")
}

// Summary returns the average rating and per-star distribution.
func (h *ReviewHandler) Summary(c echo.Context) error {
	id, err := listingIDParam(c)
	if err != nil {
		return err
	}

	summary, err := h.uc.Summary(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "")
}

// VoteHelpful increments the helpful counter of a review.
func (h *ReviewHandler) VoteHelpful(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid review id")
	}

	review, err := h.uc.VoteHelpful(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Merci pour votre vote")
}
