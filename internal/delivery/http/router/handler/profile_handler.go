package handler

import (
	"log/slog"
	"net/http"

	"antigaspi/internal/delivery/http/response"
	"antigaspi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile and auth handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

// Register creates the device profile, replacing any previous one.
func (h *ProfileHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Inscription invalide")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Inscription réussie")
}

// Login checks the credentials against the stored profile.
func (h *ProfileHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Connexion invalide")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Connexion réussie")
}

// Refresh exchanges a refresh token for a new token pair.
func (h *ProfileHandler) Refresh(c echo.Context) error {
	var input *usecase.RefreshSessionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Jeton invalide")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.RefreshSession(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Session renouvelée")
}

// Logout clears the logged-in flag.
func (h *ProfileHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Déconnexion réussie")
}

// Get returns the stored profile.
func (h *ProfileHandler) Get(c echo.Context) error {
	profile, err := h.uc.GetProfile(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// Update applies a partial profile update.
func (h *ProfileHandler) Update(c echo.Context) error {
	// Allocated up front so an empty body means an empty update.
	input := new(usecase.UpdateProfileInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Profil invalide")
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profil mis à jour")
}

// Save re-persists the profile after the simulated delay.
func (h *ProfileHandler) Save(c echo.Context) error {
	profile, err := h.uc.SaveProfile(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profil sauvegardé")
}

// Clear removes the stored profile entirely.
func (h *ProfileHandler) Clear(c echo.Context) error {
	if err := h.uc.ClearProfile(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Profil supprimé")
}
