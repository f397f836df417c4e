package handler

import (
	"log/slog"
	"net/http"

	"antigaspi/internal/delivery/http/response"
	"antigaspi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MessageHandler holds dependencies for conversation-related handlers.
type MessageHandler struct {
	uc     usecase.MessageUsecase
	logger *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler, injected by Fx.
func NewMessageHandler(uc usecase.MessageUsecase, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{uc: uc, logger: logger}
}

// Send files a message from the current profile.
func (h *MessageHandler) Send(c echo.Context) error {
	var input *usecase.SendMessageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Message invalide")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	message, err := h.uc.SendMessage(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Message envoyé")
}

// Conversations lists every thread with its unread count.
func (h *MessageHandler) Conversations(c echo.Context) error {
	conversations, err := h.uc.ListConversations(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, conversations, "")
}

// Conversation returns one thread in send order.
func (h *MessageHandler) Conversation(c echo.Context) error {
	conversation, err := h.uc.GetConversation(c.Request().Context(), c.Param("key"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, conversation, "")
}

// Log returns the flat message log, newest first.
func (h *MessageHandler) Log(c echo.Context) error {
	log, err := h.uc.MessageLog(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, log, "")
}

// MarkRead flips every message of a conversation to read.
func (h *MessageHandler) MarkRead(c echo.Context) error {
	if err := h.uc.MarkAsRead(c.Request().Context(), c.Param("key")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Conversation lue")
}

// UnreadCount returns the global unread badge.
func (h *MessageHandler) UnreadCount(c echo.Context) error {
	count, err := h.uc.UnreadCount(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"unread": count}, "")
}

// SimulateInterest files an unsolicited buyer message about a listing.
func (h *MessageHandler) SimulateInterest(c echo.Context) error {
	var input *usecase.SimulateInterestInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Requête invalide")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	message, err := h.uc.SimulateInterest(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "")
}
