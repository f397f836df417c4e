package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"antigaspi/internal/domain/entity"
	domainerrors "antigaspi/internal/domain/errors"
	"antigaspi/internal/domain/repository"
	"antigaspi/internal/domain/service"
	"antigaspi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// messageService implements the MessageUsecase interface.
type messageService struct {
	conversations repository.ConversationRepository
	profiles      repository.ProfileRepository
	alerts        repository.AlertRepository
	responder     service.Responder
	logger        *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(
	conversations repository.ConversationRepository,
	profiles repository.ProfileRepository,
	alerts repository.AlertRepository,
	responder service.Responder,
	logger *slog.Logger,
) usecase.MessageUsecase {
	return &messageService{
		conversations: conversations,
		profiles:      profiles,
		alerts:        alerts,
		responder:     responder,
		logger:        logger,
	}
}

// currentProfileID returns the device profile id, or uuid.Nil when no
// profile exists yet. A nil id never matches any message author.
func (srv *messageService) currentProfileID(ctx context.Context) (uuid.UUID, error) {
	profile, err := srv.profiles.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return uuid.Nil, nil
		}

		return uuid.Nil, errors.Wrap(err, "failed to load profile")
	}

	return profile.ID, nil
}

// SendMessage files a message under its conversation key and arranges the
// simulated counterpart's reply. Messages sent through here are always
// authored by the device profile, so a reply is always scheduled.
func (srv *messageService) SendMessage(ctx context.Context, input *usecase.SendMessageInput) (*entity.Message, error) {
	profile, err := srv.profiles.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "no profile registered")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	key := entity.ConversationKeyFor(input.Recipient, input.ListingID)
	message := &entity.Message{
		ID:        uuid.New(),
		Sender:    profile.Name,
		SenderID:  profile.ID,
		Content:   input.Content,
		SentAt:    time.Now(),
		Recipient: input.Recipient,
		ListingID: input.ListingID,
		AvatarURL: profile.AvatarURL,
		Read:      true,
	}

	if err := srv.conversations.Append(ctx, key, message); err != nil {
		return nil, errors.Wrap(err, "failed to append message")
	}

	srv.responder.ScheduleReply(key, message)
	srv.logger.Debug("message sent", "conversation", key)

	return message, nil
}

// ListConversations returns every thread with its per-thread unread count,
// most recently active first.
func (srv *messageService) ListConversations(ctx context.Context) ([]*entity.Conversation, error) {
	selfID, err := srv.currentProfileID(ctx)
	if err != nil {
		return nil, err
	}

	keys, err := srv.conversations.Keys(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversation keys")
	}

	conversations := make([]*entity.Conversation, 0, len(keys))
	for _, key := range keys {
		messages, err := srv.conversations.Conversation(ctx, key)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load conversation")
		}

		unread := 0
		for _, message := range messages {
			if !message.Read && !message.SentBy(selfID) {
				unread++
			}
		}

		conversations = append(conversations, &entity.Conversation{
			Key:      key,
			Messages: messages,
			Unread:   unread,
		})
	}

	return conversations, nil
}

// GetConversation returns one thread in send order.
func (srv *messageService) GetConversation(ctx context.Context, key string) (*entity.Conversation, error) {
	selfID, err := srv.currentProfileID(ctx)
	if err != nil {
		return nil, err
	}

	messages, err := srv.conversations.Conversation(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrConversationNotFound, "conversation not found")
		}

		return nil, errors.Wrap(err, "failed to load conversation")
	}

	unread := 0
	for _, message := range messages {
		if !message.Read && !message.SentBy(selfID) {
			unread++
		}
	}

	return &entity.Conversation{Key: key, Messages: messages, Unread: unread}, nil
}

// MessageLog returns the flat log of everything sent, newest first.
func (srv *messageService) MessageLog(ctx context.Context) ([]*entity.Message, error) {
	log, err := srv.conversations.Log(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load message log")
	}

	return log, nil
}

// MarkAsRead flips every message of a conversation to read. Unknown keys
// are rejected instead of silently ignored.
func (srv *messageService) MarkAsRead(ctx context.Context, key string) error {
	if err := srv.conversations.MarkRead(ctx, key); err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return errors.Wrap(domainerrors.ErrConversationNotFound, "conversation not found")
		}

		return errors.Wrap(err, "failed to mark conversation read")
	}

	return nil
}

// UnreadCount recomputes the global unread badge from the stored threads.
func (srv *messageService) UnreadCount(ctx context.Context) (int, error) {
	selfID, err := srv.currentProfileID(ctx)
	if err != nil {
		return 0, err
	}

	count, err := srv.conversations.UnreadCount(ctx, selfID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread messages")
	}

	return count, nil
}

// SimulateInterest files an unsolicited interest message from a random demo
// buyer and raises the matching notification.
func (srv *messageService) SimulateInterest(ctx context.Context, input *usecase.SimulateInterestInput) (*entity.Message, error) {
	message := srv.responder.ComposeInterest(input.ListingName)
	message.ListingID = &input.ListingID

	// Incoming messages are keyed by the counterpart's name, so the thread
	// shows up as a conversation with that buyer.
	key := message.Sender
	if err := srv.conversations.Append(ctx, key, message); err != nil {
		return nil, errors.Wrap(err, "failed to append interest message")
	}

	alert := &entity.Alert{
		ID:         uuid.New(),
		Type:       entity.AlertMessage,
		Title:      "Nouveau message",
		Body:       fmt.Sprintf("%s s'intéresse à votre produit \"%s\"", message.Sender, input.ListingName),
		ListingID:  &input.ListingID,
		RedirectTo: "/messages",
		CreatedAt:  time.Now(),
	}
	if err := srv.alerts.Add(ctx, alert); err != nil {
		return nil, errors.Wrap(err, "failed to raise message alert")
	}

	srv.logger.Debug("interest simulated", "conversation", key, "listing", input.ListingName)

	return message, nil
}
