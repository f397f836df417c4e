package repository

import (
	"context"
	"errors"

	"antigaspi/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrConversationNotFound is returned when no conversation exists under a key.
var ErrConversationNotFound = errors.New("conversation not found")

// ConversationRepository stores append-only message threads keyed by the
// counterpart identity string, plus a flat log of everything sent.
type ConversationRepository interface {
	// Append files a message under its conversation key. Messages are never
	// edited or deleted afterwards.
	Append(ctx context.Context, key string, message *entity.Message) error

	// Conversation returns the thread under the key in send order.
	Conversation(ctx context.Context, key string) ([]*entity.Message, error)

	// Keys lists the known conversation keys, most recently active first.
	Keys(ctx context.Context) ([]string, error)

	// Log returns the flat message log, newest first.
	Log(ctx context.Context) ([]*entity.Message, error)

	// MarkRead flips every message of the conversation to read.
	MarkRead(ctx context.Context, key string) error

	// UnreadCount derives the number of unread messages not authored by the
	// given profile, recomputed from the authoritative state on every call.
	UnreadCount(ctx context.Context, selfID uuid.UUID) (int, error)
}
