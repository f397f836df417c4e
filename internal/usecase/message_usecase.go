package usecase

import (
	"context"

	"antigaspi/internal/domain/entity"
)

// MessageUsecase defines the interface for conversation-related business
// operations. Messages sent through SendMessage are attributed to the
// current profile and trigger a delayed synthetic reply in the same
// conversation.
type MessageUsecase interface {
	SendMessage(ctx context.Context, input *SendMessageInput) (*entity.Message, error)
	ListConversations(ctx context.Context) ([]*entity.Conversation, error)
	GetConversation(ctx context.Context, key string) (*entity.Conversation, error)
	MessageLog(ctx context.Context) ([]*entity.Message, error)
	MarkAsRead(ctx context.Context, key string) error
	UnreadCount(ctx context.Context) (int, error)
	SimulateInterest(ctx context.Context, input *SimulateInterestInput) (*entity.Message, error)
}

// --- Input DTOs ---

// SendMessageInput defines the data required to send a message. The
// conversation key is derived from the recipient, falling back to the
// listing and then to the general thread.
type SendMessageInput struct {
	Content   string `json:"content" validate:"required"`
	Recipient string `json:"recipient"`
	ListingID *int64 `json:"listing_id,omitempty"`
}

// SimulateInterestInput names the listing a synthetic buyer asks about.
type SimulateInterestInput struct {
	ListingID   int64  `json:"listing_id" validate:"required"`
	ListingName string `json:"listing_name" validate:"required"`
}
