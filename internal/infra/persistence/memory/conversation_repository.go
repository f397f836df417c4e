package memory

import (
	"context"
	"slices"
	"sync"

	"antigaspi/internal/domain/entity"
	"antigaspi/internal/domain/repository"

	"github.com/google/uuid"
)

// conversationRepository implements repository.ConversationRepository with
// append-only threads keyed by counterpart identity.
type conversationRepository struct {
	mu      sync.RWMutex
	threads map[string][]*entity.Message
	order   []string          // keys by last activity, most recent first
	log     []*entity.Message // flat log, newest first
}

// NewConversationRepository builds an empty message store. Conversations
// start empty; the local user initiates contact.
func NewConversationRepository() repository.ConversationRepository {
	return &conversationRepository{
		threads: make(map[string][]*entity.Message),
	}
}

// Append files the message under its key and refreshes the key's recency.
func (repo *conversationRepository) Append(ctx context.Context, key string, message *entity.Message) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	copied := *message
	repo.threads[key] = append(repo.threads[key], &copied)
	repo.log = append([]*entity.Message{&copied}, repo.log...)

	repo.order = slices.DeleteFunc(repo.order, func(k string) bool { return k == key })
	repo.order = append([]string{key}, repo.order...)

	return nil
}

// Conversation returns copies of the thread in send order.
func (repo *conversationRepository) Conversation(ctx context.Context, key string) ([]*entity.Message, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	thread, ok := repo.threads[key]
	if !ok {
		return nil, repository.ErrConversationNotFound
	}

	out := make([]*entity.Message, 0, len(thread))
	for _, message := range thread {
		copied := *message
		out = append(out, &copied)
	}

	return out, nil
}

// Keys lists the conversation keys, most recently active first.
func (repo *conversationRepository) Keys(ctx context.Context) ([]string, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return slices.Clone(repo.order), nil
}

// Log returns copies of the flat message log, newest first.
func (repo *conversationRepository) Log(ctx context.Context) ([]*entity.Message, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.Message, 0, len(repo.log))
	for _, message := range repo.log {
		copied := *message
		out = append(out, &copied)
	}

	return out, nil
}

// MarkRead flips every message of the conversation to read.
func (repo *conversationRepository) MarkRead(ctx context.Context, key string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	thread, ok := repo.threads[key]
	if !ok {
		return repository.ErrConversationNotFound
	}
	// Thread and log share pointers, so flipping the thread covers both.
	for _, message := range thread {
		message.Read = true
	}

	return nil
}

// UnreadCount recomputes the unread total from the live threads on every
// call. Messages authored by the local profile never count.
func (repo *conversationRepository) UnreadCount(ctx context.Context, selfID uuid.UUID) (int, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	count := 0
	for _, thread := range repo.threads {
		for _, message := range thread {
			if !message.Read && !message.SentBy(selfID) {
				count++
			}
		}
	}

	return count, nil
}
