package memory

import (
	"context"
	"testing"
	"time"

	"antigaspi/internal/domain/entity"
	"antigaspi/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func message(sender string, senderID uuid.UUID, content string) *entity.Message {
	return &entity.Message{
		ID:       uuid.New(),
		Sender:   sender,
		SenderID: senderID,
		Content:  content,
		SentAt:   time.Now(),
	}
}

func TestConversationRepository_StartsEmpty(t *testing.T) {
	repo := NewConversationRepository()
	ctx := context.Background()

	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	_, err = repo.Conversation(ctx, "Sarah Benali")
	assert.True(t, errors.Is(err, repository.ErrConversationNotFound))
}

func TestConversationRepository_KeysByRecency(t *testing.T) {
	repo := NewConversationRepository()
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "Sarah Benali", message("Moi", uuid.New(), "Bonjour")))
	require.NoError(t, repo.Append(ctx, "Ahmed Khelil", message("Moi", uuid.New(), "Salut")))

	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ahmed Khelil", "Sarah Benali"}, keys)

	// New activity moves the thread back to the front.
	require.NoError(t, repo.Append(ctx, "Sarah Benali", message("Sarah Benali", uuid.Nil, "Re")))

	keys, err = repo.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sarah Benali", "Ahmed Khelil"}, keys)
}

func TestConversationRepository_LogNewestFirst(t *testing.T) {
	repo := NewConversationRepository()
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "Sarah Benali", message("Moi", uuid.New(), "premier")))
	require.NoError(t, repo.Append(ctx, "Sarah Benali", message("Moi", uuid.New(), "second")))

	log, err := repo.Log(ctx)
	require.NoError(t, err)
	require.Len(t, log, 2)
	assert.Equal(t, "second", log[0].Content)
	assert.Equal(t, "premier", log[1].Content)
}

func TestConversationRepository_MarkRead(t *testing.T) {
	repo := NewConversationRepository()
	ctx := context.Background()

	err := repo.MarkRead(ctx, "Sarah Benali")
	assert.True(t, errors.Is(err, repository.ErrConversationNotFound))

	require.NoError(t, repo.Append(ctx, "Sarah Benali", message("Sarah Benali", uuid.Nil, "Bonjour")))
	require.NoError(t, repo.MarkRead(ctx, "Sarah Benali"))

	thread, err := repo.Conversation(ctx, "Sarah Benali")
	require.NoError(t, err)
	assert.True(t, thread[0].Read)
}

func TestConversationRepository_MarkReadScopedToKey(t *testing.T) {
	repo := NewConversationRepository()
	ctx := context.Background()

	// An interest message lives in the sender's thread even though it
	// carries the listing it is about.
	interest := message("Sarah Benali", uuid.Nil, "Votre couscous est-il toujours disponible ?")
	listingID := int64(7)
	interest.ListingID = &listingID
	require.NoError(t, repo.Append(ctx, "Sarah Benali", interest))

	product := message("Moi", uuid.New(), "Bonjour")
	product.ListingID = &listingID
	require.NoError(t, repo.Append(ctx, "Product-7", product))

	require.NoError(t, repo.MarkRead(ctx, "Product-7"))

	thread, err := repo.Conversation(ctx, "Sarah Benali")
	require.NoError(t, err)
	assert.False(t, thread[0].Read, "reading Product-7 must not touch the Sarah Benali thread")
}

func TestConversationRepository_UnreadCount(t *testing.T) {
	repo := NewConversationRepository()
	ctx := context.Background()
	selfID := uuid.New()

	// Two unread incoming messages across two threads, one own unread.
	require.NoError(t, repo.Append(ctx, "Sarah Benali", message("Sarah Benali", uuid.Nil, "Bonjour")))
	require.NoError(t, repo.Append(ctx, "Ahmed Khelil", message("Ahmed Khelil", uuid.Nil, "Salut")))
	require.NoError(t, repo.Append(ctx, "Sarah Benali", message("Moi", selfID, "Re")))

	count, err := repo.UnreadCount(ctx, selfID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, repo.MarkRead(ctx, "Sarah Benali"))

	count, err = repo.UnreadCount(ctx, selfID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// The count is derived from the stored threads, never cached.
	count, err = repo.UnreadCount(ctx, uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
