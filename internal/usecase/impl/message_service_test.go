package impl

import (
	"context"
	"testing"
	"time"

	"antigaspi/internal/domain/entity"
	domainerrors "antigaspi/internal/domain/errors"
	"antigaspi/internal/domain/repository"
	"antigaspi/internal/infra/persistence/memory"
	"antigaspi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestMessageService(t *testing.T) (
	usecase.MessageUsecase,
	repository.ConversationRepository,
	repository.AlertRepository,
	repository.ProfileRepository,
	*stubResponder,
) {
	t.Helper()

	conversations := memory.NewConversationRepository()
	alerts := memory.NewAlertRepository(testConfig())
	profiles := memory.NewProfileRepository()
	responder := &stubResponder{}

	service := NewMessageService(conversations, profiles, alerts, responder, newDiscardLogger())

	return service, conversations, alerts, profiles, responder
}

func TestMessageService_SendMessage_SchedulesReply(t *testing.T) {
	service, _, _, profiles, responder := createTestMessageService(t)
	profile := registerTestProfile(t, profiles)

	message, err := service.SendMessage(context.Background(), &usecase.SendMessageInput{
		Content:   "Bonjour, est-ce encore disponible ?",
		Recipient: "Sarah Benali",
	})
	require.NoError(t, err)

	assert.True(t, message.SentBy(profile.ID))
	assert.True(t, message.Read)
	assert.Equal(t, []string{"Sarah Benali"}, responder.scheduledKeys())
}

func TestMessageService_SendMessage_NoProfile(t *testing.T) {
	service, _, _, _, _ := createTestMessageService(t)

	_, err := service.SendMessage(context.Background(), &usecase.SendMessageInput{
		Content: "Bonjour",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestMessageService_ConversationKeyRouting(t *testing.T) {
	service, _, _, profiles, _ := createTestMessageService(t)
	registerTestProfile(t, profiles)
	ctx := context.Background()
	listingID := int64(7)

	// Recipient wins over the listing reference.
	_, err := service.SendMessage(ctx, &usecase.SendMessageInput{
		Content:   "Bonjour",
		Recipient: "Sarah Benali",
		ListingID: &listingID,
	})
	require.NoError(t, err)

	// Listing reference alone yields a product thread.
	_, err = service.SendMessage(ctx, &usecase.SendMessageInput{
		Content:   "Toujours là ?",
		ListingID: &listingID,
	})
	require.NoError(t, err)

	// Neither yields the general bucket.
	_, err = service.SendMessage(ctx, &usecase.SendMessageInput{Content: "Merci"})
	require.NoError(t, err)

	conversations, err := service.ListConversations(ctx)
	require.NoError(t, err)

	keys := make([]string, 0, len(conversations))
	for _, conversation := range conversations {
		keys = append(keys, conversation.Key)
	}
	assert.ElementsMatch(t, []string{"Sarah Benali", "Product-7", entity.GeneralConversationKey}, keys)
}

func TestMessageService_MarkAsRead(t *testing.T) {
	service, conversations, _, profiles, _ := createTestMessageService(t)
	registerTestProfile(t, profiles)
	ctx := context.Background()

	err := service.MarkAsRead(ctx, "Sarah Benali")
	assert.True(t, errors.Is(err, domainerrors.ErrConversationNotFound))

	incoming := &entity.Message{
		ID:      uuid.New(),
		Sender:  "Sarah Benali",
		Content: "Bonjour !",
		SentAt:  time.Now(),
	}
	require.NoError(t, conversations.Append(ctx, "Sarah Benali", incoming))

	count, err := service.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, service.MarkAsRead(ctx, "Sarah Benali"))

	count, err = service.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMessageService_UnreadCount_ExcludesOwnMessages(t *testing.T) {
	service, conversations, _, profiles, _ := createTestMessageService(t)
	profile := registerTestProfile(t, profiles)
	ctx := context.Background()

	// An own message left unread never counts toward the badge.
	own := &entity.Message{
		ID:       uuid.New(),
		Sender:   profile.Name,
		SenderID: profile.ID,
		Content:  "Je passe ce soir",
		SentAt:   time.Now(),
	}
	require.NoError(t, conversations.Append(ctx, "Sarah Benali", own))

	incoming := &entity.Message{
		ID:      uuid.New(),
		Sender:  "Sarah Benali",
		Content: "Parfait !",
		SentAt:  time.Now(),
	}
	require.NoError(t, conversations.Append(ctx, "Sarah Benali", incoming))

	count, err := service.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMessageService_SimulateInterest(t *testing.T) {
	service, _, alerts, profiles, _ := createTestMessageService(t)
	registerTestProfile(t, profiles)
	ctx := context.Background()

	message, err := service.SimulateInterest(ctx, &usecase.SimulateInterestInput{
		ListingID:   1,
		ListingName: "Couscous traditionnel fait maison",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sarah Benali", message.Sender)
	assert.False(t, message.SentBy(uuid.New()))

	conversation, err := service.GetConversation(ctx, "Sarah Benali")
	require.NoError(t, err)
	require.Len(t, conversation.Messages, 1)
	assert.Equal(t, 1, conversation.Unread)

	raised, err := alerts.List(ctx)
	require.NoError(t, err)
	require.Len(t, raised, 1)
	assert.Equal(t, entity.AlertMessage, raised[0].Type)
}
