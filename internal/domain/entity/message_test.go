package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestConversationKeyFor(t *testing.T) {
	listingID := int64(7)

	tests := []struct {
		name      string
		recipient string
		listingID *int64
		want      string
	}{
		{name: "recipient wins", recipient: "Sarah Benali", listingID: &listingID, want: "Sarah Benali"},
		{name: "listing fallback", listingID: &listingID, want: "Product-7"},
		{name: "general bucket", want: GeneralConversationKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConversationKeyFor(tt.recipient, tt.listingID))
		})
	}
}

func TestMessageSentBy(t *testing.T) {
	profileID := uuid.New()

	own := &Message{SenderID: profileID}
	assert.True(t, own.SentBy(profileID))
	assert.False(t, own.SentBy(uuid.New()))

	// Counterpart messages carry no sender id; the nil id matches nothing.
	incoming := &Message{Sender: "Sarah Benali"}
	assert.False(t, incoming.SentBy(profileID))
	assert.False(t, incoming.SentBy(uuid.Nil))
}

func TestPriceIsDonation(t *testing.T) {
	assert.True(t, PriceIsDonation(PriceFree))
	assert.True(t, PriceIsDonation(PriceZeroDA))
	assert.True(t, PriceIsDonation(""))
	assert.False(t, PriceIsDonation("800 DA"))
	assert.False(t, PriceIsDonation("gratuit"))
}

func TestListingEffectiveWeight(t *testing.T) {
	var l Listing
	assert.Equal(t, DefaultWeight, l.EffectiveWeight())

	w := 2.5
	l.Weight = &w
	assert.Equal(t, 2.5, l.EffectiveWeight())
}
