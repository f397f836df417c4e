// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GeneralConversationKey groups messages that carry neither a recipient nor
// a listing reference. Unrelated messages can end up merged under it; the
// key rule is kept as the application defines it.
const GeneralConversationKey = "General"

// Message is the unit of conversation between the local user and a
// counterpart (or a simulated one).
type Message struct {
	ID        uuid.UUID `json:"id"`
	Sender    string    `json:"sender"`    // Display name of the author.
	SenderID  uuid.UUID `json:"sender_id"` // Stable profile identifier; uuid.Nil for counterparts.
	Content   string    `json:"content"`
	SentAt    time.Time `json:"sent_at"`
	Recipient string    `json:"recipient,omitempty"`
	ListingID *int64    `json:"listing_id,omitempty"` // Listing the message is about, when contacting via a listing.
	AvatarURL string    `json:"avatar_url,omitempty"`
	Read      bool      `json:"read"`
}

// SentBy reports whether the message was authored by the given profile.
// Comparison is by stable identifier, never by display-name matching.
func (m *Message) SentBy(profileID uuid.UUID) bool {
	return profileID != uuid.Nil && m.SenderID == profileID
}

// ConversationKeyFor computes the immutable key a message is filed under:
// the recipient name when present, otherwise a listing-derived key,
// otherwise the general bucket.
func ConversationKeyFor(recipient string, listingID *int64) string {
	switch {
	case recipient != "":
		return recipient
	case listingID != nil:
		return fmt.Sprintf("Product-%d", *listingID)
	default:
		return GeneralConversationKey
	}
}

// Conversation is an append-only, ordered message thread keyed by the
// counterpart identity string.
type Conversation struct {
	Key      string     `json:"key"`
	Messages []*Message `json:"messages"`
	Unread   int        `json:"unread"`
}

// DemoUser is a canned counterpart used by the auto-responder and the
// interest simulator.
type DemoUser struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	City      string `json:"city"`
}
