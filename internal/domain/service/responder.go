package service

import (
	"antigaspi/internal/domain/entity"
)

// Responder is the simulated counterpart of the messaging screen. It
// produces canned replies and interest messages in place of real users.
type Responder interface {
	// ScheduleReply arranges exactly one synthetic reply in the trigger's
	// conversation after a randomized delay. Delivery is tied to the
	// responder's lifecycle: pending replies are dropped on shutdown.
	ScheduleReply(conversationKey string, trigger *entity.Message)

	// ComposeInterest builds an unsolicited interest message about a listing,
	// authored by a random demo user. The message is not filed; the caller
	// decides the conversation it lands in.
	ComposeInterest(listingName string) *entity.Message
}
