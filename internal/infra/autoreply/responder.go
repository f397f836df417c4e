// Package autoreply simulates the counterpart side of a conversation:
// keyword-matched canned replies delivered after a randomized delay.
package autoreply

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"antigaspi/config"
	"antigaspi/internal/domain/entity"
	"antigaspi/internal/domain/lifecycle"
	"antigaspi/internal/domain/repository"
	"antigaspi/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// responder implements service.Responder. Pending replies are scoped to the
// responder's lifecycle: shutdown cancels them instead of letting timers
// fire into a stopped application.
type responder struct {
	conversations repository.ConversationRepository
	logger        *slog.Logger
	minDelay      time.Duration
	maxDelay      time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Params defines the parameters required for the responder.
type Params struct {
	fx.In
	fx.Lifecycle

	Config        *config.Config
	Logger        *slog.Logger
	Conversations repository.ConversationRepository
}

// NewResponder builds the simulated counterpart and ties its pending replies
// to the application lifecycle.
func NewResponder(params Params) service.Responder {
	ctx, cancel := context.WithCancel(context.Background())
	r := &responder{
		conversations: params.Conversations,
		logger:        params.Logger,
		minDelay:      params.Config.AutoReply.MinDelay,
		maxDelay:      params.Config.AutoReply.MaxDelay,
		ctx:           ctx,
		cancel:        cancel,
	}

	params.Append(fx.Hook{
		OnStop: func(stopCtx context.Context) error {
			return r.stop(stopCtx)
		},
	})

	return r
}

// ScheduleReply arranges exactly one synthetic reply in the trigger's
// conversation after a uniform random delay in [minDelay, maxDelay).
func (r *responder) ScheduleReply(conversationKey string, trigger *entity.Message) {
	delay := r.minDelay
	// An inverted or empty window degrades to the fixed minimum.
	if span := r.maxDelay - r.minDelay; span > 0 {
		delay += rand.N(span)
	}
	content := composeReply(trigger.Content)
	avatar := demoUsers[rand.IntN(len(demoUsers))].AvatarURL

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-r.ctx.Done():
			return
		case <-timer.C:
		}

		reply := &entity.Message{
			ID:        uuid.New(),
			Sender:    conversationKey,
			Content:   content,
			SentAt:    time.Now(),
			AvatarURL: avatar,
		}
		if err := r.conversations.Append(r.ctx, conversationKey, reply); err != nil {
			r.logger.Error("failed to deliver synthetic reply",
				"conversation", conversationKey, "error", err)

			return
		}
		r.logger.Debug("synthetic reply delivered",
			"conversation", conversationKey, "delay", delay)
	}()
}

// ComposeInterest builds an unsolicited interest message about a listing,
// authored by a random demo user.
func (r *responder) ComposeInterest(listingName string) *entity.Message {
	user := demoUsers[rand.IntN(len(demoUsers))]
	template := interestTemplates[rand.IntN(len(interestTemplates))]

	return &entity.Message{
		ID:        uuid.New(),
		Sender:    user.Name,
		Content:   fmt.Sprintf(template, listingName),
		SentAt:    time.Now(),
		AvatarURL: user.AvatarURL,
	}
}

// stop cancels pending replies and waits for in-flight goroutines.
func (r *responder) stop(ctx context.Context) error {
	r.cancel()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-done:
		return nil
	case <-waitCtx.Done():
		return waitCtx.Err()
	}
}

// composeReply picks a canned response for the trigger text: the first
// keyword rule that matches the lowercased content wins, otherwise a random
// default reply.
func composeReply(trigger string) string {
	lowered := strings.ToLower(trigger)
	for _, rule := range replyRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.responses[rand.IntN(len(rule.responses))]
			}
		}
	}

	return defaultReplies[rand.IntN(len(defaultReplies))]
}
