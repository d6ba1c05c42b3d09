package usecase

import (
	"context"
	"math/rand"
	"time"

	"collabhub/internal/metrics"
	"collabhub/pkg/logger"
)

const simulatedMessageContent = "Hey there! Just checking in about our collaboration."

// ArrivalSimulator periodically synthesizes inbound messages so a
// session feels alive without a real counterparty. The random source
// and interval are injected so ticks are deterministic under test.
type ArrivalSimulator struct {
	conversation *ConversationUseCase
	interval     time.Duration
	chance       float64
	rng          *rand.Rand
}

func NewArrivalSimulator(conversation *ConversationUseCase, interval time.Duration, chance float64, rng *rand.Rand) *ArrivalSimulator {
	return &ArrivalSimulator{
		conversation: conversation,
		interval:     interval,
		chance:       chance,
		rng:          rng,
	}
}

// Start runs the tick loop in a goroutine until ctx is canceled. No
// mutation happens after cancellation.
func (s *ArrivalSimulator) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)

	go func() {
		for {
			select {
			case <-ticker.C:
				if err := s.Tick(ctx); err != nil {
					logger.Warn("Arrival simulator tick failed: %v", err)
				}
			case <-ctx.Done():
				ticker.Stop()
				return
			}
		}
	}()

	logger.Info("Arrival simulator started (interval %s, chance %.0f%%)", s.interval, s.chance*100)
}

// Tick performs one draw: with the configured probability it picks a
// contact uniformly at random and delivers a canned inbound message.
// Unread tracking and the notification are handled by ReceiveMessage
// based on the current selection.
func (s *ArrivalSimulator) Tick(ctx context.Context) error {
	if s.rng.Float64() >= s.chance {
		return nil
	}

	contacts, err := s.conversation.ListContacts(ctx)
	if err != nil {
		return err
	}
	if len(contacts) == 0 {
		return nil
	}

	contact := contacts[s.rng.Intn(len(contacts))]
	if _, err := s.conversation.ReceiveMessage(ctx, contact.ID, simulatedMessageContent); err != nil {
		return err
	}

	metrics.SimulatedArrivals.Inc()
	logger.Debug("Simulated arrival delivered to %s", contact.Name)
	return nil
}
