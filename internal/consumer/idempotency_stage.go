package consumer

import (
	"context"

	"go.uber.org/zap"

	"github.com/almonzeir/sudannnnn/internal/idempotency"
)

// IdempotencyStageConfig configures duplicate handling.
type IdempotencyStageConfig struct {
	// FailOpen passes events through when the checker is unreachable;
	// the ReplacingMergeTree engine dedupes eventual re-inserts. When
	// false, unreachable-checker events are nacked for redelivery.
	FailOpen bool
}

// IdempotencyStage drops events whose ids have already been processed.
// SQS is at-least-once, so the same event can be delivered twice; duplicates
// are acked away before they reach the batch writer.
type IdempotencyStage struct {
	checker idempotency.Checker
	config  IdempotencyStageConfig
	log     *zap.Logger
}

// NewIdempotencyStage creates a new idempotency stage
func NewIdempotencyStage(checker idempotency.Checker, config IdempotencyStageConfig, log *zap.Logger) *IdempotencyStage {
	return &IdempotencyStage{
		checker: checker,
		config:  config,
		log:     log,
	}
}

// Start filters envelopes from in to out, dropping duplicates.
func (s *IdempotencyStage) Start(ctx context.Context, in <-chan *Envelope, out chan<- *Envelope) {
	defer close(out)

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Idempotency stage shutting down")
			return
		case envelope, ok := <-in:
			if !ok {
				s.log.Info("Idempotency stage input channel closed")
				return
			}

			if !s.admit(ctx, envelope) {
				continue
			}

			select {
			case <-ctx.Done():
				return
			case out <- envelope:
				// Envelope sent to next stage
			}
		}
	}
}

// admit reports whether the envelope should continue down the pipeline.
func (s *IdempotencyStage) admit(ctx context.Context, envelope *Envelope) bool {
	first, err := s.checker.FirstSeen(ctx, envelope.Event.EventID)
	if err != nil {
		s.log.Warn("Idempotency check failed",
			zap.String("event_id", envelope.Event.EventID),
			zap.Bool("fail_open", s.config.FailOpen),
			zap.Error(err))
		if s.config.FailOpen {
			return true
		}
		if err := envelope.Nack(ctx); err != nil {
			s.log.Error("Failed to nack envelope", zap.Error(err))
		}
		return false
	}

	if !first {
		duplicateEvents.Inc()
		s.log.Info("Dropping duplicate event",
			zap.String("event_id", envelope.Event.EventID))
		if err := envelope.Ack(ctx); err != nil {
			s.log.Error("Failed to ack duplicate envelope", zap.Error(err))
		}
		return false
	}

	return true
}
