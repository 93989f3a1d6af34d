package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/patchwork-dev/patchwork/ent"
	"github.com/patchwork-dev/patchwork/ent/queuemessage"
	"github.com/patchwork-dev/patchwork/pkg/models"
)

// Service persists envelopes as pending queue messages. It satisfies the
// enqueuer interfaces of the intake surfaces.
type Service struct {
	client *ent.Client
	logger *slog.Logger

	// seq orders messages from this pod. Seeded from the clock so restarts
	// keep the sequence roughly monotonic across pod generations.
	seq atomic.Int64
}

// NewService creates a queue service over the database client.
func NewService(client *ent.Client) *Service {
	s := &Service{
		client: client,
		logger: slog.Default().With("component", "queue"),
	}
	s.seq.Store(time.Now().UnixNano())
	return s
}

// Enqueue persists one envelope as a pending message, immediately claimable.
func (s *Service) Enqueue(ctx context.Context, env models.Envelope) error {
	if env.Variant == "" {
		return fmt.Errorf("envelope variant is required")
	}

	key := env.CorrelationKey
	if key == "" {
		key = "request:" + env.RequestID
	}

	create := s.client.QueueMessage.Create().
		SetID(uuid.New().String()).
		SetVariant(queuemessage.Variant(env.Variant)).
		SetCorrelationKey(key).
		SetSeq(s.seq.Add(1))
	if env.RequestID != "" {
		create = create.SetRequestID(env.RequestID)
	}
	if len(env.Payload) > 0 {
		create = create.SetPayload(env.Payload)
	}

	msg, err := create.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to enqueue %s message: %w", env.Variant, err)
	}

	s.logger.Info("Message enqueued",
		"message_id", msg.ID,
		"variant", env.Variant,
		"correlation_key", key)
	return nil
}

// EnqueueExecute enqueues a request_execute message for the request.
func (s *Service) EnqueueExecute(ctx context.Context, requestID string, payload models.ExecutePayload) error {
	return s.Enqueue(ctx, models.Envelope{
		Variant:   models.VariantRequestExecute,
		RequestID: requestID,
		Payload:   models.ToPayloadMap(payload),
	})
}

// PurgeSettled deletes completed and dead messages enqueued before the
// retention window. Settled rows are kept around for inspection only.
func (s *Service) PurgeSettled(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)
	n, err := s.client.QueueMessage.Delete().
		Where(
			queuemessage.StatusIn(queuemessage.StatusCompleted, queuemessage.StatusDead),
			queuemessage.EnqueuedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge settled messages: %w", err)
	}
	return n, nil
}
