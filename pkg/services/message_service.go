package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/patchwork-dev/patchwork/ent"
	"github.com/patchwork-dev/patchwork/ent/message"
	"github.com/patchwork-dev/patchwork/pkg/models"
)

// MessageService manages the conversation-thread log — the append-only,
// single source of truth for user-visible history, cost, and error context.
type MessageService struct {
	client *ent.Client
}

// NewMessageService creates a new MessageService.
func NewMessageService(client *ent.Client) *MessageService {
	return &MessageService{client: client}
}

// Append writes one message to the request's thread. Writes are durable
// before return; storage errors surface to the caller untouched.
func (s *MessageService) Append(ctx context.Context, req models.AppendMessageRequest) (*ent.Message, error) {
	if req.RequestID == "" {
		return nil, NewValidationError("request_id", "required")
	}
	if req.Type == "" {
		return nil, NewValidationError("type", "required")
	}
	if req.Source == "" {
		return nil, NewValidationError("source", "required")
	}

	create := s.client.Message.Create().
		SetID(uuid.New().String()).
		SetRequestID(req.RequestID).
		SetType(req.Type).
		SetSource(req.Source).
		SetContent(req.Content)

	if req.ActorID != "" {
		create = create.SetActorID(req.ActorID)
	}
	if req.ActorName != "" {
		create = create.SetActorName(req.ActorName)
	}
	if len(req.Metadata) > 0 {
		create = create.SetMetadata(req.Metadata)
	}

	msg, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append message: %w", err)
	}
	return msg, nil
}

// Thread returns the request's messages oldest-first, stable by creation
// time then id.
func (s *MessageService) Thread(ctx context.Context, requestID string) ([]*ent.Message, error) {
	msgs, err := s.client.Message.Query().
		Where(message.RequestIDEQ(requestID)).
		Order(ent.Asc(message.FieldCreatedAt), ent.Asc(message.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get thread: %w", err)
	}
	return msgs, nil
}

// ThreadPage returns up to limit messages created before the message with
// beforeID (or the newest page when beforeID is empty), oldest-first.
func (s *MessageService) ThreadPage(ctx context.Context, requestID, beforeID string, limit int) ([]*ent.Message, error) {
	if limit <= 0 || limit > 200 {
		limit = 100
	}

	q := s.client.Message.Query().
		Where(message.RequestIDEQ(requestID))

	if beforeID != "" {
		pivot, err := s.client.Message.Get(ctx, beforeID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to resolve pagination pivot: %w", err)
		}
		q = q.Where(
			message.Or(
				message.CreatedAtLT(pivot.CreatedAt),
				message.And(
					message.CreatedAtEQ(pivot.CreatedAt),
					message.IDLT(pivot.ID),
				),
			),
		)
	}

	// Fetch newest-first to apply the limit at the tail, then reverse.
	msgs, err := q.
		Order(ent.Desc(message.FieldCreatedAt), ent.Desc(message.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get thread page: %w", err)
	}

	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

// LastN returns the most recent n messages oldest-first. Used as replay
// context for strategies without session persistence.
func (s *MessageService) LastN(ctx context.Context, requestID string, n int) ([]*ent.Message, error) {
	return s.ThreadPage(ctx, requestID, "", n)
}

// TotalCostAndDuration sums cost_cents and duration_ms metadata over the
// whole thread. This is the authoritative cost figure; the request row's
// columns are a denormalized cache of this sum.
func (s *MessageService) TotalCostAndDuration(ctx context.Context, requestID string) (*models.CostAndDuration, error) {
	msgs, err := s.Thread(ctx, requestID)
	if err != nil {
		return nil, err
	}

	var out models.CostAndDuration
	for _, m := range msgs {
		out.CostCents += metaInt(m.Metadata, models.MetaCostCents)
		out.DurationMs += metaInt(m.Metadata, models.MetaDurationMs)
	}
	return &out, nil
}

// CountByType returns how many messages of the given type the thread holds.
func (s *MessageService) CountByType(ctx context.Context, requestID string, typ message.Type) (int, error) {
	n, err := s.client.Message.Query().
		Where(
			message.RequestIDEQ(requestID),
			message.TypeEQ(typ),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return n, nil
}

// metaInt reads an integer metadata value, tolerating the float64 that
// JSON round-trips produce.
func metaInt(meta map[string]interface{}, key string) int {
	switch v := meta[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
