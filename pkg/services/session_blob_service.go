package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patchwork-dev/patchwork/ent"
	"github.com/patchwork-dev/patchwork/ent/agentsession"
)

// DefaultSessionTTL is how long a persisted agent session stays resumable.
const DefaultSessionTTL = 7 * 24 * time.Hour

// SessionBlobService stores compressed agent-session payloads. Blobs are
// opaque to the engine; only the owning strategy can parse them.
type SessionBlobService struct {
	client *ent.Client
}

// NewSessionBlobService creates a new SessionBlobService.
func NewSessionBlobService(client *ent.Client) *SessionBlobService {
	return &SessionBlobService{client: client}
}

// PutSessionInput contains fields for persisting a session blob.
type PutSessionInput struct {
	RequestID        string
	SessionID        string
	AgentKind        string
	Blob             []byte // already compressed by the strategy
	UncompressedSize int
	ExpiresAt        time.Time // zero value → now + DefaultSessionTTL
}

// Put persists a session blob. (request_id, session_id) is unique; replaying
// the same pair returns ErrAlreadyExists.
func (s *SessionBlobService) Put(ctx context.Context, in PutSessionInput) (*ent.AgentSession, error) {
	if in.RequestID == "" {
		return nil, NewValidationError("request_id", "required")
	}
	if in.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if in.AgentKind == "" {
		return nil, NewValidationError("agent_kind", "required")
	}
	if len(in.Blob) == 0 {
		return nil, NewValidationError("blob", "required")
	}

	expiresAt := in.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(DefaultSessionTTL)
	}

	row, err := s.client.AgentSession.Create().
		SetID(uuid.New().String()).
		SetRequestID(in.RequestID).
		SetSessionID(in.SessionID).
		SetAgentKind(in.AgentKind).
		SetBlob(in.Blob).
		SetUncompressedSize(in.UncompressedSize).
		SetExpiresAt(expiresAt).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("session %s for request %s: %w", in.SessionID, in.RequestID, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to put session blob: %w", err)
	}
	return row, nil
}

// GetLatest returns the most recent unexpired session for the request, or
// ErrNotFound.
func (s *SessionBlobService) GetLatest(ctx context.Context, requestID string) (*ent.AgentSession, error) {
	row, err := s.client.AgentSession.Query().
		Where(
			agentsession.RequestIDEQ(requestID),
			agentsession.ExpiresAtGT(time.Now()),
		).
		Order(ent.Desc(agentsession.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest session: %w", err)
	}
	return row, nil
}

// GetBySessionID returns the session with the agent-assigned id for the
// request, or ErrNotFound. Used by the container-facing session fetch API.
func (s *SessionBlobService) GetBySessionID(ctx context.Context, requestID, sessionID string) (*ent.AgentSession, error) {
	row, err := s.client.AgentSession.Query().
		Where(
			agentsession.RequestIDEQ(requestID),
			agentsession.SessionIDEQ(sessionID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return row, nil
}

// DeleteExpired removes sessions whose expires_at has passed. Returns the
// number of rows deleted.
func (s *SessionBlobService) DeleteExpired(ctx context.Context) (int, error) {
	n, err := s.client.AgentSession.Delete().
		Where(agentsession.ExpiresAtLT(time.Now())).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return n, nil
}
