package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patchwork-dev/patchwork/pkg/services"
	"github.com/patchwork-dev/patchwork/test/util"
)

func setupSessions(t *testing.T) *services.SessionBlobService {
	client, _ := util.SetupTestDatabase(t)
	return services.NewSessionBlobService(client)
}

func blobInput(requestID, sessionID string) services.PutSessionInput {
	return services.PutSessionInput{
		RequestID:        requestID,
		SessionID:        sessionID,
		AgentKind:        "runner",
		Blob:             []byte("compressed-session-payload"),
		UncompressedSize: 4096,
	}
}

func TestSessionBlobService_PutValidation(t *testing.T) {
	svc := setupSessions(t)
	ctx := context.Background()

	in := blobInput("req-1", "sess-1")
	in.Blob = nil
	_, err := svc.Put(ctx, in)
	assert.True(t, services.IsValidationError(err))

	in = blobInput("", "sess-1")
	_, err = svc.Put(ctx, in)
	assert.True(t, services.IsValidationError(err))
}

func TestSessionBlobService_PutDuplicate(t *testing.T) {
	svc := setupSessions(t)
	ctx := context.Background()

	row, err := svc.Put(ctx, blobInput("req-1", "sess-1"))
	require.NoError(t, err)
	// Zero ExpiresAt gets the default TTL.
	assert.True(t, row.ExpiresAt.After(time.Now().Add(6*24*time.Hour)))

	_, err = svc.Put(ctx, blobInput("req-1", "sess-1"))
	assert.ErrorIs(t, err, services.ErrAlreadyExists)

	// Same session id under another request is fine.
	_, err = svc.Put(ctx, blobInput("req-2", "sess-1"))
	require.NoError(t, err)
}

func TestSessionBlobService_GetLatestSkipsExpired(t *testing.T) {
	svc := setupSessions(t)
	ctx := context.Background()

	expired := blobInput("req-1", "sess-old")
	expired.ExpiresAt = time.Now().Add(-time.Hour)
	_, err := svc.Put(ctx, expired)
	require.NoError(t, err)

	_, err = svc.GetLatest(ctx, "req-1")
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = svc.Put(ctx, blobInput("req-1", "sess-new"))
	require.NoError(t, err)

	latest, err := svc.GetLatest(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-new", latest.SessionID)
}

func TestSessionBlobService_GetBySessionID(t *testing.T) {
	svc := setupSessions(t)
	ctx := context.Background()

	_, err := svc.Put(ctx, blobInput("req-1", "sess-1"))
	require.NoError(t, err)

	row, err := svc.GetBySessionID(ctx, "req-1", "sess-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("compressed-session-payload"), row.Blob)

	_, err = svc.GetBySessionID(ctx, "req-1", "sess-missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestSessionBlobService_DeleteExpired(t *testing.T) {
	svc := setupSessions(t)
	ctx := context.Background()

	expired := blobInput("req-1", "sess-old")
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	_, err := svc.Put(ctx, expired)
	require.NoError(t, err)
	_, err = svc.Put(ctx, blobInput("req-1", "sess-live"))
	require.NoError(t, err)

	n, err := svc.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	latest, err := svc.GetLatest(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-live", latest.SessionID)
}
