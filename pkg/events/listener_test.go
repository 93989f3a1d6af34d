package events_test

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patchwork-dev/patchwork/pkg/events"
	"github.com/patchwork-dev/patchwork/test/util"
)

type delivery struct {
	channel string
	payload []byte
}

func startListener(t *testing.T, connStr string) (*events.Listener, chan delivery) {
	t.Helper()
	deliveries := make(chan delivery, 16)
	listener := events.NewListener(connStr, func(channel string, payload []byte) {
		deliveries <- delivery{channel: channel, payload: payload}
	})
	require.NoError(t, listener.Start(context.Background()))
	t.Cleanup(func() { listener.Stop(context.Background()) })
	return listener, deliveries
}

func TestListener_ReceivesPublishedEvents(t *testing.T) {
	connStr := util.GetBaseConnectionString(t)
	ctx := context.Background()

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	publisher := events.NewPublisher(db)

	listener, deliveries := startListener(t, connStr)
	require.NoError(t, listener.Subscribe(ctx, events.GlobalRequestsChannel))

	publisher.PublishRequestStatus(ctx, "req-listen-1", "pending", "processing")

	select {
	case d := <-deliveries:
		assert.Equal(t, events.GlobalRequestsChannel, d.channel)
		var payload events.RequestStatusPayload
		require.NoError(t, json.Unmarshal(d.payload, &payload))
		assert.Equal(t, events.EventTypeRequestStatus, payload.Type)
		assert.Equal(t, "req-listen-1", payload.RequestID)
		assert.Equal(t, "processing", payload.To)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for notification")
	}
}

func TestListener_RequestChannelScoping(t *testing.T) {
	connStr := util.GetBaseConnectionString(t)
	ctx := context.Background()

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	publisher := events.NewPublisher(db)

	listener, deliveries := startListener(t, connStr)
	require.NoError(t, listener.Subscribe(ctx, events.RequestChannel("req-scoped")))

	// Progress on another request never reaches this subscription.
	publisher.PublishAgentProgress(ctx, "req-other", events.AgentProgressPayload{Kind: "tool_call"})
	publisher.PublishAgentProgress(ctx, "req-scoped", events.AgentProgressPayload{Kind: "thinking", Content: "planning"})

	select {
	case d := <-deliveries:
		assert.Equal(t, events.RequestChannel("req-scoped"), d.channel)
		var payload events.AgentProgressPayload
		require.NoError(t, json.Unmarshal(d.payload, &payload))
		assert.Equal(t, "req-scoped", payload.RequestID)
		assert.Equal(t, "thinking", payload.Kind)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for notification")
	}
}

func TestListener_Unsubscribe(t *testing.T) {
	connStr := util.GetBaseConnectionString(t)
	ctx := context.Background()

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	publisher := events.NewPublisher(db)

	listener, deliveries := startListener(t, connStr)
	require.NoError(t, listener.Subscribe(ctx, events.GlobalRequestsChannel))
	require.NoError(t, listener.Unsubscribe(ctx, events.GlobalRequestsChannel))

	publisher.PublishRequestStatus(ctx, "req-gone", "pending", "processing")

	select {
	case d := <-deliveries:
		t.Fatalf("unexpected delivery on %s after unsubscribe", d.channel)
	case <-time.After(time.Second):
	}
}

func TestListener_SubscribeBeforeStart(t *testing.T) {
	listener := events.NewListener("postgres://unused", func(string, []byte) {})
	err := listener.Subscribe(context.Background(), "requests")
	assert.Error(t, err)
}
