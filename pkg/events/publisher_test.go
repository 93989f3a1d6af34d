package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestChannel(t *testing.T) {
	assert.Equal(t, "request:req-abc", RequestChannel("req-abc"))
}

func TestTruncateIfNeeded_SmallPayloadUntouched(t *testing.T) {
	raw, err := json.Marshal(RequestStatusPayload{
		Type: EventTypeRequestStatus, RequestID: "req-1", From: "pending", To: "processing",
	})
	require.NoError(t, err)

	out, err := truncateIfNeeded(raw)
	require.NoError(t, err)
	assert.Equal(t, string(raw), out)
}

func TestTruncateIfNeeded_LargePayloadReduced(t *testing.T) {
	raw, err := json.Marshal(MessageAppendedPayload{
		Type:      EventTypeMessageAppended,
		RequestID: "req-1",
		MessageID: "msg-1",
		Content:   strings.Repeat("x", 9000),
	})
	require.NoError(t, err)

	out, err := truncateIfNeeded(raw)
	require.NoError(t, err)
	assert.Less(t, len(out), 8000)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.Equal(t, true, envelope["truncated"])
	assert.Equal(t, "req-1", envelope["request_id"])
}

func TestPublisher_NilSafe(t *testing.T) {
	var p *Publisher
	// Must not panic.
	p.PublishRequestStatus(nil, "req-1", "pending", "processing")
	p.PublishMessageAppended(nil, "req-1", "msg-1", "agent_thinking", "")
	p.PublishAgentProgress(nil, "req-1", AgentProgressPayload{Kind: "tool_call"})
	assert.Nil(t, NewPublisher(nil))
}
