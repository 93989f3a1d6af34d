package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patchwork-dev/patchwork/ent"
	"github.com/patchwork-dev/patchwork/ent/request"
	"github.com/patchwork-dev/patchwork/pkg/models"
)

func requestRow(id string, status request.Status) *ent.Request {
	return &ent.Request{
		ID:         id,
		Status:     status,
		Origin:     request.OriginChat,
		Repository: "acme/api",
	}
}

func TestListRequests_ValidatesFilters(t *testing.T) {
	s := newTestServer(t, Deps{Requests: &fakeRequests{rows: map[string]*ent.Request{}}})

	w := doRequest(s, httptest.NewRequest(http.MethodGet, "/api/requests?status=bogus", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(s, httptest.NewRequest(http.MethodGet, "/api/requests?origin=carrier-pigeon", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(s, httptest.NewRequest(http.MethodGet, "/api/requests?status=pending&origin=chat", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetRequest_NotFound(t *testing.T) {
	s := newTestServer(t, Deps{Requests: &fakeRequests{rows: map[string]*ent.Request{}}})

	w := doRequest(s, httptest.NewRequest(http.MethodGet, "/api/requests/req-missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListMessages_Pagination(t *testing.T) {
	var rows []*ent.Message
	for i := 0; i < 5; i++ {
		rows = append(rows, &ent.Message{ID: fmt.Sprintf("msg-%d", i), Content: fmt.Sprintf("update %d", i)})
	}
	s := newTestServer(t, Deps{Messages: &fakeMessages{rows: rows}})

	w := doRequest(s, httptest.NewRequest(http.MethodGet, "/api/requests/req-1/messages?limit=3", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var page MessagePageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.True(t, page.HasMore)
	require.Len(t, page.Messages, 3)
	assert.Equal(t, "msg-2", page.Messages[0].ID)
	assert.Equal(t, "msg-4", page.Messages[2].ID)

	// Everything fits: no more pages.
	w = doRequest(s, httptest.NewRequest(http.MethodGet, "/api/requests/req-1/messages?limit=10", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.False(t, page.HasMore)
	assert.Len(t, page.Messages, 5)
}

func TestCancelRequest(t *testing.T) {
	requests := &fakeRequests{rows: map[string]*ent.Request{
		"req-1": requestRow("req-1", request.StatusProcessing),
	}}
	pool := &fakePool{}
	s := newTestServer(t, Deps{Requests: requests, Pool: pool})

	req := httptest.NewRequest(http.MethodPost, "/api/requests/req-1/cancel", nil)
	req.Header.Set("X-Forwarded-User", "alice")
	w := doRequest(s, req)
	assert.Equal(t, http.StatusOK, w.Code)

	require.Len(t, requests.updates, 1)
	assert.Equal(t, request.StatusCancelled, requests.updates[0].status)
	assert.Equal(t, "Cancelled by alice", requests.updates[0].patch.LogContent)
	assert.Equal(t, []string{"req-1"}, pool.cancelled)
}

func TestCancelRequest_TerminalConflicts(t *testing.T) {
	requests := &fakeRequests{rows: map[string]*ent.Request{
		"req-1": requestRow("req-1", request.StatusCompleted),
	}}
	pool := &fakePool{}
	s := newTestServer(t, Deps{Requests: requests, Pool: pool})

	w := doRequest(s, httptest.NewRequest(http.MethodPost, "/api/requests/req-1/cancel", nil))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Empty(t, pool.cancelled)
}

func TestRetryRequest(t *testing.T) {
	requests := &fakeRequests{rows: map[string]*ent.Request{
		"req-1": requestRow("req-1", request.StatusError),
	}}
	enqueuer := &fakeEnqueuer{}
	s := newTestServer(t, Deps{Requests: requests, Queue: enqueuer})

	req := httptest.NewRequest(http.MethodPost, "/api/requests/req-1/retry", nil)
	req.Header.Set("X-Forwarded-User", "alice")
	w := doRequest(s, req)
	assert.Equal(t, http.StatusAccepted, w.Code)

	require.Len(t, enqueuer.envelopes, 1)
	env := enqueuer.envelopes[0]
	assert.Equal(t, models.VariantChatRetryRequest, env.Variant)
	assert.Equal(t, "req-1", env.RequestID)

	var payload models.RetryPayload
	require.NoError(t, models.FromPayloadMap(env.Payload, &payload))
	assert.Equal(t, "alice", payload.ActorID)
}

func TestRetryRequest_OnlyFromTerminalFailure(t *testing.T) {
	requests := &fakeRequests{rows: map[string]*ent.Request{
		"req-1": requestRow("req-1", request.StatusProcessing),
	}}
	enqueuer := &fakeEnqueuer{}
	s := newTestServer(t, Deps{Requests: requests, Queue: enqueuer})

	w := doRequest(s, httptest.NewRequest(http.MethodPost, "/api/requests/req-1/retry", nil))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Empty(t, enqueuer.envelopes)
}

func TestAuthorize_DeniesMutations(t *testing.T) {
	requests := &fakeRequests{rows: map[string]*ent.Request{
		"req-1": requestRow("req-1", request.StatusProcessing),
	}}
	s := newTestServer(t, Deps{
		Requests: requests,
		Authorize: func(userID, action, requestID string) bool {
			return action != "cancel"
		},
	})

	w := doRequest(s, httptest.NewRequest(http.MethodPost, "/api/requests/req-1/cancel", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, requests.updates)
}
