package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/patchwork-dev/patchwork/ent"
	"github.com/patchwork-dev/patchwork/ent/request"
	"github.com/patchwork-dev/patchwork/pkg/config"
	"github.com/patchwork-dev/patchwork/pkg/models"
	"github.com/patchwork-dev/patchwork/pkg/queue"
	"github.com/patchwork-dev/patchwork/pkg/services"
)

// ─────────────────────────────────────────────────────────────
// Test fakes
// ─────────────────────────────────────────────────────────────

type fakeRequests struct {
	rows    map[string]*ent.Request
	updates []statusUpdate
}

type statusUpdate struct {
	requestID string
	status    request.Status
	patch     *models.StatusPatch
}

func (f *fakeRequests) FindByRequestID(_ context.Context, requestID string) (*ent.Request, error) {
	row, ok := f.rows[requestID]
	if !ok {
		return nil, services.ErrNotFound
	}
	return row, nil
}

func (f *fakeRequests) List(_ context.Context, filters models.RequestFilters) (*models.RequestListResponse, error) {
	out := &models.RequestListResponse{Limit: filters.Limit, Offset: filters.Offset}
	for _, row := range f.rows {
		out.Requests = append(out.Requests, row)
	}
	out.TotalCount = len(out.Requests)
	return out, nil
}

func (f *fakeRequests) UpdateStatus(_ context.Context, requestID string, newStatus request.Status, patch *models.StatusPatch) (*ent.Request, error) {
	row, ok := f.rows[requestID]
	if !ok {
		return nil, services.ErrNotFound
	}
	if !services.CanTransition(row.Status, newStatus) {
		return nil, &services.InvalidTransitionError{
			RequestID: requestID,
			From:      string(row.Status),
			To:        string(newStatus),
		}
	}
	row.Status = newStatus
	f.updates = append(f.updates, statusUpdate{requestID, newStatus, patch})
	return row, nil
}

type fakeMessages struct {
	rows []*ent.Message
}

func (f *fakeMessages) ThreadPage(_ context.Context, _, _ string, limit int) ([]*ent.Message, error) {
	if limit > len(f.rows) {
		limit = len(f.rows)
	}
	return f.rows[len(f.rows)-limit:], nil
}

type fakeConfig struct {
	forge *models.ForgeConfig
	chat  *models.ChatConfig
}

func (f *fakeConfig) GetForge(context.Context) (*models.ForgeConfig, error) {
	if f.forge == nil {
		return nil, services.ErrNotFound
	}
	return f.forge, nil
}

func (f *fakeConfig) GetChat(context.Context) (*models.ChatConfig, error) {
	if f.chat == nil {
		return nil, services.ErrNotFound
	}
	return f.chat, nil
}

type fakeEnqueuer struct {
	envelopes []models.Envelope
	err       error
}

func (f *fakeEnqueuer) Enqueue(_ context.Context, env models.Envelope) error {
	if f.err != nil {
		return f.err
	}
	f.envelopes = append(f.envelopes, env)
	return nil
}

type fakePool struct {
	cancelled []string
}

func (f *fakePool) CancelRequest(requestID string) bool {
	f.cancelled = append(f.cancelled, requestID)
	return true
}

func (f *fakePool) Health() *queue.PoolHealth { return &queue.PoolHealth{} }

type fakeChatIntake struct {
	repository  string
	issueNumber int
	comment     string
	err         error
}

func (f *fakeChatIntake) RouteForgeComment(_ context.Context, repository string, issueNumber int, comment, _, _ string) (*models.Envelope, error) {
	f.repository = repository
	f.issueNumber = issueNumber
	f.comment = comment
	return nil, f.err
}

// ─────────────────────────────────────────────────────────────
// Harness
// ─────────────────────────────────────────────────────────────

func newTestServer(t *testing.T, deps Deps) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewServer(&config.ServerConfig{Host: "127.0.0.1", Port: 0}, nil, deps)
}

func doRequest(s *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}
