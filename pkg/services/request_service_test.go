package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patchwork-dev/patchwork/ent/message"
	"github.com/patchwork-dev/patchwork/ent/request"
	"github.com/patchwork-dev/patchwork/pkg/models"
	"github.com/patchwork-dev/patchwork/pkg/services"
	"github.com/patchwork-dev/patchwork/test/util"
)

func setupServices(t *testing.T) (*services.RequestService, *services.MessageService) {
	client, _ := util.SetupTestDatabase(t)
	messages := services.NewMessageService(client)
	return services.NewRequestService(client, messages), messages
}

func chatRequest() models.CreateRequestRequest {
	return models.CreateRequestRequest{
		RequestID:     models.NewRequestID(),
		Origin:        request.OriginChat,
		Repository:    "acme/api",
		Title:         "Fix login crash",
		Description:   "Fix the crash when logging in with an expired token",
		AgentKind:     "runner",
		ChatUserID:    "U123",
		ChatChannel:   "C456",
		ChatThreadKey: "1700000000.000100",
	}
}

func forgeRequest(issueNumber int) models.CreateRequestRequest {
	return models.CreateRequestRequest{
		RequestID:   models.NewRequestID(),
		Origin:      request.OriginForgeIssue,
		Repository:  "acme/api",
		Title:       "Add rate limiting",
		Description: "Add rate limiting to the public API",
		AgentKind:   "runner",
		IssueID:     "9001",
		IssueNumber: issueNumber,
		IssueURL:    "https://forge.example.com/acme/api/issues/42",
	}
}

func TestRequestService_CreateAndFind(t *testing.T) {
	svc, _ := setupServices(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, chatRequest())
	require.NoError(t, err)
	assert.Equal(t, request.StatusPending, created.Status)

	found, err := svc.FindByRequestID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "acme/api", found.Repository)

	_, err = svc.FindByRequestID(ctx, "req-missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestRequestService_CreateValidation(t *testing.T) {
	svc, _ := setupServices(t)
	ctx := context.Background()

	missing := chatRequest()
	missing.Description = ""
	_, err := svc.Create(ctx, missing)
	assert.True(t, services.IsValidationError(err))

	noIssue := forgeRequest(0)
	_, err = svc.Create(ctx, noIssue)
	assert.True(t, services.IsValidationError(err))
}

func TestRequestService_ForgeIssueUniqueness(t *testing.T) {
	svc, _ := setupServices(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, forgeRequest(42))
	require.NoError(t, err)

	_, err = svc.Create(ctx, forgeRequest(42))
	assert.ErrorIs(t, err, services.ErrAlreadyExists)

	found, err := svc.FindByForgeIssue(ctx, "acme/api", 42)
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	_, err = svc.FindByForgeIssue(ctx, "acme/api", 99)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestRequestService_UpdateStatus_LogsTransition(t *testing.T) {
	svc, messages := setupServices(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, chatRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, created.ID, request.StatusProcessing, nil)
	require.NoError(t, err)
	assert.Equal(t, request.StatusProcessing, updated.Status)

	thread, err := messages.Thread(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, thread, 1)
	assert.Equal(t, message.TypeProcessingStarted, thread[0].Type)
	assert.Equal(t, "pending", thread[0].Metadata[models.MetaFromStatus])
	assert.Equal(t, "processing", thread[0].Metadata[models.MetaToStatus])
}

func TestRequestService_UpdateStatus_RejectsIllegalTransition(t *testing.T) {
	svc, messages := setupServices(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, chatRequest())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, created.ID, request.StatusCompleted, nil)
	var transErr *services.InvalidTransitionError
	require.ErrorAs(t, err, &transErr)
	assert.Equal(t, "pending", transErr.From)
	assert.Equal(t, "completed", transErr.To)

	// Nothing written: status unchanged, no log entry.
	row, err := svc.FindByRequestID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusPending, row.Status)

	thread, err := messages.Thread(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, thread)
}

func TestRequestService_UpdateStatus_NoOpWritesNothing(t *testing.T) {
	svc, messages := setupServices(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, chatRequest())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, created.ID, request.StatusPending, nil)
	require.NoError(t, err)

	thread, err := messages.Thread(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, thread)
}

func TestRequestService_UpdateStatus_PatchEnrichesLogEntry(t *testing.T) {
	svc, messages := setupServices(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, chatRequest())
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, created.ID, request.StatusProcessing, nil)
	require.NoError(t, err)

	reason := "agent unavailable"
	_, err = svc.UpdateStatus(ctx, created.ID, request.StatusError, &models.StatusPatch{
		ErrorMessage: &reason,
		LogContent:   reason,
	})
	require.NoError(t, err)

	row, err := svc.FindByRequestID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, row.ErrorMessage)
	assert.Equal(t, reason, *row.ErrorMessage)

	thread, err := messages.Thread(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, thread, 2)
	assert.Equal(t, message.TypeError, thread[1].Type)
	assert.Equal(t, reason, thread[1].Content)
}

func TestRequestService_UpdateStatus_PatchOverridesLogType(t *testing.T) {
	svc, messages := setupServices(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, chatRequest())
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, created.ID, request.StatusProcessing, nil)
	require.NoError(t, err)

	// A follow-up turn lands on pr_created again but must log pr_updated,
	// keeping the thread's single pr_created entry unique.
	_, err = svc.UpdateStatus(ctx, created.ID, request.StatusPrCreated, &models.StatusPatch{
		LogContent: "Pull request updated: https://forge.example.com/pulls/11",
		LogType:    message.TypePrUpdated,
	})
	require.NoError(t, err)

	thread, err := messages.Thread(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, thread, 2)
	assert.Equal(t, message.TypePrUpdated, thread[1].Type)
	assert.Contains(t, thread[1].Content, "Pull request updated")
}

func TestRequestService_ChatThreadCorrelation(t *testing.T) {
	svc, _ := setupServices(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, chatRequest())
	require.NoError(t, err)

	active, err := svc.FindActiveInChatThread(ctx, "C456", "1700000000.000100")
	require.NoError(t, err)
	assert.Equal(t, created.ID, active.ID)

	// A request parked on a PR is no longer active but still absorbs
	// follow-ups.
	_, err = svc.UpdateStatus(ctx, created.ID, request.StatusProcessing, nil)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, created.ID, request.StatusPrCreated, nil)
	require.NoError(t, err)

	_, err = svc.FindActiveInChatThread(ctx, "C456", "1700000000.000100")
	assert.ErrorIs(t, err, services.ErrNotFound)

	target, err := svc.FindFollowUpTargetInChatThread(ctx, "C456", "1700000000.000100")
	require.NoError(t, err)
	assert.Equal(t, created.ID, target.ID)
}

func TestRequestService_List(t *testing.T) {
	svc, _ := setupServices(t)
	ctx := context.Background()

	chatReq, err := svc.Create(ctx, chatRequest())
	require.NoError(t, err)
	_, err = svc.Create(ctx, forgeRequest(7))
	require.NoError(t, err)

	all, err := svc.List(ctx, models.RequestFilters{})
	require.NoError(t, err)
	assert.Equal(t, 2, all.TotalCount)

	chats, err := svc.List(ctx, models.RequestFilters{Origin: "chat"})
	require.NoError(t, err)
	require.Len(t, chats.Requests, 1)
	assert.Equal(t, chatReq.ID, chats.Requests[0].ID)

	pending, err := svc.List(ctx, models.RequestFilters{Status: "pending", Limit: 1})
	require.NoError(t, err)
	assert.Len(t, pending.Requests, 1)
	assert.Equal(t, 2, pending.TotalCount)
}

func TestRequestService_SetPullRequest_WriteOnce(t *testing.T) {
	svc, _ := setupServices(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, chatRequest())
	require.NoError(t, err)

	updated, err := svc.SetPullRequest(ctx, created.ID, "https://forge.example.com/acme/api/pull/5", 5, "patchwork/fix-login")
	require.NoError(t, err)
	require.NotNil(t, updated.PrURL)

	// Same values are idempotent.
	_, err = svc.SetPullRequest(ctx, created.ID, "https://forge.example.com/acme/api/pull/5", 5, "patchwork/fix-login")
	require.NoError(t, err)

	// Different values hit the write-once guard.
	_, err = svc.SetPullRequest(ctx, created.ID, "https://forge.example.com/acme/api/pull/6", 6, "patchwork/other")
	assert.ErrorIs(t, err, services.ErrImmutableField)
}

func TestRequestService_RetryAndSession(t *testing.T) {
	svc, _ := setupServices(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, chatRequest())
	require.NoError(t, err)

	bumped, err := svc.IncrementRetry(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, bumped.RetryCount)

	require.NoError(t, svc.SetLatestSessionID(ctx, created.ID, "sess-abc"))
	row, err := svc.FindByRequestID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, row.LatestSessionID)
	assert.Equal(t, "sess-abc", *row.LatestSessionID)

	err = svc.SetLatestSessionID(ctx, "req-missing", "sess-abc")
	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestRequestService_SyncAggregates(t *testing.T) {
	svc, messages := setupServices(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, chatRequest())
	require.NoError(t, err)

	for _, cost := range []int{120, 80} {
		_, err = messages.Append(ctx, models.AppendMessageRequest{
			RequestID: created.ID,
			Type:      message.TypeAgentSummary,
			Source:    message.SourceSystem,
			Content:   "turn summary",
			Metadata: map[string]interface{}{
				models.MetaCostCents:  cost,
				models.MetaDurationMs: 1000,
			},
		})
		require.NoError(t, err)
	}

	row, err := svc.SyncAggregates(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 200, row.CostCents)
	assert.Equal(t, 2000, row.DurationMs)
}
