package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patchwork-dev/patchwork/ent/message"
	"github.com/patchwork-dev/patchwork/pkg/models"
	"github.com/patchwork-dev/patchwork/pkg/services"
	"github.com/patchwork-dev/patchwork/test/util"
)

func setupMessages(t *testing.T) *services.MessageService {
	client, _ := util.SetupTestDatabase(t)
	return services.NewMessageService(client)
}

func appendN(t *testing.T, svc *services.MessageService, requestID string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := svc.Append(context.Background(), models.AppendMessageRequest{
			RequestID: requestID,
			Type:      message.TypeProcessingUpdate,
			Source:    message.SourceSystem,
			Content:   fmt.Sprintf("update %d", i),
		})
		require.NoError(t, err)
	}
}

func TestMessageService_AppendValidation(t *testing.T) {
	svc := setupMessages(t)
	ctx := context.Background()

	_, err := svc.Append(ctx, models.AppendMessageRequest{
		Type:   message.TypeInitialRequest,
		Source: message.SourceChat,
	})
	assert.True(t, services.IsValidationError(err))

	_, err = svc.Append(ctx, models.AppendMessageRequest{
		RequestID: "req-1",
		Source:    message.SourceChat,
	})
	assert.True(t, services.IsValidationError(err))
}

func TestMessageService_ThreadOrder(t *testing.T) {
	svc := setupMessages(t)
	ctx := context.Background()

	appendN(t, svc, "req-1", 5)
	appendN(t, svc, "req-2", 2)

	thread, err := svc.Thread(ctx, "req-1")
	require.NoError(t, err)
	require.Len(t, thread, 5)
	for i, row := range thread {
		assert.Equal(t, fmt.Sprintf("update %d", i), row.Content)
	}
}

func TestMessageService_ThreadPage(t *testing.T) {
	svc := setupMessages(t)
	ctx := context.Background()

	appendN(t, svc, "req-1", 10)

	// Newest page, then walk backwards from its oldest entry.
	page, err := svc.ThreadPage(ctx, "req-1", "", 4)
	require.NoError(t, err)
	require.Len(t, page, 4)
	assert.Equal(t, "update 6", page[0].Content)
	assert.Equal(t, "update 9", page[3].Content)

	older, err := svc.ThreadPage(ctx, "req-1", page[0].ID, 4)
	require.NoError(t, err)
	require.Len(t, older, 4)
	assert.Equal(t, "update 2", older[0].Content)
	assert.Equal(t, "update 5", older[3].Content)

	_, err = svc.ThreadPage(ctx, "req-1", "missing-pivot", 4)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestMessageService_LastN(t *testing.T) {
	svc := setupMessages(t)
	ctx := context.Background()

	appendN(t, svc, "req-1", 6)

	rows, err := svc.LastN(ctx, "req-1", 3)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "update 3", rows[0].Content)
	assert.Equal(t, "update 5", rows[2].Content)
}

func TestMessageService_TotalCostAndDuration(t *testing.T) {
	svc := setupMessages(t)
	ctx := context.Background()

	costs := []int{150, 50, 25}
	for _, cost := range costs {
		_, err := svc.Append(ctx, models.AppendMessageRequest{
			RequestID: "req-1",
			Type:      message.TypeAgentSummary,
			Source:    message.SourceSystem,
			Content:   "summary",
			Metadata: map[string]interface{}{
				models.MetaCostCents:  cost,
				models.MetaDurationMs: 500,
			},
		})
		require.NoError(t, err)
	}
	// A message without cost metadata contributes nothing.
	appendN(t, svc, "req-1", 1)

	sum, err := svc.TotalCostAndDuration(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, 225, sum.CostCents)
	assert.Equal(t, 1500, sum.DurationMs)
}

func TestMessageService_CountByType(t *testing.T) {
	svc := setupMessages(t)
	ctx := context.Background()

	appendN(t, svc, "req-1", 3)
	_, err := svc.Append(ctx, models.AppendMessageRequest{
		RequestID: "req-1",
		Type:      message.TypeClarificationAsk,
		Source:    message.SourceSystem,
		Content:   "what branch?",
	})
	require.NoError(t, err)

	n, err := svc.CountByType(ctx, "req-1", message.TypeClarificationAsk)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = svc.CountByType(ctx, "req-1", message.TypeProcessingUpdate)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
