package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/patchwork-dev/patchwork/ent/request"
)

func TestCanTransition_LegalEdges(t *testing.T) {
	legal := []struct{ from, to request.Status }{
		{request.StatusPending, request.StatusProcessing},
		{request.StatusPending, request.StatusIssueCreated},
		{request.StatusPending, request.StatusCancelled},
		{request.StatusIssueCreated, request.StatusProcessing},
		{request.StatusProcessing, request.StatusAwaitingClarification},
		{request.StatusProcessing, request.StatusPrCreated},
		{request.StatusProcessing, request.StatusCompleted},
		{request.StatusProcessing, request.StatusError},
		{request.StatusAwaitingClarification, request.StatusProcessing},
		{request.StatusPrCreated, request.StatusProcessing},
		{request.StatusPrCreated, request.StatusCompleted},
		{request.StatusError, request.StatusPending},
		{request.StatusCancelled, request.StatusPending},
	}
	for _, tc := range legal {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s should be legal", tc.from, tc.to)
	}
}

func TestCanTransition_IllegalEdges(t *testing.T) {
	illegal := []struct{ from, to request.Status }{
		{request.StatusPending, request.StatusPrCreated},
		{request.StatusPending, request.StatusCompleted},
		{request.StatusCompleted, request.StatusPending},
		{request.StatusCompleted, request.StatusProcessing},
		{request.StatusAwaitingClarification, request.StatusPrCreated},
		{request.StatusError, request.StatusProcessing},
		{request.StatusCancelled, request.StatusProcessing},
		{request.StatusIssueCreated, request.StatusPrCreated},
	}
	for _, tc := range illegal {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s should be rejected", tc.from, tc.to)
	}
}

func TestCanTransition_NoOpIsLegal(t *testing.T) {
	assert.True(t, CanTransition(request.StatusProcessing, request.StatusProcessing))
	assert.True(t, CanTransition(request.StatusCompleted, request.StatusCompleted))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(request.StatusCompleted))
	assert.True(t, IsTerminal(request.StatusError))
	assert.True(t, IsTerminal(request.StatusCancelled))
	assert.False(t, IsTerminal(request.StatusPending))
	assert.False(t, IsTerminal(request.StatusAwaitingClarification))
	assert.False(t, IsTerminal(request.StatusPrCreated))
}

func TestIsActive(t *testing.T) {
	assert.True(t, IsActive(request.StatusPending))
	assert.True(t, IsActive(request.StatusIssueCreated))
	assert.True(t, IsActive(request.StatusProcessing))
	assert.True(t, IsActive(request.StatusAwaitingClarification))
	assert.False(t, IsActive(request.StatusPrCreated))
	assert.False(t, IsActive(request.StatusCompleted))
	assert.False(t, IsActive(request.StatusError))
}
