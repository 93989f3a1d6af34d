package services

import (
	"context"
	"fmt"
	"time"

	"github.com/patchwork-dev/patchwork/ent"
	"github.com/patchwork-dev/patchwork/ent/message"
	"github.com/patchwork-dev/patchwork/ent/request"
	"github.com/patchwork-dev/patchwork/pkg/models"
)

// RequestService owns the Request store and the status state machine.
// Request rows are created by intake handlers and mutated only through this
// service; every accepted transition appends a log entry with from/to status.
type RequestService struct {
	client *ent.Client
	log    *MessageService
}

// NewRequestService creates a new RequestService.
func NewRequestService(client *ent.Client, log *MessageService) *RequestService {
	return &RequestService{client: client, log: log}
}

// Create persists a new request row. For forge-issue origin, creation fails
// with ErrAlreadyExists when a row for the same (repository, issue_number)
// exists — the partial unique index backs this under concurrency.
func (s *RequestService) Create(ctx context.Context, req models.CreateRequestRequest) (*ent.Request, error) {
	if req.RequestID == "" {
		return nil, NewValidationError("request_id", "required")
	}
	if req.Repository == "" {
		return nil, NewValidationError("repository", "required")
	}
	if req.Description == "" {
		return nil, NewValidationError("description", "required")
	}
	if req.AgentKind == "" {
		return nil, NewValidationError("agent_kind", "required")
	}
	if req.Origin == request.OriginForgeIssue && req.IssueNumber == 0 {
		return nil, NewValidationError("issue_number", "required for forge_issue origin")
	}

	create := s.client.Request.Create().
		SetID(req.RequestID).
		SetOrigin(req.Origin).
		SetRepository(req.Repository).
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetAgentKind(req.AgentKind)

	if req.RequestType != "" {
		create = create.SetRequestType(request.RequestType(req.RequestType))
	}
	if req.Provider != "" {
		create = create.SetProvider(req.Provider)
	}
	if req.Model != "" {
		create = create.SetModel(req.Model)
	}
	if req.ChatUserID != "" {
		create = create.SetChatUserID(req.ChatUserID)
	}
	if req.ChatChannel != "" {
		create = create.SetChatChannel(req.ChatChannel)
	}
	if req.ChatThreadKey != "" {
		create = create.SetChatThreadKey(req.ChatThreadKey)
	}
	if req.IssueID != "" {
		create = create.SetIssueID(req.IssueID)
	}
	if req.IssueNumber != 0 {
		create = create.SetIssueNumber(req.IssueNumber)
	}
	if req.IssueURL != "" {
		create = create.SetIssueURL(req.IssueURL)
	}

	row, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("request for %s#%d: %w", req.Repository, req.IssueNumber, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return row, nil
}

// FindByRequestID returns the request row, or ErrNotFound.
func (s *RequestService) FindByRequestID(ctx context.Context, requestID string) (*ent.Request, error) {
	row, err := s.client.Request.Get(ctx, requestID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	return row, nil
}

// FindByForgeIssue returns the request pinned to (repository, issue number),
// or ErrNotFound.
func (s *RequestService) FindByForgeIssue(ctx context.Context, repository string, issueNumber int) (*ent.Request, error) {
	row, err := s.client.Request.Query().
		Where(
			request.OriginEQ(request.OriginForgeIssue),
			request.RepositoryEQ(repository),
			request.IssueNumberEQ(issueNumber),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query request by forge issue: %w", err)
	}
	return row, nil
}

// FindActiveInChatThread returns the most-recently-created request in the
// thread whose status is still active, or ErrNotFound when the thread has no
// live request.
func (s *RequestService) FindActiveInChatThread(ctx context.Context, channel, threadKey string) (*ent.Request, error) {
	row, err := s.client.Request.Query().
		Where(
			request.ChatChannelEQ(channel),
			request.ChatThreadKeyEQ(threadKey),
			request.StatusIn(
				request.StatusPending,
				request.StatusIssueCreated,
				request.StatusProcessing,
				request.StatusAwaitingClarification,
			),
		).
		Order(ent.Desc(request.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query active request in thread: %w", err)
	}
	return row, nil
}

// FindFollowUpTargetInChatThread returns the most recent request in the
// thread that can still absorb a follow-up: any active status, or pr_created
// (follow-ups push to the existing PR branch). ErrNotFound otherwise.
func (s *RequestService) FindFollowUpTargetInChatThread(ctx context.Context, channel, threadKey string) (*ent.Request, error) {
	row, err := s.client.Request.Query().
		Where(
			request.ChatChannelEQ(channel),
			request.ChatThreadKeyEQ(threadKey),
			request.StatusIn(
				request.StatusPending,
				request.StatusIssueCreated,
				request.StatusProcessing,
				request.StatusAwaitingClarification,
				request.StatusPrCreated,
			),
		).
		Order(ent.Desc(request.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query follow-up target in thread: %w", err)
	}
	return row, nil
}

// List returns requests matching the filters, newest first.
func (s *RequestService) List(ctx context.Context, filters models.RequestFilters) (*models.RequestListResponse, error) {
	q := s.client.Request.Query()
	if filters.Status != "" {
		q = q.Where(request.StatusEQ(request.Status(filters.Status)))
	}
	if filters.Repository != "" {
		q = q.Where(request.RepositoryEQ(filters.Repository))
	}
	if filters.Origin != "" {
		q = q.Where(request.OriginEQ(request.Origin(filters.Origin)))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count requests: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	rows, err := q.
		Order(ent.Desc(request.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	return &models.RequestListResponse{
		Requests:   rows,
		TotalCount: total,
		Limit:      limit,
		Offset:     filters.Offset,
	}, nil
}

// UpdateStatus validates the transition against the state machine, writes the
// new status (plus the optional patch), and appends the transition log entry.
// Rejected transitions return *InvalidTransitionError and write nothing.
func (s *RequestService) UpdateStatus(ctx context.Context, requestID string, newStatus request.Status, patch *models.StatusPatch) (*ent.Request, error) {
	row, err := s.FindByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if !CanTransition(row.Status, newStatus) {
		return nil, &InvalidTransitionError{
			RequestID: requestID,
			From:      string(row.Status),
			To:        string(newStatus),
		}
	}
	if row.Status == newStatus {
		return row, nil
	}

	update := s.client.Request.UpdateOneID(requestID).
		SetStatus(newStatus).
		SetUpdatedAt(time.Now())

	if patch != nil {
		if patch.ErrorMessage != nil {
			update = update.SetErrorMessage(*patch.ErrorMessage)
		}
		if patch.CostCents != nil {
			update = update.SetCostCents(*patch.CostCents)
		}
		if patch.DurationMs != nil {
			update = update.SetDurationMs(*patch.DurationMs)
		}
		if patch.ProcessedAt != nil {
			update = update.SetProcessedAt(*patch.ProcessedAt)
		}
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update request status: %w", err)
	}

	// Transition log entry. Storage errors surface — the log is the source
	// of truth for user-visible history.
	meta := map[string]interface{}{
		models.MetaFromStatus: string(row.Status),
		models.MetaToStatus:   string(newStatus),
	}
	content := fmt.Sprintf("Status changed: %s -> %s", row.Status, newStatus)
	logType := transitionMessageType(newStatus)
	if patch != nil {
		for k, v := range patch.Meta {
			meta[k] = v
		}
		if patch.LogContent != "" {
			content = patch.LogContent
		}
		if patch.LogType != "" {
			logType = patch.LogType
		}
	}
	if _, err := s.log.Append(ctx, models.AppendMessageRequest{
		RequestID: requestID,
		Type:      logType,
		Source:    message.SourceSystem,
		Content:   content,
		Metadata:  meta,
	}); err != nil {
		return nil, fmt.Errorf("failed to log status transition: %w", err)
	}

	return updated, nil
}

// SetPullRequest records PR correlation. Each field is write-once: attempting
// to change an already-set value fails with ErrImmutableField.
func (s *RequestService) SetPullRequest(ctx context.Context, requestID, url string, number int, branch string) (*ent.Request, error) {
	row, err := s.FindByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if row.PrBranchName != nil && *row.PrBranchName != "" && *row.PrBranchName != branch {
		return nil, fmt.Errorf("pr_branch_name already set to %q: %w", *row.PrBranchName, ErrImmutableField)
	}
	if row.PrURL != nil && *row.PrURL != "" && *row.PrURL != url {
		return nil, fmt.Errorf("pr_url already set: %w", ErrImmutableField)
	}
	if row.PrNumber != nil && *row.PrNumber != 0 && *row.PrNumber != number {
		return nil, fmt.Errorf("pr_number already set: %w", ErrImmutableField)
	}

	updated, err := s.client.Request.UpdateOneID(requestID).
		SetPrURL(url).
		SetPrNumber(number).
		SetPrBranchName(branch).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to set pull request: %w", err)
	}
	return updated, nil
}

// IncrementRetry bumps the retry counter.
func (s *RequestService) IncrementRetry(ctx context.Context, requestID string) (*ent.Request, error) {
	updated, err := s.client.Request.UpdateOneID(requestID).
		AddRetryCount(1).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to increment retry count: %w", err)
	}
	return updated, nil
}

// SetLatestSessionID records the agent session the next follow-up resumes from.
func (s *RequestService) SetLatestSessionID(ctx context.Context, requestID, sessionID string) error {
	err := s.client.Request.UpdateOneID(requestID).
		SetLatestSessionID(sessionID).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set latest session id: %w", err)
	}
	return nil
}

// SyncAggregates recomputes the denormalized cost/duration columns from the
// conversation log so they match the authoritative Thread sum.
func (s *RequestService) SyncAggregates(ctx context.Context, requestID string) (*ent.Request, error) {
	sum, err := s.log.TotalCostAndDuration(ctx, requestID)
	if err != nil {
		return nil, err
	}
	updated, err := s.client.Request.UpdateOneID(requestID).
		SetCostCents(sum.CostCents).
		SetDurationMs(sum.DurationMs).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sync aggregates: %w", err)
	}
	return updated, nil
}

// transitionMessageType maps a target status to the lifecycle message type
// logged for the transition.
func transitionMessageType(to request.Status) message.Type {
	switch to {
	case request.StatusProcessing:
		return message.TypeProcessingStarted
	case request.StatusAwaitingClarification:
		return message.TypeClarificationAsk
	case request.StatusPrCreated:
		return message.TypePrCreated
	case request.StatusError:
		return message.TypeError
	case request.StatusCancelled:
		return message.TypeCancelled
	case request.StatusPending:
		return message.TypeRetry
	default:
		return message.TypeProcessingUpdate
	}
}
