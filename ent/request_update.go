// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/patchwork-dev/patchwork/ent/agentsession"
	"github.com/patchwork-dev/patchwork/ent/message"
	"github.com/patchwork-dev/patchwork/ent/predicate"
	"github.com/patchwork-dev/patchwork/ent/request"
)

// RequestUpdate is the builder for updating Request entities.
type RequestUpdate struct {
	config
	hooks    []Hook
	mutation *RequestMutation
}

// Where appends a list predicates to the RequestUpdate builder.
func (_u *RequestUpdate) Where(ps ...predicate.Request) *RequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *RequestUpdate) SetOrigin(v request.Origin) *RequestUpdate {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableOrigin(v *request.Origin) *RequestUpdate {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// SetRepository sets the "repository" field.
func (_u *RequestUpdate) SetRepository(v string) *RequestUpdate {
	_u.mutation.SetRepository(v)
	return _u
}

// SetNillableRepository sets the "repository" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableRepository(v *string) *RequestUpdate {
	if v != nil {
		_u.SetRepository(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *RequestUpdate) SetTitle(v string) *RequestUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableTitle(v *string) *RequestUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RequestUpdate) SetDescription(v string) *RequestUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableDescription(v *string) *RequestUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetRequestType sets the "request_type" field.
func (_u *RequestUpdate) SetRequestType(v request.RequestType) *RequestUpdate {
	_u.mutation.SetRequestType(v)
	return _u
}

// SetNillableRequestType sets the "request_type" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableRequestType(v *request.RequestType) *RequestUpdate {
	if v != nil {
		_u.SetRequestType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RequestUpdate) SetStatus(v request.Status) *RequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableStatus(v *request.Status) *RequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAgentKind sets the "agent_kind" field.
func (_u *RequestUpdate) SetAgentKind(v string) *RequestUpdate {
	_u.mutation.SetAgentKind(v)
	return _u
}

// SetNillableAgentKind sets the "agent_kind" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableAgentKind(v *string) *RequestUpdate {
	if v != nil {
		_u.SetAgentKind(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *RequestUpdate) SetProvider(v string) *RequestUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableProvider(v *string) *RequestUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *RequestUpdate) ClearProvider() *RequestUpdate {
	_u.mutation.ClearProvider()
	return _u
}

// SetModel sets the "model" field.
func (_u *RequestUpdate) SetModel(v string) *RequestUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableModel(v *string) *RequestUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *RequestUpdate) ClearModel() *RequestUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetChatUserID sets the "chat_user_id" field.
func (_u *RequestUpdate) SetChatUserID(v string) *RequestUpdate {
	_u.mutation.SetChatUserID(v)
	return _u
}

// SetNillableChatUserID sets the "chat_user_id" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableChatUserID(v *string) *RequestUpdate {
	if v != nil {
		_u.SetChatUserID(*v)
	}
	return _u
}

// ClearChatUserID clears the value of the "chat_user_id" field.
func (_u *RequestUpdate) ClearChatUserID() *RequestUpdate {
	_u.mutation.ClearChatUserID()
	return _u
}

// SetChatChannel sets the "chat_channel" field.
func (_u *RequestUpdate) SetChatChannel(v string) *RequestUpdate {
	_u.mutation.SetChatChannel(v)
	return _u
}

// SetNillableChatChannel sets the "chat_channel" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableChatChannel(v *string) *RequestUpdate {
	if v != nil {
		_u.SetChatChannel(*v)
	}
	return _u
}

// ClearChatChannel clears the value of the "chat_channel" field.
func (_u *RequestUpdate) ClearChatChannel() *RequestUpdate {
	_u.mutation.ClearChatChannel()
	return _u
}

// SetChatThreadKey sets the "chat_thread_key" field.
func (_u *RequestUpdate) SetChatThreadKey(v string) *RequestUpdate {
	_u.mutation.SetChatThreadKey(v)
	return _u
}

// SetNillableChatThreadKey sets the "chat_thread_key" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableChatThreadKey(v *string) *RequestUpdate {
	if v != nil {
		_u.SetChatThreadKey(*v)
	}
	return _u
}

// ClearChatThreadKey clears the value of the "chat_thread_key" field.
func (_u *RequestUpdate) ClearChatThreadKey() *RequestUpdate {
	_u.mutation.ClearChatThreadKey()
	return _u
}

// SetIssueID sets the "issue_id" field.
func (_u *RequestUpdate) SetIssueID(v string) *RequestUpdate {
	_u.mutation.SetIssueID(v)
	return _u
}

// SetNillableIssueID sets the "issue_id" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableIssueID(v *string) *RequestUpdate {
	if v != nil {
		_u.SetIssueID(*v)
	}
	return _u
}

// ClearIssueID clears the value of the "issue_id" field.
func (_u *RequestUpdate) ClearIssueID() *RequestUpdate {
	_u.mutation.ClearIssueID()
	return _u
}

// SetIssueNumber sets the "issue_number" field.
func (_u *RequestUpdate) SetIssueNumber(v int) *RequestUpdate {
	_u.mutation.ResetIssueNumber()
	_u.mutation.SetIssueNumber(v)
	return _u
}

// SetNillableIssueNumber sets the "issue_number" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableIssueNumber(v *int) *RequestUpdate {
	if v != nil {
		_u.SetIssueNumber(*v)
	}
	return _u
}

// AddIssueNumber adds value to the "issue_number" field.
func (_u *RequestUpdate) AddIssueNumber(v int) *RequestUpdate {
	_u.mutation.AddIssueNumber(v)
	return _u
}

// ClearIssueNumber clears the value of the "issue_number" field.
func (_u *RequestUpdate) ClearIssueNumber() *RequestUpdate {
	_u.mutation.ClearIssueNumber()
	return _u
}

// SetIssueURL sets the "issue_url" field.
func (_u *RequestUpdate) SetIssueURL(v string) *RequestUpdate {
	_u.mutation.SetIssueURL(v)
	return _u
}

// SetNillableIssueURL sets the "issue_url" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableIssueURL(v *string) *RequestUpdate {
	if v != nil {
		_u.SetIssueURL(*v)
	}
	return _u
}

// ClearIssueURL clears the value of the "issue_url" field.
func (_u *RequestUpdate) ClearIssueURL() *RequestUpdate {
	_u.mutation.ClearIssueURL()
	return _u
}

// SetPrURL sets the "pr_url" field.
func (_u *RequestUpdate) SetPrURL(v string) *RequestUpdate {
	_u.mutation.SetPrURL(v)
	return _u
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_u *RequestUpdate) SetNillablePrURL(v *string) *RequestUpdate {
	if v != nil {
		_u.SetPrURL(*v)
	}
	return _u
}

// ClearPrURL clears the value of the "pr_url" field.
func (_u *RequestUpdate) ClearPrURL() *RequestUpdate {
	_u.mutation.ClearPrURL()
	return _u
}

// SetPrNumber sets the "pr_number" field.
func (_u *RequestUpdate) SetPrNumber(v int) *RequestUpdate {
	_u.mutation.ResetPrNumber()
	_u.mutation.SetPrNumber(v)
	return _u
}

// SetNillablePrNumber sets the "pr_number" field if the given value is not nil.
func (_u *RequestUpdate) SetNillablePrNumber(v *int) *RequestUpdate {
	if v != nil {
		_u.SetPrNumber(*v)
	}
	return _u
}

// AddPrNumber adds value to the "pr_number" field.
func (_u *RequestUpdate) AddPrNumber(v int) *RequestUpdate {
	_u.mutation.AddPrNumber(v)
	return _u
}

// ClearPrNumber clears the value of the "pr_number" field.
func (_u *RequestUpdate) ClearPrNumber() *RequestUpdate {
	_u.mutation.ClearPrNumber()
	return _u
}

// SetPrBranchName sets the "pr_branch_name" field.
func (_u *RequestUpdate) SetPrBranchName(v string) *RequestUpdate {
	_u.mutation.SetPrBranchName(v)
	return _u
}

// SetNillablePrBranchName sets the "pr_branch_name" field if the given value is not nil.
func (_u *RequestUpdate) SetNillablePrBranchName(v *string) *RequestUpdate {
	if v != nil {
		_u.SetPrBranchName(*v)
	}
	return _u
}

// ClearPrBranchName clears the value of the "pr_branch_name" field.
func (_u *RequestUpdate) ClearPrBranchName() *RequestUpdate {
	_u.mutation.ClearPrBranchName()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *RequestUpdate) SetRetryCount(v int) *RequestUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableRetryCount(v *int) *RequestUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *RequestUpdate) AddRetryCount(v int) *RequestUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetCostCents sets the "cost_cents" field.
func (_u *RequestUpdate) SetCostCents(v int) *RequestUpdate {
	_u.mutation.ResetCostCents()
	_u.mutation.SetCostCents(v)
	return _u
}

// SetNillableCostCents sets the "cost_cents" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableCostCents(v *int) *RequestUpdate {
	if v != nil {
		_u.SetCostCents(*v)
	}
	return _u
}

// AddCostCents adds value to the "cost_cents" field.
func (_u *RequestUpdate) AddCostCents(v int) *RequestUpdate {
	_u.mutation.AddCostCents(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *RequestUpdate) SetDurationMs(v int) *RequestUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableDurationMs(v *int) *RequestUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *RequestUpdate) AddDurationMs(v int) *RequestUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetLatestSessionID sets the "latest_session_id" field.
func (_u *RequestUpdate) SetLatestSessionID(v string) *RequestUpdate {
	_u.mutation.SetLatestSessionID(v)
	return _u
}

// SetNillableLatestSessionID sets the "latest_session_id" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableLatestSessionID(v *string) *RequestUpdate {
	if v != nil {
		_u.SetLatestSessionID(*v)
	}
	return _u
}

// ClearLatestSessionID clears the value of the "latest_session_id" field.
func (_u *RequestUpdate) ClearLatestSessionID() *RequestUpdate {
	_u.mutation.ClearLatestSessionID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RequestUpdate) SetErrorMessage(v string) *RequestUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableErrorMessage(v *string) *RequestUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RequestUpdate) ClearErrorMessage() *RequestUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RequestUpdate) SetUpdatedAt(v time.Time) *RequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableUpdatedAt(v *time.Time) *RequestUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *RequestUpdate) SetProcessedAt(v time.Time) *RequestUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableProcessedAt(v *time.Time) *RequestUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *RequestUpdate) ClearProcessedAt() *RequestUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *RequestUpdate) AddMessageIDs(ids ...string) *RequestUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *RequestUpdate) AddMessages(v ...*Message) *RequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddAgentSessionIDs adds the "agent_sessions" edge to the AgentSession entity by IDs.
func (_u *RequestUpdate) AddAgentSessionIDs(ids ...string) *RequestUpdate {
	_u.mutation.AddAgentSessionIDs(ids...)
	return _u
}

// AddAgentSessions adds the "agent_sessions" edges to the AgentSession entity.
func (_u *RequestUpdate) AddAgentSessions(v ...*AgentSession) *RequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentSessionIDs(ids...)
}

// Mutation returns the RequestMutation object of the builder.
func (_u *RequestUpdate) Mutation() *RequestMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *RequestUpdate) ClearMessages() *RequestUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *RequestUpdate) RemoveMessageIDs(ids ...string) *RequestUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *RequestUpdate) RemoveMessages(v ...*Message) *RequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearAgentSessions clears all "agent_sessions" edges to the AgentSession entity.
func (_u *RequestUpdate) ClearAgentSessions() *RequestUpdate {
	_u.mutation.ClearAgentSessions()
	return _u
}

// RemoveAgentSessionIDs removes the "agent_sessions" edge to AgentSession entities by IDs.
func (_u *RequestUpdate) RemoveAgentSessionIDs(ids ...string) *RequestUpdate {
	_u.mutation.RemoveAgentSessionIDs(ids...)
	return _u
}

// RemoveAgentSessions removes "agent_sessions" edges to AgentSession entities.
func (_u *RequestUpdate) RemoveAgentSessions(v ...*AgentSession) *RequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentSessionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RequestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestUpdate) check() error {
	if v, ok := _u.mutation.Origin(); ok {
		if err := request.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "Request.origin": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequestType(); ok {
		if err := request.RequestTypeValidator(v); err != nil {
			return &ValidationError{Name: "request_type", err: fmt.Errorf(`ent: validator failed for field "Request.request_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := request.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Request.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(request.Table, request.Columns, sqlgraph.NewFieldSpec(request.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(request.FieldOrigin, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Repository(); ok {
		_spec.SetField(request.FieldRepository, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(request.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(request.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestType(); ok {
		_spec.SetField(request.FieldRequestType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(request.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentKind(); ok {
		_spec.SetField(request.FieldAgentKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(request.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(request.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(request.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(request.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.ChatUserID(); ok {
		_spec.SetField(request.FieldChatUserID, field.TypeString, value)
	}
	if _u.mutation.ChatUserIDCleared() {
		_spec.ClearField(request.FieldChatUserID, field.TypeString)
	}
	if value, ok := _u.mutation.ChatChannel(); ok {
		_spec.SetField(request.FieldChatChannel, field.TypeString, value)
	}
	if _u.mutation.ChatChannelCleared() {
		_spec.ClearField(request.FieldChatChannel, field.TypeString)
	}
	if value, ok := _u.mutation.ChatThreadKey(); ok {
		_spec.SetField(request.FieldChatThreadKey, field.TypeString, value)
	}
	if _u.mutation.ChatThreadKeyCleared() {
		_spec.ClearField(request.FieldChatThreadKey, field.TypeString)
	}
	if value, ok := _u.mutation.IssueID(); ok {
		_spec.SetField(request.FieldIssueID, field.TypeString, value)
	}
	if _u.mutation.IssueIDCleared() {
		_spec.ClearField(request.FieldIssueID, field.TypeString)
	}
	if value, ok := _u.mutation.IssueNumber(); ok {
		_spec.SetField(request.FieldIssueNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIssueNumber(); ok {
		_spec.AddField(request.FieldIssueNumber, field.TypeInt, value)
	}
	if _u.mutation.IssueNumberCleared() {
		_spec.ClearField(request.FieldIssueNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.IssueURL(); ok {
		_spec.SetField(request.FieldIssueURL, field.TypeString, value)
	}
	if _u.mutation.IssueURLCleared() {
		_spec.ClearField(request.FieldIssueURL, field.TypeString)
	}
	if value, ok := _u.mutation.PrURL(); ok {
		_spec.SetField(request.FieldPrURL, field.TypeString, value)
	}
	if _u.mutation.PrURLCleared() {
		_spec.ClearField(request.FieldPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.PrNumber(); ok {
		_spec.SetField(request.FieldPrNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrNumber(); ok {
		_spec.AddField(request.FieldPrNumber, field.TypeInt, value)
	}
	if _u.mutation.PrNumberCleared() {
		_spec.ClearField(request.FieldPrNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.PrBranchName(); ok {
		_spec.SetField(request.FieldPrBranchName, field.TypeString, value)
	}
	if _u.mutation.PrBranchNameCleared() {
		_spec.ClearField(request.FieldPrBranchName, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(request.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(request.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostCents(); ok {
		_spec.SetField(request.FieldCostCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCostCents(); ok {
		_spec.AddField(request.FieldCostCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(request.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(request.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatestSessionID(); ok {
		_spec.SetField(request.FieldLatestSessionID, field.TypeString, value)
	}
	if _u.mutation.LatestSessionIDCleared() {
		_spec.ClearField(request.FieldLatestSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(request.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(request.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(request.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(request.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(request.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.MessagesTable,
			Columns: []string{request.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.MessagesTable,
			Columns: []string{request.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.MessagesTable,
			Columns: []string{request.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentSessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.AgentSessionsTable,
			Columns: []string{request.AgentSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentSessionsIDs(); len(nodes) > 0 && !_u.mutation.AgentSessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.AgentSessionsTable,
			Columns: []string{request.AgentSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentSessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.AgentSessionsTable,
			Columns: []string{request.AgentSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{request.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RequestUpdateOne is the builder for updating a single Request entity.
type RequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RequestMutation
}

// SetOrigin sets the "origin" field.
func (_u *RequestUpdateOne) SetOrigin(v request.Origin) *RequestUpdateOne {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableOrigin(v *request.Origin) *RequestUpdateOne {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// SetRepository sets the "repository" field.
func (_u *RequestUpdateOne) SetRepository(v string) *RequestUpdateOne {
	_u.mutation.SetRepository(v)
	return _u
}

// SetNillableRepository sets the "repository" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableRepository(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetRepository(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *RequestUpdateOne) SetTitle(v string) *RequestUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableTitle(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RequestUpdateOne) SetDescription(v string) *RequestUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableDescription(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetRequestType sets the "request_type" field.
func (_u *RequestUpdateOne) SetRequestType(v request.RequestType) *RequestUpdateOne {
	_u.mutation.SetRequestType(v)
	return _u
}

// SetNillableRequestType sets the "request_type" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableRequestType(v *request.RequestType) *RequestUpdateOne {
	if v != nil {
		_u.SetRequestType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RequestUpdateOne) SetStatus(v request.Status) *RequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableStatus(v *request.Status) *RequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAgentKind sets the "agent_kind" field.
func (_u *RequestUpdateOne) SetAgentKind(v string) *RequestUpdateOne {
	_u.mutation.SetAgentKind(v)
	return _u
}

// SetNillableAgentKind sets the "agent_kind" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableAgentKind(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetAgentKind(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *RequestUpdateOne) SetProvider(v string) *RequestUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableProvider(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *RequestUpdateOne) ClearProvider() *RequestUpdateOne {
	_u.mutation.ClearProvider()
	return _u
}

// SetModel sets the "model" field.
func (_u *RequestUpdateOne) SetModel(v string) *RequestUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableModel(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *RequestUpdateOne) ClearModel() *RequestUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetChatUserID sets the "chat_user_id" field.
func (_u *RequestUpdateOne) SetChatUserID(v string) *RequestUpdateOne {
	_u.mutation.SetChatUserID(v)
	return _u
}

// SetNillableChatUserID sets the "chat_user_id" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableChatUserID(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetChatUserID(*v)
	}
	return _u
}

// ClearChatUserID clears the value of the "chat_user_id" field.
func (_u *RequestUpdateOne) ClearChatUserID() *RequestUpdateOne {
	_u.mutation.ClearChatUserID()
	return _u
}

// SetChatChannel sets the "chat_channel" field.
func (_u *RequestUpdateOne) SetChatChannel(v string) *RequestUpdateOne {
	_u.mutation.SetChatChannel(v)
	return _u
}

// SetNillableChatChannel sets the "chat_channel" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableChatChannel(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetChatChannel(*v)
	}
	return _u
}

// ClearChatChannel clears the value of the "chat_channel" field.
func (_u *RequestUpdateOne) ClearChatChannel() *RequestUpdateOne {
	_u.mutation.ClearChatChannel()
	return _u
}

// SetChatThreadKey sets the "chat_thread_key" field.
func (_u *RequestUpdateOne) SetChatThreadKey(v string) *RequestUpdateOne {
	_u.mutation.SetChatThreadKey(v)
	return _u
}

// SetNillableChatThreadKey sets the "chat_thread_key" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableChatThreadKey(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetChatThreadKey(*v)
	}
	return _u
}

// ClearChatThreadKey clears the value of the "chat_thread_key" field.
func (_u *RequestUpdateOne) ClearChatThreadKey() *RequestUpdateOne {
	_u.mutation.ClearChatThreadKey()
	return _u
}

// SetIssueID sets the "issue_id" field.
func (_u *RequestUpdateOne) SetIssueID(v string) *RequestUpdateOne {
	_u.mutation.SetIssueID(v)
	return _u
}

// SetNillableIssueID sets the "issue_id" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableIssueID(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetIssueID(*v)
	}
	return _u
}

// ClearIssueID clears the value of the "issue_id" field.
func (_u *RequestUpdateOne) ClearIssueID() *RequestUpdateOne {
	_u.mutation.ClearIssueID()
	return _u
}

// SetIssueNumber sets the "issue_number" field.
func (_u *RequestUpdateOne) SetIssueNumber(v int) *RequestUpdateOne {
	_u.mutation.ResetIssueNumber()
	_u.mutation.SetIssueNumber(v)
	return _u
}

// SetNillableIssueNumber sets the "issue_number" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableIssueNumber(v *int) *RequestUpdateOne {
	if v != nil {
		_u.SetIssueNumber(*v)
	}
	return _u
}

// AddIssueNumber adds value to the "issue_number" field.
func (_u *RequestUpdateOne) AddIssueNumber(v int) *RequestUpdateOne {
	_u.mutation.AddIssueNumber(v)
	return _u
}

// ClearIssueNumber clears the value of the "issue_number" field.
func (_u *RequestUpdateOne) ClearIssueNumber() *RequestUpdateOne {
	_u.mutation.ClearIssueNumber()
	return _u
}

// SetIssueURL sets the "issue_url" field.
func (_u *RequestUpdateOne) SetIssueURL(v string) *RequestUpdateOne {
	_u.mutation.SetIssueURL(v)
	return _u
}

// SetNillableIssueURL sets the "issue_url" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableIssueURL(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetIssueURL(*v)
	}
	return _u
}

// ClearIssueURL clears the value of the "issue_url" field.
func (_u *RequestUpdateOne) ClearIssueURL() *RequestUpdateOne {
	_u.mutation.ClearIssueURL()
	return _u
}

// SetPrURL sets the "pr_url" field.
func (_u *RequestUpdateOne) SetPrURL(v string) *RequestUpdateOne {
	_u.mutation.SetPrURL(v)
	return _u
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillablePrURL(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetPrURL(*v)
	}
	return _u
}

// ClearPrURL clears the value of the "pr_url" field.
func (_u *RequestUpdateOne) ClearPrURL() *RequestUpdateOne {
	_u.mutation.ClearPrURL()
	return _u
}

// SetPrNumber sets the "pr_number" field.
func (_u *RequestUpdateOne) SetPrNumber(v int) *RequestUpdateOne {
	_u.mutation.ResetPrNumber()
	_u.mutation.SetPrNumber(v)
	return _u
}

// SetNillablePrNumber sets the "pr_number" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillablePrNumber(v *int) *RequestUpdateOne {
	if v != nil {
		_u.SetPrNumber(*v)
	}
	return _u
}

// AddPrNumber adds value to the "pr_number" field.
func (_u *RequestUpdateOne) AddPrNumber(v int) *RequestUpdateOne {
	_u.mutation.AddPrNumber(v)
	return _u
}

// ClearPrNumber clears the value of the "pr_number" field.
func (_u *RequestUpdateOne) ClearPrNumber() *RequestUpdateOne {
	_u.mutation.ClearPrNumber()
	return _u
}

// SetPrBranchName sets the "pr_branch_name" field.
func (_u *RequestUpdateOne) SetPrBranchName(v string) *RequestUpdateOne {
	_u.mutation.SetPrBranchName(v)
	return _u
}

// SetNillablePrBranchName sets the "pr_branch_name" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillablePrBranchName(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetPrBranchName(*v)
	}
	return _u
}

// ClearPrBranchName clears the value of the "pr_branch_name" field.
func (_u *RequestUpdateOne) ClearPrBranchName() *RequestUpdateOne {
	_u.mutation.ClearPrBranchName()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *RequestUpdateOne) SetRetryCount(v int) *RequestUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableRetryCount(v *int) *RequestUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *RequestUpdateOne) AddRetryCount(v int) *RequestUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetCostCents sets the "cost_cents" field.
func (_u *RequestUpdateOne) SetCostCents(v int) *RequestUpdateOne {
	_u.mutation.ResetCostCents()
	_u.mutation.SetCostCents(v)
	return _u
}

// SetNillableCostCents sets the "cost_cents" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableCostCents(v *int) *RequestUpdateOne {
	if v != nil {
		_u.SetCostCents(*v)
	}
	return _u
}

// AddCostCents adds value to the "cost_cents" field.
func (_u *RequestUpdateOne) AddCostCents(v int) *RequestUpdateOne {
	_u.mutation.AddCostCents(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *RequestUpdateOne) SetDurationMs(v int) *RequestUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableDurationMs(v *int) *RequestUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *RequestUpdateOne) AddDurationMs(v int) *RequestUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetLatestSessionID sets the "latest_session_id" field.
func (_u *RequestUpdateOne) SetLatestSessionID(v string) *RequestUpdateOne {
	_u.mutation.SetLatestSessionID(v)
	return _u
}

// SetNillableLatestSessionID sets the "latest_session_id" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableLatestSessionID(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetLatestSessionID(*v)
	}
	return _u
}

// ClearLatestSessionID clears the value of the "latest_session_id" field.
func (_u *RequestUpdateOne) ClearLatestSessionID() *RequestUpdateOne {
	_u.mutation.ClearLatestSessionID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RequestUpdateOne) SetErrorMessage(v string) *RequestUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableErrorMessage(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RequestUpdateOne) ClearErrorMessage() *RequestUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RequestUpdateOne) SetUpdatedAt(v time.Time) *RequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableUpdatedAt(v *time.Time) *RequestUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *RequestUpdateOne) SetProcessedAt(v time.Time) *RequestUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableProcessedAt(v *time.Time) *RequestUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *RequestUpdateOne) ClearProcessedAt() *RequestUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *RequestUpdateOne) AddMessageIDs(ids ...string) *RequestUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *RequestUpdateOne) AddMessages(v ...*Message) *RequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddAgentSessionIDs adds the "agent_sessions" edge to the AgentSession entity by IDs.
func (_u *RequestUpdateOne) AddAgentSessionIDs(ids ...string) *RequestUpdateOne {
	_u.mutation.AddAgentSessionIDs(ids...)
	return _u
}

// AddAgentSessions adds the "agent_sessions" edges to the AgentSession entity.
func (_u *RequestUpdateOne) AddAgentSessions(v ...*AgentSession) *RequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentSessionIDs(ids...)
}

// Mutation returns the RequestMutation object of the builder.
func (_u *RequestUpdateOne) Mutation() *RequestMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *RequestUpdateOne) ClearMessages() *RequestUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *RequestUpdateOne) RemoveMessageIDs(ids ...string) *RequestUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *RequestUpdateOne) RemoveMessages(v ...*Message) *RequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearAgentSessions clears all "agent_sessions" edges to the AgentSession entity.
func (_u *RequestUpdateOne) ClearAgentSessions() *RequestUpdateOne {
	_u.mutation.ClearAgentSessions()
	return _u
}

// RemoveAgentSessionIDs removes the "agent_sessions" edge to AgentSession entities by IDs.
func (_u *RequestUpdateOne) RemoveAgentSessionIDs(ids ...string) *RequestUpdateOne {
	_u.mutation.RemoveAgentSessionIDs(ids...)
	return _u
}

// RemoveAgentSessions removes "agent_sessions" edges to AgentSession entities.
func (_u *RequestUpdateOne) RemoveAgentSessions(v ...*AgentSession) *RequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentSessionIDs(ids...)
}

// Where appends a list predicates to the RequestUpdate builder.
func (_u *RequestUpdateOne) Where(ps ...predicate.Request) *RequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RequestUpdateOne) Select(field string, fields ...string) *RequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Request entity.
func (_u *RequestUpdateOne) Save(ctx context.Context) (*Request, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestUpdateOne) SaveX(ctx context.Context) *Request {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestUpdateOne) check() error {
	if v, ok := _u.mutation.Origin(); ok {
		if err := request.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "Request.origin": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequestType(); ok {
		if err := request.RequestTypeValidator(v); err != nil {
			return &ValidationError{Name: "request_type", err: fmt.Errorf(`ent: validator failed for field "Request.request_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := request.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Request.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RequestUpdateOne) sqlSave(ctx context.Context) (_node *Request, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(request.Table, request.Columns, sqlgraph.NewFieldSpec(request.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Request.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, request.FieldID)
		for _, f := range fields {
			if !request.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != request.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(request.FieldOrigin, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Repository(); ok {
		_spec.SetField(request.FieldRepository, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(request.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(request.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestType(); ok {
		_spec.SetField(request.FieldRequestType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(request.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentKind(); ok {
		_spec.SetField(request.FieldAgentKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(request.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(request.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(request.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(request.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.ChatUserID(); ok {
		_spec.SetField(request.FieldChatUserID, field.TypeString, value)
	}
	if _u.mutation.ChatUserIDCleared() {
		_spec.ClearField(request.FieldChatUserID, field.TypeString)
	}
	if value, ok := _u.mutation.ChatChannel(); ok {
		_spec.SetField(request.FieldChatChannel, field.TypeString, value)
	}
	if _u.mutation.ChatChannelCleared() {
		_spec.ClearField(request.FieldChatChannel, field.TypeString)
	}
	if value, ok := _u.mutation.ChatThreadKey(); ok {
		_spec.SetField(request.FieldChatThreadKey, field.TypeString, value)
	}
	if _u.mutation.ChatThreadKeyCleared() {
		_spec.ClearField(request.FieldChatThreadKey, field.TypeString)
	}
	if value, ok := _u.mutation.IssueID(); ok {
		_spec.SetField(request.FieldIssueID, field.TypeString, value)
	}
	if _u.mutation.IssueIDCleared() {
		_spec.ClearField(request.FieldIssueID, field.TypeString)
	}
	if value, ok := _u.mutation.IssueNumber(); ok {
		_spec.SetField(request.FieldIssueNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIssueNumber(); ok {
		_spec.AddField(request.FieldIssueNumber, field.TypeInt, value)
	}
	if _u.mutation.IssueNumberCleared() {
		_spec.ClearField(request.FieldIssueNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.IssueURL(); ok {
		_spec.SetField(request.FieldIssueURL, field.TypeString, value)
	}
	if _u.mutation.IssueURLCleared() {
		_spec.ClearField(request.FieldIssueURL, field.TypeString)
	}
	if value, ok := _u.mutation.PrURL(); ok {
		_spec.SetField(request.FieldPrURL, field.TypeString, value)
	}
	if _u.mutation.PrURLCleared() {
		_spec.ClearField(request.FieldPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.PrNumber(); ok {
		_spec.SetField(request.FieldPrNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrNumber(); ok {
		_spec.AddField(request.FieldPrNumber, field.TypeInt, value)
	}
	if _u.mutation.PrNumberCleared() {
		_spec.ClearField(request.FieldPrNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.PrBranchName(); ok {
		_spec.SetField(request.FieldPrBranchName, field.TypeString, value)
	}
	if _u.mutation.PrBranchNameCleared() {
		_spec.ClearField(request.FieldPrBranchName, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(request.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(request.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostCents(); ok {
		_spec.SetField(request.FieldCostCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCostCents(); ok {
		_spec.AddField(request.FieldCostCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(request.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(request.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatestSessionID(); ok {
		_spec.SetField(request.FieldLatestSessionID, field.TypeString, value)
	}
	if _u.mutation.LatestSessionIDCleared() {
		_spec.ClearField(request.FieldLatestSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(request.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(request.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(request.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(request.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(request.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.MessagesTable,
			Columns: []string{request.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.MessagesTable,
			Columns: []string{request.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.MessagesTable,
			Columns: []string{request.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentSessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.AgentSessionsTable,
			Columns: []string{request.AgentSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentSessionsIDs(); len(nodes) > 0 && !_u.mutation.AgentSessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.AgentSessionsTable,
			Columns: []string{request.AgentSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentSessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.AgentSessionsTable,
			Columns: []string{request.AgentSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Request{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{request.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
