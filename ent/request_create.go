// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/patchwork-dev/patchwork/ent/agentsession"
	"github.com/patchwork-dev/patchwork/ent/message"
	"github.com/patchwork-dev/patchwork/ent/request"
)

// RequestCreate is the builder for creating a Request entity.
type RequestCreate struct {
	config
	mutation *RequestMutation
	hooks    []Hook
}

// SetOrigin sets the "origin" field.
func (_c *RequestCreate) SetOrigin(v request.Origin) *RequestCreate {
	_c.mutation.SetOrigin(v)
	return _c
}

// SetRepository sets the "repository" field.
func (_c *RequestCreate) SetRepository(v string) *RequestCreate {
	_c.mutation.SetRepository(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *RequestCreate) SetTitle(v string) *RequestCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *RequestCreate) SetDescription(v string) *RequestCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetRequestType sets the "request_type" field.
func (_c *RequestCreate) SetRequestType(v request.RequestType) *RequestCreate {
	_c.mutation.SetRequestType(v)
	return _c
}

// SetNillableRequestType sets the "request_type" field if the given value is not nil.
func (_c *RequestCreate) SetNillableRequestType(v *request.RequestType) *RequestCreate {
	if v != nil {
		_c.SetRequestType(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *RequestCreate) SetStatus(v request.Status) *RequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RequestCreate) SetNillableStatus(v *request.Status) *RequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAgentKind sets the "agent_kind" field.
func (_c *RequestCreate) SetAgentKind(v string) *RequestCreate {
	_c.mutation.SetAgentKind(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *RequestCreate) SetProvider(v string) *RequestCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_c *RequestCreate) SetNillableProvider(v *string) *RequestCreate {
	if v != nil {
		_c.SetProvider(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *RequestCreate) SetModel(v string) *RequestCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *RequestCreate) SetNillableModel(v *string) *RequestCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetChatUserID sets the "chat_user_id" field.
func (_c *RequestCreate) SetChatUserID(v string) *RequestCreate {
	_c.mutation.SetChatUserID(v)
	return _c
}

// SetNillableChatUserID sets the "chat_user_id" field if the given value is not nil.
func (_c *RequestCreate) SetNillableChatUserID(v *string) *RequestCreate {
	if v != nil {
		_c.SetChatUserID(*v)
	}
	return _c
}

// SetChatChannel sets the "chat_channel" field.
func (_c *RequestCreate) SetChatChannel(v string) *RequestCreate {
	_c.mutation.SetChatChannel(v)
	return _c
}

// SetNillableChatChannel sets the "chat_channel" field if the given value is not nil.
func (_c *RequestCreate) SetNillableChatChannel(v *string) *RequestCreate {
	if v != nil {
		_c.SetChatChannel(*v)
	}
	return _c
}

// SetChatThreadKey sets the "chat_thread_key" field.
func (_c *RequestCreate) SetChatThreadKey(v string) *RequestCreate {
	_c.mutation.SetChatThreadKey(v)
	return _c
}

// SetNillableChatThreadKey sets the "chat_thread_key" field if the given value is not nil.
func (_c *RequestCreate) SetNillableChatThreadKey(v *string) *RequestCreate {
	if v != nil {
		_c.SetChatThreadKey(*v)
	}
	return _c
}

// SetIssueID sets the "issue_id" field.
func (_c *RequestCreate) SetIssueID(v string) *RequestCreate {
	_c.mutation.SetIssueID(v)
	return _c
}

// SetNillableIssueID sets the "issue_id" field if the given value is not nil.
func (_c *RequestCreate) SetNillableIssueID(v *string) *RequestCreate {
	if v != nil {
		_c.SetIssueID(*v)
	}
	return _c
}

// SetIssueNumber sets the "issue_number" field.
func (_c *RequestCreate) SetIssueNumber(v int) *RequestCreate {
	_c.mutation.SetIssueNumber(v)
	return _c
}

// SetNillableIssueNumber sets the "issue_number" field if the given value is not nil.
func (_c *RequestCreate) SetNillableIssueNumber(v *int) *RequestCreate {
	if v != nil {
		_c.SetIssueNumber(*v)
	}
	return _c
}

// SetIssueURL sets the "issue_url" field.
func (_c *RequestCreate) SetIssueURL(v string) *RequestCreate {
	_c.mutation.SetIssueURL(v)
	return _c
}

// SetNillableIssueURL sets the "issue_url" field if the given value is not nil.
func (_c *RequestCreate) SetNillableIssueURL(v *string) *RequestCreate {
	if v != nil {
		_c.SetIssueURL(*v)
	}
	return _c
}

// SetPrURL sets the "pr_url" field.
func (_c *RequestCreate) SetPrURL(v string) *RequestCreate {
	_c.mutation.SetPrURL(v)
	return _c
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_c *RequestCreate) SetNillablePrURL(v *string) *RequestCreate {
	if v != nil {
		_c.SetPrURL(*v)
	}
	return _c
}

// SetPrNumber sets the "pr_number" field.
func (_c *RequestCreate) SetPrNumber(v int) *RequestCreate {
	_c.mutation.SetPrNumber(v)
	return _c
}

// SetNillablePrNumber sets the "pr_number" field if the given value is not nil.
func (_c *RequestCreate) SetNillablePrNumber(v *int) *RequestCreate {
	if v != nil {
		_c.SetPrNumber(*v)
	}
	return _c
}

// SetPrBranchName sets the "pr_branch_name" field.
func (_c *RequestCreate) SetPrBranchName(v string) *RequestCreate {
	_c.mutation.SetPrBranchName(v)
	return _c
}

// SetNillablePrBranchName sets the "pr_branch_name" field if the given value is not nil.
func (_c *RequestCreate) SetNillablePrBranchName(v *string) *RequestCreate {
	if v != nil {
		_c.SetPrBranchName(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *RequestCreate) SetRetryCount(v int) *RequestCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *RequestCreate) SetNillableRetryCount(v *int) *RequestCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetCostCents sets the "cost_cents" field.
func (_c *RequestCreate) SetCostCents(v int) *RequestCreate {
	_c.mutation.SetCostCents(v)
	return _c
}

// SetNillableCostCents sets the "cost_cents" field if the given value is not nil.
func (_c *RequestCreate) SetNillableCostCents(v *int) *RequestCreate {
	if v != nil {
		_c.SetCostCents(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *RequestCreate) SetDurationMs(v int) *RequestCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *RequestCreate) SetNillableDurationMs(v *int) *RequestCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetLatestSessionID sets the "latest_session_id" field.
func (_c *RequestCreate) SetLatestSessionID(v string) *RequestCreate {
	_c.mutation.SetLatestSessionID(v)
	return _c
}

// SetNillableLatestSessionID sets the "latest_session_id" field if the given value is not nil.
func (_c *RequestCreate) SetNillableLatestSessionID(v *string) *RequestCreate {
	if v != nil {
		_c.SetLatestSessionID(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *RequestCreate) SetErrorMessage(v string) *RequestCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *RequestCreate) SetNillableErrorMessage(v *string) *RequestCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RequestCreate) SetCreatedAt(v time.Time) *RequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RequestCreate) SetNillableCreatedAt(v *time.Time) *RequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RequestCreate) SetUpdatedAt(v time.Time) *RequestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RequestCreate) SetNillableUpdatedAt(v *time.Time) *RequestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *RequestCreate) SetProcessedAt(v time.Time) *RequestCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *RequestCreate) SetNillableProcessedAt(v *time.Time) *RequestCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RequestCreate) SetID(v string) *RequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_c *RequestCreate) AddMessageIDs(ids ...string) *RequestCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the Message entity.
func (_c *RequestCreate) AddMessages(v ...*Message) *RequestCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddAgentSessionIDs adds the "agent_sessions" edge to the AgentSession entity by IDs.
func (_c *RequestCreate) AddAgentSessionIDs(ids ...string) *RequestCreate {
	_c.mutation.AddAgentSessionIDs(ids...)
	return _c
}

// AddAgentSessions adds the "agent_sessions" edges to the AgentSession entity.
func (_c *RequestCreate) AddAgentSessions(v ...*AgentSession) *RequestCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgentSessionIDs(ids...)
}

// Mutation returns the RequestMutation object of the builder.
func (_c *RequestCreate) Mutation() *RequestMutation {
	return _c.mutation
}

// Save creates the Request in the database.
func (_c *RequestCreate) Save(ctx context.Context) (*Request, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RequestCreate) SaveX(ctx context.Context) *Request {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RequestCreate) defaults() {
	if _, ok := _c.mutation.RequestType(); !ok {
		v := request.DefaultRequestType
		_c.mutation.SetRequestType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := request.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := request.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CostCents(); !ok {
		v := request.DefaultCostCents
		_c.mutation.SetCostCents(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := request.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := request.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := request.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RequestCreate) check() error {
	if _, ok := _c.mutation.Origin(); !ok {
		return &ValidationError{Name: "origin", err: errors.New(`ent: missing required field "Request.origin"`)}
	}
	if v, ok := _c.mutation.Origin(); ok {
		if err := request.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "Request.origin": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Repository(); !ok {
		return &ValidationError{Name: "repository", err: errors.New(`ent: missing required field "Request.repository"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Request.title"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Request.description"`)}
	}
	if _, ok := _c.mutation.RequestType(); !ok {
		return &ValidationError{Name: "request_type", err: errors.New(`ent: missing required field "Request.request_type"`)}
	}
	if v, ok := _c.mutation.RequestType(); ok {
		if err := request.RequestTypeValidator(v); err != nil {
			return &ValidationError{Name: "request_type", err: fmt.Errorf(`ent: validator failed for field "Request.request_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Request.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := request.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Request.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AgentKind(); !ok {
		return &ValidationError{Name: "agent_kind", err: errors.New(`ent: missing required field "Request.agent_kind"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "Request.retry_count"`)}
	}
	if _, ok := _c.mutation.CostCents(); !ok {
		return &ValidationError{Name: "cost_cents", err: errors.New(`ent: missing required field "Request.cost_cents"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "Request.duration_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Request.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Request.updated_at"`)}
	}
	return nil
}

func (_c *RequestCreate) sqlSave(ctx context.Context) (*Request, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Request.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RequestCreate) createSpec() (*Request, *sqlgraph.CreateSpec) {
	var (
		_node = &Request{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(request.Table, sqlgraph.NewFieldSpec(request.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Origin(); ok {
		_spec.SetField(request.FieldOrigin, field.TypeEnum, value)
		_node.Origin = value
	}
	if value, ok := _c.mutation.Repository(); ok {
		_spec.SetField(request.FieldRepository, field.TypeString, value)
		_node.Repository = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(request.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(request.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.RequestType(); ok {
		_spec.SetField(request.FieldRequestType, field.TypeEnum, value)
		_node.RequestType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(request.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AgentKind(); ok {
		_spec.SetField(request.FieldAgentKind, field.TypeString, value)
		_node.AgentKind = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(request.FieldProvider, field.TypeString, value)
		_node.Provider = &value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(request.FieldModel, field.TypeString, value)
		_node.Model = &value
	}
	if value, ok := _c.mutation.ChatUserID(); ok {
		_spec.SetField(request.FieldChatUserID, field.TypeString, value)
		_node.ChatUserID = &value
	}
	if value, ok := _c.mutation.ChatChannel(); ok {
		_spec.SetField(request.FieldChatChannel, field.TypeString, value)
		_node.ChatChannel = &value
	}
	if value, ok := _c.mutation.ChatThreadKey(); ok {
		_spec.SetField(request.FieldChatThreadKey, field.TypeString, value)
		_node.ChatThreadKey = &value
	}
	if value, ok := _c.mutation.IssueID(); ok {
		_spec.SetField(request.FieldIssueID, field.TypeString, value)
		_node.IssueID = &value
	}
	if value, ok := _c.mutation.IssueNumber(); ok {
		_spec.SetField(request.FieldIssueNumber, field.TypeInt, value)
		_node.IssueNumber = &value
	}
	if value, ok := _c.mutation.IssueURL(); ok {
		_spec.SetField(request.FieldIssueURL, field.TypeString, value)
		_node.IssueURL = &value
	}
	if value, ok := _c.mutation.PrURL(); ok {
		_spec.SetField(request.FieldPrURL, field.TypeString, value)
		_node.PrURL = &value
	}
	if value, ok := _c.mutation.PrNumber(); ok {
		_spec.SetField(request.FieldPrNumber, field.TypeInt, value)
		_node.PrNumber = &value
	}
	if value, ok := _c.mutation.PrBranchName(); ok {
		_spec.SetField(request.FieldPrBranchName, field.TypeString, value)
		_node.PrBranchName = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(request.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.CostCents(); ok {
		_spec.SetField(request.FieldCostCents, field.TypeInt, value)
		_node.CostCents = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(request.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.LatestSessionID(); ok {
		_spec.SetField(request.FieldLatestSessionID, field.TypeString, value)
		_node.LatestSessionID = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(request.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(request.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(request.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(request.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AgentSessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RequestCreateBulk is the builder for creating many Request entities in bulk.
type RequestCreateBulk struct {
	config
	err      error
	builders []*RequestCreate
}

// Save creates the Request entities in the database.
func (_c *RequestCreateBulk) Save(ctx context.Context) ([]*Request, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Request, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RequestMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RequestCreateBulk) SaveX(ctx context.Context) []*Request {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
