// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/patchwork-dev/patchwork/ent/request"
)

// Request is the model entity for the Request schema.
type Request struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Origin holds the value of the "origin" field.
	Origin request.Origin `json:"origin,omitempty"`
	// Target repository as owner/name
	Repository string `json:"repository,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// RequestType holds the value of the "request_type" field.
	RequestType request.RequestType `json:"request_type,omitempty"`
	// Status holds the value of the "status" field.
	Status request.Status `json:"status,omitempty"`
	// AgentKind holds the value of the "agent_kind" field.
	AgentKind string `json:"agent_kind,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider *string `json:"provider,omitempty"`
	// Model holds the value of the "model" field.
	Model *string `json:"model,omitempty"`
	// ChatUserID holds the value of the "chat_user_id" field.
	ChatUserID *string `json:"chat_user_id,omitempty"`
	// ChatChannel holds the value of the "chat_channel" field.
	ChatChannel *string `json:"chat_channel,omitempty"`
	// Thread timestamp identifying the conversation thread
	ChatThreadKey *string `json:"chat_thread_key,omitempty"`
	// IssueID holds the value of the "issue_id" field.
	IssueID *string `json:"issue_id,omitempty"`
	// IssueNumber holds the value of the "issue_number" field.
	IssueNumber *int `json:"issue_number,omitempty"`
	// IssueURL holds the value of the "issue_url" field.
	IssueURL *string `json:"issue_url,omitempty"`
	// PrURL holds the value of the "pr_url" field.
	PrURL *string `json:"pr_url,omitempty"`
	// PrNumber holds the value of the "pr_number" field.
	PrNumber *int `json:"pr_number,omitempty"`
	// PrBranchName holds the value of the "pr_branch_name" field.
	PrBranchName *string `json:"pr_branch_name,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// Denormalized cache; authoritative figure is the Thread sum
	CostCents int `json:"cost_cents,omitempty"`
	// Denormalized cache; authoritative figure is the Thread sum
	DurationMs int `json:"duration_ms,omitempty"`
	// LatestSessionID holds the value of the "latest_session_id" field.
	LatestSessionID *string `json:"latest_session_id,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// When the dispatcher last finished an execution turn
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RequestQuery when eager-loading is set.
	Edges        RequestEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RequestEdges holds the relations/edges for other nodes in the graph.
type RequestEdges struct {
	// Messages holds the value of the messages edge.
	Messages []*Message `json:"messages,omitempty"`
	// AgentSessions holds the value of the agent_sessions edge.
	AgentSessions []*AgentSession `json:"agent_sessions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e RequestEdges) MessagesOrErr() ([]*Message, error) {
	if e.loadedTypes[0] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// AgentSessionsOrErr returns the AgentSessions value or an error if the edge
// was not loaded in eager-loading.
func (e RequestEdges) AgentSessionsOrErr() ([]*AgentSession, error) {
	if e.loadedTypes[1] {
		return e.AgentSessions, nil
	}
	return nil, &NotLoadedError{edge: "agent_sessions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Request) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case request.FieldIssueNumber, request.FieldPrNumber, request.FieldRetryCount, request.FieldCostCents, request.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case request.FieldID, request.FieldOrigin, request.FieldRepository, request.FieldTitle, request.FieldDescription, request.FieldRequestType, request.FieldStatus, request.FieldAgentKind, request.FieldProvider, request.FieldModel, request.FieldChatUserID, request.FieldChatChannel, request.FieldChatThreadKey, request.FieldIssueID, request.FieldIssueURL, request.FieldPrURL, request.FieldPrBranchName, request.FieldLatestSessionID, request.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case request.FieldCreatedAt, request.FieldUpdatedAt, request.FieldProcessedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Request fields.
func (_m *Request) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case request.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case request.FieldOrigin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field origin", values[i])
			} else if value.Valid {
				_m.Origin = request.Origin(value.String)
			}
		case request.FieldRepository:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repository", values[i])
			} else if value.Valid {
				_m.Repository = value.String
			}
		case request.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case request.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case request.FieldRequestType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_type", values[i])
			} else if value.Valid {
				_m.RequestType = request.RequestType(value.String)
			}
		case request.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = request.Status(value.String)
			}
		case request.FieldAgentKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_kind", values[i])
			} else if value.Valid {
				_m.AgentKind = value.String
			}
		case request.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = new(string)
				*_m.Provider = value.String
			}
		case request.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = new(string)
				*_m.Model = value.String
			}
		case request.FieldChatUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chat_user_id", values[i])
			} else if value.Valid {
				_m.ChatUserID = new(string)
				*_m.ChatUserID = value.String
			}
		case request.FieldChatChannel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chat_channel", values[i])
			} else if value.Valid {
				_m.ChatChannel = new(string)
				*_m.ChatChannel = value.String
			}
		case request.FieldChatThreadKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chat_thread_key", values[i])
			} else if value.Valid {
				_m.ChatThreadKey = new(string)
				*_m.ChatThreadKey = value.String
			}
		case request.FieldIssueID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issue_id", values[i])
			} else if value.Valid {
				_m.IssueID = new(string)
				*_m.IssueID = value.String
			}
		case request.FieldIssueNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field issue_number", values[i])
			} else if value.Valid {
				_m.IssueNumber = new(int)
				*_m.IssueNumber = int(value.Int64)
			}
		case request.FieldIssueURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issue_url", values[i])
			} else if value.Valid {
				_m.IssueURL = new(string)
				*_m.IssueURL = value.String
			}
		case request.FieldPrURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pr_url", values[i])
			} else if value.Valid {
				_m.PrURL = new(string)
				*_m.PrURL = value.String
			}
		case request.FieldPrNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pr_number", values[i])
			} else if value.Valid {
				_m.PrNumber = new(int)
				*_m.PrNumber = int(value.Int64)
			}
		case request.FieldPrBranchName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pr_branch_name", values[i])
			} else if value.Valid {
				_m.PrBranchName = new(string)
				*_m.PrBranchName = value.String
			}
		case request.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case request.FieldCostCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_cents", values[i])
			} else if value.Valid {
				_m.CostCents = int(value.Int64)
			}
		case request.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = int(value.Int64)
			}
		case request.FieldLatestSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field latest_session_id", values[i])
			} else if value.Valid {
				_m.LatestSessionID = new(string)
				*_m.LatestSessionID = value.String
			}
		case request.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case request.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case request.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case request.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				_m.ProcessedAt = new(time.Time)
				*_m.ProcessedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Request.
// This includes values selected through modifiers, order, etc.
func (_m *Request) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMessages queries the "messages" edge of the Request entity.
func (_m *Request) QueryMessages() *MessageQuery {
	return NewRequestClient(_m.config).QueryMessages(_m)
}

// QueryAgentSessions queries the "agent_sessions" edge of the Request entity.
func (_m *Request) QueryAgentSessions() *AgentSessionQuery {
	return NewRequestClient(_m.config).QueryAgentSessions(_m)
}

// Update returns a builder for updating this Request.
// Note that you need to call Request.Unwrap() before calling this method if this Request
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Request) Update() *RequestUpdateOne {
	return NewRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Request entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Request) Unwrap() *Request {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Request is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Request) String() string {
	var builder strings.Builder
	builder.WriteString("Request(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("origin=")
	builder.WriteString(fmt.Sprintf("%v", _m.Origin))
	builder.WriteString(", ")
	builder.WriteString("repository=")
	builder.WriteString(_m.Repository)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("request_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestType))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("agent_kind=")
	builder.WriteString(_m.AgentKind)
	builder.WriteString(", ")
	if v := _m.Provider; v != nil {
		builder.WriteString("provider=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Model; v != nil {
		builder.WriteString("model=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ChatUserID; v != nil {
		builder.WriteString("chat_user_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ChatChannel; v != nil {
		builder.WriteString("chat_channel=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ChatThreadKey; v != nil {
		builder.WriteString("chat_thread_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.IssueID; v != nil {
		builder.WriteString("issue_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.IssueNumber; v != nil {
		builder.WriteString("issue_number=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.IssueURL; v != nil {
		builder.WriteString("issue_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PrURL; v != nil {
		builder.WriteString("pr_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PrNumber; v != nil {
		builder.WriteString("pr_number=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PrBranchName; v != nil {
		builder.WriteString("pr_branch_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	builder.WriteString("cost_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostCents))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	if v := _m.LatestSessionID; v != nil {
		builder.WriteString("latest_session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ProcessedAt; v != nil {
		builder.WriteString("processed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Requests is a parsable slice of Request.
type Requests []*Request
