// Code generated by ent, DO NOT EDIT.

package message

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the message type in the database.
	Label = "message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "message_id"
	// FieldRequestID holds the string denoting the request_id field in the database.
	FieldRequestID = "request_id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldActorID holds the string denoting the actor_id field in the database.
	FieldActorID = "actor_id"
	// FieldActorName holds the string denoting the actor_name field in the database.
	FieldActorName = "actor_name"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRequest holds the string denoting the request edge name in mutations.
	EdgeRequest = "request"
	// RequestFieldID holds the string denoting the ID field of the Request.
	RequestFieldID = "request_id"
	// Table holds the table name of the message in the database.
	Table = "messages"
	// RequestTable is the table that holds the request relation/edge.
	RequestTable = "messages"
	// RequestInverseTable is the table name for the Request entity.
	// It exists in this package in order to avoid circular dependency with the "request" package.
	RequestInverseTable = "requests"
	// RequestColumn is the table column denoting the request relation/edge.
	RequestColumn = "request_id"
)

// Columns holds all SQL columns for message fields.
var Columns = []string{
	FieldID,
	FieldRequestID,
	FieldType,
	FieldSource,
	FieldContent,
	FieldActorID,
	FieldActorName,
	FieldMetadata,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeInitialRequest      Type = "initial_request"
	TypeClarificationAsk    Type = "clarification_ask"
	TypeClarificationAnswer Type = "clarification_answer"
	TypeFollowUpRequest     Type = "follow_up_request"
	TypeProcessingStarted   Type = "processing_started"
	TypeProcessingUpdate    Type = "processing_update"
	TypePrCreated           Type = "pr_created"
	TypePrUpdated           Type = "pr_updated"
	TypeError               Type = "error"
	TypeRetry               Type = "retry"
	TypeCancelled           Type = "cancelled"
	TypeAgentThinking       Type = "agent_thinking"
	TypeAgentToolCall       Type = "agent_tool_call"
	TypeAgentToolResult     Type = "agent_tool_result"
	TypeAgentFileChange     Type = "agent_file_change"
	TypeAgentTerminal       Type = "agent_terminal"
	TypeAgentSummary        Type = "agent_summary"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeInitialRequest, TypeClarificationAsk, TypeClarificationAnswer, TypeFollowUpRequest, TypeProcessingStarted, TypeProcessingUpdate, TypePrCreated, TypePrUpdated, TypeError, TypeRetry, TypeCancelled, TypeAgentThinking, TypeAgentToolCall, TypeAgentToolResult, TypeAgentFileChange, TypeAgentTerminal, TypeAgentSummary:
		return nil
	default:
		return fmt.Errorf("message: invalid enum value for type field: %q", _type)
	}
}

// Source defines the type for the "source" enum field.
type Source string

// Source values.
const (
	SourceChat   Source = "chat"
	SourceForge  Source = "forge"
	SourceWeb    Source = "web"
	SourceSystem Source = "system"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourceChat, SourceForge, SourceWeb, SourceSystem:
		return nil
	default:
		return fmt.Errorf("message: invalid enum value for source field: %q", s)
	}
}

// OrderOption defines the ordering options for the Message queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRequestID orders the results by the request_id field.
func ByRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByActorID orders the results by the actor_id field.
func ByActorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorID, opts...).ToFunc()
}

// ByActorName orders the results by the actor_name field.
func ByActorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorName, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRequestField orders the results by request field.
func ByRequestField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRequestStep(), sql.OrderByField(field, opts...))
	}
}
func newRequestStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RequestInverseTable, RequestFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RequestTable, RequestColumn),
	)
}
