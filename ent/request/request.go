// Code generated by ent, DO NOT EDIT.

package request

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the request type in the database.
	Label = "request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "request_id"
	// FieldOrigin holds the string denoting the origin field in the database.
	FieldOrigin = "origin"
	// FieldRepository holds the string denoting the repository field in the database.
	FieldRepository = "repository"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldRequestType holds the string denoting the request_type field in the database.
	FieldRequestType = "request_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAgentKind holds the string denoting the agent_kind field in the database.
	FieldAgentKind = "agent_kind"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldChatUserID holds the string denoting the chat_user_id field in the database.
	FieldChatUserID = "chat_user_id"
	// FieldChatChannel holds the string denoting the chat_channel field in the database.
	FieldChatChannel = "chat_channel"
	// FieldChatThreadKey holds the string denoting the chat_thread_key field in the database.
	FieldChatThreadKey = "chat_thread_key"
	// FieldIssueID holds the string denoting the issue_id field in the database.
	FieldIssueID = "issue_id"
	// FieldIssueNumber holds the string denoting the issue_number field in the database.
	FieldIssueNumber = "issue_number"
	// FieldIssueURL holds the string denoting the issue_url field in the database.
	FieldIssueURL = "issue_url"
	// FieldPrURL holds the string denoting the pr_url field in the database.
	FieldPrURL = "pr_url"
	// FieldPrNumber holds the string denoting the pr_number field in the database.
	FieldPrNumber = "pr_number"
	// FieldPrBranchName holds the string denoting the pr_branch_name field in the database.
	FieldPrBranchName = "pr_branch_name"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldCostCents holds the string denoting the cost_cents field in the database.
	FieldCostCents = "cost_cents"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldLatestSessionID holds the string denoting the latest_session_id field in the database.
	FieldLatestSessionID = "latest_session_id"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// EdgeAgentSessions holds the string denoting the agent_sessions edge name in mutations.
	EdgeAgentSessions = "agent_sessions"
	// MessageFieldID holds the string denoting the ID field of the Message.
	MessageFieldID = "message_id"
	// AgentSessionFieldID holds the string denoting the ID field of the AgentSession.
	AgentSessionFieldID = "agent_session_id"
	// Table holds the table name of the request in the database.
	Table = "requests"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "messages"
	// MessagesInverseTable is the table name for the Message entity.
	// It exists in this package in order to avoid circular dependency with the "message" package.
	MessagesInverseTable = "messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "request_id"
	// AgentSessionsTable is the table that holds the agent_sessions relation/edge.
	AgentSessionsTable = "agent_sessions"
	// AgentSessionsInverseTable is the table name for the AgentSession entity.
	// It exists in this package in order to avoid circular dependency with the "agentsession" package.
	AgentSessionsInverseTable = "agent_sessions"
	// AgentSessionsColumn is the table column denoting the agent_sessions relation/edge.
	AgentSessionsColumn = "request_id"
)

// Columns holds all SQL columns for request fields.
var Columns = []string{
	FieldID,
	FieldOrigin,
	FieldRepository,
	FieldTitle,
	FieldDescription,
	FieldRequestType,
	FieldStatus,
	FieldAgentKind,
	FieldProvider,
	FieldModel,
	FieldChatUserID,
	FieldChatChannel,
	FieldChatThreadKey,
	FieldIssueID,
	FieldIssueNumber,
	FieldIssueURL,
	FieldPrURL,
	FieldPrNumber,
	FieldPrBranchName,
	FieldRetryCount,
	FieldCostCents,
	FieldDurationMs,
	FieldLatestSessionID,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldProcessedAt,
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
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// DefaultCostCents holds the default value on creation for the "cost_cents" field.
	DefaultCostCents int
	// DefaultDurationMs holds the default value on creation for the "duration_ms" field.
	DefaultDurationMs int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// Origin defines the type for the "origin" enum field.
type Origin string

// Origin values.
const (
	OriginChat       Origin = "chat"
	OriginForgeIssue Origin = "forge_issue"
	OriginWeb        Origin = "web"
)

func (o Origin) String() string {
	return string(o)
}

// OriginValidator is a validator for the "origin" field enum values. It is called by the builders before save.
func OriginValidator(o Origin) error {
	switch o {
	case OriginChat, OriginForgeIssue, OriginWeb:
		return nil
	default:
		return fmt.Errorf("request: invalid enum value for origin field: %q", o)
	}
}

// RequestType defines the type for the "request_type" enum field.
type RequestType string

// RequestTypeFeature is the default value of the RequestType enum.
const DefaultRequestType = RequestTypeFeature

// RequestType values.
const (
	RequestTypeFeature  RequestType = "feature"
	RequestTypeBug      RequestType = "bug"
	RequestTypeRefactor RequestType = "refactor"
	RequestTypeDocs     RequestType = "docs"
	RequestTypeQuestion RequestType = "question"
)

func (rt RequestType) String() string {
	return string(rt)
}

// RequestTypeValidator is a validator for the "request_type" field enum values. It is called by the builders before save.
func RequestTypeValidator(rt RequestType) error {
	switch rt {
	case RequestTypeFeature, RequestTypeBug, RequestTypeRefactor, RequestTypeDocs, RequestTypeQuestion:
		return nil
	default:
		return fmt.Errorf("request: invalid enum value for request_type field: %q", rt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending               Status = "pending"
	StatusIssueCreated          Status = "issue_created"
	StatusProcessing            Status = "processing"
	StatusAwaitingClarification Status = "awaiting_clarification"
	StatusPrCreated             Status = "pr_created"
	StatusCompleted             Status = "completed"
	StatusError                 Status = "error"
	StatusCancelled             Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusIssueCreated, StatusProcessing, StatusAwaitingClarification, StatusPrCreated, StatusCompleted, StatusError, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("request: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Request queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrigin orders the results by the origin field.
func ByOrigin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrigin, opts...).ToFunc()
}

// ByRepository orders the results by the repository field.
func ByRepository(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepository, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByRequestType orders the results by the request_type field.
func ByRequestType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAgentKind orders the results by the agent_kind field.
func ByAgentKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentKind, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByChatUserID orders the results by the chat_user_id field.
func ByChatUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatUserID, opts...).ToFunc()
}

// ByChatChannel orders the results by the chat_channel field.
func ByChatChannel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatChannel, opts...).ToFunc()
}

// ByChatThreadKey orders the results by the chat_thread_key field.
func ByChatThreadKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatThreadKey, opts...).ToFunc()
}

// ByIssueID orders the results by the issue_id field.
func ByIssueID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueID, opts...).ToFunc()
}

// ByIssueNumber orders the results by the issue_number field.
func ByIssueNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueNumber, opts...).ToFunc()
}

// ByIssueURL orders the results by the issue_url field.
func ByIssueURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueURL, opts...).ToFunc()
}

// ByPrURL orders the results by the pr_url field.
func ByPrURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrURL, opts...).ToFunc()
}

// ByPrNumber orders the results by the pr_number field.
func ByPrNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrNumber, opts...).ToFunc()
}

// ByPrBranchName orders the results by the pr_branch_name field.
func ByPrBranchName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrBranchName, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByCostCents orders the results by the cost_cents field.
func ByCostCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostCents, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByLatestSessionID orders the results by the latest_session_id field.
func ByLatestSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatestSessionID, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAgentSessionsCount orders the results by agent_sessions count.
func ByAgentSessionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAgentSessionsStep(), opts...)
	}
}

// ByAgentSessions orders the results by agent_sessions terms.
func ByAgentSessions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentSessionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, MessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
func newAgentSessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentSessionsInverseTable, AgentSessionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AgentSessionsTable, AgentSessionsColumn),
	)
}
