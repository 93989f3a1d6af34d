// Code generated by ent, DO NOT EDIT.

package queuemessage

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the queuemessage type in the database.
	Label = "queue_message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "queue_message_id"
	// FieldVariant holds the string denoting the variant field in the database.
	FieldVariant = "variant"
	// FieldRequestID holds the string denoting the request_id field in the database.
	FieldRequestID = "request_id"
	// FieldCorrelationKey holds the string denoting the correlation_key field in the database.
	FieldCorrelationKey = "correlation_key"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldSeq holds the string denoting the seq field in the database.
	FieldSeq = "seq"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldAvailableAt holds the string denoting the available_at field in the database.
	FieldAvailableAt = "available_at"
	// FieldLockedBy holds the string denoting the locked_by field in the database.
	FieldLockedBy = "locked_by"
	// FieldLockedAt holds the string denoting the locked_at field in the database.
	FieldLockedAt = "locked_at"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldEnqueuedAt holds the string denoting the enqueued_at field in the database.
	FieldEnqueuedAt = "enqueued_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the queuemessage in the database.
	Table = "queue_messages"
)

// Columns holds all SQL columns for queuemessage fields.
var Columns = []string{
	FieldID,
	FieldVariant,
	FieldRequestID,
	FieldCorrelationKey,
	FieldPayload,
	FieldSeq,
	FieldStatus,
	FieldAttempts,
	FieldAvailableAt,
	FieldLockedBy,
	FieldLockedAt,
	FieldLastHeartbeatAt,
	FieldLastError,
	FieldEnqueuedAt,
	FieldCompletedAt,
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
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultAvailableAt holds the default value on creation for the "available_at" field.
	DefaultAvailableAt func() time.Time
	// DefaultEnqueuedAt holds the default value on creation for the "enqueued_at" field.
	DefaultEnqueuedAt func() time.Time
)

// Variant defines the type for the "variant" enum field.
type Variant string

// Variant values.
const (
	VariantRequestCreateFromForge  Variant = "request_create_from_forge"
	VariantRequestCreateFromChat   Variant = "request_create_from_chat"
	VariantChatMention             Variant = "chat_mention"
	VariantChatClarificationAnswer Variant = "chat_clarification_answer"
	VariantChatSuggestChanges      Variant = "chat_suggest_changes"
	VariantChatRetryRequest        Variant = "chat_retry_request"
	VariantRequestExecute          Variant = "request_execute"
	VariantSessionSweep            Variant = "session_sweep"
)

func (v Variant) String() string {
	return string(v)
}

// VariantValidator is a validator for the "variant" field enum values. It is called by the builders before save.
func VariantValidator(v Variant) error {
	switch v {
	case VariantRequestCreateFromForge, VariantRequestCreateFromChat, VariantChatMention, VariantChatClarificationAnswer, VariantChatSuggestChanges, VariantChatRetryRequest, VariantRequestExecute, VariantSessionSweep:
		return nil
	default:
		return fmt.Errorf("queuemessage: invalid enum value for variant field: %q", v)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusInFlight  Status = "in_flight"
	StatusCompleted Status = "completed"
	StatusDead      Status = "dead"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInFlight, StatusCompleted, StatusDead:
		return nil
	default:
		return fmt.Errorf("queuemessage: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the QueueMessage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVariant orders the results by the variant field.
func ByVariant(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVariant, opts...).ToFunc()
}

// ByRequestID orders the results by the request_id field.
func ByRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestID, opts...).ToFunc()
}

// ByCorrelationKey orders the results by the correlation_key field.
func ByCorrelationKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrelationKey, opts...).ToFunc()
}

// BySeq orders the results by the seq field.
func BySeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeq, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByAvailableAt orders the results by the available_at field.
func ByAvailableAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvailableAt, opts...).ToFunc()
}

// ByLockedBy orders the results by the locked_by field.
func ByLockedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLockedBy, opts...).ToFunc()
}

// ByLockedAt orders the results by the locked_at field.
func ByLockedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLockedAt, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByEnqueuedAt orders the results by the enqueued_at field.
func ByEnqueuedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnqueuedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
