// Code generated by ent, DO NOT EDIT.

package queuemessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/patchwork-dev/patchwork/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContainsFold(FieldID, id))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldRequestID, v))
}

// CorrelationKey applies equality check predicate on the "correlation_key" field. It's identical to CorrelationKeyEQ.
func CorrelationKey(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldCorrelationKey, v))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int64) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldSeq, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldAttempts, v))
}

// AvailableAt applies equality check predicate on the "available_at" field. It's identical to AvailableAtEQ.
func AvailableAt(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldAvailableAt, v))
}

// LockedBy applies equality check predicate on the "locked_by" field. It's identical to LockedByEQ.
func LockedBy(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldLockedBy, v))
}

// LockedAt applies equality check predicate on the "locked_at" field. It's identical to LockedAtEQ.
func LockedAt(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldLockedAt, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldLastError, v))
}

// EnqueuedAt applies equality check predicate on the "enqueued_at" field. It's identical to EnqueuedAtEQ.
func EnqueuedAt(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldEnqueuedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldCompletedAt, v))
}

// VariantEQ applies the EQ predicate on the "variant" field.
func VariantEQ(v Variant) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldVariant, v))
}

// VariantNEQ applies the NEQ predicate on the "variant" field.
func VariantNEQ(v Variant) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldVariant, v))
}

// VariantIn applies the In predicate on the "variant" field.
func VariantIn(vs ...Variant) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldVariant, vs...))
}

// VariantNotIn applies the NotIn predicate on the "variant" field.
func VariantNotIn(vs ...Variant) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldVariant, vs...))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLTE(FieldRequestID, v))
}

// RequestIDContains applies the Contains predicate on the "request_id" field.
func RequestIDContains(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContains(FieldRequestID, v))
}

// RequestIDHasPrefix applies the HasPrefix predicate on the "request_id" field.
func RequestIDHasPrefix(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldHasPrefix(FieldRequestID, v))
}

// RequestIDHasSuffix applies the HasSuffix predicate on the "request_id" field.
func RequestIDHasSuffix(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldHasSuffix(FieldRequestID, v))
}

// RequestIDIsNil applies the IsNil predicate on the "request_id" field.
func RequestIDIsNil() predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIsNull(FieldRequestID))
}

// RequestIDNotNil applies the NotNil predicate on the "request_id" field.
func RequestIDNotNil() predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotNull(FieldRequestID))
}

// RequestIDEqualFold applies the EqualFold predicate on the "request_id" field.
func RequestIDEqualFold(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEqualFold(FieldRequestID, v))
}

// RequestIDContainsFold applies the ContainsFold predicate on the "request_id" field.
func RequestIDContainsFold(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContainsFold(FieldRequestID, v))
}

// CorrelationKeyEQ applies the EQ predicate on the "correlation_key" field.
func CorrelationKeyEQ(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldCorrelationKey, v))
}

// CorrelationKeyNEQ applies the NEQ predicate on the "correlation_key" field.
func CorrelationKeyNEQ(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldCorrelationKey, v))
}

// CorrelationKeyIn applies the In predicate on the "correlation_key" field.
func CorrelationKeyIn(vs ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldCorrelationKey, vs...))
}

// CorrelationKeyNotIn applies the NotIn predicate on the "correlation_key" field.
func CorrelationKeyNotIn(vs ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldCorrelationKey, vs...))
}

// CorrelationKeyGT applies the GT predicate on the "correlation_key" field.
func CorrelationKeyGT(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGT(FieldCorrelationKey, v))
}

// CorrelationKeyGTE applies the GTE predicate on the "correlation_key" field.
func CorrelationKeyGTE(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGTE(FieldCorrelationKey, v))
}

// CorrelationKeyLT applies the LT predicate on the "correlation_key" field.
func CorrelationKeyLT(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLT(FieldCorrelationKey, v))
}

// CorrelationKeyLTE applies the LTE predicate on the "correlation_key" field.
func CorrelationKeyLTE(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLTE(FieldCorrelationKey, v))
}

// CorrelationKeyContains applies the Contains predicate on the "correlation_key" field.
func CorrelationKeyContains(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContains(FieldCorrelationKey, v))
}

// CorrelationKeyHasPrefix applies the HasPrefix predicate on the "correlation_key" field.
func CorrelationKeyHasPrefix(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldHasPrefix(FieldCorrelationKey, v))
}

// CorrelationKeyHasSuffix applies the HasSuffix predicate on the "correlation_key" field.
func CorrelationKeyHasSuffix(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldHasSuffix(FieldCorrelationKey, v))
}

// CorrelationKeyEqualFold applies the EqualFold predicate on the "correlation_key" field.
func CorrelationKeyEqualFold(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEqualFold(FieldCorrelationKey, v))
}

// CorrelationKeyContainsFold applies the ContainsFold predicate on the "correlation_key" field.
func CorrelationKeyContainsFold(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContainsFold(FieldCorrelationKey, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotNull(FieldPayload))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int64) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int64) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int64) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int64) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int64) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int64) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int64) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int64) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLTE(FieldSeq, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldStatus, vs...))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLTE(FieldAttempts, v))
}

// AvailableAtEQ applies the EQ predicate on the "available_at" field.
func AvailableAtEQ(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldAvailableAt, v))
}

// AvailableAtNEQ applies the NEQ predicate on the "available_at" field.
func AvailableAtNEQ(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldAvailableAt, v))
}

// AvailableAtIn applies the In predicate on the "available_at" field.
func AvailableAtIn(vs ...time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldAvailableAt, vs...))
}

// AvailableAtNotIn applies the NotIn predicate on the "available_at" field.
func AvailableAtNotIn(vs ...time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldAvailableAt, vs...))
}

// AvailableAtGT applies the GT predicate on the "available_at" field.
func AvailableAtGT(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGT(FieldAvailableAt, v))
}

// AvailableAtGTE applies the GTE predicate on the "available_at" field.
func AvailableAtGTE(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGTE(FieldAvailableAt, v))
}

// AvailableAtLT applies the LT predicate on the "available_at" field.
func AvailableAtLT(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLT(FieldAvailableAt, v))
}

// AvailableAtLTE applies the LTE predicate on the "available_at" field.
func AvailableAtLTE(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLTE(FieldAvailableAt, v))
}

// LockedByEQ applies the EQ predicate on the "locked_by" field.
func LockedByEQ(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldLockedBy, v))
}

// LockedByNEQ applies the NEQ predicate on the "locked_by" field.
func LockedByNEQ(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldLockedBy, v))
}

// LockedByIn applies the In predicate on the "locked_by" field.
func LockedByIn(vs ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldLockedBy, vs...))
}

// LockedByNotIn applies the NotIn predicate on the "locked_by" field.
func LockedByNotIn(vs ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldLockedBy, vs...))
}

// LockedByGT applies the GT predicate on the "locked_by" field.
func LockedByGT(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGT(FieldLockedBy, v))
}

// LockedByGTE applies the GTE predicate on the "locked_by" field.
func LockedByGTE(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGTE(FieldLockedBy, v))
}

// LockedByLT applies the LT predicate on the "locked_by" field.
func LockedByLT(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLT(FieldLockedBy, v))
}

// LockedByLTE applies the LTE predicate on the "locked_by" field.
func LockedByLTE(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLTE(FieldLockedBy, v))
}

// LockedByContains applies the Contains predicate on the "locked_by" field.
func LockedByContains(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContains(FieldLockedBy, v))
}

// LockedByHasPrefix applies the HasPrefix predicate on the "locked_by" field.
func LockedByHasPrefix(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldHasPrefix(FieldLockedBy, v))
}

// LockedByHasSuffix applies the HasSuffix predicate on the "locked_by" field.
func LockedByHasSuffix(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldHasSuffix(FieldLockedBy, v))
}

// LockedByIsNil applies the IsNil predicate on the "locked_by" field.
func LockedByIsNil() predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIsNull(FieldLockedBy))
}

// LockedByNotNil applies the NotNil predicate on the "locked_by" field.
func LockedByNotNil() predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotNull(FieldLockedBy))
}

// LockedByEqualFold applies the EqualFold predicate on the "locked_by" field.
func LockedByEqualFold(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEqualFold(FieldLockedBy, v))
}

// LockedByContainsFold applies the ContainsFold predicate on the "locked_by" field.
func LockedByContainsFold(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContainsFold(FieldLockedBy, v))
}

// LockedAtEQ applies the EQ predicate on the "locked_at" field.
func LockedAtEQ(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldLockedAt, v))
}

// LockedAtNEQ applies the NEQ predicate on the "locked_at" field.
func LockedAtNEQ(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldLockedAt, v))
}

// LockedAtIn applies the In predicate on the "locked_at" field.
func LockedAtIn(vs ...time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldLockedAt, vs...))
}

// LockedAtNotIn applies the NotIn predicate on the "locked_at" field.
func LockedAtNotIn(vs ...time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldLockedAt, vs...))
}

// LockedAtGT applies the GT predicate on the "locked_at" field.
func LockedAtGT(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGT(FieldLockedAt, v))
}

// LockedAtGTE applies the GTE predicate on the "locked_at" field.
func LockedAtGTE(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGTE(FieldLockedAt, v))
}

// LockedAtLT applies the LT predicate on the "locked_at" field.
func LockedAtLT(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLT(FieldLockedAt, v))
}

// LockedAtLTE applies the LTE predicate on the "locked_at" field.
func LockedAtLTE(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLTE(FieldLockedAt, v))
}

// LockedAtIsNil applies the IsNil predicate on the "locked_at" field.
func LockedAtIsNil() predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIsNull(FieldLockedAt))
}

// LockedAtNotNil applies the NotNil predicate on the "locked_at" field.
func LockedAtNotNil() predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotNull(FieldLockedAt))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldContainsFold(FieldLastError, v))
}

// EnqueuedAtEQ applies the EQ predicate on the "enqueued_at" field.
func EnqueuedAtEQ(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldEnqueuedAt, v))
}

// EnqueuedAtNEQ applies the NEQ predicate on the "enqueued_at" field.
func EnqueuedAtNEQ(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldEnqueuedAt, v))
}

// EnqueuedAtIn applies the In predicate on the "enqueued_at" field.
func EnqueuedAtIn(vs ...time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldEnqueuedAt, vs...))
}

// EnqueuedAtNotIn applies the NotIn predicate on the "enqueued_at" field.
func EnqueuedAtNotIn(vs ...time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldEnqueuedAt, vs...))
}

// EnqueuedAtGT applies the GT predicate on the "enqueued_at" field.
func EnqueuedAtGT(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGT(FieldEnqueuedAt, v))
}

// EnqueuedAtGTE applies the GTE predicate on the "enqueued_at" field.
func EnqueuedAtGTE(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGTE(FieldEnqueuedAt, v))
}

// EnqueuedAtLT applies the LT predicate on the "enqueued_at" field.
func EnqueuedAtLT(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLT(FieldEnqueuedAt, v))
}

// EnqueuedAtLTE applies the LTE predicate on the "enqueued_at" field.
func EnqueuedAtLTE(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLTE(FieldEnqueuedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.QueueMessage {
	return predicate.QueueMessage(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QueueMessage) predicate.QueueMessage {
	return predicate.QueueMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QueueMessage) predicate.QueueMessage {
	return predicate.QueueMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QueueMessage) predicate.QueueMessage {
	return predicate.QueueMessage(sql.NotPredicates(p))
}
