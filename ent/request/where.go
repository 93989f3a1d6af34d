// Code generated by ent, DO NOT EDIT.

package request

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/patchwork-dev/patchwork/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldID, id))
}

// Repository applies equality check predicate on the "repository" field. It's identical to RepositoryEQ.
func Repository(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldRepository, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDescription, v))
}

// AgentKind applies equality check predicate on the "agent_kind" field. It's identical to AgentKindEQ.
func AgentKind(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldAgentKind, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldProvider, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldModel, v))
}

// ChatUserID applies equality check predicate on the "chat_user_id" field. It's identical to ChatUserIDEQ.
func ChatUserID(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldChatUserID, v))
}

// ChatChannel applies equality check predicate on the "chat_channel" field. It's identical to ChatChannelEQ.
func ChatChannel(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldChatChannel, v))
}

// ChatThreadKey applies equality check predicate on the "chat_thread_key" field. It's identical to ChatThreadKeyEQ.
func ChatThreadKey(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldChatThreadKey, v))
}

// IssueID applies equality check predicate on the "issue_id" field. It's identical to IssueIDEQ.
func IssueID(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldIssueID, v))
}

// IssueNumber applies equality check predicate on the "issue_number" field. It's identical to IssueNumberEQ.
func IssueNumber(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldIssueNumber, v))
}

// IssueURL applies equality check predicate on the "issue_url" field. It's identical to IssueURLEQ.
func IssueURL(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldIssueURL, v))
}

// PrURL applies equality check predicate on the "pr_url" field. It's identical to PrURLEQ.
func PrURL(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldPrURL, v))
}

// PrNumber applies equality check predicate on the "pr_number" field. It's identical to PrNumberEQ.
func PrNumber(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldPrNumber, v))
}

// PrBranchName applies equality check predicate on the "pr_branch_name" field. It's identical to PrBranchNameEQ.
func PrBranchName(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldPrBranchName, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldRetryCount, v))
}

// CostCents applies equality check predicate on the "cost_cents" field. It's identical to CostCentsEQ.
func CostCents(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldCostCents, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDurationMs, v))
}

// LatestSessionID applies equality check predicate on the "latest_session_id" field. It's identical to LatestSessionIDEQ.
func LatestSessionID(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldLatestSessionID, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldProcessedAt, v))
}

// OriginEQ applies the EQ predicate on the "origin" field.
func OriginEQ(v Origin) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldOrigin, v))
}

// OriginNEQ applies the NEQ predicate on the "origin" field.
func OriginNEQ(v Origin) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldOrigin, v))
}

// OriginIn applies the In predicate on the "origin" field.
func OriginIn(vs ...Origin) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldOrigin, vs...))
}

// OriginNotIn applies the NotIn predicate on the "origin" field.
func OriginNotIn(vs ...Origin) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldOrigin, vs...))
}

// RepositoryEQ applies the EQ predicate on the "repository" field.
func RepositoryEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldRepository, v))
}

// RepositoryNEQ applies the NEQ predicate on the "repository" field.
func RepositoryNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldRepository, v))
}

// RepositoryIn applies the In predicate on the "repository" field.
func RepositoryIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldRepository, vs...))
}

// RepositoryNotIn applies the NotIn predicate on the "repository" field.
func RepositoryNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldRepository, vs...))
}

// RepositoryGT applies the GT predicate on the "repository" field.
func RepositoryGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldRepository, v))
}

// RepositoryGTE applies the GTE predicate on the "repository" field.
func RepositoryGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldRepository, v))
}

// RepositoryLT applies the LT predicate on the "repository" field.
func RepositoryLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldRepository, v))
}

// RepositoryLTE applies the LTE predicate on the "repository" field.
func RepositoryLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldRepository, v))
}

// RepositoryContains applies the Contains predicate on the "repository" field.
func RepositoryContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldRepository, v))
}

// RepositoryHasPrefix applies the HasPrefix predicate on the "repository" field.
func RepositoryHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldRepository, v))
}

// RepositoryHasSuffix applies the HasSuffix predicate on the "repository" field.
func RepositoryHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldRepository, v))
}

// RepositoryEqualFold applies the EqualFold predicate on the "repository" field.
func RepositoryEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldRepository, v))
}

// RepositoryContainsFold applies the ContainsFold predicate on the "repository" field.
func RepositoryContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldRepository, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldDescription, v))
}

// RequestTypeEQ applies the EQ predicate on the "request_type" field.
func RequestTypeEQ(v RequestType) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldRequestType, v))
}

// RequestTypeNEQ applies the NEQ predicate on the "request_type" field.
func RequestTypeNEQ(v RequestType) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldRequestType, v))
}

// RequestTypeIn applies the In predicate on the "request_type" field.
func RequestTypeIn(vs ...RequestType) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldRequestType, vs...))
}

// RequestTypeNotIn applies the NotIn predicate on the "request_type" field.
func RequestTypeNotIn(vs ...RequestType) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldRequestType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldStatus, vs...))
}

// AgentKindEQ applies the EQ predicate on the "agent_kind" field.
func AgentKindEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldAgentKind, v))
}

// AgentKindNEQ applies the NEQ predicate on the "agent_kind" field.
func AgentKindNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldAgentKind, v))
}

// AgentKindIn applies the In predicate on the "agent_kind" field.
func AgentKindIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldAgentKind, vs...))
}

// AgentKindNotIn applies the NotIn predicate on the "agent_kind" field.
func AgentKindNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldAgentKind, vs...))
}

// AgentKindGT applies the GT predicate on the "agent_kind" field.
func AgentKindGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldAgentKind, v))
}

// AgentKindGTE applies the GTE predicate on the "agent_kind" field.
func AgentKindGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldAgentKind, v))
}

// AgentKindLT applies the LT predicate on the "agent_kind" field.
func AgentKindLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldAgentKind, v))
}

// AgentKindLTE applies the LTE predicate on the "agent_kind" field.
func AgentKindLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldAgentKind, v))
}

// AgentKindContains applies the Contains predicate on the "agent_kind" field.
func AgentKindContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldAgentKind, v))
}

// AgentKindHasPrefix applies the HasPrefix predicate on the "agent_kind" field.
func AgentKindHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldAgentKind, v))
}

// AgentKindHasSuffix applies the HasSuffix predicate on the "agent_kind" field.
func AgentKindHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldAgentKind, v))
}

// AgentKindEqualFold applies the EqualFold predicate on the "agent_kind" field.
func AgentKindEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldAgentKind, v))
}

// AgentKindContainsFold applies the ContainsFold predicate on the "agent_kind" field.
func AgentKindContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldAgentKind, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderIsNil applies the IsNil predicate on the "provider" field.
func ProviderIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldProvider))
}

// ProviderNotNil applies the NotNil predicate on the "provider" field.
func ProviderNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldProvider))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldProvider, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldModel, v))
}

// ChatUserIDEQ applies the EQ predicate on the "chat_user_id" field.
func ChatUserIDEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldChatUserID, v))
}

// ChatUserIDNEQ applies the NEQ predicate on the "chat_user_id" field.
func ChatUserIDNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldChatUserID, v))
}

// ChatUserIDIn applies the In predicate on the "chat_user_id" field.
func ChatUserIDIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldChatUserID, vs...))
}

// ChatUserIDNotIn applies the NotIn predicate on the "chat_user_id" field.
func ChatUserIDNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldChatUserID, vs...))
}

// ChatUserIDGT applies the GT predicate on the "chat_user_id" field.
func ChatUserIDGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldChatUserID, v))
}

// ChatUserIDGTE applies the GTE predicate on the "chat_user_id" field.
func ChatUserIDGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldChatUserID, v))
}

// ChatUserIDLT applies the LT predicate on the "chat_user_id" field.
func ChatUserIDLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldChatUserID, v))
}

// ChatUserIDLTE applies the LTE predicate on the "chat_user_id" field.
func ChatUserIDLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldChatUserID, v))
}

// ChatUserIDContains applies the Contains predicate on the "chat_user_id" field.
func ChatUserIDContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldChatUserID, v))
}

// ChatUserIDHasPrefix applies the HasPrefix predicate on the "chat_user_id" field.
func ChatUserIDHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldChatUserID, v))
}

// ChatUserIDHasSuffix applies the HasSuffix predicate on the "chat_user_id" field.
func ChatUserIDHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldChatUserID, v))
}

// ChatUserIDIsNil applies the IsNil predicate on the "chat_user_id" field.
func ChatUserIDIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldChatUserID))
}

// ChatUserIDNotNil applies the NotNil predicate on the "chat_user_id" field.
func ChatUserIDNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldChatUserID))
}

// ChatUserIDEqualFold applies the EqualFold predicate on the "chat_user_id" field.
func ChatUserIDEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldChatUserID, v))
}

// ChatUserIDContainsFold applies the ContainsFold predicate on the "chat_user_id" field.
func ChatUserIDContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldChatUserID, v))
}

// ChatChannelEQ applies the EQ predicate on the "chat_channel" field.
func ChatChannelEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldChatChannel, v))
}

// ChatChannelNEQ applies the NEQ predicate on the "chat_channel" field.
func ChatChannelNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldChatChannel, v))
}

// ChatChannelIn applies the In predicate on the "chat_channel" field.
func ChatChannelIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldChatChannel, vs...))
}

// ChatChannelNotIn applies the NotIn predicate on the "chat_channel" field.
func ChatChannelNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldChatChannel, vs...))
}

// ChatChannelGT applies the GT predicate on the "chat_channel" field.
func ChatChannelGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldChatChannel, v))
}

// ChatChannelGTE applies the GTE predicate on the "chat_channel" field.
func ChatChannelGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldChatChannel, v))
}

// ChatChannelLT applies the LT predicate on the "chat_channel" field.
func ChatChannelLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldChatChannel, v))
}

// ChatChannelLTE applies the LTE predicate on the "chat_channel" field.
func ChatChannelLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldChatChannel, v))
}

// ChatChannelContains applies the Contains predicate on the "chat_channel" field.
func ChatChannelContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldChatChannel, v))
}

// ChatChannelHasPrefix applies the HasPrefix predicate on the "chat_channel" field.
func ChatChannelHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldChatChannel, v))
}

// ChatChannelHasSuffix applies the HasSuffix predicate on the "chat_channel" field.
func ChatChannelHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldChatChannel, v))
}

// ChatChannelIsNil applies the IsNil predicate on the "chat_channel" field.
func ChatChannelIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldChatChannel))
}

// ChatChannelNotNil applies the NotNil predicate on the "chat_channel" field.
func ChatChannelNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldChatChannel))
}

// ChatChannelEqualFold applies the EqualFold predicate on the "chat_channel" field.
func ChatChannelEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldChatChannel, v))
}

// ChatChannelContainsFold applies the ContainsFold predicate on the "chat_channel" field.
func ChatChannelContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldChatChannel, v))
}

// ChatThreadKeyEQ applies the EQ predicate on the "chat_thread_key" field.
func ChatThreadKeyEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldChatThreadKey, v))
}

// ChatThreadKeyNEQ applies the NEQ predicate on the "chat_thread_key" field.
func ChatThreadKeyNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldChatThreadKey, v))
}

// ChatThreadKeyIn applies the In predicate on the "chat_thread_key" field.
func ChatThreadKeyIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldChatThreadKey, vs...))
}

// ChatThreadKeyNotIn applies the NotIn predicate on the "chat_thread_key" field.
func ChatThreadKeyNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldChatThreadKey, vs...))
}

// ChatThreadKeyGT applies the GT predicate on the "chat_thread_key" field.
func ChatThreadKeyGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldChatThreadKey, v))
}

// ChatThreadKeyGTE applies the GTE predicate on the "chat_thread_key" field.
func ChatThreadKeyGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldChatThreadKey, v))
}

// ChatThreadKeyLT applies the LT predicate on the "chat_thread_key" field.
func ChatThreadKeyLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldChatThreadKey, v))
}

// ChatThreadKeyLTE applies the LTE predicate on the "chat_thread_key" field.
func ChatThreadKeyLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldChatThreadKey, v))
}

// ChatThreadKeyContains applies the Contains predicate on the "chat_thread_key" field.
func ChatThreadKeyContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldChatThreadKey, v))
}

// ChatThreadKeyHasPrefix applies the HasPrefix predicate on the "chat_thread_key" field.
func ChatThreadKeyHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldChatThreadKey, v))
}

// ChatThreadKeyHasSuffix applies the HasSuffix predicate on the "chat_thread_key" field.
func ChatThreadKeyHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldChatThreadKey, v))
}

// ChatThreadKeyIsNil applies the IsNil predicate on the "chat_thread_key" field.
func ChatThreadKeyIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldChatThreadKey))
}

// ChatThreadKeyNotNil applies the NotNil predicate on the "chat_thread_key" field.
func ChatThreadKeyNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldChatThreadKey))
}

// ChatThreadKeyEqualFold applies the EqualFold predicate on the "chat_thread_key" field.
func ChatThreadKeyEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldChatThreadKey, v))
}

// ChatThreadKeyContainsFold applies the ContainsFold predicate on the "chat_thread_key" field.
func ChatThreadKeyContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldChatThreadKey, v))
}

// IssueIDEQ applies the EQ predicate on the "issue_id" field.
func IssueIDEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldIssueID, v))
}

// IssueIDNEQ applies the NEQ predicate on the "issue_id" field.
func IssueIDNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldIssueID, v))
}

// IssueIDIn applies the In predicate on the "issue_id" field.
func IssueIDIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldIssueID, vs...))
}

// IssueIDNotIn applies the NotIn predicate on the "issue_id" field.
func IssueIDNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldIssueID, vs...))
}

// IssueIDGT applies the GT predicate on the "issue_id" field.
func IssueIDGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldIssueID, v))
}

// IssueIDGTE applies the GTE predicate on the "issue_id" field.
func IssueIDGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldIssueID, v))
}

// IssueIDLT applies the LT predicate on the "issue_id" field.
func IssueIDLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldIssueID, v))
}

// IssueIDLTE applies the LTE predicate on the "issue_id" field.
func IssueIDLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldIssueID, v))
}

// IssueIDContains applies the Contains predicate on the "issue_id" field.
func IssueIDContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldIssueID, v))
}

// IssueIDHasPrefix applies the HasPrefix predicate on the "issue_id" field.
func IssueIDHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldIssueID, v))
}

// IssueIDHasSuffix applies the HasSuffix predicate on the "issue_id" field.
func IssueIDHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldIssueID, v))
}

// IssueIDIsNil applies the IsNil predicate on the "issue_id" field.
func IssueIDIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldIssueID))
}

// IssueIDNotNil applies the NotNil predicate on the "issue_id" field.
func IssueIDNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldIssueID))
}

// IssueIDEqualFold applies the EqualFold predicate on the "issue_id" field.
func IssueIDEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldIssueID, v))
}

// IssueIDContainsFold applies the ContainsFold predicate on the "issue_id" field.
func IssueIDContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldIssueID, v))
}

// IssueNumberEQ applies the EQ predicate on the "issue_number" field.
func IssueNumberEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldIssueNumber, v))
}

// IssueNumberNEQ applies the NEQ predicate on the "issue_number" field.
func IssueNumberNEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldIssueNumber, v))
}

// IssueNumberIn applies the In predicate on the "issue_number" field.
func IssueNumberIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldIssueNumber, vs...))
}

// IssueNumberNotIn applies the NotIn predicate on the "issue_number" field.
func IssueNumberNotIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldIssueNumber, vs...))
}

// IssueNumberGT applies the GT predicate on the "issue_number" field.
func IssueNumberGT(v int) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldIssueNumber, v))
}

// IssueNumberGTE applies the GTE predicate on the "issue_number" field.
func IssueNumberGTE(v int) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldIssueNumber, v))
}

// IssueNumberLT applies the LT predicate on the "issue_number" field.
func IssueNumberLT(v int) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldIssueNumber, v))
}

// IssueNumberLTE applies the LTE predicate on the "issue_number" field.
func IssueNumberLTE(v int) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldIssueNumber, v))
}

// IssueNumberIsNil applies the IsNil predicate on the "issue_number" field.
func IssueNumberIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldIssueNumber))
}

// IssueNumberNotNil applies the NotNil predicate on the "issue_number" field.
func IssueNumberNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldIssueNumber))
}

// IssueURLEQ applies the EQ predicate on the "issue_url" field.
func IssueURLEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldIssueURL, v))
}

// IssueURLNEQ applies the NEQ predicate on the "issue_url" field.
func IssueURLNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldIssueURL, v))
}

// IssueURLIn applies the In predicate on the "issue_url" field.
func IssueURLIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldIssueURL, vs...))
}

// IssueURLNotIn applies the NotIn predicate on the "issue_url" field.
func IssueURLNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldIssueURL, vs...))
}

// IssueURLGT applies the GT predicate on the "issue_url" field.
func IssueURLGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldIssueURL, v))
}

// IssueURLGTE applies the GTE predicate on the "issue_url" field.
func IssueURLGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldIssueURL, v))
}

// IssueURLLT applies the LT predicate on the "issue_url" field.
func IssueURLLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldIssueURL, v))
}

// IssueURLLTE applies the LTE predicate on the "issue_url" field.
func IssueURLLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldIssueURL, v))
}

// IssueURLContains applies the Contains predicate on the "issue_url" field.
func IssueURLContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldIssueURL, v))
}

// IssueURLHasPrefix applies the HasPrefix predicate on the "issue_url" field.
func IssueURLHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldIssueURL, v))
}

// IssueURLHasSuffix applies the HasSuffix predicate on the "issue_url" field.
func IssueURLHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldIssueURL, v))
}

// IssueURLIsNil applies the IsNil predicate on the "issue_url" field.
func IssueURLIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldIssueURL))
}

// IssueURLNotNil applies the NotNil predicate on the "issue_url" field.
func IssueURLNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldIssueURL))
}

// IssueURLEqualFold applies the EqualFold predicate on the "issue_url" field.
func IssueURLEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldIssueURL, v))
}

// IssueURLContainsFold applies the ContainsFold predicate on the "issue_url" field.
func IssueURLContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldIssueURL, v))
}

// PrURLEQ applies the EQ predicate on the "pr_url" field.
func PrURLEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldPrURL, v))
}

// PrURLNEQ applies the NEQ predicate on the "pr_url" field.
func PrURLNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldPrURL, v))
}

// PrURLIn applies the In predicate on the "pr_url" field.
func PrURLIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldPrURL, vs...))
}

// PrURLNotIn applies the NotIn predicate on the "pr_url" field.
func PrURLNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldPrURL, vs...))
}

// PrURLGT applies the GT predicate on the "pr_url" field.
func PrURLGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldPrURL, v))
}

// PrURLGTE applies the GTE predicate on the "pr_url" field.
func PrURLGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldPrURL, v))
}

// PrURLLT applies the LT predicate on the "pr_url" field.
func PrURLLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldPrURL, v))
}

// PrURLLTE applies the LTE predicate on the "pr_url" field.
func PrURLLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldPrURL, v))
}

// PrURLContains applies the Contains predicate on the "pr_url" field.
func PrURLContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldPrURL, v))
}

// PrURLHasPrefix applies the HasPrefix predicate on the "pr_url" field.
func PrURLHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldPrURL, v))
}

// PrURLHasSuffix applies the HasSuffix predicate on the "pr_url" field.
func PrURLHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldPrURL, v))
}

// PrURLIsNil applies the IsNil predicate on the "pr_url" field.
func PrURLIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldPrURL))
}

// PrURLNotNil applies the NotNil predicate on the "pr_url" field.
func PrURLNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldPrURL))
}

// PrURLEqualFold applies the EqualFold predicate on the "pr_url" field.
func PrURLEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldPrURL, v))
}

// PrURLContainsFold applies the ContainsFold predicate on the "pr_url" field.
func PrURLContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldPrURL, v))
}

// PrNumberEQ applies the EQ predicate on the "pr_number" field.
func PrNumberEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldPrNumber, v))
}

// PrNumberNEQ applies the NEQ predicate on the "pr_number" field.
func PrNumberNEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldPrNumber, v))
}

// PrNumberIn applies the In predicate on the "pr_number" field.
func PrNumberIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldPrNumber, vs...))
}

// PrNumberNotIn applies the NotIn predicate on the "pr_number" field.
func PrNumberNotIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldPrNumber, vs...))
}

// PrNumberGT applies the GT predicate on the "pr_number" field.
func PrNumberGT(v int) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldPrNumber, v))
}

// PrNumberGTE applies the GTE predicate on the "pr_number" field.
func PrNumberGTE(v int) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldPrNumber, v))
}

// PrNumberLT applies the LT predicate on the "pr_number" field.
func PrNumberLT(v int) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldPrNumber, v))
}

// PrNumberLTE applies the LTE predicate on the "pr_number" field.
func PrNumberLTE(v int) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldPrNumber, v))
}

// PrNumberIsNil applies the IsNil predicate on the "pr_number" field.
func PrNumberIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldPrNumber))
}

// PrNumberNotNil applies the NotNil predicate on the "pr_number" field.
func PrNumberNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldPrNumber))
}

// PrBranchNameEQ applies the EQ predicate on the "pr_branch_name" field.
func PrBranchNameEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldPrBranchName, v))
}

// PrBranchNameNEQ applies the NEQ predicate on the "pr_branch_name" field.
func PrBranchNameNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldPrBranchName, v))
}

// PrBranchNameIn applies the In predicate on the "pr_branch_name" field.
func PrBranchNameIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldPrBranchName, vs...))
}

// PrBranchNameNotIn applies the NotIn predicate on the "pr_branch_name" field.
func PrBranchNameNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldPrBranchName, vs...))
}

// PrBranchNameGT applies the GT predicate on the "pr_branch_name" field.
func PrBranchNameGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldPrBranchName, v))
}

// PrBranchNameGTE applies the GTE predicate on the "pr_branch_name" field.
func PrBranchNameGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldPrBranchName, v))
}

// PrBranchNameLT applies the LT predicate on the "pr_branch_name" field.
func PrBranchNameLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldPrBranchName, v))
}

// PrBranchNameLTE applies the LTE predicate on the "pr_branch_name" field.
func PrBranchNameLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldPrBranchName, v))
}

// PrBranchNameContains applies the Contains predicate on the "pr_branch_name" field.
func PrBranchNameContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldPrBranchName, v))
}

// PrBranchNameHasPrefix applies the HasPrefix predicate on the "pr_branch_name" field.
func PrBranchNameHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldPrBranchName, v))
}

// PrBranchNameHasSuffix applies the HasSuffix predicate on the "pr_branch_name" field.
func PrBranchNameHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldPrBranchName, v))
}

// PrBranchNameIsNil applies the IsNil predicate on the "pr_branch_name" field.
func PrBranchNameIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldPrBranchName))
}

// PrBranchNameNotNil applies the NotNil predicate on the "pr_branch_name" field.
func PrBranchNameNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldPrBranchName))
}

// PrBranchNameEqualFold applies the EqualFold predicate on the "pr_branch_name" field.
func PrBranchNameEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldPrBranchName, v))
}

// PrBranchNameContainsFold applies the ContainsFold predicate on the "pr_branch_name" field.
func PrBranchNameContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldPrBranchName, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldRetryCount, v))
}

// CostCentsEQ applies the EQ predicate on the "cost_cents" field.
func CostCentsEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldCostCents, v))
}

// CostCentsNEQ applies the NEQ predicate on the "cost_cents" field.
func CostCentsNEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldCostCents, v))
}

// CostCentsIn applies the In predicate on the "cost_cents" field.
func CostCentsIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldCostCents, vs...))
}

// CostCentsNotIn applies the NotIn predicate on the "cost_cents" field.
func CostCentsNotIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldCostCents, vs...))
}

// CostCentsGT applies the GT predicate on the "cost_cents" field.
func CostCentsGT(v int) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldCostCents, v))
}

// CostCentsGTE applies the GTE predicate on the "cost_cents" field.
func CostCentsGTE(v int) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldCostCents, v))
}

// CostCentsLT applies the LT predicate on the "cost_cents" field.
func CostCentsLT(v int) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldCostCents, v))
}

// CostCentsLTE applies the LTE predicate on the "cost_cents" field.
func CostCentsLTE(v int) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldCostCents, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldDurationMs, v))
}

// LatestSessionIDEQ applies the EQ predicate on the "latest_session_id" field.
func LatestSessionIDEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldLatestSessionID, v))
}

// LatestSessionIDNEQ applies the NEQ predicate on the "latest_session_id" field.
func LatestSessionIDNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldLatestSessionID, v))
}

// LatestSessionIDIn applies the In predicate on the "latest_session_id" field.
func LatestSessionIDIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldLatestSessionID, vs...))
}

// LatestSessionIDNotIn applies the NotIn predicate on the "latest_session_id" field.
func LatestSessionIDNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldLatestSessionID, vs...))
}

// LatestSessionIDGT applies the GT predicate on the "latest_session_id" field.
func LatestSessionIDGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldLatestSessionID, v))
}

// LatestSessionIDGTE applies the GTE predicate on the "latest_session_id" field.
func LatestSessionIDGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldLatestSessionID, v))
}

// LatestSessionIDLT applies the LT predicate on the "latest_session_id" field.
func LatestSessionIDLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldLatestSessionID, v))
}

// LatestSessionIDLTE applies the LTE predicate on the "latest_session_id" field.
func LatestSessionIDLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldLatestSessionID, v))
}

// LatestSessionIDContains applies the Contains predicate on the "latest_session_id" field.
func LatestSessionIDContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldLatestSessionID, v))
}

// LatestSessionIDHasPrefix applies the HasPrefix predicate on the "latest_session_id" field.
func LatestSessionIDHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldLatestSessionID, v))
}

// LatestSessionIDHasSuffix applies the HasSuffix predicate on the "latest_session_id" field.
func LatestSessionIDHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldLatestSessionID, v))
}

// LatestSessionIDIsNil applies the IsNil predicate on the "latest_session_id" field.
func LatestSessionIDIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldLatestSessionID))
}

// LatestSessionIDNotNil applies the NotNil predicate on the "latest_session_id" field.
func LatestSessionIDNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldLatestSessionID))
}

// LatestSessionIDEqualFold applies the EqualFold predicate on the "latest_session_id" field.
func LatestSessionIDEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldLatestSessionID, v))
}

// LatestSessionIDContainsFold applies the ContainsFold predicate on the "latest_session_id" field.
func LatestSessionIDContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldLatestSessionID, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldUpdatedAt, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldProcessedAt, v))
}

// ProcessedAtIsNil applies the IsNil predicate on the "processed_at" field.
func ProcessedAtIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldProcessedAt))
}

// ProcessedAtNotNil applies the NotNil predicate on the "processed_at" field.
func ProcessedAtNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldProcessedAt))
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.Message) predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgentSessions applies the HasEdge predicate on the "agent_sessions" edge.
func HasAgentSessions() predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AgentSessionsTable, AgentSessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentSessionsWith applies the HasEdge predicate on the "agent_sessions" edge with a given conditions (other predicates).
func HasAgentSessionsWith(preds ...predicate.AgentSession) predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := newAgentSessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Request) predicate.Request {
	return predicate.Request(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Request) predicate.Request {
	return predicate.Request(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Request) predicate.Request {
	return predicate.Request(sql.NotPredicates(p))
}
