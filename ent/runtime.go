// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/patchwork-dev/patchwork/ent/agentsession"
	"github.com/patchwork-dev/patchwork/ent/configentry"
	"github.com/patchwork-dev/patchwork/ent/message"
	"github.com/patchwork-dev/patchwork/ent/queuemessage"
	"github.com/patchwork-dev/patchwork/ent/request"
	"github.com/patchwork-dev/patchwork/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentsessionFields := schema.AgentSession{}.Fields()
	_ = agentsessionFields
	// agentsessionDescUncompressedSize is the schema descriptor for uncompressed_size field.
	agentsessionDescUncompressedSize := agentsessionFields[5].Descriptor()
	// agentsession.DefaultUncompressedSize holds the default value on creation for the uncompressed_size field.
	agentsession.DefaultUncompressedSize = agentsessionDescUncompressedSize.Default.(int)
	// agentsessionDescCreatedAt is the schema descriptor for created_at field.
	agentsessionDescCreatedAt := agentsessionFields[6].Descriptor()
	// agentsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentsession.DefaultCreatedAt = agentsessionDescCreatedAt.Default.(func() time.Time)
	configentryFields := schema.ConfigEntry{}.Fields()
	_ = configentryFields
	// configentryDescCreatedAt is the schema descriptor for created_at field.
	configentryDescCreatedAt := configentryFields[3].Descriptor()
	// configentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	configentry.DefaultCreatedAt = configentryDescCreatedAt.Default.(func() time.Time)
	// configentryDescUpdatedAt is the schema descriptor for updated_at field.
	configentryDescUpdatedAt := configentryFields[4].Descriptor()
	// configentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	configentry.DefaultUpdatedAt = configentryDescUpdatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[8].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	queuemessageFields := schema.QueueMessage{}.Fields()
	_ = queuemessageFields
	// queuemessageDescAttempts is the schema descriptor for attempts field.
	queuemessageDescAttempts := queuemessageFields[7].Descriptor()
	// queuemessage.DefaultAttempts holds the default value on creation for the attempts field.
	queuemessage.DefaultAttempts = queuemessageDescAttempts.Default.(int)
	// queuemessageDescAvailableAt is the schema descriptor for available_at field.
	queuemessageDescAvailableAt := queuemessageFields[8].Descriptor()
	// queuemessage.DefaultAvailableAt holds the default value on creation for the available_at field.
	queuemessage.DefaultAvailableAt = queuemessageDescAvailableAt.Default.(func() time.Time)
	// queuemessageDescEnqueuedAt is the schema descriptor for enqueued_at field.
	queuemessageDescEnqueuedAt := queuemessageFields[13].Descriptor()
	// queuemessage.DefaultEnqueuedAt holds the default value on creation for the enqueued_at field.
	queuemessage.DefaultEnqueuedAt = queuemessageDescEnqueuedAt.Default.(func() time.Time)
	requestFields := schema.Request{}.Fields()
	_ = requestFields
	// requestDescRetryCount is the schema descriptor for retry_count field.
	requestDescRetryCount := requestFields[19].Descriptor()
	// request.DefaultRetryCount holds the default value on creation for the retry_count field.
	request.DefaultRetryCount = requestDescRetryCount.Default.(int)
	// requestDescCostCents is the schema descriptor for cost_cents field.
	requestDescCostCents := requestFields[20].Descriptor()
	// request.DefaultCostCents holds the default value on creation for the cost_cents field.
	request.DefaultCostCents = requestDescCostCents.Default.(int)
	// requestDescDurationMs is the schema descriptor for duration_ms field.
	requestDescDurationMs := requestFields[21].Descriptor()
	// request.DefaultDurationMs holds the default value on creation for the duration_ms field.
	request.DefaultDurationMs = requestDescDurationMs.Default.(int)
	// requestDescCreatedAt is the schema descriptor for created_at field.
	requestDescCreatedAt := requestFields[24].Descriptor()
	// request.DefaultCreatedAt holds the default value on creation for the created_at field.
	request.DefaultCreatedAt = requestDescCreatedAt.Default.(func() time.Time)
	// requestDescUpdatedAt is the schema descriptor for updated_at field.
	requestDescUpdatedAt := requestFields[25].Descriptor()
	// request.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	request.DefaultUpdatedAt = requestDescUpdatedAt.Default.(func() time.Time)
}
