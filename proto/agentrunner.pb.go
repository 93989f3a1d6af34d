// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: agentrunner.proto

package agentrunnerv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type RunRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	RequestId  string                 `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	Repository string                 `protobuf:"bytes,2,opt,name=repository,proto3" json:"repository,omitempty"`
	WorkDir    string                 `protobuf:"bytes,3,opt,name=work_dir,json=workDir,proto3" json:"work_dir,omitempty"`
	Branch     string                 `protobuf:"bytes,4,opt,name=branch,proto3" json:"branch,omitempty"`
	Prompt     string                 `protobuf:"bytes,5,opt,name=prompt,proto3" json:"prompt,omitempty"`
	// Session resumption: both set, or both empty with replay populated.
	ResumeSessionId string           `protobuf:"bytes,6,opt,name=resume_session_id,json=resumeSessionId,proto3" json:"resume_session_id,omitempty"`
	SessionBlob     []byte           `protobuf:"bytes,7,opt,name=session_blob,json=sessionBlob,proto3" json:"session_blob,omitempty"`
	Replay          []*ReplayMessage `protobuf:"bytes,8,rep,name=replay,proto3" json:"replay,omitempty"`
	Provider        string           `protobuf:"bytes,9,opt,name=provider,proto3" json:"provider,omitempty"`
	Model           string           `protobuf:"bytes,10,opt,name=model,proto3" json:"model,omitempty"`
	ApiKey          string           `protobuf:"bytes,11,opt,name=api_key,json=apiKey,proto3" json:"api_key,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *RunRequest) Reset() {
	*x = RunRequest{}
	mi := &file_agentrunner_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunRequest) ProtoMessage() {}

func (x *RunRequest) ProtoReflect() protoreflect.Message {
	mi := &file_agentrunner_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunRequest.ProtoReflect.Descriptor instead.
func (*RunRequest) Descriptor() ([]byte, []int) {
	return file_agentrunner_proto_rawDescGZIP(), []int{0}
}

func (x *RunRequest) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *RunRequest) GetRepository() string {
	if x != nil {
		return x.Repository
	}
	return ""
}

func (x *RunRequest) GetWorkDir() string {
	if x != nil {
		return x.WorkDir
	}
	return ""
}

func (x *RunRequest) GetBranch() string {
	if x != nil {
		return x.Branch
	}
	return ""
}

func (x *RunRequest) GetPrompt() string {
	if x != nil {
		return x.Prompt
	}
	return ""
}

func (x *RunRequest) GetResumeSessionId() string {
	if x != nil {
		return x.ResumeSessionId
	}
	return ""
}

func (x *RunRequest) GetSessionBlob() []byte {
	if x != nil {
		return x.SessionBlob
	}
	return nil
}

func (x *RunRequest) GetReplay() []*ReplayMessage {
	if x != nil {
		return x.Replay
	}
	return nil
}

func (x *RunRequest) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

func (x *RunRequest) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

func (x *RunRequest) GetApiKey() string {
	if x != nil {
		return x.ApiKey
	}
	return ""
}

type ReplayMessage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Role          string                 `protobuf:"bytes,1,opt,name=role,proto3" json:"role,omitempty"`
	Content       string                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReplayMessage) Reset() {
	*x = ReplayMessage{}
	mi := &file_agentrunner_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReplayMessage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReplayMessage) ProtoMessage() {}

func (x *ReplayMessage) ProtoReflect() protoreflect.Message {
	mi := &file_agentrunner_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReplayMessage.ProtoReflect.Descriptor instead.
func (*ReplayMessage) Descriptor() ([]byte, []int) {
	return file_agentrunner_proto_rawDescGZIP(), []int{1}
}

func (x *ReplayMessage) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *ReplayMessage) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

type RunEvent struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	TurnId      string                 `protobuf:"bytes,1,opt,name=turn_id,json=turnId,proto3" json:"turn_id,omitempty"`
	TimestampMs int64                  `protobuf:"varint,2,opt,name=timestamp_ms,json=timestampMs,proto3" json:"timestamp_ms,omitempty"`
	// Types that are valid to be assigned to Payload:
	//
	//	*RunEvent_Started
	//	*RunEvent_Thinking
	//	*RunEvent_ToolCall
	//	*RunEvent_ToolResult
	//	*RunEvent_FileChange
	//	*RunEvent_Usage
	//	*RunEvent_Error
	//	*RunEvent_Completed
	Payload       isRunEvent_Payload `protobuf_oneof:"payload"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunEvent) Reset() {
	*x = RunEvent{}
	mi := &file_agentrunner_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunEvent) ProtoMessage() {}

func (x *RunEvent) ProtoReflect() protoreflect.Message {
	mi := &file_agentrunner_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunEvent.ProtoReflect.Descriptor instead.
func (*RunEvent) Descriptor() ([]byte, []int) {
	return file_agentrunner_proto_rawDescGZIP(), []int{2}
}

func (x *RunEvent) GetTurnId() string {
	if x != nil {
		return x.TurnId
	}
	return ""
}

func (x *RunEvent) GetTimestampMs() int64 {
	if x != nil {
		return x.TimestampMs
	}
	return 0
}

func (x *RunEvent) GetPayload() isRunEvent_Payload {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *RunEvent) GetStarted() *Started {
	if x != nil {
		if x, ok := x.Payload.(*RunEvent_Started); ok {
			return x.Started
		}
	}
	return nil
}

func (x *RunEvent) GetThinking() *Thinking {
	if x != nil {
		if x, ok := x.Payload.(*RunEvent_Thinking); ok {
			return x.Thinking
		}
	}
	return nil
}

func (x *RunEvent) GetToolCall() *ToolCall {
	if x != nil {
		if x, ok := x.Payload.(*RunEvent_ToolCall); ok {
			return x.ToolCall
		}
	}
	return nil
}

func (x *RunEvent) GetToolResult() *ToolResult {
	if x != nil {
		if x, ok := x.Payload.(*RunEvent_ToolResult); ok {
			return x.ToolResult
		}
	}
	return nil
}

func (x *RunEvent) GetFileChange() *FileChange {
	if x != nil {
		if x, ok := x.Payload.(*RunEvent_FileChange); ok {
			return x.FileChange
		}
	}
	return nil
}

func (x *RunEvent) GetUsage() *Usage {
	if x != nil {
		if x, ok := x.Payload.(*RunEvent_Usage); ok {
			return x.Usage
		}
	}
	return nil
}

func (x *RunEvent) GetError() *Error {
	if x != nil {
		if x, ok := x.Payload.(*RunEvent_Error); ok {
			return x.Error
		}
	}
	return nil
}

func (x *RunEvent) GetCompleted() *Completed {
	if x != nil {
		if x, ok := x.Payload.(*RunEvent_Completed); ok {
			return x.Completed
		}
	}
	return nil
}

type isRunEvent_Payload interface {
	isRunEvent_Payload()
}

type RunEvent_Started struct {
	Started *Started `protobuf:"bytes,10,opt,name=started,proto3,oneof"`
}

type RunEvent_Thinking struct {
	Thinking *Thinking `protobuf:"bytes,11,opt,name=thinking,proto3,oneof"`
}

type RunEvent_ToolCall struct {
	ToolCall *ToolCall `protobuf:"bytes,12,opt,name=tool_call,json=toolCall,proto3,oneof"`
}

type RunEvent_ToolResult struct {
	ToolResult *ToolResult `protobuf:"bytes,13,opt,name=tool_result,json=toolResult,proto3,oneof"`
}

type RunEvent_FileChange struct {
	FileChange *FileChange `protobuf:"bytes,14,opt,name=file_change,json=fileChange,proto3,oneof"`
}

type RunEvent_Usage struct {
	Usage *Usage `protobuf:"bytes,15,opt,name=usage,proto3,oneof"`
}

type RunEvent_Error struct {
	Error *Error `protobuf:"bytes,16,opt,name=error,proto3,oneof"`
}

type RunEvent_Completed struct {
	Completed *Completed `protobuf:"bytes,17,opt,name=completed,proto3,oneof"`
}

func (*RunEvent_Started) isRunEvent_Payload() {}

func (*RunEvent_Thinking) isRunEvent_Payload() {}

func (*RunEvent_ToolCall) isRunEvent_Payload() {}

func (*RunEvent_ToolResult) isRunEvent_Payload() {}

func (*RunEvent_FileChange) isRunEvent_Payload() {}

func (*RunEvent_Usage) isRunEvent_Payload() {}

func (*RunEvent_Error) isRunEvent_Payload() {}

func (*RunEvent_Completed) isRunEvent_Payload() {}

type Started struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Started) Reset() {
	*x = Started{}
	mi := &file_agentrunner_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Started) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Started) ProtoMessage() {}

func (x *Started) ProtoReflect() protoreflect.Message {
	mi := &file_agentrunner_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Started.ProtoReflect.Descriptor instead.
func (*Started) Descriptor() ([]byte, []int) {
	return file_agentrunner_proto_rawDescGZIP(), []int{3}
}

func (x *Started) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type Thinking struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       string                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Thinking) Reset() {
	*x = Thinking{}
	mi := &file_agentrunner_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Thinking) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Thinking) ProtoMessage() {}

func (x *Thinking) ProtoReflect() protoreflect.Message {
	mi := &file_agentrunner_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Thinking.ProtoReflect.Descriptor instead.
func (*Thinking) Descriptor() ([]byte, []int) {
	return file_agentrunner_proto_rawDescGZIP(), []int{4}
}

func (x *Thinking) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

type ToolCall struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Arguments     string                 `protobuf:"bytes,2,opt,name=arguments,proto3" json:"arguments,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ToolCall) Reset() {
	*x = ToolCall{}
	mi := &file_agentrunner_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ToolCall) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ToolCall) ProtoMessage() {}

func (x *ToolCall) ProtoReflect() protoreflect.Message {
	mi := &file_agentrunner_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ToolCall.ProtoReflect.Descriptor instead.
func (*ToolCall) Descriptor() ([]byte, []int) {
	return file_agentrunner_proto_rawDescGZIP(), []int{5}
}

func (x *ToolCall) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ToolCall) GetArguments() string {
	if x != nil {
		return x.Arguments
	}
	return ""
}

type ToolResult struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ToolName      string                 `protobuf:"bytes,1,opt,name=tool_name,json=toolName,proto3" json:"tool_name,omitempty"`
	Content       string                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	IsError       bool                   `protobuf:"varint,3,opt,name=is_error,json=isError,proto3" json:"is_error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ToolResult) Reset() {
	*x = ToolResult{}
	mi := &file_agentrunner_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ToolResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ToolResult) ProtoMessage() {}

func (x *ToolResult) ProtoReflect() protoreflect.Message {
	mi := &file_agentrunner_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ToolResult.ProtoReflect.Descriptor instead.
func (*ToolResult) Descriptor() ([]byte, []int) {
	return file_agentrunner_proto_rawDescGZIP(), []int{6}
}

func (x *ToolResult) GetToolName() string {
	if x != nil {
		return x.ToolName
	}
	return ""
}

func (x *ToolResult) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *ToolResult) GetIsError() bool {
	if x != nil {
		return x.IsError
	}
	return false
}

type FileChange struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	ChangeType    string                 `protobuf:"bytes,2,opt,name=change_type,json=changeType,proto3" json:"change_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FileChange) Reset() {
	*x = FileChange{}
	mi := &file_agentrunner_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FileChange) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FileChange) ProtoMessage() {}

func (x *FileChange) ProtoReflect() protoreflect.Message {
	mi := &file_agentrunner_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FileChange.ProtoReflect.Descriptor instead.
func (*FileChange) Descriptor() ([]byte, []int) {
	return file_agentrunner_proto_rawDescGZIP(), []int{7}
}

func (x *FileChange) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *FileChange) GetChangeType() string {
	if x != nil {
		return x.ChangeType
	}
	return ""
}

type Usage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InputTokens   int32                  `protobuf:"varint,1,opt,name=input_tokens,json=inputTokens,proto3" json:"input_tokens,omitempty"`
	OutputTokens  int32                  `protobuf:"varint,2,opt,name=output_tokens,json=outputTokens,proto3" json:"output_tokens,omitempty"`
	CostCents     int32                  `protobuf:"varint,3,opt,name=cost_cents,json=costCents,proto3" json:"cost_cents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Usage) Reset() {
	*x = Usage{}
	mi := &file_agentrunner_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Usage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Usage) ProtoMessage() {}

func (x *Usage) ProtoReflect() protoreflect.Message {
	mi := &file_agentrunner_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Usage.ProtoReflect.Descriptor instead.
func (*Usage) Descriptor() ([]byte, []int) {
	return file_agentrunner_proto_rawDescGZIP(), []int{8}
}

func (x *Usage) GetInputTokens() int32 {
	if x != nil {
		return x.InputTokens
	}
	return 0
}

func (x *Usage) GetOutputTokens() int32 {
	if x != nil {
		return x.OutputTokens
	}
	return 0
}

func (x *Usage) GetCostCents() int32 {
	if x != nil {
		return x.CostCents
	}
	return 0
}

type Error struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Message       string                 `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
	Code          string                 `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
	Retryable     bool                   `protobuf:"varint,3,opt,name=retryable,proto3" json:"retryable,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Error) Reset() {
	*x = Error{}
	mi := &file_agentrunner_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Error) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Error) ProtoMessage() {}

func (x *Error) ProtoReflect() protoreflect.Message {
	mi := &file_agentrunner_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Error.ProtoReflect.Descriptor instead.
func (*Error) Descriptor() ([]byte, []int) {
	return file_agentrunner_proto_rawDescGZIP(), []int{9}
}

func (x *Error) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *Error) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *Error) GetRetryable() bool {
	if x != nil {
		return x.Retryable
	}
	return false
}

// Completed terminates the stream with the run's final outcome.
type Completed struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Success          bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Output           string                 `protobuf:"bytes,2,opt,name=output,proto3" json:"output,omitempty"`
	SessionId        string                 `protobuf:"bytes,3,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	SessionBlob      []byte                 `protobuf:"bytes,4,opt,name=session_blob,json=sessionBlob,proto3" json:"session_blob,omitempty"`
	UncompressedSize int32                  `protobuf:"varint,5,opt,name=uncompressed_size,json=uncompressedSize,proto3" json:"uncompressed_size,omitempty"`
	FilesModified    []string               `protobuf:"bytes,6,rep,name=files_modified,json=filesModified,proto3" json:"files_modified,omitempty"`
	Branch           string                 `protobuf:"bytes,7,opt,name=branch,proto3" json:"branch,omitempty"`
	Summary          string                 `protobuf:"bytes,8,opt,name=summary,proto3" json:"summary,omitempty"`
	DurationMs       int64                  `protobuf:"varint,9,opt,name=duration_ms,json=durationMs,proto3" json:"duration_ms,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Completed) Reset() {
	*x = Completed{}
	mi := &file_agentrunner_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Completed) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Completed) ProtoMessage() {}

func (x *Completed) ProtoReflect() protoreflect.Message {
	mi := &file_agentrunner_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Completed.ProtoReflect.Descriptor instead.
func (*Completed) Descriptor() ([]byte, []int) {
	return file_agentrunner_proto_rawDescGZIP(), []int{10}
}

func (x *Completed) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *Completed) GetOutput() string {
	if x != nil {
		return x.Output
	}
	return ""
}

func (x *Completed) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *Completed) GetSessionBlob() []byte {
	if x != nil {
		return x.SessionBlob
	}
	return nil
}

func (x *Completed) GetUncompressedSize() int32 {
	if x != nil {
		return x.UncompressedSize
	}
	return 0
}

func (x *Completed) GetFilesModified() []string {
	if x != nil {
		return x.FilesModified
	}
	return nil
}

func (x *Completed) GetBranch() string {
	if x != nil {
		return x.Branch
	}
	return ""
}

func (x *Completed) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

func (x *Completed) GetDurationMs() int64 {
	if x != nil {
		return x.DurationMs
	}
	return 0
}

type AbortRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RequestId     string                 `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AbortRequest) Reset() {
	*x = AbortRequest{}
	mi := &file_agentrunner_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AbortRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AbortRequest) ProtoMessage() {}

func (x *AbortRequest) ProtoReflect() protoreflect.Message {
	mi := &file_agentrunner_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AbortRequest.ProtoReflect.Descriptor instead.
func (*AbortRequest) Descriptor() ([]byte, []int) {
	return file_agentrunner_proto_rawDescGZIP(), []int{11}
}

func (x *AbortRequest) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

type AbortResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Aborted       bool                   `protobuf:"varint,1,opt,name=aborted,proto3" json:"aborted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AbortResponse) Reset() {
	*x = AbortResponse{}
	mi := &file_agentrunner_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AbortResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AbortResponse) ProtoMessage() {}

func (x *AbortResponse) ProtoReflect() protoreflect.Message {
	mi := &file_agentrunner_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AbortResponse.ProtoReflect.Descriptor instead.
func (*AbortResponse) Descriptor() ([]byte, []int) {
	return file_agentrunner_proto_rawDescGZIP(), []int{12}
}

func (x *AbortResponse) GetAborted() bool {
	if x != nil {
		return x.Aborted
	}
	return false
}

var File_agentrunner_proto protoreflect.FileDescriptor

const file_agentrunner_proto_rawDesc = "" +
	"\n" +
	"\x11agentrunner.proto\x12\x0eagentrunner.v1\"\xe7\x02\n" +
	"\n" +
	"RunRequest\x12\x1d\n" +
	"\n" +
	"request_id\x18\x01 \x01(\tR\trequestId\x12\x1e\n" +
	"\n" +
	"repository\x18\x02 \x01(\tR\n" +
	"repository\x12\x19\n" +
	"\bwork_dir\x18\x03 \x01(\tR\aworkDir\x12\x16\n" +
	"\x06branch\x18\x04 \x01(\tR\x06branch\x12\x16\n" +
	"\x06prompt\x18\x05 \x01(\tR\x06prompt\x12*\n" +
	"\x11resume_session_id\x18\x06 \x01(\tR\x0fresumeSessionId\x12!\n" +
	"\fsession_blob\x18\a \x01(\fR\vsessionBlob\x125\n" +
	"\x06replay\x18\b \x03(\v2\x1d.agentrunner.v1.ReplayMessageR\x06replay\x12\x1a\n" +
	"\bprovider\x18\t \x01(\tR\bprovider\x12\x14\n" +
	"\x05model\x18\n" +
	" \x01(\tR\x05model\x12\x17\n" +
	"\aapi_key\x18\v \x01(\tR\x06apiKey\"=\n" +
	"\rReplayMessage\x12\x12\n" +
	"\x04role\x18\x01 \x01(\tR\x04role\x12\x18\n" +
	"\acontent\x18\x02 \x01(\tR\acontent\"\x8e\x04\n" +
	"\bRunEvent\x12\x17\n" +
	"\aturn_id\x18\x01 \x01(\tR\x06turnId\x12!\n" +
	"\ftimestamp_ms\x18\x02 \x01(\x03R\vtimestampMs\x123\n" +
	"\astarted\x18\n" +
	" \x01(\v2\x17.agentrunner.v1.StartedH\x00R\astarted\x126\n" +
	"\bthinking\x18\v \x01(\v2\x18.agentrunner.v1.ThinkingH\x00R\bthinking\x127\n" +
	"\ttool_call\x18\f \x01(\v2\x18.agentrunner.v1.ToolCallH\x00R\btoolCall\x12=\n" +
	"\vtool_result\x18\r \x01(\v2\x1a.agentrunner.v1.ToolResultH\x00R\n" +
	"toolResult\x12=\n" +
	"\vfile_change\x18\x0e \x01(\v2\x1a.agentrunner.v1.FileChangeH\x00R\n" +
	"fileChange\x12-\n" +
	"\x05usage\x18\x0f \x01(\v2\x15.agentrunner.v1.UsageH\x00R\x05usage\x12-\n" +
	"\x05error\x18\x10 \x01(\v2\x15.agentrunner.v1.ErrorH\x00R\x05error\x129\n" +
	"\tcompleted\x18\x11 \x01(\v2\x19.agentrunner.v1.CompletedH\x00R\tcompletedB\t\n" +
	"\apayload\"(\n" +
	"\aStarted\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"$\n" +
	"\bThinking\x12\x18\n" +
	"\acontent\x18\x01 \x01(\tR\acontent\"<\n" +
	"\bToolCall\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1c\n" +
	"\targuments\x18\x02 \x01(\tR\targuments\"^\n" +
	"\n" +
	"ToolResult\x12\x1b\n" +
	"\ttool_name\x18\x01 \x01(\tR\btoolName\x12\x18\n" +
	"\acontent\x18\x02 \x01(\tR\acontent\x12\x19\n" +
	"\bis_error\x18\x03 \x01(\bR\aisError\"A\n" +
	"\n" +
	"FileChange\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12\x1f\n" +
	"\vchange_type\x18\x02 \x01(\tR\n" +
	"changeType\"n\n" +
	"\x05Usage\x12!\n" +
	"\finput_tokens\x18\x01 \x01(\x05R\vinputTokens\x12#\n" +
	"\routput_tokens\x18\x02 \x01(\x05R\foutputTokens\x12\x1d\n" +
	"\n" +
	"cost_cents\x18\x03 \x01(\x05R\tcostCents\"S\n" +
	"\x05Error\x12\x18\n" +
	"\amessage\x18\x01 \x01(\tR\amessage\x12\x12\n" +
	"\x04code\x18\x02 \x01(\tR\x04code\x12\x1c\n" +
	"\tretryable\x18\x03 \x01(\bR\tretryable\"\xa6\x02\n" +
	"\tCompleted\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x12\x16\n" +
	"\x06output\x18\x02 \x01(\tR\x06output\x12\x1d\n" +
	"\n" +
	"session_id\x18\x03 \x01(\tR\tsessionId\x12!\n" +
	"\fsession_blob\x18\x04 \x01(\fR\vsessionBlob\x12+\n" +
	"\x11uncompressed_size\x18\x05 \x01(\x05R\x10uncompressedSize\x12%\n" +
	"\x0efiles_modified\x18\x06 \x03(\tR\rfilesModified\x12\x16\n" +
	"\x06branch\x18\a \x01(\tR\x06branch\x12\x18\n" +
	"\asummary\x18\b \x01(\tR\asummary\x12\x1f\n" +
	"\vduration_ms\x18\t \x01(\x03R\n" +
	"durationMs\"-\n" +
	"\fAbortRequest\x12\x1d\n" +
	"\n" +
	"request_id\x18\x01 \x01(\tR\trequestId\")\n" +
	"\rAbortResponse\x12\x18\n" +
	"\aaborted\x18\x01 \x01(\bR\aaborted2\x92\x01\n" +
	"\vAgentRunner\x12=\n" +
	"\x03Run\x12\x1a.agentrunner.v1.RunRequest\x1a\x18.agentrunner.v1.RunEvent0\x01\x12D\n" +
	"\x05Abort\x12\x1c.agentrunner.v1.AbortRequest\x1a\x1d.agentrunner.v1.AbortResponseB8Z6github.com/patchwork-dev/patchwork/proto;agentrunnerv1b\x06proto3"

var (
	file_agentrunner_proto_rawDescOnce sync.Once
	file_agentrunner_proto_rawDescData []byte
)

func file_agentrunner_proto_rawDescGZIP() []byte {
	file_agentrunner_proto_rawDescOnce.Do(func() {
		file_agentrunner_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_agentrunner_proto_rawDesc), len(file_agentrunner_proto_rawDesc)))
	})
	return file_agentrunner_proto_rawDescData
}

var file_agentrunner_proto_msgTypes = make([]protoimpl.MessageInfo, 13)
var file_agentrunner_proto_goTypes = []any{
	(*RunRequest)(nil),    // 0: agentrunner.v1.RunRequest
	(*ReplayMessage)(nil), // 1: agentrunner.v1.ReplayMessage
	(*RunEvent)(nil),      // 2: agentrunner.v1.RunEvent
	(*Started)(nil),       // 3: agentrunner.v1.Started
	(*Thinking)(nil),      // 4: agentrunner.v1.Thinking
	(*ToolCall)(nil),      // 5: agentrunner.v1.ToolCall
	(*ToolResult)(nil),    // 6: agentrunner.v1.ToolResult
	(*FileChange)(nil),    // 7: agentrunner.v1.FileChange
	(*Usage)(nil),         // 8: agentrunner.v1.Usage
	(*Error)(nil),         // 9: agentrunner.v1.Error
	(*Completed)(nil),     // 10: agentrunner.v1.Completed
	(*AbortRequest)(nil),  // 11: agentrunner.v1.AbortRequest
	(*AbortResponse)(nil), // 12: agentrunner.v1.AbortResponse
}
var file_agentrunner_proto_depIdxs = []int32{
	1,  // 0: agentrunner.v1.RunRequest.replay:type_name -> agentrunner.v1.ReplayMessage
	3,  // 1: agentrunner.v1.RunEvent.started:type_name -> agentrunner.v1.Started
	4,  // 2: agentrunner.v1.RunEvent.thinking:type_name -> agentrunner.v1.Thinking
	5,  // 3: agentrunner.v1.RunEvent.tool_call:type_name -> agentrunner.v1.ToolCall
	6,  // 4: agentrunner.v1.RunEvent.tool_result:type_name -> agentrunner.v1.ToolResult
	7,  // 5: agentrunner.v1.RunEvent.file_change:type_name -> agentrunner.v1.FileChange
	8,  // 6: agentrunner.v1.RunEvent.usage:type_name -> agentrunner.v1.Usage
	9,  // 7: agentrunner.v1.RunEvent.error:type_name -> agentrunner.v1.Error
	10, // 8: agentrunner.v1.RunEvent.completed:type_name -> agentrunner.v1.Completed
	0,  // 9: agentrunner.v1.AgentRunner.Run:input_type -> agentrunner.v1.RunRequest
	11, // 10: agentrunner.v1.AgentRunner.Abort:input_type -> agentrunner.v1.AbortRequest
	2,  // 11: agentrunner.v1.AgentRunner.Run:output_type -> agentrunner.v1.RunEvent
	12, // 12: agentrunner.v1.AgentRunner.Abort:output_type -> agentrunner.v1.AbortResponse
	11, // [11:13] is the sub-list for method output_type
	9,  // [9:11] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_agentrunner_proto_init() }
func file_agentrunner_proto_init() {
	if File_agentrunner_proto != nil {
		return
	}
	file_agentrunner_proto_msgTypes[2].OneofWrappers = []any{
		(*RunEvent_Started)(nil),
		(*RunEvent_Thinking)(nil),
		(*RunEvent_ToolCall)(nil),
		(*RunEvent_ToolResult)(nil),
		(*RunEvent_FileChange)(nil),
		(*RunEvent_Usage)(nil),
		(*RunEvent_Error)(nil),
		(*RunEvent_Completed)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_agentrunner_proto_rawDesc), len(file_agentrunner_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   13,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_agentrunner_proto_goTypes,
		DependencyIndexes: file_agentrunner_proto_depIdxs,
		MessageInfos:      file_agentrunner_proto_msgTypes,
	}.Build()
	File_agentrunner_proto = out.File
	file_agentrunner_proto_goTypes = nil
	file_agentrunner_proto_depIdxs = nil
}
