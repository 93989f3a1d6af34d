// Package agentrunnerv1 holds the gRPC contract between the engine and the
// sandboxed agent-runner service. The message and service bindings are
// generated from agentrunner.proto; run go generate ./... after changing it.
package agentrunnerv1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative agentrunner.proto
