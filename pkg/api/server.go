// Package api exposes the HTTP surface: intake webhooks, chat endpoints,
// the dashboard REST API, and the websocket event stream.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/patchwork-dev/patchwork/ent"
	"github.com/patchwork-dev/patchwork/ent/request"
	"github.com/patchwork-dev/patchwork/pkg/chat"
	"github.com/patchwork-dev/patchwork/pkg/config"
	"github.com/patchwork-dev/patchwork/pkg/crypto"
	"github.com/patchwork-dev/patchwork/pkg/database"
	"github.com/patchwork-dev/patchwork/pkg/models"
	"github.com/patchwork-dev/patchwork/pkg/queue"
	"github.com/patchwork-dev/patchwork/pkg/services"
)

// RequestStore is the request surface the API reads and transitions.
// Satisfied by services.RequestService.
type RequestStore interface {
	FindByRequestID(ctx context.Context, requestID string) (*ent.Request, error)
	List(ctx context.Context, filters models.RequestFilters) (*models.RequestListResponse, error)
	UpdateStatus(ctx context.Context, requestID string, newStatus request.Status, patch *models.StatusPatch) (*ent.Request, error)
}

// MessageStore is the conversation-log surface the API reads.
// Satisfied by services.MessageService.
type MessageStore interface {
	ThreadPage(ctx context.Context, requestID, beforeID string, limit int) ([]*ent.Message, error)
}

// SessionStore serves session blobs to the runner. Satisfied by
// services.SessionBlobService.
type SessionStore interface {
	GetLatest(ctx context.Context, requestID string) (*ent.AgentSession, error)
	GetBySessionID(ctx context.Context, requestID, sessionID string) (*ent.AgentSession, error)
}

// ConfigStore is the config surface intake verification needs.
// Satisfied by services.ConfigService.
type ConfigStore interface {
	GetForge(ctx context.Context) (*models.ForgeConfig, error)
	GetChat(ctx context.Context) (*models.ChatConfig, error)
}

// Enqueuer accepts intake envelopes. Satisfied by queue.Service.
type Enqueuer interface {
	Enqueue(ctx context.Context, env models.Envelope) error
}

// WorkerPool is the in-process pool surface: live-cancel plus health.
// Satisfied by queue.Pool.
type WorkerPool interface {
	CancelRequest(requestID string) bool
	Health() *queue.PoolHealth
}

// ChatIntake correlates forge comments to requests. Satisfied by
// chat.Router.
type ChatIntake interface {
	RouteForgeComment(ctx context.Context, repository string, issueNumber int, comment, actorID, actorName string) (*models.Envelope, error)
}

// EventSource feeds the websocket hub. Satisfied by events.Listener.
type EventSource interface {
	Subscribe(ctx context.Context, channel string) error
	Unsubscribe(ctx context.Context, channel string) error
}

// Deps bundles the server's collaborators. Pool and Events may be nil in
// tests; the handlers degrade rather than panic.
type Deps struct {
	Requests RequestStore
	Messages MessageStore
	Sessions SessionStore
	Config   ConfigStore
	Queue    Enqueuer

	Pool       WorkerPool
	ChatRouter ChatIntake
	Crypto     *crypto.Encryptor
	Events     EventSource

	// Authorize gates mutating dashboard endpoints. Nil allows everything.
	Authorize AuthorizeFunc
}

// Server is the HTTP API server.
type Server struct {
	cfg    *config.ServerConfig
	db     *database.Client
	deps   Deps
	hub    *Hub
	logger *slog.Logger

	httpServer *http.Server
}

// NewServer assembles the server and its websocket hub.
func NewServer(cfg *config.ServerConfig, db *database.Client, deps Deps) *Server {
	return &Server{
		cfg:    cfg,
		db:     db,
		deps:   deps,
		hub:    NewHub(deps.Events),
		logger: slog.Default().With("component", "api"),
	}
}

// Hub exposes the websocket hub so main can wire it as the event
// listener's dispatch target.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), securityHeaders())

	r.GET("/health", s.healthHandler)

	r.POST("/webhook/forge", s.forgeWebhookHandler)

	chatGroup := r.Group("/chat")
	{
		chatGroup.POST("/command", s.chatCommandHandler)
		chatGroup.POST("/interactivity", s.chatInteractivityHandler)
		chatGroup.POST("/events", s.chatEventsHandler)
	}

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/requests", s.listRequestsHandler)
		apiGroup.GET("/requests/:id", s.getRequestHandler)
		apiGroup.GET("/requests/:id/messages", s.listMessagesHandler)
		apiGroup.GET("/requests/:id/session", s.getSessionBlobHandler)
		apiGroup.POST("/requests/:id/cancel", s.authorize("cancel"), s.cancelRequestHandler)
		apiGroup.POST("/requests/:id/retry", s.authorize("retry"), s.retryRequestHandler)
	}

	r.GET("/ws", s.wsHandler)

	return r
}

// Start begins serving in a goroutine. Errors other than a clean shutdown
// are reported on the returned channel.
func (s *Server) Start() <-chan error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", s.cfg.Addr())
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()
	return errCh
}

// Shutdown drains in-flight requests and closes websocket clients.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// decryptedForgeSecret loads and decrypts the forge webhook secret.
func (s *Server) decryptedForgeSecret(ctx context.Context) (string, error) {
	cfg, err := s.deps.Config.GetForge(ctx)
	if err != nil {
		return "", err
	}
	return s.deps.Crypto.Decrypt(cfg.EncryptedWebhookSecret)
}

// decryptedChatSigningSecret loads and decrypts the chat signing secret.
func (s *Server) decryptedChatSigningSecret(ctx context.Context) (string, error) {
	cfg, err := s.deps.Config.GetChat(ctx)
	if err != nil {
		return "", err
	}
	return s.deps.Crypto.Decrypt(cfg.EncryptedSigningSecret)
}

var _ ChatIntake = (*chat.Router)(nil)
var _ RequestStore = (*services.RequestService)(nil)
