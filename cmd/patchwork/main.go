// Patchwork engine server — HTTP intake, queue workers, and request
// lifecycle orchestration.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/patchwork-dev/patchwork/pkg/agent"
	"github.com/patchwork-dev/patchwork/pkg/api"
	"github.com/patchwork-dev/patchwork/pkg/chat"
	"github.com/patchwork-dev/patchwork/pkg/cleanup"
	"github.com/patchwork-dev/patchwork/pkg/config"
	"github.com/patchwork-dev/patchwork/pkg/crypto"
	"github.com/patchwork-dev/patchwork/pkg/database"
	"github.com/patchwork-dev/patchwork/pkg/events"
	"github.com/patchwork-dev/patchwork/pkg/forge"
	"github.com/patchwork-dev/patchwork/pkg/masking"
	"github.com/patchwork-dev/patchwork/pkg/models"
	"github.com/patchwork-dev/patchwork/pkg/queue"
	"github.com/patchwork-dev/patchwork/pkg/services"
	"github.com/patchwork-dev/patchwork/pkg/workspace"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting patchwork",
		"addr", cfg.Server.Addr(),
		"pod_id", cfg.Server.PodID,
		"workers", cfg.Queue.WorkerCount)

	ctx := context.Background()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Requeue anything this pod held when it last died.
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, cfg.Server.PodID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal: the orphan scanner will catch them.
	}

	encryptor, err := crypto.NewEncryptor(cfg.EncryptionKey)
	if err != nil {
		slog.Error("Failed to initialize encryption", "error", err)
		os.Exit(1)
	}

	messageSvc := services.NewMessageService(dbClient.Client)
	requestSvc := services.NewRequestService(dbClient.Client, messageSvc)
	sessionSvc := services.NewSessionBlobService(dbClient.Client)
	configSvc := services.NewConfigService(dbClient.Client)
	queueSvc := queue.NewService(dbClient.Client)
	slog.Info("Services initialized")

	// Agent strategies. grpc.NewClient dials lazily, so a runner that is
	// still rolling out does not block startup.
	factory := agent.NewFactory(agent.NewConfigCredentialSource(configSvc, encryptor))
	factory.Register(agent.RunnerManifest(cfg.Runner.Addr, models.LLMProviders, defaultProvider(ctx, configSvc)))

	masker := masking.NewMasker()
	forgeClient := buildForgeClient(ctx, configSvc, encryptor, masker)
	chatNotifier := buildChatNotifier(ctx, configSvc, encryptor, masker, cfg.Server.DashboardURL)
	chatRouter := chat.NewRouter(requestSvc, configSvc, queueSvc)
	publisher := events.NewPublisher(dbClient.DB())
	workspaceMgr := workspace.NewManager(cfg.Workspace.BaseDir, slog.Default())

	handler := queue.NewHandler(cfg.Queue, queue.Deps{
		Requests:      requestSvc,
		Messages:      messageSvc,
		Sessions:      sessionSvc,
		Config:        configSvc,
		Queue:         queueSvc,
		Factory:       factory,
		Workspace:     workspaceMgr,
		Forge:         forgeClient,
		ForgeNotifier: forge.NewNotifier(forgeClient),
		ChatNotifier:  chatNotifier,
		ChatRouter:    chatRouter,
		ChatUsers:     chatNotifier.Client(),
		Events:        publisher,
		Masker:        masker,
	})

	pool := queue.NewPool(cfg.Server.PodID, dbClient.Client, dbClient.DB(), cfg.Queue, handler)
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	retention := cleanup.NewService(cfg.Retention, sessionSvc, queueSvc)
	retention.Start(ctx)

	// The listener dispatches into the websocket hub; the server is
	// assigned before Start, so the closure never sees it nil.
	var server *api.Server
	listener := events.NewListener(dbClient.DSN(), func(channel string, payload []byte) {
		server.Hub().Broadcast(channel, payload)
	})

	server = api.NewServer(cfg.Server, dbClient, api.Deps{
		Requests:   requestSvc,
		Messages:   messageSvc,
		Sessions:   sessionSvc,
		Config:     configSvc,
		Queue:      queueSvc,
		Pool:       pool,
		ChatRouter: chatRouter,
		Crypto:     encryptor,
		Events:     listener,
	})

	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start event listener", "error", err)
		os.Exit(1)
	}

	errCh := server.Start()
	slog.Info("Patchwork started", "pod_id", cfg.Server.PodID)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		if err != nil {
			slog.Error("HTTP server error triggered shutdown", "error", err)
		}
	}

	// Shutdown order: stop claiming and drain executions first, then the
	// background services, then the HTTP surface.
	pool.Stop()
	retention.Stop()
	listener.Stop(ctx)

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown failed", "error", err)
	}

	slog.Info("Patchwork stopped")
}

// defaultProvider reads the configured default LLM provider, falling back
// to anthropic before any system defaults are saved.
func defaultProvider(ctx context.Context, configSvc *services.ConfigService) string {
	defaults, err := configSvc.GetSystemDefaults(ctx)
	if err == nil && defaults.Provider != "" {
		return defaults.Provider
	}
	return "anthropic"
}

// buildForgeClient assembles the forge REST client from stored config.
// Returns nil when the integration is unconfigured; intake then rejects
// forge work until an operator saves credentials.
func buildForgeClient(ctx context.Context, configSvc *services.ConfigService, encryptor *crypto.Encryptor, masker *masking.Masker) forge.Client {
	cfg, err := configSvc.GetForge(ctx)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			slog.Error("Failed to load forge config", "error", err)
		}
		slog.Info("Forge integration not configured")
		return nil
	}

	privateKey, err := encryptor.Decrypt(cfg.EncryptedPrivateKey)
	if err != nil {
		slog.Error("Failed to decrypt forge private key", "error", err)
		return nil
	}
	if secret, err := encryptor.Decrypt(cfg.EncryptedWebhookSecret); err == nil {
		masker.AddLiteral(secret)
	}

	tokens, err := forge.NewAppTokenSource(os.Getenv("FORGE_API_BASE"), cfg.AppID, cfg.InstallationID, privateKey)
	if err != nil {
		slog.Error("Failed to build forge token source", "error", err)
		return nil
	}
	return forge.NewRESTClient(os.Getenv("FORGE_API_BASE"), tokens)
}

// buildChatNotifier assembles the chat notifier from stored config.
// Returns a nil-safe notifier when the integration is unconfigured.
func buildChatNotifier(ctx context.Context, configSvc *services.ConfigService, encryptor *crypto.Encryptor, masker *masking.Masker, dashboardURL string) *chat.Notifier {
	cfg, err := configSvc.GetChat(ctx)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			slog.Error("Failed to load chat config", "error", err)
		}
		slog.Info("Chat integration not configured")
		return nil
	}

	token, err := encryptor.Decrypt(cfg.EncryptedBotToken)
	if err != nil {
		slog.Error("Failed to decrypt chat bot token", "error", err)
		return nil
	}
	masker.AddLiteral(token)
	if secret, err := encryptor.Decrypt(cfg.EncryptedSigningSecret); err == nil {
		masker.AddLiteral(secret)
	}

	return chat.NewNotifier(chat.NotifierConfig{Token: token, DashboardURL: dashboardURL})
}
