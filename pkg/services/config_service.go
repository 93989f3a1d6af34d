package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patchwork-dev/patchwork/ent"
	"github.com/patchwork-dev/patchwork/ent/configentry"
	"github.com/patchwork-dev/patchwork/pkg/models"
)

// ConfigService manages typed configuration rows, exactly one per kind.
// Secret fields arrive already encrypted (see pkg/crypto); this store only
// ever handles ciphertext.
type ConfigService struct {
	client *ent.Client
}

// NewConfigService creates a new ConfigService.
func NewConfigService(client *ent.Client) *ConfigService {
	return &ConfigService{client: client}
}

// GetForge returns the forge integration config, or ErrNotFound.
func (s *ConfigService) GetForge(ctx context.Context) (*models.ForgeConfig, error) {
	var out models.ForgeConfig
	if err := s.get(ctx, configentry.KindForge, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpsertForge writes the forge integration config.
func (s *ConfigService) UpsertForge(ctx context.Context, cfg *models.ForgeConfig) error {
	return s.upsert(ctx, configentry.KindForge, cfg)
}

// GetChat returns the chat integration config, or ErrNotFound.
func (s *ConfigService) GetChat(ctx context.Context) (*models.ChatConfig, error) {
	var out models.ChatConfig
	if err := s.get(ctx, configentry.KindChat, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpsertChat writes the chat integration config.
func (s *ConfigService) UpsertChat(ctx context.Context, cfg *models.ChatConfig) error {
	return s.upsert(ctx, configentry.KindChat, cfg)
}

// GetLLM returns the per-provider key config, or ErrNotFound.
func (s *ConfigService) GetLLM(ctx context.Context) (*models.LLMConfig, error) {
	var out models.LLMConfig
	if err := s.get(ctx, configentry.KindLlm, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpsertLLM writes the per-provider key config.
func (s *ConfigService) UpsertLLM(ctx context.Context, cfg *models.LLMConfig) error {
	return s.upsert(ctx, configentry.KindLlm, cfg)
}

// GetSystemDefaults returns the system defaults row, or ErrNotFound.
func (s *ConfigService) GetSystemDefaults(ctx context.Context) (*models.SystemDefaults, error) {
	var out models.SystemDefaults
	if err := s.get(ctx, configentry.KindSystemDefaults, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpsertSystemDefaults writes the system defaults row.
func (s *ConfigService) UpsertSystemDefaults(ctx context.Context, cfg *models.SystemDefaults) error {
	return s.upsert(ctx, configentry.KindSystemDefaults, cfg)
}

// GetAuth returns the auth settings row, or ErrNotFound.
func (s *ConfigService) GetAuth(ctx context.Context) (*models.AuthSettings, error) {
	var out models.AuthSettings
	if err := s.get(ctx, configentry.KindAuth, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpsertAuth writes the auth settings row.
func (s *ConfigService) UpsertAuth(ctx context.Context, cfg *models.AuthSettings) error {
	return s.upsert(ctx, configentry.KindAuth, cfg)
}

// AvailableProviders derives the set of usable LLM providers from the
// configured keys. Returns nil when no llm row exists yet.
func (s *ConfigService) AvailableProviders(ctx context.Context) ([]string, error) {
	llm, err := s.GetLLM(ctx)
	if err != nil {
		if err == ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return llm.AvailableProviders(), nil
}

func (s *ConfigService) get(ctx context.Context, kind configentry.Kind, out interface{}) error {
	row, err := s.client.ConfigEntry.Query().
		Where(configentry.KindEQ(kind)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get %s config: %w", kind, err)
	}

	raw, err := json.Marshal(row.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s config payload: %w", kind, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode %s config payload: %w", kind, err)
	}
	return nil
}

func (s *ConfigService) upsert(ctx context.Context, kind configentry.Kind, in interface{}) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode %s config payload: %w", kind, err)
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("failed to build %s config payload: %w", kind, err)
	}

	existing, err := s.client.ConfigEntry.Query().
		Where(configentry.KindEQ(kind)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("failed to query %s config: %w", kind, err)
		}
		err = s.client.ConfigEntry.Create().
			SetID(uuid.New().String()).
			SetKind(kind).
			SetPayload(payload).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create %s config: %w", kind, err)
		}
		return nil
	}

	err = s.client.ConfigEntry.UpdateOneID(existing.ID).
		SetPayload(payload).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update %s config: %w", kind, err)
	}
	return nil
}
