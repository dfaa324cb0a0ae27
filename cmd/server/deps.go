package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-compendium/internal/clients/external"
	"github.com/KirkDiggler/rpg-compendium/internal/config"
	"github.com/KirkDiggler/rpg-compendium/internal/orchestrators/compendium"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-compendium/internal/redis"
	"github.com/KirkDiggler/rpg-compendium/internal/repositories/overlay"
	rulesetentity "github.com/KirkDiggler/rpg-compendium/internal/repositories/ruleset_entity"
)

const (
	entityIDPrefix  = "ent"
	overlayIDPrefix = "ov"
)

// deps holds the wired collaborators shared by commands
type deps struct {
	redis   redisclient.Client
	service compendium.Service
}

func (d *deps) Close() {
	if err := d.redis.Close(); err != nil {
		slog.Warn("failed to close redis client", "error", err)
	}
}

// loadConfig reads the environment and installs the default logger
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))
	return cfg, nil
}

func buildDeps(ctx context.Context, cfg *config.Config) (*deps, error) {
	redis, err := redisclient.New(cfg.Redis())
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisclient.Ping(pingCtx, redis); err != nil {
		_ = redis.Close()
		return nil, err
	}

	entityRepo, err := rulesetentity.NewRedis(&rulesetentity.RedisConfig{Client: redis})
	if err != nil {
		_ = redis.Close()
		return nil, fmt.Errorf("failed to create entity repository: %w", err)
	}

	overlayRepo, err := overlay.NewRedis(&overlay.RedisConfig{Client: redis})
	if err != nil {
		_ = redis.Close()
		return nil, fmt.Errorf("failed to create overlay repository: %w", err)
	}

	externalClient, err := external.New(cfg.External())
	if err != nil {
		_ = redis.Close()
		return nil, fmt.Errorf("failed to create external client: %w", err)
	}

	service, err := compendium.NewOrchestrator(&compendium.Config{
		EntityRepo:         entityRepo,
		OverlayRepo:        overlayRepo,
		ExternalClient:     externalClient,
		IDGenerator:        idgen.NewUUID(entityIDPrefix),
		OverlayIDGenerator: idgen.NewUUID(overlayIDPrefix),
		Clock:              clock.New(),
		DiceRoller:         dice.DefaultRoller,
	})
	if err != nil {
		_ = redis.Close()
		return nil, fmt.Errorf("failed to create compendium orchestrator: %w", err)
	}

	return &deps{redis: redis, service: service}, nil
}
