package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/compasshud/compass/internal/bridge"
	"github.com/compasshud/compass/internal/catalog"
	"github.com/compasshud/compass/internal/logger"
	"github.com/compasshud/compass/internal/matching"
	"github.com/compasshud/compass/internal/occupation"
	"github.com/compasshud/compass/internal/secrets"
)

// newEngine wires the bridge and the configured catalog. The returned
// function releases the catalog.
func newEngine(ctx context.Context, config *Config, log *zap.Logger) (*matching.Engine, func(), error) {
	if config == nil || config.Catalog == nil {
		return nil, nil, errors.New("catalog configuration is required")
	}

	catalogConfig := catalog.Config{
		Driver:   config.Catalog.Driver,
		File:     config.Catalog.File,
		MaxConns: config.Catalog.MaxConns,
	}

	if strings.EqualFold(strings.TrimSpace(config.Catalog.Driver), "postgres") {
		dsn, err := secrets.Load(secrets.Source{
			Name:  "catalog dsn",
			Value: config.Catalog.DSN,
			File:  config.Catalog.DSNFile,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("%w (set catalog.dsn, catalog.dsn-file or COMPASS_CATALOG_DSN_FILE)", err)
		}
		catalogConfig.DSN = dsn
	}

	cat, closeCatalog, err := catalog.Open(ctx, catalogConfig, logger.Component(log, "catalog"))
	if err != nil {
		return nil, nil, fmt.Errorf("opening catalog: %w", err)
	}

	var table *bridge.Table
	if config.Bridge != nil {
		table = bridge.NewDefault(config.Bridge.Rows, config.Bridge.Wages)
	} else {
		table = bridge.NewDefault(nil, nil)
	}

	log.Debug("bridge ready", zap.Int("sectors", table.Len()))

	return matching.New(table, cat, logger.Component(log, "matching")), closeCatalog, nil
}

// newStats wires the occupation stats layers enabled by the config.
func newStats(config *Config, log *zap.Logger) (*occupation.Service, func(), error) {
	statsLogger := logger.Component(log, "stats")
	if config == nil || config.Stats == nil || !config.Stats.Live {
		return occupation.NewService(nil, nil, statsLogger), func() {}, nil
	}

	apiKey, err := secrets.LoadOptional(secrets.Source{
		Name: "statistics api key",
		File: config.Stats.APIKeyFile,
	})
	if err != nil {
		return nil, nil, err
	}

	client := occupation.NewClient(occupation.ClientConfig{
		APIURL:            config.Stats.APIURL,
		APIKey:            apiKey,
		Timeout:           config.Stats.Timeout,
		RequestsPerMinute: config.Stats.RequestsPerMinute,
		MaxRetries:        config.Stats.MaxRetries,
	}, statsLogger)

	if strings.TrimSpace(config.Stats.CacheDir) == "" {
		return occupation.NewService(client, nil, statsLogger), func() {}, nil
	}

	cache, err := occupation.OpenCache(config.Stats.CacheDir, config.Stats.CacheTTL)
	if err != nil {
		return nil, nil, err
	}

	closeCache := func() {
		if err := cache.Close(); err != nil {
			statsLogger.Warn("closing stats cache", zap.Error(err))
		}
	}

	return occupation.NewService(client, cache, statsLogger), closeCache, nil
}
