package store

import (
	"context"
	"fmt"

	"github.com/de-tools/insure-atlas/pkg/services/config"
	"github.com/de-tools/insure-atlas/pkg/store/duckdb"
	"github.com/de-tools/insure-atlas/pkg/store/duckdb/catalog"
	"github.com/de-tools/insure-atlas/pkg/store/memory"
	"github.com/de-tools/insure-atlas/pkg/store/provider"
	"github.com/rs/zerolog"
)

// Open returns the data provider selected by settings and a func releasing its resources.
// The duckdb provider is seeded with the built-in tables on first use.
func Open(ctx context.Context, settings config.StoreSettings) (provider.Provider, func() error, error) {
	logger := zerolog.Ctx(ctx)

	switch settings.Provider {
	case config.ProviderMemory, "":
		logger.Info().Str("provider", config.ProviderMemory).Msg("using in-memory report data")
		return memory.NewStore(), func() error { return nil }, nil
	case config.ProviderDuckDB:
		db, err := duckdb.NewDB(duckdb.Settings{DbPath: settings.DuckDBPath})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create DuckDB instance: %w", err)
		}

		seeded, err := duckdb.Seed(ctx, db, memory.LoadFixtures())
		if err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to seed DuckDB: %w", err)
		}

		store, err := catalog.NewStore(db)
		if err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to create catalog store: %w", err)
		}

		logger.Info().
			Str("provider", config.ProviderDuckDB).
			Str("path", settings.DuckDBPath).
			Bool("seeded", seeded).
			Msg("using DuckDB report data")
		return store, db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store provider %q", settings.Provider)
	}
}
