// Package core assembles the gateway components from a Config. Both the
// gRPC server and the CLI start from Build.
package core

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dmitrijs2005/healthgate/internal/artifacts"
	"github.com/dmitrijs2005/healthgate/internal/auth"
	"github.com/dmitrijs2005/healthgate/internal/config"
	"github.com/dmitrijs2005/healthgate/internal/credentials"
	"github.com/dmitrijs2005/healthgate/internal/dbx"
	"github.com/dmitrijs2005/healthgate/internal/diseases"
	"github.com/dmitrijs2005/healthgate/internal/logging"
	"github.com/dmitrijs2005/healthgate/internal/prediction"
	"github.com/dmitrijs2005/healthgate/internal/registry"
	"github.com/dmitrijs2005/healthgate/internal/repomanager"
)

type Core struct {
	Config   *config.Config
	Logger   logging.Logger
	Store    *credentials.Store
	Gate     *auth.Gate
	Catalog  *diseases.Catalog
	Registry *registry.Registry
	Pipeline *prediction.Pipeline

	db *sql.DB
}

// Build opens the credential database, applies migrations, loads the models
// and wires the pipeline. Missing models do not fail Build; they are reported
// by the registry.
func Build(ctx context.Context, cfg *config.Config, logger logging.Logger) (*Core, error) {
	db, dialect, err := dbx.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	c, err := build(ctx, cfg, logger, db, dialect)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return c, nil
}

func build(ctx context.Context, cfg *config.Config, logger logging.Logger, db *sql.DB, dialect dbx.Dialect) (*Core, error) {
	rm, err := repomanager.New(dialect)
	if err != nil {
		return nil, err
	}
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	store, err := credentials.NewStore(rm.Credentials(db), cfg.BcryptCost, logger)
	if err != nil {
		return nil, err
	}

	src, err := newArtifactSource(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("model source: %w", err)
	}

	catalog := diseases.Default()
	reg := registry.Load(ctx, src, catalog, cfg.ModelLoadTimeout, logger)
	if len(reg.Available()) == 0 {
		logger.Warn(ctx, "no disease models available; predictions will fail until artifacts are provided")
	}

	return &Core{
		Config:   cfg,
		Logger:   logger,
		Store:    store,
		Gate:     auth.NewGate(store, logger),
		Catalog:  catalog,
		Registry: reg,
		Pipeline: prediction.New(catalog, reg, logger),
		db:       db,
	}, nil
}

func newArtifactSource(ctx context.Context, cfg *config.Config) (artifacts.Source, error) {
	switch cfg.ModelSource {
	case config.ModelSourceS3:
		return artifacts.NewS3Source(ctx, artifacts.S3Config{
			Region:       cfg.S3Region,
			AccessKey:    cfg.S3RootUser,
			SecretKey:    cfg.S3RootPassword,
			BaseEndpoint: cfg.S3BaseEndpoint,
			Bucket:       cfg.S3Bucket,
			Prefix:       cfg.S3Prefix,
		})
	case config.ModelSourceFS, "":
		return artifacts.NewFSSource(os.DirFS(cfg.ModelDir)), nil
	default:
		return nil, fmt.Errorf("unknown model source %q", cfg.ModelSource)
	}
}

// Close releases the credential database.
func (c *Core) Close() error {
	return c.db.Close()
}
