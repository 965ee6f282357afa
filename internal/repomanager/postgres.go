package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/healthgate/internal/credentials"
	"github.com/dmitrijs2005/healthgate/internal/dbx"
	"github.com/dmitrijs2005/healthgate/internal/migrations"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Credentials(db dbx.DBTX) credentials.Repository {
	return credentials.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, goose.DialectPostgres, db, migrations.Postgres())
}
