package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/healthgate/internal/credentials"
	"github.com/dmitrijs2005/healthgate/internal/dbx"
	"github.com/dmitrijs2005/healthgate/internal/migrations"
	"github.com/pressly/goose/v3"
)

type SQLiteRepositoryManager struct{}

func (m *SQLiteRepositoryManager) Credentials(db dbx.DBTX) credentials.Repository {
	return credentials.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, goose.DialectSQLite3, db, migrations.SQLite())
}
