package dbx

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialect identifies the SQL backend behind a DSN.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// DriverName is the database/sql driver registered for d.
func (d Dialect) DriverName() string {
	if d == Postgres {
		return "pgx"
	}
	return "sqlite"
}

// DialectFromDSN picks Postgres for postgres:// and postgresql:// URLs and
// SQLite for everything else, which is treated as a file path.
func DialectFromDSN(dsn string) Dialect {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return Postgres
	}
	return SQLite
}

const sqliteBusyTimeout = "_pragma=busy_timeout(5000)"

// Open connects to dsn and pings it. SQLite handles are limited to a single
// connection so writers queue instead of failing with SQLITE_BUSY, and an
// in-memory database stays the same database for the life of the handle.
func Open(ctx context.Context, dsn string) (*sql.DB, Dialect, error) {
	if dsn == "" {
		return nil, "", errors.New("empty database DSN")
	}

	dialect := DialectFromDSN(dsn)
	if dialect == SQLite && !strings.Contains(dsn, "busy_timeout") {
		if strings.Contains(dsn, "?") {
			dsn += "&" + sqliteBusyTimeout
		} else {
			dsn += "?" + sqliteBusyTimeout
		}
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, "", err
	}
	if dialect == SQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, "", err
	}
	return db, dialect, nil
}
