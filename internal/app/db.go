package app

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/gridironsim/capengine/internal/config"
)

const (
	dbMaxOpenConns    = 16
	dbMaxIdleConns    = 4
	dbConnMaxLifetime = 30 * time.Minute
)

// openDB connects through the OpenTelemetry sqlx wrapper so repository
// queries show up as spans under their calling request.
func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.ConnectContext(ctx, "postgres", dbURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, crerr.Wrap(err, "connect postgres")
	}

	db.SetMaxOpenConns(dbMaxOpenConns)
	db.SetMaxIdleConns(dbMaxIdleConns)
	db.SetConnMaxLifetime(dbConnMaxLifetime)

	return db, nil
}
