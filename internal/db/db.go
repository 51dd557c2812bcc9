// Package db provides database connection, migrations and the SQL stores.
package db

import (
	"database/sql"
	"embed"
	"fmt"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/jackc/pgx/v5/stdlib" // register pgx driver for PostgreSQL
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // register sqlite driver for local runs and tests

	"furniquote/internal/config"
	"furniquote/internal/logx"
)

var dbLogger = logx.GetScope("db")

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var embedMigrations embed.FS

// DB is a connection pool together with the SQL dialect it speaks.
type DB struct {
	SQL     *sql.DB
	Dialect string
}

func (d *DB) builder() *entsql.DialectBuilder {
	return entsql.Dialect(d.Dialect)
}

var baseDB *sql.DB

// Open opens the configured database. DB_DRIVER selects postgres (pgx) or sqlite.
func Open(cfg *config.Config) (*DB, func(), error) {
	var (
		sqldb *sql.DB
		d     string
		err   error
	)
	switch strings.ToLower(cfg.DB.Driver) {
	case "", "postgres", "pgx":
		d = dialect.Postgres
		sqldb, err = sql.Open("pgx", cfg.PG.URL)
	case "sqlite", "sqlite3":
		d = dialect.SQLite
		sqldb, err = sql.Open("sqlite", cfg.DB.SQLitePath)
	default:
		return nil, func() {}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, func() {}, err
	}
	if d == dialect.SQLite {
		// one writer; sqlite serialises anyway
		sqldb.SetMaxOpenConns(1)
		if _, err := sqldb.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
			_ = sqldb.Close()
			return nil, func() {}, fmt.Errorf("enable foreign keys: %w", err)
		}
	} else {
		sqldb.SetMaxOpenConns(cfg.PG.MaxOpenConns)
		sqldb.SetMaxIdleConns(cfg.PG.MaxIdleConns)
	}
	baseDB = sqldb

	closer := func() {
		baseDB = nil
		if err := sqldb.Close(); err != nil {
			dbLogger.Sugar().Errorf("close db: %v", err)
		}
	}
	return &DB{SQL: sqldb, Dialect: d}, closer, nil
}

// Migrate applies the embedded migrations for the connection's dialect.
func Migrate(d *DB) error {
	goose.SetBaseFS(embedMigrations)
	dir := "migrations/postgres"
	gooseDialect := "postgres"
	if d.Dialect == dialect.SQLite {
		dir = "migrations/sqlite"
		gooseDialect = "sqlite3"
	}
	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(d.SQL, dir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// UpdatePool updates DB pool settings at runtime.
func UpdatePool(maxOpen, maxIdle int) {
	if baseDB == nil {
		return
	}
	if maxOpen > 0 {
		baseDB.SetMaxOpenConns(maxOpen)
	}
	if maxIdle >= 0 {
		baseDB.SetMaxIdleConns(maxIdle)
	}
}
