package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"job-board/internal/config"
	dbpg "job-board/internal/database/postgres"
)

type PostgresDB struct {
	db *sql.DB
}

// Connect opens a database/sql handle through the pgx stdlib driver. The
// migrate command uses it directly; the server wraps its pool with Wrap.
func Connect(cfg config.DatabaseConfig) (*PostgresDB, error) {
	db, err := sql.Open("pgx", dbpg.DSN(cfg))
	if err != nil {
		return nil, err
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}

	return &PostgresDB{db: db}, nil
}

func Wrap(db *sql.DB) *PostgresDB {
	return &PostgresDB{db: db}
}

func (p *PostgresDB) Close() error {
	if p == nil || p.db == nil {
		return nil
	}
	return p.db.Close()
}

func (p *PostgresDB) sqlDB() *sql.DB {
	if p == nil {
		return nil
	}
	return p.db
}

func (p *PostgresDB) SQLDB() *sql.DB {
	return p.sqlDB()
}
