package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"

	"job-board/internal/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestErrorClassifiers(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}

	if !IsUniqueViolation(unique) || IsUniqueViolation(fk) {
		t.Fatalf("unique violation misclassified")
	}
	if !IsForeignKeyViolation(fk) || IsForeignKeyViolation(errors.New("x")) {
		t.Fatalf("foreign key violation misclassified")
	}
	if !IsNoRows(pgx.ErrNoRows) || !IsNoRows(sql.ErrNoRows) || IsNoRows(unique) {
		t.Fatalf("no rows misclassified")
	}
}

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		DBHost:     "db",
		DBPort:     "5432",
		DBName:     "jobs",
		DBUser:     "app",
		DBPassword: "p@ss word",
		DBSSLMode:  "disable",
	})
	if !strings.HasPrefix(dsn, "postgres://app:") || !strings.Contains(dsn, "@db:5432/jobs?sslmode=disable") {
		t.Fatalf("unexpected dsn %q", dsn)
	}
}
