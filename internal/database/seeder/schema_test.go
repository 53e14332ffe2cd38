package seeder

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"job-board/internal/database"
)

type fakeRows struct {
	vals []string
	i    int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }
func (r *fakeRows) Next() bool {
	r.i++
	return r.i <= len(r.vals)
}
func (r *fakeRows) Scan(dest ...any) error {
	p, ok := dest[0].(*string)
	if !ok {
		return fmt.Errorf("unexpected dest")
	}
	*p = r.vals[r.i-1]
	return nil
}

type columnsDB struct {
	columns []string
}

func (d columnsDB) Ping(context.Context) error { return nil }
func (d columnsDB) Close() error               { return nil }
func (d columnsDB) Exec(context.Context, string, ...any) (int64, error) {
	return 0, nil
}
func (d columnsDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return &fakeRows{vals: d.columns}, nil
}
func (d columnsDB) QueryRow(context.Context, string, ...any) database.Row { return nil }
func (d columnsDB) Begin(context.Context) (database.Tx, error)            { return nil, fmt.Errorf("no tx") }
func (d columnsDB) SQLDB() *sql.DB                                         { return nil }

func TestEnsureTableColumns(t *testing.T) {
	db := columnsDB{columns: []string{"id", "name"}}

	if err := EnsureTableColumns(context.Background(), db, "skills", "id", "name"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	err := EnsureTableColumns(context.Background(), db, "skills", "id", "category", "created_at")
	if err == nil {
		t.Fatalf("expected schema mismatch")
	}
	if !strings.Contains(err.Error(), "skills.category") || !strings.Contains(err.Error(), "skills.created_at") {
		t.Fatalf("expected all missing columns listed, got %v", err)
	}
}
