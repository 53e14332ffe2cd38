package repository

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"strings"

	"job-board/internal/database"

	"github.com/jackc/pgx/v5"
)

type recordedCall struct {
	query string
	args  []any
}

// fakeDB answers queries from a script keyed by a query substring.
type fakeDB struct {
	results map[string][][]any
	execN   int64
	calls   []recordedCall
}

func newFakeDB() *fakeDB {
	return &fakeDB{results: map[string][][]any{}}
}

func (d *fakeDB) on(fragment string, rows ...[]any) *fakeDB {
	d.results[fragment] = rows
	return d
}

func (d *fakeDB) lookup(query string) [][]any {
	best := ""
	for frag := range d.results {
		if strings.Contains(query, frag) && len(frag) > len(best) {
			best = frag
		}
	}
	if best == "" {
		return nil
	}
	return d.results[best]
}

func (d *fakeDB) Ping(context.Context) error { return nil }
func (d *fakeDB) Close() error               { return nil }
func (d *fakeDB) SQLDB() *sql.DB             { return nil }

func (d *fakeDB) Exec(_ context.Context, q string, args ...any) (int64, error) {
	d.calls = append(d.calls, recordedCall{q, args})
	return d.execN, nil
}

func (d *fakeDB) Query(_ context.Context, q string, args ...any) (database.Rows, error) {
	d.calls = append(d.calls, recordedCall{q, args})
	return &fakeRows{rows: d.lookup(q)}, nil
}

func (d *fakeDB) QueryRow(_ context.Context, q string, args ...any) database.Row {
	d.calls = append(d.calls, recordedCall{q, args})
	rows := d.lookup(q)
	if len(rows) == 0 {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{vals: rows[0]}
}

func (d *fakeDB) Begin(context.Context) (database.Tx, error) {
	return nil, fmt.Errorf("transactions not supported")
}

type fakeRows struct {
	rows [][]any
	i    int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }
func (r *fakeRows) Next() bool {
	r.i++
	return r.i <= len(r.rows)
}
func (r *fakeRows) Scan(dest ...any) error { return assign(r.rows[r.i-1], dest) }

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(r.vals, dest)
}

func assign(vals []any, dest []any) error {
	if len(vals) != len(dest) {
		return fmt.Errorf("scan: %d values into %d targets", len(vals), len(dest))
	}
	for i, v := range vals {
		target := reflect.ValueOf(dest[i]).Elem()
		if v == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		val := reflect.ValueOf(v)
		if target.Kind() == reflect.Pointer && val.Type() == target.Type().Elem() {
			p := reflect.New(val.Type())
			p.Elem().Set(val)
			target.Set(p)
			continue
		}
		if !val.Type().AssignableTo(target.Type()) {
			return fmt.Errorf("scan: column %d: %s not assignable to %s", i, val.Type(), target.Type())
		}
		target.Set(val)
	}
	return nil
}
