// Package pgxtest provides in-memory pgx rows for store tests.
package pgxtest

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Row is a pgx.Row whose Scan is supplied by the test. A nil scan behaves
// like an empty result.
type Row struct {
	scan func(dest ...any) error
}

func NewRow(scanner func(dest ...any) error) Row {
	return Row{scan: scanner}
}

// ErrRow returns a Row whose Scan fails with err.
func ErrRow(err error) Row {
	return Row{scan: func(...any) error { return err }}
}

func (r Row) Scan(dest ...any) error {
	if r.scan == nil {
		return pgx.ErrNoRows
	}
	return r.scan(dest...)
}

// Rows iterates over fixed values. Each record is assigned to the scan
// destinations positionally; destination and value types must match.
type Rows struct {
	Records [][]any
	// FailErr is reported by Err after iteration when set.
	FailErr error

	idx    int
	closed bool
}

func NewRows(records ...[]any) *Rows {
	return &Rows{Records: records}
}

func (r *Rows) Next() bool {
	if r.closed || r.idx >= len(r.Records) {
		return false
	}
	r.idx++
	return true
}

func (r *Rows) Scan(dest ...any) error {
	if r.idx == 0 || r.idx > len(r.Records) {
		return pgx.ErrNoRows
	}
	record := r.Records[r.idx-1]
	if len(dest) != len(record) {
		return fmt.Errorf("pgxtest: scan into %d destinations, record has %d values", len(dest), len(record))
	}
	for i, d := range dest {
		dv := reflect.ValueOf(d)
		if dv.Kind() != reflect.Pointer || dv.IsNil() {
			return fmt.Errorf("pgxtest: destination %d is not a pointer", i)
		}
		v := reflect.ValueOf(record[i])
		if !v.IsValid() {
			dv.Elem().SetZero()
			continue
		}
		if !v.Type().AssignableTo(dv.Elem().Type()) {
			return fmt.Errorf("pgxtest: cannot scan %T into %T", record[i], d)
		}
		dv.Elem().Set(v)
	}
	return nil
}

func (r *Rows) Err() error { return r.FailErr }

func (r *Rows) Close() { r.closed = true }

// Closed reports whether Close was called.
func (r *Rows) Closed() bool { return r.closed }

func (*Rows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }

func (*Rows) Conn() *pgx.Conn { return nil }

func (*Rows) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (*Rows) Values() ([]any, error) {
	return nil, errors.New("values not supported in test rows")
}

func (*Rows) RawValues() [][]byte { return nil }

var _ pgx.Rows = (*Rows)(nil)
