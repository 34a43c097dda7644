// Package store holds the small generic helpers every repository composes
// for its uniform CRUD paths. Absence is reported as a nil pointer (or a
// false "matched" flag), never as an error, so callers decide what a miss
// means.
package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// SelectAll runs a query expected to return any number of rows.
func SelectAll[T any](ctx context.Context, q sqlx.QueryerContext, query string, args ...any) ([]T, error) {
	var items []T
	if err := sqlx.SelectContext(ctx, q, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// GetOne runs a query expected to return at most one row. A miss returns
// (nil, nil).
func GetOne[T any](ctx context.Context, q sqlx.QueryerContext, query string, args ...any) (*T, error) {
	var item T
	err := sqlx.GetContext(ctx, q, &item, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Exec runs a write and reports whether any row was touched. An update
// against a nonexistent row is not an error here.
func Exec(ctx context.Context, e sqlx.ExecerContext, query string, args ...any) (bool, error) {
	res, err := e.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// NamedExec is Exec for named queries.
func NamedExec(ctx context.Context, e sqlx.ExtContext, query string, arg any) (bool, error) {
	res, err := sqlx.NamedExecContext(ctx, e, query, arg)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
