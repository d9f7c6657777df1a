package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/amberly/schoolbook-backend/internal/model"
)

// TableRepository provides the record accessors shared by every module.
// The table is a runtime parameter rather than a compile-time type; table
// and column names always come from the entity registry, never from
// request input.
type TableRepository struct {
	db *sql.DB
}

func NewTableRepository(db *sql.DB) *TableRepository {
	return &TableRepository{db: db}
}

// FetchAll returns every row of a table, column order matching the table
// definition. Always returns a non-nil row slice.
func (r *TableRepository) FetchAll(ctx context.Context, table string) (*model.Table, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	snapshot := &model.Table{Columns: cols, Rows: [][]any{}}
	for rows.Next() {
		cells := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		for i, c := range cells {
			// The driver hands TEXT columns back as []byte; JSON would
			// base64-encode those, so normalize to string.
			if b, ok := c.([]byte); ok {
				cells[i] = string(b)
			}
		}
		snapshot.Rows = append(snapshot.Rows, cells)
	}
	return snapshot, rows.Err()
}

// Insert appends one row with an auto-assigned id. Values go to the store
// untyped; SQLite's column affinity is the only coercion applied.
func (r *TableRepository) Insert(ctx context.Context, table string, columns []string, values []any) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(values)), ",")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ","), placeholders)
	_, err := r.db.ExecContext(ctx, query, values...)
	return err
}

// UpdateField writes a single column of the row matching id. Updates are
// issued one statement per modified field; a missing id affects zero rows
// and is not an error.
func (r *TableRepository) UpdateField(ctx context.Context, table, column string, value any, id int64) error {
	query := fmt.Sprintf("UPDATE %s SET %s = ? WHERE id = ?", table, column)
	_, err := r.db.ExecContext(ctx, query, value, id)
	return err
}

// DeleteByID removes at most one row. A missing id affects zero rows and
// is not an error.
func (r *TableRepository) DeleteByID(ctx context.Context, table string, id int64) error {
	_, err := r.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", table), id)
	return err
}
