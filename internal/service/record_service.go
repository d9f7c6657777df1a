package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/amberly/schoolbook-backend/internal/model"
	"github.com/amberly/schoolbook-backend/internal/repository"
)

// RecordService implements the generic add/search/view/edit/delete workflow
// shared by all seven record modules.
type RecordService struct {
	tables *repository.TableRepository
	log    zerolog.Logger
}

func NewRecordService(tables *repository.TableRepository, log zerolog.Logger) *RecordService {
	return &RecordService{
		tables: tables,
		log:    log.With().Str("component", "record_service").Logger(),
	}
}

// Add inserts one row built from the supplied field values. Every declared
// field is written, in declaration order; fields absent from the payload
// are stored as empty text. No value is validated — "abc" in a numeric
// column is accepted and stored as given.
func (s *RecordService) Add(ctx context.Context, entity model.Entity, values map[string]string) error {
	cols := entity.Columns()
	vals := make([]any, len(cols))
	for i, col := range cols {
		vals[i] = values[col]
	}

	if err := s.tables.Insert(ctx, entity.Table, cols, vals); err != nil {
		return err
	}

	s.log.Debug().Str("module", entity.Name).Msg("record added")
	return nil
}

// List returns the full table snapshot, filtered to rows where any
// stringified cell contains the search query case-insensitively. The
// filter is a linear scan over the materialized snapshot, not a SQL
// WHERE clause.
func (s *RecordService) List(ctx context.Context, entity model.Entity, search string) (*model.Table, error) {
	snapshot, err := s.tables.FetchAll(ctx, entity.Table)
	if err != nil {
		return nil, err
	}

	if search == "" {
		return snapshot, nil
	}

	needle := strings.ToLower(search)
	filtered := &model.Table{Columns: snapshot.Columns, Rows: [][]any{}}
	for _, row := range snapshot.Rows {
		if rowMatches(row, needle) {
			filtered.Rows = append(filtered.Rows, row)
		}
	}
	return filtered, nil
}

// Update writes every field with a non-empty replacement value to the row
// matching id, one statement per field. Empty values are skipped, so a
// field cannot be cleared this way. An unknown id is a silent no-op.
func (s *RecordService) Update(ctx context.Context, entity model.Entity, id int64, values map[string]string) error {
	for _, field := range entity.Fields {
		value, ok := values[field.Name]
		if !ok || value == "" {
			continue
		}
		if err := s.tables.UpdateField(ctx, entity.Table, field.Name, value, id); err != nil {
			return err
		}
	}

	s.log.Debug().Str("module", entity.Name).Int64("id", id).Msg("record updated")
	return nil
}

// Delete removes the row matching id. An unknown id is a silent no-op.
func (s *RecordService) Delete(ctx context.Context, entity model.Entity, id int64) error {
	if err := s.tables.DeleteByID(ctx, entity.Table, id); err != nil {
		return err
	}

	s.log.Debug().Str("module", entity.Name).Int64("id", id).Msg("record deleted")
	return nil
}

// rowMatches reports whether any cell of the row contains needle when
// lowercased. needle must already be lowercase.
func rowMatches(row []any, needle string) bool {
	for _, cell := range row {
		if cell == nil {
			continue
		}
		if strings.Contains(strings.ToLower(fmt.Sprint(cell)), needle) {
			return true
		}
	}
	return false
}
