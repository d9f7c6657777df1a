package main

import (
	"context"
	"fmt"
	"time"

	"github.com/amberly/schoolbook-backend/internal/config"
	"github.com/amberly/schoolbook-backend/internal/database"
	"github.com/amberly/schoolbook-backend/internal/logger"
	"github.com/amberly/schoolbook-backend/internal/model"
	"github.com/amberly/schoolbook-backend/internal/repository"
)

// Seeds a handful of sample rows through the repository layer so the
// console has something to show on a fresh store.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := database.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open SQLite store")
	}
	defer db.Close()

	if err := database.InitSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize schema")
	}

	tables := repository.NewTableRepository(db)

	fmt.Println("=== Seeding sample records ===")

	type row struct {
		table   string
		columns []string
		values  []any
	}
	rows := []row{
		{"students", []string{"name", "class", "age"}, []any{"Aisha Khan", "5A", "10"}},
		{"students", []string{"name", "class", "age"}, []any{"Bilal Ahmed", "5A", "11"}},
		{"students", []string{"name", "class", "age"}, []any{"Chloe Park", "6B", "12"}},
		{"teachers", []string{"name", "subject"}, []any{"Mrs. Rivera", "Mathematics"}},
		{"teachers", []string{"name", "subject"}, []any{"Mr. Osei", "English"}},
		{"fees", []string{"student_id", "amount", "paid"}, []any{"1", "500", "1"}},
		{"fees", []string{"student_id", "amount", "paid"}, []any{"2", "300", "0"}},
		{"exams", []string{"student_id", "subject", "marks"}, []any{"1", "Mathematics", "88"}},
		{"library", []string{"book", "student_id", "issue_date"}, []any{"The Railway Children", "3", "2026-08-10"}},
		{"timetable", []string{"class", "day", "subject", "teacher"}, []any{"5A", "Monday", "Mathematics", "Mrs. Rivera"}},
		{"attendance", []string{"student_id", "date", "status"}, []any{"1", time.Now().Format("2006-01-02"), model.AttendancePresent}},
	}

	for _, r := range rows {
		if err := tables.Insert(ctx, r.table, r.columns, r.values); err != nil {
			log.Fatal().Err(err).Str("table", r.table).Msg("Seed insert failed")
		}
	}

	fmt.Printf("Seeded %d rows\n", len(rows))
}
