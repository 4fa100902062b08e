// Seed inserts a minimal demo data set: two accounts, a handful of courses
// and the SAVE10 promotion. Safe to re-run; every insert is ON CONFLICT
// DO NOTHING keyed on the natural identifier.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"course-market/internal/infra/db"
	"course-market/internal/pkg/config"
	"course-market/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	insertUserSQL = `
INSERT INTO users (id, email, password_hash, role, is_active)
VALUES ($1, $2, $3, $4, true)
ON CONFLICT (email) DO NOTHING`

	insertCourseSQL = `
INSERT INTO courses (id, title, description, category, price_amount, published)
SELECT $1, $2, $3, $4, $5, $6
WHERE NOT EXISTS (SELECT 1 FROM courses WHERE title = $2)`

	insertPromotionSQL = `
INSERT INTO promotions (id, code, percent_off, valid_from, valid_to)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (code) DO NOTHING`
)

type seedCourse struct {
	title       string
	description string
	category    string
	price       int64
	published   bool
}

var seedCourses = []seedCourse{
	{"Go Basics", "Syntax, tooling and the standard library.", "programming", 150_000, true},
	{"PostgreSQL for Backend Developers", "Schema design, indexes and transactions.", "databases", 200_000, true},
	{"Intro to Git", "Branches, merges and everyday workflows.", "tooling", 0, true},
	{"Advanced Concurrency", "Channels, contexts and worker pools.", "programming", 250_000, false},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seed(ctx, pool); err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}
	slog.Info("seed data applied")
}

func seed(ctx context.Context, pool *pgxpool.Pool) error {
	if err := seedUser(ctx, pool, "admin@example.com", "admin-password", "admin"); err != nil {
		return err
	}
	if err := seedUser(ctx, pool, "student@example.com", "student-password", "student"); err != nil {
		return err
	}

	for _, course := range seedCourses {
		_, err := pool.Exec(ctx, insertCourseSQL,
			uuid.New(), course.title, course.description, course.category, course.price, course.published)
		if err != nil {
			return err
		}
	}

	now := time.Now()
	_, err := pool.Exec(ctx, insertPromotionSQL,
		uuid.New(), "SAVE10", 10, now.AddDate(0, -1, 0), now.AddDate(1, 0, 0))
	return err
}

func seedUser(ctx context.Context, pool *pgxpool.Pool, email, plain, role string) error {
	hash, err := password.HashPassword(plain)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, insertUserSQL, uuid.New(), email, hash, role)
	return err
}
