//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"course-market/internal/infra/db"
	"course-market/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	postgresContainerOnce sync.Once
	postgresContainer     testcontainers.Container

	testDBUser     = "test"
	testDBPassword = "testpass"
)

// setupTestPool starts the shared postgres container (once per package run),
// creates a throwaway database for this test and applies the schema.
func setupTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	startPostgresOnce(t)

	ctx := context.Background()
	mappedPort, err := postgresContainer.MappedPort(ctx, nat.Port("5432/tcp"))
	require.NoError(t, err)
	host, err := postgresContainer.Host(ctx)
	require.NoError(t, err)

	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testDBUser, testDBPassword, host, mappedPort.Port())

	adminCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	adminPool, err := pgxpool.New(adminCtx, adminDSN)
	require.NoError(t, err)
	defer adminPool.Close()

	_, err = adminPool.Exec(adminCtx, "CREATE DATABASE "+dbName)
	require.NoError(t, err)

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cleanupCancel()
		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			return
		}
		defer cleanupPool.Close()
		_, _ = cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName)
	})

	pool, cleanup, err := db.Connect(config.DBConfig{
		Host:     host,
		Port:     mappedPort.Port(),
		User:     testDBUser,
		Password: testDBPassword,
		DBName:   dbName,
		SSLMode:  "disable",
	})
	require.NoError(t, err)
	t.Cleanup(cleanup)

	applySchema(t, pool)
	return pool
}

func startPostgresOnce(t *testing.T) {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testDBUser,
				"POSTGRES_PASSWORD": testDBPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=256m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "synchronous_commit=off",
				"-c", "full_page_writes=off",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testDBUser, testDBPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "repository-tests"},
		}

		startCtx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
		defer cancel()

		var err error
		postgresContainer, err = testcontainers.GenericContainer(startCtx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		require.NoError(t, err, "failed to start postgres container")
	})
}

// applySchema executes db/schema.sql, resolving the path relative to the
// package dir go test runs from.
func applySchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	var (
		content []byte
		readErr error
	)
	candidates := []string{
		filepath.Join("db", "schema.sql"),
		filepath.Join("..", "..", "..", "db", "schema.sql"),
	}
	for _, cand := range candidates {
		content, readErr = os.ReadFile(cand)
		if readErr == nil {
			break
		}
	}
	require.NoError(t, readErr, "failed to read schema file")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	_, err := pool.Exec(ctx, string(content))
	require.NoError(t, err, "failed to apply schema")
}

// Seed helpers for rows the foreign keys demand.

func insertTestUser(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO users (id, email, password_hash, role, is_active)
		VALUES ($1, $2, 'x', 'student', true)`,
		id, id.String()+"@example.com")
	require.NoError(t, err)
	return id
}

func insertTestCourse(t *testing.T, pool *pgxpool.Pool, price int64) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO courses (id, title, price_amount, published)
		VALUES ($1, $2, $3, true)`,
		id, "Course "+id.String()[:8], price)
	require.NoError(t, err)
	return id
}
