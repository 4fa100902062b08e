//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"course-market/internal/domain/order"
	"course-market/internal/infra"
	"course-market/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestOrder(t *testing.T, pool *pgxpool.Pool, userID, courseID uuid.UUID, price int64) uuid.UUID {
	t.Helper()
	line, err := order.NewLine(courseID, price)
	require.NoError(t, err)
	ord, err := order.NewFromCart(userID, []order.Line{line}, nil, time.Now().UTC())
	require.NoError(t, err)

	repo := repository.NewOrderRepository()
	require.NoError(t, repo.Create(context.Background(), pool, ord))
	return ord.ID()
}

func orderStatus(t *testing.T, pool *pgxpool.Pool, orderID uuid.UUID) string {
	t.Helper()
	var status string
	err := pool.QueryRow(context.Background(), `SELECT status FROM orders WHERE id = $1`, orderID).Scan(&status)
	require.NoError(t, err)
	return status
}

func TestOrderRepository_Create(t *testing.T) {
	pool := setupTestPool(t)
	ctx := context.Background()
	userID := insertTestUser(t, pool)
	courseID := insertTestCourse(t, pool, 150_000)

	orderID := createTestOrder(t, pool, userID, courseID, 150_000)

	assert.Equal(t, "pending", orderStatus(t, pool, orderID))

	var lineCount int
	var linePrice int64
	err := pool.QueryRow(ctx, `
		SELECT count(*), min(price_amount) FROM order_lines WHERE order_id = $1`, orderID).
		Scan(&lineCount, &linePrice)
	require.NoError(t, err)
	assert.Equal(t, 1, lineCount)
	assert.Equal(t, int64(150_000), linePrice, "line price is the checkout-time snapshot")
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	pool := setupTestPool(t)
	ctx := context.Background()
	repo := repository.NewOrderRepository()
	userID := insertTestUser(t, pool)
	courseID := insertTestCourse(t, pool, 150_000)

	t.Run("pending order transitions", func(t *testing.T) {
		orderID := createTestOrder(t, pool, userID, courseID, 150_000)

		require.NoError(t, repo.UpdateStatus(ctx, pool, orderID, order.StatusCompleted))
		assert.Equal(t, "completed", orderStatus(t, pool, orderID))
	})

	t.Run("terminal order refuses further updates", func(t *testing.T) {
		orderID := createTestOrder(t, pool, userID, courseID, 150_000)
		require.NoError(t, repo.UpdateStatus(ctx, pool, orderID, order.StatusCompleted))

		err := repo.UpdateStatus(ctx, pool, orderID, order.StatusFailed)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
		assert.Equal(t, "completed", orderStatus(t, pool, orderID), "the row guard keeps terminal states immutable")
	})

	t.Run("unknown order reports conflict", func(t *testing.T) {
		err := repo.UpdateStatus(ctx, pool, uuid.New(), order.StatusCompleted)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})
}
