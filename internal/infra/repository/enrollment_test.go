//go:build integration

package repository_test

import (
	"context"
	"testing"

	"course-market/internal/infra/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollmentRepository_Upsert(t *testing.T) {
	pool := setupTestPool(t)
	ctx := context.Background()
	repo := repository.NewEnrollmentRepository()
	studentID := insertTestUser(t, pool)
	courseID := insertTestCourse(t, pool, 0)

	created, err := repo.Upsert(ctx, pool, studentID, courseID)
	require.NoError(t, err)
	assert.True(t, created, "first grant creates the row")

	created, err = repo.Upsert(ctx, pool, studentID, courseID)
	require.NoError(t, err)
	assert.False(t, created, "repeated grant lands on the existing row")

	var count int
	err = pool.QueryRow(ctx, `
		SELECT count(*) FROM enrollments WHERE student_id = $1 AND course_id = $2`,
		studentID, courseID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "ON CONFLICT keeps the pair unique")
}
