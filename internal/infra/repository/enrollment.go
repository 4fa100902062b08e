package repository

import (
	"context"

	"course-market/internal/infra/db"

	"github.com/google/uuid"
)

type EnrollmentRepository struct{}

func NewEnrollmentRepository() *EnrollmentRepository {
	return &EnrollmentRepository{}
}

const upsertEnrollmentSQL = `
INSERT INTO enrollments (id, student_id, course_id, created_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (student_id, course_id) DO NOTHING`

// Upsert grants course access exactly once per (student, course). The
// ON CONFLICT clause is the idempotency boundary: concurrent grants and
// retried gateway callbacks both land on the same row without erroring.
func (r *EnrollmentRepository) Upsert(ctx context.Context, tx db.DBTX, studentID, courseID uuid.UUID) (bool, error) {
	tag, err := tx.Exec(ctx, upsertEnrollmentSQL, uuid.New(), studentID, courseID)
	if err != nil {
		return false, wrapPgError("failed to upsert enrollment", err)
	}
	return tag.RowsAffected() > 0, nil
}
