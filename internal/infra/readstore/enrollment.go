package readstore

import (
	"context"

	"course-market/internal/infra"
	"course-market/internal/infra/db"
	"course-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type EnrollmentReadStore struct {
	db db.DBTX
}

func NewEnrollmentReadStore(dbtx db.DBTX) *EnrollmentReadStore {
	return &EnrollmentReadStore{db: dbtx}
}

const enrollmentExistsSQL = `
SELECT EXISTS (
	SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2
)`

func (s *EnrollmentReadStore) Exists(ctx context.Context, studentID, courseID uuid.UUID) (bool, error) {
	var exists bool
	if err := s.db.QueryRow(ctx, enrollmentExistsSQL, studentID, courseID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check enrollment", err)
	}
	return exists, nil
}

const listEnrollmentsByUserSQL = `
SELECT e.course_id, c.title, c.category, e.created_at
FROM enrollments e
JOIN courses c ON c.id = e.course_id
WHERE e.student_id = $1
ORDER BY e.created_at DESC`

func (s *EnrollmentReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.EnrolledCourseView, error) {
	rows, err := s.db.Query(ctx, listEnrollmentsByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list enrollments", err)
	}
	defer rows.Close()

	var views []*queries.EnrolledCourseView
	for rows.Next() {
		var view queries.EnrolledCourseView
		if err := rows.Scan(&view.CourseID, &view.Title, &view.Category, &view.EnrolledAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan enrollment row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate enrollment rows", err)
	}
	return views, nil
}
