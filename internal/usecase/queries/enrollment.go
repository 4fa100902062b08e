package queries

import (
	"context"

	"github.com/google/uuid"
)

type EnrollmentViewRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*EnrolledCourseView, error)
}

type EnrollmentQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*EnrolledCourseView, error)
}

type enrollmentQueriesImpl struct {
	repo EnrollmentViewRepo
}

func NewEnrollmentQueries(repo EnrollmentViewRepo) EnrollmentQueries {
	return &enrollmentQueriesImpl{repo: repo}
}

func (q *enrollmentQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*EnrolledCourseView, error) {
	return q.repo.ListByUser(ctx, userID)
}
