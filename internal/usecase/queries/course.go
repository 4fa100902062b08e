package queries

import (
	"context"

	"course-market/internal/infra"
	"course-market/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCourseNotFound = errs.New("course not found")

type CourseViewRepo interface {
	ListPublished(ctx context.Context) ([]*CourseView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CourseView, error)
}

type CourseQueries interface {
	List(ctx context.Context) ([]*CourseView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CourseView, error)
}

type courseQueriesImpl struct {
	repo CourseViewRepo
}

func NewCourseQueries(repo CourseViewRepo) CourseQueries {
	return &courseQueriesImpl{repo: repo}
}

func (q *courseQueriesImpl) List(ctx context.Context) ([]*CourseView, error) {
	return q.repo.ListPublished(ctx)
}

func (q *courseQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CourseView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return view, nil
}
