package readstore

import (
	"context"

	"course-market/internal/infra"
	"course-market/internal/infra/db"
	"course-market/internal/pkg/pgconv"
	"course-market/internal/usecase/queries"
	"course-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type CourseReadStore struct {
	db db.DBTX
}

func NewCourseReadStore(dbtx db.DBTX) *CourseReadStore {
	return &CourseReadStore{db: dbtx}
}

const courseSnapshotSQL = `
SELECT id, title, price_amount, published
FROM courses
WHERE id = $1`

func (s *CourseReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.CourseSnapshot, error) {
	var snap shared.CourseSnapshot
	err := s.db.QueryRow(ctx, courseSnapshotSQL, id).
		Scan(&snap.ID, &snap.Title, &snap.Price, &snap.Published)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("course not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find course by ID", err)
	}
	return &snap, nil
}

const courseViewSQL = `
SELECT id, title, description, category, price_amount, published, created_at
FROM courses
WHERE id = $1`

func (s *CourseReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CourseView, error) {
	var view queries.CourseView
	err := s.db.QueryRow(ctx, courseViewSQL, id).
		Scan(&view.ID, &view.Title, &view.Description, &view.Category, &view.Price, &view.Published, &view.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("course not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find course by ID", err)
	}
	return &view, nil
}

const listPublishedCoursesSQL = `
SELECT id, title, description, category, price_amount, published, created_at
FROM courses
WHERE published
ORDER BY created_at DESC`

func (s *CourseReadStore) ListPublished(ctx context.Context) ([]*queries.CourseView, error) {
	rows, err := s.db.Query(ctx, listPublishedCoursesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list courses", err)
	}
	defer rows.Close()

	var views []*queries.CourseView
	for rows.Next() {
		var view queries.CourseView
		if err := rows.Scan(&view.ID, &view.Title, &view.Description, &view.Category, &view.Price, &view.Published, &view.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan course row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate course rows", err)
	}
	return views, nil
}
