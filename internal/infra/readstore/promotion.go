package readstore

import (
	"context"
	"strings"

	"course-market/internal/infra"
	"course-market/internal/infra/db"
	"course-market/internal/pkg/pgconv"
	"course-market/internal/usecase/shared"
)

type PromotionReadStore struct {
	db db.DBTX
}

func NewPromotionReadStore(dbtx db.DBTX) *PromotionReadStore {
	return &PromotionReadStore{db: dbtx}
}

const promotionByCodeSQL = `
SELECT id, code, percent_off, valid_from, valid_to
FROM promotions
WHERE code = $1`

func (s *PromotionReadStore) FindByCode(ctx context.Context, code string) (*shared.PromotionSnapshot, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	var snap shared.PromotionSnapshot
	err := s.db.QueryRow(ctx, promotionByCodeSQL, normalized).
		Scan(&snap.ID, &snap.Code, &snap.PercentOff, &snap.ValidFrom, &snap.ValidTo)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promotion not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find promotion by code", err)
	}
	return &snap, nil
}
