package response

import (
	"time"

	"course-market/internal/usecase/queries"
)

type PromotionResponse struct {
	Code       string    `json:"code"`
	PercentOff int32     `json:"percentOff"`
	ValidFrom  time.Time `json:"validFrom"`
	ValidTo    time.Time `json:"validTo"`
}

func FromPromotionView(rm *queries.PromotionView) *PromotionResponse {
	return &PromotionResponse{
		Code:       rm.Code,
		PercentOff: rm.PercentOff,
		ValidFrom:  rm.ValidFrom,
		ValidTo:    rm.ValidTo,
	}
}
