package response

import (
	"course-market/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreatePaymentURLResponse struct {
	OrderID    uuid.UUID `json:"orderId"`
	PaymentURL *string   `json:"paymentUrl"`
	IsFree     bool      `json:"isFree"`
}

func FromCreatePaymentResult(rm *commands.CreatePaymentResult) *CreatePaymentURLResponse {
	return &CreatePaymentURLResponse{
		OrderID:    rm.OrderID,
		PaymentURL: rm.PaymentURL,
		IsFree:     rm.IsFree,
	}
}
