package request

// CheckoutRequest is shared by checkout and create-payment-url: both snapshot
// the cart and optionally apply a promotion code.
type CheckoutRequest struct {
	PromotionCode *string `json:"promotionCode"`
}
