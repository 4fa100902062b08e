package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"course-market/internal/infra"
	"course-market/internal/infra/gateway/vnpay"
	"course-market/internal/pkg/errs"
	"course-market/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrPaymentGateway = errs.New("payment gateway error")

type PaymentGateway interface {
	BuildPayURL(req vnpay.PayURLRequest) (string, error)
	VerifyCallback(params url.Values) (*vnpay.CallbackResult, error)
	MinAmount() int64
}

type CreatePaymentResult struct {
	OrderID    uuid.UUID
	PaymentURL *string
	IsFree     bool
}

// ReturnResult drives the browser redirect after the gateway bounces the
// customer back. OrderID is zero when the callback could not be decoded.
type ReturnResult struct {
	OrderID uuid.UUID
	Success bool
	Message string
}

type PaymentCommands interface {
	CreatePaymentURL(ctx context.Context, userID uuid.UUID, promotionCode *string, clientIP string) (*CreatePaymentResult, error)
	HandleReturn(ctx context.Context, params url.Values) ReturnResult
	HandleIPN(ctx context.Context, params url.Values) vnpay.IPNResponse
}

type paymentCommandsImpl struct {
	uow       shared.UnitOfWork
	gateway   PaymentGateway
	orders    OrderCommands
	finalizer OrderFinalizer
}

func NewPaymentCommands(uow shared.UnitOfWork, gateway PaymentGateway, orders OrderCommands, finalizer OrderFinalizer) PaymentCommands {
	return &paymentCommandsImpl{
		uow:       uow,
		gateway:   gateway,
		orders:    orders,
		finalizer: finalizer,
	}
}

func (p *paymentCommandsImpl) CreatePaymentURL(ctx context.Context, userID uuid.UUID, promotionCode *string, clientIP string) (*CreatePaymentResult, error) {
	view, err := p.orders.Checkout(ctx, userID, promotionCode)
	if err != nil {
		return nil, err
	}

	payable := view.TotalAmount
	if view.DiscountedAmount != nil {
		payable = *view.DiscountedAmount
	}

	// Totals below the gateway minimum (free courses included) settle
	// in-process: the gateway would reject the transaction anyway.
	if payable < p.gateway.MinAmount() {
		if err := p.finalizer.Complete(ctx, view.ID); err != nil {
			return nil, err
		}
		return &CreatePaymentResult{OrderID: view.ID, IsFree: true}, nil
	}

	payURL, err := p.gateway.BuildPayURL(vnpay.PayURLRequest{
		OrderID:   view.ID,
		Amount:    payable,
		ClientIP:  clientIP,
		OrderInfo: fmt.Sprintf("Course order %s", view.ID),
	})
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentGateway)
	}
	return &CreatePaymentResult{OrderID: view.ID, PaymentURL: &payURL}, nil
}

func (p *paymentCommandsImpl) HandleReturn(ctx context.Context, params url.Values) ReturnResult {
	result, err := p.gateway.VerifyCallback(params)
	if err != nil {
		return ReturnResult{Success: false, Message: "Invalid payment signature"}
	}

	if result.ResponseCode == vnpay.ResponseCodeSuccess {
		if err := p.finalizer.Complete(ctx, result.OrderID); err != nil && !errors.Is(err, ErrOrderAlreadySettled) {
			slog.Error("return callback transition failed", "order_id", result.OrderID, "error", err.Error())
			return ReturnResult{OrderID: result.OrderID, Success: false, Message: "Payment processing failed"}
		}
		return ReturnResult{OrderID: result.OrderID, Success: true, Message: vnpay.ResponseMessage(result.ResponseCode)}
	}

	if err := p.finalizer.Fail(ctx, result.OrderID, vnpay.ResponseMessage(result.ResponseCode)); err != nil && !errors.Is(err, ErrOrderAlreadySettled) {
		slog.Error("return callback transition failed", "order_id", result.OrderID, "error", err.Error())
	}
	return ReturnResult{OrderID: result.OrderID, Success: false, Message: vnpay.ResponseMessage(result.ResponseCode)}
}

// HandleIPN is the authoritative settlement path. Every outcome is expressed
// through the gateway's ack vocabulary; the caller must answer HTTP 200
// regardless.
func (p *paymentCommandsImpl) HandleIPN(ctx context.Context, params url.Values) vnpay.IPNResponse {
	result, err := p.gateway.VerifyCallback(params)
	if err != nil {
		if errors.Is(err, vnpay.ErrInvalidChecksum) {
			return vnpay.IPNChecksumFailed
		}
		// Signature verified but the payload fields are unusable.
		return vnpay.IPNUnknownError
	}

	snap, err := p.uow.CommandReads().OrderByID(ctx, result.OrderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return vnpay.IPNOrderNotFound
		}
		slog.Error("ipn order lookup failed", "order_id", result.OrderID, "error", err.Error())
		return vnpay.IPNUnknownError
	}

	if result.Amount != snap.Payable() {
		return vnpay.IPNInvalidAmount
	}
	if snap.Status.IsTerminal() {
		return vnpay.IPNAlreadyConfirmed
	}

	if result.ResponseCode == vnpay.ResponseCodeSuccess {
		err = p.finalizer.Complete(ctx, result.OrderID)
	} else {
		err = p.finalizer.Fail(ctx, result.OrderID, vnpay.ResponseMessage(result.ResponseCode))
	}
	if err != nil {
		if errors.Is(err, ErrOrderAlreadySettled) {
			return vnpay.IPNAlreadyConfirmed
		}
		slog.Error("ipn transition failed", "order_id", result.OrderID, "error", err.Error())
		return vnpay.IPNUnknownError
	}
	return vnpay.IPNSuccess
}
