package vnpay

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"net/url"
	"strconv"

	"course-market/internal/pkg/clock"
	"course-market/internal/pkg/config"

	"github.com/google/uuid"
)

var (
	ErrInvalidChecksum   = errors.New("gateway checksum verification failed")
	ErrMalformedCallback = errors.New("malformed gateway callback parameters")
	ErrInvalidAmount     = errors.New("payment amount must be positive")
)

const (
	version    = "2.1.0"
	commandPay = "pay"
	currency   = "VND"
	dateLayout = "20060102150405"
)

// Client signs outbound payment URLs and verifies inbound callbacks for the
// VNPay gateway. All amounts cross the wire multiplied by 100, per the
// gateway's parameter contract.
type Client struct {
	cfg   config.VNPayConfig
	clock clock.Clock
}

func NewClient(cfg config.VNPayConfig, clk clock.Clock) *Client {
	return &Client{cfg: cfg, clock: clk}
}

// MinAmount is the smallest total the gateway accepts; anything below it is
// settled server-side without a gateway round trip.
func (c *Client) MinAmount() int64 {
	return c.cfg.MinAmount
}

type PayURLRequest struct {
	OrderID   uuid.UUID
	Amount    int64 // VND, unscaled
	ClientIP  string
	OrderInfo string
}

func (c *Client) BuildPayURL(req PayURLRequest) (string, error) {
	if req.Amount <= 0 {
		return "", ErrInvalidAmount
	}

	now := c.clock.Now()
	params := url.Values{}
	params.Set("vnp_Version", version)
	params.Set("vnp_Command", commandPay)
	params.Set("vnp_TmnCode", c.cfg.TmnCode)
	params.Set("vnp_Amount", strconv.FormatInt(req.Amount*100, 10))
	params.Set("vnp_CurrCode", currency)
	params.Set("vnp_TxnRef", req.OrderID.String())
	params.Set("vnp_OrderInfo", req.OrderInfo)
	params.Set("vnp_OrderType", "other")
	params.Set("vnp_Locale", c.cfg.Locale)
	params.Set("vnp_ReturnUrl", c.cfg.ReturnURL)
	params.Set("vnp_IpAddr", req.ClientIP)
	params.Set("vnp_CreateDate", now.Format(dateLayout))
	params.Set("vnp_ExpireDate", now.Add(c.cfg.ExpireIn).Format(dateLayout))

	encoded := params.Encode()
	return c.cfg.PayURL + "?" + encoded + "&vnp_SecureHash=" + c.sign(encoded), nil
}

// CallbackResult is a verified, decoded gateway callback. Amount is scaled
// back to whole VND.
type CallbackResult struct {
	OrderID       uuid.UUID
	Amount        int64
	ResponseCode  string
	TransactionNo string
	BankCode      string
}

// VerifyCallback authenticates inbound gateway parameters (both the browser
// return and the server-to-server IPN use the same signature scheme) and
// decodes them. The client-declared response code is only meaningful after
// the signature checks out.
func (c *Client) VerifyCallback(params url.Values) (*CallbackResult, error) {
	received := params.Get("vnp_SecureHash")
	if received == "" {
		return nil, ErrInvalidChecksum
	}

	signable := url.Values{}
	for key, vals := range params {
		if key == "vnp_SecureHash" || key == "vnp_SecureHashType" {
			continue
		}
		for _, v := range vals {
			signable.Add(key, v)
		}
	}

	expected := c.sign(signable.Encode())
	if !hmac.Equal([]byte(expected), []byte(received)) {
		return nil, ErrInvalidChecksum
	}

	orderID, err := uuid.Parse(params.Get("vnp_TxnRef"))
	if err != nil {
		return nil, ErrMalformedCallback
	}

	scaled, err := strconv.ParseInt(params.Get("vnp_Amount"), 10, 64)
	if err != nil || scaled < 0 || scaled%100 != 0 {
		return nil, ErrMalformedCallback
	}

	return &CallbackResult{
		OrderID:       orderID,
		Amount:        scaled / 100,
		ResponseCode:  params.Get("vnp_ResponseCode"),
		TransactionNo: params.Get("vnp_TransactionNo"),
		BankCode:      params.Get("vnp_BankCode"),
	}, nil
}

// sign computes HMAC-SHA512 over the canonically ordered, urlencoded
// parameter string. url.Values.Encode sorts by key, which is exactly the
// gateway's canonical ordering.
func (c *Client) sign(encodedParams string) string {
	mac := hmac.New(sha512.New, []byte(c.cfg.HashSecret))
	mac.Write([]byte(encodedParams))
	return hex.EncodeToString(mac.Sum(nil))
}
