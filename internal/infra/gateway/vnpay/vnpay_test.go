//go:build unit

package vnpay_test

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/url"
	"testing"
	"time"

	"course-market/internal/infra/gateway/vnpay"
	"course-market/internal/pkg/clock"
	"course-market/internal/pkg/config"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hashSecret = "test-secret"

var frozenNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newClient() *vnpay.Client {
	cfg := config.VNPayConfig{
		TmnCode:    "TESTTMN",
		HashSecret: hashSecret,
		PayURL:     "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
		ReturnURL:  "https://api.example.com/api/payment/vnpay-return",
		Locale:     "vn",
		MinAmount:  5000,
		ExpireIn:   15 * time.Minute,
	}
	return vnpay.NewClient(cfg, clock.NewMockClock(frozenNow))
}

// signParams mirrors the gateway's signature: HMAC-SHA512 over the sorted
// urlencoded params, excluding the hash fields themselves.
func signParams(params url.Values) string {
	mac := hmac.New(sha512.New, []byte(hashSecret))
	mac.Write([]byte(params.Encode()))
	return hex.EncodeToString(mac.Sum(nil))
}

func callbackParams(orderID uuid.UUID, scaledAmount, responseCode string) url.Values {
	params := url.Values{}
	params.Set("vnp_TxnRef", orderID.String())
	params.Set("vnp_Amount", scaledAmount)
	params.Set("vnp_ResponseCode", responseCode)
	params.Set("vnp_TransactionNo", "14226112")
	params.Set("vnp_BankCode", "NCB")
	signed := signParams(params)
	params.Set("vnp_SecureHash", signed)
	return params
}

func TestBuildPayURL(t *testing.T) {
	client := newClient()
	orderID := uuid.New()

	raw, err := client.BuildPayURL(vnpay.PayURLRequest{
		OrderID:   orderID,
		Amount:    150_000,
		ClientIP:  "203.0.113.7",
		OrderInfo: "Course order",
	})
	require.NoError(t, err)

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	params := parsed.Query()

	assert.Equal(t, "2.1.0", params.Get("vnp_Version"))
	assert.Equal(t, "pay", params.Get("vnp_Command"))
	assert.Equal(t, "TESTTMN", params.Get("vnp_TmnCode"))
	assert.Equal(t, "15000000", params.Get("vnp_Amount"), "wire amount is VND x 100")
	assert.Equal(t, orderID.String(), params.Get("vnp_TxnRef"))
	assert.Equal(t, "20250601120000", params.Get("vnp_CreateDate"))
	assert.Equal(t, "20250601121500", params.Get("vnp_ExpireDate"), "expiry window is 15 minutes")
	assert.NotEmpty(t, params.Get("vnp_SecureHash"))

	t.Run("zero amount rejected", func(t *testing.T) {
		_, err := client.BuildPayURL(vnpay.PayURLRequest{OrderID: orderID, Amount: 0})
		assert.ErrorIs(t, err, vnpay.ErrInvalidAmount)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := client.BuildPayURL(vnpay.PayURLRequest{OrderID: orderID, Amount: -1})
		assert.ErrorIs(t, err, vnpay.ErrInvalidAmount)
	})
}

func TestVerifyCallback(t *testing.T) {
	client := newClient()
	orderID := uuid.New()

	t.Run("roundtrip over a built pay URL", func(t *testing.T) {
		raw, err := client.BuildPayURL(vnpay.PayURLRequest{
			OrderID:   orderID,
			Amount:    150_000,
			ClientIP:  "203.0.113.7",
			OrderInfo: "Course order",
		})
		require.NoError(t, err)

		parsed, err := url.Parse(raw)
		require.NoError(t, err)

		result, err := client.VerifyCallback(parsed.Query())
		require.NoError(t, err)
		assert.Equal(t, orderID, result.OrderID)
		assert.Equal(t, int64(150_000), result.Amount, "amount scales back to whole VND")
	})

	t.Run("decodes a signed callback", func(t *testing.T) {
		params := callbackParams(orderID, "15000000", "00")

		result, err := client.VerifyCallback(params)
		require.NoError(t, err)

		want := &vnpay.CallbackResult{
			OrderID:       orderID,
			Amount:        150_000,
			ResponseCode:  "00",
			TransactionNo: "14226112",
			BankCode:      "NCB",
		}
		if diff := cmp.Diff(want, result); diff != "" {
			t.Errorf("callback result mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("tampered amount rejected", func(t *testing.T) {
		params := callbackParams(orderID, "15000000", "00")
		params.Set("vnp_Amount", "100")

		_, err := client.VerifyCallback(params)
		assert.ErrorIs(t, err, vnpay.ErrInvalidChecksum)
	})

	t.Run("missing signature rejected", func(t *testing.T) {
		params := callbackParams(orderID, "15000000", "00")
		params.Del("vnp_SecureHash")

		_, err := client.VerifyCallback(params)
		assert.ErrorIs(t, err, vnpay.ErrInvalidChecksum)
	})

	t.Run("secure hash type field does not affect the signature", func(t *testing.T) {
		params := callbackParams(orderID, "15000000", "00")
		params.Set("vnp_SecureHashType", "HMACSHA512")

		_, err := client.VerifyCallback(params)
		require.NoError(t, err)
	})

	t.Run("signed but malformed txn ref", func(t *testing.T) {
		params := url.Values{}
		params.Set("vnp_TxnRef", "not-a-uuid")
		params.Set("vnp_Amount", "15000000")
		params.Set("vnp_SecureHash", signParams(params))

		_, err := client.VerifyCallback(params)
		assert.ErrorIs(t, err, vnpay.ErrMalformedCallback)
	})

	t.Run("signed but unscaled amount", func(t *testing.T) {
		params := url.Values{}
		params.Set("vnp_TxnRef", orderID.String())
		params.Set("vnp_Amount", "150001")
		params.Set("vnp_SecureHash", signParams(params))

		_, err := client.VerifyCallback(params)
		assert.ErrorIs(t, err, vnpay.ErrMalformedCallback)
	})
}

func TestResponseMessage(t *testing.T) {
	assert.Equal(t, "Payment successful", vnpay.ResponseMessage("00"))
	assert.Equal(t, "Payment cancelled by customer", vnpay.ResponseMessage("24"))
	assert.Equal(t, "Payment failed", vnpay.ResponseMessage("42"), "unknown codes collapse to a generic failure")
}
