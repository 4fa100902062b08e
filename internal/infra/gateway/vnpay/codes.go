package vnpay

// ResponseCodeSuccess is the gateway's "transaction succeeded" code in both
// the return redirect and the IPN payload.
const ResponseCodeSuccess = "00"

var responseMessages = map[string]string{
	"00": "Payment successful",
	"07": "Payment held: suspected fraud",
	"09": "Card not registered for online banking",
	"10": "Card authentication failed more than 3 times",
	"11": "Payment window expired",
	"12": "Card or account is locked",
	"13": "Wrong one-time password",
	"24": "Payment cancelled by customer",
	"51": "Insufficient funds",
	"65": "Daily transaction limit exceeded",
	"75": "Issuing bank under maintenance",
	"79": "Wrong payment password entered too many times",
}

// ResponseMessage maps the gateway's numeric result code to a user-facing
// message. Unknown codes collapse to a generic failure.
func ResponseMessage(code string) string {
	if msg, ok := responseMessages[code]; ok {
		return msg
	}
	return "Payment failed"
}

// IPNResponse is the acknowledgement payload the gateway parses. Business
// failures are reported through RspCode, never through HTTP status.
type IPNResponse struct {
	RspCode string `json:"RspCode"`
	Message string `json:"Message"`
}

var (
	IPNSuccess          = IPNResponse{RspCode: "00", Message: "Confirm Success"}
	IPNOrderNotFound    = IPNResponse{RspCode: "01", Message: "Order not found"}
	IPNAlreadyConfirmed = IPNResponse{RspCode: "02", Message: "Order already confirmed"}
	IPNInvalidAmount    = IPNResponse{RspCode: "04", Message: "Invalid amount"}
	IPNChecksumFailed   = IPNResponse{RspCode: "97", Message: "Checksum failed"}
	IPNUnknownError     = IPNResponse{RspCode: "99", Message: "Unknown error"}
)
