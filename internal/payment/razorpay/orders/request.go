package orders

import (
	"time"
)

// autoCapture asks Razorpay to capture the payment as soon as it is
// authorized. Callers cannot change it.
const autoCapture = 1

type providerOrder struct {
	Amount         int64             `json:"amount"`
	Currency       string            `json:"currency"`
	Receipt        string            `json:"receipt"`
	PaymentCapture int               `json:"payment_capture"`
	Notes          map[string]string `json:"notes"`
}

func buildOrderPayload(req OrderRequest, now time.Time) providerOrder {
	currency := req.Currency
	if currency == "" {
		currency = getDefaultCurrency()
	}

	receipt := req.Receipt
	if receipt == "" {
		receipt = getDefaultReceipt(now)
	}

	notes := req.Notes
	if notes == nil {
		notes = map[string]string{}
	}

	return providerOrder{
		Amount:         req.Amount,
		Currency:       currency,
		Receipt:        receipt,
		PaymentCapture: autoCapture,
		Notes:          notes,
	}
}
