package orders

import (
	"encoding/json"
	"fmt"
)

// OrderRequest is a normalized request to start a payment. Amount is in
// minor units (paise for INR).
type OrderRequest struct {
	Amount   int64             `json:"amount" validate:"required,min=100"`
	Currency string            `json:"currency,omitempty"`
	Receipt  string            `json:"receipt,omitempty"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// OrderResult is the only part of the provider's order that reaches the caller.
type OrderResult struct {
	Success  bool   `json:"success"`
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type orderPayload struct {
	Amount   json.Number       `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes"`
}

// ParseOrderRequest decodes an inbound JSON body. Undecodable JSON is
// ErrUnexpected; a well-formed body with an unusable amount is
// ErrInvalidAmount.
func ParseOrderRequest(body []byte) (OrderRequest, error) {
	var payload orderPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return OrderRequest{}, fmt.Errorf("%w: decoding order request: %v", ErrUnexpected, err)
	}

	req := OrderRequest{
		Currency: payload.Currency,
		Receipt:  payload.Receipt,
		Notes:    payload.Notes,
	}

	if payload.Amount != "" {
		amount, err := payload.Amount.Int64()
		if err != nil {
			return req, fmt.Errorf("%w: amount %q is not a whole number of minor units", ErrInvalidAmount, payload.Amount.String())
		}
		req.Amount = amount
	}

	return req, nil
}
