package orders

// providerOrderResponse holds the fields of Razorpay's order entity that are
// relayed to the caller or logged.
type providerOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

func (o providerOrderResponse) result() OrderResult {
	return OrderResult{
		Success:  true,
		OrderID:  o.ID,
		Amount:   o.Amount,
		Currency: o.Currency,
	}
}
