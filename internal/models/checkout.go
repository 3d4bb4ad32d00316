package models

// CheckoutSettings are the public values the booking page needs to open
// the checkout widget and redirect afterwards.
type CheckoutSettings struct {
	Amount       int64  `json:"amount" yaml:"amount"`
	Currency     string `json:"currency" yaml:"currency"`
	DisplayPrice string `json:"display_price" yaml:"display_price"`
	Name         string `json:"name" yaml:"name"`
	Description  string `json:"description" yaml:"description"`
	BookingLink  string `json:"booking_link" yaml:"booking_link"`
	ThemeColor   string `json:"theme_color" yaml:"theme_color"`
}

// CheckoutConfig is what GET /api/checkout-config returns.
type CheckoutConfig struct {
	KeyID     string `json:"key_id"`
	ScriptURL string `json:"script_url"`
	CheckoutSettings
}

func DefaultCheckoutSettings() CheckoutSettings {
	return CheckoutSettings{
		Amount:       49900,
		Currency:     "INR",
		DisplayPrice: "₹499",
		Name:         "FluentEdge Lab",
		Description:  "Demo Class Booking Fee",
		BookingLink:  "https://cal.com/fluentedge-lab-6gdbwa/60min",
		ThemeColor:   "#1e3a8a",
	}
}
