package razorpay

import (
	"strings"
)

const (
	// ProdHostUrl Production Details. Test and live mode share the host; the key pair decides the mode.
	ProdHostUrl = "https://api.razorpay.com"

	// OrdersEndPoint End point for order creation
	OrdersEndPoint = "/v1/orders"

	// CheckoutScriptUrl is loaded by the booking page to open the checkout widget.
	CheckoutScriptUrl = "https://checkout.razorpay.com/v1/checkout.js"
)

// GetBaseEndpoint returns override when set, otherwise the production host.
func GetBaseEndpoint(override string) string {
	switch override = strings.TrimRight(strings.TrimSpace(override), "/"); override {
	case "":
		return ProdHostUrl
	default:
		return override
	}
}

func GetOrdersEndPoint(override string) string {
	return GetBaseEndpoint(override) + OrdersEndPoint
}
