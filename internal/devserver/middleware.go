package devserver

import (
	"net/http"

	"fluentedge/internal/handlers"
	"fluentedge/internal/models"
	"fluentedge/internal/payment/razorpay"
	"fluentedge/internal/payment/razorpay/orders"

	"github.com/rs/zerolog"
)

const (
	orderPath    = "/api/create-razorpay-order"
	checkoutPath = "/api/checkout-config"
)

// CredentialsFunc is called once per request.
type CredentialsFunc func() razorpay.Credentials

// Middleware serves the order API in front of next. Only the order route
// and the checkout settings are claimed; every other request reaches next.
func Middleware(svc *orders.Service, creds CredentialsFunc, settings models.CheckoutSettings) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.URL.Path == orderPath && r.Method == http.MethodPost:
				current := creds()
				if !current.Configured() {
					zerolog.Ctx(r.Context()).Warn().Msg("Add RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET to .env")
				}
				handlers.NewPaymentHandler(svc, current).CreateRazorpayOrder(w, r)
			case r.URL.Path == orderPath && r.Method == http.MethodOptions:
				handlers.Preflight(w, r)
			case r.URL.Path == checkoutPath && r.Method == http.MethodGet:
				handlers.CheckoutConfig(settings, func() string { return creds().KeyID })(w, r)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
