package handlers

import (
	"net/http"

	"fluentedge/internal/models"
	"fluentedge/internal/payment/razorpay"
	httpUtil "fluentedge/internal/utility/http"
)

// CheckoutConfig serves the public checkout settings. Only the key id is
// exposed, never the secret.
func CheckoutConfig(settings models.CheckoutSettings, keyID func() string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpUtil.RespondJSON(w, http.StatusOK, models.CheckoutConfig{
			KeyID:            keyID(),
			ScriptURL:        razorpay.CheckoutScriptUrl,
			CheckoutSettings: settings,
		})
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
