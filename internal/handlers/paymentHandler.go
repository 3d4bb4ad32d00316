package handlers

import (
	"fmt"
	"io"
	"net/http"

	"fluentedge/internal/payment/razorpay"
	"fluentedge/internal/payment/razorpay/orders"
	httpUtil "fluentedge/internal/utility/http"
)

// maxOrderBody caps inbound order bodies; a lead's notes are a few fields.
const maxOrderBody = 64 << 10

type PaymentHandler struct {
	orders      *orders.Service
	credentials razorpay.Credentials
}

func NewPaymentHandler(svc *orders.Service, creds razorpay.Credentials) *PaymentHandler {
	return &PaymentHandler{orders: svc, credentials: creds}
}

// CreateRazorpayOrder handles POST /api/create-razorpay-order.
func (h *PaymentHandler) CreateRazorpayOrder(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxOrderBody))
	if err != nil {
		err = fmt.Errorf("%w: reading body: %v", orders.ErrUnexpected, err)
		httpUtil.RespondError(w, r, orders.GetErrorStatusCode(err), orders.PublicMessage(err), err)
		return
	}

	result, err := h.orders.CreateFromJSON(r.Context(), h.credentials, body)
	if err != nil {
		httpUtil.RespondError(w, r, orders.GetErrorStatusCode(err), orders.PublicMessage(err), err)
		return
	}

	httpUtil.RespondJSON(w, http.StatusOK, result)
}

// Preflight answers OPTIONS with 200 and no body.
func Preflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
