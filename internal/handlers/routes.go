package handlers

import (
	"net/http"

	"fluentedge/internal/models"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
)

type Dependencies struct {
	Payments *PaymentHandler
	Checkout models.CheckoutSettings
	// Metrics is mounted at /metrics when set.
	Metrics http.Handler
}

func NewRouter(deps Dependencies) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	// CORS
	r.Use(cors.Handler(CorsOptions()))

	r.Get("/healthz", Healthz)
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}

	// Payment routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/create-razorpay-order", deps.Payments.CreateRazorpayOrder)
		r.Options("/create-razorpay-order", Preflight)
		r.Get("/checkout-config", CheckoutConfig(deps.Checkout, func() string {
			return deps.Payments.credentials.KeyID
		}))
	})

	return r
}
