package main

import (
	"context"
	"net/http"

	"fluentedge/config"
	"fluentedge/internal/handlers"
	"fluentedge/internal/metrics"
	"fluentedge/internal/payment/razorpay/orders"
	"fluentedge/internal/tracing"
	"fluentedge/internal/utility"
	httpClient "fluentedge/internal/utility/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const serviceName = "razorpay-order-gateway"

func main() {
	conf := config.CreateNewConfig()
	utility.InitLogger(conf.LogLevel)

	if conf.TracingConfig.CollectorHost != "" {
		tp, err := tracing.InitTracing(conf.TracingConfig.CollectorHost, serviceName)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to init tracing")
		}
		defer tp.Shutdown(context.Background())
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	svc := orders.NewService(
		orders.WithBaseURL(conf.RazorpayConfig.APIBase),
		orders.WithHTTPClient(httpClient.NewHttpClient(httpClient.WithTimeout(conf.RazorpayConfig.Timeout))),
		orders.WithMetrics(metrics.NewOrders(reg)),
	)

	creds := conf.Credentials()
	if !creds.Configured() {
		log.Warn().Msg("RAZORPAY_KEY_ID or RAZORPAY_KEY_SECRET is not set; order creation will fail")
	}

	deps := handlers.Dependencies{
		Payments: handlers.NewPaymentHandler(svc, creds),
		Checkout: conf.Checkout,
	}
	if conf.MetricsPort != "" {
		go func() {
			log.Info().Str("port", conf.MetricsPort).Msg("Metrics server is running")
			if err := http.ListenAndServe(":"+conf.MetricsPort, metrics.Handler(reg)); err != nil {
				log.Error().Err(err).Msg("metrics server stopped")
			}
		}()
	} else {
		deps.Metrics = metrics.Handler(reg)
	}

	r := handlers.NewRouter(deps)

	// Start the server
	log.Info().Str("port", conf.ServicePort).Msg("Server is running")
	if err := http.ListenAndServe(":"+conf.ServicePort, otelhttp.NewHandler(r, serviceName)); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
