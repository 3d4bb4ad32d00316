package main

import (
	"net/http"
	"os"

	"fluentedge/config"
	"fluentedge/internal/devserver"
	"fluentedge/internal/payment/razorpay"
	"fluentedge/internal/payment/razorpay/orders"
	"fluentedge/internal/utility"
	httpClient "fluentedge/internal/utility/http"

	"github.com/rs/zerolog/log"
)

const envFile = ".env"

func main() {
	conf := config.CreateDevConfig(envFile)
	utility.InitLogger(conf.LogLevel)

	svc := orders.NewService(
		orders.WithBaseURL(conf.RazorpayConfig.APIBase),
		orders.WithHTTPClient(httpClient.NewHttpClient(httpClient.WithTimeout(conf.RazorpayConfig.Timeout))),
	)

	creds := func() razorpay.Credentials {
		return config.ReadCredentials(envFile, os.Getenv)
	}

	api := devserver.Middleware(svc, creds, conf.Checkout)

	log.Info().Str("port", conf.DevPort).Str("static_dir", conf.StaticDir).Msg("Dev server is running")
	if err := http.ListenAndServe(":"+conf.DevPort, devserver.NewServer(api, conf.StaticDir)); err != nil {
		log.Fatal().Err(err).Msg("dev server stopped")
	}
}
