package main

import (
	"context"
	"os"

	secrets "fluentedge/aws"
	"fluentedge/config"
	"fluentedge/internal/payment/razorpay"
	"fluentedge/internal/payment/razorpay/orders"
	"fluentedge/internal/serverless"
	"fluentedge/internal/utility"
	httpClient "fluentedge/internal/utility/http"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"
)

func main() {
	conf := config.Load(os.Getenv)
	utility.InitLogger(conf.LogLevel)

	svc := orders.NewService(
		orders.WithBaseURL(conf.RazorpayConfig.APIBase),
		orders.WithHTTPClient(httpClient.NewHttpClient(httpClient.WithTimeout(conf.RazorpayConfig.Timeout))),
	)

	h := serverless.NewHandler(svc, loadCredentials(conf))
	lambda.Start(h.Handle)
}

// loadCredentials prefers the environment and falls back to Secrets
// Manager. A failed lookup leaves the credentials empty.
func loadCredentials(conf *config.Config) razorpay.Credentials {
	creds := conf.Credentials()
	if creds.Configured() || conf.RazorpayConfig.SecretID == "" {
		return creds
	}

	sess, err := secrets.CreateSession(secrets.AWSConfig{Region: os.Getenv("AWS_REGION")})
	if err != nil {
		log.Error().Err(err).Msg("failed to create AWS session")
		return creds
	}

	fetched, err := secrets.FetchRazorpayCredentials(context.Background(), secrets.CreateSecretsManager(sess), conf.RazorpayConfig.SecretID)
	if err != nil {
		log.Error().Err(err).Str("secret_id", conf.RazorpayConfig.SecretID).Msg("failed to load Razorpay credentials")
		return creds
	}
	return fetched
}
