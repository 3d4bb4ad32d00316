package secrets

import (
	"context"
	"encoding/json"
	"fmt"

	"fluentedge/internal/payment/razorpay"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/aws/aws-sdk-go/service/secretsmanager/secretsmanageriface"
)

type AWSConfig struct {
	Region string
}

// CreateSession uses the default credential chain, which inside Lambda is
// the function's execution role.
func CreateSession(awsConfig AWSConfig) (*session.Session, error) {
	cfg := aws.NewConfig()
	if awsConfig.Region != "" {
		cfg = cfg.WithRegion(awsConfig.Region)
	}
	return session.NewSession(cfg)
}

func CreateSecretsManager(sess *session.Session) secretsmanageriface.SecretsManagerAPI {
	return secretsmanager.New(sess)
}

type razorpaySecret struct {
	KeyID     string `json:"RAZORPAY_KEY_ID"`
	KeySecret string `json:"RAZORPAY_KEY_SECRET"`
}

// FetchRazorpayCredentials reads a JSON secret of the form
// {"RAZORPAY_KEY_ID": "...", "RAZORPAY_KEY_SECRET": "..."}.
func FetchRazorpayCredentials(ctx context.Context, svc secretsmanageriface.SecretsManagerAPI, secretID string) (razorpay.Credentials, error) {
	if secretID == "" {
		return razorpay.Credentials{}, fmt.Errorf("secret id is not provided")
	}

	out, err := svc.GetSecretValueWithContext(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		return razorpay.Credentials{}, fmt.Errorf("fetching secret %s: %w", secretID, err)
	}
	if out.SecretString == nil {
		return razorpay.Credentials{}, fmt.Errorf("secret %s has no string value", secretID)
	}

	var secret razorpaySecret
	if err := json.Unmarshal([]byte(aws.StringValue(out.SecretString)), &secret); err != nil {
		return razorpay.Credentials{}, fmt.Errorf("decoding secret %s: %w", secretID, err)
	}

	return razorpay.Credentials{KeyID: secret.KeyID, KeySecret: secret.KeySecret}, nil
}
