package config

import (
	"fluentedge/internal/payment/razorpay"

	"github.com/joho/godotenv"
)

// ReadCredentials re-reads the key pair from a .env file on every call so
// edits take effect without a restart. Keys present in the file win;
// missing ones fall back to getenv.
func ReadCredentials(path string, getenv func(string) string) razorpay.Credentials {
	values, err := godotenv.Read(path)
	if err != nil {
		values = map[string]string{}
	}

	pick := func(key string) string {
		if v := values[key]; v != "" {
			return v
		}
		return getenv(key)
	}

	return razorpay.Credentials{
		KeyID:     pick("RAZORPAY_KEY_ID"),
		KeySecret: pick("RAZORPAY_KEY_SECRET"),
	}
}
