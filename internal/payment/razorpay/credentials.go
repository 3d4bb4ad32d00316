package razorpay

import (
	"encoding/base64"
	"fmt"
)

// Credentials is the key pair issued by the dashboard. KeyID is public and
// is handed to the checkout widget; KeySecret never leaves the server.
type Credentials struct {
	KeyID     string
	KeySecret string
}

func (c Credentials) Configured() bool {
	return c.KeyID != "" && c.KeySecret != ""
}

// BasicAuth returns the Authorization header value for the key pair.
func (c Credentials) BasicAuth() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(c.KeyID+":"+c.KeySecret))
}

// String keeps the secret out of logs and %v formatting.
func (c Credentials) String() string {
	secret := ""
	if c.KeySecret != "" {
		secret = "[redacted]"
	}
	return fmt.Sprintf("razorpay.Credentials{KeyID: %q, KeySecret: %q}", c.KeyID, secret)
}
