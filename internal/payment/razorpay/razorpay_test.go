package razorpay

import (
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetBaseEndpoint(t *testing.T) {
	assert.Equal(t, ProdHostUrl, GetBaseEndpoint(""))
	assert.Equal(t, ProdHostUrl, GetBaseEndpoint("   "))
	assert.Equal(t, "http://127.0.0.1:9000", GetBaseEndpoint("http://127.0.0.1:9000/"))
}

func TestGetOrdersEndPoint(t *testing.T) {
	assert.Equal(t, "https://api.razorpay.com/v1/orders", GetOrdersEndPoint(""))
	assert.Equal(t, "http://stub/v1/orders", GetOrdersEndPoint("http://stub"))
}

func TestCredentials_Configured(t *testing.T) {
	assert.True(t, Credentials{KeyID: "rzp_test_1", KeySecret: "s"}.Configured())
	assert.False(t, Credentials{KeyID: "rzp_test_1"}.Configured())
	assert.False(t, Credentials{KeySecret: "s"}.Configured())
	assert.False(t, Credentials{}.Configured())
}

func TestCredentials_BasicAuth(t *testing.T) {
	creds := Credentials{KeyID: "rzp_test_abc", KeySecret: "shh"}

	header := creds.BasicAuth()

	assert.Equal(t, "Basic "+base64.StdEncoding.EncodeToString([]byte("rzp_test_abc:shh")), header)
	assert.Equal(t, "Basic cnpwX3Rlc3RfYWJjOnNoaA==", header)
}

func TestCredentials_StringRedactsSecret(t *testing.T) {
	creds := Credentials{KeyID: "rzp_test_abc", KeySecret: "super-secret"}

	out := fmt.Sprintf("%v", creds)

	assert.Contains(t, out, "rzp_test_abc")
	assert.NotContains(t, out, "super-secret")
	assert.Contains(t, out, "[redacted]")
}
